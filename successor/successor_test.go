package successor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YX-hueimie/geometric-solver/kernel"
	"github.com/YX-hueimie/geometric-solver/state"
	"github.com/YX-hueimie/geometric-solver/successor"
)

func twoPointState() state.State {
	s := state.New()
	s = s.WithPoint(1, kernel.Point{X: 0, Y: 0})
	s = s.WithPoint(2, kernel.Point{X: 2, Y: 0})

	return s
}

func TestGenerate_TwoPoints_LinesAndCircles(t *testing.T) {
	s := twoPointState()
	exts := successor.Generate(s)

	// No lines/circles yet ⇒ no intersections possible. Exactly one new
	// line (unordered pair) and two new circles (ordered pair) expected.
	var lineCount, circleCount int
	for _, e := range exts {
		switch e.Step.Operation {
		case "Line":
			lineCount++
		case "Circle":
			circleCount++
		case "Intersection":
			t.Fatalf("unexpected intersection with no lines/circles present")
		}
	}
	assert.Equal(t, 1, lineCount)
	assert.Equal(t, 2, circleCount)
}

func TestGenerate_DuplicateLineSuppressed(t *testing.T) {
	s := state.New()
	s = s.WithPoint(1, kernel.Point{X: 0, Y: 0})
	s = s.WithPoint(2, kernel.Point{X: 2, Y: 0})
	s = s.WithPoint(3, kernel.Point{X: 4, Y: 0}) // colinear with p1,p2

	exts := successor.Generate(s)
	var lineCount int
	for _, e := range exts {
		if e.Step.Operation == "Line" {
			lineCount++
		}
	}
	// All three pairs are colinear ⇒ only one distinct canonical line.
	assert.Equal(t, 1, lineCount)
}

func TestGenerate_IntersectionIsSingleStepForTwoPoints(t *testing.T) {
	s := state.New()
	// Two circles centered at p1=(0,0) and p2=(2,0), each passing through
	// the other — classic two-point intersection.
	s = s.WithCircle(1, kernel.ConstructCircle(kernel.Point{X: 0, Y: 0}, kernel.Point{X: 2, Y: 0}))
	s = s.WithCircle(2, kernel.ConstructCircle(kernel.Point{X: 2, Y: 0}, kernel.Point{X: 0, Y: 0}))

	exts := successor.Generate(s)
	var intersectionSteps int
	var pointsAdded int
	for _, e := range exts {
		if e.Step.Operation == "Intersection" {
			intersectionSteps++
			pointsAdded += len(e.State.Points)
		}
	}
	require.Equal(t, 1, intersectionSteps, "a count=2 kernel result must be one construction step")
	assert.Equal(t, 2, pointsAdded, "both intersection points must land in the resulting state")
}

func TestGenerate_ConcentricCirclesNoIntersection(t *testing.T) {
	s := state.New()
	s = s.WithCircle(1, kernel.Circle{CX: 0, CY: 0, R2: 1})
	s = s.WithCircle(2, kernel.Circle{CX: 0, CY: 0, R2: 4})

	exts := successor.Generate(s)
	for _, e := range exts {
		assert.NotEqual(t, "Intersection", e.Step.Operation)
	}
}

func TestGenerate_CoincidentPointsNoDegenerateLineOrCircle(t *testing.T) {
	s := state.New()
	s = s.WithPoint(1, kernel.Point{X: 1, Y: 1})
	s = s.WithPoint(2, kernel.Point{X: 1, Y: 1}) // distinct id, same location

	exts := successor.Generate(s)
	for _, e := range exts {
		assert.NotEqual(t, "Line", e.Step.Operation, "two ids at one location must not yield a line")
		assert.NotEqual(t, "Circle", e.Step.Operation, "two ids at one location must not yield a circle")
	}
}

func TestGenerate_ColinearLinesDegeneracyRejected(t *testing.T) {
	s := state.New()
	l := kernel.ConstructLine(kernel.Point{X: 0, Y: 0}, kernel.Point{X: 1, Y: 1})
	s = s.WithLine(1, l)
	s = s.WithLine(2, kernel.ConstructLine(kernel.Point{X: 1, Y: 1}, kernel.Point{X: 0, Y: 0}))

	exts := successor.Generate(s)
	for _, e := range exts {
		assert.NotEqual(t, "Intersection", e.Step.Operation, "identical lines must not yield a line-line intersection")
	}
}
