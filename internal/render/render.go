// Package render draws a solved construction as an SVG diagram using
// github.com/ajstarks/svgo. This package has no teacher analogue; it is
// new ambient tooling added to exercise the pack's SVG library for
// visual inspection of solver output.
package render

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/YX-hueimie/geometric-solver/canon"
	"github.com/YX-hueimie/geometric-solver/kernel"
	"github.com/YX-hueimie/geometric-solver/state"
)

// Options controls the canvas size and coordinate scaling used when
// rendering a Diagram.
type Options struct {
	Width  int
	Height int
	// Scale converts one unit of problem-space coordinates to pixels.
	Scale float64
}

// DefaultOptions returns a 640x640 canvas at 60 pixels per unit,
// suitable for the small hand-worked constructions this solver targets.
func DefaultOptions() Options {
	return Options{Width: 640, Height: 640, Scale: 60}
}

// Diagram renders every figure present in final onto one SVG canvas
// written to w. final is typically the state reached after replaying a
// solver.Solve path onto its initial state; Diagram itself does not
// distinguish knowns from constructed figures.
func Diagram(w io.Writer, final state.State, opts Options) error {
	canvas := svg.New(w)
	canvas.Start(opts.Width, opts.Height)
	defer canvas.End()

	canvas.Title("construction")
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:white")

	for _, l := range final.Lines {
		x1, y1, x2, y2 := lineSegment(l, opts)
		canvas.Line(x1, y1, x2, y2, "stroke:steelblue;stroke-width:1")
	}
	for _, c := range final.Circles {
		x, y := toPixel(kernel.Point{X: c.CX, Y: c.CY}, opts)
		r := int(math.Sqrt(c.R2) * opts.Scale)
		canvas.Circle(x, y, r, "fill:none;stroke:firebrick;stroke-width:1")
	}
	for id, p := range final.Points {
		x, y := toPixel(p, opts)
		canvas.Circle(x, y, 3, "fill:black")
		canvas.Text(x+6, y-6, fmt.Sprintf("p%d", id), "font-size:12px;fill:black")
	}

	return nil
}

// Replay rebuilds the state reached after applying every step in path
// to initial, for callers that only kept solver.Solve's path and want
// to hand Diagram a single final state. Steps are assumed legal (taken
// from a real search.Result), so construction never fails; an
// Intersection step's second point, when the underlying kernel pair
// produced two, is not recoverable from the step alone and is omitted —
// the path's Output id already names the point the search engine
// treated as canonical for that step, and that is the only one Replay
// adds.
func Replay(initial state.State, path []state.Step) state.State {
	s := initial
	for _, step := range path {
		switch step.Operation {
		case "Line":
			p1 := s.Points[step.Inputs[0].Ordinal]
			p2 := s.Points[step.Inputs[1].Ordinal]
			s = s.WithLine(step.Output.Ordinal, kernel.ConstructLine(p1, p2))
		case "Circle":
			p1 := s.Points[step.Inputs[0].Ordinal]
			p2 := s.Points[step.Inputs[1].Ordinal]
			s = s.WithCircle(step.Output.Ordinal, kernel.ConstructCircle(p1, p2))
		case "Intersection":
			p := intersectionPoint(s, step.Inputs)
			s = s.WithPoint(step.Output.Ordinal, p)
		}
	}

	return s
}

// intersectionPoint recomputes the intersection of the two figures
// named by inputs and returns the first result point not already in s.
// A pair that yields two points has only its first new one named by a
// Step at all (see successor.Generate); Replay can only ever draw that one.
func intersectionPoint(s state.State, inputs []state.FigureID) kernel.Point {
	a, b := inputs[0], inputs[1]

	var res kernel.Points
	switch {
	case a.Type == state.Line && b.Type == state.Line:
		res = kernel.IntersectLineLine(s.Lines[a.Ordinal], s.Lines[b.Ordinal])
	case a.Type == state.Line && b.Type == state.Circle:
		res = kernel.IntersectLineCircle(s.Lines[a.Ordinal], s.Circles[b.Ordinal])
	case a.Type == state.Circle && b.Type == state.Circle:
		res = kernel.IntersectCircleCircle(s.Circles[a.Ordinal], s.Circles[b.Ordinal])
	default:
		return kernel.Point{}
	}

	if res.Count == 0 {
		return kernel.Point{}
	}

	for i := 0; i < res.Count; i++ {
		key := canon.CanonPoint(res.P[i])
		present := false
		for _, p := range s.Points {
			if canon.CanonPoint(p) == key {
				present = true
				break
			}
		}
		if !present {
			return res.P[i]
		}
	}

	return res.P[0]
}

func toPixel(p kernel.Point, opts Options) (int, int) {
	return opts.Width/2 + int(p.X*opts.Scale), opts.Height/2 - int(p.Y*opts.Scale)
}

// lineSegment derives a long visible chord of l clipped loosely to the
// canvas so near-vertical and near-horizontal lines both render sensibly.
func lineSegment(l kernel.Line, opts Options) (x1, y1, x2, y2 int) {
	span := float64(opts.Width+opts.Height) / opts.Scale

	if math.Abs(l.B) > math.Abs(l.A) {
		x1f, x2f := -span, span
		y1f := (-l.C - l.A*x1f) / l.B
		y2f := (-l.C - l.A*x2f) / l.B
		x1, y1 = toPixel(kernel.Point{X: x1f, Y: y1f}, opts)
		x2, y2 = toPixel(kernel.Point{X: x2f, Y: y2f}, opts)
		return x1, y1, x2, y2
	}

	y1f, y2f := -span, span
	x1f := (-l.C - l.B*y1f) / l.A
	x2f := (-l.C - l.B*y2f) / l.A
	x1, y1 = toPixel(kernel.Point{X: x1f, Y: y1f}, opts)
	x2, y2 = toPixel(kernel.Point{X: x2f, Y: y2f}, opts)
	return x1, y1, x2, y2
}
