// Package successor enumerates the one-step legal extensions of a
// state.State: every new figure reachable by a single Line, Circle, or
// Intersection construction over the figures already present.
//
// Enumeration order is fixed and matters only for tie-breaking among
// equal-priority search nodes, never for correctness:
//
//  1. Intersections (line-line, line-circle, circle-circle), which
//     produce points. A kernel result of two points is recorded as a
//     single construction Step, as the spec requires.
//  2. Line constructions over every unordered pair of existing points.
//  3. Circle constructions over every ordered pair of existing points
//     (center, point-on-circumference) — ordered because swapping the
//     two roles produces a different circle.
//
// Extensions whose resulting figure already exists (same canonical form)
// are suppressed entirely; Generate returns only genuinely new figures.
// A point pair that canonicalizes to the same point (two distinct ids
// occupying the same location) is skipped by Line/Circle construction,
// since no legal construction step can distinguish them; geomio.Parse
// also rejects such pairs at ingest.
// Deduplication *across* states (the visited set) is the search engine's
// responsibility, not this package's.
package successor

import (
	"sort"

	"github.com/YX-hueimie/geometric-solver/canon"
	"github.com/YX-hueimie/geometric-solver/kernel"
	"github.com/YX-hueimie/geometric-solver/state"
)

// Extension is one accepted one-step extension of a state.
type Extension struct {
	State state.State
	Step  state.Step
}

// Generate returns every distinct one-step extension of s, in the fixed
// enumeration order described above.
func Generate(s state.State) []Extension {
	var out []Extension

	pointKeys := sortedPointKeys(s)
	lineKeys := sortedLineKeys(s)
	circleKeys := sortedCircleKeys(s)

	existingPoints := canonPointSet(s)
	existingLines := canonLineSet(s)
	existingCircles := canonCircleSet(s)

	out = append(out, intersections(s, lineKeys, circleKeys, existingPoints)...)
	out = append(out, lines(s, pointKeys, existingLines)...)
	out = append(out, circles(s, pointKeys, existingCircles)...)

	return out
}

func sortedPointKeys(s state.State) []int {
	keys := make([]int, 0, len(s.Points))
	for k := range s.Points {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	return keys
}

func sortedLineKeys(s state.State) []int {
	keys := make([]int, 0, len(s.Lines))
	for k := range s.Lines {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	return keys
}

func sortedCircleKeys(s state.State) []int {
	keys := make([]int, 0, len(s.Circles))
	for k := range s.Circles {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	return keys
}

func canonPointSet(s state.State) map[canon.Point]struct{} {
	set := make(map[canon.Point]struct{}, len(s.Points))
	for _, p := range s.Points {
		set[canon.CanonPoint(p)] = struct{}{}
	}

	return set
}

func canonLineSet(s state.State) map[canon.Line]struct{} {
	set := make(map[canon.Line]struct{}, len(s.Lines))
	for _, l := range s.Lines {
		set[canon.CanonLine(l)] = struct{}{}
	}

	return set
}

func canonCircleSet(s state.State) map[canon.Circle]struct{} {
	set := make(map[canon.Circle]struct{}, len(s.Circles))
	for _, c := range s.Circles {
		set[canon.CanonCircle(c)] = struct{}{}
	}

	return set
}

// intersections enumerates line-line, line-circle, and circle-circle
// pairs, producing one Extension per pair that yields at least one
// genuinely new point.
func intersections(s state.State, lineKeys, circleKeys []int, existing map[canon.Point]struct{}) []Extension {
	var out []Extension

	addPair := func(op string, inputs []state.FigureID, pts kernel.Points) {
		if pts.Count == 0 {
			return
		}

		newState := s
		var firstNewID state.FigureID
		found := false
		ordinal := s.NextPoint

		for i := 0; i < pts.Count; i++ {
			key := canon.CanonPoint(pts.P[i])
			if _, dup := existing[key]; dup {
				continue
			}
			if _, dup := canonPointSet(newState)[key]; dup {
				continue
			}

			newState = newState.WithPoint(ordinal, pts.P[i])
			if !found {
				firstNewID = state.FigureID{Type: state.Point, Ordinal: ordinal}
				found = true
			}
			ordinal++
		}

		if !found {
			return
		}

		out = append(out, Extension{
			State: newState,
			Step: state.Step{
				Operation: "Intersection",
				Inputs:    inputs,
				Output:    firstNewID,
			},
		})
	}

	for i := 0; i < len(lineKeys); i++ {
		for j := i + 1; j < len(lineKeys); j++ {
			l1, l2 := lineKeys[i], lineKeys[j]
			res := kernel.IntersectLineLine(s.Lines[l1], s.Lines[l2])
			addPair("Intersection", []state.FigureID{
				{Type: state.Line, Ordinal: l1},
				{Type: state.Line, Ordinal: l2},
			}, res)
		}
	}

	for _, lk := range lineKeys {
		for _, ck := range circleKeys {
			res := kernel.IntersectLineCircle(s.Lines[lk], s.Circles[ck])
			addPair("Intersection", []state.FigureID{
				{Type: state.Line, Ordinal: lk},
				{Type: state.Circle, Ordinal: ck},
			}, res)
		}
	}

	for i := 0; i < len(circleKeys); i++ {
		for j := i + 1; j < len(circleKeys); j++ {
			c1, c2 := circleKeys[i], circleKeys[j]
			res := kernel.IntersectCircleCircle(s.Circles[c1], s.Circles[c2])
			addPair("Intersection", []state.FigureID{
				{Type: state.Circle, Ordinal: c1},
				{Type: state.Circle, Ordinal: c2},
			}, res)
		}
	}

	return out
}

func lines(s state.State, pointKeys []int, existing map[canon.Line]struct{}) []Extension {
	var out []Extension

	for i := 0; i < len(pointKeys); i++ {
		for j := i + 1; j < len(pointKeys); j++ {
			p1, p2 := pointKeys[i], pointKeys[j]
			if canon.CanonPoint(s.Points[p1]) == canon.CanonPoint(s.Points[p2]) {
				continue
			}

			l := kernel.ConstructLine(s.Points[p1], s.Points[p2])
			key := canon.CanonLine(l)
			if _, dup := existing[key]; dup {
				continue
			}

			existing[key] = struct{}{}

			ordinal := s.NextLine
			out = append(out, Extension{
				State: s.WithLine(ordinal, l),
				Step: state.Step{
					Operation: "Line",
					Inputs: []state.FigureID{
						{Type: state.Point, Ordinal: p1},
						{Type: state.Point, Ordinal: p2},
					},
					Output: state.FigureID{Type: state.Line, Ordinal: ordinal},
				},
			})
		}
	}

	return out
}

func circles(s state.State, pointKeys []int, existing map[canon.Circle]struct{}) []Extension {
	var out []Extension

	for _, center := range pointKeys {
		for _, onCirc := range pointKeys {
			if center == onCirc {
				continue
			}
			if canon.CanonPoint(s.Points[center]) == canon.CanonPoint(s.Points[onCirc]) {
				continue
			}

			c := kernel.ConstructCircle(s.Points[center], s.Points[onCirc])
			key := canon.CanonCircle(c)
			if _, dup := existing[key]; dup {
				continue
			}

			existing[key] = struct{}{}

			ordinal := s.NextCircle
			out = append(out, Extension{
				State: s.WithCircle(ordinal, c),
				Step: state.Step{
					Operation: "Circle",
					Inputs: []state.FigureID{
						{Type: state.Point, Ordinal: center},
						{Type: state.Point, Ordinal: onCirc},
					},
					Output: state.FigureID{Type: state.Circle, Ordinal: ordinal},
				},
			})
		}
	}

	return out
}
