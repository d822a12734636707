// Package heuristic supplies admissible lower-bound estimates of the
// number of construction steps still needed to reach a target figure,
// for use as h(n) in the search package's A* engine.
//
// Baseline is the spec's minimum-possible-cost table, keyed only on
// target type and the current figure-type tallies; it is intentionally
// conservative so it can never overestimate the true remaining depth.
// Strengthened is an optional, still-admissible refinement (see its doc
// comment) that callers may opt into via search.WithHeuristic; it never
// returns a value greater than Baseline would for the same input.
package heuristic

import (
	"math"

	"github.com/YX-hueimie/geometric-solver/state"
)

// Tally holds the figure-type counts a heuristic reasons about.
type Tally struct {
	Points, Lines, Circles int
}

// TallyOf counts the figures currently present in s.
func TallyOf(s state.State) Tally {
	return Tally{Points: len(s.Points), Lines: len(s.Lines), Circles: len(s.Circles)}
}

// Func is the shape every heuristic strategy implements: an admissible
// lower bound on the number of steps remaining to reach a figure of
// targetType, given the current tally. math.Inf(1) means "provably
// unreachable from here under this estimate" and prunes the node.
type Func func(t Tally, targetType state.FigureType) float64

// Baseline is the spec's minimum admissible heuristic.
//
//   - target Point: 1 if an intersecting pair already exists
//     (≥2 lines, ≥2 circles, or ≥1 of each); else 3 if ≥2 points exist
//     (construct two intersecting figures, then intersect); else 5.
//   - target Line or Circle: 1 if ≥2 points exist, else 2.
//   - unknown target type: +∞ (pruned).
//
// Each constant is the minimum number of constructions needed in the
// best case assuming the target is reachable, so Baseline never exceeds
// the true remaining depth — the property A* optimality depends on.
func Baseline(t Tally, targetType state.FigureType) float64 {
	switch targetType {
	case state.Point:
		if t.Lines >= 2 || t.Circles >= 2 || (t.Lines >= 1 && t.Circles >= 1) {
			return 1
		}
		if t.Points >= 2 {
			return 3
		}

		return 5

	case state.Line, state.Circle:
		if t.Points >= 2 {
			return 1
		}

		return 2

	default:
		return math.Inf(1)
	}
}

// Strengthened refines Baseline by recognizing one additional
// best-case shortcut: a target Point is reachable in exactly 1 step the
// moment an intersecting pair exists (Baseline already captures this),
// and in exactly 2 steps — not 3 — when exactly one of {a line, a
// circle} already exists alongside ≥2 points, since only one more
// figure (not two) is needed before intersecting.
//
// This is still admissible: 2 ≤ 3 (Baseline's value) whenever it
// applies, and Strengthened falls back to Baseline everywhere else, so
// Strengthened(t, target) ≤ Baseline(t, target) for every input —
// it never overestimates where Baseline did not already.
func Strengthened(t Tally, targetType state.FigureType) float64 {
	base := Baseline(t, targetType)
	if targetType != state.Point {
		return base
	}
	if base <= 1 {
		return base
	}

	haveOneIntersectable := (t.Lines == 1 && t.Circles == 0) || (t.Lines == 0 && t.Circles == 1)
	if haveOneIntersectable && t.Points >= 2 {
		return math.Min(base, 2)
	}

	return base
}
