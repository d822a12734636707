// Package state defines the Figure, FigureID, State, Step, and Target
// types shared across the solver, and the copy-on-write operations that
// let the successor generator extend a State without mutating it.
//
// A State is a snapshot: once built, its maps are never mutated in
// place. Extending a state (adding one or more new figures) always
// returns a new State built from shallow copies of the three
// type-partitioned maps, following the same clone-then-mutate-the-copy
// discipline this codebase's ancestor graph library uses for its own
// Clone method.
package state

import (
	"errors"
	"fmt"

	"github.com/YX-hueimie/geometric-solver/kernel"
)

// FigureType tags which of the three disjoint collections a FigureID or
// Target belongs to.
type FigureType int

const (
	// Point figures.
	Point FigureType = iota
	// Line figures.
	Line
	// Circle figures.
	Circle
)

// String renders a FigureType as its single-letter id prefix ("p", "l",
// "c") for use in FigureID formatting.
func (t FigureType) String() string {
	switch t {
	case Point:
		return "p"
	case Line:
		return "l"
	case Circle:
		return "c"
	default:
		return "?"
	}
}

// Sentinel errors raised while building or validating a State.
var (
	// ErrUnknownFigureType is returned when a FigureType outside
	// {Point, Line, Circle} is encountered.
	ErrUnknownFigureType = errors.New("state: unknown figure type")
)

// FigureID is a short label carrying a type tag and an integer ordinal,
// unique within a State per type. Ids are stable within one path but
// carry no meaning across different paths/states.
type FigureID struct {
	Type    FigureType
	Ordinal int
}

// String renders a FigureID in the caller-facing "<letter><digits>" form
// (e.g. "p7", "l3").
func (id FigureID) String() string {
	return fmt.Sprintf("%s%d", id.Type, id.Ordinal)
}

// State is an immutable snapshot of every figure constructed so far,
// partitioned by type, plus the three next-id counters used to allocate
// fresh ids when extending the state.
//
// Invariants (enforced by successor.Generate, the only code path that
// builds a non-initial State):
//   - every id appearing in any Step of the owning path refers to a
//     figure present in the State at that point in the path;
//   - within one State, no two figures of the same type share a
//     canonical form (see package canon);
//   - each counter is strictly greater than every used ordinal of its
//     type.
type State struct {
	Points  map[int]kernel.Point
	Lines   map[int]kernel.Line
	Circles map[int]kernel.Circle

	NextPoint  int
	NextLine   int
	NextCircle int
}

// New returns an empty State with all next-id counters starting at 1.
func New() State {
	return State{
		Points:     make(map[int]kernel.Point),
		Lines:      make(map[int]kernel.Line),
		Circles:    make(map[int]kernel.Circle),
		NextPoint:  1,
		NextLine:   1,
		NextCircle: 1,
	}
}

// WithPoint returns a new State equal to s plus one additional point at
// the given ordinal, with NextPoint advanced past it if necessary. The
// receiver is never mutated.
func (s State) WithPoint(ordinal int, p kernel.Point) State {
	out := s.shallowCopy()
	out.Points[ordinal] = p
	if ordinal >= out.NextPoint {
		out.NextPoint = ordinal + 1
	}

	return out
}

// WithLine returns a new State equal to s plus one additional line.
func (s State) WithLine(ordinal int, l kernel.Line) State {
	out := s.shallowCopy()
	out.Lines[ordinal] = l
	if ordinal >= out.NextLine {
		out.NextLine = ordinal + 1
	}

	return out
}

// WithCircle returns a new State equal to s plus one additional circle.
func (s State) WithCircle(ordinal int, c kernel.Circle) State {
	out := s.shallowCopy()
	out.Circles[ordinal] = c
	if ordinal >= out.NextCircle {
		out.NextCircle = ordinal + 1
	}

	return out
}

// shallowCopy copies the three maps (figures themselves are value types,
// so a shallow map copy is a full copy) and carries the counters over.
func (s State) shallowCopy() State {
	out := State{
		Points:     make(map[int]kernel.Point, len(s.Points)+1),
		Lines:      make(map[int]kernel.Line, len(s.Lines)),
		Circles:    make(map[int]kernel.Circle, len(s.Circles)),
		NextPoint:  s.NextPoint,
		NextLine:   s.NextLine,
		NextCircle: s.NextCircle,
	}
	for k, v := range s.Points {
		out.Points[k] = v
	}
	for k, v := range s.Lines {
		out.Lines[k] = v
	}
	for k, v := range s.Circles {
		out.Circles[k] = v
	}

	return out
}

// Step is one applied construction: an operation name, the ordered ids
// of its input figures, and the id/type of the figure it produced.
type Step struct {
	Operation string
	Inputs    []FigureID
	Output    FigureID
}

// Target is the literal canonical figure a solve is searching for.
type Target struct {
	Type FigureType
	// Point holds (x, y) when Type == Point.
	Point kernel.Point
	// Line holds (A, B, C) when Type == Line.
	Line kernel.Line
	// Circle holds (cx, cy, r²) when Type == Circle.
	Circle kernel.Circle
}
