// Package geomio is the unmarshalling/marshalling collaborator between
// wire-format JSON documents and the in-process state.State / state.Target
// types the solver operates on, mirroring the two-stage marshalling and
// unmarshalling split this module's ancestor API layer performs around
// its core solve call.
package geomio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/YX-hueimie/geometric-solver/canon"
	"github.com/YX-hueimie/geometric-solver/kernel"
	"github.com/YX-hueimie/geometric-solver/state"
)

// Sentinel errors returned by Parse.
var (
	// ErrInvalidReference is returned when a known line or circle
	// references a point id that no known point in the document declares.
	ErrInvalidReference = errors.New("geomio: invalid object id reference")
	// ErrUnknownFigureKind is returned for a "type" field outside
	// {"point", "line", "circle"}.
	ErrUnknownFigureKind = errors.New("geomio: unknown figure kind")
	// ErrMalformedID is returned when a figure id does not match the
	// "<letter><digits>" convention (e.g. "p1", "l2", "c3").
	ErrMalformedID = errors.New("geomio: malformed figure id")
	// ErrDuplicateID is returned when two knowns share the same id.
	ErrDuplicateID = errors.New("geomio: duplicate figure id")
	// ErrDuplicatePoint is returned when two distinct given points
	// canonicalize to the same location: the initial state must never
	// carry two ids for what is, geometrically, a single point.
	ErrDuplicatePoint = errors.New("geomio: duplicate given point")
)

// KnownFigure is one entry of a ProblemDoc's "knowns" array: either a
// point (Coords set), a line (Points set, two point ids), or a circle
// (Center and PointOnCircumference set, both point ids).
type KnownFigure struct {
	ID                   string    `json:"id"`
	Type                 string    `json:"type"`
	Coords               []float64 `json:"coords,omitempty"`
	Points               []string  `json:"points,omitempty"`
	Center               string    `json:"center,omitempty"`
	PointOnCircumference string    `json:"point_on_circumference,omitempty"`
}

// TargetDoc is the wire form of the figure being searched for. Exactly
// one of Coords, Coeffs, or (Center, RadiusSquared) is populated,
// selected by Type.
type TargetDoc struct {
	Type          string    `json:"type"`
	Coords        []float64 `json:"coords,omitempty"`
	Coeffs        []float64 `json:"coeffs,omitempty"`
	Center        []float64 `json:"center,omitempty"`
	RadiusSquared float64   `json:"radius_squared,omitempty"`
}

// ProblemDoc is the wire form of a solve request: GeometricProblem.
type ProblemDoc struct {
	Knowns []KnownFigure `json:"knowns"`
	Target TargetDoc     `json:"target"`
}

// DecodeProblem reads and validates one ProblemDoc from r.
func DecodeProblem(r io.Reader) (ProblemDoc, error) {
	var doc ProblemDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return ProblemDoc{}, fmt.Errorf("geomio: decode problem: %w", err)
	}

	return doc, nil
}

// Parse converts a ProblemDoc into the in-process state.State and
// state.Target the solver operates on, following the same two-pass
// ordering as the reference marshalling stage: points first, then
// lines and circles (which may reference any point declared in the
// document, before or after them). Parse rejects a repeated known id
// (ErrDuplicateID) and rejects a given point that canonicalizes to the
// same location as an earlier one (ErrDuplicatePoint), so the initial
// state never carries two ids for a single geometric point. Reference
// validation matches the Python implementation's
// dict-iteration-order dependency made explicit here as a validation
// rule).
func Parse(doc ProblemDoc) (state.State, state.Target, error) {
	s := state.New()
	points := make(map[string]kernel.Point)
	seenIDs := make(map[string]struct{}, len(doc.Knowns))
	seenPoints := make(map[canon.Point]struct{}, len(doc.Knowns))

	for _, k := range doc.Knowns {
		if _, dup := seenIDs[k.ID]; dup {
			return state.State{}, state.Target{}, fmt.Errorf("geomio: id %q: %w", k.ID, ErrDuplicateID)
		}
		seenIDs[k.ID] = struct{}{}

		if k.Type != "point" {
			continue
		}
		if len(k.Coords) != 2 {
			return state.State{}, state.Target{}, fmt.Errorf("geomio: point %q: %w", k.ID, ErrMalformedID)
		}
		ordinal, err := ordinalOf(k.ID, "p")
		if err != nil {
			return state.State{}, state.Target{}, err
		}
		p := kernel.Point{X: k.Coords[0], Y: k.Coords[1]}

		key := canon.CanonPoint(p)
		if _, dup := seenPoints[key]; dup {
			return state.State{}, state.Target{}, fmt.Errorf("geomio: point %q: %w", k.ID, ErrDuplicatePoint)
		}
		seenPoints[key] = struct{}{}

		s = s.WithPoint(ordinal, p)
		points[k.ID] = p
	}

	for _, k := range doc.Knowns {
		switch k.Type {
		case "point":
			continue
		case "line":
			if len(k.Points) != 2 {
				return state.State{}, state.Target{}, fmt.Errorf("geomio: line %q: %w", k.ID, ErrMalformedID)
			}
			p1, ok1 := points[k.Points[0]]
			p2, ok2 := points[k.Points[1]]
			if !ok1 || !ok2 {
				return state.State{}, state.Target{}, fmt.Errorf("geomio: line %q: %w", k.ID, ErrInvalidReference)
			}
			ordinal, err := ordinalOf(k.ID, "l")
			if err != nil {
				return state.State{}, state.Target{}, err
			}
			s = s.WithLine(ordinal, kernel.ConstructLine(p1, p2))
		case "circle":
			center, ok1 := points[k.Center]
			onCirc, ok2 := points[k.PointOnCircumference]
			if !ok1 || !ok2 {
				return state.State{}, state.Target{}, fmt.Errorf("geomio: circle %q: %w", k.ID, ErrInvalidReference)
			}
			ordinal, err := ordinalOf(k.ID, "c")
			if err != nil {
				return state.State{}, state.Target{}, err
			}
			s = s.WithCircle(ordinal, kernel.ConstructCircle(center, onCirc))
		default:
			return state.State{}, state.Target{}, fmt.Errorf("geomio: known %q: %w", k.ID, ErrUnknownFigureKind)
		}
	}

	target, err := parseTarget(doc.Target)
	if err != nil {
		return state.State{}, state.Target{}, err
	}

	return s, target, nil
}

func parseTarget(t TargetDoc) (state.Target, error) {
	switch t.Type {
	case "point":
		if len(t.Coords) != 2 {
			return state.Target{}, fmt.Errorf("geomio: target point: %w", ErrMalformedID)
		}
		return state.Target{Type: state.Point, Point: kernel.Point{X: t.Coords[0], Y: t.Coords[1]}}, nil
	case "line":
		if len(t.Coeffs) != 3 {
			return state.Target{}, fmt.Errorf("geomio: target line: %w", ErrMalformedID)
		}
		return state.Target{Type: state.Line, Line: kernel.Line{A: t.Coeffs[0], B: t.Coeffs[1], C: t.Coeffs[2]}}, nil
	case "circle":
		if len(t.Center) != 2 {
			return state.Target{}, fmt.Errorf("geomio: target circle: %w", ErrMalformedID)
		}
		return state.Target{Type: state.Circle, Circle: kernel.Circle{CX: t.Center[0], CY: t.Center[1], R2: t.RadiusSquared}}, nil
	default:
		return state.Target{}, fmt.Errorf("geomio: target: %w", ErrUnknownFigureKind)
	}
}

// ordinalOf parses a "<letter><digits>" id, verifying its letter
// matches wantPrefix, and returns the numeric ordinal.
func ordinalOf(id string, wantPrefix string) (int, error) {
	if len(id) < 2 || string(id[0]) != wantPrefix {
		return 0, fmt.Errorf("geomio: id %q: %w", id, ErrMalformedID)
	}
	n, err := strconv.Atoi(id[1:])
	if err != nil {
		return 0, fmt.Errorf("geomio: id %q: %w", id, ErrMalformedID)
	}

	return n, nil
}

// StepDoc is the wire form of one state.Step.
type StepDoc struct {
	Operation string    `json:"operation"`
	Inputs    []string  `json:"inputs"`
	Output    OutputDoc `json:"output"`
}

// OutputDoc is the wire form of a state.Step's produced figure.
type OutputDoc struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// PerformanceDoc reports timing and search-size metrics alongside a
// ResultDoc, mirroring the reference API's PerformanceMetrics model.
type PerformanceDoc struct {
	CalculationTimeMs float64 `json:"calculation_time_ms"`
	StatesExplored    int     `json:"states_explored"`
}

// ResultDoc is the wire form of a completed (or exhausted) solve:
// SolverResponse.
type ResultDoc struct {
	Status      string         `json:"status"`
	Error       string         `json:"error,omitempty"`
	Steps       []StepDoc      `json:"steps,omitempty"`
	Performance PerformanceDoc `json:"performance"`
}

// ErrorResult builds a ResultDoc reporting a per-item failure, for
// -batch mode where one malformed problem document must not abort the
// whole batch.
func ErrorResult(err error) ResultDoc {
	return ResultDoc{Status: "error", Error: err.Error()}
}

// BuildResult shapes a solved/unsolved path and its stats into a
// ResultDoc, without writing it anywhere — used directly by batch
// callers that collect many ResultDocs before encoding them together.
func BuildResult(path []state.Step, statesExplored int, elapsedMs float64) ResultDoc {
	doc := ResultDoc{
		Performance: PerformanceDoc{
			CalculationTimeMs: elapsedMs,
			StatesExplored:    statesExplored,
		},
	}
	if len(path) == 0 {
		doc.Status = "unsolvable"
		return doc
	}

	doc.Status = "solved"
	doc.Steps = make([]StepDoc, len(path))
	for i, step := range path {
		inputs := make([]string, len(step.Inputs))
		for j, in := range step.Inputs {
			inputs[j] = in.String()
		}
		doc.Steps[i] = StepDoc{
			Operation: step.Operation,
			Inputs:    inputs,
			Output:    OutputDoc{Type: step.Output.Type.String(), ID: step.Output.String()},
		}
	}

	return doc
}

// EncodeResult shapes a solved/unsolved path and its stats into a
// ResultDoc and writes it to w.
func EncodeResult(w io.Writer, path []state.Step, statesExplored int, elapsedMs float64) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildResult(path, statesExplored, elapsedMs))
}

// DecodeProblems reads a JSON array of ProblemDoc, for -batch mode.
func DecodeProblems(r io.Reader) ([]ProblemDoc, error) {
	var docs []ProblemDoc
	if err := json.NewDecoder(r).Decode(&docs); err != nil {
		return nil, fmt.Errorf("geomio: decode problem batch: %w", err)
	}

	return docs, nil
}

// EncodeResults writes a slice of ResultDoc as one JSON array, for
// -batch mode.
func EncodeResults(w io.Writer, docs []ResultDoc) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(docs)
}
