package search

import (
	"container/heap"
	"time"

	"github.com/YX-hueimie/geometric-solver/canon"
	"github.com/YX-hueimie/geometric-solver/heuristic"
	"github.com/YX-hueimie/geometric-solver/state"
	"github.com/YX-hueimie/geometric-solver/successor"
)

// Run performs the best-first search described in this package's doc
// comment, starting from initial and searching for target, subject to
// opts (see Options/Option).
//
// Returns ErrUnsupportedTarget immediately, before entering the main
// loop, if target.Type is not one of {Point, Line, Circle}.
func Run(initial state.State, target state.Target, opts ...Option) (Result, error) {
	start := time.Now()

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if target.Type != state.Point && target.Type != state.Line && target.Type != state.Circle {
		return Result{}, ErrUnsupportedTarget
	}

	targetKey, targetCanonOK := targetCanonKey(target)
	if !targetCanonOK {
		return Result{}, ErrUnsupportedTarget
	}

	visited := make(map[canon.Key]struct{})
	var tieBreaker int64

	initialKey := stateKey(initial)
	visited[initialKey] = struct{}{}

	open := &openHeap{}
	heap.Init(open)

	h0 := cfg.Heuristic(heuristic.TallyOf(initial), target.Type)
	heap.Push(open, &node{
		priority:   0 + h0,
		tieBreaker: tieBreaker,
		g:          0,
		st:         initial,
		path:       nil,
	})
	tieBreaker++

	cancelled := false

mainLoop:
	for open.Len() > 0 {
		select {
		case <-cfg.Context.Done():
			cancelled = true
			break mainLoop
		default:
		}

		cur := heap.Pop(open).(*node)
		cfg.Logger.Expanded(cur.g, cur.priority, len(visited))

		if cur.g >= cfg.MaxSteps {
			continue
		}

		for _, ext := range successor.Generate(cur.st) {
			extKey := stateKey(ext.State)
			if _, seen := visited[extKey]; seen {
				continue
			}
			if open.Len() > cfg.OpenListCap {
				// Admission cap reached: skip insertion. extKey has
				// not been added to visited yet, so the same state
				// can still be admitted if it is generated again.
				continue
			}

			visited[extKey] = struct{}{}

			if figureCanonKey(ext.State, ext.Step.Output) == targetKey {
				path := append(append([]state.Step{}, cur.path...), ext.Step)
				cfg.Logger.Goal(len(path), len(visited))

				return Result{
					Found: true,
					Path:  path,
					Stats: Stats{
						StatesExplored: len(visited),
						Elapsed:        time.Since(start).Nanoseconds(),
					},
				}, nil
			}

			newG := cur.g + 1
			newH := cfg.Heuristic(heuristic.TallyOf(ext.State), target.Type)
			if isInf(newH) {
				continue
			}

			heap.Push(open, &node{
				priority:   float64(newG) + newH,
				tieBreaker: tieBreaker,
				g:          newG,
				st:         ext.State,
				path:       append(append([]state.Step{}, cur.path...), ext.Step),
			})
			tieBreaker++
		}
	}

	cfg.Logger.Exhausted(len(visited), cancelled)

	return Result{
		Found: false,
		Stats: Stats{
			StatesExplored: len(visited),
			Cancelled:      cancelled,
			Elapsed:        time.Since(start).Nanoseconds(),
		},
	}, nil
}

func isInf(f float64) bool {
	return f > 1e300
}

// stateKey composes a state's canonical key from its three figure maps.
func stateKey(s state.State) canon.Key {
	points := make([]canon.Point, 0, len(s.Points))
	for _, p := range s.Points {
		points = append(points, canon.CanonPoint(p))
	}
	lines := make([]canon.Line, 0, len(s.Lines))
	for _, l := range s.Lines {
		lines = append(lines, canon.CanonLine(l))
	}
	circles := make([]canon.Circle, 0, len(s.Circles))
	for _, c := range s.Circles {
		circles = append(circles, canon.CanonCircle(c))
	}

	return canon.StateKey(points, lines, circles)
}

// figureCanonKey canonicalizes exactly the one figure a Step produced,
// wrapped in the same Key shape as a one-figure state so it can be
// compared directly to the (precomputed, also one-figure) target key.
// This is the goal test: it runs only against the newly created figure,
// never against the whole state, matching the spec's requirement that
// a trivially-already-present target does not short-circuit a zero-step
// path.
func figureCanonKey(s state.State, id state.FigureID) canon.Key {
	switch id.Type {
	case state.Point:
		return canon.StateKey([]canon.Point{canon.CanonPoint(s.Points[id.Ordinal])}, nil, nil)
	case state.Line:
		return canon.StateKey(nil, []canon.Line{canon.CanonLine(s.Lines[id.Ordinal])}, nil)
	case state.Circle:
		return canon.StateKey(nil, nil, []canon.Circle{canon.CanonCircle(s.Circles[id.Ordinal])})
	default:
		return canon.Key{}
	}
}

// targetCanonKey canonicalizes the caller-supplied target up front, so
// the goal test is insensitive to caller-side rounding (this repo
// resolves the spec's open question in favor of engine-side
// canonicalization).
func targetCanonKey(t state.Target) (canon.Key, bool) {
	switch t.Type {
	case state.Point:
		return canon.StateKey([]canon.Point{canon.CanonPoint(t.Point)}, nil, nil), true
	case state.Line:
		return canon.StateKey(nil, []canon.Line{canon.CanonLine(t.Line)}, nil), true
	case state.Circle:
		return canon.StateKey(nil, nil, []canon.Circle{canon.CanonCircle(t.Circle)}), true
	default:
		return canon.Key{}, false
	}
}
