// Package search implements the best-first (A*) exploration engine that
// ties together the numeric kernel, canonical form, successor generator,
// and heuristic into a full solve: f(n) = g(n) + h(n), a min-priority
// open set, a visited set of canonical state keys, and a strictly
// increasing tie-breaker counter for deterministic, FIFO-among-equals
// ordering.
//
// Configuration follows this codebase's functional-options convention
// (see the dijkstra.Option/tsp.Options shape elsewhere in its ancestry):
// Run takes a variadic list of Option values layered over DefaultOptions.
//
// Errors (sentinel):
//
//	ErrUnsupportedTarget - the target's FigureType is not one of
//	                       {Point, Line, Circle}.
//
// Termination: Run returns as soon as a goal figure is produced, when
// the open set empties, or when its context is cancelled. Nodes whose g
// has reached the step budget (MaxSteps) are discarded without being
// expanded, so an exhausted budget ends the search by emptying the open
// set. Whenever no goal is found, Found is false and Path is empty.
package search

import (
	"context"
	"errors"

	"github.com/YX-hueimie/geometric-solver/heuristic"
	"github.com/YX-hueimie/geometric-solver/state"
)

// Sentinel errors returned by Run.
var (
	// ErrUnsupportedTarget indicates the target's FigureType is not one
	// of {Point, Line, Circle}.
	ErrUnsupportedTarget = errors.New("search: unsupported target type")
)

// Default governance constants, exposed by name per the spec's
// requirement that tolerance/budget constants never be sprinkled
// literals.
const (
	// DefaultMaxSteps caps g(n), the path length, by default.
	DefaultMaxSteps = 20

	// DefaultOpenListCap is the admission cap on the open set
	// (MAX_OPEN_LIST_SIZE in the spec) that protects memory.
	DefaultOpenListCap = 150_000
)

// Options configures a single Run invocation. Use DefaultOptions and
// override via Option values; the zero value is not meaningful.
type Options struct {
	MaxSteps    int
	OpenListCap int
	Heuristic   heuristic.Func
	Context     context.Context
	Logger      Logger
}

// Option is a functional option mutating Options before a Run.
type Option func(*Options)

// WithMaxSteps overrides the default step budget (g(n) cap).
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic("search: MaxSteps must be positive")
		}
		o.MaxSteps = n
	}
}

// WithOpenListCap overrides the default open-set admission cap.
func WithOpenListCap(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic("search: OpenListCap must be positive")
		}
		o.OpenListCap = n
	}
}

// WithHeuristic selects an alternative admissible heuristic strategy
// (e.g. heuristic.Strengthened) in place of the default heuristic.Baseline.
func WithHeuristic(h heuristic.Func) Option {
	return func(o *Options) {
		if h == nil {
			panic("search: heuristic func must not be nil")
		}
		o.Heuristic = h
	}
}

// WithContext supplies the context checked for cancellation at the top
// of every main-loop iteration. Default is context.Background() (never
// cancelled).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			panic("search: context must not be nil")
		}
		o.Context = ctx
	}
}

// WithLogger attaches a structured logger observing node expansions and
// the terminal outcome. Default is a no-op logger.
func WithLogger(l Logger) Option {
	return func(o *Options) {
		if l == nil {
			panic("search: logger must not be nil")
		}
		o.Logger = l
	}
}

// DefaultOptions returns the spec's default configuration: MaxSteps=20,
// OpenListCap=150000, heuristic.Baseline, a background context, and a
// no-op logger.
func DefaultOptions() Options {
	return Options{
		MaxSteps:    DefaultMaxSteps,
		OpenListCap: DefaultOpenListCap,
		Heuristic:   heuristic.Baseline,
		Context:     context.Background(),
		Logger:      noopLogger{},
	}
}

// Stats reports search-time statistics about one Run invocation.
type Stats struct {
	// StatesExplored is the size of the visited set at termination.
	StatesExplored int
	// Cancelled is true when Run returned early because its context
	// was cancelled.
	Cancelled bool
	// Elapsed is the wall-clock duration of the Run call. This is a
	// strict superset of the spec's minimal {states_explored} contract.
	Elapsed int64 // nanoseconds; kept as int64 to stay context-free of time.Duration at this layer.
}

// Result is the outcome of one Run invocation.
type Result struct {
	// Found is true iff Path reaches a figure matching the target.
	Found bool
	// Path is the ordered sequence of steps from the initial state to
	// the goal figure. Empty when Found is false.
	Path []state.Step
	Stats Stats
}
