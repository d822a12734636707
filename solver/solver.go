// Package solver is the single public entry point of this module: it
// wires state, successor, heuristic, and search into one call that
// takes a starting State and a Target and returns the shortest
// construction path, mirroring the top-level validate-build-run-shape
// shape of this codebase's Dijkstra function.
package solver

import (
	"github.com/rs/zerolog"

	"github.com/YX-hueimie/geometric-solver/heuristic"
	"github.com/YX-hueimie/geometric-solver/search"
	"github.com/YX-hueimie/geometric-solver/state"
)

// Solve runs the best-first search from initial to target and shapes
// the result into a (path, stats, err) triple. opts are forwarded
// verbatim to search.Run; see search.Option for the available knobs
// (step budget, open-list cap, heuristic strategy, cancellation,
// structured logging).
//
// err is non-nil only for a malformed call (target.Type outside
// {Point, Line, Circle}); an exhausted or budget-capped search is not
// an error, it is reported via an empty path.
func Solve(initial state.State, target state.Target, opts ...search.Option) (path []state.Step, stats search.Stats, err error) {
	res, err := search.Run(initial, target, opts...)
	if err != nil {
		return nil, search.Stats{}, err
	}

	return res.Path, res.Stats, nil
}

// ZerologLogger adapts search.Logger onto a github.com/rs/zerolog.Logger,
// giving callers of Solve structured, leveled expansion/goal/exhaustion
// events without this package depending on any particular sink.
type ZerologLogger struct {
	log zerolog.Logger
}

// NewZerologLogger wraps log as a search.Logger.
func NewZerologLogger(log zerolog.Logger) ZerologLogger {
	return ZerologLogger{log: log}
}

// Expanded logs one node expansion at debug level.
func (z ZerologLogger) Expanded(g int, f float64, statesExplored int) {
	z.log.Debug().
		Int("g", g).
		Float64("f", f).
		Int("states_explored", statesExplored).
		Msg("node expanded")
}

// Goal logs the terminal success event at info level.
func (z ZerologLogger) Goal(pathLen int, statesExplored int) {
	z.log.Info().
		Int("path_len", pathLen).
		Int("states_explored", statesExplored).
		Msg("goal reached")
}

// Exhausted logs the terminal failure/cancellation event at info level.
func (z ZerologLogger) Exhausted(statesExplored int, cancelled bool) {
	z.log.Info().
		Int("states_explored", statesExplored).
		Bool("cancelled", cancelled).
		Msg("search exhausted")
}

// Tally is a re-export of heuristic.Tally for callers that want to
// inspect a state's figure counts without importing the heuristic
// package directly.
type Tally = heuristic.Tally

// TallyOf re-exports heuristic.TallyOf.
func TallyOf(s state.State) Tally {
	return heuristic.TallyOf(s)
}
