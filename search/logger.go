package search

// Logger is the minimal structured-logging surface the search engine
// needs. cmd/geosolve's production Logger wraps github.com/rs/zerolog;
// tests and library callers that don't care about logs use noopLogger.
type Logger interface {
	// Expanded is called once per node popped from the open set, before
	// its successors are generated.
	Expanded(g int, f float64, statesExplored int)
	// Goal is called exactly once, when a goal figure is found.
	Goal(pathLen int, statesExplored int)
	// Exhausted is called exactly once, when the open set empties or the
	// context is cancelled without finding the goal.
	Exhausted(statesExplored int, cancelled bool)
}

type noopLogger struct{}

func (noopLogger) Expanded(int, float64, int) {}
func (noopLogger) Goal(int, int)              {}
func (noopLogger) Exhausted(int, bool)        {}
