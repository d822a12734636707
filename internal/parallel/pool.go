// Package parallel provides a small bounded worker pool used by
// cmd/geosolve's batch mode to run many independent solves
// concurrently without spawning one goroutine per problem document.
package parallel

import (
	"runtime"
	"sync"
)

// Pool runs tasks with at most Workers running concurrently.
type Pool struct {
	Workers int
}

// NewPool returns a Pool bounded at workers goroutines. workers <= 0
// defaults to runtime.NumCPU().
func NewPool(workers int) Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	return Pool{Workers: workers}
}

// Run executes every task in tasks, at most p.Workers at a time, and
// blocks until all have completed. Task order of completion is
// unspecified; callers that need ordered results should write them
// into a pre-sized slice by index from within each task.
func (p Pool) Run(tasks []func()) {
	sem := make(chan struct{}, p.Workers)
	var wg sync.WaitGroup

	for _, task := range tasks {
		task := task
		wg.Add(1)
		sem <- struct{}{}

		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			task()
		}()
	}

	wg.Wait()
}
