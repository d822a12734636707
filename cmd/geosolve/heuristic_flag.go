package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/YX-hueimie/geometric-solver/heuristic"
)

// heuristicFlag is a pflag.Value selecting the admissible heuristic
// strategy passed to search.WithHeuristic, giving -heuristic validated
// "baseline"/"strengthened" choices instead of a bare boolean.
type heuristicFlag struct {
	name string
	fn   heuristic.Func
}

var _ pflag.Value = (*heuristicFlag)(nil)

func newHeuristicFlag() *heuristicFlag {
	return &heuristicFlag{name: "baseline", fn: heuristic.Baseline}
}

func (f *heuristicFlag) String() string { return f.name }

func (f *heuristicFlag) Type() string { return "heuristic" }

func (f *heuristicFlag) Set(s string) error {
	switch s {
	case "baseline":
		f.name, f.fn = s, heuristic.Baseline
	case "strengthened":
		f.name, f.fn = s, heuristic.Strengthened
	default:
		return fmt.Errorf("geosolve: unknown heuristic %q (want baseline or strengthened)", s)
	}

	return nil
}
