package heuristic_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/YX-hueimie/geometric-solver/heuristic"
	"github.com/YX-hueimie/geometric-solver/state"
)

func TestBaseline_Point(t *testing.T) {
	assert.Equal(t, 1.0, heuristic.Baseline(heuristic.Tally{Lines: 2}, state.Point))
	assert.Equal(t, 1.0, heuristic.Baseline(heuristic.Tally{Circles: 2}, state.Point))
	assert.Equal(t, 1.0, heuristic.Baseline(heuristic.Tally{Lines: 1, Circles: 1}, state.Point))
	assert.Equal(t, 3.0, heuristic.Baseline(heuristic.Tally{Points: 2}, state.Point))
	assert.Equal(t, 5.0, heuristic.Baseline(heuristic.Tally{Points: 1}, state.Point))
	assert.Equal(t, 5.0, heuristic.Baseline(heuristic.Tally{}, state.Point))
}

func TestBaseline_LineAndCircle(t *testing.T) {
	assert.Equal(t, 1.0, heuristic.Baseline(heuristic.Tally{Points: 2}, state.Line))
	assert.Equal(t, 2.0, heuristic.Baseline(heuristic.Tally{Points: 1}, state.Line))
	assert.Equal(t, 1.0, heuristic.Baseline(heuristic.Tally{Points: 2}, state.Circle))
	assert.Equal(t, 2.0, heuristic.Baseline(heuristic.Tally{Points: 0}, state.Circle))
}

func TestBaseline_UnknownTarget(t *testing.T) {
	assert.True(t, math.IsInf(heuristic.Baseline(heuristic.Tally{Points: 5}, state.FigureType(99)), 1))
}

func TestStrengthened_NeverExceedsBaseline(t *testing.T) {
	tallies := []heuristic.Tally{
		{}, {Points: 1}, {Points: 2}, {Points: 3}, {Points: 2, Lines: 1},
		{Points: 2, Circles: 1}, {Lines: 1}, {Lines: 2}, {Circles: 2},
		{Lines: 1, Circles: 1}, {Points: 5, Lines: 1, Circles: 1},
	}
	targets := []state.FigureType{state.Point, state.Line, state.Circle}

	for _, tt := range tallies {
		for _, target := range targets {
			base := heuristic.Baseline(tt, target)
			strong := heuristic.Strengthened(tt, target)
			assert.LessOrEqualf(t, strong, base, "tally=%+v target=%v", tt, target)
		}
	}
}

func TestStrengthened_TightensOneIntersectablePlusTwoPoints(t *testing.T) {
	got := heuristic.Strengthened(heuristic.Tally{Points: 2, Lines: 1}, state.Point)
	assert.Equal(t, 2.0, got)
}
