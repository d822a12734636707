package canon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YX-hueimie/geometric-solver/canon"
	"github.com/YX-hueimie/geometric-solver/kernel"
)

func TestCanonPoint_Idempotent(t *testing.T) {
	p := kernel.Point{X: 1.00000000001, Y: -2.99999999999}
	c1 := canon.CanonPoint(p)
	c2 := canon.CanonPoint(kernel.Point{X: c1[0], Y: c1[1]})
	assert.Equal(t, c1, c2)
}

func TestCanonLine_Idempotent(t *testing.T) {
	l := kernel.ConstructLine(kernel.Point{X: 0, Y: 0}, kernel.Point{X: 3, Y: 4})
	c1 := canon.CanonLine(l)
	c2 := canon.CanonLine(kernel.Line{A: c1[0], B: c1[1], C: c1[2]})
	assert.Equal(t, c1, c2)
}

func TestCanonLine_OrderIndependent(t *testing.T) {
	p1 := kernel.Point{X: 0, Y: 0}
	p2 := kernel.Point{X: 3, Y: 4}

	l1 := kernel.ConstructLine(p1, p2)
	l2 := kernel.ConstructLine(p2, p1)

	require.Equal(t, canon.CanonLine(l1), canon.CanonLine(l2))
}

func TestCanonCircle_Idempotent(t *testing.T) {
	c := kernel.ConstructCircle(kernel.Point{X: 1, Y: 1}, kernel.Point{X: 4, Y: 5})
	c1 := canon.CanonCircle(c)
	c2 := canon.CanonCircle(kernel.Circle{CX: c1[0], CY: c1[1], R2: c1[2]})
	assert.Equal(t, c1, c2)
}

func TestStateKey_OrderIndependentOfInputSlice(t *testing.T) {
	p1 := canon.CanonPoint(kernel.Point{X: 1, Y: 1})
	p2 := canon.CanonPoint(kernel.Point{X: 2, Y: 2})

	k1 := canon.StateKey([]canon.Point{p1, p2}, nil, nil)
	k2 := canon.StateKey([]canon.Point{p2, p1}, nil, nil)
	assert.Equal(t, k1, k2)
}

func TestStateKey_DistinguishesEmptyTypes(t *testing.T) {
	// A state with one point and no lines must not collide with a state
	// with one line and no points, even though both have one empty
	// sub-sequence.
	p := canon.CanonPoint(kernel.Point{X: 1, Y: 1})
	l := canon.CanonLine(kernel.ConstructLine(kernel.Point{X: 0, Y: 0}, kernel.Point{X: 1, Y: 1}))

	k1 := canon.StateKey([]canon.Point{p}, nil, nil)
	k2 := canon.StateKey(nil, []canon.Line{l}, nil)
	assert.NotEqual(t, k1, k2)
}
