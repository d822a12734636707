// Package canon produces canonical, hashable fingerprints for geometric
// figures and for whole search states. It is the equivalence oracle for
// the entire solver: two figures are "the same" iff their canonical
// forms compare equal, and two states are "the same" iff their state
// keys compare equal.
//
// This resolves the floating-point problem at the heart of the search:
// a figure reached by two different construction orders (e.g. the line
// through p1,p2 versus through p2,p1) ends up with numerically close but
// not bit-identical coordinates. Rounding to a fixed precision and fixing
// a sign convention collapses both into one representative value.
//
// Precision is coupled to kernel.Epsilon (see kernel/kernel.go): Precision
// must be coarse enough to absorb kernel round-off yet fine enough to
// keep genuinely distinct figures apart. The two constants are tuned
// together and must never be changed independently.
package canon

import (
	"math"
	"sort"
	"strconv"

	"github.com/YX-hueimie/geometric-solver/kernel"
)

// Precision is the number of decimal places every canonical coordinate
// is rounded to.
const Precision = 10

// pow10 is 10^Precision, precomputed once.
var pow10 = math.Pow(10, Precision)

func round(x float64) float64 {
	return math.Round(x*pow10) / pow10
}

// Point is the canonical representative of kernel.Point: a rounded
// coordinate pair.
type Point [2]float64

// Line is the canonical representative of kernel.Line: normalized so
// A²+B² = 1, sign-fixed so the first coefficient among A, B whose
// magnitude exceeds kernel.Epsilon is positive, then rounded.
type Line [3]float64

// Circle is the canonical representative of kernel.Circle: rounded
// center and squared radius.
type Circle [3]float64

// CanonPoint canonicalizes a point.
func CanonPoint(p kernel.Point) Point {
	return Point{round(p.X), round(p.Y)}
}

// CanonLine canonicalizes a line. A degenerate line (A and B both ~0)
// canonicalizes to the zero triple; kernel never constructs one, so
// callers should not rely on this branch beyond defensive symmetry with
// the reference implementation.
func CanonLine(l kernel.Line) Line {
	norm := math.Sqrt(l.A*l.A + l.B*l.B)
	if norm < kernel.Epsilon {
		return Line{0, 0, 0}
	}

	a, b, c := l.A/norm, l.B/norm, l.C/norm
	if math.Abs(a) > kernel.Epsilon {
		if a < 0 {
			a, b, c = -a, -b, -c
		}
	} else if math.Abs(b) > kernel.Epsilon && b < 0 {
		a, b, c = -a, -b, -c
	}

	return Line{round(a), round(b), round(c)}
}

// CanonCircle canonicalizes a circle.
func CanonCircle(c kernel.Circle) Circle {
	return Circle{round(c.CX), round(c.CY), round(c.R2)}
}

// Key is the composite canonical fingerprint of a whole state: the
// sorted canonical sequence of each figure type, tagged so that two
// states with different counts of the same type never collide with an
// empty sub-sequence of another type. Key is comparable and may be used
// directly as a Go map key.
type Key struct {
	Points  string
	Lines   string
	Circles string
}

// StateKey composes the canonical forms of the three figure collections
// into one composite Key. Each collection is sorted lexicographically on
// its canonical tuple before being folded into a string, so that the key
// does not depend on map iteration order or insertion order.
func StateKey(points []Point, lines []Line, circles []Circle) Key {
	ps := make([]Point, len(points))
	copy(ps, points)
	sort.Slice(ps, func(i, j int) bool { return lessPoint(ps[i], ps[j]) })

	ls := make([]Line, len(lines))
	copy(ls, lines)
	sort.Slice(ls, func(i, j int) bool { return lessLine(ls[i], ls[j]) })

	cs := make([]Circle, len(circles))
	copy(cs, circles)
	sort.Slice(cs, func(i, j int) bool { return lessCircle(cs[i], cs[j]) })

	return Key{
		Points:  encodePoints(ps),
		Lines:   encodeLines(ls),
		Circles: encodeCircles(cs),
	}
}

func lessPoint(a, b Point) bool {
	if a[0] != b[0] {
		return a[0] < b[0]
	}

	return a[1] < b[1]
}

func lessLine(a, b Line) bool {
	for i := 0; i < 3; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return false
}

func lessCircle(a, b Circle) bool {
	for i := 0; i < 3; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return false
}

// encodePoints/encodeLines/encodeCircles render a sorted canonical
// sequence into a single comparable string. Formatting every value with
// exactly Precision decimals (the precision it was rounded to) and an
// explicit field separator guarantees no two distinct sequences
// collide (unlike naive concatenation, which could confuse "1, 23" with
// "12, 3").
func encodePoints(ps []Point) string {
	var b []byte
	for _, p := range ps {
		b = appendFloat(b, p[0])
		b = append(b, ',')
		b = appendFloat(b, p[1])
		b = append(b, ';')
	}

	return string(b)
}

func encodeLines(ls []Line) string {
	var b []byte
	for _, l := range ls {
		b = appendFloat(b, l[0])
		b = append(b, ',')
		b = appendFloat(b, l[1])
		b = append(b, ',')
		b = appendFloat(b, l[2])
		b = append(b, ';')
	}

	return string(b)
}

func encodeCircles(cs []Circle) string {
	var b []byte
	for _, c := range cs {
		b = appendFloat(b, c[0])
		b = append(b, ',')
		b = appendFloat(b, c[1])
		b = append(b, ',')
		b = appendFloat(b, c[2])
		b = append(b, ';')
	}

	return string(b)
}

func appendFloat(b []byte, f float64) []byte {
	return strconv.AppendFloat(b, f, 'f', Precision, 64)
}
