package pmatch

import (
	"fmt"

	"github.com/npillmayer/pmatch/matcher"
)

// --- Pair ------------------------------------------------------------------

// Pair is a 2-tuple. Pairs are sequences of length 2 for the matching engine,
// i.e. positional conditions are applied to Left and Right, and a pair with
// a tag as its Left is a result pair.
type Pair[A, B any] struct {
	Left  A
	Right B
}

// P creates a pair.
func P[A, B any](x A, y B) Pair[A, B] {
	return Pair[A, B]{x, y}
}

// Decompose returns the elements of p.
func (p Pair[A, B]) Decompose() (A, B) {
	return p.Left, p.Right
}

// Len is always 2.
func (p Pair[A, B]) Len() int {
	return 2
}

// Index returns Left for 0 and Right for 1.
func (p Pair[A, B]) Index(i int) any {
	switch i {
	case 0:
		return p.Left
	case 1:
		return p.Right
	}
	panic(fmt.Sprintf("pair index out of range: %d", i))
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Left, p.Right)
}

var _ matcher.Indexed = Pair[int, int]{1, 2}
var _ matcher.Indexed = P(matcher.Sym("ok"), 2)
