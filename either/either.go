/*
Package either implements a sum type of two alternatives.

Clients should be able to define a sum type:

Haskell:

    type Either a b = Left a | Right b

Stand-in in Go is a struct with a discriminator. An Either takes part in
pattern matching by exposing its content as field "value" and the predicates
"left" and "right". Kind provides the branches 'left' and 'right', which
unwrap an Either before applying their conditions.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package either

import (
	"fmt"

	"github.com/npillmayer/pmatch/branch"
	"github.com/npillmayer/pmatch/matcher"
	"github.com/npillmayer/pmatch/pattern"
)

type Either[L, R any] struct {
	discr bool // true for right
	left  L
	right R
}

var _ matcher.Matchable = Either[int, string]{}

func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{left: l}
}

func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{discr: true, right: r}
}

func (e Either[L, R]) IsLeft() bool {
	return !e.discr
}

func (e Either[L, R]) IsRight() bool {
	return e.discr
}

// Get returns the left value, the right value, and whether e is a right.
func (e Either[L, R]) Get() (L, R, bool) {
	return e.left, e.right, e.discr
}

func (e Either[L, R]) String() string {
	if e.discr {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// Field returns the active alternative of e for name "value".
func (e Either[L, R]) Field(name string) (any, bool) {
	if name != "value" {
		return nil, false
	}
	if e.discr {
		return e.right, true
	}
	return e.left, true
}

// Predicate knows "left" and "right".
func (e Either[L, R]) Predicate(name string) (bool, bool) {
	switch name {
	case "left":
		return !e.discr, true
	case "right":
		return e.discr, true
	}
	return false, false
}

// Fold reduces e to a single value by applying fl to a left or fr to a right.
func Fold[L, R, T any](e Either[L, R], fl func(L) T, fr func(R) T) T {
	if e.discr {
		return fr(e.right)
	}
	return fl(e.left)
}

// MapRight applies f to a right value; lefts are passed through.
func MapRight[L, R, S any](f func(R) S, e Either[L, R]) Either[L, S] {
	if e.discr {
		return Right[L](f(e.right))
	}
	return Left[L, S](e.left)
}

// --- Pattern matching ------------------------------------------------------

// Branches for Either values. Both extract the active alternative.
var (
	LeftBranch  = branch.New("left", branch.Precondition(matcher.Sym("left")), branch.ExtractField("value"))
	RightBranch = branch.New("right", branch.Precondition(matcher.Sym("right")), branch.ExtractField("value"))
)

// Kind is the kind of pattern matches over Either values.
var Kind = pattern.Define(LeftBranch, RightBranch)

// Match creates a pattern match of Kind and applies it to e.
func Match[L, R any](e Either[L, R], configure func(*pattern.Builder), opts ...pattern.Option) (any, error) {
	pm, err := Kind.New(configure, opts...)
	if err != nil {
		return nil, err
	}
	return pm.Call(e)
}
