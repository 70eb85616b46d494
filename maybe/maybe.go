/*
Package maybe implements optional values which take part in pattern matching.

A Maybe exposes its content as field "value" and the predicates "just" and
"nothing" to the matching engine. Kind provides the branches 'some' and
'none', which unwrap a Maybe before its conditions are applied:

   v, err := maybe.Match(maybe.Just(7), func(b *pattern.Builder) {
       b.On("some", matcher.Between(1, 10)).Then(…)
       b.On("none").Then(…)
   })

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

import (
	"fmt"

	"github.com/npillmayer/pmatch/branch"
	"github.com/npillmayer/pmatch/matcher"
	"github.com/npillmayer/pmatch/pattern"
)

// Maybe is either Just a value or Nothing.
type Maybe[T any] struct {
	value T
	tag   bool
}

var _ matcher.Matchable = Maybe[int]{}

// Just wraps x.
func Just[T any](x T) Maybe[T] {
	return Maybe[T]{value: x, tag: true}
}

// Nothing is the empty Maybe.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{tag: false}
}

// Get returns the value of m and true, or the zero value and false for Nothing.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.tag
}

// IsJust reports whether m holds a value.
func (m Maybe[T]) IsJust() bool {
	return m.tag
}

func (m Maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

func (m Maybe[T]) String() string {
	if m.tag {
		return fmt.Sprintf("Just(%v)", m.value)
	}
	return "Nothing"
}

// Field returns the value of m for name "value". The value of Nothing is nil.
func (m Maybe[T]) Field(name string) (any, bool) {
	if name != "value" {
		return nil, false
	}
	if !m.tag {
		return nil, true
	}
	return m.value, true
}

// Predicate knows "just" and "some", as well as "nothing" and "none".
func (m Maybe[T]) Predicate(name string) (bool, bool) {
	switch name {
	case "just", "some":
		return m.tag, true
	case "nothing", "none":
		return !m.tag, true
	}
	return false, false
}

func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if v, ok := x.Get(); ok {
		return f(v)
	}
	return Nothing[S]()
}

func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	if v, ok := x.Get(); ok {
		return Just(f(v))
	}
	return Nothing[S]()
}

// --- Pattern matching ------------------------------------------------------

// Branches for Maybe values. Both extract the value of a Maybe.
var (
	Some = branch.New("some", branch.Precondition(matcher.Sym("just")), branch.ExtractField("value"))
	None = branch.New("none", branch.Precondition(matcher.Sym("nothing")), branch.ExtractField("value"))
)

// Kind is the kind of pattern matches over Maybe values.
var Kind = pattern.Define(Some, None)

// Match creates a pattern match of Kind and applies it to m.
func Match[T any](m Maybe[T], configure func(*pattern.Builder), opts ...pattern.Option) (any, error) {
	pm, err := Kind.New(configure, opts...)
	if err != nil {
		return nil, err
	}
	return pm.Call(m)
}

// --- Switching -------------------------------------------------------------

// Cases supports matching in a switch statement:
//
//    var v int
//    switch c := x.Cases(); c {
//    case c.Just(&v):
//        …
//    case c.Nothing():
//        …
//    }
func (m Maybe[T]) Cases() Cases[T] {
	return cases[T]{m: m}
}

// Cases is the switch helper of a Maybe.
type Cases[T any] interface {
	Just(*T) Cases[T]
	Nothing() Cases[T]
}

type cases[T any] struct {
	m Maybe[T]
}

func (c cases[T]) Just(v *T) Cases[T] {
	if c.m.tag {
		*v = c.m.value
		return c
	}
	return nil
}

func (c cases[T]) Nothing() Cases[T] {
	if !c.m.tag {
		return c
	}
	return nil
}
