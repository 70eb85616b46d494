/*
Package result implements the result of a computation which may fail.

A Result is a tagged pair for the matching engine: its first element is
branch.OK or branch.Err, its second element is the value or the error. Results
are therefore matched by the 'success' and 'failure' branches of
pattern.Results.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package result

import (
	"fmt"

	"github.com/npillmayer/pmatch/branch"
	"github.com/npillmayer/pmatch/matcher"
	"github.com/npillmayer/pmatch/pattern"
)

// Result is either Ok with a value or Err with an error.
type Result[T any] struct {
	value T
	err   error
}

var _ matcher.Indexed = Result[int]{}

func Ok[T any](x T) Result[T] {
	return Result[T]{value: x}
}

// Err creates a failed result. err must not be nil.
func Err[T any](err error) Result[T] {
	if err == nil {
		panic("result.Err called with nil error")
	}
	return Result[T]{err: err}
}

// Of creates a result from the return values of a fallible function.
func Of[T any](x T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(x)
}

// Get returns the value and the error of r.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

func (r Result[T]) IsOk() bool {
	return r.err == nil
}

func (r Result[T]) WithDefault(def T) T {
	if r.err == nil {
		return r.value
	}
	return def
}

func (r Result[T]) String() string {
	if r.err == nil {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}

// Len is always 2.
func (r Result[T]) Len() int {
	return 2
}

// Index returns the tag of r for 0, and its value or error for 1.
func (r Result[T]) Index(i int) any {
	switch i {
	case 0:
		if r.err == nil {
			return branch.OK
		}
		return branch.Err
	case 1:
		if r.err == nil {
			return r.value
		}
		return r.err
	}
	panic(fmt.Sprintf("result index out of range: %d", i))
}

func Map[T, S any](f func(T) S, r Result[T]) Result[S] {
	if r.err != nil {
		return Err[S](r.err)
	}
	return Ok(f(r.value))
}

func AndThen[T, S any](f func(T) Result[S], r Result[T]) Result[S] {
	if r.err != nil {
		return Err[S](r.err)
	}
	return f(r.value)
}

// Match creates a pattern match of kind pattern.Results and applies it to r.
func Match[T any](r Result[T], configure func(*pattern.Builder), opts ...pattern.Option) (any, error) {
	pm, err := pattern.Results.New(configure, opts...)
	if err != nil {
		return nil, err
	}
	return pm.Call(r)
}
