package destructure

import (
	"github.com/npillmayer/pmatch/matcher"
)

// Func is the type of handlers called by a Destructurer. Without
// destructuring, a handler receives the extracted value as its single
// argument.
type Func func(args ...any) any

// Destructurer calls a handler, optionally expanding its input into named
// values first. The zero value is not useful; use New.
type Destructurer struct {
	enabled bool
	params  []string
	fn      Func
}

// New creates a destructurer for fn. If fn is nil, the destructurer returns
// its (possibly expanded) input: a single value as is, multiple values as a
// slice.
func New(enabled bool, fn Func, params ...string) Destructurer {
	if fn == nil {
		fn = identity
	}
	return Destructurer{
		enabled: enabled,
		params:  append([]string(nil), params...),
		fn:      fn,
	}
}

func identity(args ...any) any {
	if len(args) == 1 {
		return args[0]
	}
	return args
}

// Unary adapts a typed one-argument function to Func. A nil argument is
// passed as T's zero value; an argument of another type makes the handler panic.
func Unary[T, R any](f func(T) R) Func {
	return func(args ...any) any {
		var x T
		if len(args) > 0 && args[0] != nil {
			x = args[0].(T)
		}
		return f(x)
	}
}

// Enabled reports whether d expands its input.
func (d Destructurer) Enabled() bool {
	return d.enabled
}

// Params returns the field names d reads from its input.
func (d Destructurer) Params() []string {
	return append([]string(nil), d.params...)
}

// Call invokes the handler of d on v.
func (d Destructurer) Call(v any) any {
	if !d.enabled {
		return d.fn(v)
	}
	return d.fn(d.Values(v)...)
}

// Values resolves the parameter names of d against v, in order. Without
// parameter names, the elements of a sequence are spread into separate
// values; any other v is its own single value.
func (d Destructurer) Values(v any) []any {
	if len(d.params) == 0 {
		return spread(v)
	}
	vals := make([]any, len(d.params))
	if m, ok := matcher.AsKeyed(v); ok {
		for i, p := range d.params {
			vals[i], _ = m.Lookup(p)
		}
	} else {
		for i, p := range d.params {
			x, ok := matcher.FieldOf(v, p)
			if !ok {
				x = false
			}
			vals[i] = x
		}
	}
	tracer().Debugf("destructured %v into %v", d.params, vals)
	return vals
}

func spread(v any) []any {
	seq, ok := matcher.AsIndexed(v)
	if !ok {
		return []any{v}
	}
	vals := make([]any, seq.Len())
	for i := range vals {
		vals[i] = seq.Index(i)
	}
	return vals
}
