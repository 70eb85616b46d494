package matcher

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/onsi/gomega/types"
	"github.com/tidwall/match"
	"golang.org/x/exp/constraints"
	"golang.org/x/text/cases"
)

// Condition is implemented by values which decide a match by themselves.
// Composite matchers are conditions, too, and may therefore be nested.
type Condition interface {
	Matches(v any) bool
}

// ConditionFunc adapts a predicate function to the Condition interface.
type ConditionFunc func(v any) bool

// Matches calls f(v).
func (f ConditionFunc) Matches(v any) bool {
	return f(v)
}

// Sym is a symbolic name. As a condition it matches an equal Sym, or else
// names a predicate to invoke on the candidate. As a map key it is
// interchangeable with its string form.
type Sym string

func (s Sym) String() string {
	return ":" + string(s)
}

// Keys is a map of keyed conditions. Nested inside another Keys it is a
// condition for a keyed sub-container.
type Keys map[string]any

// Wildcard is the type of Any.
type Wildcard struct{}

// Any matches every value, including nil.
var Any = Wildcard{}

// Matches always returns true.
func (Wildcard) Matches(any) bool {
	return true
}

func (Wildcard) String() string {
	return "_"
}

// --- Value matching --------------------------------------------------------

// MatchValue decides whether a single candidate value satisfies cond.
// Nested Keys conditions are combined with And.
func MatchValue(candidate, cond any) bool {
	return matchValue(candidate, compile(cond, And))
}

// Compile turns cond into a Condition. Conditions are returned unchanged.
func Compile(cond any) Condition {
	if c, ok := cond.(Condition); ok {
		return c
	}
	compiled := compile(cond, And)
	return ConditionFunc(func(v any) bool {
		return matchValue(v, compiled)
	})
}

func matchValue(candidate, cond any) bool {
	return caseMatch(candidate, cond) || predicateMatch(candidate, cond)
}

// caseMatch applies every kind of condition except predicate names.
func caseMatch(candidate, cond any) bool {
	switch c := cond.(type) {
	case nil:
		return isNil(candidate)
	case Wildcard:
		return true
	case *nested:
		return c.Matches(candidate)
	case Keys:
		return compile(c, And).(*nested).Matches(candidate)
	case Condition:
		return c.Matches(candidate)
	case *regexp.Regexp:
		s, ok := stringForm(candidate)
		return ok && c.MatchString(s)
	case reflect.Type:
		return typeMatches(candidate, c)
	case types.GomegaMatcher:
		ok, err := c.Match(candidate)
		return err == nil && ok
	case func(any) bool:
		return c(candidate)
	case Sym:
		s, ok := candidate.(Sym)
		return ok && s == c
	case string:
		s, ok := stringKind(candidate)
		return ok && s == c
	}
	return equal(candidate, cond)
}

func predicateMatch(candidate, cond any) bool {
	name, ok := cond.(Sym)
	if !ok {
		return false
	}
	b, ok := PredicateOf(candidate, string(name))
	return ok && b
}

// --- Type tags -------------------------------------------------------------

// TypeTag matches values whose dynamic type is assignable to a type.
type TypeTag struct {
	t reflect.Type
}

// Type returns a type tag for T. Interface types match every value
// implementing them.
func Type[T any]() TypeTag {
	return TypeTag{t: reflect.TypeOf((*T)(nil)).Elem()}
}

// TypeOf returns a type tag for t.
func TypeOf(t reflect.Type) TypeTag {
	assertThat(t != nil, "type tag for nil type")
	return TypeTag{t: t}
}

// Matches returns true if v's dynamic type is assignable to the tag's type.
func (tt TypeTag) Matches(v any) bool {
	return typeMatches(v, tt.t)
}

func (tt TypeTag) String() string {
	return tt.t.String()
}

func typeMatches(v any, t reflect.Type) bool {
	if v == nil {
		return false
	}
	return reflect.TypeOf(v).AssignableTo(t)
}

// --- Ranges ----------------------------------------------------------------

// Range is an interval of ordered values. Numeric candidates of any numeric
// type are compared by value.
type Range[T constraints.Ordered] struct {
	Lo, Hi    T
	Exclusive bool // exclude Hi
}

// Between returns the closed range [lo, hi].
func Between[T constraints.Ordered](lo, hi T) Range[T] {
	return Range[T]{Lo: lo, Hi: hi}
}

// Until returns the half-open range [lo, hi).
func Until[T constraints.Ordered](lo, hi T) Range[T] {
	return Range[T]{Lo: lo, Hi: hi, Exclusive: true}
}

// Contains is the membership test for values of the range's own type.
func (r Range[T]) Contains(x T) bool {
	if x < r.Lo {
		return false
	}
	if r.Exclusive {
		return x < r.Hi
	}
	return x <= r.Hi
}

// Matches returns true if v is a member of r.
func (r Range[T]) Matches(v any) bool {
	if x, ok := v.(T); ok {
		return r.Contains(x)
	}
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	lo, hi := reflect.ValueOf(r.Lo), reflect.ValueOf(r.Hi)
	switch {
	case isNumeric(rv) && isNumeric(lo):
		f := Range[float64]{Lo: toFloat(lo), Hi: toFloat(hi), Exclusive: r.Exclusive}
		return f.Contains(toFloat(rv))
	case rv.Kind() == reflect.String && lo.Kind() == reflect.String:
		s := Range[string]{Lo: lo.String(), Hi: hi.String(), Exclusive: r.Exclusive}
		return s.Contains(rv.String())
	}
	return false
}

func (r Range[T]) String() string {
	if r.Exclusive {
		return fmt.Sprintf("%v...%v", r.Lo, r.Hi)
	}
	return fmt.Sprintf("%v..%v", r.Lo, r.Hi)
}

// --- Predicates, globs and friends -----------------------------------------

// Where returns a condition from a typed predicate. Candidates which are
// not of type T do not match.
func Where[T any](pred func(T) bool) Condition {
	return ConditionFunc(func(v any) bool {
		x, ok := v.(T)
		return ok && pred(x)
	})
}

type glob string

// Glob matches the string form of a candidate against a pattern with
// '*' and '?' wildcards.
func Glob(pattern string) Condition {
	return glob(pattern)
}

func (g glob) Matches(v any) bool {
	s, ok := stringForm(v)
	return ok && match.Match(s, string(g))
}

func (g glob) String() string {
	return "glob(" + string(g) + ")"
}

type fold struct {
	text, folded string
}

// Fold matches the string form of a candidate against s, ignoring case.
// Comparison uses full Unicode case folding, i.e. "STRASSE" matches "straße".
func Fold(s string) Condition {
	return fold{text: s, folded: cases.Fold().String(s)}
}

func (f fold) Matches(v any) bool {
	s, ok := stringForm(v)
	// a Caser must not be shared between goroutines
	return ok && cases.Fold().String(s) == f.folded
}

func (f fold) String() string {
	return "fold(" + f.text + ")"
}

// Gomega wraps a Gomega matcher. A matcher returning an error does not match.
func Gomega(m types.GomegaMatcher) Condition {
	return ConditionFunc(func(v any) bool {
		ok, err := m.Match(v)
		return err == nil && ok
	})
}

// --- Helpers ---------------------------------------------------------------

// stringForm returns the string representation used by regex, glob and fold
// conditions. Only string-like values have one.
func stringForm(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case Sym:
		return string(x), true
	case []byte:
		return string(x), true
	case fmt.Stringer:
		return x.String(), true
	case error:
		return x.Error(), true
	}
	return stringKind(v)
}

func stringKind(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.String {
		return "", false
	}
	return rv.String(), true
}

// equal compares literals. Numbers are equal if their values are, regardless
// of their Go types.
func equal(a, b any) bool {
	if a == nil || b == nil {
		return isNil(a) && isNil(b)
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if isNumeric(ra) && isNumeric(rb) {
		return numericEqual(ra, rb)
	}
	return reflect.DeepEqual(a, b)
}

func numericEqual(a, b reflect.Value) bool {
	switch {
	case isSigned(a) && isSigned(b):
		return a.Int() == b.Int()
	case isUnsigned(a) && isUnsigned(b):
		return a.Uint() == b.Uint()
	case isSigned(a) && isUnsigned(b):
		return a.Int() >= 0 && uint64(a.Int()) == b.Uint()
	case isUnsigned(a) && isSigned(b):
		return numericEqual(b, a)
	}
	return toFloat(a) == toFloat(b)
}

func isSigned(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUnsigned(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isNumeric(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return true
	}
	return isSigned(rv) || isUnsigned(rv)
}

func toFloat(rv reflect.Value) float64 {
	switch {
	case isSigned(rv):
		return float64(rv.Int())
	case isUnsigned(rv):
		return float64(rv.Uint())
	}
	return rv.Float()
}
