package matcher

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/patrickmn/go-cache"
)

// Matchable is an interface for types which expose named fields and predicates
// to the matching engine. Both methods report false as their second result if
// the name is unknown to the type.
type Matchable interface {
	Field(name string) (any, bool)
	Predicate(name string) (bool, bool)
}

// Indexed is an interface for sequence-like types. Positional conditions are
// compared to Indexed targets element by element.
type Indexed interface {
	Len() int
	Index(i int) any
}

// Keyed is an interface for map-like types. Keyed conditions are looked up
// in Keyed targets.
type Keyed interface {
	Lookup(key string) (any, bool)
}

// AsIndexed returns v as an Indexed value, if v is a slice, an array or
// implements Indexed. Strings and byte slices are not considered sequences.
func AsIndexed(v any) (Indexed, bool) {
	switch x := v.(type) {
	case nil, string, Sym, []byte:
		return nil, false
	case Indexed:
		return x, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		return reflectSeq{rv}, true
	}
	return nil, false
}

// AsKeyed returns v as a Keyed value, if v is a map or implements Keyed.
func AsKeyed(v any) (Keyed, bool) {
	switch x := v.(type) {
	case nil:
		return nil, false
	case Keyed:
		return x, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Map {
		return reflectMap{rv}, true
	}
	return nil, false
}

// FieldOf reads the field or accessor called name from v. Matchable values are
// asked directly; structs are searched for an exported field or a niladic
// exported method (name, its capitalized form, or a field with a matching json
// tag). The second result is false if v has no such accessor.
func FieldOf(v any, name string) (any, bool) {
	if v == nil {
		return nil, false
	}
	if m, ok := v.(Matchable); ok {
		return m.Field(name)
	}
	rv := reflect.ValueOf(v)
	return lookupAccessor(rv.Type(), name, false).read(rv)
}

// PredicateOf invokes the zero-argument predicate called name on v.
// A trailing '?' in name is ignored. Predicates are searched for in this order:
// Matchable.Predicate, the built-in predicates (even, odd, zero, positive,
// negative, empty, nil), and niladic exported methods returning bool
// (Name, IsName, HasName) or bool fields of structs.
func PredicateOf(v any, name string) (bool, bool) {
	name = strings.TrimSuffix(name, "?")
	if m, ok := v.(Matchable); ok {
		if b, ok := m.Predicate(name); ok {
			return b, true
		}
	}
	if p, ok := builtinPredicates[name]; ok {
		if b, ok := p(v); ok {
			return b, true
		}
	}
	if v == nil {
		return false, false
	}
	rv := reflect.ValueOf(v)
	x, ok := lookupAccessor(rv.Type(), name, true).read(rv)
	if !ok {
		return false, false
	}
	b, ok := x.(bool)
	return b, ok
}

// --- Sequences and maps ----------------------------------------------------

type reflectSeq struct {
	rv reflect.Value
}

func (s reflectSeq) Len() int {
	return s.rv.Len()
}

func (s reflectSeq) Index(i int) any {
	return s.rv.Index(i).Interface()
}

type reflectMap struct {
	rv reflect.Value
}

// Lookup finds the value for key. Maps with interface keys are searched
// for the string form first, then for the Sym form.
func (m reflectMap) Lookup(key string) (any, bool) {
	if vals := m.lookupForms(key); len(vals) > 0 {
		return vals[0], true
	}
	return nil, false
}

// lookupForms returns the values stored under every form of key present in
// the map, string form first.
func (m reflectMap) lookupForms(key string) []any {
	kt := m.rv.Type().Key()
	var vals []any
	switch kt.Kind() {
	case reflect.Interface:
		for _, k := range []any{key, Sym(key)} {
			kv := reflect.ValueOf(k)
			if !kv.Type().AssignableTo(kt) {
				continue
			}
			if e := m.rv.MapIndex(kv); e.IsValid() {
				vals = append(vals, e.Interface())
			}
		}
	case reflect.String:
		if e := m.rv.MapIndex(reflect.ValueOf(key).Convert(kt)); e.IsValid() {
			vals = append(vals, e.Interface())
		}
	}
	return vals
}

// --- Reflection accessors --------------------------------------------------

type accessorKind int8

const (
	noAccessor accessorKind = iota
	viaField
	viaMethod
)

type accessor struct {
	kind  accessorKind
	index []int
}

// Accessors are resolved once per (type, name) and memoized. The cache is
// only ever filled with values derived from type information, so concurrent
// readers always agree on its content.
var accessors = cache.New(cache.NoExpiration, 0)

func lookupAccessor(t reflect.Type, name string, predicate bool) accessor {
	key := typeKey(t) + "|" + name
	if predicate {
		key += "|?"
	}
	if a, found := accessors.Get(key); found {
		return a.(accessor)
	}
	a := resolveAccessor(t, name, predicate)
	accessors.Set(key, a, cache.NoExpiration)
	return a
}

// typeKey identifies t by its runtime type descriptor. Type names are not
// unique: types declared inside functions may share package and name.
func typeKey(t reflect.Type) string {
	return fmt.Sprintf("%p", t)
}

func resolveAccessor(t reflect.Type, name string, predicate bool) accessor {
	if name == "" {
		return accessor{}
	}
	capName := capitalize(name)
	methodNames := []string{name, capName}
	if predicate {
		methodNames = append(methodNames, "Is"+capName, "Has"+capName)
	}
	for _, mn := range methodNames {
		m, ok := t.MethodByName(mn)
		if !ok || !m.IsExported() || m.Type.NumIn() != 1 || m.Type.NumOut() != 1 {
			continue
		}
		if predicate && m.Type.Out(0).Kind() != reflect.Bool {
			continue
		}
		return accessor{kind: viaMethod, index: []int{m.Index}}
	}
	st := t
	for st.Kind() == reflect.Pointer {
		st = st.Elem()
	}
	if st.Kind() != reflect.Struct {
		return accessor{}
	}
	var folded *reflect.StructField
	for _, f := range reflect.VisibleFields(st) {
		if !f.IsExported() || f.Anonymous {
			continue
		}
		if predicate && f.Type.Kind() != reflect.Bool {
			continue
		}
		if f.Name == name || f.Name == capName || jsonName(f) == name {
			return accessor{kind: viaField, index: f.Index}
		}
		if folded == nil && strings.EqualFold(f.Name, name) {
			f := f
			folded = &f
		}
	}
	if folded != nil {
		return accessor{kind: viaField, index: folded.Index}
	}
	return accessor{}
}

func (a accessor) read(rv reflect.Value) (any, bool) {
	switch a.kind {
	case viaMethod:
		if rv.Kind() == reflect.Pointer && rv.IsNil() {
			return nil, false // nil receivers have no accessors
		}
		out := rv.Method(a.index[0]).Call(nil)
		return out[0].Interface(), true
	case viaField:
		for rv.Kind() == reflect.Pointer {
			if rv.IsNil() {
				return nil, false
			}
			rv = rv.Elem()
		}
		f, err := rv.FieldByIndexErr(a.index)
		if err != nil || !f.CanInterface() {
			return nil, false
		}
		return f.Interface(), true
	}
	return nil, false
}

func jsonName(f reflect.StructField) string {
	tag, ok := f.Tag.Lookup("json")
	if !ok {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	return name
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// --- Built-in predicates ---------------------------------------------------

var builtinPredicates = map[string]func(v any) (bool, bool){
	"nil":      isNilPredicate,
	"even":     func(v any) (bool, bool) { return parity(v, 0) },
	"odd":      func(v any) (bool, bool) { return parity(v, 1) },
	"zero":     func(v any) (bool, bool) { return sign(v, func(f float64) bool { return f == 0 }) },
	"positive": func(v any) (bool, bool) { return sign(v, func(f float64) bool { return f > 0 }) },
	"negative": func(v any) (bool, bool) { return sign(v, func(f float64) bool { return f < 0 }) },
	"empty":    isEmpty,
}

func isNilPredicate(v any) (bool, bool) {
	return isNil(v), true
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

func parity(v any, rest uint64) (bool, bool) {
	if v == nil {
		return false, false
	}
	rv := reflect.ValueOf(v)
	switch {
	case isSigned(rv):
		n := rv.Int()
		if n < 0 {
			n = -n
		}
		return uint64(n)%2 == rest, true
	case isUnsigned(rv):
		return rv.Uint()%2 == rest, true
	}
	return false, false
}

func sign(v any, test func(float64) bool) (bool, bool) {
	if v == nil {
		return false, false
	}
	rv := reflect.ValueOf(v)
	if !isNumeric(rv) {
		return false, false
	}
	return test(toFloat(rv)), true
}

func isEmpty(v any) (bool, bool) {
	if ix, ok := v.(Indexed); ok {
		return ix.Len() == 0, true
	}
	if v == nil {
		return false, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len() == 0, true
	}
	return false, false
}
