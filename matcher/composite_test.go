package matcher_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/npillmayer/pmatch/matcher"
)

type employee struct {
	Name string
	Age  int
}

func (e employee) Senior() bool {
	return e.Age >= 60
}

func (e employee) Title() string {
	return "Dr. " + e.Name
}

func TestCompositeConfiguration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmatch.matcher")
	defer teardown()
	//
	_, err := All()
	require.ErrorIs(t, err, ErrNoMatchers)
	_, err = AnyOf(1, Keys{"a": 1})
	require.ErrorIs(t, err, ErrMultipleMatchers)
	_, err = New(Not, nil, Keys{})
	require.ErrorIs(t, err, ErrNoMatchers)
	assert.Panics(t, func() { MustNone() })
	//
	m, err := All(Keys{"a": 1}, Keys{"b": 2})
	require.NoError(t, err)
	assert.True(t, m.Matches(map[string]int{"a": 1, "b": 2}), "expected merged keys to match")
	assert.Equal(t, And, m.Combinator())
}

func TestCompositeMatches(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmatch.matcher")
	defer teardown()
	//
	person := MustAll(Keys{
		"name": regexp.MustCompile(`^F`),
		"age":  Between(30, 50),
	})
	tests := []struct {
		name     string
		matcher  *Composite
		target   any
		expected bool
	}{
		{"and over scalar", MustAll(Type[int](), Sym("even")), 4, true},
		{"and over scalar fails", MustAll(Type[int](), Sym("even")), 3, false},
		{"or over scalar", MustAny(1, 2, 3), 2, true},
		{"or over scalar fails", MustAny(1, 2, 3), 5, false},
		{"not over scalar", MustNone(1, 2), 3, true},
		{"not over scalar fails", MustNone(1, 2), 1, false},
		{"positional by index", MustAll(Any, Between(1, 10)), []any{"x", 5}, true},
		{"positional length mismatch", MustAll(Any, Between(1, 10)), []any{"x"}, false},
		{"positional longer target", MustAll(Any, Any), []int{1, 2, 3}, false},
		{"positional equal literal", MustAll(1, 2), []any{1, 2}, true},
		{"not with equal literal", MustNone(1, 2), []any{1, 2}, true},
		{"not by index", MustNone(1, 2), []int{3, 4}, true},
		{"not by index fails", MustNone(1, 2), []int{3, 2}, false},
		{"keyed map", person, map[string]any{"name": "Foo", "age": 42}, true},
		{"keyed map missing key", person, map[string]any{"name": "Foo"}, false},
		{"keyed map wrong value", person, map[string]any{"name": "Bar", "age": 42}, false},
		{"keyed symbol map", person, map[any]any{Sym("name"): "Foo", Sym("age"): 42}, true},
		{"keyed struct", person, employee{Name: "Foo", Age: 42}, true},
		{"keyed struct pointer", person, &employee{Name: "Foo", Age: 29}, false},
		{"keyed scalar", person, 42, false},
		{"keyed nil struct pointer", person, (*employee)(nil), false},
		{"keyed nil pointer accessor", MustAll(Keys{"title": Any}), (*employee)(nil), false},
		{"keyed accessor through pointer", MustAll(Keys{"title": "Dr. Foo"}), &employee{Name: "Foo"}, true},
		{"not keyed nil pointer", MustNone(Keys{"title": "x"}), (*employee)(nil), true},
		{"predicate nil pointer", MustAll(Sym("senior")), (*employee)(nil), false},
		{"predicate through pointer", MustAll(Sym("senior")), &employee{Age: 61}, true},
		{"or keyed", MustAny(Keys{"x": 1, "y": 2}), map[string]int{"x": 0, "y": 2}, true},
		{"not keyed", MustNone(Keys{"x": 1}), map[string]int{"x": 2}, true},
		{"not keyed missing", MustNone(Keys{"x": 1}), map[string]int{}, true},
		{"nested composite", MustAll(MustAny(1, 2), Any), []any{2, "z"}, true},
		{"nested composite fails", MustAll(MustAny(1, 2), Any), []any{3, "z"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.matcher.Matches(tt.target))
		})
	}
}

func TestNestedKeys(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmatch.matcher")
	defer teardown()
	//
	m := MustAll(Keys{"a": Keys{"b": Keys{"c": Between(1, 10)}}})
	assert.True(t, m.Matches(map[string]any{"a": map[string]any{"b": map[string]any{"c": 5}}}))
	assert.False(t, m.Matches(map[string]any{"a": map[string]any{"b": map[string]any{"c": 50}}}))
	assert.False(t, m.Matches(map[string]any{"a": 5}))
	assert.False(t, m.Matches(map[string]any{"a": map[string]any{}}))
	//
	empty := MustAll(Keys{"a": Keys{}})
	assert.True(t, empty.Matches(map[string]any{"a": map[string]any{"anything": 1}}))
	assert.False(t, empty.Matches(map[string]any{"a": 1}))
}

func TestCompositeString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmatch.matcher")
	defer teardown()
	//
	m := MustAll(Keys{"name": "Foo", "tags": Keys{"x": MustAny(1, 2)}})
	s := m.String()
	t.Logf("\n%s", s)
	for _, part := range []string{"and", `name: "Foo"`, "tags:", "x: or"} {
		assert.True(t, strings.Contains(s, part), "expected %q in condition tree", part)
	}
}

func TestCompositeFunc(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmatch.matcher")
	defer teardown()
	//
	even := MustAll(Sym("even")).Func()
	var evens []int
	for _, n := range []int{1, 2, 3, 4} {
		if even(n) {
			evens = append(evens, n)
		}
	}
	assert.Equal(t, []int{2, 4}, evens)
}
