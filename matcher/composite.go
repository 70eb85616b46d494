package matcher

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"

	"github.com/xlab/treeprint"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ErrNoMatchers is returned if a composite matcher is requested without any conditions.
var ErrNoMatchers = errors.New("no matchers were provided")

// ErrMultipleMatchers is returned if positional and keyed conditions are mixed.
var ErrMultipleMatchers = errors.New("cannot provide both positional and keyed matchers")

// Combinator determines how the results of a composite's conditions are combined.
type Combinator int8

// Combinators for composite matchers.
const (
	And Combinator = iota // all conditions must match; stops at the first miss
	Or                    // at least one condition must match; stops at the first hit
	Not                   // no condition may match; stops at the first hit
)

func (c Combinator) String() string {
	switch c {
	case And:
		return "and"
	case Or:
		return "or"
	case Not:
		return "not"
	}
	return fmt.Sprintf("combinator(%d)", int(c))
}

// Composite is a boolean predicate built from a combinator and either a list of
// positional conditions or a map of keyed conditions. A Composite is immutable
// and may be shared between goroutines.
type Composite struct {
	comb       Combinator
	positional []any    // conditions as given
	keyed      Keys     // conditions as given
	keys       []string // sorted keys of keyed
	conds      []any    // compiled conditions, parallel to positional or keys
}

var _ Condition = (*Composite)(nil)

// New creates a composite matcher. Exactly one of positional and keyed must
// be non-empty.
func New(comb Combinator, positional []any, keyed Keys) (*Composite, error) {
	assertThat(comb >= And && comb <= Not, "invalid combinator %d", comb)
	switch {
	case len(positional) == 0 && len(keyed) == 0:
		return nil, ErrNoMatchers
	case len(positional) > 0 && len(keyed) > 0:
		return nil, ErrMultipleMatchers
	}
	c := &Composite{comb: comb}
	if len(keyed) > 0 {
		c.keyed = maps.Clone(keyed)
		c.keys = maps.Keys(keyed)
		slices.Sort(c.keys)
		c.conds = make([]any, len(c.keys))
		for i, k := range c.keys {
			c.conds[i] = compile(keyed[k], comb)
		}
	} else {
		c.positional = slices.Clone(positional)
		c.conds = make([]any, len(positional))
		for i, cond := range positional {
			c.conds[i] = compile(cond, comb)
		}
	}
	tracer().Debugf("new composite matcher %s with %d conditions", comb, len(c.conds))
	return c, nil
}

// All creates an And-matcher. Arguments of type Keys are keyed conditions,
// all other arguments are positional conditions.
func All(conds ...any) (*Composite, error) {
	positional, keyed := split(conds)
	return New(And, positional, keyed)
}

// AnyOf creates an Or-matcher; see All for the arguments.
func AnyOf(conds ...any) (*Composite, error) {
	positional, keyed := split(conds)
	return New(Or, positional, keyed)
}

// None creates a Not-matcher; see All for the arguments.
func None(conds ...any) (*Composite, error) {
	positional, keyed := split(conds)
	return New(Not, positional, keyed)
}

// MustAll is like All, but panics on a configuration error.
func MustAll(conds ...any) *Composite {
	return must(All(conds...))
}

// MustAny is like AnyOf, but panics on a configuration error.
func MustAny(conds ...any) *Composite {
	return must(AnyOf(conds...))
}

// MustNone is like None, but panics on a configuration error.
func MustNone(conds ...any) *Composite {
	return must(None(conds...))
}

func must(c *Composite, err error) *Composite {
	if err != nil {
		panic(fmt.Sprintf("pmatch.matcher: %v", err))
	}
	return c
}

// split separates keyed from positional conditions. Multiple Keys are merged.
func split(conds []any) ([]any, Keys) {
	var positional []any
	var keyed Keys
	for _, cond := range conds {
		if k, ok := cond.(Keys); ok {
			if keyed == nil {
				keyed = make(Keys, len(k))
			}
			for key, v := range k {
				keyed[key] = v
			}
			continue
		}
		positional = append(positional, cond)
	}
	return positional, keyed
}

// Combinator returns the combinator of c.
func (c *Composite) Combinator() Combinator {
	return c.comb
}

// Func returns c as a plain predicate function, e.g., for filtering.
func (c *Composite) Func() func(any) bool {
	return c.Matches
}

// --- Evaluation ------------------------------------------------------------

// Matches evaluates c against target.
//
// If target equals the collection of conditions c was built from, it matches
// right away. Otherwise positional conditions are compared index by index to
// sequences of the same length, or each against the target as a whole for all
// other targets. Keyed conditions require the key to be present in a map
// target, or a field/accessor of that name to be present on other targets.
func (c *Composite) Matches(target any) bool {
	if c.keyed != nil {
		return c.matchKeyed(target)
	}
	return c.matchPositional(target)
}

func (c *Composite) matchPositional(target any) bool {
	if reflect.DeepEqual(c.positional, target) {
		return true
	}
	if seq, ok := AsIndexed(target); ok {
		if seq.Len() != len(c.conds) {
			return false
		}
		return c.combine(func(i int) bool {
			return matchValue(seq.Index(i), c.conds[i])
		})
	}
	return c.combine(func(i int) bool {
		return matchValue(target, c.conds[i])
	})
}

func (c *Composite) matchKeyed(target any) bool {
	if reflect.DeepEqual(c.keyed, target) || reflect.DeepEqual(map[string]any(c.keyed), target) {
		return true
	}
	if m, ok := AsKeyed(target); ok {
		return c.combine(func(i int) bool {
			return matchEntry(m, c.keys[i], c.conds[i])
		})
	}
	return c.combine(func(i int) bool {
		v, ok := FieldOf(target, c.keys[i])
		return ok && matchValue(v, c.conds[i])
	})
}

// matchEntry matches the value stored under key. If the key is present in
// more than one form (string and Sym), every form is tried.
func matchEntry(m Keyed, key string, cond any) bool {
	if rm, ok := m.(reflectMap); ok {
		vals := rm.lookupForms(key)
		for _, v := range vals {
			if matchValue(v, cond) {
				return true
			}
		}
		return false
	}
	v, ok := m.Lookup(key)
	return ok && matchValue(v, cond)
}

func (c *Composite) combine(test func(int) bool) bool {
	switch c.comb {
	case Or:
		for i := range c.conds {
			if test(i) {
				return true
			}
		}
		return false
	case Not:
		for i := range c.conds {
			if test(i) {
				return false
			}
		}
		return true
	}
	for i := range c.conds {
		if !test(i) {
			return false
		}
	}
	return true
}

// --- Nested keyed conditions -----------------------------------------------

// nested is the compiled form of a Keys condition. Keyed candidates are
// matched recursively, all others are compared literally.
type nested struct {
	keys Keys
	sub  *Composite // nil for empty keys
}

func compile(cond any, comb Combinator) any {
	k, ok := cond.(Keys)
	if !ok {
		return cond
	}
	n := &nested{keys: k}
	if len(k) > 0 {
		n.sub, _ = New(comb, nil, k)
	}
	return n
}

func (n *nested) Matches(v any) bool {
	if _, ok := AsKeyed(v); !ok {
		return equal(v, n.keys)
	}
	return n.sub == nil || n.sub.Matches(v)
}

// --- Printing --------------------------------------------------------------

// String renders the condition tree of c.
func (c *Composite) String() string {
	tree := treeprint.New()
	c.describe(tree.AddBranch(c.comb.String()))
	return tree.String()
}

func (c *Composite) describe(tree treeprint.Tree) {
	for i, cond := range c.conds {
		label := fmt.Sprintf("[%d] ", i)
		if c.keyed != nil {
			label = c.keys[i] + ": "
		}
		describeCondition(tree, label, cond)
	}
}

func describeCondition(tree treeprint.Tree, label string, cond any) {
	switch x := cond.(type) {
	case *Composite:
		x.describe(tree.AddBranch(label + x.comb.String()))
	case *nested:
		if x.sub == nil {
			tree.AddNode(label + "{}")
			return
		}
		x.sub.describe(tree.AddBranch(label + "{…}"))
	case *regexp.Regexp:
		tree.AddNode(label + "/" + x.String() + "/")
	case string:
		tree.AddNode(fmt.Sprintf("%s%q", label, x))
	case nil:
		tree.AddNode(label + "nil")
	case func(any) bool, ConditionFunc:
		tree.AddNode(label + "ƒ")
	case fmt.Stringer:
		tree.AddNode(label + x.String())
	default:
		tree.AddNode(fmt.Sprintf("%s%v", label, x))
	}
}
