package pattern

import (
	"github.com/npillmayer/pmatch/branch"
)

// Kind is an ordered set of branch definitions, available to the clauses of
// a pattern match. Kinds are immutable.
type Kind struct {
	branches []branch.Branch
	index    map[string]int
}

// Predefined kinds.
var (
	// Standard provides the branches 'when' and 'else'.
	Standard = Define(branch.When, branch.Else)
	// Results provides the branches 'success' and 'failure' for tagged
	// result pairs.
	Results = Define(branch.Success, branch.Failure)
)

// Define creates a kind from branch definitions. A later definition of a
// name replaces an earlier one, but keeps its position.
func Define(branches ...branch.Branch) Kind {
	k := Kind{index: make(map[string]int, len(branches))}
	for _, b := range branches {
		assertThat(b.Name() != "", "branch definition without a name")
		if i, ok := k.index[b.Name()]; ok {
			k.branches[i] = b
			continue
		}
		k.index[b.Name()] = len(k.branches)
		k.branches = append(k.branches, b)
	}
	return k
}

// With returns a new kind with additional branch definitions.
func (k Kind) With(branches ...branch.Branch) Kind {
	all := make([]branch.Branch, 0, len(k.branches)+len(branches))
	all = append(all, k.branches...)
	return Define(append(all, branches...)...)
}

// Names returns the names of the branches of k, in definition order.
func (k Kind) Names() []string {
	names := make([]string, len(k.branches))
	for i, b := range k.branches {
		names[i] = b.Name()
	}
	return names
}

// Lookup returns the branch definition for name.
func (k Kind) Lookup(name string) (branch.Branch, bool) {
	i, ok := k.index[name]
	if !ok {
		return branch.Branch{}, false
	}
	return k.branches[i], true
}

// New creates a pattern match of kind k. configure is called once, to
// register the clauses of the pattern match. Configuration errors are
// collected and returned together; a nil configure results in a pattern
// match without clauses.
func (k Kind) New(configure func(*Builder), opts ...Option) (*Match, error) {
	var conf config
	for _, opt := range opts {
		conf = opt(conf)
	}
	b := &Builder{kind: k, conf: conf}
	if configure != nil {
		configure(b)
	}
	return b.build()
}

// --- Options ---------------------------------------------------------------

type config struct {
	destructure bool
	exhaustive  bool
}

// Option configures a pattern match.
type Option func(config) config

// Destructure makes every clause of a pattern match destructure the values
// passed to its handler.
func Destructure(on bool) Option {
	return func(c config) config {
		c.destructure = on
		return c
	}
}

// Exhaustive makes a pattern match exhaustive.
func Exhaustive(on bool) Option {
	return func(c config) config {
		c.exhaustive = on
		return c
	}
}
