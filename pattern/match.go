package pattern

import (
	"golang.org/x/exp/slices"

	"github.com/npillmayer/pmatch/branch"
)

// Match is a configured pattern match. A Match is immutable and may be
// called concurrently, provided its handlers may.
type Match struct {
	kind       Kind
	evaluators []branch.Evaluator // non-default clauses, in registration order
	dflt       branch.Evaluator
	exhaustive bool
	given      []string
	lacking    error
}

// Evaluate applies m to target. The result of the first matching clause is
// returned; if there is none, the default clause is run. An exhaustive match
// without a default returns an error wrapping ErrExhaustive if either its
// clauses do not cover all branches of its kind, or target matched none of
// them.
func (m *Match) Evaluate(target any) (branch.Result, error) {
	if m.lacking != nil {
		return branch.NoMatch, m.lacking
	}
	for _, e := range m.evaluators {
		if r := e.Evaluate(target); r.Matched {
			return r, nil
		}
	}
	if m.dflt != nil {
		return m.dflt.Evaluate(target), nil
	}
	if m.exhaustive {
		return branch.NoMatch, &MatchNotMetError{Target: target}
	}
	tracer().Debugf("no clause matched %v", target)
	return branch.NoMatch, nil
}

// Call applies m to target and returns the output of the clause's handler,
// or nil if no clause matched.
func (m *Match) Call(target any) (any, error) {
	r, err := m.Evaluate(target)
	return r.Value, err
}

// Func returns m.Call as a function value.
func (m *Match) Func() func(any) (any, error) {
	return m.Call
}

// Exhaustive reports whether m is exhaustive.
func (m *Match) Exhaustive() bool {
	return m.exhaustive
}

// ExhaustiveNoDefault reports whether m is exhaustive and lacks a default
// clause.
func (m *Match) ExhaustiveNoDefault() bool {
	return m.exhaustive && m.dflt == nil
}

// Expected returns the names of the branches available to m.
func (m *Match) Expected() []string {
	return m.kind.Names()
}

// Given returns the branch names of the clauses of m, in registration order.
func (m *Match) Given() []string {
	return slices.Clone(m.given)
}

// Lacking returns a *MissingBranchesError if m is exhaustive without a
// default and does not have a clause for every branch of its kind.
func (m *Match) Lacking() error {
	return m.lacking
}

func (m *Match) checkBranches() error {
	if !m.ExhaustiveNoDefault() {
		return nil
	}
	expected := m.kind.Names()
	if sameNames(expected, m.given) {
		return nil
	}
	return &MissingBranchesError{Expected: expected, Given: m.Given()}
}

// sameNames compares two lists of names as sets.
func sameNames(a, b []string) bool {
	a, b = slices.Clone(a), slices.Clone(b)
	slices.Sort(a)
	slices.Sort(b)
	return slices.Equal(slices.Compact(a), slices.Compact(b))
}
