package pmatch

import (
	"github.com/npillmayer/pmatch/branch"
	"github.com/npillmayer/pmatch/destructure"
	"github.com/npillmayer/pmatch/matcher"
	"github.com/npillmayer/pmatch/pattern"
)

// Frequently used types of the matching engine.
type (
	Keys      = matcher.Keys
	Sym       = matcher.Sym
	Condition = matcher.Condition
	Func      = destructure.Func
)

// Anything is the wildcard condition.
var Anything = matcher.Any

// --- Composite matchers ----------------------------------------------------

// All creates a matcher which requires every condition to hold.
func All(conds ...any) (*matcher.Composite, error) {
	return matcher.All(conds...)
}

// Any creates a matcher which requires at least one condition to hold.
func Any(conds ...any) (*matcher.Composite, error) {
	return matcher.AnyOf(conds...)
}

// None creates a matcher which requires no condition to hold.
func None(conds ...any) (*matcher.Composite, error) {
	return matcher.None(conds...)
}

// Dig creates a condition for the value at a dot-separated path inside a
// target.
func Dig(path string, cond any) Condition {
	return matcher.Dig(path, cond)
}

// --- Guards and pattern matches --------------------------------------------

// Guard attaches a handler to a set of conditions.
func Guard(fn Func, conds ...any) (*branch.Guarded, error) {
	return branch.Guard(fn, conds...)
}

// MatchGuards applies a list of guards to target and returns the output of
// the first one matching, or nil.
func MatchGuards(target any, guards ...any) (any, error) {
	g, err := pattern.Sequence(guards...)
	if err != nil {
		return nil, err
	}
	return g.Call(target), nil
}

// Match creates a pattern match with branches 'when' and 'else'.
func Match(configure func(*pattern.Builder), opts ...pattern.Option) (*pattern.Match, error) {
	return pattern.Standard.New(configure, opts...)
}

// ResultMatch creates a pattern match with branches 'success' and 'failure'
// for result pairs.
func ResultMatch(configure func(*pattern.Builder), opts ...pattern.Option) (*pattern.Match, error) {
	return pattern.Results.New(configure, opts...)
}

// Case creates a pattern match with branches 'when' and 'else' and applies
// it to target right away.
func Case(target any, configure func(*pattern.Builder), opts ...pattern.Option) (any, error) {
	m, err := Match(configure, opts...)
	if err != nil {
		return nil, err
	}
	return m.Call(target)
}

// CreateBranch defines a custom branch.
func CreateBranch(name string, opts ...branch.Option) branch.Branch {
	return branch.New(name, opts...)
}

// CreatePatternMatch defines a custom kind of pattern match.
func CreatePatternMatch(branches ...branch.Branch) pattern.Kind {
	return pattern.Define(branches...)
}
