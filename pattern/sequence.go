package pattern

import (
	"fmt"

	"github.com/npillmayer/pmatch/branch"
)

// Guards is an ordered list of guarded evaluators, the lightweight
// alternative to a configured pattern match.
type Guards struct {
	evaluators []branch.Evaluator
}

// Sequence creates a list of guards. Every argument has to be a
// branch.Evaluator, e.g. as created by branch.Guard.
func Sequence(guards ...any) (*Guards, error) {
	g := &Guards{evaluators: make([]branch.Evaluator, 0, len(guards))}
	for i, x := range guards {
		e, ok := x.(branch.Evaluator)
		if !ok {
			return nil, fmt.Errorf("%w: argument #%d is of type %T", ErrNotAnEvaluator, i, x)
		}
		g.evaluators = append(g.evaluators, e)
	}
	return g, nil
}

// Evaluate returns the result of the first guard matching target.
func (g *Guards) Evaluate(target any) branch.Result {
	for _, e := range g.evaluators {
		if r := e.Evaluate(target); r.Matched {
			return r
		}
	}
	return branch.NoMatch
}

// Call returns the output of the first guard matching target, or nil.
func (g *Guards) Call(target any) any {
	return g.Evaluate(target).Value
}
