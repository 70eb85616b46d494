package branch

import (
	"github.com/npillmayer/pmatch/destructure"
	"github.com/npillmayer/pmatch/matcher"
)

// Guarded is a stand-alone guarded evaluator: a set of conditions, combined
// with And, attached to a handler.
type Guarded struct {
	cond matcher.Condition
	eval Evaluator
}

var _ Evaluator = (*Guarded)(nil)

// Guard creates a guarded evaluator with the semantics of a When-branch.
// Without conditions it matches every target. A nil handler yields the
// target itself.
func Guard(fn destructure.Func, conds ...any) (*Guarded, error) {
	g := &Guarded{cond: matcher.Any}
	if len(conds) > 0 {
		c, err := matcher.All(conds...)
		if err != nil {
			return nil, err
		}
		g.cond = c
	}
	g.eval = When.Evaluator(g.cond, destructure.New(false, fn))
	return g, nil
}

// Evaluate applies g to target.
func (g *Guarded) Evaluate(target any) Result {
	return g.eval.Evaluate(target)
}

// Matches reports whether target satisfies the conditions of g, without
// calling the handler.
func (g *Guarded) Matches(target any) bool {
	return g.cond.Matches(target)
}
