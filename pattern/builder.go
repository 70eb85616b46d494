package pattern

import (
	"errors"
	"fmt"

	"github.com/npillmayer/pmatch/branch"
	"github.com/npillmayer/pmatch/destructure"
)

// Builder is handed to the configuration callback of a pattern match.
type Builder struct {
	kind    Kind
	conf    config
	clauses []*Clause
	errs    []error
}

// Clause is a registered branch with its conditions and handler. Without a
// call to Then, the handler returns the (extracted) target.
type Clause struct {
	branch      branch.Branch
	conds       []any
	destructure bool
	params      []string
	fn          destructure.Func
}

// On registers a clause for the branch called name.
func (b *Builder) On(name string, conds ...any) *Clause {
	c := &Clause{conds: conds}
	br, ok := b.kind.Lookup(name)
	if !ok {
		err := fmt.Errorf("%w: %q", ErrUnknownBranch, name)
		tracer().Errorf("%v", err)
		b.errs = append(b.errs, err)
		return c // not registered
	}
	c.branch = br
	b.clauses = append(b.clauses, c)
	return c
}

// When registers a clause for branch 'when'.
func (b *Builder) When(conds ...any) *Clause {
	return b.On(branch.When.Name(), conds...)
}

// Else registers a clause for branch 'else'.
func (b *Builder) Else() *Clause {
	return b.On(branch.Else.Name())
}

// Success registers a clause for branch 'success'.
func (b *Builder) Success(conds ...any) *Clause {
	return b.On(branch.Success.Name(), conds...)
}

// Failure registers a clause for branch 'failure'.
func (b *Builder) Failure(conds ...any) *Clause {
	return b.On(branch.Failure.Name(), conds...)
}

// Where registers a clause for branch 'where'.
func (b *Builder) Where(conds ...any) *Clause {
	return b.On(branch.Where.Name(), conds...)
}

// Destructure makes the handler of c receive the named fields of the matched
// value as arguments. Without names, sequences are spread into arguments.
func (c *Clause) Destructure(params ...string) *Clause {
	c.destructure = true
	c.params = params
	return c
}

// Then sets the handler of c.
func (c *Clause) Then(fn destructure.Func) {
	c.fn = fn
}

// Yield makes c return the matched value.
func (c *Clause) Yield() {
	c.fn = nil
}

func (b *Builder) build() (*Match, error) {
	m := &Match{
		kind:       b.kind,
		exhaustive: b.conf.exhaustive,
	}
	for _, c := range b.clauses {
		name := c.branch.Name()
		on := c.destructure || b.conf.destructure || c.branch.Destructures()
		e, err := c.branch.Build(c.conds, destructure.New(on, c.fn, c.params...))
		if err != nil {
			b.errs = append(b.errs, fmt.Errorf("branch %s: %w", name, err))
			continue
		}
		m.given = append(m.given, name)
		if c.branch.IsDefault() {
			if m.dflt != nil {
				b.errs = append(b.errs, fmt.Errorf("%w: %s", ErrMultipleDefaults, name))
				continue
			}
			m.dflt = e
			continue
		}
		m.evaluators = append(m.evaluators, e)
	}
	if err := errors.Join(b.errs...); err != nil {
		tracer().Errorf("pattern match not created: %v", err)
		return nil, err
	}
	m.lacking = m.checkBranches()
	tracer().Infof("created pattern match with clauses %v", m.given)
	return m, nil
}
