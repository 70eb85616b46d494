package branch

import (
	"fmt"

	"github.com/npillmayer/pmatch/destructure"
	"github.com/npillmayer/pmatch/matcher"
)

// Result is the outcome of evaluating a branch. The zero value is NoMatch.
type Result struct {
	Matched bool
	Value   any // output of the handler, if matched
}

// NoMatch signals that a branch did not apply to a target.
var NoMatch = Result{}

// Matched wraps the output of a handler as a successful result.
func Matched(v any) Result {
	return Result{Matched: true, Value: v}
}

// Get returns the value and the match flag of r.
func (r Result) Get() (any, bool) {
	return r.Value, r.Matched
}

func (r Result) String() string {
	if !r.Matched {
		return "<no match>"
	}
	return fmt.Sprintf("<matched %v>", r.Value)
}

// Evaluator is a guarded function from a target to a Result.
type Evaluator interface {
	Evaluate(target any) Result
}

// EvaluatorFunc adapts a function to the Evaluator interface.
type EvaluatorFunc func(target any) Result

// Evaluate calls f(target).
func (f EvaluatorFunc) Evaluate(target any) Result {
	return f(target)
}

// --- Branch definitions ----------------------------------------------------

// Branch is a named matching rule. Branches are immutable values and are
// usually defined once, at package level.
type Branch struct {
	name         string
	precondition matcher.Condition
	extractor    Extractor
	destructure  bool
	dflt         bool
}

// Option configures a branch definition.
type Option func(Branch) Branch

// New defines a branch. Without options, a branch accepts every target and
// hands it to the condition unchanged.
func New(name string, opts ...Option) Branch {
	assertThat(name != "", "branch name must not be empty")
	b := Branch{
		name:         name,
		precondition: matcher.Any,
		extractor:    Identity,
	}
	for _, opt := range opts {
		b = opt(b)
	}
	return b
}

// Precondition sets a gate the raw target has to pass before extraction.
func Precondition(cond any) Option {
	return func(b Branch) Branch {
		b.precondition = matcher.Compile(cond)
		return b
	}
}

// Extract sets the extractor of a branch. Multiple extractors are applied
// one after another, left to right.
func Extract(fns ...Extractor) Option {
	return func(b Branch) Branch {
		assertThat(len(fns) > 0, "branch %q: no extractor given", b.name)
		for _, fn := range fns {
			assertThat(fn != nil, "extractor of branch %q is nil", b.name)
		}
		b.extractor = Chain(fns...)
		return b
	}
}

// ExtractField extracts the field or key called name from the target.
func ExtractField(name string) Option {
	return Extract(FieldExtractor(name))
}

// ExtractLast extracts the last element of a sequence target.
func ExtractLast() Option {
	return Extract(LastExtractor)
}

// ExtractIndex extracts the element at position i of a sequence target.
func ExtractIndex(i int) Option {
	return Extract(IndexExtractor(i))
}

// Destructure makes handlers of a branch receive destructured arguments.
func Destructure(on bool) Option {
	return func(b Branch) Branch {
		b.destructure = on
		return b
	}
}

// Default marks a branch as the fallback branch of a pattern match.
func Default() Option {
	return func(b Branch) Branch {
		b.dflt = true
		return b
	}
}

// Name returns the name of b, which doubles as its registration key.
func (b Branch) Name() string {
	return b.name
}

// IsDefault reports whether b is a default branch.
func (b Branch) IsDefault() bool {
	return b.dflt
}

// Destructures reports whether b destructures by default.
func (b Branch) Destructures() bool {
	return b.destructure
}

func (b Branch) String() string {
	if b.dflt {
		return b.name + "(default)"
	}
	return b.name
}

// --- Evaluation ------------------------------------------------------------

// Evaluator creates a guarded evaluator for b. For non-default branches,
// cond is applied to the extracted value; a nil cond accepts every value.
// Default branches skip both precondition and cond and always match.
func (b Branch) Evaluator(cond matcher.Condition, d destructure.Destructurer) Evaluator {
	return EvaluatorFunc(func(target any) Result {
		if b.dflt {
			return Matched(d.Call(b.extractor(target)))
		}
		if !b.precondition.Matches(target) {
			tracer().Debugf("branch %s: precondition failed", b.name)
			return NoMatch
		}
		v := b.extractor(target)
		if cond != nil && !cond.Matches(v) {
			return NoMatch
		}
		tracer().Debugf("branch %s: matched", b.name)
		return Matched(d.Call(v))
	})
}

// Build creates a guarded evaluator for b from a list of conditions, which
// are combined with And. An empty list matches every extracted value.
func (b Branch) Build(conds []any, d destructure.Destructurer) (Evaluator, error) {
	if len(conds) == 0 || b.dflt {
		return b.Evaluator(nil, d), nil
	}
	c, err := matcher.All(conds...)
	if err != nil {
		return nil, err
	}
	return b.Evaluator(c, d), nil
}
