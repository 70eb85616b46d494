package branch

import (
	"github.com/npillmayer/pmatch/matcher"
)

// Tags of result pairs.
const (
	OK  = matcher.Sym("ok")
	Err = matcher.Sym("err")
)

// Tagged returns a condition for pairs whose first element is tag. The plain
// string form of the tag is accepted as well, i.e. both [:ok, 4] and
// ["ok", 4] are tagged with OK.
func Tagged(tag matcher.Sym) matcher.Condition {
	return matcher.ConditionFunc(func(v any) bool {
		seq, ok := matcher.AsIndexed(v)
		if !ok || seq.Len() != 2 {
			return false
		}
		switch first := seq.Index(0).(type) {
		case matcher.Sym:
			return first == tag
		case string:
			return first == string(tag)
		}
		return false
	})
}

// Predefined branches.
var (
	// When applies its conditions to the target.
	When = New("when")
	// Else is the default branch.
	Else = New("else", Default())
	// Success matches pairs tagged with OK and extracts the value.
	Success = New("success", Precondition(Tagged(OK)), ExtractLast())
	// Failure matches pairs tagged with Err and extracts the error.
	Failure = New("failure", Precondition(Tagged(Err)), ExtractLast())
	// Error is Failure under a different name.
	Error = New("error", Precondition(Tagged(Err)), ExtractLast())
	// Where matches against the "value" of a monadic container.
	Where = New("where", ExtractField("value"))
	// MonadicElse is the default branch for monadic containers. Its handler
	// receives the container's "value".
	MonadicElse = New("else", ExtractField("value"), Default())
)
