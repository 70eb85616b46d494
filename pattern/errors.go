package pattern

import (
	"errors"
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// Configuration errors.
var (
	ErrMultipleDefaults = errors.New("more than one default branch provided")
	ErrUnknownBranch    = errors.New("unknown branch")
	ErrNotAnEvaluator   = errors.New("all guards must be evaluators")
)

// ErrExhaustive is wrapped by errors of exhaustive pattern matches.
var ErrExhaustive = errors.New("exhaustive match required")

// MissingBranchesError is returned by an exhaustive pattern match without a
// default, which does not specify a clause for every available branch.
type MissingBranchesError struct {
	Expected []string // names of the available branches
	Given    []string // names of the clauses, in registration order
}

func (e *MissingBranchesError) Error() string {
	return fmt.Sprintf("Exhaustive match required: pattern does not specify all branches.\n"+
		"  Expected Branches: %s\n"+
		"  Given Branches:    %s",
		strings.Join(e.Expected, ", "), strings.Join(e.Given, ", "))
}

func (e *MissingBranchesError) Unwrap() error {
	return ErrExhaustive
}

// MatchNotMetError is returned by an exhaustive pattern match without a
// default, if no clause matched a target.
type MatchNotMetError struct {
	Target any
}

func (e *MatchNotMetError) Error() string {
	return "Exhaustive match required: no branch matched " + spew.Sprintf("%#v", e.Target)
}

func (e *MatchNotMetError) Unwrap() error {
	return ErrExhaustive
}
