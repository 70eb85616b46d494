/*
Package pattern implements pattern-match orchestrators.

A pattern match is configured once, by a callback registering clauses for
named branches, and may then be called any number of times:

   m, err := pattern.Standard.New(func(b *pattern.Builder) {
       b.When(1).Then(func(args ...any) any { return "one" })
       b.When(matcher.Type[string]()).Yield()
       b.Else().Then(func(args ...any) any { return "something else" })
   })
   v, err := m.Call(1)   // "one"

Clauses are tried in registration order; the first match wins. If no clause
matches, the default clause (if any) is run. Without a default the result is
a no-match, not an error.

The set of branches available to a pattern match is its Kind. Kinds are
plain values; custom kinds are put together from branch definitions:

   optional := pattern.Define(maybe.Some, maybe.None)

An exhaustive pattern match requires either a default clause or at least
one clause for every branch of its kind. Note that this is a structural
check of the configuration, not a proof that every possible target is
covered. Exhaustive matches report a target which did not match any clause
as an error.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pattern

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pmatch.pattern'.
func tracer() tracing.Trace {
	return tracing.Select("pmatch.pattern")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("pmatch.pattern: "+msg, msgargs...)
		panic(msg)
	}
}
