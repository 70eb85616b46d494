/*
Package matcher implements the value and composite matchers of pmatch.

A condition is any Go value. How a condition is applied to a candidate value
depends on what the condition is:

   Any / Wildcard          matches everything
   Type[T]()               candidate's dynamic type is assignable to T
   Sym("even")             candidate equals the symbol, or its predicate "even" holds
   *regexp.Regexp          matches the string form of the candidate
   Between(1, 10)          candidate is a member of the range
   Keys{"a": …}            candidate is a keyed container matching the nested conditions
   Condition               anything with a Matches(any) bool method
   func(any) bool          a predicate function
   GomegaMatcher           a Gomega matcher; errors count as a miss
   anything else           a literal, compared structurally

Composite matchers combine a list of positional conditions or a map of keyed
conditions under one of the combinators And, Or, Not:

   m := matcher.MustAll(matcher.Keys{"name": regexp.MustCompile(`^F`), "age": matcher.Between(30, 50)})
   m.Matches(map[string]any{"name": "Foo", "age": 42})   // true

Positional conditions are compared by index against slices, arrays and
Indexed values (lengths must be equal), and against the whole value
otherwise. Keyed conditions are looked up in maps and Keyed values, and read
as fields or accessor methods from all other values. Targets may implement
Matchable to expose fields and predicates explicitly; plain structs are read
through a small, cached reflection layer.

Missing fields, keys and predicates are a non-match, never an error.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package matcher

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pmatch.matcher'.
func tracer() tracing.Trace {
	return tracing.Select("pmatch.matcher")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("pmatch.matcher: "+msg, msgargs...)
		panic(msg)
	}
}
