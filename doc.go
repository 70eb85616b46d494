/*
Package pmatch is a runtime pattern-matching library.

Matchers are built from conditions, i.e. plain Go values: literals, types,
ranges, regular expressions, predicate names, nested maps of conditions and
more (see package matcher). Composite matchers combine conditions with
All, Any or None:

   adult, _ := pmatch.All(pmatch.Keys{"age": matcher.Between(18, 130)})
   adult.Matches(map[string]any{"name": "Foo", "age": 42})   // true

A pattern match dispatches a target to the first of a list of clauses it
satisfies, optionally falling back to a default:

   m, _ := pmatch.Match(func(b *pattern.Builder) {
       b.When(pmatch.Sym("even")).Then(func(args ...any) any { return "even" })
       b.Else().Then(func(args ...any) any { return "odd" })
   })
   m.Call(4)   // "even", nil

Result pairs, tagged with branch.OK or branch.Err, are matched with
ResultMatch. Custom kinds of pattern matches are built from custom branches
with CreateBranch and CreatePatternMatch; packages maybe, result and either
show how to do this for container types.

The engine holds no mutable state. Matchers and pattern matches may be
shared between goroutines.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pmatch
