/*
Package branch implements named matching rules and the guarded evaluators
built from them.

A Branch describes how a target is processed before a user's conditions are
applied to it:

   precondition → extractor → condition → destructure → handler

The precondition is a gate on the raw target, evaluated before the extractor
runs. Extraction makes "unwrap, then match" possible for container types. A
default branch skips precondition and condition; it always matches.

Evaluating a branch results in a Result. A Result with Matched == false is the
no-match signal; it is never confused with a match whose handler returned
false or nil.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package branch

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pmatch.branch'.
func tracer() tracing.Trace {
	return tracing.Select("pmatch.branch")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("pmatch.branch: "+msg, msgargs...)
		panic(msg)
	}
}
