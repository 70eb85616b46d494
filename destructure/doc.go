/*
Package destructure expands matched values into positional handler arguments.

Go closures cannot be asked for the names of their parameters, so a
destructuring handler is registered together with an explicit list of field
names:

   d := destructure.New(true, func(args ...any) any {
       return fmt.Sprintf("%s is %d", args[0], args[1])
   }, "name", "age")
   d.Call(map[string]any{"name": "Foo", "age": 42})   // "Foo is 42"

Keyed values are read by key; a missing key yields nil. All other values are
read by field or accessor name; a missing accessor yields false. A
destructurer without field names spreads sequences into positional arguments.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package destructure

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pmatch.destructure'.
func tracer() tracing.Trace {
	return tracing.Select("pmatch.destructure")
}
