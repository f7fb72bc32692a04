/*
Package cli drives segment trees from line-oriented text input.

It offers a one-shot demonstration, which builds a tree from a single line of
integers and prints its internals, and an interactive session with commands to
query and update a tree.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer.
Please refer to the LICENSE file for details.
*/
package cli

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
