/*
Package inspect renders the contents of a twounordered.Vecs for debugging.

Three renderings are offered: Graphviz DOT (Dot), colored console output
(Print), and an HTML table (HTML). All of them read the whole buffer of a
container, i.e. calling them ends the life of any view obtained from it.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package inspect

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'twounordered'
func tracer() tracing.Trace {
	return tracing.Select("twounordered")
}
