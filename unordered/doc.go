/*
Package unordered implements order-insensitive operations on contiguous storage.

Every algorithm in this package is free to permute the elements it works on.
In exchange, removals cost time proportional to the number of elements
visited or removed, never to the number of elements that have to be shifted.

The central abstraction is Retainer, a capability offering a mutable
contiguous view and truncation. Plain slices get it through Vec; the
dual-region container of package twounordered hands it out per region.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package unordered

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'twounordered'
func tracer() tracing.Trace {
	return tracing.Select("twounordered")
}
