/*
Package twounordered offers two unordered vectors sharing one backing slice.

# Two Bags, One Slice

Clients frequently need to partition a set of items into two groups, e.g.
active and inactive entities, or live and retired work units, and move items
between them at a high rate. Keeping two slices doubles the allocations;
keeping one slice plus a flag per item makes every scan visit both groups.

Vecs keeps both groups in one slice, split by a movable boundary:

	[ a0 a1 a2 … | b0 b1 b2 … ]
	  first        second

Neither group has a defined order. Giving up ordering buys cheap operations:
appending to either group is O(1), and removing k elements costs O(k) plus,
for the first group, a single block exchange of at most k elements instead of
shifting the whole second group.

Access to either group happens through a view obtained from the container
(First or Second). A view is a short-lived handle; obtaining another view or
touching the container's buffer directly ends its life, and every later use of
the old view panics. Go has no borrow checker, so this is how the package
ensures that a caller never mutates one region while holding on to a stale
picture of the other.

# Order Does Not Matter

Every mutating operation is free to permute elements of both regions.
A push to the first region will move an element of the second region to the
end of the slice; truncating the first region swaps a block of the second
region into the gap. Clients must never rely on positions within a region.
*/
package twounordered

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// UnorderedError is an error type for the twounordered module.
type UnorderedError string

func (e UnorderedError) Error() string {
	return string(e)
}

// ErrStaleView is raised whenever a region view is used after another view
// has been obtained or the container's buffer has been accessed directly.
const ErrStaleView = UnorderedError("region view used after its container moved on")

// ErrLayoutMismatch is raised by Reinterpret if the element types differ in
// size or alignment.
const ErrLayoutMismatch = UnorderedError("element types differ in size or alignment")

// ErrIndexOutOfBounds is flagged whenever a count or index is negative or
// beyond the length of the backing slice.
const ErrIndexOutOfBounds = UnorderedError("index out of bounds")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = UnorderedError("illegal arguments")
