/*
Package segtree implements a static segment tree over a fixed-size sequence.

Segment Trees

A segment tree is a complete binary tree where every node stores an aggregate
of a contiguous sub-range of the underlying sequence. It supports

	Operation         |  Cost
	------------------+----------
	Build             |  O(n)
	Get               |  O(1)
	Set               |  O(log n)
	Query(first,last) |  O(log n)

The tree is stored in a flat slice, without any node objects. Parent/child
relationships are pure index arithmetic:

	[:::::::::::::::0::::::::::::::::::]
	[::::::1:::::::] [::::::::2::::::::]
	[::3::] [::4:::] [:::5:::] [:::6:::]
	[7] [8] [9] [10] [11] [12] [13] [14] <- node indices
	{0} {1} {2} {3}  {4}  {5}  {6}  {7}  <- element indices

	parent(k)   = (k-1)/2
	children(k) = 2k+1, 2k+2
	leaf(i)     = N/2 + i

where N = 2P-1 is the number of nodes and P is the smallest power of two
not less than the number of elements. Leaf slots beyond the last element are
padding and hold the identity of the aggregation monoid.

Aggregation is configured by a Monoid at construction time. The package provides
Sum, Min and Max for int64 values; clients may supply their own.

A tree is not safe for concurrent mutation. Clients needing concurrent access
have to guard the whole tree with a mutex, or publish rebuilt trees as
immutable snapshots.

_________________________________________________________________________

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
package segtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
