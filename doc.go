/*
Package treap implements an ordered sequence of numeric elements on top of a
randomized, implicit-key treap with lazy propagation.

Implicit keys

The tree is not a map. An element is addressed by its position in the sequence
(its rank), which is derived from cached subtree sizes rather than stored as
data. An in-order traversal of the tree yields the sequence.

Balance is kept in expectation by assigning every node a random priority once,
at creation time, and keeping the tree a max-heap with respect to these
priorities. The generator is owned by the tree and may be injected through
Config, which makes tree shapes reproducible in tests.

Split and merge

Only two primitives change the shape of a tree: split divides a tree at a rank,
merge concatenates two trees. Every positional operation follows the same
pattern: split the range out, operate on the isolated middle part, merge the
parts back together.

	t := treap.NewNumeric[int64](42)
	t.Append(1, 3, 5, 7, 9)
	_ = t.ReverseRange(1, 3)      // 1 7 5 3 9
	_ = t.AddRange(1, 3, 10)      // 1 17 15 13 9
	sum, _ := t.QuerySum(0, 4)    // 55

Lazy tags

Range reversal and range addition are applied lazily: the isolated subtree
root receives a tag and its own aggregates are updated, children are visited
only when a later operation descends into them. Cached aggregates (size, sum,
minimum, maximum) are therefore always correct for the node carrying them,
including its own pending tags.

A tree is not safe for concurrent use. Clients have to serialize access to a
tree instance.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package treap

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
