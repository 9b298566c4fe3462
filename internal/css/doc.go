/*
Package css builds CSS stylesheets as trees of style rules and serializes them.

A Rule carries a set of selectors, a declaration map and related rules, keyed by
the combinator that joins the parent's selectors to the child's. Rendering walks
the tree once, forming the cross product of parent and own selectors at every
level; compact and pretty output are two views of that same walk.

Selector sets and related-rule sets are unordered. Output order is fixed by
sorting on selector strings right before traversal, so rendering an unmodified
tree twice yields identical bytes.

Trees are not safe for concurrent mutation.
*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pagesmith.css'.
func tracer() tracing.Trace {
	return tracing.Select("pagesmith.css")
}
