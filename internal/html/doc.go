/*
Package html builds markup trees and serializes them.

Every element is a Node of some Kind. Kinds come from a catalogue generated by
cmd/gentags; each one carries the tag name, a void flag and the whitelist of
attribute names it accepts. Attribute names are normalized on input: upper
case, ':' written as "__" and '-' written as '_'. Rendering reverses that
mapping.

A node's content is an ordered list of Content items: escaped text, raw text
or a child Renderer. Any Renderer may be embedded, so a css.Stylesheet can
sit inside a STYLE node.

Document binds a root node to exactly one HEAD and one BODY among its direct
children and prefixes a doctype on output.

Trees are not safe for concurrent mutation.
*/
package html

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pagesmith.html'.
func tracer() tracing.Trace {
	return tracing.Select("pagesmith.html")
}
