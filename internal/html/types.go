package html

import (
	"errors"

	"pagesmith/internal/config"
)

var (
	// ErrUnknownTag is returned when a tag name is not in the catalogue
	ErrUnknownTag = errors.New("unknown tag")

	// ErrUnsupportedAttribute is returned when an attribute is not in the
	// whitelist of a node's kind
	ErrUnsupportedAttribute = errors.New("unsupported attribute")

	// ErrVoidContent is returned when content is added to a void element
	ErrVoidContent = errors.New("void element cannot have content")

	// ErrMissingRole is returned when a document root lacks a HEAD or BODY child
	ErrMissingRole = errors.New("missing document role")

	// ErrDuplicateRole is returned when a document root has more than one
	// HEAD or BODY child
	ErrDuplicateRole = errors.New("duplicate document role")

	// ErrWrongRole is returned when a node of the wrong kind is bound as
	// a document's head or body
	ErrWrongRole = errors.New("wrong document role")
)

// Renderer is anything that serializes itself for a configuration.
// Nodes, documents and stylesheets are renderers.
type Renderer interface {
	Render(cfg config.Config) string
}

type contentKind int

const (
	textContent  contentKind = iota // escaped on output
	rawContent                      // emitted verbatim
	childContent                    // rendered recursively
)

// Content is one item of a node's content list
type Content struct {
	kind  contentKind
	text  string
	child Renderer
}

// Text creates a content item whose '<' and '>' are escaped on output
func Text(s string) Content {
	return Content{kind: textContent, text: s}
}

// Raw creates a content item emitted verbatim
func Raw(s string) Content {
	return Content{kind: rawContent, text: s}
}

// Child creates a content item rendered by r
func Child(r Renderer) Content {
	return Content{kind: childContent, child: r}
}

// Children wraps nodes as content items
func Children(nodes ...*Node) []Content {
	items := make([]Content, 0, len(nodes))
	for _, n := range nodes {
		items = append(items, Child(n))
	}
	return items
}

// IsText reports whether c is escaped text
func (c Content) IsText() bool { return c.kind == textContent }

// IsRaw reports whether c is raw text
func (c Content) IsRaw() bool { return c.kind == rawContent }

// Literal returns the text of a text or raw item
func (c Content) Literal() string { return c.text }

// Renderer returns the embedded renderer of a child item, or nil
func (c Content) Renderer() Renderer { return c.child }

// Node returns the embedded node of a child item, or nil if c does not
// embed a *Node
func (c Content) Node() *Node {
	n, _ := c.child.(*Node)
	return n
}

// empty content items are skipped on append
func (c Content) empty() bool {
	if c.kind == childContent {
		if c.child == nil {
			return true
		}
		if n, ok := c.child.(*Node); ok && n == nil {
			return true
		}
		return false
	}
	return c.text == ""
}

// Attribute is a name/value pair as accepted by SetAttrs
type Attribute struct {
	Name  string
	Value string
}

// Attr creates an attribute
func Attr(name, value string) Attribute {
	return Attribute{Name: name, Value: value}
}
