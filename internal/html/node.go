package html

import (
	"fmt"
	"sort"

	"pagesmith/internal/config"
	"pagesmith/internal/fsutil"
)

// Node is a markup element: a kind, an ordered content list and attributes.
//
// Attribute set calls are recorded in order. How repeated names render is
// decided by config.AttributePolicy at render time.
//
// The zero value is an empty fragment: it renders its content without
// markers and accepts no attributes.
type Node struct {
	kind    *Kind
	content []Content
	values  map[string]string
	order   []string

	// optional overrides of the start and end markers
	stag, etag       string
	hasSTag, hasETag bool
}

// New creates a node of kind k with initial content. Empty items are skipped.
func New(k *Kind, items ...Content) (*Node, error) {
	if k == nil {
		return nil, fmt.Errorf("%w: nil kind", ErrUnknownTag)
	}
	n := &Node{
		kind:   k,
		values: make(map[string]string),
	}
	if err := n.Append(items...); err != nil {
		return nil, err
	}
	return n, nil
}

// NewTag creates a node for a tag name looked up in the catalogue
func NewTag(name string, items ...Content) (*Node, error) {
	k, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return New(k, items...)
}

// Must panics if err is non-nil. It is meant for static trees.
func Must(n *Node, err error) *Node {
	if err != nil {
		panic(err)
	}
	return n
}

// Pseudo creates a node without tag name whose start and end markers are
// given verbatim, e.g. a comment or a processing instruction
func Pseudo(stag, etag string, items ...Content) *Node {
	n := &Node{
		kind:    pseudoKind,
		values:  make(map[string]string),
		stag:    stag,
		etag:    etag,
		hasSTag: true,
		hasETag: true,
	}
	for _, c := range items {
		if !c.empty() {
			n.content = append(n.content, c)
		}
	}
	return n
}

// Kind returns the node's kind
func (n *Node) Kind() *Kind { return n.kindOf() }

// Name returns the declared tag name, or "" for pseudo nodes
func (n *Node) Name() string { return n.kindOf().name }

func (n *Node) kindOf() *Kind {
	if n.kind == nil {
		return pseudoKind
	}
	return n.kind
}

// Override replaces the start and end markers. An empty string restores the
// default marker.
func (n *Node) Override(stag, etag string) *Node {
	n.stag, n.hasSTag = stag, stag != ""
	n.etag, n.hasETag = etag, etag != ""
	return n
}

// Append adds content items in order. Empty items are skipped; any non-empty
// item on a void element fails without changing the node.
func (n *Node) Append(items ...Content) error {
	add := make([]Content, 0, len(items))
	for _, c := range items {
		if c.empty() {
			continue
		}
		add = append(add, c)
	}
	if len(add) == 0 {
		return nil
	}
	if k := n.kindOf(); k.void {
		return fmt.Errorf("%w: %s", ErrVoidContent, k)
	}
	n.content = append(n.content, add...)
	return nil
}

// Add appends child nodes
func (n *Node) Add(children ...*Node) error {
	return n.Append(Children(children...)...)
}

// AddText appends escaped text items
func (n *Node) AddText(texts ...string) error {
	items := make([]Content, 0, len(texts))
	for _, t := range texts {
		items = append(items, Text(t))
	}
	return n.Append(items...)
}

// Replace discards the content list and appends items
func (n *Node) Replace(items ...Content) error {
	old := n.content
	n.content = nil
	if err := n.Append(items...); err != nil {
		n.content = old
		return err
	}
	return nil
}

// Content returns a copy of the content list
func (n *Node) Content() []Content {
	return append([]Content(nil), n.content...)
}

// AppendFile appends the contents of a file as escaped text. A leading '~'
// in path is expanded to the home directory.
func (n *Node) AppendFile(path string) error {
	return n.appendFile(path, Text)
}

// AppendRawFile appends the contents of a file verbatim
func (n *Node) AppendRawFile(path string) error {
	return n.appendFile(path, Raw)
}

func (n *Node) appendFile(path string, wrap func(string) Content) error {
	s, err := fsutil.ReadString(path)
	if err != nil {
		tracer().Errorf("cannot load content for %s: %v", n.kindOf(), err)
		return err
	}
	tracer().Debugf("loaded %d bytes from %s into %s", len(s), path, n.kindOf())
	return n.Append(wrap(s))
}

// SetAttr sets an attribute. The name is normalized and must be in the
// whitelist of the node's kind.
func (n *Node) SetAttr(name, value string) error {
	id, err := n.checkAttr(name)
	if err != nil {
		return err
	}
	n.values[id] = value
	n.order = append(n.order, id)
	return nil
}

// SetAttrs sets attributes in order. All names are checked before the first
// one is set.
func (n *Node) SetAttrs(attrs ...Attribute) error {
	for _, a := range attrs {
		if _, err := n.checkAttr(a.Name); err != nil {
			return err
		}
	}
	for _, a := range attrs {
		id := AttrID(a.Name)
		n.values[id] = a.Value
		n.order = append(n.order, id)
	}
	return nil
}

// SetAttrMap sets attributes from a map in the order of their names
func (n *Node) SetAttrMap(attrs map[string]string) error {
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	list := make([]Attribute, 0, len(names))
	for _, name := range names {
		list = append(list, Attr(name, attrs[name]))
	}
	return n.SetAttrs(list...)
}

// With sets attributes and returns n. It panics on an unsupported attribute;
// like Must it is meant for static trees.
func (n *Node) With(attrs ...Attribute) *Node {
	if err := n.SetAttrs(attrs...); err != nil {
		panic(err)
	}
	return n
}

// Attr returns the current value of an attribute
func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.values[AttrID(name)]
	return v, ok
}

// Attributes returns the attributes in first-set order with their current
// values, one entry per name
func (n *Node) Attributes() []Attribute {
	attrs := make([]Attribute, 0, len(n.values))
	seen := make(map[string]bool, len(n.values))
	for _, id := range n.order {
		if seen[id] {
			continue
		}
		seen[id] = true
		attrs = append(attrs, Attribute{Name: id, Value: n.values[id]})
	}
	return attrs
}

func (n *Node) checkAttr(name string) (string, error) {
	id := AttrID(name)
	if k := n.kindOf(); !k.Allows(id) {
		return "", fmt.Errorf("%w: %s does not have %q attribute", ErrUnsupportedAttribute, k, id)
	}
	return id, nil
}

// String renders the node with the default configuration
func (n *Node) String() string {
	return n.Render(config.Default())
}

// Save writes the node to path, pretty-printed if indent is not empty
func (n *Node) Save(path, indent string) error {
	cfg := config.Default()
	cfg.Indent = indent
	if err := fsutil.WriteString(path, n.Render(cfg)); err != nil {
		tracer().Errorf("cannot save %s: %v", n.kindOf(), err)
		return err
	}
	tracer().Debugf("saved %s to %s", n.kindOf(), path)
	return nil
}
