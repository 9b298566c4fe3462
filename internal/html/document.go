package html

import (
	"fmt"

	"pagesmith/internal/config"
	"pagesmith/internal/fsutil"
)

// Document is a root node with its doctype. The root owns exactly one HEAD
// and one BODY node among its direct children.
type Document struct {
	doctype *Node
	root    *Node
	head    *Node
	body    *Node
}

type docOptions struct {
	dtd, xmlns, dir, lang string
}

// DocOption configures a Document built by NewDocument or FromRoot
type DocOption func(*docOptions)

// WithDTD sets the document type declaration, e.g. HTML5
func WithDTD(dtd string) DocOption {
	return func(o *docOptions) { o.dtd = dtd }
}

// WithNamespace sets the XMLNS attribute of a synthesized root; empty omits it
func WithNamespace(uri string) DocOption {
	return func(o *docOptions) { o.xmlns = uri }
}

// WithDir sets the DIR attribute of a synthesized root
func WithDir(dir string) DocOption {
	return func(o *docOptions) { o.dir = dir }
}

// WithLang sets the LANG attribute of a synthesized root
func WithLang(lang string) DocOption {
	return func(o *docOptions) { o.lang = lang }
}

func collectOptions(opts []DocOption) docOptions {
	o := docOptions{
		dtd:   XHTML10Transitional,
		xmlns: XHTMLNamespace,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NewDocument wraps head and body in a fresh HTML root. A nil head or body is
// replaced by an empty one.
func NewDocument(head, body *Node, opts ...DocOption) (*Document, error) {
	o := collectOptions(opts)
	if head == nil {
		head = Must(New(Head))
	}
	if body == nil {
		body = Must(New(Body))
	}
	if err := checkRole(head, Head); err != nil {
		return nil, err
	}
	if err := checkRole(body, Body); err != nil {
		return nil, err
	}
	root := Must(New(Html, Child(head), Child(body)))
	for _, a := range []Attribute{Attr("xmlns", o.xmlns), Attr("dir", o.dir), Attr("lang", o.lang)} {
		if a.Value == "" {
			continue
		}
		if err := root.SetAttr(a.Name, a.Value); err != nil {
			return nil, err
		}
	}
	return &Document{
		doctype: Doctype(o.dtd),
		root:    root,
		head:    head,
		body:    body,
	}, nil
}

// FromRoot binds head and body among the direct children of root. Only the
// WithDTD option applies.
func FromRoot(root *Node, opts ...DocOption) (*Document, error) {
	o := collectOptions(opts)
	d := &Document{doctype: Doctype(o.dtd)}
	if err := d.SetRoot(root); err != nil {
		return nil, err
	}
	return d, nil
}

// SetRoot replaces the root. On error the document is unchanged.
func (d *Document) SetRoot(root *Node) error {
	if root == nil {
		return fmt.Errorf("%w: root is nil", ErrMissingRole)
	}
	head, err := findRole(root, Head)
	if err != nil {
		return err
	}
	body, err := findRole(root, Body)
	if err != nil {
		return err
	}
	d.root, d.head, d.body = root, head, body
	tracer().Debugf("document bound to root %s", root.kind)
	return nil
}

// SetHead replaces the head node at its position in the root
func (d *Document) SetHead(head *Node) error {
	if err := checkRole(head, Head); err != nil {
		return err
	}
	if err := d.substitute(d.head, head); err != nil {
		return err
	}
	d.head = head
	return nil
}

// SetBody replaces the body node at its position in the root
func (d *Document) SetBody(body *Node) error {
	if err := checkRole(body, Body); err != nil {
		return err
	}
	if err := d.substitute(d.body, body); err != nil {
		return err
	}
	d.body = body
	return nil
}

// SetDoctype replaces the document type declaration
func (d *Document) SetDoctype(dtd string) {
	d.doctype = Doctype(dtd)
}

// Doctype returns the doctype node
func (d *Document) Doctype() *Node { return d.doctype }

// Root returns the root node
func (d *Document) Root() *Node { return d.root }

// Head returns the bound HEAD node
func (d *Document) Head() *Node { return d.head }

// Body returns the bound BODY node
func (d *Document) Body() *Node { return d.body }

// Render serializes doctype and root. In pretty mode the doctype is written
// on its own line.
func (d *Document) Render(cfg config.Config) string {
	if !cfg.Pretty() {
		return d.doctype.Render(cfg) + d.root.Render(cfg)
	}
	return cfg.Offset + d.doctype.Render(cfg.Compact()) + "\n" + d.root.Render(cfg)
}

// String renders the document with the default configuration
func (d *Document) String() string {
	return d.Render(config.Default())
}

// Save writes the document to path, pretty-printed if indent is not empty.
// Missing parent directories are created.
func (d *Document) Save(path, indent string) error {
	cfg := config.Default()
	cfg.Indent = indent
	if err := fsutil.WriteString(path, d.Render(cfg)); err != nil {
		tracer().Errorf("cannot save document: %v", err)
		return err
	}
	tracer().Debugf("saved document to %s", path)
	return nil
}

// substitute replaces old with n in the root's content, keeping its index
func (d *Document) substitute(old, n *Node) error {
	for i, c := range d.root.content {
		if c.kind == childContent && c.Node() == old {
			d.root.content[i] = Child(n)
			return nil
		}
	}
	return fmt.Errorf("%w: %s is no longer a child of the root", ErrMissingRole, old.kind)
}

func checkRole(n *Node, role *Kind) error {
	if n == nil {
		return fmt.Errorf("%w: %s is nil", ErrWrongRole, role)
	}
	if n.kind != role {
		return fmt.Errorf("%w: expected %s, got %s", ErrWrongRole, role, n.kindOf())
	}
	return nil
}

// findRole returns the single direct child of root with kind role
func findRole(root *Node, role *Kind) (*Node, error) {
	var found *Node
	for _, c := range root.content {
		n := c.Node()
		if n == nil || n.kind != role {
			continue
		}
		if found != nil {
			return nil, fmt.Errorf("%w: root %s has more than one %s", ErrDuplicateRole, root.kind, role)
		}
		found = n
	}
	if found == nil {
		return nil, fmt.Errorf("%w: root %s has no %s", ErrMissingRole, root.kind, role)
	}
	return found, nil
}
