package html

import (
	"fmt"
	"sort"
	"strings"
)

type attrFlags uint8

const (
	withGlobal attrFlags = 1 << iota // accepts globalAttributes
	withEvents                       // accepts eventAttributes
)

// Kind describes an element type: its tag name, whether it is void and the
// attribute names it accepts. Kinds are created by the catalogue only.
type Kind struct {
	name  string
	void  bool
	attrs map[string]struct{}
}

// catalogue maps lower case tag names to kinds
var catalogue = map[string]*Kind{}

func newKind(name string, void bool, flags attrFlags, attrs ...string) *Kind {
	k := &Kind{
		name:  name,
		void:  void,
		attrs: make(map[string]struct{}, len(attrs)),
	}
	for _, a := range attrs {
		k.attrs[a] = struct{}{}
	}
	if flags&withGlobal != 0 {
		for _, a := range globalAttributes {
			k.attrs[a] = struct{}{}
		}
	}
	if flags&withEvents != 0 {
		for _, a := range eventAttributes {
			k.attrs[a] = struct{}{}
		}
	}
	catalogue[strings.ToLower(name)] = k
	return k
}

// pseudoKind is the kind of comment, doctype and processing nodes. It has no
// tag name and accepts no attributes.
var pseudoKind = &Kind{attrs: map[string]struct{}{}}

// Lookup finds a kind by tag name, case-insensitively
func Lookup(name string) (*Kind, error) {
	k, ok := catalogue[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTag, name)
	}
	return k, nil
}

// Kinds returns the catalogue sorted by tag name
func Kinds() []*Kind {
	kinds := make([]*Kind, 0, len(catalogue))
	for _, k := range catalogue {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool {
		return kinds[i].name < kinds[j].name
	})
	return kinds
}

// Name is the declared tag name, upper case
func (k *Kind) Name() string { return k.name }

// Void reports whether elements of this kind never have content
func (k *Kind) Void() bool { return k.void }

// Allows reports whether the kind accepts an attribute. name may be given
// in either source or normalized form.
func (k *Kind) Allows(name string) bool {
	_, ok := k.attrs[AttrID(name)]
	return ok
}

// Attributes returns the normalized attribute names the kind accepts, sorted
func (k *Kind) Attributes() []string {
	names := make([]string, 0, len(k.attrs))
	for a := range k.attrs {
		names = append(names, a)
	}
	sort.Strings(names)
	return names
}

func (k *Kind) String() string {
	if k.name == "" {
		return "<pseudo>"
	}
	return "<" + k.name + ">"
}

var (
	toID   = strings.NewReplacer(":", "__", "-", "_")
	fromID = strings.NewReplacer("__", ":", "_", "-")
)

// AttrID normalizes an attribute name: upper case with ':' as "__" and '-'
// as '_'. "xml:lang" becomes "XML__LANG", "http-equiv" becomes "HTTP_EQUIV".
func AttrID(name string) string {
	return strings.ToUpper(toID.Replace(name))
}

// attrName maps a normalized name back to its markup form
func attrName(id string, upper bool) string {
	name := fromID.Replace(id)
	if !upper {
		name = strings.ToLower(name)
	}
	return name
}
