// Package debug prints rule trees and markup trees for inspection in logs and tests.
package debug

import (
	"fmt"
	"strings"

	tp "github.com/xlab/treeprint"

	"pagesmith/internal/css"
	"pagesmith/internal/html"
)

// maxText is the length at which text content is cut in node dumps
const maxText = 40

// RuleTree prints a rule and its related rules. Branches carry the
// combinator name as meta value.
func RuleTree(r *css.Rule) string {
	p := tp.New()
	ppr(p, "", r)
	return p.String()
}

// StylesheetTree prints every top-level rule of a stylesheet
func StylesheetTree(s *css.Stylesheet) string {
	p := tp.New()
	for _, r := range s.Rules() {
		ppr(p, "", r)
	}
	return p.String()
}

func ppr(p tp.Tree, meta string, r *css.Rule) {
	label := ruleLabel(r)
	var children []related
	for _, kind := range css.Combinators {
		for _, child := range r.Related(kind) {
			children = append(children, related{kind, child})
		}
	}
	if len(children) == 0 {
		if meta == "" {
			p.AddNode(label)
		} else {
			p.AddMetaNode(meta, label)
		}
		return
	}
	var branch tp.Tree
	if meta == "" {
		branch = p.AddBranch(label)
	} else {
		branch = p.AddMetaBranch(meta, label)
	}
	for _, ch := range children {
		ppr(branch, ch.kind.String(), ch.rule)
	}
}

type related struct {
	kind css.Combinator
	rule *css.Rule
}

func ruleLabel(r *css.Rule) string {
	sels := strings.Join(r.Selectors(), ",")
	if sels == "" {
		sels = "(bare)"
	}
	if decls := r.Inline(); decls != "" {
		return sels + " {" + decls + "}"
	}
	return sels
}

// NodeTree prints a markup tree. Text content is quoted and shortened.
func NodeTree(n *html.Node) string {
	p := tp.New()
	ppn(p, n)
	return p.String()
}

// DocumentTree prints the root of a document, preceded by its doctype
func DocumentTree(d *html.Document) string {
	p := tp.New()
	p.AddMetaNode("doctype", d.Doctype().String())
	ppn(p, d.Root())
	return p.String()
}

func ppn(p tp.Tree, n *html.Node) {
	if n.Name() == "" {
		p.AddMetaNode("pseudo", n.String())
		return
	}
	content := n.Content()
	if len(content) == 0 {
		p.AddNode(nodeLabel(n))
		return
	}
	branch := p.AddBranch(nodeLabel(n))
	for _, c := range content {
		switch {
		case c.IsText():
			branch.AddNode(quote(c.Literal()))
		case c.IsRaw():
			branch.AddMetaNode("raw", quote(c.Literal()))
		case c.Node() != nil:
			ppn(branch, c.Node())
		default:
			branch.AddMetaNode("embed", fmt.Sprintf("%T", c.Renderer()))
		}
	}
}

func nodeLabel(n *html.Node) string {
	var sb strings.Builder
	sb.WriteString(n.Kind().String())
	for _, a := range n.Attributes() {
		fmt.Fprintf(&sb, " %s=%q", a.Name, a.Value)
	}
	return sb.String()
}

func quote(s string) string {
	if r := []rune(s); len(r) > maxText {
		s = string(r[:maxText]) + "…"
	}
	return fmt.Sprintf("%q", s)
}
