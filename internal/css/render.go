package css

import (
	"sort"
	"strings"

	"pagesmith/internal/config"
)

// relation is a related rule together with the combinator joining it
type relation struct {
	kind Combinator
	rule *Rule
}

// relations returns all related rules across the four combinators, ordered
// by each rule's smallest selector. Equal keys keep combinator order, then
// insertion order.
func (r *Rule) relations() []relation {
	n := 0
	for _, kind := range Combinators {
		n += r.related[kind].len()
	}
	rels := make([]relation, 0, n)
	for _, kind := range Combinators {
		for _, rule := range r.related[kind].order {
			rels = append(rels, relation{kind: kind, rule: rule})
		}
	}
	sort.SliceStable(rels, func(i, j int) bool {
		return rels[i].rule.firstSelector() < rels[j].rule.firstSelector()
	})
	return rels
}

// compound forms the rule's compound selector list: the cross product of
// parents and own selectors joined by comb, or a copy of the own selectors
// when there are no parents. The result is sorted.
func (r *Rule) compound(parents []string, comb Combinator) []string {
	var sels []string
	if len(parents) > 0 {
		sels = make([]string, 0, len(parents)*len(r.selectors))
		for _, p := range parents {
			for s := range r.selectors {
				sels = append(sels, p+comb.Symbol()+s)
			}
		}
	} else {
		sels = make([]string, 0, len(r.selectors))
		for s := range r.selectors {
			sels = append(sels, s)
		}
	}
	sort.Strings(sels)
	return sels
}

// Walk visits the blocks of the rule tree in output order: a rule's own
// block (if it has declarations) first, then the blocks of its related rules.
func (r *Rule) Walk(visit func(Block)) {
	r.walk(nil, Descendant, 0, visit)
}

func (r *Rule) walk(parents []string, comb Combinator, depth int, visit func(Block)) {
	current := r.compound(parents, comb)
	if len(r.declarations) > 0 {
		visit(Block{
			Selectors:    current,
			Declarations: r.sortedDeclarations(),
			Depth:        depth,
		})
	}
	for _, rel := range r.relations() {
		rel.rule.walk(current, rel.kind, depth+1, visit)
	}
}

// Render serializes the rule tree. An empty cfg.Indent selects compact
// output, otherwise blocks are indented by cfg.Indent per nesting level.
func (r *Rule) Render(cfg config.Config) string {
	return renderBlocks(r.Walk, cfg)
}

// String renders the rule tree in compact form
func (r *Rule) String() string {
	return r.Render(config.Default())
}

// Inline renders the rule's own declarations as "prop:value;" pairs without
// selectors, suitable for a style attribute
func (r *Rule) Inline() string {
	var sb strings.Builder
	for _, d := range r.sortedDeclarations() {
		sb.WriteString(d.String())
	}
	return sb.String()
}

func renderBlocks(walk func(func(Block)), cfg config.Config) string {
	var sb strings.Builder
	first := true
	walk(func(b Block) {
		if cfg.Pretty() {
			if !first {
				sb.WriteByte('\n')
			}
			writePretty(&sb, b, cfg)
		} else {
			writeCompact(&sb, b)
		}
		first = false
	})
	return sb.String()
}

// writeCompact writes "sel1,sel2{prop:value;}"
func writeCompact(sb *strings.Builder, b Block) {
	if !b.Bare() {
		sb.WriteString(strings.Join(b.Selectors, ","))
		sb.WriteByte('{')
	}
	for _, d := range b.Declarations {
		sb.WriteString(d.String())
	}
	if !b.Bare() {
		sb.WriteByte('}')
	}
}

// writePretty writes one selector per line, braces on their own lines and
// declarations one indent unit deeper. No trailing newline.
func writePretty(sb *strings.Builder, b Block, cfg config.Config) {
	offset := cfg.Offset + strings.Repeat(cfg.Indent, b.Depth)
	lines := make([]string, 0, len(b.Selectors)+len(b.Declarations)+2)
	for i, s := range b.Selectors {
		if i < len(b.Selectors)-1 {
			s += ","
		}
		lines = append(lines, offset+s)
	}
	if !b.Bare() {
		lines = append(lines, offset+"{")
	}
	for _, d := range b.Declarations {
		lines = append(lines, offset+cfg.Indent+d.Property+": "+d.Value+";")
	}
	if !b.Bare() {
		lines = append(lines, offset+"}")
	}
	sb.WriteString(strings.Join(lines, "\n"))
}
