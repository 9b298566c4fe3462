package html

import (
	"strings"

	"pagesmith/internal/config"
)

var (
	textEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer(`"`, "&quot;")
)

// Render serializes the node. An empty cfg.Indent selects compact output,
// which ignores cfg.Offset; otherwise start marker, every content item and
// end marker go on their own lines, content one indent unit deeper.
func (n *Node) Render(cfg config.Config) string {
	if !cfg.Pretty() {
		cfg = cfg.Compact()
	}
	k := n.kindOf()
	tag := k.name
	if !cfg.Uppercase {
		tag = strings.ToLower(tag)
	}
	attrs := n.renderAttrs(cfg)
	if k.void {
		start := "<" + tag
		if n.hasSTag {
			start = n.stag
		}
		end := " />"
		if n.hasETag {
			end = n.etag
		}
		return cfg.Offset + start + attrs + end
	}
	start, end := "<"+tag+attrs+">", "</"+tag+">"
	if n.kind == nil {
		start, end = "", ""
	}
	if n.hasSTag {
		start = n.stag
	}
	if n.hasETag {
		end = n.etag
	}
	if !cfg.Pretty() {
		var sb strings.Builder
		sb.WriteString(start)
		for _, c := range n.content {
			sb.WriteString(renderContent(c, cfg))
		}
		sb.WriteString(end)
		return sb.String()
	}
	lines := make([]string, 0, len(n.content)+2)
	if start != "" {
		lines = append(lines, cfg.Offset+start)
	}
	inner := cfg.Nested()
	for _, c := range n.content {
		if s := renderContent(c, inner); s != "" {
			lines = append(lines, s)
		}
	}
	if end != "" {
		lines = append(lines, cfg.Offset+end)
	}
	return strings.Join(lines, "\n")
}

// renderContent renders one item. Text and raw items carry the offset of
// cfg in pretty mode; children place their own offset.
func renderContent(c Content, cfg config.Config) string {
	switch c.kind {
	case textContent:
		return cfg.Offset + textEscaper.Replace(c.text)
	case rawContent:
		return cfg.Offset + c.text
	}
	if c.child == nil {
		return ""
	}
	return c.child.Render(cfg)
}

// renderAttrs renders ` name="value"` pairs. Under AttrOverwrite every name
// appears once at its first position; under AttrAppend once per set call.
// Values are always the current ones.
func (n *Node) renderAttrs(cfg config.Config) string {
	if len(n.order) == 0 {
		return ""
	}
	var sb strings.Builder
	seen := make(map[string]bool, len(n.values))
	for _, id := range n.order {
		if cfg.AttributePolicy == config.AttrOverwrite {
			if seen[id] {
				continue
			}
			seen[id] = true
		}
		sb.WriteByte(' ')
		sb.WriteString(attrName(id, cfg.Uppercase))
		sb.WriteString(`="`)
		sb.WriteString(attrEscaper.Replace(n.values[id]))
		sb.WriteByte('"')
	}
	return sb.String()
}
