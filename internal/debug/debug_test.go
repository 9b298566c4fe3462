package debug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pagesmith/internal/css"
	"pagesmith/internal/html"
)

func TestRuleTree(t *testing.T) {
	ul := css.Select("ul#a", "ol#a").Set("margin", "0")
	require.NoError(t, ul.Inside(css.Select("li").Set("padding", "1px")))
	require.NoError(t, ul.Below(css.Select("p")))
	dump := RuleTree(ul)
	t.Logf("\n%s", dump)
	assert.Contains(t, dump, "ol#a,ul#a {margin:0;}")
	assert.Contains(t, dump, "[descendant]  li {padding:1px;}")
	assert.Contains(t, dump, "[child]  p")

	sheet, err := css.NewStylesheet(ul, css.Select().Set("color", "red"))
	require.NoError(t, err)
	dump = StylesheetTree(sheet)
	assert.Contains(t, dump, "(bare) {color:red;}")
	assert.Less(t, strings.Index(dump, "(bare)"), strings.Index(dump, "ol#a"))
}

func TestNodeTree(t *testing.T) {
	p := html.Must(html.New(html.P, html.Text(strings.Repeat("x", 50)), html.Raw("<b>")))
	body := html.Must(html.New(html.Body, html.Child(p), html.Child(html.Comment(html.Text("c")))))
	body.With(html.Attr("class", "main"))
	doc, err := html.NewDocument(nil, body, html.WithDTD(html.HTML5))
	require.NoError(t, err)

	dump := DocumentTree(doc)
	t.Logf("\n%s", dump)
	assert.Contains(t, dump, "[doctype]  <!DOCTYPE html>")
	assert.Contains(t, dump, `<BODY> CLASS="main"`)
	assert.Contains(t, dump, `"`+strings.Repeat("x", 40)+`…"`)
	assert.Contains(t, dump, `[raw]  "<b>"`)
	assert.Contains(t, dump, "[pseudo]  <!--c-->")
	assert.Contains(t, NodeTree(p), "<P>")
}
