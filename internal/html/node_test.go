package html

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pagesmith/internal/config"
	"pagesmith/internal/css"
)

func lower() config.Config {
	cfg := config.Default()
	cfg.Uppercase = false
	return cfg
}

func sampleTable(t *testing.T) *Node {
	row := Must(New(Tr))
	for _, s := range []string{"a", "b", "c"} {
		td, err := New(Td, Text(s))
		require.NoError(t, err)
		require.NoError(t, row.Add(td))
	}
	table, err := New(Table, Child(row))
	require.NoError(t, err)
	return table
}

func TestNodeTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagesmith.html")
	defer teardown()
	//
	table := sampleTable(t)
	assert.Equal(t, "<table><tr><td>a</td><td>b</td><td>c</td></tr></table>", table.Render(lower()))
	assert.Equal(t, "<TABLE><TR><TD>a</TD><TD>b</TD><TD>c</TD></TR></TABLE>", table.String())
}

func TestNodeAttributeOrder(t *testing.T) {
	td := Must(New(Td))
	require.NoError(t, td.SetAttr("class", "a"))
	require.NoError(t, td.SetAttr("style", "b"))
	require.NoError(t, td.SetAttr("class", "c"))

	assert.Equal(t, `<TD CLASS="c" STYLE="b"></TD>`, td.String())

	legacy, err := config.Preset("legacy")
	require.NoError(t, err)
	assert.Equal(t, `<TD CLASS="c" STYLE="b" CLASS="c"></TD>`, td.Render(legacy))

	assert.Equal(t, []Attribute{{"CLASS", "c"}, {"STYLE", "b"}}, td.Attributes())
	v, ok := td.Attr("Class")
	assert.True(t, ok)
	assert.Equal(t, "c", v)
}

func TestNodeAttributeNames(t *testing.T) {
	meta := Must(New(Meta))
	require.NoError(t, meta.SetAttrMap(map[string]string{
		"http-equiv": "Content-Type",
		"content":    "text/html; charset=utf-8",
	}))
	assert.Equal(t, `<meta content="text/html; charset=utf-8" http-equiv="Content-Type" />`, meta.Render(lower()))
	assert.Equal(t, `<META CONTENT="text/html; charset=utf-8" HTTP-EQUIV="Content-Type" />`, meta.String())

	root := Must(New(Html)).With(Attr("xml:lang", "en"))
	assert.Equal(t, `<html xml:lang="en"></html>`, root.Render(lower()))

	a := Must(New(A, Text("x"))).With(Attr("title", `say "hi"`))
	assert.Equal(t, `<A TITLE="say &quot;hi&quot;">x</A>`, a.String())
}

func TestNodeUnsupportedAttribute(t *testing.T) {
	a := Must(New(A))
	err := a.SetAttr("foo", "bar")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedAttribute))
	assert.Contains(t, err.Error(), `<A> does not have "FOO" attribute`)

	err = a.SetAttrs(Attr("href", "/"), Attr("bogus", "1"))
	assert.True(t, errors.Is(err, ErrUnsupportedAttribute))
	assert.Empty(t, a.Attributes(), "no attribute is set when one is rejected")

	assert.Panics(t, func() { a.With(Attr("bogus", "1")) })
}

func TestNodeVoid(t *testing.T) {
	_, err := New(Br, Text("x"))
	assert.True(t, errors.Is(err, ErrVoidContent))

	br, err := New(Br, Text(""))
	require.NoError(t, err)
	assert.Equal(t, "<BR />", br.String())
	assert.True(t, errors.Is(br.AddText("x"), ErrVoidContent))
	assert.Empty(t, br.Content())

	img := Must(New(Img)).With(Attr("src", "a.png"), Attr("alt", "A"))
	assert.Equal(t, `<img src="a.png" alt="A" />`, img.Render(lower()))
}

func TestNodeContent(t *testing.T) {
	p := Must(New(P, Text("a<b>"), Raw("<i>c</i>"), Text(""), Child(nil)))
	assert.Len(t, p.Content(), 2, "empty items are skipped")
	assert.Equal(t, "<P>a&lt;b&gt;<i>c</i></P>", p.String())

	require.NoError(t, p.Replace(Text("d")))
	assert.Equal(t, "<P>d</P>", p.String())
	assert.True(t, p.Content()[0].IsText())
	assert.Equal(t, "d", p.Content()[0].Literal())

	var missing *Node
	require.NoError(t, p.Add(missing))
	assert.Len(t, p.Content(), 1, "nil nodes are skipped")
}

func TestNodeEmbedsRenderer(t *testing.T) {
	rule := css.Select("p").Set("color", "red")
	sheet, err := css.NewStylesheet(rule)
	require.NoError(t, err)
	style := Must(New(Style, Child(sheet))).With(Attr("type", "text/css"))
	assert.Equal(t, `<STYLE TYPE="text/css">p{color:red;}</STYLE>`, style.String())
	assert.Nil(t, style.Content()[0].Node())
	assert.Same(t, sheet, style.Content()[0].Renderer())
}

func TestPseudoNodes(t *testing.T) {
	assert.Equal(t, "<!--note-->", Comment(Text("note")).String())
	assert.Equal(t, "<!DOCTYPE html>", Doctype(HTML5).String())
	assert.Equal(t, "<?php echo 1;?>", PHP("echo 1;").String())
	assert.Equal(t, "", Doctype(HTML5).Name())

	div := Must(New(Div, Text("x"))).Override("[[", "]]")
	assert.Equal(t, "[[x]]", div.String())
	div.Override("", "")
	assert.Equal(t, "<DIV>x</DIV>", div.String())
	assert.Equal(t, "<P>a"+NBSP+"b</P>", Must(New(P, Raw("a"+NBSP+"b"))).String())
}

func TestNodePretty(t *testing.T) {
	cfg := config.Default()
	cfg.Indent = "  "
	div := Must(New(Div, Text("x<"), Child(Must(New(Br))), Child(Must(New(Span, Text("y"))))))
	want := strings.Join([]string{
		"<DIV>",
		"  x&lt;",
		"  <BR />",
		"  <SPAN>",
		"    y",
		"  </SPAN>",
		"</DIV>",
	}, "\n")
	assert.Equal(t, want, div.Render(cfg))

	cfg.Offset = ">"
	assert.Equal(t, ">"+strings.ReplaceAll(want, "\n", "\n>"), div.Render(cfg))

	assert.Equal(t, "<!--\n  c\n-->", Comment(Text("c")).Render(config.Config{Indent: "  ", Uppercase: true}))
}

func TestNodeFiles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagesmith.html")
	defer teardown()
	//
	dir := t.TempDir()
	path := filepath.Join(dir, "snippet.txt")
	require.NoError(t, os.WriteFile(path, []byte("<b>1</b>"), 0644))

	pre := Must(New(Pre))
	require.NoError(t, pre.AppendFile(path))
	require.NoError(t, pre.AppendRawFile(path))
	assert.Equal(t, "<PRE>&lt;b&gt;1&lt;/b&gt;<b>1</b></PRE>", pre.String())

	err := pre.AppendFile(filepath.Join(dir, "missing.txt"))
	assert.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)

	out := filepath.Join(dir, "out", "pre.html")
	require.NoError(t, pre.Save(out, ""))
	saved, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, pre.String(), string(saved))
}

func TestNewTag(t *testing.T) {
	n, err := NewTag("em", Text("x"))
	require.NoError(t, err)
	assert.Same(t, Em, n.Kind())
	assert.Equal(t, "EM", n.Name())
	_, err = NewTag("marquee")
	assert.True(t, errors.Is(err, ErrUnknownTag))
	_, err = New(nil)
	assert.True(t, errors.Is(err, ErrUnknownTag))
}

func TestNodeCompactIgnoresOffset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagesmith.html")
	defer teardown()
	//
	p := Must(New(P, Text("hi"), Child(Must(New(Br)))))
	cfg := config.Default()
	cfg.Offset = "  "
	assert.Equal(t, "<P>hi<BR /></P>", p.Render(cfg))
	assert.Equal(t, "<BR />", Must(New(Br)).Render(cfg))
	//
	cfg.Indent = "\t"
	assert.Equal(t, "  <P>\n  \thi\n  \t<BR />\n  </P>", p.Render(cfg))
}

func TestNodeZeroValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagesmith.html")
	defer teardown()
	//
	var n Node
	assert.Equal(t, "", n.String())
	assert.Equal(t, "", n.Name())
	err := n.SetAttr("id", "x")
	assert.True(t, errors.Is(err, ErrUnsupportedAttribute))
	require.NoError(t, n.Add(Must(New(Br))))
	require.NoError(t, n.AddText("a<b"))
	assert.Equal(t, "<BR />a&lt;b", n.String())
}

func TestNodeSaveFailure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagesmith.html")
	defer teardown()
	//
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
	err := Must(New(P)).Save(filepath.Join(blocker, "p.html"), "")
	assert.Error(t, err)
	require.NoError(t, Must(New(P)).Save(filepath.Join(dir, "sub", "p.html"), ""))
	data, err := os.ReadFile(filepath.Join(dir, "sub", "p.html"))
	require.NoError(t, err)
	assert.Equal(t, "<P></P>", string(data))
}
