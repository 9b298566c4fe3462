package pagesmith

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pagesmith/internal/coverage"
	"pagesmith/internal/css"
	"pagesmith/internal/html"
)

func TestStyleAndLinkTags(t *testing.T) {
	sheet, err := css.NewStylesheet(css.Select("p").Set("color", "red"))
	require.NoError(t, err)
	assert.Equal(t, `<STYLE TYPE="text/css">p{color:red;}</STYLE>`, StyleTag(sheet).String())

	opts := DefaultOptions()
	opts.Uppercase = false
	assert.Equal(t, `<link rel="stylesheet" type="text/css" href="style.css" />`, LinkTag("style.css").Render(opts))

	opts.Indent = "  "
	assert.Equal(t, "<style type=\"text/css\">\n  p\n  {\n    color: red;\n  }\n</style>", StyleTag(sheet).Render(opts))
}

func TestInlineStyle(t *testing.T) {
	div := html.Must(html.New(html.Div))
	rule := css.Select().Set("margin", "0").Set("color", "#333")
	require.NoError(t, InlineStyle(div, rule))
	assert.Equal(t, `<DIV STYLE="color:#333;margin:0;"></DIV>`, div.String())

	require.Error(t, InlineStyle(html.Must(html.New(html.Applet)), rule), "APPLET has no STYLE attribute")
}

func TestPublish(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagesmith.coverage")
	defer teardown()
	//
	sheet := SampleStylesheet()
	doc, err := SamplePage(sheet, "style.css")
	require.NoError(t, err)

	opts, err := PresetOptions("xhtml")
	require.NoError(t, err)
	dir := filepath.Join(t.TempDir(), "site")
	result, err := New(opts).Publish(dir, doc, sheet, true)
	require.NoError(t, err)

	page, err := os.ReadFile(result.PagePath)
	require.NoError(t, err)
	assert.Equal(t, doc.Render(opts), string(page))
	assert.Equal(t, len(page), result.PageBytes)
	assert.True(t, strings.HasPrefix(string(page), "<!DOCTYPE "+html.XHTML10Transitional+">\n<html"))
	assert.Contains(t, string(page), `<link rel="stylesheet" type="text/css" href="style.css" />`)

	styles, err := os.ReadFile(result.StylePath)
	require.NoError(t, err)
	assert.Equal(t, sheet.Render(opts), string(styles))

	report := result.Coverage
	require.NotNil(t, report)
	t.Log(report.String())
	assert.Equal(t, coverage.Stats{Selectors: 14, Matched: 7, Unused: 6, Skipped: 1}, report.Stats)
	unused := map[string]bool{}
	for _, e := range report.Filter(coverage.Unused) {
		unused[e.Selector] = true
	}
	assert.True(t, unused["table.grid>tr"], "the parser inserts TBODY between TABLE and TR")
	assert.True(t, unused["ol#comments li p.meta"])
}

func TestPublishWithoutStylesheet(t *testing.T) {
	doc, err := SamplePage(SampleStylesheet(), "")
	require.NoError(t, err)
	result, err := NewWithDefaults().Publish(t.TempDir(), doc, nil, true)
	require.NoError(t, err)
	assert.Empty(t, result.StylePath)
	assert.Nil(t, result.Coverage)

	page, err := os.ReadFile(result.PagePath)
	require.NoError(t, err)
	assert.Contains(t, string(page), `<STYLE TYPE="text/css">a:hover{background:pink;}ol#comments,ul#comments{margin:0;padding:0;}`)
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "rule.css")
	rule := css.Select("h1").Set("color", "red")
	require.NoError(t, Save(path, rule, DefaultOptions()))
	saved, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "h1{color:red;}", string(saved))
}
