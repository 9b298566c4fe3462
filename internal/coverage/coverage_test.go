package coverage

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pagesmith/internal/css"
	"pagesmith/internal/html"
)

func samplePage(t *testing.T) *html.Document {
	list := html.Must(html.New(html.Ul)).With(html.Attr("id", "a"))
	for _, s := range []string{"one", "two"} {
		li := html.Must(html.New(html.Li, html.Text(s))).With(html.Attr("class", "item"))
		require.NoError(t, list.Add(li))
	}
	body := html.Must(html.New(html.Body, html.Child(list), html.Child(html.Must(html.New(html.P, html.Text("x"))))))
	doc, err := html.NewDocument(nil, body, html.WithDTD(html.HTML5))
	require.NoError(t, err)
	return doc
}

func sampleSheet(t *testing.T) *css.Stylesheet {
	ul := css.Select("ul#a").Set("margin", "0")
	require.NoError(t, ul.Below(css.Select("li.item").Set("padding", "1px")))
	require.NoError(t, ul.Inside(css.Select("a:hover").Set("color", "red")))
	sheet, err := css.NewStylesheet(
		ul,
		css.Select("p", "table").Set("color", "black"),
		css.Select("div[").Set("x", "y"),
	)
	require.NoError(t, err)
	return sheet
}

func TestCheck(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagesmith.coverage")
	defer teardown()
	//
	checker, err := New(samplePage(t))
	require.NoError(t, err)
	report := checker.Check(sampleSheet(t))

	byStatus := map[string]Status{}
	matches := map[string]int{}
	for _, e := range report.Entries {
		byStatus[e.Selector] = e.Status
		matches[e.Selector] = e.Matches
	}
	assert.Equal(t, Matched, byStatus["ul#a"])
	assert.Equal(t, Matched, byStatus["ul#a>li.item"])
	assert.Equal(t, 2, matches["ul#a>li.item"])
	assert.Equal(t, Skipped, byStatus["ul#a a:hover"])
	assert.Equal(t, Matched, byStatus["p"])
	assert.Equal(t, Unused, byStatus["table"])
	assert.Equal(t, Invalid, byStatus["div["])

	assert.Equal(t, Stats{Selectors: 6, Matched: 3, Unused: 1, Invalid: 1, Skipped: 1}, report.Stats)
	require.Len(t, report.Filter(Invalid), 1)
	assert.Error(t, report.Filter(Invalid)[0].Err)
	t.Log(report.String())
}

func TestCheckSingleRule(t *testing.T) {
	checker, err := Parse(`<div class="x"><span>a</span></div>`)
	require.NoError(t, err)
	r := css.Select("div.x")
	require.NoError(t, r.Inside(css.Select("span").Set("color", "red")))
	report := checker.Check(r)
	require.Len(t, report.Entries, 1, "rules without declarations produce no block")
	assert.Equal(t, Entry{Selector: "div.x span", Status: Matched, Matches: 1}, report.Entries[0])
}

func TestIsPseudoSelector(t *testing.T) {
	assert.True(t, IsPseudoSelector("a:hover"))
	assert.True(t, IsPseudoSelector("p::first-line"))
	assert.False(t, IsPseudoSelector("li:first-child"))
	assert.False(t, IsPseudoSelector("ul li"))
}
