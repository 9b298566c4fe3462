package scraper

import (
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"pagesmith/internal/html"
)

var (
	tagLink   = regexp.MustCompile(`^<(\w+)>`)
	dtdTag    = regexp.MustCompile(`^<(\w+)\s*(/?)>`)
	blankRuns = regexp.MustCompile(`\s+`)
)

// clean collapses whitespace runs
func clean(s string) string {
	return strings.TrimSpace(blankRuns.ReplaceAllString(s, " "))
}

// section returns the siblings following the h2 headed title, up to the
// next h2
func section(doc *goquery.Document, title string) *goquery.Selection {
	h2 := doc.Find("h2").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return clean(s.Text()) == title
	}).First()
	if h2.Length() == 0 {
		return h2
	}
	return h2.NextUntil("h2")
}

// parseTagList returns (page, tag) pairs of the tag index in page order
func parseTagList(doc *goquery.Document) []tagRef {
	var refs []tagRef
	seen := make(map[string]bool)
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		m := tagLink.FindStringSubmatch(clean(a.Text()))
		if m == nil {
			return
		}
		name := strings.ToLower(m[1])
		if seen[name] {
			return
		}
		seen[name] = true
		href, _ := a.Attr("href")
		refs = append(refs, tagRef{Name: name, Page: href})
	})
	return refs
}

// parseOpenTags returns the tags the DTD table lists with an end tag. Tags
// written self-closing, or missing from the table, are void.
func parseOpenTags(doc *goquery.Document) map[string]bool {
	open := make(map[string]bool)
	rows := section(doc, "HTML/XHTML Elements and Valid DTDs").Filter("table").First().Find("tr")
	rows.Each(func(_ int, tr *goquery.Selection) {
		m := dtdTag.FindStringSubmatch(clean(tr.Find("td").First().Text()))
		if m == nil || m[2] == "/" {
			return
		}
		open[strings.ToLower(m[1])] = true
	})
	return open
}

// parseAttrTable returns the normalized names in the first column of the
// table under the h2 headed title
func parseAttrTable(doc *goquery.Document, title string) []string {
	var names []string
	section(doc, title).Filter("table").First().Find("tr").Each(func(_ int, tr *goquery.Selection) {
		td := tr.Find("td").First()
		if td.Length() == 0 {
			return // header row
		}
		// "New" markers follow the name in the same cell
		fields := strings.Fields(clean(td.Text()))
		if len(fields) == 0 {
			return
		}
		names = append(names, html.AttrID(fields[0]))
	})
	return names
}

// parseDefinition returns the first paragraph under "Definition and Usage"
func parseDefinition(doc *goquery.Document) string {
	return clean(section(doc, "Definition and Usage").Filter("p").First().Text())
}

// supportState tells how a tag page refers to the shared attribute lists
type supportState int

const (
	supportsNone supportState = iota
	supportsAll
	supportsListed
)

func parseSupport(doc *goquery.Document, title string) supportState {
	text := clean(section(doc, title).Text())
	switch {
	case strings.Contains(text, "also supports"):
		return supportsAll
	case strings.Contains(text, "supports the following"):
		return supportsListed
	}
	return supportsNone
}

// parseTagPage extracts a tag's documentation and attributes
func parseTagPage(doc *goquery.Document, t *Tag) {
	t.Doc = parseDefinition(doc)
	var attrs []string
	for _, title := range []string{"Attributes", "Required Attributes", "Optional Attributes", "Standard Attributes"} {
		attrs = append(attrs, parseAttrTable(doc, title)...)
	}
	t.Global = parseSupport(doc, "Global Attributes") == supportsAll
	switch parseSupport(doc, "Event Attributes") {
	case supportsAll:
		t.Events = true
	case supportsListed:
		attrs = append(attrs, parseAttrTable(doc, "Event Attributes")...)
	}
	t.Attrs = unique(attrs)
}

// unique sorts names and removes duplicates
func unique(names []string) []string {
	sort.Strings(names)
	out := make([]string, 0, len(names))
	for _, n := range names {
		if len(out) > 0 && out[len(out)-1] == n {
			continue
		}
		out = append(out, n)
	}
	return out
}
