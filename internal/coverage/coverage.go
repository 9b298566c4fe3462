/*
Package coverage checks which selectors of a stylesheet match elements of a
rendered page.

The page is rendered compact and lower case, loaded with goquery, and every
compound selector produced by the stylesheet walk is compiled with cascadia
and matched against it. Selectors with dynamic pseudo-classes or
pseudo-elements cannot match a static page; they are reported as skipped.
*/
package coverage

import (
	"fmt"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/schuko/tracing"

	"pagesmith/internal/config"
	"pagesmith/internal/css"
	"pagesmith/internal/html"
)

// tracer traces with key 'pagesmith.coverage'.
func tracer() tracing.Trace {
	return tracing.Select("pagesmith.coverage")
}

// Status classifies a selector
type Status int

const (
	Matched Status = iota // matches at least one element
	Unused                // valid, but matches nothing
	Invalid               // cannot be compiled
	Skipped               // pseudo selector, not checkable on a static page
)

func (s Status) String() string {
	switch s {
	case Matched:
		return "matched"
	case Unused:
		return "unused"
	case Invalid:
		return "invalid"
	case Skipped:
		return "skipped"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Walker is anything that yields CSS blocks, e.g. a rule or a stylesheet
type Walker interface {
	Walk(visit func(css.Block))
}

// Entry is the result for one compound selector
type Entry struct {
	Selector string // compound selector as rendered
	Status   Status
	Matches  int   // number of matched elements
	Err      error // compile error of an invalid selector
}

// Report contains the result of a coverage check
type Report struct {
	Entries []Entry // one per distinct selector, sorted by selector
	Stats   Stats
}

// Stats counts selectors per status
type Stats struct {
	Selectors int // distinct selectors checked
	Matched   int
	Unused    int
	Invalid   int
	Skipped   int
}

// Checker matches selectors against a loaded page
type Checker struct {
	doc *goquery.Document
}

// New renders page and loads it for matching
func New(page html.Renderer) (*Checker, error) {
	cfg := config.Default()
	cfg.Uppercase = false
	return Parse(page.Render(cfg))
}

// Parse loads markup for matching
func Parse(markup string) (*Checker, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return &Checker{doc: doc}, nil
}

// Check matches every compound selector produced by rules
func (c *Checker) Check(rules Walker) *Report {
	seen := make(map[string]bool)
	var selectors []string
	rules.Walk(func(b css.Block) {
		for _, s := range b.Selectors {
			if !seen[s] {
				seen[s] = true
				selectors = append(selectors, s)
			}
		}
	})
	sort.Strings(selectors)

	report := &Report{Entries: make([]Entry, 0, len(selectors))}
	for _, s := range selectors {
		e := c.Match(s)
		report.Entries = append(report.Entries, e)
		report.Stats.add(e.Status)
	}
	tracer().Debugf("checked %d selectors: %d matched, %d unused, %d invalid, %d skipped",
		report.Stats.Selectors, report.Stats.Matched, report.Stats.Unused,
		report.Stats.Invalid, report.Stats.Skipped)
	return report
}

// Match checks a single selector
func (c *Checker) Match(selector string) Entry {
	e := Entry{Selector: selector}
	if IsPseudoSelector(selector) {
		e.Status = Skipped
		return e
	}
	sel, err := cascadia.Compile(selector)
	if err != nil {
		tracer().Debugf("invalid selector %q: %v", selector, err)
		e.Status, e.Err = Invalid, err
		return e
	}
	e.Matches = c.doc.FindMatcher(sel).Length()
	if e.Matches > 0 {
		e.Status = Matched
	} else {
		e.Status = Unused
	}
	return e
}

func (s *Stats) add(st Status) {
	s.Selectors++
	switch st {
	case Matched:
		s.Matched++
	case Unused:
		s.Unused++
	case Invalid:
		s.Invalid++
	case Skipped:
		s.Skipped++
	}
}

// Filter returns the entries with status st
func (r *Report) Filter(st Status) []Entry {
	var entries []Entry
	for _, e := range r.Entries {
		if e.Status == st {
			entries = append(entries, e)
		}
	}
	return entries
}

// String lists every entry that did not match, one per line, followed by
// a summary line
func (r *Report) String() string {
	var sb strings.Builder
	for _, e := range r.Entries {
		if e.Status == Matched {
			continue
		}
		fmt.Fprintf(&sb, "%-8s %s", e.Status, e.Selector)
		if e.Err != nil {
			fmt.Fprintf(&sb, " (%v)", e.Err)
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "%d selectors: %d matched, %d unused, %d invalid, %d skipped",
		r.Stats.Selectors, r.Stats.Matched, r.Stats.Unused, r.Stats.Invalid, r.Stats.Skipped)
	return sb.String()
}

// pseudoMarkers are the pseudo-classes and pseudo-elements that depend on
// user interaction or generated content
var pseudoMarkers = []string{
	":hover", ":focus", ":active", ":visited", ":link",
	"::before", "::after", ":before", ":after",
	"::first-line", "::first-letter", "::selection", "::placeholder",
}

// IsPseudoSelector checks if a selector contains pseudo-classes or
// pseudo-elements that a static page cannot match
func IsPseudoSelector(selector string) bool {
	if !strings.Contains(selector, ":") {
		return false
	}
	for _, m := range pseudoMarkers {
		if strings.Contains(selector, m) {
			return true
		}
	}
	return false
}
