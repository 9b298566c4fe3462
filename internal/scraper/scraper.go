/*
Package scraper builds the tag catalogue of package html from the w3schools
HTML reference.

It is a one-shot batch job: the tag index, the DTD table (which tags have an
end tag), the global and event attribute pages and one page per tag are
fetched, parsed with goquery and turned into Go source declaring one Kind per
tag. Pages come from the web site or from a directory of saved pages.
*/
package scraper

import (
	"context"
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pagesmith.scraper'.
func tracer() tracing.Trace {
	return tracing.Select("pagesmith.scraper")
}

// DefaultBaseURL is the documentation site
const DefaultBaseURL = "https://www.w3schools.com"

// Site paths of the index pages
const (
	TagListPage    = "/tags/default.asp"
	DTDPage        = "/tags/ref_html_dtd.asp"
	GlobalAttrPage = "/tags/ref_standardattributes.asp"
	EventAttrPage  = "/tags/ref_eventattributes.asp"
)

// EventGroups are the sections of the event attribute page
var EventGroups = []string{
	"Window Event Attributes",
	"Form Events",
	"Keyboard Events",
	"Mouse Events",
	"Media Events",
}

type tagRef struct {
	Name string // lower case tag name
	Page string // page path relative to /tags/
}

// Tag is the scraped description of one element
type Tag struct {
	Name   string   // lower case
	Doc    string   // first paragraph of "Definition and Usage"
	Void   bool     // no end tag
	Global bool     // accepts the global attributes
	Events bool     // accepts all event attributes
	Attrs  []string // tag specific attributes, normalized and sorted
}

// Catalogue is the result of a scrape
type Catalogue struct {
	Source string
	Global []string // normalized and sorted
	Events []string // all event groups merged, normalized and sorted
	Tags   []Tag    // in index order, headings expanded
}

// Scraper fetches and parses the reference pages
type Scraper struct {
	fetcher Fetcher
}

// New creates a scraper reading pages from f
func New(f Fetcher) *Scraper {
	return &Scraper{fetcher: f}
}

// Scrape fetches every page and assembles the catalogue. The first failing
// page aborts the scrape.
func (s *Scraper) Scrape(ctx context.Context) (*Catalogue, error) {
	index, err := s.fetcher.Fetch(ctx, TagListPage)
	if err != nil {
		return nil, err
	}
	refs := parseTagList(index)
	if len(refs) == 0 {
		return nil, fmt.Errorf("no tags found on %s", TagListPage)
	}
	tracer().Infof("found %d tags", len(refs))

	dtd, err := s.fetcher.Fetch(ctx, DTDPage)
	if err != nil {
		return nil, err
	}
	open := parseOpenTags(dtd)

	globals, err := s.fetcher.Fetch(ctx, GlobalAttrPage)
	if err != nil {
		return nil, err
	}
	cat := &Catalogue{
		Source: s.fetcher.Source(),
		Global: unique(parseAttrTable(globals, "HTML Global Attributes")),
	}

	events, err := s.fetcher.Fetch(ctx, EventAttrPage)
	if err != nil {
		return nil, err
	}
	var all []string
	for _, group := range EventGroups {
		all = append(all, parseAttrTable(events, group)...)
	}
	cat.Events = unique(all)

	for _, ref := range refs {
		page, err := s.fetcher.Fetch(ctx, "/tags/"+strings.TrimPrefix(ref.Page, "/tags/"))
		if err != nil {
			return nil, fmt.Errorf("failed to scrape <%s>: %w", ref.Name, err)
		}
		t := Tag{Name: ref.Name, Void: !open[ref.Name]}
		parseTagPage(page, &t)
		tracer().Debugf("<%s>: %d attributes, global=%v, events=%v", t.Name, len(t.Attrs), t.Global, t.Events)
		if t.Name == "h1" {
			// one page documents all headings
			for i := 1; i <= 6; i++ {
				h := t
				h.Name = fmt.Sprintf("h%d", i)
				cat.Tags = append(cat.Tags, h)
			}
			continue
		}
		cat.Tags = append(cat.Tags, t)
	}
	return cat, nil
}
