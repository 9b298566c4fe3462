// Package pagesmith is the public entry point for building HTML pages and CSS
// stylesheets in Go and writing them to disk.
package pagesmith

import (
	"fmt"
	"path/filepath"
	"time"

	"pagesmith/internal/config"
	"pagesmith/internal/coverage"
	"pagesmith/internal/css"
	"pagesmith/internal/fsutil"
	"pagesmith/internal/html"
)

// Options control rendering
type Options = config.Config

// Re-exported builder types
type (
	Rule       = css.Rule
	Stylesheet = css.Stylesheet
	Node       = html.Node
	Document   = html.Document
	Renderer   = html.Renderer
	Report     = coverage.Report
)

// DefaultOptions returns compact output with upper case names
func DefaultOptions() Options {
	return config.Default()
}

// PresetOptions returns one of the named presets in config.Presets
func PresetOptions(name string) (Options, error) {
	return config.Preset(name)
}

// Save renders r with opts and writes it to path, creating parent
// directories
func Save(path string, r Renderer, opts Options) error {
	return fsutil.WriteString(path, r.Render(opts))
}

// StyleTag embeds a stylesheet in a <style type="text/css"> node. The sheet
// is rendered with the options of the enclosing page.
func StyleTag(sheet *Stylesheet) *Node {
	return html.Must(html.New(html.Style, html.Child(sheet))).With(html.Attr("type", "text/css"))
}

// LinkTag references an external stylesheet
func LinkTag(href string) *Node {
	return html.Must(html.New(html.Link)).With(
		html.Attr("rel", "stylesheet"),
		html.Attr("type", "text/css"),
		html.Attr("href", href),
	)
}

// InlineStyle sets the STYLE attribute of node to the declarations of rule
func InlineStyle(node *Node, rule *Rule) error {
	return node.SetAttr("style", rule.Inline())
}

// Check reports which selectors of sheet match elements of page
func Check(sheet *Stylesheet, page Renderer) (*Report, error) {
	checker, err := coverage.New(page)
	if err != nil {
		return nil, err
	}
	return checker.Check(sheet), nil
}

// Publisher writes a page and its stylesheet into a directory
type Publisher struct {
	options Options
}

// New creates a publisher rendering with opts
func New(opts Options) *Publisher {
	return &Publisher{options: opts}
}

// NewWithDefaults creates a publisher with compact output
func NewWithDefaults() *Publisher {
	return New(DefaultOptions())
}

// Result describes a publish run
type Result struct {
	PagePath   string  // written page
	StylePath  string  // written stylesheet, empty if there was none
	PageBytes  int     // size of the page output
	StyleBytes int     // size of the stylesheet output
	Coverage   *Report // selector coverage, nil unless requested
	Duration   time.Duration
}

// Publish writes doc to dir/page.html and sheet, if not nil, to
// dir/style.css. With check set the stylesheet's selectors are matched
// against the page.
func (p *Publisher) Publish(dir string, doc *Document, sheet *Stylesheet, check bool) (*Result, error) {
	start := time.Now()
	result := &Result{PagePath: filepath.Join(dir, "page.html")}

	page := doc.Render(p.options)
	if err := fsutil.WriteString(result.PagePath, page); err != nil {
		return nil, fmt.Errorf("failed to publish page: %w", err)
	}
	result.PageBytes = len(page)

	if sheet != nil {
		result.StylePath = filepath.Join(dir, "style.css")
		styles := sheet.Render(p.options)
		if err := fsutil.WriteString(result.StylePath, styles); err != nil {
			return nil, fmt.Errorf("failed to publish stylesheet: %w", err)
		}
		result.StyleBytes = len(styles)
		if check {
			report, err := Check(sheet, doc)
			if err != nil {
				return nil, fmt.Errorf("failed to check selectors: %w", err)
			}
			result.Coverage = report
		}
	}
	result.Duration = time.Since(start)
	return result, nil
}
