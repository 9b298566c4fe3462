package scraper

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Fetcher loads a documentation page by its site path, e.g. "/tags/tag_a.asp"
type Fetcher interface {
	Fetch(ctx context.Context, page string) (*goquery.Document, error)
	Source() string
}

// HTTPFetcher loads pages from a web site
type HTTPFetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPFetcher creates a fetcher for baseURL with a request timeout
func NewHTTPFetcher(baseURL string, timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		Client:  &http.Client{Timeout: timeout},
	}
}

// Fetch requests the page and parses the response body
func (f *HTTPFetcher) Fetch(ctx context.Context, page string) (*goquery.Document, error) {
	url := f.BaseURL + page
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", url, err)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()
	tracer().Debugf("GET %s: %s", url, resp.Status)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s: %s", url, resp.Status)
	}
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", url, err)
	}
	return doc, nil
}

// Source returns the base URL
func (f *HTTPFetcher) Source() string {
	return f.BaseURL
}

// DirFetcher loads saved pages from a directory mirroring the site paths
type DirFetcher struct {
	Dir string
}

// Fetch reads and parses the saved page
func (f DirFetcher) Fetch(ctx context.Context, page string) (*goquery.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := filepath.Join(f.Dir, filepath.FromSlash(strings.TrimPrefix(page, "/")))
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open saved page: %w", err)
	}
	defer file.Close()
	tracer().Debugf("read %s", path)
	doc, err := goquery.NewDocumentFromReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, nil
}

// Source returns the directory
func (f DirFetcher) Source() string {
	return f.Dir
}
