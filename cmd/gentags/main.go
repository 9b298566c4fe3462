// Command gentags scrapes the w3schools HTML reference and writes the tag
// catalogue of package html.
//
//	go run ./cmd/gentags -output internal/html/catalogue.go
//	go run ./cmd/gentags -dir saved/ -output catalogue.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"pagesmith/internal/fsutil"
	"pagesmith/internal/logging"
	"pagesmith/internal/scraper"
)

var (
	// Source flags
	baseURL = flag.String("url", scraper.DefaultBaseURL, "Documentation site to scrape")
	pageDir = flag.String("dir", "", "Read saved pages from directory instead of the site")
	timeout = flag.Duration("timeout", 30*time.Second, "Timeout per page request")

	// Output flags
	outputFile = flag.String("output", "", "Output Go file path (default: stdout)")
	pkgName    = flag.String("package", "html", "Package name of the generated file")

	// Output control flags
	verbose   = flag.Bool("verbose", false, "Trace page fetches")
	quiet     = flag.Bool("quiet", false, "Suppress all output except errors")
	benchmark = flag.Bool("benchmark", false, "Show processing time")
)

func main() {
	flag.Parse()

	if err := validateArgs(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}
	logging.Setup(os.Stderr, logging.Level(*verbose))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	startTime := time.Now()
	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *benchmark {
		fmt.Fprintf(os.Stderr, "Scraping completed in %v\n", time.Since(startTime))
	}
}

// validateArgs validates command line arguments
func validateArgs() error {
	if *quiet && *verbose {
		return fmt.Errorf("cannot specify both -quiet and -verbose")
	}
	if *pkgName == "" {
		return fmt.Errorf("-package must not be empty")
	}
	if *pageDir != "" {
		info, err := os.Stat(*pageDir)
		if err != nil {
			return fmt.Errorf("cannot read page directory: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("%s is not a directory", *pageDir)
		}
	}
	return nil
}

func run(ctx context.Context) error {
	var fetcher scraper.Fetcher
	if *pageDir != "" {
		fetcher = scraper.DirFetcher{Dir: *pageDir}
	} else {
		fetcher = scraper.NewHTTPFetcher(*baseURL, *timeout)
	}

	cat, err := scraper.New(fetcher).Scrape(ctx)
	if err != nil {
		return fmt.Errorf("failed to scrape %s: %w", fetcher.Source(), err)
	}
	src, err := cat.Generate(*pkgName)
	if err != nil {
		return err
	}
	if err := writeOutput(string(src), *outputFile); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if !*quiet {
		fmt.Fprintf(os.Stderr, "Generated %d kinds, %d global and %d event attributes from %s\n",
			len(cat.Tags), len(cat.Global), len(cat.Events), fetcher.Source())
	}
	return nil
}

// writeOutput writes content to a file or stdout
func writeOutput(content, filename string) error {
	if filename == "" {
		_, err := fmt.Print(content)
		return err
	}
	return fsutil.WriteString(filename, content)
}
