// Command pagesmith builds the sample page and its stylesheet and writes them
// to a directory.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"pagesmith/internal/config"
	"pagesmith/internal/debug"
	"pagesmith/internal/logging"
	"pagesmith/pkg/pagesmith"
)

var (
	// Output flags
	outDir = flag.String("out", "out", "Output directory for page.html and style.css")
	indent = flag.String("indent", "", "Indent unit for pretty output (overrides the preset)")
	preset = flag.String("preset", "compact", "Render preset ("+strings.Join(config.Presets, ", ")+")")
	embed  = flag.Bool("embed", false, "Embed the stylesheet in a <style> tag instead of linking it")

	// Inspection flags
	check = flag.Bool("check", false, "Report selectors that match no element of the page")
	dump  = flag.Bool("dump", false, "Print the rule and markup trees")

	// Output control flags
	verbose   = flag.Bool("verbose", false, "Trace saves and document binding")
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

	opts, err := buildOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// validateArgs validates command line arguments
func validateArgs() error {
	if *quiet && *verbose {
		return fmt.Errorf("cannot specify both -quiet and -verbose")
	}
	if *outDir == "" {
		return fmt.Errorf("-out must not be empty")
	}
	if strings.TrimLeft(*indent, " \t") != "" {
		return fmt.Errorf("-indent must consist of spaces and tabs")
	}
	return nil
}

// buildOptions creates render options from command line flags
func buildOptions() (pagesmith.Options, error) {
	opts, err := pagesmith.PresetOptions(*preset)
	if err != nil {
		return opts, err
	}
	if *indent != "" {
		opts.Indent = *indent
	}
	return opts, nil
}

func run(opts pagesmith.Options) error {
	sheet := pagesmith.SampleStylesheet()
	href := "style.css"
	if *embed {
		href = ""
	}
	doc, err := pagesmith.SamplePage(sheet, href)
	if err != nil {
		return fmt.Errorf("failed to build sample page: %w", err)
	}

	if *dump {
		fmt.Fprintf(os.Stderr, "Rules:\n%s\nMarkup:\n%s\n", debug.StylesheetTree(sheet), debug.DocumentTree(doc))
	}

	publisher := pagesmith.New(opts)
	linked := sheet
	if *embed {
		linked = nil
	}
	result, err := publisher.Publish(*outDir, doc, linked, *check && !*embed)
	if err != nil {
		return err
	}

	if *check && *embed {
		if result.Coverage, err = pagesmith.Check(sheet, doc); err != nil {
			return fmt.Errorf("failed to check selectors: %w", err)
		}
	}

	if !*quiet {
		fmt.Fprintf(os.Stderr, "Wrote %s (%d bytes)\n", result.PagePath, result.PageBytes)
		if result.StylePath != "" {
			fmt.Fprintf(os.Stderr, "Wrote %s (%d bytes)\n", result.StylePath, result.StyleBytes)
		}
	}
	if result.Coverage != nil {
		fmt.Println(result.Coverage.String())
	}
	if *benchmark {
		fmt.Fprintf(os.Stderr, "Publishing completed in %v\n", result.Duration)
	}
	return nil
}
