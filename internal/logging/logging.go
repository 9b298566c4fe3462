// Package logging installs the process-wide tracer for the command line
// tools. Library packages select their tracers by key ("pagesmith.css",
// "pagesmith.html", ...) and stay silent until Setup has been called.
package logging

import (
	"io"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// Level maps the -verbose flag to a trace level. Errors are always traced.
func Level(verbose bool) tracing.TraceLevel {
	if verbose {
		return tracing.LevelDebug
	}
	return tracing.LevelError
}

// Setup routes every trace key to a Go logger writing to w at level.
// It returns the shared tracer.
func Setup(w io.Writer, level tracing.TraceLevel) tracing.Trace {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	t := tracing.Select("pagesmith")
	t.SetOutput(w)
	t.SetTraceLevel(level)
	return t
}
