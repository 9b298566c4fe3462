package scraper

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"
)

var catalogueTemplate = template.Must(template.New("catalogue").Parse(`// Code generated by gentags from {{.Source}}; DO NOT EDIT.

package {{.Package}}

// globalAttributes are accepted by every kind declared withGlobal.
var globalAttributes = []string{
{{- range .Global}}
	{{printf "%q" .}},
{{- end}}
}

// eventAttributes are accepted by every kind declared withEvents.
var eventAttributes = []string{
{{- range .Events}}
	{{printf "%q" .}},
{{- end}}
}

var (
{{- range $i, $t := .Tags}}
{{- if $i}}
{{end}}
	// {{$t.Comment}}
	{{$t.Ident}} = newKind({{printf "%q" $t.Declared}}, {{$t.Void}}, {{$t.Flags}}{{range $t.Attrs}}, {{printf "%q" .}}{{end}})
{{- end}}
)
`))

// Generate renders the catalogue as gofmt-formatted Go source for package pkg
func (c *Catalogue) Generate(pkg string) ([]byte, error) {
	var buf bytes.Buffer
	err := catalogueTemplate.Execute(&buf, struct {
		*Catalogue
		Package string
	}{c, pkg})
	if err != nil {
		return nil, fmt.Errorf("failed to execute catalogue template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated source: %w", err)
	}
	return src, nil
}

// Ident is the Go identifier of the tag's kind, e.g. "Td" for td
func (t Tag) Ident() string {
	return strings.ToUpper(t.Name[:1]) + t.Name[1:]
}

// Declared is the upper case tag name
func (t Tag) Declared() string {
	return strings.ToUpper(t.Name)
}

// Flags is the attribute flag expression passed to newKind
func (t Tag) Flags() string {
	switch {
	case t.Global && t.Events:
		return "withGlobal|withEvents"
	case t.Global:
		return "withGlobal"
	case t.Events:
		return "withEvents"
	}
	return "0"
}

// Comment is the doc comment of the kind. "The <a> tag defines ..." becomes
// "A defines ...".
func (t Tag) Comment() string {
	doc := clean(t.Doc)
	if doc == "" {
		return fmt.Sprintf("%s is the <%s> element.", t.Ident(), t.Name)
	}
	for _, prefix := range []string{"The <" + t.Name + "> tag ", "The <" + t.Name + "> element "} {
		if strings.HasPrefix(doc, prefix) {
			return t.Ident() + " " + strings.TrimPrefix(doc, prefix)
		}
	}
	return t.Ident() + ": " + strings.ToLower(doc[:1]) + doc[1:]
}
