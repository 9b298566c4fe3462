package html

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	nethtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"pagesmith/internal/config"
)

func sampleDocument(t *testing.T) *Document {
	head := Must(New(Head, Child(Must(New(Title, Text("Sample"))))))
	body := Must(New(Body, Child(sampleTable(t))))
	doc, err := NewDocument(head, body)
	require.NoError(t, err)
	return doc
}

func TestDocumentCompact(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagesmith.html")
	defer teardown()
	//
	doc := sampleDocument(t)
	out := doc.String()
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE "+XHTML10Transitional+"><HTML"), out)
	assert.Equal(t, "<!DOCTYPE "+XHTML10Transitional+">"+
		`<HTML XMLNS="http://www.w3.org/1999/xhtml">`+
		"<HEAD><TITLE>Sample</TITLE></HEAD>"+
		"<BODY><TABLE><TR><TD>a</TD><TD>b</TD><TD>c</TD></TR></TABLE></BODY>"+
		"</HTML>", out)
}

func TestDocumentOptions(t *testing.T) {
	doc, err := NewDocument(nil, nil, WithDTD(HTML5), WithNamespace(""), WithDir("ltr"), WithLang("en"))
	require.NoError(t, err)
	assert.Equal(t, `<!DOCTYPE html><html dir="ltr" lang="en"><head></head><body></body></html>`, doc.Render(lower()))

	doc.SetDoctype(HTML401Strict)
	assert.True(t, strings.HasPrefix(doc.String(), `<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 4.01//EN"`))
}

func TestDocumentPretty(t *testing.T) {
	doc, err := NewDocument(nil, nil, WithDTD(HTML5), WithNamespace(""))
	require.NoError(t, err)
	cfg := config.Default()
	cfg.Indent = "  "
	want := strings.Join([]string{
		"<!DOCTYPE html>",
		"<HTML>",
		"  <HEAD>",
		"  </HEAD>",
		"  <BODY>",
		"  </BODY>",
		"</HTML>",
	}, "\n")
	assert.Equal(t, want, doc.Render(cfg))
}

func TestDocumentFromRoot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagesmith.html")
	defer teardown()
	//
	head, body := Must(New(Head)), Must(New(Body))
	root := Must(New(Html, Child(Comment(Text("generated"))), Child(head), Child(body)))
	doc, err := FromRoot(root, WithDTD(HTML5))
	require.NoError(t, err)
	assert.Same(t, head, doc.Head())
	assert.Same(t, body, doc.Body())
	assert.Same(t, root, doc.Root())
	assert.Equal(t, "<!DOCTYPE html>", doc.Doctype().String())

	_, err = FromRoot(Must(New(Html, Child(Must(New(Head))))))
	assert.True(t, errors.Is(err, ErrMissingRole), "got %v", err)
	assert.Contains(t, err.Error(), "<BODY>")

	_, err = FromRoot(Must(New(Html, Child(Must(New(Head))), Child(Must(New(Head))), Child(Must(New(Body))))))
	assert.True(t, errors.Is(err, ErrDuplicateRole), "got %v", err)

	_, err = FromRoot(nil)
	assert.True(t, errors.Is(err, ErrMissingRole))

	// a nested HEAD does not count
	_, err = FromRoot(Must(New(Html, Child(Must(New(Div, Child(Must(New(Head)))))), Child(Must(New(Body))))))
	assert.True(t, errors.Is(err, ErrMissingRole))

	err = doc.SetRoot(Must(New(Html)))
	assert.True(t, errors.Is(err, ErrMissingRole))
	assert.Same(t, root, doc.Root(), "failed SetRoot leaves the document unchanged")
}

func TestDocumentSetHeadBody(t *testing.T) {
	doc := sampleDocument(t)
	head := Must(New(Head, Child(Must(New(Title, Text("New"))))))
	require.NoError(t, doc.SetHead(head))
	assert.Same(t, head, doc.Head())
	assert.Same(t, head, doc.Root().Content()[0].Node(), "head keeps its index")

	body := Must(New(Body, Text("replaced")))
	require.NoError(t, doc.SetBody(body))
	assert.Same(t, body, doc.Root().Content()[1].Node())
	assert.True(t, strings.HasSuffix(doc.String(), "<HEAD><TITLE>New</TITLE></HEAD><BODY>replaced</BODY></HTML>"))

	err := doc.SetBody(Must(New(Div)))
	assert.True(t, errors.Is(err, ErrWrongRole), "got %v", err)
	err = doc.SetHead(nil)
	assert.True(t, errors.Is(err, ErrWrongRole))
	_, err = NewDocument(Must(New(Body)), nil)
	assert.True(t, errors.Is(err, ErrWrongRole))
}

func TestDocumentReparses(t *testing.T) {
	doc := sampleDocument(t)
	cfg := lower()
	for _, indent := range []string{"", "\t"} {
		cfg.Indent = indent
		root, err := nethtml.Parse(strings.NewReader(doc.Render(cfg)))
		require.NoError(t, err)
		var cells []string
		var title string
		var walk func(*nethtml.Node)
		walk = func(n *nethtml.Node) {
			if n.Type == nethtml.ElementNode {
				switch n.DataAtom {
				case atom.Td:
					cells = append(cells, strings.TrimSpace(n.FirstChild.Data))
				case atom.Title:
					title = strings.TrimSpace(n.FirstChild.Data)
				}
			}
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				walk(c)
			}
		}
		walk(root)
		assert.Equal(t, []string{"a", "b", "c"}, cells, "indent %q", indent)
		assert.Equal(t, "Sample", title)
	}
}

func TestDocumentSave(t *testing.T) {
	doc := sampleDocument(t)
	path := filepath.Join(t.TempDir(), "site", "index.html")
	require.NoError(t, doc.Save(path, "  "))
	saved, err := os.ReadFile(path)
	require.NoError(t, err)
	cfg := config.Default()
	cfg.Indent = "  "
	assert.Equal(t, doc.Render(cfg), string(saved))
}
