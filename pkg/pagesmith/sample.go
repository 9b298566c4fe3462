package pagesmith

import (
	"fmt"

	"pagesmith/internal/css"
	"pagesmith/internal/html"
)

// SampleStylesheet returns the stylesheet of the sample page
func SampleStylesheet() *Stylesheet {
	li := css.Select("li").
		Set("padding", "0.4em").
		Set("margin", "0.8em 0 0.8em")
	mustNoErr(li.Inside(
		css.Select("h3").Set("font-size", "1.2em"),
		css.Select("p").Set("padding", "0.3em"),
		css.Select("p.meta").Set("text-align", "right").Set("color", "#ddd"),
	))
	comments := css.Select("ul#comments", "ol#comments").Set("margin", "0").Set("padding", "0")
	mustNoErr(comments.Inside(li))

	table := css.Select("table.grid").Set("background", "#eee").Set("font-size", "20px")
	mustNoErr(table.Below(css.Select("tr").Set("height", "2em")))
	row := css.Select("tr")
	mustNoErr(row.After(css.Select("tr").Set("border-top", "1px solid #ccc")))
	mustNoErr(table.Inside(row))

	links := css.Select("a:hover").Set("background", "pink")

	sheet, err := css.NewStylesheet(comments, table, links)
	mustNoErr(err)
	return sheet
}

// SamplePage returns a small page linking to the stylesheet at cssHref. An
// empty cssHref embeds sheet in a style tag instead.
func SamplePage(sheet *Stylesheet, cssHref string) (*Document, error) {
	head := html.Must(html.New(html.Head,
		html.Child(html.Must(html.New(html.Title, html.Text("Sample page")))),
		html.Child(html.Must(html.New(html.Meta)).With(html.Attr("name", "description"), html.Attr("content", "Test page"))),
		html.Child(html.Must(html.New(html.Meta)).With(html.Attr("name", "keywords"), html.Attr("content", "HTML, CSS"))),
	))
	if cssHref != "" {
		if err := head.Add(LinkTag(cssHref)); err != nil {
			return nil, err
		}
	} else if sheet != nil {
		if err := head.Add(StyleTag(sheet)); err != nil {
			return nil, err
		}
	}

	link := html.Must(html.New(html.A, html.Text("home"))).With(
		html.Attr("href", "index.html"),
		html.Attr("onmouseover", "this.style.background='pink';"),
		html.Attr("onmouseout", "this.style.background='white';"),
	)

	grid := html.Must(html.New(html.Table)).With(html.Attr("class", "grid"))
	for i := 0; i < 3; i++ {
		tr := html.Must(html.New(html.Tr))
		for j := 0; j < 3; j++ {
			if err := tr.Add(html.Must(html.New(html.Td, html.Text(fmt.Sprintf("(%d,%d)", i, j))))); err != nil {
				return nil, err
			}
		}
		if err := grid.Add(tr); err != nil {
			return nil, err
		}
	}

	comments := html.Must(html.New(html.Ul)).With(html.Attr("id", "comments"))
	item := html.Must(html.New(html.Li,
		html.Child(html.Must(html.New(html.H3, html.Text("First!")))),
		html.Child(html.Must(html.New(html.P, html.Text("Nice page <3")))),
		html.Child(html.Must(html.New(html.P, html.Raw("posted 2012"+html.NBSP+"by guest"))).With(html.Attr("class", "meta"))),
	))
	if err := comments.Add(item); err != nil {
		return nil, err
	}

	button := html.Must(html.New(html.Input)).With(
		html.Attr("type", "button"),
		html.Attr("onclick", "showAlert()"),
		html.Attr("value", "Show alert box"),
	)
	script := html.Must(html.New(html.Script, html.Raw(`function showAlert() { alert("Hello"); }`))).
		With(html.Attr("type", "text/javascript"))

	body := html.Must(html.New(html.Body,
		html.Child(html.Comment(html.Text("generated by pagesmith"))),
		html.Child(html.Must(html.New(html.H1, html.Text("Sample page")))),
		html.Child(link),
		html.Child(grid),
		html.Child(comments),
		html.Child(html.Must(html.New(html.Br))),
		html.Child(button),
		html.Child(script),
	))
	return html.NewDocument(head, body, html.WithLang("en"), html.WithDir("ltr"))
}

func mustNoErr(err error) {
	if err != nil {
		panic(err)
	}
}
