package html

// Character entities
const (
	NBSP  = "&nbsp;"
	LT    = "&lt;"
	GT    = "&gt;"
	AMP   = "&amp;"
	CENT  = "&cent;"
	POUND = "&pound;"
	YEN   = "&yen;"
	EURO  = "&euro;"
	SECT  = "&sect;"
	COPY  = "&copy;"
	REG   = "&reg;"
	TRADE = "&trade;"
)

// Document type declarations, to be used with Doctype
const (
	HTML401Strict       = `HTML PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd"`
	HTML401Transitional = `HTML PUBLIC "-//W3C//DTD HTML 4.01 Transitional//EN" "http://www.w3.org/TR/html4/loose.dtd"`
	HTML401Frameset     = `HTML PUBLIC "-//W3C//DTD HTML 4.01 Frameset//EN" "http://www.w3.org/TR/html4/frameset.dtd"`
	XHTML10Strict       = `html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd"`
	XHTML10Transitional = `html PUBLIC "-//W3C//DTD XHTML 1.0 Transitional//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-transitional.dtd"`
	XHTML10Frameset     = `html PUBLIC "-//W3C//DTD XHTML 1.0 Frameset//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-frameset.dtd"`
	XHTML11             = `html PUBLIC "-//W3C//DTD XHTML 1.1//EN" "http://www.w3.org/TR/xhtml11/DTD/xhtml11.dtd"`
	HTML5               = `html`
)

// XHTMLNamespace is the default XMLNS of a document root
const XHTMLNamespace = "http://www.w3.org/1999/xhtml"

// Comment creates a comment node. Text items are escaped.
func Comment(items ...Content) *Node {
	return Pseudo("<!--", "-->", items...)
}

// Doctype creates a document type declaration node
func Doctype(dtd string) *Node {
	return Pseudo("<!DOCTYPE ", ">", Raw(dtd))
}

// PHP creates a PHP processing instruction around raw code
func PHP(code string) *Node {
	return Pseudo("<?php ", "?>", Raw(code))
}
