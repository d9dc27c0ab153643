// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package markdown implements parsing of CommonMark Markdown text and
// its rendering to HTML.
package markdown

// A Parser parses CommonMark Markdown text. Each call to [Parser.Parse]
// starts from an empty link reference table, so one document never sees
// the references of another; afterwards the Parser holds the table of the
// most recently parsed document, for [Parser.LinkText] and
// [Parser.ImageText].
//
// The zero Parser is ready to use.
type Parser struct {
	links map[string]*Link
}

// Parse parses the Markdown text and returns the corresponding [Document].
// Link references are resolved against the definitions in markdown alone;
// definitions from an earlier Parse or from [Parser.DefineLink] are not
// used, and p's link reference table is replaced by the document's own.
func (p *Parser) Parse(markdown string) *Document {
	doc := parseDocument(markdown, nil)
	p.links = doc.Links
	return doc
}

// HTMLOf parses markdown and renders the result as HTML in one step.
// It is equivalent to ToHTML(p.Parse(markdown)) but does not require
// keeping the intermediate [Document] around.
func (p *Parser) HTMLOf(markdown string) string {
	return ToHTML(p.Parse(markdown))
}

// DefineLink records label as a link reference to destination, with the
// given title (which may be empty). A label already defined is left
// unchanged: first definition wins, matching the rule for link reference
// definitions found while parsing.
func (p *Parser) DefineLink(label, destination, title string) {
	if p.links == nil {
		p.links = make(map[string]*Link)
	}
	label = normalizeLabel(label)
	if _, ok := p.links[label]; ok {
		return
	}
	p.links[label] = &Link{URL: destination, Title: title}
}

// LinkText renders a standalone <a> tag resolving label against p's link
// reference table, with label itself (parsed as inline Markdown) as the
// visible text. If text is given, its first element is used as the
// visible text instead of label. LinkText returns "" if label is not a
// defined reference.
func (p *Parser) LinkText(label string, text ...string) string {
	link := p.links[normalizeLabel(label)]
	if link == nil {
		return ""
	}
	visible := label
	if len(text) > 0 {
		visible = text[0]
	}
	x := &Link{Inner: inlineText(visible), URL: link.URL, Title: link.Title}
	var pr printer
	x.printHTML(&pr)
	return pr.buf.String()
}

// ImageText renders a standalone <img> tag resolving label against p's
// link reference table, with label itself as the alt text. If
// description is given, its first element is used as the alt text
// instead of label. ImageText returns "" if label is not a defined
// reference.
func (p *Parser) ImageText(label string, description ...string) string {
	link := p.links[normalizeLabel(label)]
	if link == nil {
		return ""
	}
	alt := label
	if len(description) > 0 {
		alt = description[0]
	}
	x := &Image{Inner: inlineText(alt), URL: link.URL, Title: link.Title}
	var pr printer
	x.printHTML(&pr)
	return pr.buf.String()
}

// inlineText parses s as a standalone run of inline Markdown, outside the
// context of any enclosing block or link reference table.
func inlineText(s string) Inlines {
	return new(parser).inline(s)
}
