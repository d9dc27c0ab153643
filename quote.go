// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

// Block quotes are the one container whose opener is also its own
// continuation rule: extend just re-runs the same marker trim against each
// new line, and lines that don't start with it fall through to lazy
// continuation in the block driver instead.

// A Quote is a [Block] representing a [block quote].
//
// [block quote]: https://spec.commonmark.org/0.31.2/#block-quotes
type Quote struct {
	Position
	Blocks []Block // content of quote
}

func (*Quote) Block() {}

func (b *Quote) printHTML(p *printer) {
	p.html("<blockquote>\n")
	for _, c := range b.Blocks {
		c.printHTML(p)
	}
	p.html("</blockquote>\n")
}

// A quoteBuilder is a [blockBuilder] for a block quote. It carries no state
// of its own: everything it needs (the accumulated child blocks) lives on
// the parser's stack entry.
type quoteBuilder struct{}

// startBlockQuote is a [starter] for a [Quote].
func startBlockQuote(p *parser, s line) (line, bool) {
	rest, ok := s.quoteMarker()
	if !ok {
		return s, false
	}
	p.addBlock(new(quoteBuilder))
	return rest, true
}

// quoteMarker trims an optional 0-3 space indent, a required '>', and at
// most one space or tab immediately after it, reporting whether the '>' was
// present. On failure s is returned unmodified.
func (s line) quoteMarker() (line, bool) {
	t := s
	t.trimSpace(0, 3, false)
	if !t.trim('>') {
		return s, false
	}
	t.trimSpace(0, 1, true)
	return t, true
}

func (b *quoteBuilder) extend(p *parser, s line) (line, bool) {
	return s.quoteMarker()
}

func (b *quoteBuilder) build(p *parser) Block {
	return &Quote{p.pos(), p.blocks()}
}
