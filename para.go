// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"strings"
)

// TODO: unexport Empty?

// An Empty is a [Block] representing no block at all.
// The parser leaves an Empty in the parse tree in place of a paragraph
// that consisted only of link reference definitions; the paragraph's
// slot is kept, not removed.
// It does not render as anything at all.
type Empty struct {
	Position
}

func (*Empty) Block() {}

func (b *Empty) printHTML(p *printer) {}

type Text struct {
	Position
	Inline Inlines
}

// TODO: This is only a Block for tight lists. Maybe keep the Paragraphs for those?
func (*Text) Block() {}

func (b *Text) printHTML(p *printer) {
	for _, x := range b.Inline {
		x.printHTML(p)
	}
}

// A Paragraph is a [Block] representing a [paragraph].
// Except when they appear as top-level blocks in an item of a tight list,
// paragraphs render in <p>...</p> tags.
//
// [paragraph]: https://spec.commonmark.org/0.31.2/#paragraphs
type Paragraph struct {
	Position
	Text *Text
}

func (*Paragraph) Block() {}

func (b *Paragraph) printHTML(p *printer) {
	p.html("<p>")
	b.Text.printHTML(p)
	p.html("</p>\n")
}

// A paraBuilder is a [blockBuilder] for a [Paragraph].
type paraBuilder struct {
	text []string // each line of the paragraph
}

// startParagraph is a [starter] for a [Paragraph].
func startParagraph(p *parser, s line) (line, bool) {
	// Process paragraph continuation text or start new paragraph.
	b := p.para()
	text := s.trimSpaceString()

	if b != nil {
		for i := p.lineDepth; i < len(p.stack); i++ {
			p.stack[i].pos.EndLine = p.lineno
		}
	} else {
		// Note: Ends anything without a matching prefix.
		b = new(paraBuilder)
		p.addBlock(b)
	}
	b.text = append(b.text, text)
	return line{}, true
}

// extend would normally extend the paragraph with the line s,
// but we return false and let startParagraph handle extension,
// which it must for “paragraph continuation text” anyway.
func (b *paraBuilder) extend(p *parser, s line) (line, bool) {
	return s, false
}

func (b *paraBuilder) build(p *parser) Block {
	// Join all the lines (leading framing already removed)
	// to produce the full string of the paragraph.
	// In theory the join could be avoided by having [parser.inline]
	// handle a slice of lines, but then all the [inlineParser] implementations
	// would need to do that too, which would complicate them.
	// The join is simple.
	s := strings.Join(b.text, "\n")

	// Parse and remove any link reference definitions at the start of s.
	for s != "" {
		end, ok := parseLinkRefDef(p, s)
		if !ok {
			break
		}
		s = s[skipSpace(s, end):]
	}

	// If the paragraph is empty, return an Empty.
	// This can happen if the text was entirely link reference definitions.
	if s == "" {
		return &Empty{p.pos()}
	}

	pos := p.pos()
	pos.EndLine = pos.StartLine + len(b.text) - 1
	return &Paragraph{
		pos,
		p.newText(pos, s),
	}
}
