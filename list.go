// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "fmt"

// A List is a [Block] representing a [list] of [list items],
// all using the same bullet or the same ordered-list delimiter.
//
// [list]: https://spec.commonmark.org/0.31.2/#lists
// [list items]: https://spec.commonmark.org/0.31.2/#list-items
type List struct {
	Position
	Bullet rune // '-', '+', '*' for a bullet list; '.' or ')' for an ordered list
	Start  int  // first ordinal, for an ordered list
	Loose  bool // whether any item (or the gap between any two items) contains a blank line
	Items  []Block
}

func (*List) Block() {}

func (b *List) isOrdered() bool {
	return b.Bullet == '.' || b.Bullet == ')'
}

func (b *List) printHTML(p *printer) {
	if b.isOrdered() {
		p.html("<ol")
		if b.Start != 1 {
			fmt.Fprintf(p, " start=\"%d\"", b.Start)
		}
		p.html(">\n")
	} else {
		p.html("<ul>\n")
	}
	for _, c := range b.Items {
		c.printHTML(p)
	}
	if b.isOrdered() {
		p.html("</ol>\n")
	} else {
		p.html("</ul>\n")
	}
}

// An Item is a [Block] representing a single [list item] within a [List].
//
// [list item]: https://spec.commonmark.org/0.31.2/#list-items
type Item struct {
	Position
	Blocks []Block
}

func (*Item) Block() {}

func (b *Item) printHTML(p *printer) {
	p.html("<li>")
	if len(b.Blocks) > 0 {
		if _, ok := b.Blocks[0].(*Text); !ok {
			p.html("\n")
		}
	}
	for i, c := range b.Blocks {
		c.printHTML(p)
		if i+1 < len(b.Blocks) {
			if _, ok := c.(*Text); ok {
				p.html("\n")
			}
		}
	}
	p.html("</li>\n")
}

// A listBuilder is a [blockBuilder] for a [List]. It owns the currently
// open item, if any, and a pending "todo" line left over from the
// bullet/ordinal scan that started the next item (see [newListItem]).
type listBuilder struct {
	bullet rune
	num    int
	loose  bool
	item   *itemBuilder
	todo   func() line
}

// An itemBuilder is a [blockBuilder] for an [Item].
type itemBuilder struct {
	list        *listBuilder
	width       int // indent consumed by the marker, for continuation lines
	haveContent bool
}

func (b *listBuilder) build(p *parser) Block {
	blocks := p.blocks()
	pos := p.pos()

	// The list's own position can be wrong because of the extend dance
	// used to detect list-item boundaries; recompute EndLine from the
	// last item.
	pos.EndLine = blocks[len(blocks)-1].Pos().EndLine

	// A list is loose if there is a blank line between any two of its
	// items, or within any item's own blocks.
Loose:
	for i, c := range blocks {
		c := c.(*Item)
		if i+1 < len(blocks) {
			if blocks[i+1].Pos().StartLine-c.EndLine > 1 {
				b.loose = true
				break Loose
			}
		}
		for j, d := range c.Blocks {
			endLine := d.Pos().EndLine
			if j+1 < len(c.Blocks) {
				if c.Blocks[j+1].Pos().StartLine-endLine > 1 {
					b.loose = true
					break Loose
				}
			}
		}
	}

	// A tight list renders each item's lone paragraph as bare text,
	// not wrapped in <p>.
	if !b.loose {
		for _, c := range blocks {
			c := c.(*Item)
			for i, d := range c.Blocks {
				if para, ok := d.(*Paragraph); ok {
					c.Blocks[i] = para.Text
				}
			}
		}
	}

	return &List{
		pos,
		b.bullet,
		b.num,
		b.loose,
		blocks,
	}
}

func (b *itemBuilder) build(p *parser) Block {
	b.list.item = nil
	return &Item{p.pos(), p.blocks()}
}

func (c *listBuilder) extend(p *parser, s line) (line, bool) {
	d := c.item
	if d != nil && s.trimSpace(d.width, d.width, true) || d == nil && s.isBlank() {
		return s, true
	}
	return s, false
}

func (c *itemBuilder) extend(p *parser, s line) (line, bool) {
	if s.isBlank() && !c.haveContent {
		return s, false
	}
	if s.isBlank() {
		// Once an item has content it absorbs any number of blank lines
		// and keeps going; the next non-blank line decides whether the
		// item continues.
		return line{}, true
	}
	c.haveContent = true
	return s, true
}

// newListItem is a [starter] that opens a new [Item], either continuing
// the list on top of the stack or starting a new [List].
func newListItem(p *parser, s line) (line, bool) {
	if list, ok := p.curB().(*listBuilder); ok && list.todo != nil {
		s = list.todo()
		list.todo = nil
		return s, true
	}
	if p.startListItem(&s) {
		return s, true
	}
	return s, false
}

// startListItem recognizes a bullet or ordinal list marker at the start
// of s and, if found, arranges for the corresponding [List] and [Item]
// to be opened on the next call through [newListItem].
//
// See https://spec.commonmark.org/0.31.2/#list-items.
func (p *parser) startListItem(s *line) bool {
	t := *s
	n := 0
	for i := 0; i < 3; i++ {
		if !t.trimSpace(1, 1, false) {
			break
		}
		n++
	}
	bullet := t.peek()
	var num int
Switch:
	switch bullet {
	default:
		return false
	case '-', '*', '+':
		t.trim(bullet)
		n++
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		for j := t.i; ; j++ {
			if j >= len(t.text) {
				return false
			}
			c := t.text[j]
			if c == '.' || c == ')' {
				// success
				bullet = c
				j++
				n += j - t.i
				t.i = j
				break Switch
			}
			if c < '0' || '9' < c {
				return false
			}
			if j-t.i >= 9 {
				return false
			}
			num = num*10 + int(c) - '0'
		}
	}
	if !t.trimSpace(1, 1, true) {
		return false
	}
	n++
	tt := t
	m := 0
	for i := 0; i < 3 && tt.trimSpace(1, 1, false); i++ {
		m++
	}
	if !tt.trimSpace(1, 1, true) {
		n += m
		t = tt
	}

	// point of no return

	var list *listBuilder
	if c, ok := p.nextB().(*listBuilder); ok {
		list = c
	}
	if list == nil || list.bullet != rune(bullet) {
		// “When the first list item in a list interrupts a paragraph—that is,
		// when it starts on a line that would otherwise count as
		// paragraph continuation text—then (a) the lines Ls must
		// not begin with a blank line,
		// and (b) if the list item is ordered, the start number must be 1.”
		if list == nil && p.para() != nil && (t.isBlank() || (bullet == '.' || bullet == ')') && num != 1) {
			return false
		}
		list = &listBuilder{bullet: rune(bullet), num: num}
		p.addBlock(list)
	} else {
		// The line continues the open list with a new item:
		// the list stays open, and the previous item closes.
		p.lineDepth++
		p.closeUnmatched()
	}
	b := &itemBuilder{list: list, width: n, haveContent: !t.isBlank()}
	list.todo = func() line {
		p.addBlock(b)
		list.item = b
		return t
	}
	return true
}
