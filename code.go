// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"strings"
)

// Indented and fenced code blocks share one rendered shape (<pre><code>…)
// but different recognition and continuation rules, so they share the
// CodeBlock leaf type and diverge only in their blockBuilder (indentBuilder
// vs fenceBuilder).

// A CodeBlock is a [Block] representing an [indented code block]
// or [fenced code block],
// usually displayed in <pre><code> tags.
//
// The Fence field records the opening fence text of a fenced code block;
// it is not used when rendering HTML.
//
// [indented code block]: https://spec.commonmark.org/0.31.2/#indented-code-blocks
// [fenced code block]: https://spec.commonmark.org/0.31.2/#fenced-code-blocks
type CodeBlock struct {
	Position
	Fence string   // fence to use
	Info  string   // info following open fence
	Text  []string // lines of code block
}

func (*CodeBlock) Block() {}

// firstWord returns the leading run of s up to (not including) the first
// Unicode space, or all of s if it contains none. CommonMark leaves "first
// word" undefined for an info string's language tag, so this splits on any
// Unicode space rather than only on ASCII ' '.
func firstWord(s string) string {
	for i, c := range s {
		if isUnicodeSpace(c) {
			return s[:i]
		}
	}
	return s
}

func (b *CodeBlock) printHTML(p *printer) {
	p.html("<pre><code")
	if b.Info != "" {
		p.html(` class="language-`)
		p.text(firstWord(b.Info))
		p.html(`"`)
	}
	p.WriteString(">")
	for _, s := range b.Text {
		p.text(s, "\n")
	}
	p.html("</code></pre>\n")
}

// startIndentedCodeBlock is a [starter] for an indented [CodeBlock].
// See https://spec.commonmark.org/0.31.2/#indented-code-blocks.
func startIndentedCodeBlock(p *parser, s line) (line, bool) {
	// Line must start with 4 spaces and then not be blank.
	peek := s
	if p.para() != nil || !peek.trimSpace(4, 4, false) || peek.isBlank() {
		return s, false
	}

	b := new(indentBuilder)
	p.addBlock(b)
	if peek.nl != '\n' {
		p.corner = true // goldmark does not normalize to \n
	}
	b.text = append(b.text, peek.string())
	return line{}, true
}

// startFencedCodeBlock is a [starter] for a fenced [CodeBlock].
// See https://spec.commonmark.org/0.31.2/#fenced-code-blocks.
func startFencedCodeBlock(p *parser, s line) (line, bool) {
	// Line must start with fence.
	indent, fence, info, ok := trimFence(&s)
	if !ok {
		return s, false
	}
	noteFenceOpenerCorners(p, fence, info)

	p.addBlock(&fenceBuilder{indent: indent, fence: fence, info: info})
	return line{}, true
}

// noteFenceOpenerCorners flags the corner cases goldmark disagrees with
// us about for an opening fence with the given fence text and info string,
// so the test harness can report them rather than treat them as failures.
func noteFenceOpenerCorners(p *parser, fence, info string) {
	switch {
	case fence[0] == '~' && info != "":
		// goldmark does not handle info after ~~~
		p.corner = true
	case info != "" && !isLetter(info[0]):
		// goldmark does not allow numbered info.
		// goldmark does not treat a tab as introducing a new word.
		p.corner = true
	}
	if i := strings.IndexFunc(info, isUnicodeSpace); i >= 0 && info[i] != ' ' {
		// goldmark only breaks on space
		p.corner = true
	}
}

// trimFence attempts to trim leading indentation (up to 3 spaces),
// a code fence (a run of 3+ backticks or tildes), and an info string from s.
// It is called both to recognize a fence opener and, by fenceBuilder.extend,
// to recognize a matching fence closer.
// If successful, it returns those values and ok=true, leaving s empty.
// If unsuccessful, it leaves s unmodified and returns ok=false.
func trimFence(s *line) (indent int, fence, info string, ok bool) {
	t := *s
	for indent < 3 && t.trimSpace(1, 1, false) {
		indent++
	}
	marker := t.peek()
	if marker != '`' && marker != '~' {
		return
	}

	fenceStart := t.string()
	n := 0
	for t.trim(marker) {
		n++
	}
	if n < 3 {
		return
	}

	rest := mdUnescaper.Replace(t.trimString())
	if marker == '`' && strings.Contains(rest, "`") {
		return
	}
	info = trimSpaceTab(rest)
	fence = fenceStart[:n]
	ok = true
	*s = line{}
	return
}

// An indentBuilder is a [blockBuilder] for an indented (unfenced) [CodeBlock].
type indentBuilder struct {
	text []string
}

func (b *indentBuilder) extend(p *parser, s line) (line, bool) {
	// Extension lines must start with 4 spaces or be blank.
	if !s.trimSpace(4, 4, true) {
		return s, false
	}
	b.text = append(b.text, s.string())
	if s.nl != '\n' {
		p.corner = true // goldmark does not normalize to \n
	}
	return line{}, true
}

func (b *indentBuilder) build(p *parser) Block {
	b.text = dropTrailingBlankLines(b.text)
	return &CodeBlock{p.pos(), "", "", b.text}
}

// dropTrailingBlankLines removes trailing blank entries, which are often
// used just to separate an indented code block from what follows.
func dropTrailingBlankLines(text []string) []string {
	for len(text) > 0 && text[len(text)-1] == "" {
		text = text[:len(text)-1]
	}
	return text
}

// A fenceBuilder is a [blockBuilder] for a fenced [CodeBlock].
type fenceBuilder struct {
	indent int
	fence  string
	info   string
	text   []string
}

func (b *fenceBuilder) extend(p *parser, s line) (line, bool) {
	// Check for closing fence, which must be at least as long as opening fence, with no info.
	// The closing fence can be indented less than the opening one.
	peek := s
	if _, fence, info, ok := trimFence(&peek); ok && info == "" && strings.HasPrefix(fence, b.fence) {
		return line{}, false
	}

	// Otherwise trim the indentation from the fence line, if present.
	if !s.trimSpace(b.indent, b.indent, false) {
		p.corner = true // goldmark mishandles fenced blank lines with not enough spaces
		s.trimSpace(0, b.indent, false)
	}

	b.text = append(b.text, s.string())
	p.corner = p.corner || s.nl != '\n' // goldmark does not normalize to \n
	return line{}, true
}

func (b *fenceBuilder) build(p *parser) Block {
	return &CodeBlock{p.pos(), b.fence, b.info, b.text}
}
