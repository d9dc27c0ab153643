// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "strings"

// htmlEscaper escapes the characters that are significant inside HTML
// text content and attribute values delimited by double quotes.
var htmlEscaper = strings.NewReplacer(
	`&`, "&amp;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
)

// htmlLinkEscaper escapes a link destination for use inside an href or
// src attribute: it HTML-escapes & and ", and percent-encodes every other
// byte not in urlUnreserved (including < and >), matching the behavior of
// common CommonMark implementations. Since % is left alone, an
// already-percent-encoded URL passes through unchanged.
var htmlLinkEscaper = linkEscaper{}

type linkEscaper struct{}

// urlUnreserved lists the bytes common Markdown implementations leave
// unescaped in a link destination: RFC 3986 unreserved characters plus the
// handful of reserved/punctuation bytes that routinely appear in URLs
// (:/?#[]@!$&'()*+,;=~%) and that escaping would otherwise corrupt.
const urlUnreserved = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789" +
	"-_.~" +
	":/?#[]@!$&'()*+,;=%"

func isURLUnreserved(c byte) bool {
	return strings.IndexByte(urlUnreserved, c) >= 0
}

func (linkEscaper) Replace(s string) string {
	var buf strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '&':
			buf.WriteString("&amp;")
		case c == '"':
			buf.WriteString("&quot;")
		case isURLUnreserved(c):
			buf.WriteByte(c)
		default:
			buf.WriteByte('%')
			buf.WriteString(hexByte(c))
		}
	}
	return buf.String()
}

const hexDigits = "0123456789ABCDEF"

func hexByte(c byte) string {
	return string([]byte{hexDigits[c>>4], hexDigits[c&0xF]})
}
