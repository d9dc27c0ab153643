// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "testing"

func TestNormalizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Foo", "foo"},
		{"  foo  ", "foo"},
		{"foo   bar", "foo bar"},
		{"foo\nbar", "foo bar"},
		{"FOO", "foo"},
		{"a[b", ""}, // labels cannot contain [ or ]
		{"a]b", ""},
	}
	for _, tt := range tests {
		if got := normalizeLabel(tt.in); got != tt.want {
			t.Errorf("normalizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeLabelCollision(t *testing.T) {
	// Two labels differing only by Unicode case (ß folds to ss) must
	// normalize to the same key.
	a := normalizeLabel("Straße")
	b := normalizeLabel("STRASSE")
	if a == "" {
		t.Fatalf("normalizeLabel(%q) = %q, want non-empty", "Straße", a)
	}
	if a != b {
		t.Errorf("normalizeLabel(%q) = %q, normalizeLabel(%q) = %q, want equal", "Straße", a, "STRASSE", b)
	}
}

func TestParseLinkDest(t *testing.T) {
	tests := []struct {
		in       string
		wantDest string
		wantEnd  int
		wantOK   bool
	}{
		{"/url)", "/url", 4, true},
		{"</url>)", "/url", 6, true},
		{"<bad<url>)", "", 0, false},
		{"(nested) rest", "(nested)", 8, true},
	}
	for _, tt := range tests {
		dest, end, ok := parseLinkDest(tt.in, 0)
		if ok != tt.wantOK {
			t.Errorf("parseLinkDest(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			continue
		}
		if !ok {
			continue
		}
		if dest != tt.wantDest || end != tt.wantEnd {
			t.Errorf("parseLinkDest(%q) = %q, %d; want %q, %d", tt.in, dest, end, tt.wantDest, tt.wantEnd)
		}
	}
}

func TestParseLinkTitle(t *testing.T) {
	tests := []struct {
		in        string
		wantTitle string
		wantChar  byte
		wantFound bool
	}{
		{`"hello"`, "hello", '"', true},
		{`'hello'`, "hello", '\'', true},
		{`(hello)`, "hello", ')', true},
		{`no quotes`, "", 0, false},
	}
	for _, tt := range tests {
		title, char, _, found := parseLinkTitle(tt.in, 0)
		if found != tt.wantFound {
			t.Errorf("parseLinkTitle(%q) found = %v, want %v", tt.in, found, tt.wantFound)
			continue
		}
		if !found {
			continue
		}
		if title != tt.wantTitle || char != tt.wantChar {
			t.Errorf("parseLinkTitle(%q) = %q, %q; want %q, %q", tt.in, title, string(char), tt.wantTitle, string(tt.wantChar))
		}
	}
}
