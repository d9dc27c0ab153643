// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "testing"

// The sample list a complete named-entity table must recognise at minimum;
// see SPEC_FULL.md §4.4.
var requiredEntityNames = []string{
	"nbsp", "amp", "auml", "ouml", "copy", "AElig",
	"Dcaron", "frac34", "HilbertSpace", "DifferentialD",
	"ClockwiseContourIntegral", "ngE",
}

func TestHTMLEntityTableHasRequiredNames(t *testing.T) {
	for _, name := range requiredEntityNames {
		key := "&" + name + ";"
		if _, ok := htmlEntity[key]; !ok {
			t.Errorf("htmlEntity missing required name %q", key)
		}
	}
}

func TestParseHTMLEntityNamed(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"&copy;", "©"},
		{"&Dcaron;", "Ď"},
		{"&ngE;", "≧̸"},
		{"&notareference;", ""}, // unknown name: no match
	}
	for _, tt := range tests {
		x, end, ok := parseHTMLEntity(nil, tt.in, 0)
		if tt.want == "" {
			if ok {
				t.Errorf("parseHTMLEntity(%q) = %v, %d, true; want ok=false", tt.in, x, end)
			}
			continue
		}
		if !ok {
			t.Errorf("parseHTMLEntity(%q) ok = false, want true", tt.in)
			continue
		}
		p, isPlain := x.(*Plain)
		if !isPlain || p.Text != tt.want {
			t.Errorf("parseHTMLEntity(%q) = %#v, want Plain(%q)", tt.in, x, tt.want)
		}
		if end != len(tt.in) {
			t.Errorf("parseHTMLEntity(%q) end = %d, want %d", tt.in, end, len(tt.in))
		}
	}
}

func TestParseHTMLEntityNumeric(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"&#65;", "A"},
		{"&#x41;", "A"},
		{"&#X41;", "A"},
		{"&#0;", "�"}, // U+0000 is replaced
	}
	for _, tt := range tests {
		x, end, ok := parseHTMLEntity(nil, tt.in, 0)
		if !ok {
			t.Errorf("parseHTMLEntity(%q) ok = false, want true", tt.in)
			continue
		}
		p, isPlain := x.(*Plain)
		if !isPlain || p.Text != tt.want {
			t.Errorf("parseHTMLEntity(%q) = %#v, want Plain(%q)", tt.in, x, tt.want)
		}
		if end != len(tt.in) {
			t.Errorf("parseHTMLEntity(%q) end = %d, want %d", tt.in, end, len(tt.in))
		}
	}
}
