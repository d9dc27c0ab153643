// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Markdown converts CommonMark Markdown to HTML.
//
// Usage:
//
//	markdown [-h|--help] [--author] [-v|--version] [-s|--spec]
//	markdown -p|--parse <expr>...
//	markdown -l|--load <file>
//	markdown -t|--test
//
// With no arguments, markdown prints its help text. With one or more
// arguments that do not start with "-", each is treated as a literal
// Markdown expression (after replacing the two-character sequences \n
// and \t with an actual newline and tab) and converted to HTML on its
// own output line.
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/tools/txtar"

	markdown "github.com/kawatab/md-parser"
)

const (
	programName = "Markdown"
	version     = "0.1.0"
	cmVersion   = "0.31.2"
	author      = "kawatab"
)

const helpText = `usage: markdown [<option> ...]
 File and expression options:
  --author: show author
  -h, --help : show this information and exit, ignoring other options
  -l <file>, --load <file> : load and parse <file>, print result
  -p <exprs>, --parse <exprs> : parse <exprs>, print results
  -s, --spec : show specification info
  -t, --test : run the txtar test suite, ignoring other options
  -v, --version : show version
`

func main() {
	args := os.Args[1:]
	switch {
	case len(args) == 0:
		showHelp()
	case args[0] == "-h" || args[0] == "--help":
		showHelp()
	case args[0] == "--author":
		showAuthor()
	case args[0] == "-v" || args[0] == "--version":
		showVersion()
	case args[0] == "-s" || args[0] == "--spec":
		showSpec()
	case args[0] == "-p" || args[0] == "--parse":
		parseList(args[1:])
	case args[0] == "-l" || args[0] == "--load":
		if len(args) < 2 {
			log.Print("no file name")
			return
		}
		load(args[1])
	case args[0] == "-t" || args[0] == "--test":
		runTests()
	case strings.HasPrefix(args[0], "-"):
		log.Printf("bad switch: %s\nUse the --help or -h flag for help.", args[0])
	default:
		parseList(args)
	}
}

func showHelp() {
	showVersion()
	fmt.Printf("A markdown parser for CommonMark Spec v%s\n", cmVersion)
	fmt.Print(helpText)
}

func showAuthor() {
	fmt.Printf("%s was written by:\n  %s\n", programName, author)
}

func showVersion() {
	fmt.Printf("%s v%s\n", programName, version)
}

func showSpec() {
	fmt.Printf("CommonMark Spec Version %s\n", cmVersion)
	fmt.Println("see <https://spec.commonmark.org/>")
}

// parseList renders each expr in list as HTML, one per output line.
// A literal "\n" or "\t" in expr is replaced by an actual newline or tab,
// matching the behavior of the original command-line tool.
func parseList(list []string) {
	var p markdown.Parser
	for _, expr := range list {
		expr = strings.ReplaceAll(expr, `\n`, "\n")
		expr = strings.ReplaceAll(expr, `\t`, "\t")
		fmt.Println(p.HTMLOf(expr))
	}
}

// load reads filename and prints its rendered HTML. Open failures are
// reported on standard error; the process still exits 0.
func load(filename string) {
	data, err := os.ReadFile(filename)
	if err != nil {
		log.Printf("couldn't open %s: %v", filename, err)
		return
	}
	var p markdown.Parser
	fmt.Println(p.HTMLOf(string(replaceTabs(data))))
}

// runTests runs the txtar fixtures under testdata, the same ones
// exercised by the package's own go test suite, and prints a summary.
func runTests() {
	files, err := filepath.Glob("testdata/*.txt")
	if err != nil {
		log.Print(err)
		return
	}
	total, failed := 0, 0
	for _, file := range files {
		a, err := txtar.ParseFile(file)
		if err != nil {
			log.Printf("%s: %v", file, err)
			continue
		}
		byName := make(map[string][]byte)
		for _, f := range a.Files {
			byName[f.Name] = f.Data
		}
		for name, md := range byName {
			if !strings.HasSuffix(name, ".md") {
				continue
			}
			want, ok := byName[strings.TrimSuffix(name, ".md")+".html"]
			if !ok {
				continue
			}
			total++
			var p markdown.Parser
			got := p.HTMLOf(string(md))
			if strings.TrimSpace(got) != strings.TrimSpace(string(want)) {
				failed++
				fmt.Printf("FAIL %s/%s\n", file, name)
			}
		}
	}
	fmt.Printf("%d/%d passed\n", total-failed, total)
}

// replaceTabs replaces all tabs in text with spaces up to a 4-space tab
// stop.
//
// In Markdown, tabs used for indentation are required to be interpreted
// as 4-space tab stops. See https://spec.commonmark.org/0.31.2/#tabs.
// This function does not handle multi-codepoint Unicode sequences
// correctly.
func replaceTabs(text []byte) []byte {
	var buf bytes.Buffer
	col := 0
	for len(text) > 0 {
		r, size := utf8.DecodeRune(text)
		text = text[size:]

		switch r {
		case '\n':
			buf.WriteByte('\n')
			col = 0

		case '\t':
			buf.WriteByte(' ')
			col++
			for col%4 != 0 {
				buf.WriteByte(' ')
				col++
			}

		default:
			buf.WriteRune(r)
			col++
		}
	}
	return buf.Bytes()
}
