// Package snapfile reads snapshot files back: it parses the fenced
// block format into (path, content) entries and supports verifying a
// snapshot's structure and restoring its files to disk.
package snapfile

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Entry is one file recovered from a snapshot: its relative path header
// and the fenced content that followed it.
type Entry struct {
	Path    string
	Content string
}

// Parse reads a snapshot body and returns its entries in order. Each
// entry is a fenced code block preceded by a single-line path header.
// Fenced blocks without a recognizable header are skipped; Verify
// reports them.
func Parse(source []byte) ([]Entry, error) {
	entries, _, err := parse(source)
	return entries, err
}

// parse returns the entries plus the count of fenced blocks that lacked
// a usable path header.
func parse(source []byte) ([]Entry, int, error) {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(source))

	var entries []Entry
	orphans := 0

	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		fenced, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		path := headerFor(fenced, source)
		if path == "" {
			orphans++
			return ast.WalkSkipChildren, nil
		}

		entries = append(entries, Entry{
			Path:    path,
			Content: blockText(fenced, source),
		})
		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to walk snapshot document: %w", err)
	}

	return entries, orphans, nil
}

// headerFor returns the path header for a fenced block: the text of the
// immediately preceding single-line paragraph. Multi-line paragraphs
// and missing siblings yield "".
func headerFor(fenced *ast.FencedCodeBlock, source []byte) string {
	prev, ok := fenced.PreviousSibling().(*ast.Paragraph)
	if !ok {
		return ""
	}

	lines := prev.Lines()
	if lines.Len() != 1 {
		return ""
	}

	seg := lines.At(0)
	return string(bytes.TrimSpace(seg.Value(source)))
}

// blockText reassembles a fenced block's raw lines. The writer appends
// one newline after the original content, so that newline is stripped
// to recover the content verbatim.
func blockText(fenced *ast.FencedCodeBlock, source []byte) string {
	var buf bytes.Buffer
	lines := fenced.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(source))
	}

	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
}
