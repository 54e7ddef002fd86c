package md2docx

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Heading is one entry of a document outline.
type Heading struct {
	Level int // 1-6
	Text  string
}

// Outline parses the Markdown source and returns its heading outline in
// document order. Used to report how many entries a TOC of a given depth
// will contain; the actual TOC rendering belongs to pandoc.
func Outline(source []byte) ([]Heading, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	root := md.Parser().Parse(text.NewReader(source))

	var headings []Heading
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		headings = append(headings, Heading{Level: h.Level, Text: headingText(h, source)})
		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning outline: %w", err)
	}

	return headings, nil
}

// CountTOCEntries returns how many outline entries fall within depth.
func CountTOCEntries(headings []Heading, depth int) int {
	count := 0
	for _, h := range headings {
		if h.Level <= depth {
			count++
		}
	}
	return count
}

// headingText collects the plain text of a heading's inline children.
func headingText(h *ast.Heading, source []byte) string {
	var sb strings.Builder
	for c := h.FirstChild(); c != nil; c = c.NextSibling() {
		collectText(c, source, &sb)
	}
	return strings.TrimSpace(sb.String())
}

// collectText appends the text content of n and its children to sb.
func collectText(n ast.Node, source []byte, sb *strings.Builder) {
	if t, ok := n.(*ast.Text); ok {
		sb.Write(t.Segment.Value(source))
		return
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		collectText(c, source, sb)
	}
}
