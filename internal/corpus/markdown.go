package corpus

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Document is one markdown file in a bundle, with its structure
// extracted.
type Document struct {
	ID       string // bundle-relative path, e.g. "references/layout.md"
	Title    string // text of the first level-1 heading
	Headings []Heading
	Links    []Link
	Samples  []Sample
	Raw      []byte
}

// Heading is a markdown heading.
type Heading struct {
	Level int
	Text  string
}

// Link is an inline markdown link together with the section (nearest
// preceding heading) it appears under.
type Link struct {
	Text        string
	Destination string
	Section     string
}

// Sample is a fenced code block.
type Sample struct {
	Language string
	Code     []byte
	Line     int // 1-based line of the first code line
}

var markdown = goldmark.New()

// ParseDocument parses markdown into a Document. Frontmatter must be
// stripped by the caller (see skill.Parse).
func ParseDocument(id string, raw []byte) (*Document, error) {
	doc := &Document{ID: id, Raw: raw}

	root := markdown.Parser().Parse(text.NewReader(raw))

	section := ""
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			heading := Heading{Level: node.Level, Text: nodeText(node, raw)}
			doc.Headings = append(doc.Headings, heading)
			section = heading.Text
			if doc.Title == "" && heading.Level == 1 {
				doc.Title = heading.Text
			}

		case *ast.Link:
			doc.Links = append(doc.Links, Link{
				Text:        nodeText(node, raw),
				Destination: string(node.Destination),
				Section:     section,
			})

		case *ast.FencedCodeBlock:
			doc.Samples = append(doc.Samples, parseSample(node, raw))
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}

	return doc, nil
}

func parseSample(node *ast.FencedCodeBlock, raw []byte) Sample {
	sample := Sample{Language: string(node.Language(raw))}

	lines := node.Lines()
	var buf bytes.Buffer
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(raw))
	}
	sample.Code = buf.Bytes()

	if lines.Len() > 0 {
		sample.Line = lineAt(raw, lines.At(0).Start)
	}
	return sample
}

// lineAt returns the 1-based line number of the byte offset.
func lineAt(raw []byte, offset int) int {
	if offset > len(raw) {
		offset = len(raw)
	}
	return bytes.Count(raw[:offset], []byte{'\n'}) + 1
}

// nodeText collects the plain text of a node's inline children.
func nodeText(n ast.Node, raw []byte) string {
	var buf bytes.Buffer
	collectText(n, raw, &buf)
	return buf.String()
}

func collectText(n ast.Node, raw []byte, buf *bytes.Buffer) {
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch node := child.(type) {
		case *ast.Text:
			buf.Write(node.Segment.Value(raw))
		case *ast.String:
			buf.Write(node.Value)
		default:
			collectText(child, raw, buf)
		}
	}
}
