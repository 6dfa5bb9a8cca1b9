//go:build cgo

package lint

import (
	"fmt"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// TreeSitterSampleParser extracts imports by parsing samples with the
// TSX grammar, which accepts plain TS/JS as well. A new tree-sitter
// parser is created per Imports call, so individual calls are safe to
// run concurrently.
type TreeSitterSampleParser struct {
	language *tree_sitter.Language
}

// NewTreeSitterSampleParser creates a TreeSitterSampleParser.
func NewTreeSitterSampleParser() *TreeSitterSampleParser {
	return &TreeSitterSampleParser{
		language: tree_sitter.NewLanguage(tree_sitter_typescript.LanguageTSX()),
	}
}

// Imports implements SampleParser.
func (p *TreeSitterSampleParser) Imports(code []byte) ([]Import, error) {
	parser := tree_sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(p.language); err != nil {
		return nil, fmt.Errorf("set language: %w", err)
	}

	tree := parser.Parse(code, nil)
	if tree == nil {
		return nil, fmt.Errorf("tree-sitter returned nil tree")
	}
	defer tree.Close()

	var imports []Import

	cursor := tree.RootNode().Walk()
	defer cursor.Close()

	walkImports(cursor, code, &imports)
	return imports, nil
}

func walkImports(cursor *tree_sitter.TreeCursor, source []byte, imports *[]Import) {
	node := cursor.Node()

	if node.Kind() == "import_statement" || node.Kind() == "export_statement" {
		if imp := extractImportSource(node, source); imp != nil {
			*imports = append(*imports, *imp)
		}
	}

	if cursor.GotoFirstChild() {
		walkImports(cursor, source, imports)
		for cursor.GotoNextSibling() {
			walkImports(cursor, source, imports)
		}
		cursor.GotoParent()
	}
}

// extractImportSource pulls the module string out of an import or
// re-export statement. Statements without a source (local exports)
// return nil.
func extractImportSource(node *tree_sitter.Node, source []byte) *Import {
	srcNode := node.ChildByFieldName("source")
	if srcNode == nil {
		return nil
	}

	text := srcNode.Utf8Text(source)
	if len(text) >= 2 {
		text = text[1 : len(text)-1] // strip quotes
	}
	if text == "" {
		return nil
	}

	return &Import{
		Source: text,
		Line:   int(node.StartPosition().Row) + 1,
	}
}
