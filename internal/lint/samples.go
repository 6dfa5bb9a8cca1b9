package lint

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/flowgraph-tools/flowskill/internal/corpus"
)

// SampleParser extracts module import statements from a fenced code
// sample.
type SampleParser interface {
	// Imports returns the import sources found in code, with 1-based
	// line numbers relative to the sample.
	Imports(code []byte) ([]Import, error)
}

// Import is one import statement in a code sample.
type Import struct {
	Source string
	Line   int
}

// sampleLanguages are the fence languages the import check applies to.
var sampleLanguages = map[string]bool{
	"ts":         true,
	"tsx":        true,
	"js":         true,
	"jsx":        true,
	"typescript": true,
	"javascript": true,
}

const (
	legacyPackage  = "reactflow"
	currentPackage = "@xyflow/react"
)

// checkSampleImports verifies that each code sample sticks to a single
// import path for the graph library, and that no sample uses the
// legacy package when the bundle targets v12+.
func checkSampleImports(parser SampleParser, bundle *corpus.Bundle, doc *corpus.Document) ([]Finding, error) {
	legacyOK, err := bundle.Skill.Manifest.TargetsVersion("11.0.0")
	if err != nil {
		legacyOK = false
	}

	var findings []Finding
	for _, sample := range doc.Samples {
		if !sampleLanguages[sample.Language] {
			continue
		}

		imports, err := parser.Imports(sample.Code)
		if err != nil {
			return nil, fmt.Errorf("lint: parse sample at %s:%d: %w", doc.ID, sample.Line, err)
		}

		var legacy, current []Import
		for _, imp := range imports {
			switch {
			case isPackage(imp.Source, legacyPackage):
				legacy = append(legacy, imp)
			case isPackage(imp.Source, currentPackage):
				current = append(current, imp)
			}
		}

		if len(legacy) > 0 && len(current) > 0 {
			findings = append(findings, Finding{
				Check:    CheckSampleImports,
				Severity: SeverityError,
				Document: doc.ID,
				Line:     sampleLine(sample, legacy[0]),
				Message:  fmt.Sprintf("sample mixes %q and %q imports", legacyPackage, currentPackage),
			})
			continue
		}

		if len(legacy) > 0 && !legacyOK {
			findings = append(findings, Finding{
				Check:    CheckSampleImports,
				Severity: SeverityError,
				Document: doc.ID,
				Line:     sampleLine(sample, legacy[0]),
				Message: fmt.Sprintf("sample imports legacy %q but the bundle targets %s %s",
					legacy[0].Source, currentPackage, bundle.Skill.Manifest.Compatibility),
			})
		}
	}
	return findings, nil
}

// isPackage reports whether source is pkg or a subpath of it
// (e.g. "@xyflow/react/dist/style.css").
func isPackage(source, pkg string) bool {
	return source == pkg || strings.HasPrefix(source, pkg+"/")
}

func sampleLine(sample corpus.Sample, imp Import) int {
	if sample.Line == 0 {
		return 0
	}
	return sample.Line + imp.Line - 1
}

// RegexSampleParser extracts imports with line scanning. It is the
// fallback for builds without cgo; the tree-sitter parser is more
// precise (it ignores imports inside comments and strings).
type RegexSampleParser struct{}

// NewRegexSampleParser creates a RegexSampleParser.
func NewRegexSampleParser() *RegexSampleParser {
	return &RegexSampleParser{}
}

var (
	importFrom = regexp.MustCompile(`^\s*(?:import|export)\b[^'"]*\bfrom\s+['"]([^'"]+)['"]`)
	importBare = regexp.MustCompile(`^\s*import\s+['"]([^'"]+)['"]`)
)

// Imports implements SampleParser.
func (p *RegexSampleParser) Imports(code []byte) ([]Import, error) {
	var imports []Import
	for i, line := range strings.Split(string(code), "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "//") {
			continue
		}
		m := importFrom.FindStringSubmatch(line)
		if m == nil {
			m = importBare.FindStringSubmatch(line)
		}
		if m != nil {
			imports = append(imports, Import{Source: m[1], Line: i + 1})
		}
	}
	return imports, nil
}
