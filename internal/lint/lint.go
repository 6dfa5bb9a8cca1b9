// Package lint checks a skill bundle for documentation drift: routing
// table entries pointing at missing documents, index/table mismatches,
// empty references, malformed contracts, and code samples with
// inconsistent import paths. There is no runtime to validate, so this
// is the bundle's entire error surface.
package lint

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/flowgraph-tools/flowskill/internal/corpus"
)

// Severity classifies a finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Check names, used for reporting and for Options.ExcludeChecks.
const (
	CheckRouterTargets = "router-targets"
	CheckTableSync     = "table-sync"
	CheckRoundTrip     = "round-trip"
	CheckIndex         = "index-integrity"
	CheckDeadLinks     = "dead-links"
	CheckNonEmpty      = "non-empty"
	CheckContract      = "contract"
	CheckTopicOverlap  = "topic-overlap"
	CheckSampleImports = "sample-imports"
)

// Finding is one lint result.
type Finding struct {
	Check    string   `json:"check"`
	Severity Severity `json:"severity"`
	Document string   `json:"document,omitempty"`
	Line     int      `json:"line,omitempty"`
	Message  string   `json:"message"`
}

func (f Finding) String() string {
	loc := f.Document
	if f.Line > 0 {
		loc = fmt.Sprintf("%s:%d", f.Document, f.Line)
	}
	if loc == "" {
		return fmt.Sprintf("%s [%s] %s", f.Severity, f.Check, f.Message)
	}
	return fmt.Sprintf("%s [%s] %s: %s", f.Severity, f.Check, loc, f.Message)
}

// Options configures a Linter.
type Options struct {
	// SampleParser extracts import statements from fenced code
	// samples. Defaults to the tree-sitter parser when built with
	// cgo, and a line-based fallback otherwise.
	SampleParser SampleParser

	// ExcludeChecks disables checks by name.
	ExcludeChecks []string
}

// Linter runs all checks over a loaded bundle.
type Linter struct {
	parser   SampleParser
	excluded map[string]bool
}

// New creates a Linter.
func New(opts Options) *Linter {
	parser := opts.SampleParser
	if parser == nil {
		parser = newDefaultSampleParser()
	}
	excluded := make(map[string]bool, len(opts.ExcludeChecks))
	for _, name := range opts.ExcludeChecks {
		excluded[name] = true
	}
	return &Linter{parser: parser, excluded: excluded}
}

// Run executes every enabled check and returns the findings, errors
// first, then warnings, each group ordered by document and line.
// Per-document checks run concurrently; the first hard failure (an
// unreadable bundle, not a finding) cancels the rest.
func (l *Linter) Run(ctx context.Context, bundle *corpus.Bundle) ([]Finding, error) {
	var findings []Finding

	// Bundle-level checks are cheap and sequential.
	findings = append(findings, l.run(CheckRouterTargets, func() []Finding { return checkRouterTargets(bundle) })...)
	findings = append(findings, l.run(CheckTableSync, func() []Finding { return checkTableSync(bundle) })...)
	findings = append(findings, l.run(CheckRoundTrip, func() []Finding { return checkRoundTrip(bundle) })...)
	findings = append(findings, l.run(CheckIndex, func() []Finding { return checkIndex(bundle) })...)
	findings = append(findings, l.run(CheckContract, func() []Finding { return checkContract(bundle) })...)
	findings = append(findings, l.run(CheckTopicOverlap, func() []Finding { return checkTopicOverlap() })...)

	// Per-document checks fan out.
	docs := append([]*corpus.Document{bundle.Entry}, bundle.References...)
	perDoc := make([][]Finding, len(docs))

	g, _ := errgroup.WithContext(ctx)
	for i, doc := range docs {
		g.Go(func() error {
			var fs []Finding
			if !l.excluded[CheckNonEmpty] {
				fs = append(fs, checkNonEmpty(doc)...)
			}
			if !l.excluded[CheckDeadLinks] {
				fs = append(fs, checkDeadLinks(bundle, doc)...)
			}
			if !l.excluded[CheckSampleImports] {
				sampleFindings, err := checkSampleImports(l.parser, bundle, doc)
				if err != nil {
					return err
				}
				fs = append(fs, sampleFindings...)
			}
			perDoc[i] = fs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for _, fs := range perDoc {
		findings = append(findings, fs...)
	}

	sortFindings(findings)
	return findings, nil
}

func (l *Linter) run(name string, check func() []Finding) []Finding {
	if l.excluded[name] {
		return nil
	}
	return check()
}

// HasErrors reports whether any finding is an error.
func HasErrors(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

func sortFindings(findings []Finding) {
	rank := func(s Severity) int {
		if s == SeverityError {
			return 0
		}
		return 1
	}
	sort.SliceStable(findings, func(i, j int) bool {
		if rank(findings[i].Severity) != rank(findings[j].Severity) {
			return rank(findings[i].Severity) < rank(findings[j].Severity)
		}
		if findings[i].Document != findings[j].Document {
			return findings[i].Document < findings[j].Document
		}
		return findings[i].Line < findings[j].Line
	})
}
