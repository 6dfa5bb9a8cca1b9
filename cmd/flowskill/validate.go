package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/flowgraph-tools/flowskill/internal/config"
	"github.com/flowgraph-tools/flowskill/internal/corpus"
	"github.com/flowgraph-tools/flowskill/internal/lint"
	"github.com/flowgraph-tools/flowskill/internal/status"
)

// runValidate lints the embedded bundle, or the installed copy with
// --installed. Exits non-zero when errors (or, in strict mode,
// warnings) are found.
func runValidate(ctx context.Context, projectRoot string, args []string) error {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	installed := fs.Bool("installed", false, "lint the installed bundle instead of the embedded one")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(projectRoot)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var bundle *corpus.Bundle
	if *installed {
		skillDir := status.SkillDir(projectRoot)
		if _, err := os.Stat(skillDir); err != nil {
			return fmt.Errorf("no installed bundle at %s (run 'flowskill init')", skillDir)
		}
		bundle, err = corpus.Load(os.DirFS(skillDir))
	} else {
		bundle, err = loadEmbeddedBundle()
	}
	if err != nil {
		return err
	}

	linter := lint.New(lint.Options{ExcludeChecks: cfg.ExcludeChecks})
	findings, err := linter.Run(ctx, bundle)
	if err != nil {
		return err
	}

	errors, warnings := 0, 0
	for _, f := range findings {
		fmt.Println(f)
		if f.Severity == lint.SeverityError {
			errors++
		} else {
			warnings++
		}
	}

	if len(findings) == 0 {
		fmt.Println("Bundle is clean.")
		return nil
	}

	fmt.Printf("\n%d errors, %d warnings\n", errors, warnings)
	if errors > 0 || (cfg.Strict && warnings > 0) {
		return fmt.Errorf("validation failed")
	}
	return nil
}
