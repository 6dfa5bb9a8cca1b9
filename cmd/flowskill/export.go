package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/flowgraph-tools/flowskill/internal/export"
)

func runExport(args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	format := fs.String("format", "json", "output format: json or mermaid")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch *format {
	case "mermaid":
		fmt.Print(export.GenerateMermaid())
		return nil
	case "json":
		bundle, err := loadEmbeddedBundle()
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(export.ExportBundle(bundle), "", "  ")
		if err != nil {
			return fmt.Errorf("marshal JSON: %w", err)
		}
		_, err = os.Stdout.Write(append(out, '\n'))
		return err
	default:
		return fmt.Errorf("unknown format %q (want json or mermaid)", *format)
	}
}
