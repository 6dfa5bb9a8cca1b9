package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/flowgraph-tools/flowskill/internal/corpus"
	"github.com/flowgraph-tools/flowskill/internal/skilldata"
)

// version is set via -ldflags at release build time and shared with
// the MCP server implementation info.
var version = "dev"

const usage = `usage: flowskill [flags] <command> [args]

Commands:
  init       install the reactflow skill into a project
  status     compare the installed skill against the embedded bundle
  validate   lint the bundle for documentation drift
  route      match a question against the topic routing table
  show       print one reference document
  topics     print the topic routing table
  rules      print the agent behavior contract
  export     export the bundle as JSON or a Mermaid diagram

Flags:
  -project-root dir   path to the target project (default ".")
  -serve-mcp          run as MCP server on stdio for Claude Code integration
  -serve-http addr    run the MCP server over HTTP on addr
  -version            print version and exit
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("flowskill", flag.ContinueOnError)
	projectRoot := fs.String("project-root", ".", "path to the target project")
	serveMCP := fs.Bool("serve-mcp", false, "run as MCP server for Claude Code integration")
	serveHTTP := fs.String("serve-http", "", "run the MCP server over HTTP on this address")
	showVersion := fs.Bool("version", false, "print version and exit")
	fs.Usage = func() { fmt.Fprint(os.Stderr, usage) }

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Println(version)
		return nil
	}

	ctx := context.Background()

	if *serveMCP {
		return runServeStdio(ctx)
	}
	if *serveHTTP != "" {
		return runServeHTTP(ctx, *serveHTTP)
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return nil
	}

	switch rest[0] {
	case "init":
		return runInit(*projectRoot, rest[1:])
	case "status":
		return runStatus(*projectRoot)
	case "validate":
		return runValidate(ctx, *projectRoot, rest[1:])
	case "route":
		return runRoute(strings.Join(rest[1:], " "))
	case "show":
		return runShow(rest[1:])
	case "topics":
		return runTopics()
	case "rules":
		return runRules()
	case "export":
		return runExport(rest[1:])
	default:
		return fmt.Errorf("unknown command %q", rest[0])
	}
}

// loadEmbeddedBundle loads the bundle compiled into the binary.
func loadEmbeddedBundle() (*corpus.Bundle, error) {
	fsys, err := skilldata.Bundle()
	if err != nil {
		return nil, err
	}
	return corpus.Load(fsys)
}
