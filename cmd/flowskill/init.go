package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/flowgraph-tools/flowskill/internal/skilldata"
	"github.com/flowgraph-tools/flowskill/internal/status"
)

// mcpConfig represents the structure of a .mcp.json file.
type mcpConfig struct {
	MCPServers map[string]json.RawMessage `json:"mcpServers"`
}

// flowskillMCPEntry is the MCP server configuration for the flowskill binary.
var flowskillMCPEntry = json.RawMessage(`{
  "type": "stdio",
  "command": "flowskill",
  "args": ["--serve-mcp"]
}`)

// runInit installs the skill files and MCP configuration into the
// target project directory.
func runInit(projectRoot string, args []string) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	force := fs.Bool("force", false, "overwrite existing files")
	if err := fs.Parse(args); err != nil {
		return err
	}

	abs, err := filepath.Abs(projectRoot)
	if err != nil {
		return fmt.Errorf("resolving project root: %w", err)
	}

	skillDir := status.SkillDir(abs)
	if err := copyBundle(abs, skillDir, *force); err != nil {
		return fmt.Errorf("copying skill files: %w", err)
	}

	if err := mergeMCPConfig(status.MCPConfigPath(abs), *force); err != nil {
		return err
	}

	fmt.Println("\nSetup complete. The reactflow skill and MCP server are ready.")
	return nil
}

func copyBundle(projectRoot, skillDir string, force bool) error {
	bundle, err := skilldata.Bundle()
	if err != nil {
		return err
	}

	return fs.WalkDir(bundle, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		dest := filepath.Join(skillDir, filepath.FromSlash(path))

		if d.IsDir() {
			return os.MkdirAll(dest, 0o755)
		}

		// Check if file already exists.
		if !force {
			if _, err := os.Stat(dest); err == nil {
				fmt.Printf("  skipped %s (exists, use --force to overwrite)\n", dotRelative(projectRoot, dest))
				return nil
			}
		}

		data, err := fs.ReadFile(bundle, path)
		if err != nil {
			return fmt.Errorf("reading embedded %s: %w", path, err)
		}

		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(dest, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", dest, err)
		}

		fmt.Printf("  created %s\n", dotRelative(projectRoot, dest))
		return nil
	})
}

// mergeMCPConfig creates or merges the flowskill entry into .mcp.json.
func mergeMCPConfig(mcpPath string, force bool) error {
	var cfg mcpConfig

	data, err := os.ReadFile(mcpPath)
	if err == nil {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return fmt.Errorf("parsing %s: %w", mcpPath, err)
		}
	}

	if cfg.MCPServers == nil {
		cfg.MCPServers = make(map[string]json.RawMessage)
	}

	if _, exists := cfg.MCPServers[status.MCPServerName]; exists && !force {
		fmt.Printf("  skipped .mcp.json %s entry (exists, use --force to overwrite)\n", status.MCPServerName)
		return nil
	}

	cfg.MCPServers[status.MCPServerName] = flowskillMCPEntry

	out, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling .mcp.json: %w", err)
	}

	if err := os.WriteFile(mcpPath, append(out, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", mcpPath, err)
	}

	action := "created"
	if data != nil {
		action = "updated"
	}
	fmt.Printf("  %s .mcp.json with %s MCP server\n", action, status.MCPServerName)
	return nil
}

// dotRelative returns a display path relative to the project root,
// prefixed with "./".
func dotRelative(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return path
	}
	return "./" + rel
}
