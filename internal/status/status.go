// Package status compares an installed skill bundle against the
// embedded one. Installed docs are plain files a user can edit or
// delete, so drift detection is the closest thing the bundle has to a
// health check.
package status

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/flowgraph-tools/flowskill/internal/skilldata"
)

// FileState classifies one installed file relative to the embedded
// bundle.
type FileState string

const (
	StateOK       FileState = "ok"
	StateMissing  FileState = "missing"  // shipped but not installed
	StateModified FileState = "modified" // installed with different content
	StateExtra    FileState = "extra"    // installed but not shipped
)

// FileStatus is the state of a single bundle file.
type FileStatus struct {
	Path  string // bundle-relative, e.g. "references/layout.md"
	State FileState
}

// InstallStatus describes one project's installation.
type InstallStatus struct {
	Installed     bool // the skill directory exists
	SkillDir      string
	Files         []FileStatus
	MCPConfigured bool // .mcp.json has a flowskill entry
}

// Clean reports whether the installation matches the embedded bundle
// exactly.
func (s InstallStatus) Clean() bool {
	if !s.Installed {
		return false
	}
	for _, f := range s.Files {
		if f.State != StateOK {
			return false
		}
	}
	return true
}

// SkillDir returns the install location of the bundle inside a
// project.
func SkillDir(projectRoot string) string {
	return filepath.Join(projectRoot, ".claude", "skills", skilldata.SkillName)
}

// MCPConfigPath returns the project's MCP config file.
func MCPConfigPath(projectRoot string) string {
	return filepath.Join(projectRoot, ".mcp.json")
}

// MCPServerName is the key flowskill registers under in .mcp.json.
const MCPServerName = "flowskill"

// Check compares the embedded bundle with the copy installed under
// projectRoot.
func Check(projectRoot string) (InstallStatus, error) {
	bundle, err := skilldata.Bundle()
	if err != nil {
		return InstallStatus{}, fmt.Errorf("status: embedded bundle: %w", err)
	}

	skillDir := SkillDir(projectRoot)
	result := InstallStatus{SkillDir: skillDir}

	if info, err := os.Stat(skillDir); err == nil && info.IsDir() {
		result.Installed = true
	}

	shipped := make(map[string]bool)
	err = fs.WalkDir(bundle, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		shipped[path] = true

		if !result.Installed {
			result.Files = append(result.Files, FileStatus{Path: path, State: StateMissing})
			return nil
		}

		installed, readErr := os.ReadFile(filepath.Join(skillDir, filepath.FromSlash(path)))
		if readErr != nil {
			result.Files = append(result.Files, FileStatus{Path: path, State: StateMissing})
			return nil
		}

		embedded, readErr := fs.ReadFile(bundle, path)
		if readErr != nil {
			return readErr
		}

		state := StateOK
		if sha256.Sum256(installed) != sha256.Sum256(embedded) {
			state = StateModified
		}
		result.Files = append(result.Files, FileStatus{Path: path, State: state})
		return nil
	})
	if err != nil {
		return InstallStatus{}, fmt.Errorf("status: walk embedded bundle: %w", err)
	}

	if result.Installed {
		extra, err := extraFiles(skillDir, shipped)
		if err != nil {
			return InstallStatus{}, err
		}
		result.Files = append(result.Files, extra...)
	}

	sort.Slice(result.Files, func(i, j int) bool {
		return result.Files[i].Path < result.Files[j].Path
	})

	result.MCPConfigured = mcpConfigured(projectRoot)
	return result, nil
}

func extraFiles(skillDir string, shipped map[string]bool) ([]FileStatus, error) {
	var extra []FileStatus
	err := filepath.WalkDir(skillDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(skillDir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if !shipped[rel] && !strings.HasPrefix(filepath.Base(rel), ".") {
			extra = append(extra, FileStatus{Path: rel, State: StateExtra})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("status: walk %s: %w", skillDir, err)
	}
	return extra, nil
}

func mcpConfigured(projectRoot string) bool {
	data, err := os.ReadFile(MCPConfigPath(projectRoot))
	if err != nil {
		return false
	}
	var cfg struct {
		MCPServers map[string]json.RawMessage `json:"mcpServers"`
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return false
	}
	_, ok := cfg.MCPServers[MCPServerName]
	return ok
}
