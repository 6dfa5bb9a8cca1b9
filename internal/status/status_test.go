package status

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowgraph-tools/flowskill/internal/skilldata"
)

// installBundle copies the embedded bundle into projectRoot the way
// `flowskill init` does.
func installBundle(t *testing.T, projectRoot string) string {
	t.Helper()

	bundle, err := skilldata.Bundle()
	require.NoError(t, err)

	skillDir := SkillDir(projectRoot)
	err = fs.WalkDir(bundle, ".", func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		dest := filepath.Join(skillDir, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(dest, 0o755)
		}
		data, err := fs.ReadFile(bundle, path)
		if err != nil {
			return err
		}
		return os.WriteFile(dest, data, 0o644)
	})
	require.NoError(t, err)
	return skillDir
}

func TestCheck_NotInstalled(t *testing.T) {
	root := t.TempDir()

	st, err := Check(root)
	require.NoError(t, err)

	assert.False(t, st.Installed)
	assert.False(t, st.Clean())
	assert.False(t, st.MCPConfigured)

	require.NotEmpty(t, st.Files)
	for _, f := range st.Files {
		assert.Equal(t, StateMissing, f.State, "%s", f.Path)
	}
}

func TestCheck_CleanInstall(t *testing.T) {
	root := t.TempDir()
	installBundle(t, root)

	st, err := Check(root)
	require.NoError(t, err)

	assert.True(t, st.Installed)
	assert.True(t, st.Clean())

	states := make(map[string]FileState, len(st.Files))
	for _, f := range st.Files {
		states[f.Path] = f.State
	}
	assert.Equal(t, StateOK, states["SKILL.md"])
	assert.Equal(t, StateOK, states["references/getting-started.md"])
}

func TestCheck_ModifiedFile(t *testing.T) {
	root := t.TempDir()
	skillDir := installBundle(t, root)

	target := filepath.Join(skillDir, "references", "layout.md")
	require.NoError(t, os.WriteFile(target, []byte("# Edited locally\n"), 0o644))

	st, err := Check(root)
	require.NoError(t, err)
	assert.False(t, st.Clean())

	var found bool
	for _, f := range st.Files {
		if f.Path == "references/layout.md" {
			found = true
			assert.Equal(t, StateModified, f.State)
		}
	}
	assert.True(t, found)
}

func TestCheck_MissingFile(t *testing.T) {
	root := t.TempDir()
	skillDir := installBundle(t, root)

	require.NoError(t, os.Remove(filepath.Join(skillDir, "references", "testing.md")))

	st, err := Check(root)
	require.NoError(t, err)
	assert.False(t, st.Clean())

	for _, f := range st.Files {
		if f.Path == "references/testing.md" {
			assert.Equal(t, StateMissing, f.State)
		}
	}
}

func TestCheck_ExtraFile(t *testing.T) {
	root := t.TempDir()
	skillDir := installBundle(t, root)

	extra := filepath.Join(skillDir, "references", "notes.md")
	require.NoError(t, os.WriteFile(extra, []byte("# Local notes\n"), 0o644))

	st, err := Check(root)
	require.NoError(t, err)
	assert.False(t, st.Clean())

	var found bool
	for _, f := range st.Files {
		if f.Path == "references/notes.md" {
			found = true
			assert.Equal(t, StateExtra, f.State)
		}
	}
	assert.True(t, found)
}

func TestCheck_DotfilesIgnored(t *testing.T) {
	root := t.TempDir()
	skillDir := installBundle(t, root)

	require.NoError(t, os.WriteFile(filepath.Join(skillDir, ".DS_Store"), []byte("junk"), 0o644))

	st, err := Check(root)
	require.NoError(t, err)
	assert.True(t, st.Clean())
}

func TestCheck_MCPConfigured(t *testing.T) {
	root := t.TempDir()
	installBundle(t, root)

	config := `{"mcpServers": {"flowskill": {"command": "flowskill", "args": ["--serve-mcp"]}}}`
	require.NoError(t, os.WriteFile(MCPConfigPath(root), []byte(config), 0o644))

	st, err := Check(root)
	require.NoError(t, err)
	assert.True(t, st.MCPConfigured)
}

func TestCheck_MCPConfigOtherServersOnly(t *testing.T) {
	root := t.TempDir()

	config := `{"mcpServers": {"other": {"command": "other"}}}`
	require.NoError(t, os.WriteFile(MCPConfigPath(root), []byte(config), 0o644))

	st, err := Check(root)
	require.NoError(t, err)
	assert.False(t, st.MCPConfigured)
}

func TestSkillDir(t *testing.T) {
	assert.Equal(t,
		filepath.Join("proj", ".claude", "skills", "reactflow"),
		SkillDir("proj"))
}
