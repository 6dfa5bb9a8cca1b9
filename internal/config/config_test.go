package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_NoConfigFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, &ProjectConfig{}, cfg)
}

func TestLoad_YML(t *testing.T) {
	dir := t.TempDir()
	content := "strict: true\nexcludeChecks:\n  - topic-overlap\n  - sample-imports\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "flowskill.yml"), []byte(content), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.True(t, cfg.Strict)
	assert.Equal(t, []string{"topic-overlap", "sample-imports"}, cfg.ExcludeChecks)
}

func TestLoad_YAMLExtension(t *testing.T) {
	dir := t.TempDir()
	content := "skillDir: custom/skills/reactflow\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "flowskill.yaml"), []byte(content), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "custom/skills/reactflow", cfg.SkillDir)
}

func TestLoad_YMLTakesPrecedence(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "flowskill.yml"), []byte("strict: true\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "flowskill.yaml"), []byte("strict: false\n"), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.True(t, cfg.Strict)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "flowskill.yml"), []byte("strict: [not a bool\n"), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
}
