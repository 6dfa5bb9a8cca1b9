package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectConfig holds project-level settings loaded from flowskill.yml.
type ProjectConfig struct {
	SkillDir      string   `yaml:"skillDir,omitempty"`      // override for .claude/skills/reactflow
	Strict        bool     `yaml:"strict,omitempty"`        // treat lint warnings as errors
	ExcludeChecks []string `yaml:"excludeChecks,omitempty"` // lint checks to skip
}

// Load attempts to read flowskill.yml or flowskill.yaml from the given
// directory. Returns a zero-value config (not an error) if no config
// file exists.
func Load(dir string) (*ProjectConfig, error) {
	for _, name := range []string{"flowskill.yml", "flowskill.yaml"} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var cfg ProjectConfig
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}
	return &ProjectConfig{}, nil
}
