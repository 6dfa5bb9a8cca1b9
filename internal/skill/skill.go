// Package skill parses the SKILL.md entry document of a bundle: YAML
// frontmatter with skill metadata, and the markdown body the agent
// reads.
package skill

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// EntryFile is the name of the bundle's entry document.
const EntryFile = "SKILL.md"

// Manifest holds the parsed SKILL.md frontmatter.
type Manifest struct {
	Name          string `yaml:"name"`
	Description   string `yaml:"description"`
	Library       string `yaml:"library"`
	Compatibility string `yaml:"compatibility"`
}

// Skill is a parsed entry document: manifest plus the markdown body
// after the frontmatter.
type Skill struct {
	Manifest Manifest
	Body     string
}

// Parse splits SKILL.md content into YAML frontmatter and markdown body.
// Frontmatter is required: a bundle without a name and description is
// not installable.
func Parse(data []byte) (*Skill, error) {
	content := strings.TrimSpace(string(data))

	if !strings.HasPrefix(content, "---") {
		return nil, fmt.Errorf("skill: %s has no frontmatter", EntryFile)
	}

	rest := content[3:]
	if idx := strings.Index(rest, "\n"); idx >= 0 {
		rest = rest[idx+1:]
	} else {
		rest = ""
	}

	closeIdx := strings.Index(rest, "\n---")
	if closeIdx < 0 {
		return nil, fmt.Errorf("skill: %s frontmatter is not closed", EntryFile)
	}

	frontmatter := rest[:closeIdx]
	body := rest[closeIdx+len("\n---"):]
	if idx := strings.Index(body, "\n"); idx >= 0 {
		body = body[idx+1:]
	}

	var m Manifest
	if err := yaml.Unmarshal([]byte(frontmatter), &m); err != nil {
		return nil, fmt.Errorf("skill: parse frontmatter: %w", err)
	}

	if m.Name == "" {
		return nil, fmt.Errorf("skill: frontmatter has no name")
	}
	if m.Description == "" {
		return nil, fmt.Errorf("skill: frontmatter has no description")
	}

	return &Skill{
		Manifest: m,
		Body:     strings.TrimSpace(body),
	}, nil
}

// Load reads and parses SKILL.md from a bundle filesystem.
func Load(bundle fs.FS) (*Skill, error) {
	data, err := fs.ReadFile(bundle, EntryFile)
	if err != nil {
		return nil, fmt.Errorf("skill: read %s: %w", EntryFile, err)
	}
	return Parse(data)
}

// CompatibilityRange parses the manifest's semver constraint for the
// target library. Returns nil when no constraint is declared.
func (m Manifest) CompatibilityRange() (*semver.Constraints, error) {
	if m.Compatibility == "" {
		return nil, nil
	}
	c, err := semver.NewConstraint(m.Compatibility)
	if err != nil {
		return nil, fmt.Errorf("skill: compatibility %q: %w", m.Compatibility, err)
	}
	return c, nil
}

// TargetsVersion reports whether the given library version is inside
// the declared compatibility range. An empty range matches everything.
func (m Manifest) TargetsVersion(version string) (bool, error) {
	c, err := m.CompatibilityRange()
	if err != nil {
		return false, err
	}
	if c == nil {
		return true, nil
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return false, fmt.Errorf("skill: version %q: %w", version, err)
	}
	return c.Check(v), nil
}
