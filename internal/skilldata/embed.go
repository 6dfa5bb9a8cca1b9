// Package skilldata embeds the reactflow skill bundle for distribution
// inside the flowskill binary. The embedded filesystem is rooted at
// "skill/reactflow/" and contains SKILL.md and references/.
package skilldata

import (
	"embed"
	"io/fs"
)

// SkillFS contains the embedded skill files. Walk from "skill/reactflow"
// to iterate over all files.
//
//go:embed all:skill
var SkillFS embed.FS

// Root is the path of the bundle inside SkillFS.
const Root = "skill/reactflow"

// SkillName is the directory name the bundle is installed under.
const SkillName = "reactflow"

// Bundle returns the embedded bundle as a filesystem rooted at the
// skill directory, so that "SKILL.md" and "references/..." resolve
// directly.
func Bundle() (fs.FS, error) {
	return fs.Sub(SkillFS, Root)
}
