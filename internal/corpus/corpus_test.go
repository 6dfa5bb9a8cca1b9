package corpus

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowgraph-tools/flowskill/internal/skilldata"
)

const sampleDoc = `# Layout

Intro paragraph with a [link to migration](migration.md).

## Dagre

` + "```tsx" + `
import dagre from '@dagrejs/dagre';

const g = new dagre.graphlib.Graph();
` + "```" + `

## See also

- [viewport](viewport.md)
- [the docs](https://reactflow.dev)
`

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument("references/layout.md", []byte(sampleDoc))
	require.NoError(t, err)

	assert.Equal(t, "Layout", doc.Title)

	require.Len(t, doc.Headings, 3)
	assert.Equal(t, Heading{Level: 1, Text: "Layout"}, doc.Headings[0])
	assert.Equal(t, Heading{Level: 2, Text: "Dagre"}, doc.Headings[1])

	require.Len(t, doc.Links, 3)
	assert.Equal(t, "link to migration", doc.Links[0].Text)
	assert.Equal(t, "migration.md", doc.Links[0].Destination)
	assert.Equal(t, "Layout", doc.Links[0].Section)
	assert.Equal(t, "viewport.md", doc.Links[1].Destination)
	assert.Equal(t, "See also", doc.Links[1].Section)
	assert.Equal(t, "https://reactflow.dev", doc.Links[2].Destination)

	require.Len(t, doc.Samples, 1)
	assert.Equal(t, "tsx", doc.Samples[0].Language)
	assert.Contains(t, string(doc.Samples[0].Code), "import dagre from '@dagrejs/dagre';")
	assert.Equal(t, 8, doc.Samples[0].Line, "first code line of the fence")
}

func TestParseDocument_Empty(t *testing.T) {
	doc, err := ParseDocument("references/empty.md", nil)
	require.NoError(t, err)
	assert.Empty(t, doc.Title)
	assert.Empty(t, doc.Headings)
	assert.Empty(t, doc.Samples)
}

func testBundleFS(t *testing.T) fstest.MapFS {
	t.Helper()
	return fstest.MapFS{
		"SKILL.md": &fstest.MapFile{Data: []byte(
			"---\nname: demo\ndescription: a demo bundle\n---\n\n# Demo\n\n[a](references/a.md)\n")},
		"references/a.md": &fstest.MapFile{Data: []byte("# A\n\n[b](b.md)\n")},
		"references/b.md": &fstest.MapFile{Data: []byte("# B\n")},
		"references/skip.txt": &fstest.MapFile{Data: []byte("not markdown")},
	}
}

func TestLoad(t *testing.T) {
	bundle, err := Load(testBundleFS(t))
	require.NoError(t, err)

	assert.Equal(t, "demo", bundle.Skill.Manifest.Name)
	assert.Equal(t, "Demo", bundle.Entry.Title)

	require.Len(t, bundle.References, 2, "non-markdown files are skipped")
	assert.Equal(t, []string{"references/a.md", "references/b.md"}, bundle.ReferenceIDs())

	doc, ok := bundle.Document("references/a.md")
	require.True(t, ok)
	assert.Equal(t, "A", doc.Title)

	_, ok = bundle.Document("references/missing.md")
	assert.False(t, ok)
}

func TestLoad_MissingReferencesDir(t *testing.T) {
	fsys := fstest.MapFS{
		"SKILL.md": &fstest.MapFile{Data: []byte("---\nname: x\ndescription: y\n---\n\nbody\n")},
	}
	_, err := Load(fsys)
	require.Error(t, err)
}

func TestRaw_IncludesFrontmatter(t *testing.T) {
	bundle, err := Load(testBundleFS(t))
	require.NoError(t, err)

	raw, err := bundle.Raw("SKILL.md")
	require.NoError(t, err)
	assert.Contains(t, string(raw), "name: demo")
}

func TestResolveLink(t *testing.T) {
	tests := []struct {
		fromID string
		dest   string
		want   string
	}{
		{"SKILL.md", "references/layout.md", "references/layout.md"},
		{"references/layout.md", "migration.md", "references/migration.md"},
		{"references/layout.md", "migration.md#package-and-imports", "references/migration.md"},
		{"references/layout.md", "../SKILL.md", "SKILL.md"},
		{"SKILL.md", "#anchor", ""},
		{"SKILL.md", "https://reactflow.dev", ""},
		{"SKILL.md", "mailto:team@example.com", ""},
		{"SKILL.md", "", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ResolveLink(tt.fromID, tt.dest), "from %s dest %q", tt.fromID, tt.dest)
	}
}

// TestLoad_EmbeddedBundle loads the real shipped bundle.
func TestLoad_EmbeddedBundle(t *testing.T) {
	fsys, err := skilldata.Bundle()
	require.NoError(t, err)

	bundle, err := Load(fsys)
	require.NoError(t, err)

	assert.Equal(t, "reactflow", bundle.Skill.Manifest.Name)
	assert.Equal(t, "@xyflow/react", bundle.Skill.Manifest.Library)
	assert.Len(t, bundle.References, 15)

	for _, doc := range bundle.References {
		assert.NotEmpty(t, doc.Title, "%s has no level-1 heading", doc.ID)
	}
}
