// Package corpus loads a skill bundle from a filesystem and models its
// documents: the SKILL.md entry plus the reference files it links to.
// Markdown structure (headings, links, fenced code samples) is
// extracted once at load time so that the router, linter, and MCP
// handlers work on parsed data instead of re-scanning text.
package corpus

import (
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/flowgraph-tools/flowskill/internal/skill"
)

// ReferenceDir is the bundle subdirectory holding reference documents.
const ReferenceDir = "references"

// Bundle is a loaded skill bundle.
type Bundle struct {
	Skill      *skill.Skill
	Entry      *Document   // parsed SKILL.md body (frontmatter stripped)
	References []*Document // sorted by ID

	fsys fs.FS
	byID map[string]*Document
}

// Load reads a bundle from fsys, which must be rooted at the skill
// directory (SKILL.md at the top level).
func Load(fsys fs.FS) (*Bundle, error) {
	sk, err := skill.Load(fsys)
	if err != nil {
		return nil, err
	}

	entry, err := ParseDocument(skill.EntryFile, []byte(sk.Body))
	if err != nil {
		return nil, err
	}

	refs, err := loadReferences(fsys)
	if err != nil {
		return nil, err
	}

	b := &Bundle{
		Skill:      sk,
		Entry:      entry,
		References: refs,
		fsys:       fsys,
		byID:       make(map[string]*Document, len(refs)+1),
	}
	b.byID[entry.ID] = entry
	for _, doc := range refs {
		b.byID[doc.ID] = doc
	}
	return b, nil
}

func loadReferences(fsys fs.FS) ([]*Document, error) {
	entries, err := fs.ReadDir(fsys, ReferenceDir)
	if err != nil {
		return nil, fmt.Errorf("corpus: read %s: %w", ReferenceDir, err)
	}

	var docs []*Document
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".md" {
			continue
		}
		id := path.Join(ReferenceDir, entry.Name())
		raw, err := fs.ReadFile(fsys, id)
		if err != nil {
			return nil, fmt.Errorf("corpus: read %s: %w", id, err)
		}
		doc, err := ParseDocument(id, raw)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}

// Document returns the document with the given bundle-relative ID.
func (b *Bundle) Document(id string) (*Document, bool) {
	doc, ok := b.byID[id]
	return doc, ok
}

// Raw reads a document's raw bytes from the bundle filesystem. For
// SKILL.md this includes the frontmatter.
func (b *Bundle) Raw(id string) ([]byte, error) {
	data, err := fs.ReadFile(b.fsys, id)
	if err != nil {
		return nil, fmt.Errorf("corpus: read %s: %w", id, err)
	}
	return data, nil
}

// ReferenceIDs returns the IDs of all shipped reference documents.
func (b *Bundle) ReferenceIDs() []string {
	ids := make([]string, len(b.References))
	for i, doc := range b.References {
		ids[i] = doc.ID
	}
	return ids
}

// ResolveLink normalizes a link destination found in a document into a
// bundle-relative document ID, or "" if the link leaves the bundle
// (absolute URLs, anchors).
func ResolveLink(fromID, dest string) string {
	if dest == "" || dest[0] == '#' {
		return ""
	}
	if hasScheme(dest) {
		return ""
	}
	// Strip fragment.
	for i := 0; i < len(dest); i++ {
		if dest[i] == '#' {
			dest = dest[:i]
			break
		}
	}
	return path.Clean(path.Join(path.Dir(fromID), dest))
}

func hasScheme(dest string) bool {
	for i := 0; i < len(dest); i++ {
		switch {
		case dest[i] == ':':
			return i > 0
		case dest[i] >= 'a' && dest[i] <= 'z',
			dest[i] >= 'A' && dest[i] <= 'Z',
			dest[i] >= '0' && dest[i] <= '9',
			dest[i] == '+', dest[i] == '-', dest[i] == '.':
		default:
			return false
		}
	}
	return false
}
