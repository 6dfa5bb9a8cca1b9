//go:build cgo

package lint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeSitterSampleParser(t *testing.T) {
	code := strings.Join([]string{
		"import { ReactFlow, Background } from '@xyflow/react';",
		"import '@xyflow/react/dist/style.css';",
		"",
		"export { CustomNode } from './custom-node';",
		"",
		"export default function Flow() {",
		"  return <ReactFlow nodes={[]} edges={[]} />;",
		"}",
	}, "\n")

	imports, err := NewTreeSitterSampleParser().Imports([]byte(code))
	require.NoError(t, err)

	assert.Equal(t, []Import{
		{Source: "@xyflow/react", Line: 1},
		{Source: "@xyflow/react/dist/style.css", Line: 2},
		{Source: "./custom-node", Line: 4},
	}, imports)
}

func TestTreeSitterSampleParser_SkipsCommentsAndStrings(t *testing.T) {
	code := strings.Join([]string{
		"// import ReactFlow from 'reactflow';",
		"const hint = \"import ReactFlow from 'reactflow'\";",
		"import { addEdge } from '@xyflow/react';",
	}, "\n")

	imports, err := NewTreeSitterSampleParser().Imports([]byte(code))
	require.NoError(t, err)

	require.Len(t, imports, 1, "commented and quoted imports are not imports")
	assert.Equal(t, Import{Source: "@xyflow/react", Line: 3}, imports[0])
}

func TestTreeSitterSampleParser_LocalExportHasNoSource(t *testing.T) {
	code := "const x = 1;\nexport { x };\n"

	imports, err := NewTreeSitterSampleParser().Imports([]byte(code))
	require.NoError(t, err)
	assert.Empty(t, imports)
}

func TestTreeSitterSampleParser_TypeImports(t *testing.T) {
	code := "import type { Node, Edge } from '@xyflow/react';\n"

	imports, err := NewTreeSitterSampleParser().Imports([]byte(code))
	require.NoError(t, err)

	require.Len(t, imports, 1)
	assert.Equal(t, "@xyflow/react", imports[0].Source)
}
