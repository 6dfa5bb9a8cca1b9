package main

import (
	"fmt"

	"github.com/flowgraph-tools/flowskill/internal/status"
)

func runStatus(projectRoot string) error {
	st, err := status.Check(projectRoot)
	if err != nil {
		return err
	}

	if !st.Installed {
		fmt.Printf("Skill not installed (no %s).\n", st.SkillDir)
		fmt.Println("Run 'flowskill init' to install it.")
		return nil
	}

	fmt.Printf("Skill installed at %s\n\n", st.SkillDir)

	clean := true
	for _, f := range st.Files {
		if f.State == status.StateOK {
			continue
		}
		clean = false
		fmt.Printf("  %-9s %s\n", f.State, f.Path)
	}
	if clean {
		fmt.Println("  All files match the embedded bundle.")
	} else {
		fmt.Println("\nRun 'flowskill init --force' to restore shipped files.")
	}

	if st.MCPConfigured {
		fmt.Println("  MCP server configured in .mcp.json.")
	} else {
		fmt.Println("  No flowskill entry in .mcp.json.")
	}
	return nil
}
