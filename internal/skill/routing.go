package skill

import (
	"regexp"
	"strings"
)

// RoutingHeading marks the routing table section inside SKILL.md.
const RoutingHeading = "## Topic routing"

// RoutingRow is one row of the SKILL.md topic routing table.
type RoutingRow struct {
	Topic     string
	Intent    string
	Reference string // link destination, e.g. "references/layout.md"
}

var cellLink = regexp.MustCompile(`\[[^\]]*\]\(([^)]+)\)`)

// ParseRoutingRows extracts the routing table rows from a SKILL.md
// body. The header and separator rows are skipped; rows without a
// reference link are ignored.
func ParseRoutingRows(body string) []RoutingRow {
	var rows []RoutingRow
	inSection := false

	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "## ") {
			inSection = trimmed == RoutingHeading
			continue
		}
		if !inSection || !strings.HasPrefix(trimmed, "|") {
			continue
		}

		cells := splitRow(trimmed)
		if len(cells) < 3 {
			continue
		}
		// Separator row: cells of dashes/colons.
		if strings.Trim(cells[0], "-: ") == "" {
			continue
		}

		m := cellLink.FindStringSubmatch(cells[2])
		if m == nil {
			// Header row, or a malformed data row.
			continue
		}

		rows = append(rows, RoutingRow{
			Topic:     cells[0],
			Intent:    cells[1],
			Reference: m[1],
		})
	}
	return rows
}

// splitRow splits a pipe-table row into trimmed cell values.
func splitRow(row string) []string {
	row = strings.Trim(row, "|")
	parts := strings.Split(row, "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}
