// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package diff

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/board-tracker/pkg/types"
)

// previewLimit caps the text shown on added/removed change lines.
const previewLimit = 50

// Render writes a human-readable change report.
func Render(w io.Writer, r *types.ChangeReport) {
	banner := strings.Repeat("=", 60)

	fmt.Fprintln(w)
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w, "Board Change Report")
	fmt.Fprintln(w, banner)
	fmt.Fprintf(w, "Board: %s\n", r.BoardName)
	fmt.Fprintf(w, "Comparing: %s -> %s\n\n", r.FromSnapshot, r.ToSnapshot)

	renderSection(w, "ADDED NODES", r.Added)
	renderSection(w, "MODIFIED NODES", r.Modified)
	renderSection(w, "REMOVED NODES", r.Removed)

	fmt.Fprintln(w, strings.Repeat("-", 60))
	fmt.Fprintf(w, "Summary: %d added, %d modified, %d removed\n",
		len(r.Added), len(r.Modified), len(r.Removed))
	fmt.Fprintln(w, banner)
}

func renderSection(w io.Writer, label string, changes []types.NodeChange) {
	fmt.Fprintf(w, "%s (%d):\n", label, len(changes))
	if len(changes) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, c := range changes {
		fmt.Fprintln(w, FormatChange(c))
	}
	fmt.Fprintln(w)
}

// FormatChange renders one change record as a report line: + for added,
// - for removed, ~ for modified with details indented below.
func FormatChange(c types.NodeChange) string {
	switch c.ChangeType {
	case types.ChangeAdded:
		return fmt.Sprintf("  + %s [%s] %q", c.NodeID, c.NodeType, Truncate(c.NewText, previewLimit))
	case types.ChangeRemoved:
		return fmt.Sprintf("  - %s [%s] %q", c.NodeID, c.NodeType, Truncate(c.OldText, previewLimit))
	default:
		return fmt.Sprintf("  ~ %s [%s]\n    %s", c.NodeID, c.NodeType, c.Details)
	}
}
