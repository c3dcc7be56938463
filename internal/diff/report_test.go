package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/board-tracker/pkg/types"
)

func TestFormatChange(t *testing.T) {
	tests := []struct {
		name   string
		change types.NodeChange
		want   string
	}{
		{
			"added",
			types.NodeChange{ChangeType: types.ChangeAdded, NodeID: "n3", NodeType: types.NodeSticky, NewText: "New note"},
			`  + n3 [sticky] "New note"`,
		},
		{
			"removed",
			types.NodeChange{ChangeType: types.ChangeRemoved, NodeID: "n2", NodeType: types.NodeText, OldText: "Old label"},
			`  - n2 [text] "Old label"`,
		},
		{
			"modified",
			types.NodeChange{ChangeType: types.ChangeModified, NodeID: "n1", NodeType: types.NodeSticky, Details: "name: 'a' -> 'b'"},
			"  ~ n1 [sticky]\n    name: 'a' -> 'b'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatChange(tt.change))
		})
	}
}

func TestRender(t *testing.T) {
	report := &types.ChangeReport{
		BoardName:    "decision-tree",
		FromSnapshot: "2026-01-01_100000",
		ToSnapshot:   "2026-01-02_100000",
		Added: []types.NodeChange{
			{ChangeType: types.ChangeAdded, NodeID: "n3", NodeType: types.NodeSticky, NewText: "New note"},
		},
		Modified: []types.NodeChange{
			{ChangeType: types.ChangeModified, NodeID: "n1", NodeType: types.NodeText, Details: "text changed"},
		},
	}

	var b strings.Builder
	Render(&b, report)
	out := b.String()

	assert.Contains(t, out, "Board Change Report")
	assert.Contains(t, out, "Board: decision-tree")
	assert.Contains(t, out, "Comparing: 2026-01-01_100000 -> 2026-01-02_100000")
	assert.Contains(t, out, "ADDED NODES (1):")
	assert.Contains(t, out, `  + n3 [sticky] "New note"`)
	assert.Contains(t, out, "MODIFIED NODES (1):")
	assert.Contains(t, out, "REMOVED NODES (0):")
	assert.Contains(t, out, "Summary: 1 added, 1 modified, 0 removed")
}

func TestRender_EmptyReport(t *testing.T) {
	report := &types.ChangeReport{
		BoardName:    "decision-tree",
		FromSnapshot: "(none)",
		ToSnapshot:   "(none)",
	}

	var b strings.Builder
	Render(&b, report)
	out := b.String()

	assert.Contains(t, out, "Comparing: (none) -> (none)")
	assert.Equal(t, 3, strings.Count(out, "  (none)\n"))
	assert.Contains(t, out, "Summary: 0 added, 0 modified, 0 removed")
}
