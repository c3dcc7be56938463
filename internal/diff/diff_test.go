package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/board-tracker/pkg/types"
)

func snap(timestamp string, nodes ...types.Node) *types.Snapshot {
	return &types.Snapshot{
		BoardName: "decision-tree",
		Timestamp: timestamp,
		Nodes:     nodes,
		NodeCount: len(nodes),
	}
}

func changeIDs(changes []types.NodeChange) []string {
	ids := make([]string, 0, len(changes))
	for _, c := range changes {
		ids = append(ids, c.NodeID)
	}
	return ids
}

func TestCompare_MixedChangeSet(t *testing.T) {
	oldSnap := snap("2026-01-01_100000",
		types.Node{ID: "n1", Type: types.NodeText, Text: "Keep"},
		types.Node{ID: "n2", Type: types.NodeSticky, Text: "Remove me"},
	)
	newSnap := snap("2026-01-02_100000",
		types.Node{ID: "n1", Type: types.NodeText, Text: "Keep"},
		types.Node{ID: "n3", Type: types.NodeSticky, Text: "New note"},
	)

	report := Compare(oldSnap, newSnap, DefaultOptions())

	assert.ElementsMatch(t, []string{"n3"}, changeIDs(report.Added))
	assert.ElementsMatch(t, []string{"n2"}, changeIDs(report.Removed))
	assert.Empty(t, report.Modified)
	assert.True(t, report.HasChanges())

	require.Len(t, report.Added, 1)
	assert.Equal(t, types.ChangeAdded, report.Added[0].ChangeType)
	assert.Equal(t, "New note", report.Added[0].NewText)
	require.Len(t, report.Removed, 1)
	assert.Equal(t, types.ChangeRemoved, report.Removed[0].ChangeType)
	assert.Equal(t, "Remove me", report.Removed[0].OldText)
}

func TestCompare_SelfIsNoOp(t *testing.T) {
	s := snap("2026-01-01_100000",
		types.Node{ID: "n1", Type: types.NodeSticky, Text: "hello", X: 4, Y: 2},
		types.Node{ID: "n2", Type: types.NodeConnector, ConnectorStart: "n1", ConnectorEnd: "n3"},
	)

	report := Compare(s, s, DefaultOptions())

	assert.False(t, report.HasChanges())
	assert.Zero(t, report.TotalChanges())
}

func TestCompare_TextModification(t *testing.T) {
	oldSnap := snap("2026-01-01_100000", types.Node{ID: "n1", Type: types.NodeText, Text: "Old text"})
	newSnap := snap("2026-01-02_100000", types.Node{ID: "n1", Type: types.NodeText, Text: "New text"})

	report := Compare(oldSnap, newSnap, DefaultOptions())

	require.Len(t, report.Modified, 1)
	mod := report.Modified[0]
	assert.Equal(t, types.ChangeModified, mod.ChangeType)
	assert.Equal(t, "Old text", mod.OldText)
	assert.Equal(t, "New text", mod.NewText)
	assert.Contains(t, mod.Details, "Old text")
	assert.Contains(t, mod.Details, "New text")
	assert.Empty(t, report.Added)
	assert.Empty(t, report.Removed)
}

func TestCompare_PositionToggle(t *testing.T) {
	oldSnap := snap("2026-01-01_100000", types.Node{ID: "n1", Type: types.NodeSticky, Text: "same", X: 10, Y: 20})
	newSnap := snap("2026-01-02_100000", types.Node{ID: "n1", Type: types.NodeSticky, Text: "same", X: 99, Y: 20})

	ignored := Compare(oldSnap, newSnap, Options{IgnorePositions: true})
	assert.False(t, ignored.HasChanges())

	sensitive := Compare(oldSnap, newSnap, Options{IgnorePositions: false})
	require.Len(t, sensitive.Modified, 1)
	assert.Contains(t, sensitive.Modified[0].Details, "moved from (10, 20) to (99, 20)")
}

func TestCompare_NameChange(t *testing.T) {
	oldSnap := snap("2026-01-01_100000", types.Node{ID: "n1", Type: types.NodeShapeWithText, Name: "Draft", Text: "same"})
	newSnap := snap("2026-01-02_100000", types.Node{ID: "n1", Type: types.NodeShapeWithText, Name: "Final", Text: "same"})

	report := Compare(oldSnap, newSnap, DefaultOptions())

	require.Len(t, report.Modified, 1)
	assert.Equal(t, "name: 'Draft' -> 'Final'", report.Modified[0].Details)
}

func TestCompare_ConnectorEndpoints(t *testing.T) {
	oldSnap := snap("2026-01-01_100000",
		types.Node{ID: "c1", Type: types.NodeConnector, ConnectorStart: "a", ConnectorEnd: "b"})
	newSnap := snap("2026-01-02_100000",
		types.Node{ID: "c1", Type: types.NodeConnector, ConnectorStart: "a2", ConnectorEnd: "b2"})

	report := Compare(oldSnap, newSnap, DefaultOptions())

	require.Len(t, report.Modified, 1)
	assert.Equal(t, "start: a -> a2, end: b -> b2", report.Modified[0].Details)
}

func TestCompare_EndpointChangeIgnoredForOtherKinds(t *testing.T) {
	// Endpoint fields only matter on connectors.
	oldSnap := snap("2026-01-01_100000", types.Node{ID: "n1", Type: types.NodeSticky, Text: "same", ConnectorStart: "x"})
	newSnap := snap("2026-01-02_100000", types.Node{ID: "n1", Type: types.NodeSticky, Text: "same", ConnectorStart: "y"})

	report := Compare(oldSnap, newSnap, DefaultOptions())
	assert.False(t, report.HasChanges())
}

func TestCompare_Completeness(t *testing.T) {
	oldSnap := snap("2026-01-01_100000",
		types.Node{ID: "a", Type: types.NodeSticky, Text: "1"},
		types.Node{ID: "b", Type: types.NodeSticky, Text: "2"},
		types.Node{ID: "c", Type: types.NodeSticky, Text: "3"},
	)
	newSnap := snap("2026-01-02_100000",
		types.Node{ID: "b", Type: types.NodeSticky, Text: "2"},
		types.Node{ID: "c", Type: types.NodeSticky, Text: "3 edited"},
		types.Node{ID: "d", Type: types.NodeSticky, Text: "4"},
	)

	report := Compare(oldSnap, newSnap, DefaultOptions())

	// Every id lands in exactly one category; "b" is unchanged and absent.
	assert.ElementsMatch(t, []string{"d"}, changeIDs(report.Added))
	assert.ElementsMatch(t, []string{"a"}, changeIDs(report.Removed))
	assert.ElementsMatch(t, []string{"c"}, changeIDs(report.Modified))
	assert.Equal(t, 3, report.TotalChanges())
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		text string
		max  int
		want string
	}{
		{"1234567890", 10, "1234567890"},
		{"12345678901", 10, "1234567890..."},
		{"", 10, ""},
		{"short", 10, "short"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Truncate(tt.text, tt.max), "Truncate(%q, %d)", tt.text, tt.max)
	}
}

func TestReportDocument(t *testing.T) {
	oldSnap := snap("2026-01-01_100000", types.Node{ID: "n1", Type: types.NodeText, Text: "x"})
	newSnap := snap("2026-01-02_100000", types.Node{ID: "n2", Type: types.NodeText, Text: "y"})

	doc := Compare(oldSnap, newSnap, DefaultOptions()).Document()

	assert.Equal(t, "decision-tree", doc.BoardName)
	assert.Equal(t, "2026-01-01_100000", doc.FromSnapshot)
	assert.Equal(t, "2026-01-02_100000", doc.ToSnapshot)
	assert.Equal(t, 1, doc.Summary.Added)
	assert.Equal(t, 1, doc.Summary.Removed)
	assert.Equal(t, 0, doc.Summary.Modified)
	assert.Equal(t, 2, doc.Summary.TotalChanges)
	assert.Len(t, doc.Changes.Added, 1)
	assert.Len(t, doc.Changes.Removed, 1)
}
