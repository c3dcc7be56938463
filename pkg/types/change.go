// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Change classification for one node between two snapshots.
const (
	ChangeAdded    = "added"
	ChangeRemoved  = "removed"
	ChangeModified = "modified"
)

// NodeChange is one classified difference between two snapshots' nodes.
// Details is a human-readable description and is only populated for
// modifications; it has no structure worth re-parsing.
type NodeChange struct {
	ChangeType string `json:"change_type" yaml:"change_type"`
	NodeID     string `json:"node_id" yaml:"node_id"`
	NodeType   string `json:"node_type" yaml:"node_type"`
	Name       string `json:"name" yaml:"name"`
	OldText    string `json:"old_text" yaml:"old_text"`
	NewText    string `json:"new_text" yaml:"new_text"`
	Details    string `json:"details" yaml:"details"`
}

// ChangeReport aggregates all changes between two snapshots of a board.
type ChangeReport struct {
	BoardName    string
	FromSnapshot string
	ToSnapshot   string
	Added        []NodeChange
	Removed      []NodeChange
	Modified     []NodeChange
}

// HasChanges reports whether any change sequence is non-empty.
func (r *ChangeReport) HasChanges() bool {
	return len(r.Added) > 0 || len(r.Removed) > 0 || len(r.Modified) > 0
}

// TotalChanges returns the number of change records across all categories.
func (r *ChangeReport) TotalChanges() int {
	return len(r.Added) + len(r.Removed) + len(r.Modified)
}

// ChangeSummary holds the per-category counts in the serialized report.
type ChangeSummary struct {
	Added        int `json:"added" yaml:"added"`
	Removed      int `json:"removed" yaml:"removed"`
	Modified     int `json:"modified" yaml:"modified"`
	TotalChanges int `json:"total_changes" yaml:"total_changes"`
}

// ReportChanges groups the change records by category in the serialized report.
type ReportChanges struct {
	Added    []NodeChange `json:"added" yaml:"added"`
	Removed  []NodeChange `json:"removed" yaml:"removed"`
	Modified []NodeChange `json:"modified" yaml:"modified"`
}

// ReportDocument is the external form of a ChangeReport.
type ReportDocument struct {
	BoardName    string        `json:"board_name" yaml:"board_name"`
	FromSnapshot string        `json:"from_snapshot" yaml:"from_snapshot"`
	ToSnapshot   string        `json:"to_snapshot" yaml:"to_snapshot"`
	Summary      ChangeSummary `json:"summary" yaml:"summary"`
	Changes      ReportChanges `json:"changes" yaml:"changes"`
}

// Document converts the report into its serializable external form.
func (r *ChangeReport) Document() ReportDocument {
	return ReportDocument{
		BoardName:    r.BoardName,
		FromSnapshot: r.FromSnapshot,
		ToSnapshot:   r.ToSnapshot,
		Summary: ChangeSummary{
			Added:        len(r.Added),
			Removed:      len(r.Removed),
			Modified:     len(r.Modified),
			TotalChanges: r.TotalChanges(),
		},
		Changes: ReportChanges{
			Added:    r.Added,
			Removed:  r.Removed,
			Modified: r.Modified,
		},
	}
}
