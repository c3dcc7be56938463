// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// TimestampLayout formats snapshot timestamps. The format sorts
// lexicographically in capture order and doubles as the persistence
// filename stem.
const TimestampLayout = "2006-01-02_150405"

// Snapshot is one immutable capture of a board: the extracted nodes plus
// the identity of what was captured. RawContent keeps the original markup
// for audit and debugging.
type Snapshot struct {
	BoardName string `json:"board_name" yaml:"board_name"`
	FileKey   string `json:"file_key" yaml:"file_key"`
	NodeID    string `json:"node_id" yaml:"node_id"`
	Timestamp string `json:"timestamp" yaml:"timestamp"`

	// Section metadata of the enclosing container, when the dump has one.
	SectionName string `json:"section_name" yaml:"section_name"`
	SectionID   string `json:"section_id" yaml:"section_id"`

	NodeCount  int    `json:"node_count" yaml:"node_count"`
	Nodes      []Node `json:"nodes" yaml:"nodes"`
	RawContent string `json:"raw_content" yaml:"raw_content"`
}

// IndexEntry is one snapshot's metadata in the board index.
type IndexEntry struct {
	Timestamp   string `json:"timestamp" yaml:"timestamp"`
	Filename    string `json:"filename" yaml:"filename"`
	NodeCount   int    `json:"node_count" yaml:"node_count"`
	SectionName string `json:"section_name" yaml:"section_name"`
	CreatedAt   string `json:"created_at" yaml:"created_at"`
}

// SnapshotIndex is the append-only index of all snapshots for one board.
type SnapshotIndex struct {
	BoardName      string       `json:"board_name" yaml:"board_name"`
	FileKey        string       `json:"file_key" yaml:"file_key"`
	NodeID         string       `json:"node_id" yaml:"node_id"`
	Snapshots      []IndexEntry `json:"snapshots" yaml:"snapshots"`
	TotalSnapshots int          `json:"total_snapshots" yaml:"total_snapshots"`
	LastUpdated    string       `json:"last_updated" yaml:"last_updated"`
}
