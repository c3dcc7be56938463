// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "sort"

// Storage backend identifiers.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// BoardConfig identifies one tracked board.
type BoardConfig struct {
	// Name is the board's display name (e.g. "Decision Tree").
	Name string `json:"name" yaml:"name" mapstructure:"name"`

	// FileKey and NodeID identify the captured document and the node
	// within it.
	FileKey string `json:"file_key" yaml:"file_key" mapstructure:"file_key"`
	NodeID  string `json:"node_id" yaml:"node_id" mapstructure:"node_id"`

	// URL is the board's web location, shown for reference only.
	URL string `json:"url,omitempty" yaml:"url,omitempty" mapstructure:"url"`

	Description string `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`
}

// StorageConfig selects and locates the snapshot store backend.
type StorageConfig struct {
	// Backend is "file" (JSON files plus index.json) or "sqlite".
	Backend string `json:"backend" yaml:"backend" mapstructure:"backend"`

	// DataDir is the base directory for snapshot storage. Each board gets
	// its own subdirectory (file backend) or database file (sqlite backend).
	DataDir string `json:"data_dir" yaml:"data_dir" mapstructure:"data_dir"`
}

// Config is the full tracker configuration, loaded from board-tracker.yaml.
type Config struct {
	// DefaultBoard names the board used when none is given on the command line.
	DefaultBoard string `json:"default_board" yaml:"default_board" mapstructure:"default_board"`

	// Boards maps board keys to their identities.
	Boards map[string]BoardConfig `json:"boards" yaml:"boards" mapstructure:"boards"`

	Storage StorageConfig `json:"storage" yaml:"storage" mapstructure:"storage"`
}

// BoardNames returns the configured board keys sorted alphabetically.
func (c *Config) BoardNames() []string {
	names := make([]string, 0, len(c.Boards))
	for name := range c.Boards {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
