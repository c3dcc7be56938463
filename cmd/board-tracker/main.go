// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the board-tracker CLI. It captures
// board markup dumps as timestamped snapshots, lists and summarizes them,
// and compares any two snapshots into a change report.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/board-tracker/internal/tracker"
	"github.com/pdiddy/board-tracker/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the board-tracker CLI.
var rootCmd = &cobra.Command{
	Use:   "board-tracker",
	Short: "Track structural changes to whiteboard-style boards",
	Long: `board-tracker turns semi-structured board markup dumps into typed,
timestamped snapshots and compares them. An external capture tool produces
the raw markup; board-tracker parses it, stores one snapshot per capture,
and reports which elements were added, removed, or modified between any
two snapshots.

Boards are declared in board-tracker.yaml. Each subcommand operates on one
board, chosen with --board or the configured default.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./board-tracker.yaml or ~/.config/board-tracker/config.yaml)")
	rootCmd.PersistentFlags().StringP("board", "b", "", "board to operate on (default: the configured default_board)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("board-tracker")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "board-tracker"))
		}
	}

	viper.SetEnvPrefix("BOARD_TRACKER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig unmarshals the viper state into a Config and applies storage
// defaults.
func loadConfig() (*types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = types.BackendFile
	}
	if cfg.Storage.DataDir == "" {
		cfg.Storage.DataDir = filepath.Join("data", "snapshots")
	}
	if len(cfg.Boards) == 0 {
		return nil, fmt.Errorf("no boards configured: add a boards section to board-tracker.yaml")
	}
	return &cfg, nil
}

// newTracker builds a tracker for the board selected by the --board flag.
func newTracker(cmd *cobra.Command) (*tracker.Tracker, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	boardName, _ := cmd.Flags().GetString("board")
	return tracker.New(cfg, boardName)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
