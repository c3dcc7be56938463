// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var boardsCmd = &cobra.Command{
	Use:   "boards",
	Short: "List the configured boards",
	RunE:  runBoards,
}

func runBoards(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	banner := strings.Repeat("=", 60)
	fmt.Println(banner)
	fmt.Println("Configured Boards")
	fmt.Println(banner)

	for _, key := range cfg.BoardNames() {
		board := cfg.Boards[key]
		marker := ""
		if key == cfg.DefaultBoard {
			marker = " (default)"
		}
		fmt.Printf("\n  %s%s:\n", key, marker)
		fmt.Printf("    Name: %s\n", board.Name)
		fmt.Printf("    File Key: %s\n", board.FileKey)
		fmt.Printf("    Node ID: %s\n", board.NodeID)
		if board.URL != "" {
			fmt.Printf("    URL: %s\n", board.URL)
		}
		if board.Description != "" {
			fmt.Printf("    Description: %s\n", board.Description)
		}
	}

	fmt.Printf("\n%s\n", banner)
	return nil
}

func init() {
	rootCmd.AddCommand(boardsCmd)
}
