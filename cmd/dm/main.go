// Package main is the entry point for the dungeonmaster CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dm",
	Short: "Dungeonmaster campaign director",
	Long:  `Dungeonmaster runs turn-based narrative dungeon-crawl campaigns: it advances authored scenes, tracks a party, and saves and restores sessions.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(rollCmd)
}
