package main

import (
	"fmt"

	"groupctl/internal/roster"

	"github.com/spf13/cobra"
)

// parseCmd parses the roster without touching the network
var parseCmd = &cobra.Command{
	Use:   "parse [roster-file]",
	Short: "Parse the roster and print the project entries",
	Long: `Parses the markdown roster and prints the (project, leader) pairs
it would provision, in document order. No network access.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	path := cfg.Roster.Path
	if len(args) == 1 {
		path = args[0]
	}

	entries, err := roster.ParseFile(path, cfg.Roster.SkipHeading)
	if err != nil {
		return fmt.Errorf("cannot read roster %s: %w", path, err)
	}

	if len(entries) == 0 {
		fmt.Printf("No project entries found in %s.\n", path)
		return nil
	}

	fmt.Printf("📋 %d projects in %s\n\n", len(entries), path)
	for i, e := range entries {
		fmt.Printf("  %2d. %s — %s\n", i+1, e.Project, e.Leader)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
