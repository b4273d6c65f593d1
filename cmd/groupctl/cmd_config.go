package main

import (
	"fmt"
	"os"
	"strings"

	"groupctl/internal/config"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// configCmd manages the groupctl configuration file
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage groupctl configuration",
}

// configInitCmd writes a starter config file
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file with placeholder values",
	RunE:  runConfigInit,
}

// configShowCmd prints the effective configuration
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration (token redacted)",
	RunE:  runConfigShow,
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists, refusing to overwrite", cfgPath)
	}
	if err := config.DefaultConfig().Save(cfgPath); err != nil {
		return err
	}
	fmt.Printf("✅ Wrote %s\n", cfgPath)
	fmt.Println("Edit the canvas section (or set CANVAS_BASE_URL, CANVAS_API_TOKEN,")
	fmt.Println("CANVAS_COURSE_ID) before running 'groupctl provision'.")
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	shown := *cfg
	if shown.Canvas.Token != "" && shown.Canvas.Token != config.PlaceholderToken {
		shown.Canvas.Token = strings.Repeat("*", 8)
	}

	data, err := yaml.Marshal(&shown)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	fmt.Print(string(data))

	if err := cfg.Validate(); err != nil {
		fmt.Printf("\n⚠️  Config incomplete: %v\n", err)
	}
	return nil
}

func init() {
	configCmd.AddCommand(configInitCmd, configShowCmd)
	rootCmd.AddCommand(configCmd)
}
