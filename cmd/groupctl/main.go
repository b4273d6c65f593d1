// Package main implements the groupctl CLI: provisioning Canvas project
// groups from a markdown roster of student-led project proposals.
package main

import (
	"fmt"
	"os"

	"groupctl/internal/config"
	"groupctl/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var (
	// Global flags
	cfgPath string
	verbose bool

	// Loaded configuration, available to every command after PersistentPreRunE
	cfg *config.Config

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "groupctl",
	Short: "groupctl - provision Canvas project groups from a markdown roster",
	Long: `groupctl reads a markdown roster of student-led project proposals,
matches each listed leader against the students enrolled in a Canvas
course, and creates one group per project inside a named group category,
adding the matched leader and promoting them to moderator when allowed.

Projects are processed strictly in roster order, one at a time, with a
fixed courtesy pause between them.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		cfg, err = config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		level := cfg.Logging.Level
		if verbose {
			level = "debug"
		}
		if err := logging.Initialize(logging.Options{
			Enabled: cfg.Logging.Debug || verbose,
			Dir:     cfg.Logging.Dir,
			Level:   level,
		}); err != nil {
			logger.Warn("file logging unavailable", zap.Error(err))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.CloseAll()
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// versionCmd prints the build version
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the groupctl version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("groupctl %s\n", Version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "groupctl.yaml", "path to the config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug output")

	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
