package main

import (
	"fmt"

	"groupctl/internal/canvas"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// checkCmd probes the Canvas connection
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the Canvas connection and token",
	Long: `Validates the configuration and calls the current-user endpoint to
confirm the instance is reachable and the token works. Also reports how
many students the configured course has.`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	client := canvas.NewClient(canvas.ClientConfig{
		BaseURL: cfg.Canvas.BaseURL,
		Token:   cfg.Canvas.Token,
		Timeout: cfg.APITimeout(),
	})

	self, err := client.Self(cmd.Context())
	if err != nil {
		return fmt.Errorf("canvas connectivity check failed: %w", err)
	}
	fmt.Printf("✅ Connected to %s as %s (id %d)\n", cfg.Canvas.BaseURL, self.Name, self.ID)

	students, err := client.ListStudents(cmd.Context(), cfg.Canvas.CourseID)
	if err != nil {
		logger.Warn("student listing failed", zap.Error(err))
		fmt.Printf("⚠️  Could not list students for course %d: %v\n", cfg.Canvas.CourseID, err)
		return nil
	}
	fmt.Printf("🎓 Course %d: %d enrolled students\n", cfg.Canvas.CourseID, len(students))
	return nil
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
