// Package main implements the provision command, the full roster-to-groups
// run against a Canvas course.
package main

import (
	"fmt"
	"strings"

	"groupctl/cmd/groupctl/ui"
	"groupctl/internal/canvas"
	"groupctl/internal/logging"
	"groupctl/internal/match"
	"groupctl/internal/provision"
	"groupctl/internal/roster"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	provisionRosterPath string
	provisionDryRun     bool
	provisionNoPromote  bool
)

// provisionCmd runs the full provisioning workflow
var provisionCmd = &cobra.Command{
	Use:   "provision",
	Short: "Create one Canvas group per roster project and add its leader",
	Long: `Runs the full workflow:
  1. Validate configuration and probe the Canvas connection
  2. Parse the markdown roster into (project, leader) pairs
  3. Fetch the course's enrolled students
  4. Find or create the group category
  5. Per project: create group, add leader, promote to moderator

Per-project failures (unknown leader, group or membership errors) are
recorded and the run continues; only missing preconditions abort it.`,
	RunE: runProvision,
}

func runProvision(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	runID := uuid.NewString()[:8]
	runLog := logging.WithRunID(logging.CategoryProvision, runID)
	logger.Info("starting provisioning run",
		zap.String("run_id", runID),
		zap.String("base_url", cfg.Canvas.BaseURL),
		zap.Int("course_id", cfg.Canvas.CourseID))

	client := canvas.NewClient(canvas.ClientConfig{
		BaseURL: cfg.Canvas.BaseURL,
		Token:   cfg.Canvas.Token,
		Timeout: cfg.APITimeout(),
	})

	// Connectivity probe: a bad token or unreachable instance aborts the
	// run before anything is parsed or created.
	self, err := client.Self(cmd.Context())
	if err != nil {
		runLog.Error("connectivity probe failed: %v", err)
		return fmt.Errorf("canvas connectivity check failed: %w", err)
	}
	fmt.Printf("🔑 Authenticated as %s\n", self.Name)

	rosterPath := cfg.Roster.Path
	if provisionRosterPath != "" {
		rosterPath = provisionRosterPath
	}
	entries, err := roster.ParseFile(rosterPath, cfg.Roster.SkipHeading)
	if err != nil {
		return fmt.Errorf("cannot read roster %s: %w", rosterPath, err)
	}
	if len(entries) == 0 {
		return fmt.Errorf("roster %s contains no project entries", rosterPath)
	}
	fmt.Printf("📋 Parsed %d projects from %s\n", len(entries), rosterPath)

	students, err := client.ListStudents(cmd.Context(), cfg.Canvas.CourseID)
	if err != nil {
		return fmt.Errorf("listing enrolled students: %w", err)
	}
	if len(students) == 0 {
		return fmt.Errorf("course %d has no enrolled students", cfg.Canvas.CourseID)
	}
	fmt.Printf("🎓 Course %d has %d enrolled students\n", cfg.Canvas.CourseID, len(students))

	if provisionDryRun {
		fmt.Println("\nDry run requested; no groups will be created.")
		printDryRun(entries, students)
		return nil
	}

	p := provision.New(client, provision.Options{
		CategoryName:      cfg.Provision.CategoryName,
		DescriptionPrefix: cfg.Provision.DescriptionPrefix,
		Pause:             cfg.ProjectPause(),
		Promote:           cfg.Provision.Promote && !provisionNoPromote,
	})

	summary, err := p.Run(cmd.Context(), cfg.Canvas.CourseID, entries, students)
	if err != nil {
		runLog.Error("run aborted: %v", err)
		return err
	}
	runLog.Info("run finished: %d/%d succeeded", len(summary.Succeeded()), len(summary.Outcomes))

	printSummary(summary)
	return nil
}

func printDryRun(entries []roster.Entry, students []canvas.User) {
	table := ui.NewSimpleTable("Planned groups", []string{"Project", "Leader", "Resolves To"})
	for _, e := range entries {
		resolved := "—"
		if s, ok := match.Resolve(students, e.Leader); ok {
			resolved = s.Name
		}
		table.AddRow(e.Project, e.Leader, resolved)
	}
	fmt.Print(table.View(ui.DefaultStyles()))
}

func printSummary(summary *provision.Summary) {
	table := ui.NewSimpleTable("Provisioning summary", []string{"Project", "Leader", "Status", "Group"})
	for _, o := range summary.Outcomes {
		group := "—"
		if o.GroupURL != "" {
			group = o.GroupURL
		}
		status := o.Status.String()
		if o.Status == provision.StatusSuccess && o.Moderator {
			status += " (moderator)"
		}
		table.AddRow(o.Project, o.Leader, status, group)
	}
	fmt.Print(table.View(ui.DefaultStyles()))

	succeeded := len(summary.Succeeded())
	failed := len(summary.Failed())
	fmt.Println(strings.Repeat("─", 50))
	fmt.Printf("✅ %d succeeded   ❌ %d failed   (%.0f%%)\n", succeeded, failed, summary.SuccessRate())
	if failed > 0 {
		fmt.Println("\nFailed projects:")
		for _, o := range summary.Failed() {
			fmt.Printf("  - %s: %s\n", o.Project, o.Status)
		}
	}
}

func init() {
	provisionCmd.Flags().StringVar(&provisionRosterPath, "roster", "", "roster file (overrides config)")
	provisionCmd.Flags().BoolVar(&provisionDryRun, "dry-run", false, "parse and resolve only; create nothing")
	provisionCmd.Flags().BoolVar(&provisionNoPromote, "no-promote", false, "skip moderator promotion")

	rootCmd.AddCommand(provisionCmd)
}
