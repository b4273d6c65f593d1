package main

import (
	"os"
	"path/filepath"
	"testing"

	"groupctl/internal/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func TestParseCmd(t *testing.T) {
	logger = zap.NewNop()
	cfg = config.DefaultConfig()

	dir := t.TempDir()
	path := filepath.Join(dir, "projects.md")
	content := "## Project Ideas\n## Alpha\n- Bob\n## Beta\n- Carol\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := &cobra.Command{}
	if err := runParse(cmd, []string{path}); err != nil {
		t.Fatalf("runParse failed: %v", err)
	}
}

func TestParseCmd_MissingRoster(t *testing.T) {
	logger = zap.NewNop()
	cfg = config.DefaultConfig()
	cfg.Roster.Path = filepath.Join(t.TempDir(), "missing.md")

	cmd := &cobra.Command{}
	if err := runParse(cmd, []string{}); err == nil {
		t.Error("runParse should fail for a missing roster file")
	}
}

func TestConfigInitCmd(t *testing.T) {
	logger = zap.NewNop()
	cfg = config.DefaultConfig()

	dir := t.TempDir()
	oldPath := cfgPath
	cfgPath = filepath.Join(dir, "groupctl.yaml")
	defer func() { cfgPath = oldPath }()

	cmd := &cobra.Command{}
	if err := runConfigInit(cmd, []string{}); err != nil {
		t.Fatalf("runConfigInit failed: %v", err)
	}
	if _, err := os.Stat(cfgPath); err != nil {
		t.Errorf("config file was not written: %v", err)
	}

	// A second init must refuse to overwrite.
	if err := runConfigInit(cmd, []string{}); err == nil {
		t.Error("runConfigInit should refuse to overwrite an existing file")
	}
}

func TestProvisionCmd_UnconfiguredFails(t *testing.T) {
	logger = zap.NewNop()
	cfg = config.DefaultConfig() // placeholders only

	cmd := &cobra.Command{}
	if err := runProvision(cmd, []string{}); err == nil {
		t.Error("runProvision should fail fast on placeholder config")
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := map[string]bool{
		"provision": false,
		"parse":     false,
		"check":     false,
		"config":    false,
		"version":   false,
	}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}
}
