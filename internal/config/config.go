package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Placeholder values shipped in the starter config. Validate rejects them
// so a run never reaches the network with an unconfigured instance.
const (
	PlaceholderBaseURL = "https://canvas.example.edu"
	PlaceholderToken   = "your-canvas-token"
)

// Config holds all groupctl configuration.
type Config struct {
	// Canvas connection
	Canvas CanvasConfig `yaml:"canvas"`

	// Provisioning behavior
	Provision ProvisionConfig `yaml:"provision"`

	// Roster input
	Roster RosterConfig `yaml:"roster"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// CanvasConfig configures the Canvas API connection.
type CanvasConfig struct {
	BaseURL  string `yaml:"base_url"`
	Token    string `yaml:"token"`
	CourseID int    `yaml:"course_id"`
	Timeout  string `yaml:"timeout"`
}

// ProvisionConfig configures the group provisioning workflow.
type ProvisionConfig struct {
	// Group category (group set) that holds the project groups
	CategoryName string `yaml:"category_name"`

	// Prefix for the group description; the project name is appended
	DescriptionPrefix string `yaml:"description_prefix"`

	// Fixed pause between projects, a courtesy to the Canvas instance
	Pause string `yaml:"pause"`

	// Attempt to promote each leader to group moderator
	Promote bool `yaml:"promote"`
}

// RosterConfig configures the roster input document.
type RosterConfig struct {
	Path string `yaml:"path"`

	// Headings containing this text are section titles, not projects
	SkipHeading string `yaml:"skip_heading"`
}

// LoggingConfig configures the categorized file logger.
type LoggingConfig struct {
	Debug bool   `yaml:"debug"`
	Level string `yaml:"level"` // debug, info, warn, error
	Dir   string `yaml:"dir"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Canvas: CanvasConfig{
			BaseURL: PlaceholderBaseURL,
			Token:   PlaceholderToken,
			Timeout: "30s",
		},
		Provision: ProvisionConfig{
			CategoryName:      "Student-Led Projects",
			DescriptionPrefix: "Project group for",
			Pause:             "1s",
			Promote:           true,
		},
		Roster: RosterConfig{
			Path:        "projects.md",
			SkipHeading: "Project Ideas",
		},
		Logging: LoggingConfig{
			Debug: false,
			Level: "info",
			Dir:   "logs",
		},
	}
}

// Load loads configuration from a YAML file. A missing file is not an
// error: defaults are returned and env overrides still apply, so the tool
// can run from environment variables alone.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("CANVAS_BASE_URL"); v != "" {
		c.Canvas.BaseURL = v
	}
	if v := os.Getenv("CANVAS_API_TOKEN"); v != "" {
		c.Canvas.Token = v
	}
	if v := os.Getenv("CANVAS_COURSE_ID"); v != "" {
		if id, err := strconv.Atoi(v); err == nil {
			c.Canvas.CourseID = id
		}
	}
	if v := os.Getenv("GROUPCTL_CATEGORY"); v != "" {
		c.Provision.CategoryName = v
	}
	if v := os.Getenv("GROUPCTL_ROSTER"); v != "" {
		c.Roster.Path = v
	}
}

// Validate checks that the Canvas connection settings are usable. Unset or
// placeholder values are a fatal configuration error before any network
// activity begins.
func (c *Config) Validate() error {
	if c.Canvas.BaseURL == "" || c.Canvas.BaseURL == PlaceholderBaseURL {
		return fmt.Errorf("canvas base URL not configured (set canvas.base_url or CANVAS_BASE_URL)")
	}
	if c.Canvas.Token == "" || c.Canvas.Token == PlaceholderToken {
		return fmt.Errorf("canvas API token not configured (set canvas.token or CANVAS_API_TOKEN)")
	}
	if c.Canvas.CourseID <= 0 {
		return fmt.Errorf("canvas course id not configured (set canvas.course_id or CANVAS_COURSE_ID)")
	}
	if c.Provision.CategoryName == "" {
		return fmt.Errorf("provision category name must not be empty")
	}
	return nil
}

// APITimeout returns the Canvas request timeout as a duration.
func (c *Config) APITimeout() time.Duration {
	d, err := time.ParseDuration(c.Canvas.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// ProjectPause returns the fixed inter-project pause as a duration.
func (c *Config) ProjectPause() time.Duration {
	d, err := time.ParseDuration(c.Provision.Pause)
	if err != nil {
		return time.Second
	}
	return d
}
