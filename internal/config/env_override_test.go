package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvOverrides_Canvas(t *testing.T) {
	t.Run("base URL and token", func(t *testing.T) {
		t.Setenv("CANVAS_BASE_URL", "https://env.canvas.edu")
		t.Setenv("CANVAS_API_TOKEN", "env-token")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "https://env.canvas.edu", cfg.Canvas.BaseURL)
		assert.Equal(t, "env-token", cfg.Canvas.Token)
	})

	t.Run("course id parses", func(t *testing.T) {
		t.Setenv("CANVAS_COURSE_ID", "4711")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, 4711, cfg.Canvas.CourseID)
	})

	t.Run("non-numeric course id ignored", func(t *testing.T) {
		t.Setenv("CANVAS_COURSE_ID", "not-a-number")

		cfg := DefaultConfig()
		cfg.Canvas.CourseID = 7
		cfg.applyEnvOverrides()

		assert.Equal(t, 7, cfg.Canvas.CourseID)
	})

	t.Run("empty env leaves config alone", func(t *testing.T) {
		t.Setenv("CANVAS_BASE_URL", "")

		cfg := DefaultConfig()
		cfg.Canvas.BaseURL = "https://file.canvas.edu"
		cfg.applyEnvOverrides()

		assert.Equal(t, "https://file.canvas.edu", cfg.Canvas.BaseURL)
	})
}

func TestEnvOverrides_Groupctl(t *testing.T) {
	t.Setenv("GROUPCTL_CATEGORY", "Spring Projects")
	t.Setenv("GROUPCTL_ROSTER", "rosters/spring.md")

	cfg := DefaultConfig()
	cfg.applyEnvOverrides()

	assert.Equal(t, "Spring Projects", cfg.Provision.CategoryName)
	assert.Equal(t, "rosters/spring.md", cfg.Roster.Path)
}
