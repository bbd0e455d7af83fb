package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyProfile(t *testing.T) {
	t.Run("profile overrides scan and generation keys", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Profiles = map[string]map[string]any{
			"web": {
				"extensions":      []string{".js", ".html"},
				"max_lines_after": 20,
				"model":           "gemini-1.5-pro",
			},
		}

		require.NoError(t, cfg.ApplyProfile("web"))
		assert.Equal(t, []string{".js", ".html"}, cfg.Scan.Extensions)
		assert.Equal(t, 20, cfg.Scan.MaxLinesAfter)
		assert.Equal(t, "gemini-1.5-pro", cfg.Generation.Model)
		// Untouched keys keep their values.
		assert.Equal(t, 2, cfg.Scan.BeforeLines)
		assert.Equal(t, 4, cfg.Generation.Concurrency)
	})

	t.Run("shorter slice replaces the default, not merges into it", func(t *testing.T) {
		cfg := DefaultConfig()
		require.Greater(t, len(cfg.Scan.Extensions), 2)
		cfg.Profiles = map[string]map[string]any{
			"web": {"extensions": []string{".js", ".html"}},
		}

		require.NoError(t, cfg.ApplyProfile("web"))
		// No stale tail from the longer default slice may survive.
		assert.Equal(t, []string{".js", ".html"}, cfg.Scan.Extensions)
	})

	t.Run("weakly typed values decode", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Profiles = map[string]map[string]any{
			// JSON numbers arrive as float64.
			"loose": {"before_lines": float64(7)},
		}

		require.NoError(t, cfg.ApplyProfile("loose"))
		assert.Equal(t, 7, cfg.Scan.BeforeLines)
	})

	t.Run("unknown profile is an error", func(t *testing.T) {
		cfg := DefaultConfig()
		assert.Error(t, cfg.ApplyProfile("nope"))
	})

	t.Run("profile producing invalid config is rejected", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Profiles = map[string]map[string]any{
			"bad": {"concurrency": 0},
		}
		assert.Error(t, cfg.ApplyProfile("bad"))
	})
}
