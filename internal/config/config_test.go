package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csheth/stackedit/internal/editor"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"), false)
	require.NoError(t, err)
	assert.Equal(t, BackendTcell, cfg.Backend)
	assert.Equal(t, editor.ModeInsertion, cfg.Mode())
	assert.Equal(t, 50*time.Millisecond, cfg.PollInterval.Duration)
	assert.True(t, *cfg.AltScreen)
	assert.True(t, *cfg.Highlight)
	assert.Equal(t, "monokai", cfg.Theme)
}

func TestLoadMissingRequiredFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"), true)
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
backend = "tea"
initial_mode = "normal"
poll_interval = "20ms"
alt_screen = false
highlight = false
theme = "dracula"
log_file = "/tmp/stackedit.log"

[prelude]
terms = ["x", "@f (f f)"]
rules = ["(Id a) = a"]
`)
	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, BackendTea, cfg.Backend)
	assert.Equal(t, editor.ModeNavigation, cfg.Mode())
	assert.Equal(t, 20*time.Millisecond, cfg.PollInterval.Duration)
	assert.False(t, *cfg.AltScreen)
	assert.False(t, *cfg.Highlight)
	assert.Equal(t, "dracula", cfg.Theme)
	assert.Equal(t, "/tmp/stackedit.log", cfg.LogFile)

	entries, err := cfg.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "x", entries[0].String())
	assert.Equal(t, "λf (f f)", entries[1].String())
	assert.IsType(t, editor.RuleEntry{}, entries[2])
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"backend":      `backend = "curses"`,
		"mode":         `initial_mode = "visual"`,
		"terminated":   `initial_mode = "terminated"`,
		"duration":     `poll_interval = "soon"`,
		"prelude term": "[prelude]\nterms = [\"(f\"]",
		"prelude rule": "[prelude]\nrules = [\"(Id a)\"]",
		"syntax":       `backend = `,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body), true)
			require.Error(t, err)
		})
	}
}

func TestUnknownBackendIsTyped(t *testing.T) {
	_, err := Load(writeConfig(t, `backend = "curses"`), true)
	require.ErrorIs(t, err, ErrUnknownBackend)
}

func TestDefaultPathHonoursEnv(t *testing.T) {
	t.Setenv(EnvPath, "/etc/stackedit.toml")
	assert.Equal(t, "/etc/stackedit.toml", DefaultPath())

	t.Setenv(EnvPath, "")
	if dir, err := os.UserConfigDir(); err == nil {
		assert.Equal(t, filepath.Join(dir, "stackedit", "config.toml"), DefaultPath())
	}
}
