// Package config loads the stackedit TOML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/csheth/stackedit/internal/editor"
	"github.com/csheth/stackedit/internal/highlight"
	"github.com/csheth/stackedit/internal/lang"
)

const (
	// EnvPath overrides the default config location.
	EnvPath = "STACKEDIT_CONFIG"

	BackendTcell = "tcell"
	BackendTea   = "tea"

	configSubdir = "stackedit"
	configFile   = "config.toml"
)

// ErrUnknownBackend is returned for a backend other than tcell or tea.
var ErrUnknownBackend = errors.New("unknown backend")

// Config is the decoded configuration file.
type Config struct {
	Backend      string   `toml:"backend"`
	InitialMode  string   `toml:"initial_mode"`
	// PollInterval bounds each input wait of the tcell backend. The tea
	// backend is driven by its own event loop and ignores it.
	PollInterval Duration `toml:"poll_interval"`
	AltScreen    *bool    `toml:"alt_screen"`
	Highlight    *bool    `toml:"highlight"`
	Theme        string   `toml:"theme"`
	LogFile      string   `toml:"log_file"`
	Prelude      Prelude  `toml:"prelude"`
}

// Prelude lists entries pushed onto the stack before the first key. Terms
// are pushed first, then rules.
type Prelude struct {
	Terms []string `toml:"terms"`
	Rules []string `toml:"rules"`
}

// Duration decodes TOML strings such as "50ms".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.SetDefaults()
	return cfg
}

// SetDefaults fills every unset field.
func (c *Config) SetDefaults() {
	if c.Backend == "" {
		c.Backend = BackendTcell
	}
	if c.InitialMode == "" {
		c.InitialMode = editor.ModeInsertion.String()
	}
	if c.PollInterval.Duration <= 0 {
		c.PollInterval.Duration = editor.DefaultPollInterval
	}
	if c.AltScreen == nil {
		c.AltScreen = boolPtr(true)
	}
	if c.Highlight == nil {
		c.Highlight = boolPtr(true)
	}
	if c.Theme == "" {
		c.Theme = highlight.DefaultTheme
	}
}

// Validate checks enumerations and that prelude entries parse.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendTcell, BackendTea:
	default:
		return fmt.Errorf("%w %q (want %q or %q)", ErrUnknownBackend, c.Backend, BackendTcell, BackendTea)
	}
	mode, err := editor.ParseMode(c.InitialMode)
	if err != nil {
		return fmt.Errorf("initial_mode: %w", err)
	}
	if mode == editor.ModeTerminated {
		return errors.New("initial_mode: cannot start terminated")
	}
	if _, err := c.Entries(); err != nil {
		return err
	}
	return nil
}

// Mode returns the parsed initial mode.
func (c *Config) Mode() editor.Mode {
	mode, err := editor.ParseMode(c.InitialMode)
	if err != nil {
		return editor.ModeInsertion
	}
	return mode
}

// Entries parses the prelude into stack entries.
func (c *Config) Entries() ([]editor.Entry, error) {
	entries := make([]editor.Entry, 0, len(c.Prelude.Terms)+len(c.Prelude.Rules))
	for i, text := range c.Prelude.Terms {
		term, err := lang.ReadTerm(text)
		if err != nil {
			return nil, fmt.Errorf("prelude.terms[%d]: %w", i, err)
		}
		entries = append(entries, editor.TermEntry{Term: term})
	}
	for i, text := range c.Prelude.Rules {
		rule, err := lang.ReadRule(text)
		if err != nil {
			return nil, fmt.Errorf("prelude.rules[%d]: %w", i, err)
		}
		entries = append(entries, editor.RuleEntry{Rule: rule})
	}
	return entries, nil
}

// DefaultPath returns $STACKEDIT_CONFIG or <user config dir>/stackedit/config.toml.
func DefaultPath() string {
	if path := strings.TrimSpace(os.Getenv(EnvPath)); path != "" {
		return path
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, configSubdir, configFile)
}

// Load reads path. A missing file yields the defaults unless required is
// set.
func Load(path string, required bool) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			if !errors.Is(err, os.ErrNotExist) || required {
				return nil, fmt.Errorf("load config %s: %w", path, err)
			}
		}
	} else if required {
		return nil, errors.New("load config: no path")
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func boolPtr(v bool) *bool { return &v }
