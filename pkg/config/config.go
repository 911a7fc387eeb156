// Package config loads and validates the jot configuration file.
//
// Two settings are load-bearing and required: where the note template
// lives and where notes go. Everything else has a default. Validation
// happens at load time, before any capture input is parsed, so a broken
// config fails the whole invocation up front.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// EnvConfig overrides the config file location.
const EnvConfig = "JOT_CONFIG"

// Store backend names accepted in the config file.
const (
	StoreFS     = "fs"
	StoreSQLite = "sqlite"
)

// Config holds all jot settings.
type Config struct {
	// NotesDir is where notes are written (the vault root). Required.
	NotesDir string `yaml:"notes_dir" json:"notes_dir"`
	// TemplatePath is the note template file. Required.
	TemplatePath string `yaml:"template_path" json:"template_path"`
	// Store selects the backend: "fs" (default) or "sqlite".
	Store string `yaml:"store" json:"store"`
	// DBPath is the vault database for the sqlite backend.
	// Defaults to <notes_dir>/vault.db.
	DBPath string `yaml:"db_path" json:"db_path"`
	// Extension is appended to note keys to form filenames.
	Extension string `yaml:"extension" json:"extension"`
}

// Error marks any configuration problem. Callers treat the category
// uniformly (fatal, reported once), so the concrete cause is wrapped.
type Error struct {
	Err error
}

func (e *Error) Error() string { return "config: " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }

func configErr(err error) error { return &Error{Err: err} }

// Defaults returns a Config with all optional fields set.
func Defaults() Config {
	return Config{
		Store:     StoreFS,
		Extension: ".md",
	}
}

// Load reads the YAML config at path, applies defaults, and validates.
// The JOT_CONFIG environment variable overrides path when set.
func Load(path string) (Config, error) {
	if envPath := os.Getenv(EnvConfig); envPath != "" {
		path = envPath
	}

	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, configErr(errors.Wrapf(err, "reading %s", path))
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, configErr(errors.Wrapf(err, "parsing %s", path))
	}

	cfg.applyDerived()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyDerived fills in values computed from other settings.
func (c *Config) applyDerived() {
	if c.DBPath == "" && c.NotesDir != "" {
		c.DBPath = filepath.Join(c.NotesDir, "vault.db")
	}
}

// Validate checks that the required settings are present and the rest
// are sensible.
func (c *Config) Validate() error {
	if c.NotesDir == "" {
		return configErr(errors.New("notes_dir is required"))
	}
	if c.TemplatePath == "" {
		return configErr(errors.New("template_path is required"))
	}
	if c.Store != StoreFS && c.Store != StoreSQLite {
		return configErr(errors.Errorf("store must be %q or %q, got %q", StoreFS, StoreSQLite, c.Store))
	}
	if !strings.HasPrefix(c.Extension, ".") {
		return configErr(errors.Errorf("extension must start with a dot, got %q", c.Extension))
	}
	return nil
}
