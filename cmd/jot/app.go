package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jotcli/jot/pkg/clock"
	"github.com/jotcli/jot/pkg/config"
	"github.com/jotcli/jot/pkg/store"
)

// app holds shared state for all CLI subcommands.
type app struct {
	clk   clock.Clock
	rep   *reporter
	stdin io.Reader
	cfg   *config.Config // cached after first load
}

func newApp() *app {
	return &app{
		clk:   clock.Wall{},
		rep:   &reporter{},
		stdin: os.Stdin,
	}
}

// reporter prints errors to stderr. A broken config is fatal for every
// command that needs one, so the session reports it once and stays
// quiet on repeats.
type reporter struct {
	configShown bool
}

func (r *reporter) report(err error) {
	var cfgErr *config.Error
	if errors.As(err, &cfgErr) {
		if r.configShown {
			return
		}
		r.configShown = true
	}
	fmt.Fprintf(os.Stderr, "jot: %v\n", err)
}

// loadConfig loads and caches the configuration. An empty path means
// the default location (JOT_CONFIG still overrides inside config.Load).
func (a *app) loadConfig(path string) (config.Config, error) {
	if a.cfg != nil {
		return *a.cfg, nil
	}
	if path == "" {
		path = defaultConfigPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	a.cfg = &cfg
	return cfg, nil
}

func defaultConfigPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "jot", "config.yaml")
	}
	return "jot.yaml"
}

// resolveClock returns the reference clock: the app's (wall time)
// unless --now pins a fixed instant.
func (a *app) resolveClock(nowFlag string) (clock.Clock, error) {
	if nowFlag == "" {
		return a.clk, nil
	}
	return clock.Parse(nowFlag)
}

// openNotes opens the configured note store backend.
func openNotes(cfg config.Config) (store.Store, error) {
	switch cfg.Store {
	case config.StoreSQLite:
		return store.NewSQLite(cfg.DBPath)
	default:
		return store.NewFS(cfg.NotesDir), nil
	}
}

// promptLine asks on stderr and reads one line from stdin. ok is false
// when the user cancels: EOF or an empty reply.
func (a *app) promptLine(msg string) (line string, ok bool) {
	fmt.Fprint(os.Stderr, msg)
	sc := bufio.NewScanner(a.stdin)
	if !sc.Scan() {
		return "", false
	}
	line = strings.TrimSpace(sc.Text())
	if line == "" {
		return "", false
	}
	return line, true
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
