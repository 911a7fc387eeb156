package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/jotcli/jot/pkg/config"
)

// starterTemplate is written by `jot init` when no template exists yet.
const starterTemplate = `# {title}

created: {timestamp}

`

func (a *app) cmdInit(args []string) int {
	flags := flag.NewFlagSet("init", flag.ContinueOnError)
	cfgPath := flags.String("config", "", "config file path")
	notesDir := flags.String("notes", "notes", "notes directory (the vault root)")
	force := flags.Bool("force", false, "overwrite an existing config")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	path := *cfgPath
	if path == "" {
		path = defaultConfigPath()
	}
	if _, err := os.Stat(path); err == nil && !*force {
		fmt.Fprintf(os.Stderr, "jot: config already exists at %s (use --force to overwrite)\n", path)
		return 1
	}

	absNotes, err := filepath.Abs(*notesDir)
	if err != nil {
		a.rep.report(err)
		return 1
	}
	if err := os.MkdirAll(absNotes, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "jot: cannot create notes directory: %v\n", err)
		return 1
	}

	tplPath := filepath.Join(filepath.Dir(path), "template.md")
	if _, err := os.Stat(tplPath); os.IsNotExist(err) || *force {
		if err := os.MkdirAll(filepath.Dir(tplPath), 0755); err != nil {
			fmt.Fprintf(os.Stderr, "jot: cannot create config directory: %v\n", err)
			return 1
		}
		if err := os.WriteFile(tplPath, []byte(starterTemplate), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "jot: cannot write template: %v\n", err)
			return 1
		}
	}

	cfg := config.Defaults()
	cfg.NotesDir = absNotes
	cfg.TemplatePath = tplPath

	data, err := yaml.Marshal(cfg)
	if err != nil {
		a.rep.report(err)
		return 1
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "jot: cannot write config: %v\n", err)
		return 1
	}

	fmt.Printf("initialized\n  config:   %s\n  template: %s\n  notes:    %s\n", path, tplPath, absNotes)
	return 0
}
