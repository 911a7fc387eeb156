package main

import (
	"flag"
	"fmt"
)

func (a *app) cmdConfig(args []string) int {
	flags := flag.NewFlagSet("config", flag.ContinueOnError)
	cfgPath := flags.String("config", "", "config file path")
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	cfg, err := a.loadConfig(*cfgPath)
	if err != nil {
		a.rep.report(err)
		return 1
	}

	if *jsonOut {
		printJSON(cfg)
	} else {
		fmt.Printf("notes_dir:     %s\n", cfg.NotesDir)
		fmt.Printf("template_path: %s\n", cfg.TemplatePath)
		fmt.Printf("store:         %s\n", cfg.Store)
		fmt.Printf("db_path:       %s\n", cfg.DBPath)
		fmt.Printf("extension:     %s\n", cfg.Extension)
	}
	return 0
}
