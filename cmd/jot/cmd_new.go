package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/jotcli/jot/pkg/note"
	"github.com/jotcli/jot/pkg/store"
)

func (a *app) cmdNew(args []string) int {
	flags := flag.NewFlagSet("new", flag.ContinueOnError)
	cfgPath := flags.String("config", "", "config file path")
	nowFlag := flags.String("now", "", "reference instant override (2006-01-02T15:04)")
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	cfg, err := a.loadConfig(*cfgPath)
	if err != nil {
		a.rep.report(err)
		return 1
	}

	clk, err := a.resolveClock(*nowFlag)
	if err != nil {
		a.rep.report(err)
		return 1
	}

	input := strings.TrimSpace(strings.Join(flags.Args(), " "))
	if input == "" {
		line, ok := a.promptLine(`New note (e.g. "15_14-30 Standup notes"): `)
		if !ok {
			fmt.Fprintln(os.Stderr, "jot: cancelled")
			return 1
		}
		input = line
	}

	// Template is read before the store opens: an unreadable template
	// aborts the capture with nothing written anywhere.
	tpl, err := store.NewFS("").Read(cfg.TemplatePath)
	if err != nil {
		a.rep.report(err)
		return 1
	}

	notes, err := openNotes(cfg)
	if err != nil {
		a.rep.report(err)
		return 1
	}
	defer notes.Close()

	slog.Debug("capturing", "input", input, "store", cfg.Store)

	n, err := note.Create(notes, note.CreateParams{
		Template:  tpl,
		Input:     input,
		Now:       clk.Now(),
		Extension: cfg.Extension,
	})
	if err != nil {
		a.rep.report(err)
		if errors.Is(err, note.ErrDuplicate) {
			return 2
		}
		return 1
	}

	if *jsonOut {
		printJSON(n)
	} else {
		fmt.Printf("created %s\n", n.Key)
	}
	return 0
}
