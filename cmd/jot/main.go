// Command jot is a quick-capture note CLI: one line in, one dated note out.
//
// The capture line is an abbreviated date/time token followed by a
// title ("15_14-30 Standup notes"). The token resolves against the
// current time, the title is normalized into a filename-safe form, and
// the note is written from a template into the configured vault.
package main

import (
	"fmt"
	"log/slog"
	"os"
)

const version = "1.0.0"

func main() {
	setupLogging()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "--help", "-h", "help":
		printUsage()
		return
	case "--version", "-v", "version":
		fmt.Println("jot", version)
		return
	}

	a := newApp()
	switch os.Args[1] {
	case "new":
		os.Exit(a.cmdNew(os.Args[2:]))
	case "resolve":
		os.Exit(a.cmdResolve(os.Args[2:]))
	case "title":
		os.Exit(a.cmdTitle(os.Args[2:]))
	case "config":
		os.Exit(a.cmdConfig(os.Args[2:]))
	case "init":
		os.Exit(a.cmdInit(os.Args[2:]))
	default:
		fmt.Fprintf(os.Stderr, "jot: unknown command %q\n", os.Args[1])
		fmt.Fprintln(os.Stderr, "Run 'jot --help' for usage.")
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`jot — quick-capture note CLI

One line in, one dated note out. The line starts with an abbreviated
date/time token; the rest is the title.

Usage:
  jot <command> [flags]

Setup:
  init [--notes DIR]        Write a starter config and template
  config                    Show the effective configuration

Commands:
  new [text...]             Capture a note (prompts when no text given)
  resolve <token>           Resolve a date token, print the timestamp
  title <text...>           Normalize a title, print the result

Tokens:
  15                        15:00 today (tomorrow if >30 min past)
  15:04  15-04              a time today or tomorrow
  2_15-04  2_15:04  2_15    a day of this month or the next

Environment:
  JOT_CONFIG    Config file path (default: <user config dir>/jot/config.yaml)
  JOT_LOG       Set to "debug" for verbose logging

Commands accept --json for machine-readable output and --now to pin
the reference instant (deterministic captures).

Exit codes:
  0  success
  1  error
  2  duplicate note (existing note untouched)
`)
}

// setupLogging routes slog to stderr; JOT_LOG=debug raises the level.
func setupLogging() {
	level := slog.LevelInfo
	if os.Getenv("JOT_LOG") == "debug" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
