package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/jotcli/jot/pkg/title"
)

func (a *app) cmdTitle(args []string) int {
	flags := flag.NewFlagSet("title", flag.ContinueOnError)
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: jot title <text...> [--json]")
		return 1
	}

	raw := strings.Join(flags.Args(), " ")
	cleaned := title.Normalize(raw)

	if *jsonOut {
		printJSON(map[string]string{"raw": raw, "title": cleaned})
	} else {
		fmt.Println(cleaned)
	}
	return 0
}
