package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jotcli/jot/pkg/note"
	"github.com/jotcli/jot/pkg/token"
)

func (a *app) cmdResolve(args []string) int {
	flags := flag.NewFlagSet("resolve", flag.ContinueOnError)
	nowFlag := flags.String("now", "", "reference instant override (2006-01-02T15:04)")
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: jot resolve <token> [--now TS] [--json]")
		return 1
	}

	clk, err := a.resolveClock(*nowFlag)
	if err != nil {
		a.rep.report(err)
		return 1
	}

	tok := flags.Arg(0)
	now := clk.Now()
	ts, err := token.Resolve(tok, now)
	if err != nil {
		a.rep.report(err)
		return 1
	}

	if *jsonOut {
		printJSON(map[string]interface{}{
			"token":    tok,
			"now":      note.Timestamp(now),
			"resolved": note.Timestamp(ts),
		})
	} else {
		fmt.Println(note.Timestamp(ts))
	}
	return 0
}
