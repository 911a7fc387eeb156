// Package token resolves abbreviated date/time tokens against a reference
// instant.
//
// A token names a moment in the near future with as few keystrokes as
// possible: "15" is three o'clock in the afternoon? No — "15" is 15:00
// today (or tomorrow, if 15:00 is already more than 30 minutes gone).
// "5_16-00" is 16:00 on the 5th — of this month if the 5th is still
// ahead, of next month otherwise. Missing fields are always filled in
// from the reference instant so that the result is never in the past.
//
// Resolution is deterministic: the same token and the same reference
// instant always produce the same timestamp. All arithmetic is naive
// local time; the result carries the reference instant's location.
package token

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// gracePeriod is how far in the past a time-only token may point and
// still resolve to today. "09:30" typed at 10:00 means today; "09:00"
// typed at 10:00 means tomorrow.
const gracePeriod = 30 * time.Minute

// ParseError reports a token that could not be resolved.
type ParseError struct {
	Token  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot resolve %q: %s", e.Token, e.Reason)
}

// format is one entry in the ordered dispatch table. Shapes are matched
// against the zero-padded token; the first match wins and no further
// entries are tried.
type format struct {
	name   string
	shape  *regexp.Regexp
	hasDay bool
	hasMin bool
}

// formats in priority order: day-bearing shapes first, then time-only,
// most specific first within each group.
var formats = []format{
	{"DD_HH-mm", regexp.MustCompile(`^(\d{2})_(\d{2})-(\d{2})$`), true, true},
	{"DD_HH:mm", regexp.MustCompile(`^(\d{2})_(\d{2}):(\d{2})$`), true, true},
	{"DD_HH", regexp.MustCompile(`^(\d{2})_(\d{2})$`), true, false},
	{"HH:mm", regexp.MustCompile(`^(\d{2}):(\d{2})$`), false, true},
	{"HH-mm", regexp.MustCompile(`^(\d{2})-(\d{2})$`), false, true},
	{"HH", regexp.MustCompile(`^(\d{2})$`), false, false},
}

// Resolve interprets tok relative to now and returns the named instant.
// The result is always >= now minus the 30-minute grace period; a token
// whose literal reading lands further in the past rolls forward to the
// next day (time-only shapes) or the next month holding that day
// (day-bearing shapes).
func Resolve(tok string, now time.Time) (time.Time, error) {
	trimmed := strings.TrimSpace(tok)
	if trimmed == "" {
		return time.Time{}, &ParseError{Token: tok, Reason: "empty token"}
	}

	padded, err := canonicalize(trimmed)
	if err != nil {
		return time.Time{}, err
	}

	for _, f := range formats {
		m := f.shape.FindStringSubmatch(padded)
		if m == nil {
			continue
		}
		var day, hour, min int
		i := 1
		if f.hasDay {
			day = atoi2(m[i])
			i++
		}
		hour = atoi2(m[i])
		i++
		if f.hasMin {
			min = atoi2(m[i])
		}
		if hour > 23 || min > 59 {
			return time.Time{}, &ParseError{Token: trimmed, Reason: "unrecognized format"}
		}
		if f.hasDay {
			return resolveDay(trimmed, day, hour, min, now)
		}
		return resolveTime(hour, min, now), nil
	}
	return time.Time{}, &ParseError{Token: trimmed, Reason: "unrecognized format"}
}

// canonicalize splits tok into its day and time parts, left-zero-pads
// every numeric sub-part to two digits, and rejoins with the original
// separators. "5_9:3" becomes "05_09:03". Non-numeric garbage passes
// through unchanged and fails the shape match later.
func canonicalize(tok string) (string, error) {
	dayPart, timePart := "", tok
	if i := strings.IndexByte(tok, '_'); i >= 0 {
		dayPart, timePart = tok[:i], tok[i+1:]
		if dayPart == "" || timePart == "" {
			return "", &ParseError{Token: tok, Reason: "incomplete token"}
		}
	}
	var b strings.Builder
	if dayPart != "" {
		b.WriteString(pad2(dayPart))
		b.WriteByte('_')
	}
	b.WriteString(padTime(timePart))
	return b.String(), nil
}

// padTime pads the hour and minute around the first ":" or "-"
// separator, preserving whichever separator was used.
func padTime(tp string) string {
	for _, sep := range []byte{':', '-'} {
		if i := strings.IndexByte(tp, sep); i >= 0 {
			return pad2(tp[:i]) + string(sep) + pad2(tp[i+1:])
		}
	}
	return pad2(tp)
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// atoi2 converts a matched two-digit field. The shape regexp guarantees
// digits, so the error is impossible.
func atoi2(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// resolveDay builds the candidate from the parsed day-of-month and the
// reference instant's year and month. A day that has already passed
// rolls to the next month; a month too short to hold the day is skipped.
// The day-of-month is validated against real month lengths rather than
// trusting time.Date overflow normalization, which would silently shift
// "31" into the 1st of the month after.
func resolveDay(tok string, day, hour, min int, now time.Time) (time.Time, error) {
	if day < 1 || day > daysIn(now.Year(), now.Month()) {
		return time.Time{}, &ParseError{Token: tok, Reason: "unrecognized format"}
	}
	year, month := now.Year(), now.Month()
	for i := 0; i < 13; i++ {
		if day <= daysIn(year, month) {
			cand := time.Date(year, month, day, hour, min, 0, 0, now.Location())
			if !cand.Before(now) {
				return cand, nil
			}
		}
		month++
		if month > time.December {
			month = time.January
			year++
		}
	}
	// Unreachable: every day 1-31 occurs within the next 13 months.
	return time.Time{}, &ParseError{Token: tok, Reason: "unrecognized format"}
}

// resolveTime builds the candidate on the reference instant's date. If
// the named time is more than gracePeriod in the past, it means
// tomorrow; exactly gracePeriod in the past still means today.
func resolveTime(hour, min int, now time.Time) time.Time {
	cand := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
	if cand.Before(now.Add(-gracePeriod)) {
		cand = cand.AddDate(0, 0, 1)
	}
	return cand
}

// daysIn returns the number of days in the given month.
func daysIn(year int, month time.Month) int {
	switch month {
	case time.April, time.June, time.September, time.November:
		return 30
	case time.February:
		if isLeap(year) {
			return 29
		}
		return 28
	default:
		return 31
	}
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
