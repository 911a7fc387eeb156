// Package note turns a one-line capture string into a note: it splits
// the line into token and title, resolves and normalizes them, formats
// the storage key, renders the template, and writes the result through
// a content store. The date and title logic lives in pkg/token and
// pkg/title; this package is the glue between them and the store.
package note

import (
	"strings"
	"time"
	"unicode"

	"github.com/pkg/errors"
)

// keyTimeLayout is the timestamp half of a storage key:
// 4-digit year, zero-padded month/day/hour/minute.
const keyTimeLayout = "2006-01-02_15-04"

// Placeholders replaced in note templates.
const (
	placeholderTitle     = "{title}"
	placeholderTimestamp = "{timestamp}"
)

var (
	// ErrNoSeparator means the capture line had no whitespace between
	// the date token and the title.
	ErrNoSeparator = errors.New("input needs a date token and a title, separated by a space")

	// ErrEmptyTitle means the title normalized down to nothing.
	ErrEmptyTitle = errors.New("title is empty after normalization")

	// ErrDuplicate means a note with the generated key already exists.
	// The existing note is never overwritten.
	ErrDuplicate = errors.New("note already exists")
)

// Note is the outcome of a successful capture.
type Note struct {
	Key       string    `json:"key"`
	Path      string    `json:"path"`
	Title     string    `json:"title"`
	Timestamp time.Time `json:"timestamp"`
	Body      string    `json:"-"`
}

// Timestamp formats ts the way storage keys and templates expect it,
// e.g. "2024-03-30_10-00".
func Timestamp(ts time.Time) string {
	return ts.Format(keyTimeLayout)
}

// Key joins a resolved timestamp and a normalized title into the
// storage key: "2024-03-30_10-00 - Meeting with team".
func Key(ts time.Time, title string) string {
	return Timestamp(ts) + " - " + title
}

// SplitInput separates a capture line into the date token and the raw
// title at the first whitespace run. A line with no whitespace has no
// title and fails with ErrNoSeparator.
func SplitInput(raw string) (tok, title string, err error) {
	trimmed := strings.TrimSpace(raw)
	i := strings.IndexFunc(trimmed, unicode.IsSpace)
	if i < 0 {
		return "", "", ErrNoSeparator
	}
	return trimmed[:i], strings.TrimSpace(trimmed[i:]), nil
}

// RenderTemplate substitutes every occurrence of the {title} and
// {timestamp} placeholders in the template body.
func RenderTemplate(tpl, title string, ts time.Time) string {
	out := strings.ReplaceAll(tpl, placeholderTitle, title)
	return strings.ReplaceAll(out, placeholderTimestamp, Timestamp(ts))
}
