package note

import (
	"time"

	"github.com/pkg/errors"

	"github.com/jotcli/jot/pkg/store"
	"github.com/jotcli/jot/pkg/title"
	"github.com/jotcli/jot/pkg/token"
)

// CreateParams carries everything Create needs besides the store.
type CreateParams struct {
	Template  string    // template body, already loaded
	Input     string    // raw capture line: "<token> <title>"
	Now       time.Time // reference instant for date resolution
	Extension string    // note filename extension, e.g. ".md"
}

// Create runs the full capture pipeline against the given store:
// split, resolve, normalize, duplicate check, render, write.
//
// Failures are terminal and leave the store untouched: a *token.ParseError
// for an unresolvable token, ErrNoSeparator/ErrEmptyTitle for unusable
// input, ErrDuplicate when the key is taken, and wrapped store errors
// for I/O trouble. No partial note is ever written.
func Create(notes store.Store, p CreateParams) (*Note, error) {
	tok, rawTitle, err := SplitInput(p.Input)
	if err != nil {
		return nil, err
	}

	ts, err := token.Resolve(tok, p.Now)
	if err != nil {
		return nil, err
	}

	cleaned := title.Normalize(rawTitle)
	if cleaned == "" {
		return nil, ErrEmptyTitle
	}

	key := Key(ts, cleaned)
	path := key + p.Extension

	exists, err := notes.Exists(path)
	if err != nil {
		return nil, errors.Wrapf(err, "checking for %q", path)
	}
	if exists {
		return nil, errors.Wrapf(ErrDuplicate, "%q", path)
	}

	body := RenderTemplate(p.Template, cleaned, ts)
	if err := notes.Write(path, body); err != nil {
		return nil, errors.Wrapf(err, "writing %q", path)
	}

	return &Note{
		Key:       key,
		Path:      path,
		Title:     cleaned,
		Timestamp: ts,
		Body:      body,
	}, nil
}
