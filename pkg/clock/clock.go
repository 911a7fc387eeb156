// Package clock supplies the reference instant that date resolution
// disambiguates against.
//
// Token resolution is a pure function of (token, reference instant), so
// the instant is injected rather than read from the wall inside the
// resolver. Production code uses Wall; tests and the --now flag use
// Fixed to make every resolution reproducible.
package clock

import (
	"time"

	"github.com/pkg/errors"
)

// Clock yields the reference instant for a capture.
type Clock interface {
	Now() time.Time
}

// Wall reads the system clock.
type Wall struct{}

func (Wall) Now() time.Time { return time.Now() }

// Fixed always returns the same instant. Used by tests and by the
// --now flag for deterministic captures.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time { return f.T }

// nowLayouts are the accepted --now formats, most precise first.
// All are naive local time.
var nowLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// Parse reads a --now override into a Fixed clock.
func Parse(s string) (Fixed, error) {
	for _, layout := range nowLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return Fixed{T: t}, nil
		}
	}
	return Fixed{}, errors.Errorf("cannot parse %q as a timestamp (want e.g. 2006-01-02T15:04)", s)
}
