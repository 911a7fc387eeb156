// Package title normalizes free-form note titles into clean,
// filename-safe display strings.
//
// The output alphabet is ASCII letters, digits, spaces, and the
// canonical " - " separator. Any run of punctuation between two words
// collapses to exactly one separator; plain word-separating spaces stay
// spaces. Normalization is total (every input yields some output, the
// empty string included) and idempotent.
package title

import (
	"regexp"
	"strings"
	"unicode"
)

// The pipeline is order-sensitive: each expression operates on the
// previous one's output. Reordering changes observable behavior.
var (
	// One leading reply/forward prefix, removed once.
	replyPrefix = regexp.MustCompile(`(?i)^\s*(?:fwd|fw|re)\s*:\s*`)
	// Everything outside the kept alphabet becomes a hyphen.
	disallowed = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
	spaceRun   = regexp.MustCompile(`\s+`)
	hyphenRun  = regexp.MustCompile(`-{2,}`)
	// A lone hyphen touching whitespace on either side is a separator.
	looseHyphen = regexp.MustCompile(`\s+-\s*|\s*-\s+`)
	// Adjacent separators that earlier steps produced independently.
	doubledSep = regexp.MustCompile(`-(?:\s+-)+`)
)

// Normalize rewrites raw into canonical "word - word" form.
//
// A single unspaced hyphen between two alphanumerics ("cost-benefit")
// is kept as-is: it reads as a compound word, not as punctuation.
func Normalize(raw string) string {
	s := replyPrefix.ReplaceAllString(raw, "")
	s = disallowed.ReplaceAllString(s, "-")
	s = strings.TrimFunc(s, func(r rune) bool {
		return r == '-' || unicode.IsSpace(r)
	})
	s = spaceRun.ReplaceAllString(s, " ")
	s = hyphenRun.ReplaceAllString(s, " - ")
	s = looseHyphen.ReplaceAllString(s, " - ")
	s = doubledSep.ReplaceAllString(s, " - ")
	s = spaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
