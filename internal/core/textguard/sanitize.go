package textguard

import (
	"regexp"
	"strings"
)

// Salutation the cleaned body must open with. The document renderer owns the
// closing formula, so any closing the revision call added is stripped here.
const CanonicalSalutation = "Madame, Monsieur,"

type replaceRule struct {
	name string
	rx   *regexp.Regexp
	repl string
}

// Ordered regex rules applied before the line-level pass. Order matters:
// subject lines are removed while their markdown markers are still present,
// then the markup itself is flattened.
var replaceRules = []replaceRule{
	{"crlf", regexp.MustCompile(`\r\n`), "\n"},
	{"subject_line", regexp.MustCompile(`(?im)^\s*(?:\*\*|__|#+|\*)?\s*objet\s*[:\-–]\s*.*$`), ""},
	{"markdown_bold", regexp.MustCompile(`\*\*(.*?)\*\*`), "$1"},
	{"markdown_underline", regexp.MustCompile(`__(.*?)__`), "$1"},
	{"markdown_heading", regexp.MustCompile(`(?m)^#{1,6}\s*`), ""},
	{"bullet", regexp.MustCompile(`(?m)^\s*(?:[-•*]\s+|\d+\)\s+|\d+\.\s+)`), ""},
}

var signoffRules = []replaceRule{
	{"agreer", regexp.MustCompile(`(?im)je vous prie d['’]agréer[^.\n]*\.\s*$`), ""},
	{"veuillez", regexp.MustCompile(`(?im)veuillez agréer[^.\n]*\.\s*$`), ""},
	{"cordialement", regexp.MustCompile(`(?im)^\s*(?:bien )?cordialement\.?\s*$`), ""},
	{"salutations", regexp.MustCompile(`(?im)sinc[èe]res?\s+salutations\.?\s*$`), ""},
}

// Heading-like line: short, starts with a capital, no terminal punctuation.
// This is heuristic; a genuine short sentence without terminal punctuation
// can be misclassified, which is why the rule is isolated and unit-tested.
var (
	probableHeadingRx = regexp.MustCompile(`^\s*(?:\*\*|__|#+|\*)?\s*[A-ZÀÂÄÇÉÈÊËÎÏÔÖÙÛÜŸ0-9][A-Za-zÀ-ÖØ-öø-ÿ0-9’' \-]{1,60}:?(?:\*\*|__)?\s*$`)
	terminalPunctRx   = regexp.MustCompile(`[.;!?]$`)
	greetingRx        = regexp.MustCompile(`(?i)^(?:madame|monsieur)`)
	greetingLineRx    = regexp.MustCompile(`(?i)^madame, monsieur[, ]*$`)
)

var (
	euroSlashRx     = regexp.MustCompile(`(\d+)\s*/\s*€`)
	euroThousandsRx = regexp.MustCompile(`(\d)/(\d{3})(\s*€)`)
	euroSpacingRx   = regexp.MustCompile(`(\d)\s*€`)
	blankRunRx      = regexp.MustCompile(`\n{3,}`)
	lineTrailRx     = regexp.MustCompile(`[ \t]+\n`)
)

// Sanitize cleans text returned by the revision call (after Unprotect): it
// removes subject lines, markdown artifacts, heading-like standalone lines
// and duplicate sign-offs, normalizes euro spacing, and guarantees the body
// opens with the canonical salutation. It never fails; unexpected content
// degrades to best-effort cleanup.
func Sanitize(raw string) string {
	text := raw
	for _, rule := range replaceRules {
		text = rule.rx.ReplaceAllString(text, rule.repl)
	}

	text = dropHeadingLines(text)

	for _, rule := range signoffRules {
		text = rule.rx.ReplaceAllString(text, rule.repl)
	}

	text = lineTrailRx.ReplaceAllString(text, "\n")
	text = blankRunRx.ReplaceAllString(text, "\n\n")
	text = strings.TrimSpace(text)

	if !greetingRx.MatchString(text) {
		text = CanonicalSalutation + "\n\n" + text
	}

	return normalizeEuro(text)
}

// dropHeadingLines removes probable section-title lines while preserving the
// greeting line and paragraph breaks.
func dropHeadingLines(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			kept = append(kept, "")
			continue
		}
		headingLike := probableHeadingRx.MatchString(trimmed) &&
			!terminalPunctRx.MatchString(trimmed) &&
			len([]rune(trimmed)) <= 60 &&
			!greetingLineRx.MatchString(trimmed)
		if headingLike {
			continue
		}
		kept = append(kept, trimmed)
	}
	return strings.Join(kept, "\n")
}

// normalizeEuro fixes thousands-separator slashes and guarantees a single
// space between digit and euro sign.
func normalizeEuro(text string) string {
	text = euroSlashRx.ReplaceAllString(text, "$1 €")
	text = euroThousandsRx.ReplaceAllString(text, "$1 $2$3")
	return euroSpacingRx.ReplaceAllString(text, "$1 €")
}
