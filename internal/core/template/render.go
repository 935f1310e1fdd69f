package template

import (
	"regexp"
	"strings"
)

var (
	placeholderRx   = regexp.MustCompile(`\{\{(\w+)\}\}`)
	excessNewlines  = regexp.MustCompile(`\n{3,}`)
	trailingSpaceRx = regexp.MustCompile(`[ \t]+\n`)
)

// Render substitutes {{name}} placeholders with values from data. A name
// absent from data substitutes to the empty string. Substitution is a single
// pass over the original template: a substituted value is never re-scanned,
// so user-supplied text cannot inject further template syntax.
func Render(tpl string, data map[string]string) string {
	return placeholderRx.ReplaceAllStringFunc(tpl, func(match string) string {
		name := match[2 : len(match)-2]
		return data[name]
	})
}

// Cleanup collapses runs of three or more newlines to exactly two and strips
// whitespace before each newline.
func Cleanup(text string) string {
	text = trailingSpaceRx.ReplaceAllString(text, "\n")
	text = excessNewlines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
