// Package textnorm canonicalizes free text so comparisons between the
// metadata export and METS values are robust to punctuation and whitespace
// noise introduced by export tooling.
package textnorm

import (
	"regexp"
	"strings"
)

var (
	newlineRe    = regexp.MustCompile(`\n`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Normalize collapses whitespace and strips incidental punctuation.
// An empty input stays empty.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	text = newlineRe.ReplaceAllString(text, " ")
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = strings.ReplaceAll(text, "“", "\"")
	text = strings.ReplaceAll(text, "”", "\"")
	text = strings.ReplaceAll(text, "\"", "")
	text = strings.ReplaceAll(text, "'", "")
	text = strings.ReplaceAll(text, "-", "")
	text = strings.ReplaceAll(text, ";", "")
	text = strings.ReplaceAll(text, "…", "")
	text = strings.ReplaceAll(text, "&", "and")
	return strings.TrimSpace(text)
}
