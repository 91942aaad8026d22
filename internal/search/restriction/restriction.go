// Package restriction extracts embedded restriction markers (atomic tokens
// like PUBLICATIONxINxGERxONLY) from free text before tokenization, so that
// normalization and tokenizing never see — and never split up — a marker.
package restriction

import "regexp"

// pattern matches one or more uppercase ASCII letters followed by at least
// one repetition of "x" + one or more uppercase ASCII letters.
var pattern = regexp.MustCompile(`[A-Z]+(?:x[A-Z]+)+`)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Result holds the markers extracted from a piece of text and the text with
// those markers removed.
type Result struct {
	Markers   []string
	CleanText string
}

// Extract scans text left-to-right for restriction markers, collecting every
// match (duplicates preserved, in order of appearance) and replacing each
// occurrence with a single space. Runs of whitespace in the remainder are
// then collapsed to one space and the result is trimmed. Extract is total:
// an empty string yields an empty Result.
func Extract(text string) Result {
	if text == "" {
		return Result{Markers: []string{}, CleanText: ""}
	}
	matches := pattern.FindAllString(text, -1)
	if matches == nil {
		matches = []string{}
	}
	cleaned := pattern.ReplaceAllString(text, " ")
	cleaned = whitespaceRun.ReplaceAllString(cleaned, " ")
	cleaned = trimSpace(cleaned)
	return Result{Markers: matches, CleanText: cleaned}
}

func trimSpace(s string) string {
	start := 0
	for start < len(s) && s[start] == ' ' {
		start++
	}
	end := len(s)
	for end > start && s[end-1] == ' ' {
		end--
	}
	return s[start:end]
}
