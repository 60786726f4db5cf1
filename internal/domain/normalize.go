package domain

import (
	"strings"
)

// NormalizeText prepares text for storage and comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses runs of whitespace into one space
//
// Diacritics, hyphens, and apostrophes are preserved.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' || r == '\t' {
			if prevSpace {
				continue
			}
			prevSpace = true
			r = ' '
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// headwordStops end the part of a cell that a learner is expected to type.
const headwordStops = "-\n,.;:/\t_[{]}*+^#$!?"

// DesiredWord reduces a headword cell to the answer expected on a flashcard:
// parentheses are removed, the text is cut at the first stop character and
// surrounding spaces are trimmed. "to run (fast), quickly" gives "to run fast".
func DesiredWord(text string) string {
	s := strings.NewReplacer("(", "", ")", "").Replace(text)
	if i := strings.IndexAny(s, headwordStops); i >= 0 {
		s = s[:i]
	}
	return strings.Trim(s, " ")
}

// SameAnswer reports whether typed matches the expected headword,
// ignoring case and extra whitespace.
func SameAnswer(headword, typed string) bool {
	want := NormalizeText(DesiredWord(headword))
	return want != "" && want == NormalizeText(typed)
}
