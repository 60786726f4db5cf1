package classifier

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Alphabet is a set of characters a script is written with.
type Alphabet map[rune]struct{}

// NewAlphabet builds an alphabet from the runes of chars.
func NewAlphabet(chars string) Alphabet {
	a := make(Alphabet, len(chars))
	for _, r := range chars {
		a[r] = struct{}{}
	}
	return a
}

// Default alphabets. The space is a member so multi-word phrases qualify.
var (
	English       = NewAlphabet("abcdefghijklmnopqrstuvwxyz ")
	Russian       = NewAlphabet("абвгдеёжзийклмнопрстуфхцчшщъыьэюя ")
	Transcription = NewAlphabet("[]'ˌ:ʌæʃəɪɔʤŋ")
)

// Contains reports whether strictly more than half of the runes of word
// belong to the alphabet. The empty string is never a member.
func (a Alphabet) Contains(word string) bool {
	total, hits := 0, 0
	for _, r := range word {
		total++
		if _, ok := a[r]; ok {
			hits++
		}
	}
	return total > 0 && hits*2 > total
}

// IsEnglish reports whether a cell is written mostly in English letters.
func IsEnglish(cell string) bool { return English.Contains(coerce(cell)) }

// IsRussian reports whether a cell is written mostly in Russian letters.
func IsRussian(cell string) bool { return Russian.Contains(coerce(cell)) }

// IsTranscription reports whether a cell is written mostly in phonetic symbols.
func IsTranscription(cell string) bool { return Transcription.Contains(coerce(cell)) }

func coerce(cell string) string {
	return strings.ToLower(norm.NFC.String(cell))
}
