package domain

import "testing"

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trim spaces", input: "  hello  ", want: "hello"},
		{name: "lowercase", input: "Hello World", want: "hello world"},
		{name: "compress multiple spaces", input: "hello   world", want: "hello world"},
		{name: "diacritics preserved", input: "Café", want: "café"},
		{name: "hyphens preserved", input: "well-known", want: "well-known"},
		{name: "apostrophes preserved", input: "don't", want: "don't"},
		{name: "empty string", input: "", want: ""},
		{name: "only spaces", input: "   ", want: ""},
		{name: "mixed", input: "  Hello   World  ", want: "hello world"},
		{name: "tabs and spaces", input: "\t hello \t", want: "hello"},
		{name: "unicode diacritics", input: "Naïve Résumé", want: "naïve résumé"},
		{name: "single word", input: "ABANDON", want: "abandon"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeText(tt.input); got != tt.want {
				t.Errorf("NormalizeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDesiredWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "apple", want: "apple"},
		{name: "parentheses removed", input: "to run (fast), quickly", want: "to run fast"},
		{name: "cut at slash", input: "colour/color", want: "colour"},
		{name: "cut at hyphen", input: "well-known", want: "well"},
		{name: "cut at bracket", input: "cat [kæt]", want: "cat"},
		{name: "trim spaces", input: "  dog  ", want: "dog"},
		{name: "empty", input: "", want: ""},
		{name: "stop first", input: "!wow", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := DesiredWord(tt.input); got != tt.want {
				t.Errorf("DesiredWord(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSameAnswer(t *testing.T) {
	t.Parallel()

	if !SameAnswer("To Run (fast), quickly", "  to run   FAST ") {
		t.Error("expected answer to match")
	}
	if SameAnswer("apple", "apples") {
		t.Error("expected answer not to match")
	}
	if SameAnswer("!", "") {
		t.Error("empty headword must never match")
	}
}
