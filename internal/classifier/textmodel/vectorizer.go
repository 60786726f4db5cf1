// Package textmodel is a small bag-of-words text classifier: n-gram counts
// reweighted by TF-IDF and fed to a linear model fitted with stochastic
// gradient descent on the hinge loss.
package textmodel

import (
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// shapePrefix marks features derived from the token count rather than the
// tokens themselves. It cannot collide with a token: '#' is never matched.
const shapePrefix = "#len:"

// feature is one non-zero entry of a sparse vector.
type feature struct {
	index int
	value float64
}

type sparse []feature

// Vectorizer maps texts to sparse term-count vectors over a fixed vocabulary.
type Vectorizer struct {
	ngramMax int
	shape    bool
	vocab    map[string]int
	terms    []string
}

func newVectorizer(ngramMax int, shape bool) *Vectorizer {
	return &Vectorizer{ngramMax: max(1, ngramMax), shape: shape, vocab: map[string]int{}}
}

// analyze splits text into the terms counted as features.
func (v *Vectorizer) analyze(text string) []string {
	text = strings.ToLower(norm.NFKC.String(text))
	tokens := tokenPattern.FindAllString(text, -1)

	terms := make([]string, 0, len(tokens)*v.ngramMax+1)
	for n := 1; n <= v.ngramMax; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			terms = append(terms, strings.Join(tokens[i:i+n], " "))
		}
	}
	if v.shape {
		terms = append(terms, shapePrefix+lengthBucket(len(tokens)))
	}
	return terms
}

func lengthBucket(n int) string {
	switch {
	case n == 0:
		return "0"
	case n == 1:
		return "1"
	case n == 2:
		return "2"
	case n == 3:
		return "3"
	}
	return "4+"
}

// fit builds the vocabulary from texts. Terms are indexed in sorted order so
// that equal inputs give equal models.
func (v *Vectorizer) fit(texts []string) {
	seen := map[string]struct{}{}
	for _, t := range texts {
		for _, term := range v.analyze(t) {
			seen[term] = struct{}{}
		}
	}
	v.terms = make([]string, 0, len(seen))
	for term := range seen {
		v.terms = append(v.terms, term)
	}
	slices.Sort(v.terms)
	v.index()
}

func (v *Vectorizer) index() {
	v.vocab = make(map[string]int, len(v.terms))
	for i, term := range v.terms {
		v.vocab[term] = i
	}
}

// transform counts the known terms of text. Unknown terms are ignored.
// Entries are sorted by index.
func (v *Vectorizer) transform(text string) sparse {
	counts := map[int]float64{}
	for _, term := range v.analyze(text) {
		if i, ok := v.vocab[term]; ok {
			counts[i]++
		}
	}
	vec := make(sparse, 0, len(counts))
	for i, c := range counts {
		vec = append(vec, feature{index: i, value: c})
	}
	slices.SortFunc(vec, func(a, b feature) int { return a.index - b.index })
	return vec
}

// Size returns the number of terms in the vocabulary.
func (v *Vectorizer) Size() int { return len(v.terms) }
