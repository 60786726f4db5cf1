package textmodel

import (
	"fmt"
	"time"

	"github.com/heartmarshall/vocabtrainer/internal/domain"
)

// Options configures training.
type Options struct {
	Alpha    float64 // L2 regularisation strength
	Epochs   int
	NgramMax int
	Seed     uint64
	// ShapeFeatures adds one feature per sample describing how many tokens
	// it has, which separates single words from sentences.
	ShapeFeatures bool
	// Evaluate scores the held-out half and returns a Report.
	Evaluate bool
}

// DefaultOptions returns the training parameters used by the CLI.
func DefaultOptions() Options {
	return Options{
		Alpha:         1e-4,
		Epochs:        20,
		NgramMax:      1,
		Seed:          42,
		ShapeFeatures: true,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Alpha <= 0 {
		o.Alpha = d.Alpha
	}
	if o.Epochs <= 0 {
		o.Epochs = d.Epochs
	}
	if o.NgramMax <= 0 {
		o.NgramMax = d.NgramMax
	}
	return o
}

// Model is a trained binary text classifier. Label 0 is a word, label 1 an
// example sentence, but the model itself is agnostic.
type Model struct {
	vec       *Vectorizer
	weights   tfidf
	clf       linear
	trainedAt time.Time
	samples   int
}

// Train fits a model on the first half of texts and holds the second half
// out. When opts.Evaluate is set the held-out half is scored into a Report.
func Train(texts []string, labels []int, opts Options) (*Model, *Report, error) {
	opts = opts.withDefaults()
	if len(texts) != len(labels) {
		return nil, nil, domain.NewValidationError("labels",
			fmt.Sprintf("%d labels for %d texts", len(labels), len(texts)))
	}
	half := len(texts) / 2
	if half == 0 {
		return nil, nil, domain.NewValidationError("texts", "at least two samples required")
	}
	seen := [2]bool{}
	for _, l := range labels {
		if l != 0 && l != 1 {
			return nil, nil, domain.NewValidationError("labels", fmt.Sprintf("label %d is not 0 or 1", l))
		}
	}
	for _, l := range labels[:half] {
		seen[l] = true
	}
	if !seen[0] || !seen[1] {
		return nil, nil, domain.NewValidationError("labels", "training half must contain both labels")
	}

	trainTexts, trainLabels := texts[:half], labels[:half]

	vec := newVectorizer(opts.NgramMax, opts.ShapeFeatures)
	vec.fit(trainTexts)
	if vec.Size() == 0 {
		return nil, nil, domain.NewValidationError("texts", "no features found in training texts")
	}

	docs := make([]sparse, len(trainTexts))
	for i, t := range trainTexts {
		docs[i] = vec.transform(t)
	}
	w := fitTFIDF(docs, vec.Size())
	for i := range docs {
		docs[i] = w.apply(docs[i])
	}

	m := &Model{
		vec:       vec,
		weights:   w,
		clf:       fitSGD(docs, trainLabels, vec.Size(), sgdParams{alpha: opts.Alpha, epochs: opts.Epochs, seed: opts.Seed}),
		trainedAt: time.Now().UTC(),
		samples:   half,
	}

	if !opts.Evaluate {
		return m, nil, nil
	}
	return m, Evaluate(labels[half:], m.Predict(texts[half:])), nil
}

func (m *Model) features(text string) sparse {
	return m.weights.apply(m.vec.transform(text))
}

// Decision returns the signed distance of each text from the separating
// hyperplane. Positive means label 1.
func (m *Model) Decision(texts []string) []float64 {
	out := make([]float64, len(texts))
	for i, t := range texts {
		out[i] = m.clf.decision(m.features(t))
	}
	return out
}

// Predict returns the label of each text.
func (m *Model) Predict(texts []string) []int {
	out := make([]int, len(texts))
	for i, d := range m.Decision(texts) {
		if d > 0 {
			out[i] = 1
		}
	}
	return out
}

// MeanLabel returns the mean predicted label of texts, 0 for no texts.
func (m *Model) MeanLabel(texts []string) float64 {
	if len(texts) == 0 {
		return 0
	}
	sum := 0
	for _, l := range m.Predict(texts) {
		sum += l
	}
	return float64(sum) / float64(len(texts))
}

// TrainedAt returns when the model was fitted.
func (m *Model) TrainedAt() time.Time { return m.trainedAt }

// Samples returns the number of samples the model was fitted on.
func (m *Model) Samples() int { return m.samples }

// Vocabulary returns the number of known terms.
func (m *Model) Vocabulary() int { return m.vec.Size() }
