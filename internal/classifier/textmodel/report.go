package textmodel

import (
	"fmt"
	"strings"
)

// ClassMetrics are the held-out scores of one label.
type ClassMetrics struct {
	Label     int
	Precision float64
	Recall    float64
	F1        float64
	Support   int
}

// Report summarises how a model did on held-out samples.
type Report struct {
	Classes []ClassMetrics
	// Confusion[expected][predicted] counts samples.
	Confusion [2][2]int
	Accuracy  float64
	Samples   int
}

// Evaluate compares expected labels against predictions.
func Evaluate(expected, predicted []int) *Report {
	r := &Report{Samples: len(expected)}
	correct := 0
	for i, want := range expected {
		got := predicted[i]
		if want < 0 || want > 1 || got < 0 || got > 1 {
			continue
		}
		r.Confusion[want][got]++
		if want == got {
			correct++
		}
	}
	if r.Samples > 0 {
		r.Accuracy = float64(correct) / float64(r.Samples)
	}

	for label := 0; label < 2; label++ {
		tp := r.Confusion[label][label]
		fp := r.Confusion[1-label][label]
		fn := r.Confusion[label][1-label]
		cm := ClassMetrics{
			Label:     label,
			Precision: ratio(tp, tp+fp),
			Recall:    ratio(tp, tp+fn),
			Support:   tp + fn,
		}
		if cm.Precision+cm.Recall > 0 {
			cm.F1 = 2 * cm.Precision * cm.Recall / (cm.Precision + cm.Recall)
		}
		r.Classes = append(r.Classes, cm)
	}
	return r
}

func ratio(a, b int) float64 {
	if b == 0 {
		return 0
	}
	return float64(a) / float64(b)
}

func (r *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%8s %10s %10s %10s %10s\n", "label", "precision", "recall", "f1-score", "support")
	for _, c := range r.Classes {
		fmt.Fprintf(&b, "%8d %10.2f %10.2f %10.2f %10d\n", c.Label, c.Precision, c.Recall, c.F1, c.Support)
	}
	fmt.Fprintf(&b, "%8s %32.2f %10d\n", "accuracy", r.Accuracy, r.Samples)
	fmt.Fprintf(&b, "confusion matrix:\n[[%d %d]\n [%d %d]]\n",
		r.Confusion[0][0], r.Confusion[0][1], r.Confusion[1][0], r.Confusion[1][1])
	return b.String()
}
