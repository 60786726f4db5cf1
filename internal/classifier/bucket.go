package classifier

import "github.com/heartmarshall/vocabtrainer/internal/domain"

// Buckets groups column indices by the alphabet their cells are written in.
// Each list is in left-to-right order.
type Buckets struct {
	English []int
	Russian []int
	Other   []int
}

// FirstPass buckets the columns of t. Rows with a missing cell are ignored.
// A column is English when at least MajorityShare of the rows pass the
// English check, otherwise Russian by the same rule, otherwise Other.
func FirstPass(t domain.Table, opts Options) Buckets {
	opts = opts.withDefaults()
	t = t.DropIncomplete()
	need := quorum(t.Rows(), opts.MajorityShare)

	var b Buckets
	for c := 0; c < t.Width(); c++ {
		texts := t.ColumnTexts(c)
		switch {
		case countPassing(texts, IsEnglish) >= need:
			b.English = append(b.English, c)
		case countPassing(texts, IsRussian) >= need:
			b.Russian = append(b.Russian, c)
		default:
			b.Other = append(b.Other, c)
		}
	}
	return b
}

func countPassing(texts []string, check func(string) bool) int {
	n := 0
	for _, s := range texts {
		if check(s) {
			n++
		}
	}
	return n
}
