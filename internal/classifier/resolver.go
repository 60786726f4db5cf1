package classifier

import (
	"errors"
	"fmt"

	"github.com/heartmarshall/vocabtrainer/internal/classifier/textmodel"
	"github.com/heartmarshall/vocabtrainer/internal/domain"
)

// Scorer rates a column's cells: the mean label, 0 meaning all words and
// 1 meaning all example sentences.
type Scorer interface {
	MeanLabel(texts []string) float64
}

// Resolver maps the columns of a table to roles.
type Resolver struct {
	english Scorer
	russian Scorer
	opts    Options
}

// NewResolver creates a resolver from one scorer per language.
func NewResolver(english, russian Scorer, opts Options) *Resolver {
	return &Resolver{english: english, russian: russian, opts: opts.withDefaults()}
}

// LoadResolver loads both models through cache.
func LoadResolver(cache *textmodel.Cache, englishPath, russianPath string, opts Options) (*Resolver, error) {
	eng, err := cache.Get(englishPath)
	if err != nil {
		return nil, bucketLoadError("english", englishPath, err)
	}
	rus, err := cache.Get(russianPath)
	if err != nil {
		return nil, bucketLoadError("russian", russianPath, err)
	}
	return NewResolver(eng, rus, opts), nil
}

func bucketLoadError(bucket, path string, err error) error {
	var mle *domain.ModelLoadError
	if errors.As(err, &mle) {
		return &domain.ModelLoadError{Bucket: bucket, Path: mle.Path, Err: mle.Err}
	}
	return &domain.ModelLoadError{Bucket: bucket, Path: path, Err: err}
}

// Resolve decides which column of t plays which role. Rows with a missing
// cell are ignored. Any bucket the rules cannot settle without guessing
// yields a *domain.MalformedTableError.
func (r *Resolver) Resolve(t domain.Table) (domain.RoleMapping, error) {
	var m domain.RoleMapping

	if t.Width() == 0 {
		return m, &domain.MalformedTableError{Bucket: "table", Reason: "no text columns"}
	}
	t = t.DropIncomplete()
	if t.Rows() == 0 {
		return m, &domain.MalformedTableError{Bucket: "table", Reason: "no row has every column filled"}
	}

	b := FirstPass(t, r.opts)
	if len(b.English) > 2 {
		return m, &domain.MalformedTableError{Bucket: "english", Columns: b.English, Reason: "more than two English columns"}
	}
	if len(b.Russian) > 2 {
		return m, &domain.MalformedTableError{Bucket: "russian", Columns: b.Russian, Reason: "more than two Russian columns"}
	}
	if len(b.Other) > 1 {
		return m, &domain.MalformedTableError{Bucket: "other", Columns: b.Other, Reason: "more than one transcription column"}
	}

	word, example := r.split(t, b.English, r.english)
	m.Set(domain.RoleEng, word)
	m.Set(domain.RoleEngEx, example)

	word, example = r.split(t, b.Russian, r.russian)
	m.Set(domain.RoleRus, word)
	m.Set(domain.RoleRusEx, example)

	if len(b.Other) == 1 {
		m.Set(domain.RoleEngT, domain.ColumnAt(b.Other[0]))
	}
	return m, nil
}

// split tells the word column of a language bucket from the example column.
// Two columns are compared with each other: the first is the word only when
// it scores strictly lower. A lone column is compared with WordThreshold.
func (r *Resolver) split(t domain.Table, cols []int, s Scorer) (word, example domain.ColumnRef) {
	switch len(cols) {
	case 0:
		return domain.Absent(), domain.Absent()
	case 1:
		if s.MeanLabel(t.ColumnTexts(cols[0])) < r.opts.WordThreshold {
			return domain.ColumnAt(cols[0]), domain.Absent()
		}
		return domain.Absent(), domain.ColumnAt(cols[0])
	}
	first := s.MeanLabel(t.ColumnTexts(cols[0]))
	second := s.MeanLabel(t.ColumnTexts(cols[1]))
	if first < second {
		return domain.ColumnAt(cols[0]), domain.ColumnAt(cols[1])
	}
	return domain.ColumnAt(cols[1]), domain.ColumnAt(cols[0])
}

// ResolveAndAssemble drops numeric columns, resolves roles and reorders the
// table into Eng, engT, EngEx, Rus, RusEx.
func (r *Resolver) ResolveAndAssemble(t domain.Table) (domain.RoleMapping, domain.Table, error) {
	t = DropNumeric(t, r.opts)
	m, err := r.Resolve(t)
	if err != nil {
		return m, domain.Table{}, fmt.Errorf("resolve roles: %w", err)
	}
	return m, m.Assemble(t), nil
}
