package classifier

import (
	"fmt"

	"github.com/heartmarshall/vocabtrainer/internal/domain"
)

// Dataset is a sequence of labelled text samples.
type Dataset struct {
	Texts  []string
	Labels []int
}

// Len returns the number of samples.
func (d Dataset) Len() int { return len(d.Texts) }

// BuildDataset turns the first groups columns of each row into samples
// labelled with their position in columns. Rows keep their order and the
// columns of a row are interleaved, so 3 rows of 2 columns give labels
// 0,1,0,1,0,1. groups defaults to 2.
func BuildDataset(t domain.Table, columns []int, groups int) (Dataset, error) {
	if groups <= 0 {
		groups = 2
	}
	if len(columns) < groups {
		return Dataset{}, domain.NewValidationError("columns",
			fmt.Sprintf("need %d columns, got %d", groups, len(columns)))
	}
	for _, c := range columns[:groups] {
		if c < 0 || c >= t.Width() {
			return Dataset{}, domain.NewValidationError("columns",
				fmt.Sprintf("column %d out of range [0, %d)", c, t.Width()))
		}
	}

	ds := Dataset{
		Texts:  make([]string, 0, t.Rows()*groups),
		Labels: make([]int, 0, t.Rows()*groups),
	}
	for i := 0; i < t.Rows(); i++ {
		for j := 0; j < groups; j++ {
			ds.Texts = append(ds.Texts, t.Cell(i, columns[j]).Text)
			ds.Labels = append(ds.Labels, j)
		}
	}
	return ds, nil
}

// Append adds the samples of other after d's.
func (d Dataset) Append(other Dataset) Dataset {
	return Dataset{
		Texts:  append(append([]string(nil), d.Texts...), other.Texts...),
		Labels: append(append([]int(nil), d.Labels...), other.Labels...),
	}
}

// TrainingSets builds the English and Russian word/example datasets from
// vocabulary tables. Numeric columns are dropped per table, the complete rows
// of all tables are stacked and bucketed together, and each language bucket
// must hold exactly the word column followed by the example column.
func TrainingSets(tables []domain.Table, opts Options) (english, russian Dataset, err error) {
	var stacked domain.Table
	for _, t := range tables {
		t = DropNumeric(t, opts).DropIncomplete()
		if t.Empty() {
			continue
		}
		stacked = stacked.Concat(t)
	}
	stacked = stacked.DropIncomplete()
	if stacked.Rows() == 0 {
		return Dataset{}, Dataset{}, &domain.MalformedTableError{Bucket: "table", Reason: "no complete rows to learn from"}
	}

	b := FirstPass(stacked, opts)
	if len(b.English) != 2 {
		return Dataset{}, Dataset{}, &domain.MalformedTableError{
			Bucket: "english", Columns: b.English, Reason: "training needs exactly a word and an example column"}
	}
	if len(b.Russian) != 2 {
		return Dataset{}, Dataset{}, &domain.MalformedTableError{
			Bucket: "russian", Columns: b.Russian, Reason: "training needs exactly a word and an example column"}
	}

	if english, err = BuildDataset(stacked, b.English, 2); err != nil {
		return Dataset{}, Dataset{}, err
	}
	if russian, err = BuildDataset(stacked, b.Russian, 2); err != nil {
		return Dataset{}, Dataset{}, err
	}
	return english, russian, nil
}
