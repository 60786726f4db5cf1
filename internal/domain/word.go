package domain

import (
	"time"

	"github.com/google/uuid"
)

// Word is a vocabulary item owned by an account. Any of the five text fields
// may be absent when the source spreadsheet had no column for it.
type Word struct {
	ID         uuid.UUID
	AccountID  uuid.UUID
	Eng        *string
	EngT       *string
	EngEx      *string
	Rus        *string
	RusEx      *string
	WellKnown  bool
	MarkedAt   *time.Time
	UnmarkedAt *time.Time
	AddedAt    time.Time
	Visible    bool
}

// WordFromCells builds a word from a row assembled in role order
// (Eng, engT, EngEx, Rus, RusEx). Missing cells leave the field nil.
func WordFromCells(cells []Cell) Word {
	w := Word{Visible: true}
	fields := w.fieldPtrs()
	for i := 0; i < len(fields) && i < len(cells); i++ {
		if cells[i].Valid {
			v := cells[i].Text
			*fields[i] = &v
		}
	}
	return w
}

// WordsFromTable converts an assembled five-column table into words,
// skipping rows without any text.
func WordsFromTable(t Table) []Word {
	words := make([]Word, 0, t.Rows())
	for i := 0; i < t.Rows(); i++ {
		w := WordFromCells(t.Row(i))
		if w.Blank() {
			continue
		}
		words = append(words, w)
	}
	return words
}

// Complete reports whether all five fields are present.
func (w Word) Complete() bool {
	return w.Eng != nil && w.EngT != nil && w.EngEx != nil && w.Rus != nil && w.RusEx != nil
}

// Blank reports whether no field is present.
func (w Word) Blank() bool {
	return w.Eng == nil && w.EngT == nil && w.EngEx == nil && w.Rus == nil && w.RusEx == nil
}

// Texts returns the five fields in role order, absent fields as "".
func (w Word) Texts() [5]string {
	var out [5]string
	for i, f := range []*string{w.Eng, w.EngT, w.EngEx, w.Rus, w.RusEx} {
		if f != nil {
			out[i] = *f
		}
	}
	return out
}

func (w *Word) fieldPtrs() []**string {
	return []**string{&w.Eng, &w.EngT, &w.EngEx, &w.Rus, &w.RusEx}
}

// StudyMode selects which words a flashcard deck is drawn from.
type StudyMode string

const (
	// StudyModeNew draws visible words not yet marked as learned.
	StudyModeNew StudyMode = "new"
	// StudyModeRecent draws words marked as learned within the last N days.
	StudyModeRecent StudyMode = "recent"
	// StudyModeAll draws every visible word.
	StudyModeAll StudyMode = "all"
)

func (m StudyMode) String() string { return string(m) }

func (m StudyMode) IsValid() bool {
	switch m {
	case StudyModeNew, StudyModeRecent, StudyModeAll:
		return true
	}
	return false
}

// WordFilter selects words for a deck.
type WordFilter struct {
	Mode   StudyMode
	Since  time.Time
	Random bool
	Limit  int
}

// WordStats counts visible complete words by learning status.
type WordStats struct {
	WellKnown int
	New       int
}
