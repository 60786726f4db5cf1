package classifier

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/heartmarshall/vocabtrainer/internal/domain"
)

// DropNumeric removes the columns that hold numbers or nothing at all and
// renumbers the rest contiguously, keeping their left-to-right order.
//
// A column is numeric when every present cell parses as a number, or when at
// least NumericShare of the rows are digit-only strings.
func DropNumeric(t domain.Table, opts Options) domain.Table {
	opts = opts.withDefaults()
	need := quorum(t.Rows(), opts.NumericShare)

	keep := make([]int, 0, t.Width())
	// Columns are contiguous in a Table, so scanning ends at Width.
	for c := 0; c < t.Width(); c++ {
		cells, _ := t.Column(c)
		if isNumericColumn(cells, need) {
			continue
		}
		keep = append(keep, c)
	}
	return t.SelectColumns(keep)
}

func isNumericColumn(cells []domain.Cell, need int) bool {
	allNumbers := true
	digits := 0
	for _, cell := range cells {
		if !cell.Valid {
			continue
		}
		if !isNumber(cell.Text) {
			allNumbers = false
		}
		if isDigits(cell.Text) {
			digits++
		}
	}
	return allNumbers || digits >= need
}

func isNumber(s string) bool {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil && !math.IsNaN(f) && !math.IsInf(f, 0)
}

func isDigits(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
