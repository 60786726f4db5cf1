package vocabulary

import (
	"context"
	"fmt"
	"strconv"

	"github.com/heartmarshall/vocabtrainer/internal/domain"
	"github.com/heartmarshall/vocabtrainer/pkg/ctxutil"
)

// maxCells is the number of roles a hand-typed row can fill.
const maxCells = 5

// ImportRows adds hand-typed rows. Each row lists Eng, engT, EngEx, Rus and
// RusEx in that order; trailing cells may be left out and blank cells are
// stored as absent.
func (s *Service) ImportRows(ctx context.Context, rows [][]string) (int, error) {
	accountID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	if err := validateRows(rows); err != nil {
		return 0, err
	}

	words := domain.WordsFromTable(domain.TableFromStrings(rows).SelectColumns([]int{0, 1, 2, 3, 4}))

	n, err := s.insert(ctx, accountID, words, s.now())
	if err != nil {
		return 0, fmt.Errorf("insert words: %w", err)
	}
	if _, err := s.words.DeleteDuplicates(ctx, accountID); err != nil {
		return n, fmt.Errorf("delete duplicates: %w", err)
	}

	s.log.InfoContext(ctx, "rows added", "count", n)
	return n, nil
}

func validateRows(rows [][]string) error {
	if len(rows) == 0 {
		return domain.NewValidationError("rows", "required")
	}

	var errs []domain.FieldError
	for i, row := range rows {
		field := "rows[" + strconv.Itoa(i) + "]"
		if len(row) > maxCells {
			errs = append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("too many cells (max %d)", maxCells)})
			continue
		}
		if domain.WordFromCells(domain.TableFromStrings([][]string{row}).Row(0)).Blank() {
			errs = append(errs, domain.FieldError{Field: field, Message: "all cells are blank"})
		}
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
