package vocabulary

import (
	"context"
	"fmt"

	"github.com/heartmarshall/vocabtrainer/internal/adapter/excel"
	"github.com/heartmarshall/vocabtrainer/internal/domain"
	"github.com/heartmarshall/vocabtrainer/pkg/ctxutil"
)

// ExportWorkbook writes every visible word to a new workbook at path and
// returns the number of words written.
func (s *Service) ExportWorkbook(ctx context.Context, path string) (int, error) {
	accountID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	words, err := s.words.ListAll(ctx, accountID)
	if err != nil {
		return 0, fmt.Errorf("list words: %w", err)
	}

	if err := excel.WriteWords(path, s.exportCfg.SheetName, words); err != nil {
		return 0, err
	}

	s.log.InfoContext(ctx, "workbook exported", "path", path, "words", len(words))
	return len(words), nil
}
