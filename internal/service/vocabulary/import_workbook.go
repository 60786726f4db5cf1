package vocabulary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/vocabtrainer/internal/adapter/excel"
	"github.com/heartmarshall/vocabtrainer/internal/domain"
	"github.com/heartmarshall/vocabtrainer/pkg/ctxutil"
)

type classified struct {
	mapping domain.RoleMapping
	words   []domain.Word
	err     error
}

// ImportWorkbook classifies every sheet of the workbook at path and stores
// the words of the recognised ones. Sheets whose columns cannot be told apart
// are reported in NotRecognized and do not fail the import. Older copies of
// re-imported headwords are removed afterwards.
func (s *Service) ImportWorkbook(ctx context.Context, path string) (*ImportReport, error) {
	accountID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	sheets, err := excel.ReadWorkbook(path)
	if err != nil {
		return nil, err
	}
	return s.importSheets(ctx, accountID, path, sheets)
}

// importSheets classifies sheets read from source and stores the words of
// the recognised ones.
func (s *Service) importSheets(ctx context.Context, accountID uuid.UUID, source string, sheets []excel.Sheet) (*ImportReport, error) {
	results, err := classifySheets(ctx, s.resolver, sheets, s.importCfg.Parallelism)
	if err != nil {
		return nil, err
	}

	report := &ImportReport{}
	var words []domain.Word
	for i, res := range results {
		name := sheets[i].Name
		if res.err != nil {
			s.log.WarnContext(ctx, "sheet not recognized", slog.String("sheet", name), slog.String("error", res.err.Error()))
			report.NotRecognized = append(report.NotRecognized, SheetError{Sheet: name, Err: res.err})
			continue
		}
		s.log.DebugContext(ctx, "sheet classified", slog.String("sheet", name), slog.String("mapping", res.mapping.String()))
		report.Sheets = append(report.Sheets, SheetResult{Name: name, Mapping: res.mapping, Words: len(res.words)})
		words = append(words, res.words...)
	}

	report.Imported, err = s.insert(ctx, accountID, words, s.now())
	if err != nil {
		return nil, fmt.Errorf("insert words: %w", err)
	}

	report.Duplicates, err = s.words.DeleteDuplicates(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("delete duplicates: %w", err)
	}

	s.log.InfoContext(ctx, "sheets imported",
		slog.String("source", source),
		slog.Int("imported", report.Imported),
		slog.Int64("duplicates", report.Duplicates),
		slog.Int("not_recognized", len(report.NotRecognized)),
	)
	return report, nil
}

// classifySheets resolves the sheets concurrently, at most parallelism at a
// time. Malformed tables are kept as per-sheet results; any other failure,
// such as a missing model, aborts.
func classifySheets(ctx context.Context, resolver TableResolver, sheets []excel.Sheet, parallelism int) ([]classified, error) {
	results := make([]classified, len(sheets))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, parallelism))
	for i, sheet := range sheets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if sheet.Table.Empty() {
				results[i].err = &domain.MalformedTableError{Bucket: "table", Reason: "sheet is empty"}
				return nil
			}
			mapping, table, err := resolver.ResolveAndAssemble(sheet.Table)
			if errors.Is(err, domain.ErrMalformedTable) {
				results[i].err = err
				return nil
			}
			if err != nil {
				return fmt.Errorf("sheet %q: %w", sheet.Name, err)
			}
			results[i] = classified{mapping: mapping, words: domain.WordsFromTable(table)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
