// Package vocabulary imports vocabulary spreadsheets into the word store and
// exports it back to Excel or Google Sheets.
package vocabulary

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocabtrainer/internal/adapter/excel"
	"github.com/heartmarshall/vocabtrainer/internal/adapter/gsheets"
	"github.com/heartmarshall/vocabtrainer/internal/config"
	"github.com/heartmarshall/vocabtrainer/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type wordRepo interface {
	BulkInsert(ctx context.Context, accountID uuid.UUID, words []domain.Word, addedAt time.Time) (int, error)
	DeleteDuplicates(ctx context.Context, accountID uuid.UUID) (int64, error)
	ListAll(ctx context.Context, accountID uuid.UUID) ([]domain.Word, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// TableResolver maps the columns of a sheet to roles and reorders the sheet
// into Eng, engT, EngEx, Rus, RusEx.
type TableResolver interface {
	ResolveAndAssemble(t domain.Table) (domain.RoleMapping, domain.Table, error)
}

// SpreadsheetStore reads and writes Google spreadsheets.
type SpreadsheetStore interface {
	ReadSpreadsheet(ctx context.Context, name string) ([]excel.Sheet, error)
	WriteWords(ctx context.Context, title, sheet string, words []domain.Word, share gsheets.Share) (*gsheets.Created, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements vocabulary import and export.
type Service struct {
	log       *slog.Logger
	words     wordRepo
	tx        txManager
	resolver  TableResolver
	importCfg config.ImportConfig
	exportCfg config.ExportConfig

	// nil when Google Sheets are not configured.
	spreadsheets SpreadsheetStore
	sheetsCfg    config.GSheetsConfig

	now func() time.Time
}

// NewService creates a new vocabulary service.
func NewService(
	logger *slog.Logger,
	words wordRepo,
	tx txManager,
	resolver TableResolver,
	importCfg config.ImportConfig,
	exportCfg config.ExportConfig,
	spreadsheets SpreadsheetStore,
	sheetsCfg config.GSheetsConfig,
) *Service {
	return &Service{
		log:       logger.With("service", "vocabulary"),
		words:     words,
		tx:        tx,
		resolver:  resolver,
		importCfg: importCfg,
		exportCfg: exportCfg,

		spreadsheets: spreadsheets,
		sheetsCfg:    sheetsCfg,

		now: func() time.Time { return time.Now().UTC() },
	}
}

// insert stores words in transactions of at most ChunkSize words and returns
// the number of inserted rows.
func (s *Service) insert(ctx context.Context, accountID uuid.UUID, words []domain.Word, addedAt time.Time) (int, error) {
	chunkSize := s.importCfg.ChunkSize
	if chunkSize <= 0 {
		chunkSize = 50
	}

	inserted := 0
	for start := 0; start < len(words); start += chunkSize {
		chunk := words[start:min(start+chunkSize, len(words))]

		var n int
		err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			var err error
			n, err = s.words.BulkInsert(txCtx, accountID, chunk, addedAt)
			return err
		})
		if err != nil {
			return inserted, err
		}
		inserted += n
	}
	return inserted, nil
}
