package vocabulary

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/vocabtrainer/internal/adapter/gsheets"
	"github.com/heartmarshall/vocabtrainer/internal/domain"
	"github.com/heartmarshall/vocabtrainer/pkg/ctxutil"
)

// ErrSpreadsheetsDisabled is returned by the Google Sheets operations when no
// credentials are configured.
var ErrSpreadsheetsDisabled = errors.New("google sheets are not configured: set gsheets.credentials_file")

// ImportSpreadsheet imports every sheet of the Google spreadsheet with the
// given name the same way ImportWorkbook imports a workbook.
func (s *Service) ImportSpreadsheet(ctx context.Context, name string) (*ImportReport, error) {
	accountID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if s.spreadsheets == nil {
		return nil, ErrSpreadsheetsDisabled
	}

	sheets, err := s.spreadsheets.ReadSpreadsheet(ctx, name)
	if err != nil {
		return nil, err
	}
	return s.importSheets(ctx, accountID, "gsheets:"+name, sheets)
}

// ExportSpreadsheet writes every visible word to a new Google spreadsheet
// titled title and shares it with shareWith, or with the configured address
// when shareWith is empty.
func (s *Service) ExportSpreadsheet(ctx context.Context, title, shareWith string) (*SpreadsheetExport, error) {
	accountID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if s.spreadsheets == nil {
		return nil, ErrSpreadsheetsDisabled
	}
	if title == "" {
		return nil, domain.NewValidationError("title", "required")
	}

	words, err := s.words.ListAll(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}

	share := gsheets.Share{Email: shareWith, Role: s.sheetsCfg.ShareRole}
	if share.Email == "" {
		share.Email = s.sheetsCfg.ShareWith
	}

	created, err := s.spreadsheets.WriteWords(ctx, title, s.exportCfg.SheetName, words, share)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "spreadsheet exported", "title", title, "id", created.ID, "words", len(words))
	return &SpreadsheetExport{ID: created.ID, URL: created.URL, Words: len(words)}, nil
}
