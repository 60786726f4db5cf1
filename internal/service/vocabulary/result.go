package vocabulary

import "github.com/heartmarshall/vocabtrainer/internal/domain"

// ImportReport summarises a workbook import.
type ImportReport struct {
	Imported      int
	Duplicates    int64
	Sheets        []SheetResult
	NotRecognized []SheetError
}

// SheetResult describes a sheet whose columns were recognised.
type SheetResult struct {
	Name    string
	Mapping domain.RoleMapping
	Words   int
}

// SheetError describes a sheet that was skipped.
type SheetError struct {
	Sheet string
	Err   error
}

func (e SheetError) Error() string { return e.Sheet + ": " + e.Err.Error() }

func (e SheetError) Unwrap() error { return e.Err }

// SpreadsheetExport describes a spreadsheet written by ExportSpreadsheet.
type SpreadsheetExport struct {
	ID    string
	URL   string
	Words int
}
