// Package excel reads vocabulary tables from Excel workbooks and writes the
// vocabulary back out.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/heartmarshall/vocabtrainer/internal/domain"
)

// Sheet is one worksheet of a workbook read as a headerless table.
type Sheet struct {
	Name  string
	Table domain.Table
}

// ReadWorkbook returns every worksheet of the workbook at path in workbook
// order. Empty cells become missing cells; numbers are kept as their raw text.
func ReadWorkbook(path string) ([]Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	names := f.GetSheetList()
	sheets := make([]Sheet, 0, len(names))
	for _, name := range names {
		rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("read sheet %q of %s: %w", name, path, err)
		}
		sheets = append(sheets, Sheet{
			Name:  name,
			Table: domain.TableFromStrings(rows).DropBlankRows(),
		})
	}
	return sheets, nil
}

// ReadSheetNames returns the worksheet names of the workbook at path.
func ReadSheetNames(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return f.GetSheetList(), nil
}

// ExportRows lays words out one row per word:
//
//	n | Eng | engT | EngEx | n | Rus | RusEx
//
// n is the 1-based row number. There is no header row.
func ExportRows(words []domain.Word) [][]any {
	rows := make([][]any, len(words))
	for i, w := range words {
		t := w.Texts()
		rows[i] = []any{i + 1, t[0], t[1], t[2], i + 1, t[3], t[4]}
	}
	return rows
}

// WriteWords writes words to a new workbook at path in the ExportRows layout.
func WriteWords(path, sheet string, words []domain.Word) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("name sheet %q: %w", sheet, err)
	}

	for i, row := range ExportRows(words) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}
