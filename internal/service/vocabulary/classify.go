package vocabulary

import (
	"context"

	"github.com/heartmarshall/vocabtrainer/internal/adapter/excel"
)

// ClassifyWorkbook resolves the column roles of every sheet of the workbook
// at path without storing anything. Up to parallelism sheets are resolved at
// once.
func ClassifyWorkbook(ctx context.Context, resolver TableResolver, path string, parallelism int) ([]SheetResult, []SheetError, error) {
	sheets, err := excel.ReadWorkbook(path)
	if err != nil {
		return nil, nil, err
	}

	results, err := classifySheets(ctx, resolver, sheets, parallelism)
	if err != nil {
		return nil, nil, err
	}

	var recognized []SheetResult
	var failed []SheetError
	for i, res := range results {
		if res.err != nil {
			failed = append(failed, SheetError{Sheet: sheets[i].Name, Err: res.err})
			continue
		}
		recognized = append(recognized, SheetResult{Name: sheets[i].Name, Mapping: res.mapping, Words: len(res.words)})
	}
	return recognized, failed, nil
}
