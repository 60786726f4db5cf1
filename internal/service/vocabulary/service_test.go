package vocabulary

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/heartmarshall/vocabtrainer/internal/adapter/excel"
	"github.com/heartmarshall/vocabtrainer/internal/adapter/gsheets"
	"github.com/heartmarshall/vocabtrainer/internal/classifier"
	"github.com/heartmarshall/vocabtrainer/internal/config"
	"github.com/heartmarshall/vocabtrainer/internal/domain"
	"github.com/heartmarshall/vocabtrainer/pkg/ctxutil"
)

// ===========================================================================
// Manual mocks (moq-style with func fields)
// ===========================================================================

type mockWordRepo struct {
	mu                   sync.Mutex
	inserted             [][]domain.Word
	BulkInsertFunc       func(ctx context.Context, accountID uuid.UUID, words []domain.Word, addedAt time.Time) (int, error)
	DeleteDuplicatesFunc func(ctx context.Context, accountID uuid.UUID) (int64, error)
	ListAllFunc          func(ctx context.Context, accountID uuid.UUID) ([]domain.Word, error)
}

func (m *mockWordRepo) BulkInsert(ctx context.Context, accountID uuid.UUID, words []domain.Word, addedAt time.Time) (int, error) {
	m.mu.Lock()
	m.inserted = append(m.inserted, words)
	m.mu.Unlock()
	if m.BulkInsertFunc != nil {
		return m.BulkInsertFunc(ctx, accountID, words, addedAt)
	}
	return len(words), nil
}

func (m *mockWordRepo) DeleteDuplicates(ctx context.Context, accountID uuid.UUID) (int64, error) {
	if m.DeleteDuplicatesFunc != nil {
		return m.DeleteDuplicatesFunc(ctx, accountID)
	}
	return 0, nil
}

func (m *mockWordRepo) ListAll(ctx context.Context, accountID uuid.UUID) ([]domain.Word, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx, accountID)
	}
	return nil, nil
}

type mockTxManager struct {
	calls int
}

func (m *mockTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type mockResolver struct {
	ResolveAndAssembleFunc func(t domain.Table) (domain.RoleMapping, domain.Table, error)
}

func (m *mockResolver) ResolveAndAssemble(t domain.Table) (domain.RoleMapping, domain.Table, error) {
	return m.ResolveAndAssembleFunc(t)
}

// identityResolver treats the first five columns as already in role order and
// rejects tables whose first cell is "broken".
func identityResolver() *mockResolver {
	return &mockResolver{ResolveAndAssembleFunc: func(t domain.Table) (domain.RoleMapping, domain.Table, error) {
		if t.Cell(0, 0).Text == "broken" {
			return domain.RoleMapping{}, domain.Table{}, &domain.MalformedTableError{Bucket: "other", Columns: []int{1, 2}, Reason: "more than one transcription column"}
		}
		m := domain.RoleMapping{
			Eng: domain.ColumnAt(0), EngT: domain.ColumnAt(1), EngEx: domain.ColumnAt(2),
			Rus: domain.ColumnAt(3), RusEx: domain.ColumnAt(4),
		}
		return m, m.Assemble(t), nil
	}}
}

type mockSpreadsheetStore struct {
	ReadSpreadsheetFunc func(ctx context.Context, name string) ([]excel.Sheet, error)
	WriteWordsFunc      func(ctx context.Context, title, sheet string, words []domain.Word, share gsheets.Share) (*gsheets.Created, error)
}

func (m *mockSpreadsheetStore) ReadSpreadsheet(ctx context.Context, name string) ([]excel.Sheet, error) {
	return m.ReadSpreadsheetFunc(ctx, name)
}

func (m *mockSpreadsheetStore) WriteWords(ctx context.Context, title, sheet string, words []domain.Word, share gsheets.Share) (*gsheets.Created, error) {
	return m.WriteWordsFunc(ctx, title, sheet, words, share)
}

// ===========================================================================
// Helpers
// ===========================================================================

type fixture struct {
	svc      *Service
	words    *mockWordRepo
	tx       *mockTxManager
	resolver *mockResolver
	sheets   *mockSpreadsheetStore
}

func newFixture(chunkSize int) *fixture {
	f := &fixture{
		words:    &mockWordRepo{},
		tx:       &mockTxManager{},
		resolver: identityResolver(),
		sheets:   &mockSpreadsheetStore{},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.svc = NewService(logger, f.words, f.tx, f.resolver,
		config.ImportConfig{ChunkSize: chunkSize, Parallelism: 2},
		config.ExportConfig{SheetName: "Vocabulary"},
		f.sheets,
		config.GSheetsConfig{ShareWith: "me@example.com", ShareRole: "writer"},
	)
	return f
}

func authCtx() context.Context {
	return ctxutil.WithAccountID(context.Background(), uuid.New())
}

func writeWorkbook(t *testing.T, sheets map[string][][]any, order ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "vocab.xlsx")
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	for i, name := range order {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", name))
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for r, row := range sheets[name] {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(name, cell, &row))
		}
	}
	require.NoError(t, f.SaveAs(path))
	return path
}

func ptr(s string) *string { return &s }

// ===========================================================================
// ImportWorkbook
// ===========================================================================

func TestService_ImportWorkbook(t *testing.T) {
	t.Parallel()

	f := newFixture(2)
	f.words.DeleteDuplicatesFunc = func(context.Context, uuid.UUID) (int64, error) { return 1, nil }

	path := writeWorkbook(t, map[string][][]any{
		"Animals": {
			{"cat", "kæt", "a black cat", "кот", "чёрный кот"},
			{"dog", "dɒɡ", "a good dog", "собака", "хорошая собака"},
			{"owl", "aʊl", "an old owl", "сова", "старая сова"},
		},
		"Broken": {
			{"broken", "x", "y"},
		},
	}, "Animals", "Broken", "Empty")

	report, err := f.svc.ImportWorkbook(authCtx(), path)
	require.NoError(t, err)

	assert.Equal(t, 3, report.Imported)
	assert.EqualValues(t, 1, report.Duplicates)
	require.Len(t, report.Sheets, 1)
	assert.Equal(t, "Animals", report.Sheets[0].Name)
	assert.Equal(t, 3, report.Sheets[0].Words)

	require.Len(t, report.NotRecognized, 2)
	assert.Equal(t, "Broken", report.NotRecognized[0].Sheet)
	assert.ErrorIs(t, report.NotRecognized[0].Err, domain.ErrMalformedTable)
	assert.Equal(t, "Empty", report.NotRecognized[1].Sheet)

	assert.Equal(t, 2, f.tx.calls, "three words in chunks of two")
	require.Len(t, f.words.inserted, 2)
	assert.Equal(t, "cat", *f.words.inserted[0][0].Eng)
	assert.Equal(t, "старая сова", *f.words.inserted[1][0].RusEx)
}

func TestService_ImportWorkbook_NoAuth(t *testing.T) {
	t.Parallel()

	f := newFixture(10)
	_, err := f.svc.ImportWorkbook(context.Background(), "unused.xlsx")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestService_ImportWorkbook_ModelMissing(t *testing.T) {
	t.Parallel()

	f := newFixture(10)
	f.resolver.ResolveAndAssembleFunc = func(domain.Table) (domain.RoleMapping, domain.Table, error) {
		return domain.RoleMapping{}, domain.Table{}, &domain.ModelLoadError{Bucket: "english", Path: "eng.json", Err: errors.New("no such file")}
	}
	path := writeWorkbook(t, map[string][][]any{"Words": {{"cat", "кот"}}}, "Words")

	_, err := f.svc.ImportWorkbook(authCtx(), path)
	assert.ErrorIs(t, err, domain.ErrModelLoad)
	assert.Empty(t, f.words.inserted)
}

func TestService_ImportWorkbook_InsertFails(t *testing.T) {
	t.Parallel()

	f := newFixture(10)
	boom := errors.New("connection reset")
	f.words.BulkInsertFunc = func(context.Context, uuid.UUID, []domain.Word, time.Time) (int, error) { return 0, boom }
	path := writeWorkbook(t, map[string][][]any{"Words": {{"cat", "kæt", "a cat", "кот", "кот спит"}}}, "Words")

	_, err := f.svc.ImportWorkbook(authCtx(), path)
	assert.ErrorIs(t, err, boom)
}

// ===========================================================================
// ImportRows
// ===========================================================================

func TestService_ImportRows(t *testing.T) {
	t.Parallel()

	f := newFixture(10)
	n, err := f.svc.ImportRows(authCtx(), [][]string{
		{"cat", "kæt", "a cat", "кот", "кот спит"},
		{"dog", "", "", "собака"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.Len(t, f.words.inserted, 1)
	dog := f.words.inserted[0][1]
	assert.Equal(t, "dog", *dog.Eng)
	assert.Nil(t, dog.EngT)
	assert.Equal(t, "собака", *dog.Rus)
	assert.Nil(t, dog.RusEx)
}

func TestService_ImportRows_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows [][]string
	}{
		{"no rows", nil},
		{"too many cells", [][]string{{"a", "b", "c", "d", "e", "f"}}},
		{"blank row", [][]string{{"cat"}, {" ", ""}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(10)
			_, err := f.svc.ImportRows(authCtx(), tt.rows)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Empty(t, f.words.inserted)
		})
	}
}

// ===========================================================================
// ExportWorkbook
// ===========================================================================

func TestService_ExportWorkbook(t *testing.T) {
	t.Parallel()

	f := newFixture(10)
	f.words.ListAllFunc = func(context.Context, uuid.UUID) ([]domain.Word, error) {
		return []domain.Word{
			{Eng: ptr("cat"), EngT: ptr("kæt"), EngEx: ptr("a cat"), Rus: ptr("кот"), RusEx: ptr("кот спит")},
			{Eng: ptr("dog"), Rus: ptr("собака")},
		}, nil
	}

	path := filepath.Join(t.TempDir(), "export.xlsx")
	n, err := f.svc.ExportWorkbook(authCtx(), path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	sheets, err := excel.ReadWorkbook(path)
	require.NoError(t, err)
	require.Len(t, sheets, 1)
	assert.Equal(t, "Vocabulary", sheets[0].Name)
	assert.Equal(t, domain.Text("2"), sheets[0].Table.Cell(1, 0))
	assert.Equal(t, domain.Text("собака"), sheets[0].Table.Cell(1, 5))
}

func TestService_ExportWorkbook_NoAuth(t *testing.T) {
	t.Parallel()

	f := newFixture(10)
	_, err := f.svc.ExportWorkbook(context.Background(), filepath.Join(t.TempDir(), "x.xlsx"))
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ===========================================================================
// Classify
// ===========================================================================

func TestClassifyWorkbook(t *testing.T) {
	t.Parallel()

	path := writeWorkbook(t, map[string][][]any{
		"Good":   {{"cat", "kæt", "a cat", "кот", "кот спит"}},
		"Broken": {{"broken"}},
	}, "Good", "Broken")

	ok, failed, err := ClassifyWorkbook(context.Background(), identityResolver(), path, 1)
	require.NoError(t, err)
	require.Len(t, ok, 1)
	assert.Equal(t, "Good", ok[0].Name)
	assert.Equal(t, domain.ColumnAt(3), ok[0].Mapping.Rus)
	require.Len(t, failed, 1)
	assert.Equal(t, "Broken", failed[0].Sheet)
	assert.ErrorIs(t, failed[0], domain.ErrMalformedTable)
}

// constScorer gives every column the same score.
type constScorer float64

func (c constScorer) MeanLabel([]string) float64 { return float64(c) }

func TestClassifyWorkbook_AllNumericSheet(t *testing.T) {
	t.Parallel()

	path := writeWorkbook(t, map[string][][]any{
		"Numbers": {{1, 2}, {3, 4}},
	}, "Numbers")

	r := classifier.NewResolver(constScorer(0), constScorer(0), classifier.DefaultOptions())
	ok, failed, err := ClassifyWorkbook(context.Background(), r, path, 1)
	require.NoError(t, err)
	assert.Empty(t, ok)
	require.Len(t, failed, 1)
	assert.Equal(t, "Numbers", failed[0].Sheet)
	assert.ErrorIs(t, failed[0], domain.ErrMalformedTable)
}

// ===========================================================================
// Google Sheets
// ===========================================================================

func TestService_ImportSpreadsheet(t *testing.T) {
	t.Parallel()

	f := newFixture(10)
	f.sheets.ReadSpreadsheetFunc = func(_ context.Context, name string) ([]excel.Sheet, error) {
		assert.Equal(t, "Lessons", name)
		return []excel.Sheet{
			{Name: "Week 1", Table: domain.TableFromStrings([][]string{{"cat", "kæt", "a cat", "кот", "кот спит"}})},
			{Name: "Broken", Table: domain.TableFromStrings([][]string{{"broken"}})},
		}, nil
	}

	report, err := f.svc.ImportSpreadsheet(authCtx(), "Lessons")
	require.NoError(t, err)
	assert.Equal(t, 1, report.Imported)
	require.Len(t, report.Sheets, 1)
	assert.Equal(t, "Week 1", report.Sheets[0].Name)
	require.Len(t, report.NotRecognized, 1)
	assert.Equal(t, "Broken", report.NotRecognized[0].Sheet)
}

func TestService_ImportSpreadsheet_ReadFails(t *testing.T) {
	t.Parallel()

	f := newFixture(10)
	f.sheets.ReadSpreadsheetFunc = func(context.Context, string) ([]excel.Sheet, error) {
		return nil, domain.ErrNotFound
	}

	_, err := f.svc.ImportSpreadsheet(authCtx(), "Missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.words.inserted)
}

func TestService_ExportSpreadsheet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		shareWith string
		wantShare gsheets.Share
	}{
		{name: "configured address", wantShare: gsheets.Share{Email: "me@example.com", Role: "writer"}},
		{name: "explicit address", shareWith: "friend@example.com", wantShare: gsheets.Share{Email: "friend@example.com", Role: "writer"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(10)
			f.words.ListAllFunc = func(context.Context, uuid.UUID) ([]domain.Word, error) {
				return []domain.Word{{Eng: ptr("cat")}, {Eng: ptr("dog")}}, nil
			}
			var gotShare gsheets.Share
			f.sheets.WriteWordsFunc = func(_ context.Context, title, sheet string, words []domain.Word, share gsheets.Share) (*gsheets.Created, error) {
				assert.Equal(t, "My words", title)
				assert.Equal(t, "Vocabulary", sheet)
				assert.Len(t, words, 2)
				gotShare = share
				return &gsheets.Created{ID: "abc", URL: "https://docs.google.com/spreadsheets/d/abc"}, nil
			}

			res, err := f.svc.ExportSpreadsheet(authCtx(), "My words", tt.shareWith)
			require.NoError(t, err)
			assert.Equal(t, &SpreadsheetExport{ID: "abc", URL: "https://docs.google.com/spreadsheets/d/abc", Words: 2}, res)
			assert.Equal(t, tt.wantShare, gotShare)
		})
	}
}

func TestService_Spreadsheets_Disabled(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(logger, &mockWordRepo{}, &mockTxManager{}, identityResolver(),
		config.ImportConfig{ChunkSize: 10, Parallelism: 1},
		config.ExportConfig{SheetName: "Vocabulary"},
		nil, config.GSheetsConfig{},
	)

	_, err := svc.ImportSpreadsheet(authCtx(), "Lessons")
	assert.ErrorIs(t, err, ErrSpreadsheetsDisabled)

	_, err = svc.ExportSpreadsheet(authCtx(), "My words", "")
	assert.ErrorIs(t, err, ErrSpreadsheetsDisabled)
}

func TestService_ExportSpreadsheet_Validation(t *testing.T) {
	t.Parallel()

	f := newFixture(10)

	_, err := f.svc.ExportSpreadsheet(context.Background(), "My words", "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = f.svc.ExportSpreadsheet(authCtx(), "", "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
