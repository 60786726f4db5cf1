package study

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/vocabtrainer/internal/config"
	"github.com/heartmarshall/vocabtrainer/internal/domain"
	"github.com/heartmarshall/vocabtrainer/pkg/ctxutil"
)

// ===========================================================================
// Manual mocks (moq-style with func fields)
// ===========================================================================

type mockWordRepo struct {
	GetByIDFunc       func(ctx context.Context, accountID, id uuid.UUID) (*domain.Word, error)
	SelectFunc        func(ctx context.Context, accountID uuid.UUID, filter domain.WordFilter) ([]domain.Word, error)
	CountByStatusFunc func(ctx context.Context, accountID uuid.UUID) (domain.WordStats, error)
	SetWellKnownFunc  func(ctx context.Context, accountID, id uuid.UUID, known bool, at time.Time) error
	HideFunc          func(ctx context.Context, accountID, id uuid.UUID) error
	UnhideAllFunc     func(ctx context.Context, accountID uuid.UUID) (int64, error)
}

func (m *mockWordRepo) GetByID(ctx context.Context, accountID, id uuid.UUID) (*domain.Word, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, accountID, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockWordRepo) Select(ctx context.Context, accountID uuid.UUID, filter domain.WordFilter) ([]domain.Word, error) {
	if m.SelectFunc != nil {
		return m.SelectFunc(ctx, accountID, filter)
	}
	return nil, nil
}

func (m *mockWordRepo) CountByStatus(ctx context.Context, accountID uuid.UUID) (domain.WordStats, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx, accountID)
	}
	return domain.WordStats{}, nil
}

func (m *mockWordRepo) SetWellKnown(ctx context.Context, accountID, id uuid.UUID, known bool, at time.Time) error {
	if m.SetWellKnownFunc != nil {
		return m.SetWellKnownFunc(ctx, accountID, id, known, at)
	}
	return nil
}

func (m *mockWordRepo) Hide(ctx context.Context, accountID, id uuid.UUID) error {
	if m.HideFunc != nil {
		return m.HideFunc(ctx, accountID, id)
	}
	return nil
}

func (m *mockWordRepo) UnhideAll(ctx context.Context, accountID uuid.UUID) (int64, error) {
	if m.UnhideAllFunc != nil {
		return m.UnhideAllFunc(ctx, accountID)
	}
	return 0, nil
}

// ===========================================================================
// Helpers
// ===========================================================================

var fixedNow = time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

func newService(repo *mockWordRepo) *Service {
	svc := NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), repo, config.StudyConfig{CardLimit: 20, RecentDays: 7})
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func authCtx(id uuid.UUID) context.Context {
	return ctxutil.WithAccountID(context.Background(), id)
}

func ptr(s string) *string { return &s }

// ===========================================================================
// Deck
// ===========================================================================

func TestService_Deck_Filter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input DeckInput
		want  domain.WordFilter
	}{
		{
			name:  "defaults",
			input: DeckInput{Mode: domain.StudyModeNew},
			want:  domain.WordFilter{Mode: domain.StudyModeNew, Random: true, Limit: 20},
		},
		{
			name:  "recent uses configured window",
			input: DeckInput{Mode: domain.StudyModeRecent},
			want:  domain.WordFilter{Mode: domain.StudyModeRecent, Random: true, Limit: 20, Since: fixedNow.AddDate(0, 0, -7)},
		},
		{
			name:  "explicit limit and days",
			input: DeckInput{Mode: domain.StudyModeRecent, Limit: 5, Days: 1},
			want:  domain.WordFilter{Mode: domain.StudyModeRecent, Random: true, Limit: 5, Since: fixedNow.AddDate(0, 0, -1)},
		},
		{
			name:  "days ignored outside recent mode",
			input: DeckInput{Mode: domain.StudyModeAll, Days: 3},
			want:  domain.WordFilter{Mode: domain.StudyModeAll, Random: true, Limit: 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			account := uuid.New()
			var got domain.WordFilter
			repo := &mockWordRepo{SelectFunc: func(_ context.Context, accountID uuid.UUID, f domain.WordFilter) ([]domain.Word, error) {
				assert.Equal(t, account, accountID)
				got = f
				return []domain.Word{{Eng: ptr("cat")}}, nil
			}}

			words, err := newService(repo).Deck(authCtx(account), tt.input)
			require.NoError(t, err)
			assert.Len(t, words, 1)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_Deck_Invalid(t *testing.T) {
	t.Parallel()

	svc := newService(&mockWordRepo{})

	_, err := svc.Deck(authCtx(uuid.New()), DeckInput{Mode: "weekly"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Deck(authCtx(uuid.New()), DeckInput{Mode: domain.StudyModeAll, Limit: 1000})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Deck(context.Background(), DeckInput{Mode: domain.StudyModeAll})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ===========================================================================
// Marks
// ===========================================================================

func TestService_MarkLearnedAndUnlearned(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	var calls []bool
	repo := &mockWordRepo{SetWellKnownFunc: func(_ context.Context, _, gotID uuid.UUID, known bool, at time.Time) error {
		assert.Equal(t, id, gotID)
		assert.Equal(t, fixedNow, at)
		calls = append(calls, known)
		return nil
	}}
	svc := newService(repo)
	ctx := authCtx(uuid.New())

	require.NoError(t, svc.MarkLearned(ctx, id))
	require.NoError(t, svc.MarkUnlearned(ctx, id))
	assert.Equal(t, []bool{true, false}, calls)
}

func TestService_Mark_Errors(t *testing.T) {
	t.Parallel()

	repo := &mockWordRepo{SetWellKnownFunc: func(context.Context, uuid.UUID, uuid.UUID, bool, time.Time) error {
		return domain.ErrNotFound
	}}
	svc := newService(repo)

	assert.ErrorIs(t, svc.MarkLearned(authCtx(uuid.New()), uuid.New()), domain.ErrNotFound)
	assert.ErrorIs(t, svc.MarkLearned(authCtx(uuid.New()), uuid.Nil), domain.ErrValidation)
	assert.ErrorIs(t, svc.MarkLearned(context.Background(), uuid.New()), domain.ErrUnauthorized)
}

func TestService_HideAndUnhideAll(t *testing.T) {
	t.Parallel()

	hidden := 0
	repo := &mockWordRepo{
		HideFunc: func(context.Context, uuid.UUID, uuid.UUID) error { hidden++; return nil },
		UnhideAllFunc: func(context.Context, uuid.UUID) (int64, error) {
			return int64(hidden), nil
		},
	}
	svc := newService(repo)
	ctx := authCtx(uuid.New())

	require.NoError(t, svc.Hide(ctx, uuid.New()))
	require.NoError(t, svc.Hide(ctx, uuid.New()))
	n, err := svc.UnhideAll(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestService_Stats(t *testing.T) {
	t.Parallel()

	repo := &mockWordRepo{CountByStatusFunc: func(context.Context, uuid.UUID) (domain.WordStats, error) {
		return domain.WordStats{WellKnown: 4, New: 9}, nil
	}}
	stats, err := newService(repo).Stats(authCtx(uuid.New()))
	require.NoError(t, err)
	assert.Equal(t, domain.WordStats{WellKnown: 4, New: 9}, stats)
}

// ===========================================================================
// Answers
// ===========================================================================

func TestCheckAnswer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		headword string
		typed    string
		correct  bool
		expected string
	}{
		{"cat", "cat", true, "cat"},
		{"cat", " CAT ", true, "cat"},
		{"to run (away)", "to run away", true, "to run away"},
		{"look up, find", "look up", true, "look up"},
		{"set-up", "set", true, "set"},
		{"cat", "dog", false, "cat"},
	}

	for _, tt := range tests {
		t.Run(tt.headword+"/"+tt.typed, func(t *testing.T) {
			t.Parallel()

			got := CheckAnswer(domain.Word{Eng: ptr(tt.headword)}, tt.typed)
			assert.Equal(t, tt.correct, got.Correct)
			assert.Equal(t, tt.expected, got.Expected)
		})
	}
}

func TestCheckAnswer_NoHeadword(t *testing.T) {
	t.Parallel()

	got := CheckAnswer(domain.Word{Rus: ptr("кот")}, "")
	assert.False(t, got.Correct)
}

func TestService_CheckAnswer(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	repo := &mockWordRepo{GetByIDFunc: func(_ context.Context, _, gotID uuid.UUID) (*domain.Word, error) {
		if gotID != id {
			return nil, domain.ErrNotFound
		}
		return &domain.Word{ID: id, Eng: ptr("owl")}, nil
	}}
	svc := newService(repo)

	got, err := svc.CheckAnswer(authCtx(uuid.New()), id, "Owl")
	require.NoError(t, err)
	assert.True(t, got.Correct)

	_, err = svc.CheckAnswer(authCtx(uuid.New()), uuid.New(), "owl")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
