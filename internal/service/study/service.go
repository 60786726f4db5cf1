// Package study serves flashcard decks drawn from the vocabulary and records
// which words the learner knows.
package study

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocabtrainer/internal/config"
	"github.com/heartmarshall/vocabtrainer/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type wordRepo interface {
	GetByID(ctx context.Context, accountID, id uuid.UUID) (*domain.Word, error)
	Select(ctx context.Context, accountID uuid.UUID, filter domain.WordFilter) ([]domain.Word, error)
	CountByStatus(ctx context.Context, accountID uuid.UUID) (domain.WordStats, error)
	SetWellKnown(ctx context.Context, accountID, id uuid.UUID, known bool, at time.Time) error
	Hide(ctx context.Context, accountID, id uuid.UUID) error
	UnhideAll(ctx context.Context, accountID uuid.UUID) (int64, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the flashcard workflow.
type Service struct {
	log   *slog.Logger
	words wordRepo
	cfg   config.StudyConfig
	now   func() time.Time
}

// NewService creates a new study service.
func NewService(logger *slog.Logger, words wordRepo, cfg config.StudyConfig) *Service {
	return &Service{
		log:   logger.With("service", "study"),
		words: words,
		cfg:   cfg,
		now:   func() time.Time { return time.Now().UTC() },
	}
}
