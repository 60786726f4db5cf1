package study

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocabtrainer/internal/domain"
	"github.com/heartmarshall/vocabtrainer/pkg/ctxutil"
)

// MarkLearned records that the learner knows the word.
func (s *Service) MarkLearned(ctx context.Context, id uuid.UUID) error {
	return s.setWellKnown(ctx, id, true)
}

// MarkUnlearned puts the word back among the new words.
func (s *Service) MarkUnlearned(ctx context.Context, id uuid.UUID) error {
	return s.setWellKnown(ctx, id, false)
}

func (s *Service) setWellKnown(ctx context.Context, id uuid.UUID, known bool) error {
	accountID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	if err := s.words.SetWellKnown(ctx, accountID, id, known, s.now()); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "word marked", "id", id, "well_known", known)
	return nil
}

// Hide removes the word from every deck until UnhideAll.
func (s *Service) Hide(ctx context.Context, id uuid.UUID) error {
	accountID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	return s.words.Hide(ctx, accountID, id)
}

// UnhideAll returns every hidden word to the decks and reports how many there were.
func (s *Service) UnhideAll(ctx context.Context) (int64, error) {
	accountID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}
	return s.words.UnhideAll(ctx, accountID)
}
