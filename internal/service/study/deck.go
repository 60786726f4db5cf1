package study

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocabtrainer/internal/domain"
	"github.com/heartmarshall/vocabtrainer/pkg/ctxutil"
)

// Deck returns cards in random order for the requested mode.
func (s *Service) Deck(ctx context.Context, input DeckInput) ([]domain.Word, error) {
	accountID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := domain.WordFilter{
		Mode:   input.Mode,
		Random: true,
		Limit:  input.Limit,
	}
	if filter.Limit == 0 {
		filter.Limit = s.cfg.CardLimit
	}
	if input.Mode == domain.StudyModeRecent {
		days := input.Days
		if days == 0 {
			days = s.cfg.RecentDays
		}
		filter.Since = s.now().Add(-time.Duration(days) * 24 * time.Hour)
	}

	words, err := s.words.Select(ctx, accountID, filter)
	if err != nil {
		return nil, fmt.Errorf("select deck: %w", err)
	}

	s.log.DebugContext(ctx, "deck selected", "mode", input.Mode, "cards", len(words))
	return words, nil
}

// Stats counts learned and new words.
func (s *Service) Stats(ctx context.Context) (domain.WordStats, error) {
	accountID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return domain.WordStats{}, domain.ErrUnauthorized
	}
	return s.words.CountByStatus(ctx, accountID)
}

// CheckAnswer compares a typed answer with the headword of the card with the
// given id.
func (s *Service) CheckAnswer(ctx context.Context, id uuid.UUID, typed string) (AnswerResult, error) {
	accountID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return AnswerResult{}, domain.ErrUnauthorized
	}

	w, err := s.words.GetByID(ctx, accountID, id)
	if err != nil {
		return AnswerResult{}, err
	}
	return CheckAnswer(*w, typed), nil
}

// CheckAnswer compares typed with the English headword of card. Notes in
// parentheses and anything after the first separator are ignored, as are case
// and surrounding spaces.
func CheckAnswer(card domain.Word, typed string) AnswerResult {
	var headword string
	if card.Eng != nil {
		headword = *card.Eng
	}
	return AnswerResult{
		Correct:  domain.SameAnswer(headword, typed),
		Expected: domain.DesiredWord(headword),
	}
}
