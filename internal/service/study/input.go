package study

import "github.com/heartmarshall/vocabtrainer/internal/domain"

// maxDeck caps the number of cards in one deck.
const maxDeck = 500

// DeckInput selects the cards of a deck. Zero Limit and Days fall back to
// the configured defaults. Days only applies to the recent mode.
type DeckInput struct {
	Mode  domain.StudyMode
	Limit int
	Days  int
}

// Validate checks all fields and collects all errors.
func (i *DeckInput) Validate() error {
	var errs []domain.FieldError

	if !i.Mode.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mode", Message: "must be new, recent, or all"})
	}
	if i.Limit < 0 || i.Limit > maxDeck {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 500"})
	}
	if i.Days < 0 {
		errs = append(errs, domain.FieldError{Field: "days", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
