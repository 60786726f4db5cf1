// Package account registers vocabulary owners and checks their passwords.
package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/vocabtrainer/internal/config"
	"github.com/heartmarshall/vocabtrainer/internal/domain"
)

type accountRepo interface {
	Create(ctx context.Context, a *domain.Account) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
}

// Service implements account registration and authentication.
type Service struct {
	log      *slog.Logger
	accounts accountRepo
	cfg      config.AccountConfig
}

// NewService creates a new account service.
func NewService(logger *slog.Logger, accounts accountRepo, cfg config.AccountConfig) *Service {
	return &Service{
		log:      logger.With("service", "account"),
		accounts: accounts,
		cfg:      cfg,
	}
}

// CreateInput holds the parameters for a new account.
type CreateInput struct {
	Email    string
	Password string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if _, err := UsernameFromEmail(i.Email); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: err.Error()})
	}
	if len(i.Password) < 6 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too short (min 6)"})
	} else if len(i.Password) > 72 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long (max 72)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Create registers an account. The username is derived from the email.
// Returns ErrAlreadyExists if the email or username is taken.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Account, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := input.Validate(); err != nil {
		return nil, err
	}

	username, _ := UsernameFromEmail(input.Email)
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("account.Create hash password: %w", err)
	}

	a, err := s.accounts.Create(ctx, &domain.Account{
		Email:        input.Email,
		Username:     username,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, fmt.Errorf("account.Create: %w", err)
	}

	s.log.InfoContext(ctx, "account created", slog.String("account_id", a.ID.String()), slog.String("username", a.Username))
	return a, nil
}

// Authenticate returns the account when email and password match.
// Unknown emails and wrong passwords both yield ErrUnauthorized.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	a, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("account.Authenticate: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return a, nil
}

// UsernameFromEmail returns the part of an email address before the first
// '@', '.' or '+'. An address must contain both '@' and '.'.
func UsernameFromEmail(email string) (string, error) {
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return "", fmt.Errorf("%q is not an email", email)
	}
	name := email[:strings.IndexAny(email, "@.+")]
	if name == "" {
		return "", fmt.Errorf("%q has no name before the domain", email)
	}
	return name, nil
}
