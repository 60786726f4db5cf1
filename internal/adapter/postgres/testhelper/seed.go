package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/vocabtrainer/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedAccount creates an account with a unique email and username.
func SeedAccount(t *testing.T, pool *pgxpool.Pool) domain.Account {
	t.Helper()

	suffix := uniqueSuffix()
	acc := domain.Account{
		ID:           uuid.New(),
		Email:        "learner-" + suffix + "@example.com",
		Username:     "learner-" + suffix,
		PasswordHash: "not-a-real-hash",
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO accounts (id, email, username, password_hash, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		acc.ID, acc.Email, acc.Username, acc.PasswordHash, acc.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAccount insert: %v", err)
	}
	return acc
}

// SeedWord inserts one complete visible word for the account. Fields are
// derived from eng so that each call produces a distinct headword.
func SeedWord(t *testing.T, pool *pgxpool.Pool, accountID uuid.UUID, eng, rus string) domain.Word {
	t.Helper()

	engT, engEx, rusEx := "["+eng+"]", "the "+eng, rus+" пример"
	w := domain.Word{
		ID:        uuid.New(),
		AccountID: accountID,
		Eng:       &eng,
		EngT:      &engT,
		EngEx:     &engEx,
		Rus:       &rus,
		RusEx:     &rusEx,
		AddedAt:   time.Now().UTC().Truncate(time.Microsecond),
		Visible:   true,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO words (id, account_id, eng, eng_t, eng_ex, rus, rus_ex, added_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		w.ID, w.AccountID, eng, engT, engEx, rus, rusEx, w.AddedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWord insert: %v", err)
	}
	return w
}
