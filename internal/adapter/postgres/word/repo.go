// Package word implements the vocabulary repository using PostgreSQL.
package word

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/vocabtrainer/internal/adapter/postgres"
	"github.com/heartmarshall/vocabtrainer/internal/domain"
)

const table = "words"

var columns = []string{
	"id", "account_id", "eng", "eng_t", "eng_ex", "rus", "rus_ex",
	"well_known", "marked_at", "unmarked_at", "added_at", "visible",
}

// complete restricts a query to words with all five fields filled.
var complete = squirrel.And{
	squirrel.NotEq{"eng": nil},
	squirrel.NotEq{"eng_t": nil},
	squirrel.NotEq{"eng_ex": nil},
	squirrel.NotEq{"rus": nil},
	squirrel.NotEq{"rus_ex": nil},
}

// Repo provides word persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new word repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID         uuid.UUID  `db:"id"`
	AccountID  uuid.UUID  `db:"account_id"`
	Eng        *string    `db:"eng"`
	EngT       *string    `db:"eng_t"`
	EngEx      *string    `db:"eng_ex"`
	Rus        *string    `db:"rus"`
	RusEx      *string    `db:"rus_ex"`
	WellKnown  bool       `db:"well_known"`
	MarkedAt   *time.Time `db:"marked_at"`
	UnmarkedAt *time.Time `db:"unmarked_at"`
	AddedAt    time.Time  `db:"added_at"`
	Visible    bool       `db:"visible"`
}

func (r row) toDomain() domain.Word {
	return domain.Word{
		ID:         r.ID,
		AccountID:  r.AccountID,
		Eng:        r.Eng,
		EngT:       r.EngT,
		EngEx:      r.EngEx,
		Rus:        r.Rus,
		RusEx:      r.RusEx,
		WellKnown:  r.WellKnown,
		MarkedAt:   r.MarkedAt,
		UnmarkedAt: r.UnmarkedAt,
		AddedAt:    r.AddedAt,
		Visible:    r.Visible,
	}
}

func toDomain(rows []row) []domain.Word {
	words := make([]domain.Word, len(rows))
	for i, r := range rows {
		words[i] = r.toDomain()
	}
	return words
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// BulkInsert stores words for an account in one statement and returns how
// many rows were inserted. IDs are generated for words without one.
func (r *Repo) BulkInsert(ctx context.Context, accountID uuid.UUID, words []domain.Word, addedAt time.Time) (int, error) {
	if len(words) == 0 {
		return 0, nil
	}

	insert := postgres.Builder().
		Insert(table).
		Columns("id", "account_id", "eng", "eng_t", "eng_ex", "rus", "rus_ex", "added_at", "visible")
	for _, w := range words {
		id := w.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		insert = insert.Values(id, accountID, w.Eng, w.EngT, w.EngEx, w.Rus, w.RusEx, addedAt, true)
	}

	sql, args, err := insert.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert words: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "words of account", accountID)
	}
	return int(tag.RowsAffected()), nil
}

// DeleteDuplicates keeps only the most recently inserted word per English
// headword of an account and returns how many rows were removed.
func (r *Repo) DeleteDuplicates(ctx context.Context, accountID uuid.UUID) (int64, error) {
	del := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"account_id": accountID}).
		Where(squirrel.NotEq{"eng": nil}).
		Where("seq NOT IN (SELECT max(seq) FROM words WHERE account_id = ? AND eng IS NOT NULL GROUP BY eng)", accountID)

	sql, args, err := del.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete duplicates: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "words of account", accountID)
	}
	return tag.RowsAffected(), nil
}

// SetWellKnown marks a word as learned or not learned at the given time.
func (r *Repo) SetWellKnown(ctx context.Context, accountID, id uuid.UUID, known bool, at time.Time) error {
	update := postgres.Builder().
		Update(table).
		Set("well_known", known).
		Where(squirrel.Eq{"id": id, "account_id": accountID, "visible": true})
	if known {
		update = update.Set("marked_at", at)
	} else {
		update = update.Set("unmarked_at", at)
	}
	return r.execOne(ctx, update, id)
}

// Hide removes a word from every deck until UnhideAll.
func (r *Repo) Hide(ctx context.Context, accountID, id uuid.UUID) error {
	update := postgres.Builder().
		Update(table).
		Set("visible", false).
		Where(squirrel.Eq{"id": id, "account_id": accountID})
	return r.execOne(ctx, update, id)
}

// UnhideAll makes every word of the account visible again.
func (r *Repo) UnhideAll(ctx context.Context, accountID uuid.UUID) (int64, error) {
	update := postgres.Builder().
		Update(table).
		Set("visible", true).
		Where(squirrel.Eq{"account_id": accountID, "visible": false})

	sql, args, err := update.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build unhide: %w", err)
	}
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "words of account", accountID)
	}
	return tag.RowsAffected(), nil
}

func (r *Repo) execOne(ctx context.Context, update squirrel.UpdateBuilder, id uuid.UUID) error {
	sql, args, err := update.ToSql()
	if err != nil {
		return fmt.Errorf("build update word: %w", err)
	}
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "word", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("word %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns a word of the account.
func (r *Repo) GetByID(ctx context.Context, accountID, id uuid.UUID) (*domain.Word, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id, "account_id": accountID})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get word: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("word %s: %w", id, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "word", id)
	}
	w := dst.toDomain()
	return &w, nil
}

// Select returns the words of a study deck.
//
//   - new: visible complete words not marked as learned
//   - recent: visible words marked as learned since filter.Since
//   - all: visible complete words
func (r *Repo) Select(ctx context.Context, accountID uuid.UUID, filter domain.WordFilter) ([]domain.Word, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"account_id": accountID, "visible": true})

	switch filter.Mode {
	case domain.StudyModeNew:
		query = query.Where(squirrel.Eq{"well_known": false}).Where(complete)
	case domain.StudyModeRecent:
		query = query.Where(squirrel.Eq{"well_known": true}).Where(squirrel.GtOrEq{"marked_at": filter.Since})
	case domain.StudyModeAll:
		query = query.Where(complete)
	default:
		return nil, domain.NewValidationError("mode", fmt.Sprintf("unknown study mode %q", filter.Mode))
	}

	if filter.Random {
		query = query.OrderBy("random()")
	} else {
		query = query.OrderBy("seq")
	}
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}

	return r.list(ctx, query, accountID)
}

// ListAll returns every visible word of the account in insertion order.
func (r *Repo) ListAll(ctx context.Context, accountID uuid.UUID) ([]domain.Word, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"account_id": accountID, "visible": true}).
		OrderBy("seq")
	return r.list(ctx, query, accountID)
}

func (r *Repo) list(ctx context.Context, query squirrel.SelectBuilder, accountID uuid.UUID) ([]domain.Word, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select words: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "words of account", accountID)
	}
	return toDomain(rows), nil
}

// CountByStatus counts the visible complete words of the account by
// learning status.
func (r *Repo) CountByStatus(ctx context.Context, accountID uuid.UUID) (domain.WordStats, error) {
	query := postgres.Builder().
		Select(
			"count(*) FILTER (WHERE well_known) AS well_known",
			"count(*) FILTER (WHERE NOT well_known) AS new",
		).
		From(table).
		Where(squirrel.Eq{"account_id": accountID, "visible": true}).
		Where(complete)

	sql, args, err := query.ToSql()
	if err != nil {
		return domain.WordStats{}, fmt.Errorf("build count words: %w", err)
	}

	var stats domain.WordStats
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&stats.WellKnown, &stats.New)
	if err != nil {
		return domain.WordStats{}, postgres.MapError(err, "words of account", accountID)
	}
	return stats, nil
}
