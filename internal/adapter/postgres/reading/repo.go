// Package reading implements the reading history repository using
// PostgreSQL.
package reading

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/mylingua-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mylingua-backend/internal/domain"
)

// Repo provides reading history persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new reading history repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const readingColumns = `id, user_id, article_id, completed, time_spent_seconds, read_at`

const (
	insertSQL = `
INSERT INTO reading_history (` + readingColumns + `)
VALUES ($1, $2, $3, $4, $5, $6)`

	getForUpdateSQL = `
SELECT ` + readingColumns + ` FROM reading_history
WHERE id = $1 AND user_id = $2
FOR UPDATE`

	updateSQL = `
UPDATE reading_history
SET completed = $3, time_spent_seconds = $4
WHERE id = $1 AND user_id = $2
RETURNING ` + readingColumns

	listSQL = `
SELECT ` + readingColumns + ` FROM reading_history
WHERE user_id = $1
ORDER BY read_at DESC, id DESC
LIMIT $2`
)

type readingRow struct {
	ID               uuid.UUID `db:"id"`
	UserID           uuid.UUID `db:"user_id"`
	ArticleID        string    `db:"article_id"`
	Completed        bool      `db:"completed"`
	TimeSpentSeconds int       `db:"time_spent_seconds"`
	ReadAt           time.Time `db:"read_at"`
}

func (r readingRow) toDomain() *domain.ReadingRecord {
	return &domain.ReadingRecord{
		ID:               r.ID,
		UserID:           r.UserID,
		ArticleID:        r.ArticleID,
		Completed:        r.Completed,
		TimeSpentSeconds: r.TimeSpentSeconds,
		ReadAt:           r.ReadAt,
	}
}

// Create inserts a reading session.
func (r *Repo) Create(ctx context.Context, rec *domain.ReadingRecord) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, insertSQL,
		rec.ID, rec.UserID, rec.ArticleID, rec.Completed, rec.TimeSpentSeconds, rec.ReadAt,
	)
	if err != nil {
		return postgres.MapError(err, "reading", rec.ID)
	}
	return nil
}

// GetByIDForUpdate returns a session of the user and locks it until the
// surrounding transaction ends.
func (r *Repo) GetByIDForUpdate(ctx context.Context, userID, id uuid.UUID) (*domain.ReadingRecord, error) {
	var dst readingRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, getForUpdateSQL, id, userID); err != nil {
		return nil, postgres.MapError(err, "reading", id)
	}
	return dst.toDomain(), nil
}

// Update writes the completion flag and time spent.
func (r *Repo) Update(ctx context.Context, rec *domain.ReadingRecord) (*domain.ReadingRecord, error) {
	var dst readingRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, updateSQL,
		rec.ID, rec.UserID, rec.Completed, rec.TimeSpentSeconds,
	)
	if err != nil {
		return nil, postgres.MapError(err, "reading", rec.ID)
	}
	return dst.toDomain(), nil
}

// List returns the newest sessions of a user.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ReadingRecord, error) {
	var rows []readingRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listSQL, userID, limit); err != nil {
		return nil, fmt.Errorf("list readings: %w", err)
	}

	out := make([]domain.ReadingRecord, len(rows))
	for i, row := range rows {
		out[i] = *row.toDomain()
	}
	return out, nil
}
