package sqlite

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/sqlscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/mylingua-backend/internal/domain"
)

// ReadingRepo provides reading history persistence backed by SQLite.
type ReadingRepo struct {
	db *DB
}

// NewReadingRepo creates a new reading history repository.
func NewReadingRepo(db *DB) *ReadingRepo {
	return &ReadingRepo{db: db}
}

const readingColumns = `id, user_id, article_id, completed, time_spent_seconds, read_at`

const (
	insertReadingSQL = `
INSERT INTO reading_history (` + readingColumns + `)
VALUES (?, ?, ?, ?, ?, ?)`

	getReadingSQL = `
SELECT ` + readingColumns + ` FROM reading_history
WHERE id = ? AND user_id = ?`

	updateReadingSQL = `
UPDATE reading_history
SET completed = ?, time_spent_seconds = ?
WHERE id = ? AND user_id = ?
RETURNING ` + readingColumns

	listReadingsSQL = `
SELECT ` + readingColumns + ` FROM reading_history
WHERE user_id = ?
ORDER BY read_at DESC, rowid DESC
LIMIT ?`
)

type readingRow struct {
	ID               uuid.UUID `db:"id"`
	UserID           uuid.UUID `db:"user_id"`
	ArticleID        string    `db:"article_id"`
	Completed        bool      `db:"completed"`
	TimeSpentSeconds int       `db:"time_spent_seconds"`
	ReadAt           int64     `db:"read_at"`
}

func (r readingRow) toDomain() domain.ReadingRecord {
	return domain.ReadingRecord{
		ID:               r.ID,
		UserID:           r.UserID,
		ArticleID:        r.ArticleID,
		Completed:        r.Completed,
		TimeSpentSeconds: r.TimeSpentSeconds,
		ReadAt:           fromMillis(r.ReadAt),
	}
}

// Create inserts a reading session.
func (r *ReadingRepo) Create(ctx context.Context, rec *domain.ReadingRecord) error {
	_, err := r.db.q(ctx).ExecContext(ctx, insertReadingSQL,
		rec.ID, rec.UserID, rec.ArticleID, rec.Completed, rec.TimeSpentSeconds, toMillis(rec.ReadAt),
	)
	if err != nil {
		return mapError(err, "reading", rec.ID)
	}
	return nil
}

// GetByIDForUpdate returns a session of the user. The single connection
// already serialises transactions.
func (r *ReadingRepo) GetByIDForUpdate(ctx context.Context, userID, id uuid.UUID) (*domain.ReadingRecord, error) {
	var dst readingRow
	if err := sqlscan.Get(ctx, r.db.q(ctx), &dst, getReadingSQL, id, userID); err != nil {
		return nil, mapError(err, "reading", id)
	}
	rec := dst.toDomain()
	return &rec, nil
}

// Update writes the completion flag and time spent.
func (r *ReadingRepo) Update(ctx context.Context, rec *domain.ReadingRecord) (*domain.ReadingRecord, error) {
	var dst readingRow
	err := sqlscan.Get(ctx, r.db.q(ctx), &dst, updateReadingSQL,
		rec.Completed, rec.TimeSpentSeconds, rec.ID, rec.UserID,
	)
	if err != nil {
		return nil, mapError(err, "reading", rec.ID)
	}
	out := dst.toDomain()
	return &out, nil
}

// List returns the newest sessions of a user.
func (r *ReadingRepo) List(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ReadingRecord, error) {
	var rows []readingRow
	if err := sqlscan.Select(ctx, r.db.q(ctx), &rows, listReadingsSQL, userID, limit); err != nil {
		return nil, fmt.Errorf("list readings: %w", err)
	}

	out := make([]domain.ReadingRecord, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}
