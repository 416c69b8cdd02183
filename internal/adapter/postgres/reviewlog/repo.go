// Package reviewlog implements the ReviewLog repository using PostgreSQL.
package reviewlog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/mylingua-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mylingua-backend/internal/domain"
)

// Repo provides review log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new review log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const columns = `id, word_id, user_id, quality, prev_state, next_state, duration_ms, reviewed_at`

const (
	insertSQL = `
INSERT INTO review_logs (` + columns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	getLastByWordIDSQL = `
SELECT ` + columns + ` FROM review_logs
WHERE word_id = $1 AND user_id = $2
ORDER BY reviewed_at DESC, id DESC
LIMIT 1`

	listByWordIDSQL = `
SELECT ` + columns + ` FROM review_logs
WHERE word_id = $1 AND user_id = $2
ORDER BY reviewed_at DESC, id DESC
LIMIT $3 OFFSET $4`

	countByWordIDSQL = `SELECT count(*) FROM review_logs WHERE word_id = $1 AND user_id = $2`

	countSinceSQL = `SELECT count(*) FROM review_logs WHERE user_id = $1 AND reviewed_at >= $2`

	deleteSQL = `DELETE FROM review_logs WHERE id = $1`

	deleteBeforeSQL = `DELETE FROM review_logs WHERE reviewed_at < $1`
)

type row struct {
	ID         uuid.UUID `db:"id"`
	WordID     uuid.UUID `db:"word_id"`
	UserID     uuid.UUID `db:"user_id"`
	Quality    int       `db:"quality"`
	PrevState  []byte    `db:"prev_state"`
	NextState  []byte    `db:"next_state"`
	DurationMs *int      `db:"duration_ms"`
	ReviewedAt time.Time `db:"reviewed_at"`
}

func (r row) toDomain() (domain.ReviewLog, error) {
	rl := domain.ReviewLog{
		ID:         r.ID,
		WordID:     r.WordID,
		UserID:     r.UserID,
		Quality:    domain.Quality(r.Quality),
		DurationMs: r.DurationMs,
		ReviewedAt: r.ReviewedAt,
	}
	if err := json.Unmarshal(r.PrevState, &rl.PrevState); err != nil {
		return domain.ReviewLog{}, fmt.Errorf("review_log %s: unmarshal prev_state: %w", r.ID, err)
	}
	if err := json.Unmarshal(r.NextState, &rl.NextState); err != nil {
		return domain.ReviewLog{}, fmt.Errorf("review_log %s: unmarshal next_state: %w", r.ID, err)
	}
	return rl, nil
}

// Create inserts a review log.
func (r *Repo) Create(ctx context.Context, rl *domain.ReviewLog) error {
	prev, err := json.Marshal(rl.PrevState)
	if err != nil {
		return fmt.Errorf("marshal prev_state: %w", err)
	}
	next, err := json.Marshal(rl.NextState)
	if err != nil {
		return fmt.Errorf("marshal next_state: %w", err)
	}

	_, err = postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, insertSQL,
		rl.ID, rl.WordID, rl.UserID, int(rl.Quality), prev, next, rl.DurationMs, rl.ReviewedAt,
	)
	if err != nil {
		return postgres.MapError(err, "review_log", rl.ID)
	}
	return nil
}

// GetLastByWordID returns the most recent review log of a word.
// Returns domain.ErrNotFound if the word has never been reviewed.
func (r *Repo) GetLastByWordID(ctx context.Context, userID, wordID uuid.UUID) (*domain.ReviewLog, error) {
	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, getLastByWordIDSQL, wordID, userID); err != nil {
		return nil, postgres.MapError(err, "review_log", wordID)
	}

	rl, err := dst.toDomain()
	if err != nil {
		return nil, err
	}
	return &rl, nil
}

// ListByWordID returns review logs of a word, newest first, with the total count.
func (r *Repo) ListByWordID(ctx context.Context, userID, wordID uuid.UUID, limit, offset int) ([]domain.ReviewLog, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var total int
	if err := q.QueryRow(ctx, countByWordIDSQL, wordID, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count review_logs by word_id: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, q, &rows, listByWordIDSQL, wordID, userID, limit, offset); err != nil {
		return nil, 0, fmt.Errorf("list review_logs by word_id: %w", err)
	}

	logs := make([]domain.ReviewLog, len(rows))
	for i, row := range rows {
		rl, err := row.toDomain()
		if err != nil {
			return nil, 0, err
		}
		logs[i] = rl
	}
	return logs, total, nil
}

// CountSince returns the number of reviews a user made at or after since.
func (r *Repo) CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, countSinceSQL, userID, since).Scan(&n); err != nil {
		return 0, fmt.Errorf("count review_logs since: %w", err)
	}
	return n, nil
}

// Delete removes a review log by ID.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "review_log", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("review_log %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteBefore removes review logs older than before and returns how many
// were deleted.
func (r *Repo) DeleteBefore(ctx context.Context, before time.Time) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteBeforeSQL, before)
	if err != nil {
		return 0, fmt.Errorf("delete review_logs before %s: %w", before.Format(time.RFC3339), err)
	}
	return tag.RowsAffected(), nil
}
