package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/sqlscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/mylingua-backend/internal/domain"
)

// ReviewLogRepo provides review log persistence backed by SQLite.
type ReviewLogRepo struct {
	db *DB
}

// NewReviewLogRepo creates a new review log repository.
func NewReviewLogRepo(db *DB) *ReviewLogRepo {
	return &ReviewLogRepo{db: db}
}

const reviewLogColumns = `id, word_id, user_id, quality, prev_state, next_state, duration_ms, reviewed_at`

const (
	insertReviewLogSQL = `
INSERT INTO review_logs (` + reviewLogColumns + `)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	lastReviewLogSQL = `
SELECT ` + reviewLogColumns + ` FROM review_logs
WHERE word_id = ? AND user_id = ?
ORDER BY reviewed_at DESC, rowid DESC
LIMIT 1`

	listReviewLogsSQL = `
SELECT ` + reviewLogColumns + ` FROM review_logs
WHERE word_id = ? AND user_id = ?
ORDER BY reviewed_at DESC, rowid DESC
LIMIT ? OFFSET ?`
)

type reviewLogRow struct {
	ID         uuid.UUID `db:"id"`
	WordID     uuid.UUID `db:"word_id"`
	UserID     uuid.UUID `db:"user_id"`
	Quality    int       `db:"quality"`
	PrevState  string    `db:"prev_state"`
	NextState  string    `db:"next_state"`
	DurationMs *int      `db:"duration_ms"`
	ReviewedAt int64     `db:"reviewed_at"`
}

func (r reviewLogRow) toDomain() (domain.ReviewLog, error) {
	rl := domain.ReviewLog{
		ID:         r.ID,
		WordID:     r.WordID,
		UserID:     r.UserID,
		Quality:    domain.Quality(r.Quality),
		DurationMs: r.DurationMs,
		ReviewedAt: fromMillis(r.ReviewedAt),
	}
	if err := json.Unmarshal([]byte(r.PrevState), &rl.PrevState); err != nil {
		return domain.ReviewLog{}, fmt.Errorf("review_log %s: unmarshal prev_state: %w", r.ID, err)
	}
	if err := json.Unmarshal([]byte(r.NextState), &rl.NextState); err != nil {
		return domain.ReviewLog{}, fmt.Errorf("review_log %s: unmarshal next_state: %w", r.ID, err)
	}
	return rl, nil
}

// Create inserts a review log.
func (r *ReviewLogRepo) Create(ctx context.Context, rl *domain.ReviewLog) error {
	prev, err := json.Marshal(rl.PrevState)
	if err != nil {
		return fmt.Errorf("marshal prev_state: %w", err)
	}
	next, err := json.Marshal(rl.NextState)
	if err != nil {
		return fmt.Errorf("marshal next_state: %w", err)
	}

	_, err = r.db.q(ctx).ExecContext(ctx, insertReviewLogSQL,
		rl.ID, rl.WordID, rl.UserID, int(rl.Quality), string(prev), string(next), rl.DurationMs, toMillis(rl.ReviewedAt),
	)
	if err != nil {
		return mapError(err, "review_log", rl.ID)
	}
	return nil
}

// GetLastByWordID returns the most recent review log of a word.
func (r *ReviewLogRepo) GetLastByWordID(ctx context.Context, userID, wordID uuid.UUID) (*domain.ReviewLog, error) {
	var dst reviewLogRow
	if err := sqlscan.Get(ctx, r.db.q(ctx), &dst, lastReviewLogSQL, wordID, userID); err != nil {
		return nil, mapError(err, "review_log", wordID)
	}

	rl, err := dst.toDomain()
	if err != nil {
		return nil, err
	}
	return &rl, nil
}

// ListByWordID returns review logs of a word, newest first, with the total count.
func (r *ReviewLogRepo) ListByWordID(ctx context.Context, userID, wordID uuid.UUID, limit, offset int) ([]domain.ReviewLog, int, error) {
	q := r.db.q(ctx)

	var total int
	err := q.QueryRowContext(ctx,
		`SELECT count(*) FROM review_logs WHERE word_id = ? AND user_id = ?`, wordID, userID,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count review_logs by word_id: %w", err)
	}

	var rows []reviewLogRow
	if err := sqlscan.Select(ctx, q, &rows, listReviewLogsSQL, wordID, userID, limit, offset); err != nil {
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
func (r *ReviewLogRepo) CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	var n int
	err := r.db.q(ctx).QueryRowContext(ctx,
		`SELECT count(*) FROM review_logs WHERE user_id = ? AND reviewed_at >= ?`, userID, toMillis(since),
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count review_logs since: %w", err)
	}
	return n, nil
}

// Delete removes a review log by ID.
func (r *ReviewLogRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.q(ctx).ExecContext(ctx, `DELETE FROM review_logs WHERE id = ?`, id)
	if err != nil {
		return mapError(err, "review_log", id)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("review_log %s: rows affected: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("review_log %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteBefore removes review logs older than before.
func (r *ReviewLogRepo) DeleteBefore(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.db.q(ctx).ExecContext(ctx, `DELETE FROM review_logs WHERE reviewed_at < ?`, toMillis(before))
	if err != nil {
		return 0, fmt.Errorf("delete review_logs before %s: %w", before.Format(time.RFC3339), err)
	}
	return res.RowsAffected()
}
