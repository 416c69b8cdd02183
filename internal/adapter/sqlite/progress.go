package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/sqlscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/mylingua-backend/internal/domain"
)

// ProgressRepo provides progress and activity persistence backed by SQLite.
type ProgressRepo struct {
	db *DB
}

// NewProgressRepo creates a new progress repository.
func NewProgressRepo(db *DB) *ProgressRepo {
	return &ProgressRepo{db: db}
}

const progressColumns = `user_id, xp, level, streak_days, longest_streak, last_active_date, timezone, updated_at`

const (
	getProgressSQL = `SELECT ` + progressColumns + ` FROM user_progress WHERE user_id = ?`

	ensureProgressSQL = `
INSERT INTO user_progress (user_id, updated_at) VALUES (?, ?)
ON CONFLICT (user_id) DO NOTHING`

	updateProgressSQL = `
UPDATE user_progress
SET xp = ?, level = ?, streak_days = ?, longest_streak = ?, last_active_date = ?, updated_at = ?
WHERE user_id = ?
RETURNING ` + progressColumns

	setTimezoneSQL = `
INSERT INTO user_progress (user_id, timezone, updated_at) VALUES (?, ?, ?)
ON CONFLICT (user_id) DO UPDATE SET timezone = excluded.timezone, updated_at = excluded.updated_at
RETURNING ` + progressColumns

	insertActivitySQL = `
INSERT INTO activities (id, user_id, activity_type, xp_earned, metadata, created_at)
VALUES (?, ?, ?, ?, ?, ?)`

	listActivitiesSQL = `
SELECT id, user_id, activity_type, xp_earned, metadata, created_at
FROM activities
WHERE user_id = ?
ORDER BY created_at DESC, rowid DESC
LIMIT ?`
)

type progressRow struct {
	UserID         uuid.UUID      `db:"user_id"`
	XP             int            `db:"xp"`
	Level          int            `db:"level"`
	StreakDays     int            `db:"streak_days"`
	LongestStreak  int            `db:"longest_streak"`
	LastActiveDate sql.NullString `db:"last_active_date"`
	Timezone       string         `db:"timezone"`
	UpdatedAt      int64          `db:"updated_at"`
}

func (r progressRow) toDomain() (*domain.Progress, error) {
	p := &domain.Progress{
		UserID:        r.UserID,
		XP:            r.XP,
		Level:         r.Level,
		Streak:        r.StreakDays,
		LongestStreak: r.LongestStreak,
		Timezone:      r.Timezone,
		UpdatedAt:     fromMillis(r.UpdatedAt),
	}
	if r.LastActiveDate.Valid {
		d, err := time.Parse(dateLayout, r.LastActiveDate.String)
		if err != nil {
			return nil, fmt.Errorf("user_progress %s: parse last_active_date: %w", r.UserID, err)
		}
		p.LastActiveDate = &d
	}
	return p, nil
}

func dateValue(d *time.Time) sql.NullString {
	if d == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: d.Format(dateLayout), Valid: true}
}

type activityRow struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Type      string    `db:"activity_type"`
	XPEarned  int       `db:"xp_earned"`
	Metadata  string    `db:"metadata"`
	CreatedAt int64     `db:"created_at"`
}

func (r *ProgressRepo) getProgress(ctx context.Context, query string, args ...any) (*domain.Progress, error) {
	var dst progressRow
	if err := sqlscan.Get(ctx, r.db.q(ctx), &dst, query, args...); err != nil {
		return nil, err
	}
	return dst.toDomain()
}

// Get returns the progress of a user, or domain.ErrNotFound.
func (r *ProgressRepo) Get(ctx context.Context, userID uuid.UUID) (*domain.Progress, error) {
	p, err := r.getProgress(ctx, getProgressSQL, userID)
	if err != nil {
		return nil, mapError(err, "user_progress", userID)
	}
	return p, nil
}

// GetForUpdate creates the progress row when missing and returns it.
func (r *ProgressRepo) GetForUpdate(ctx context.Context, userID uuid.UUID) (*domain.Progress, error) {
	if _, err := r.db.q(ctx).ExecContext(ctx, ensureProgressSQL, userID, toMillis(time.Now())); err != nil {
		return nil, mapError(err, "user_progress", userID)
	}
	return r.Get(ctx, userID)
}

// Update writes XP, level and streak fields.
func (r *ProgressRepo) Update(ctx context.Context, p *domain.Progress) (*domain.Progress, error) {
	out, err := r.getProgress(ctx, updateProgressSQL,
		p.XP, p.Level, p.Streak, p.LongestStreak, dateValue(p.LastActiveDate), toMillis(time.Now()), p.UserID,
	)
	if err != nil {
		return nil, mapError(err, "user_progress", p.UserID)
	}
	return out, nil
}

// SetTimezone stores the IANA timezone of a user, creating the row if needed.
func (r *ProgressRepo) SetTimezone(ctx context.Context, userID uuid.UUID, tz string) (*domain.Progress, error) {
	p, err := r.getProgress(ctx, setTimezoneSQL, userID, tz, toMillis(time.Now()))
	if err != nil {
		return nil, mapError(err, "user_progress", userID)
	}
	return p, nil
}

// CreateActivity appends an activity to the log.
func (r *ProgressRepo) CreateActivity(ctx context.Context, a *domain.Activity) error {
	meta := "{}"
	if a.Metadata != nil {
		b, err := json.Marshal(a.Metadata)
		if err != nil {
			return fmt.Errorf("marshal activity metadata: %w", err)
		}
		meta = string(b)
	}

	_, err := r.db.q(ctx).ExecContext(ctx, insertActivitySQL,
		a.ID, a.UserID, string(a.Type), a.XPEarned, meta, toMillis(a.CreatedAt),
	)
	if err != nil {
		return mapError(err, "activity", a.ID)
	}
	return nil
}

// ListActivities returns the newest activities of a user.
func (r *ProgressRepo) ListActivities(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Activity, error) {
	var rows []activityRow
	if err := sqlscan.Select(ctx, r.db.q(ctx), &rows, listActivitiesSQL, userID, limit); err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	activities := make([]domain.Activity, len(rows))
	for i, row := range rows {
		a := domain.Activity{
			ID:        row.ID,
			UserID:    row.UserID,
			Type:      domain.ActivityType(row.Type),
			XPEarned:  row.XPEarned,
			CreatedAt: fromMillis(row.CreatedAt),
		}
		if err := json.Unmarshal([]byte(row.Metadata), &a.Metadata); err != nil {
			return nil, fmt.Errorf("activity %s: unmarshal metadata: %w", row.ID, err)
		}
		activities[i] = a
	}
	return activities, nil
}
