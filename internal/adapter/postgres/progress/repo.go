// Package progress implements the user progress and activity repositories
// using PostgreSQL.
package progress

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

// Repo provides progress and activity persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new progress repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const progressColumns = `user_id, xp, level, streak_days, longest_streak, last_active_date, timezone, updated_at`

const (
	getSQL = `SELECT ` + progressColumns + ` FROM user_progress WHERE user_id = $1`

	ensureSQL = `
INSERT INTO user_progress (user_id, updated_at) VALUES ($1, now())
ON CONFLICT (user_id) DO NOTHING`

	getForUpdateSQL = getSQL + ` FOR UPDATE`

	updateSQL = `
UPDATE user_progress
SET xp = $2, level = $3, streak_days = $4, longest_streak = $5,
    last_active_date = $6, updated_at = now()
WHERE user_id = $1
RETURNING ` + progressColumns

	setTimezoneSQL = `
INSERT INTO user_progress (user_id, timezone, updated_at) VALUES ($1, $2, now())
ON CONFLICT (user_id) DO UPDATE SET timezone = EXCLUDED.timezone, updated_at = now()
RETURNING ` + progressColumns

	insertActivitySQL = `
INSERT INTO activities (id, user_id, activity_type, xp_earned, metadata, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	listActivitiesSQL = `
SELECT id, user_id, activity_type, xp_earned, metadata, created_at
FROM activities
WHERE user_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2`
)

type progressRow struct {
	UserID         uuid.UUID  `db:"user_id"`
	XP             int        `db:"xp"`
	Level          int        `db:"level"`
	StreakDays     int        `db:"streak_days"`
	LongestStreak  int        `db:"longest_streak"`
	LastActiveDate *time.Time `db:"last_active_date"`
	Timezone       string     `db:"timezone"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

func (r progressRow) toDomain() *domain.Progress {
	return &domain.Progress{
		UserID:         r.UserID,
		XP:             r.XP,
		Level:          r.Level,
		Streak:         r.StreakDays,
		LongestStreak:  r.LongestStreak,
		LastActiveDate: r.LastActiveDate,
		Timezone:       r.Timezone,
		UpdatedAt:      r.UpdatedAt,
	}
}

type activityRow struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Type      string    `db:"activity_type"`
	XPEarned  int       `db:"xp_earned"`
	Metadata  []byte    `db:"metadata"`
	CreatedAt time.Time `db:"created_at"`
}

// Get returns the progress of a user, or domain.ErrNotFound when the user
// has no recorded progress.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID) (*domain.Progress, error) {
	var dst progressRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, getSQL, userID); err != nil {
		return nil, postgres.MapError(err, "user_progress", userID)
	}
	return dst.toDomain(), nil
}

// GetForUpdate creates the progress row when missing and locks it until the
// surrounding transaction ends.
func (r *Repo) GetForUpdate(ctx context.Context, userID uuid.UUID) (*domain.Progress, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, ensureSQL, userID); err != nil {
		return nil, postgres.MapError(err, "user_progress", userID)
	}

	var dst progressRow
	if err := pgxscan.Get(ctx, q, &dst, getForUpdateSQL, userID); err != nil {
		return nil, postgres.MapError(err, "user_progress", userID)
	}
	return dst.toDomain(), nil
}

// Update writes XP, level and streak fields.
func (r *Repo) Update(ctx context.Context, p *domain.Progress) (*domain.Progress, error) {
	var dst progressRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, updateSQL,
		p.UserID, p.XP, p.Level, p.Streak, p.LongestStreak, p.LastActiveDate,
	)
	if err != nil {
		return nil, postgres.MapError(err, "user_progress", p.UserID)
	}
	return dst.toDomain(), nil
}

// SetTimezone stores the IANA timezone of a user, creating the row if needed.
func (r *Repo) SetTimezone(ctx context.Context, userID uuid.UUID, tz string) (*domain.Progress, error) {
	var dst progressRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, setTimezoneSQL, userID, tz); err != nil {
		return nil, postgres.MapError(err, "user_progress", userID)
	}
	return dst.toDomain(), nil
}

// CreateActivity appends an activity to the log.
func (r *Repo) CreateActivity(ctx context.Context, a *domain.Activity) error {
	meta, err := marshalMetadata(a.Metadata)
	if err != nil {
		return err
	}

	_, err = postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, insertActivitySQL,
		a.ID, a.UserID, string(a.Type), a.XPEarned, meta, a.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "activity", a.ID)
	}
	return nil
}

// ListActivities returns the newest activities of a user.
func (r *Repo) ListActivities(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Activity, error) {
	var rows []activityRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listActivitiesSQL, userID, limit); err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	activities := make([]domain.Activity, len(rows))
	for i, row := range rows {
		a := domain.Activity{
			ID:        row.ID,
			UserID:    row.UserID,
			Type:      domain.ActivityType(row.Type),
			XPEarned:  row.XPEarned,
			CreatedAt: row.CreatedAt,
		}
		if len(row.Metadata) > 0 {
			if err := json.Unmarshal(row.Metadata, &a.Metadata); err != nil {
				return nil, fmt.Errorf("activity %s: unmarshal metadata: %w", row.ID, err)
			}
		}
		activities[i] = a
	}
	return activities, nil
}

func marshalMetadata(m map[string]any) ([]byte, error) {
	if m == nil {
		return []byte(`{}`), nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal activity metadata: %w", err)
	}
	return b, nil
}
