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

// ProfileRepo provides profile persistence backed by SQLite.
type ProfileRepo struct {
	db *DB
}

// NewProfileRepo creates a new profile repository.
func NewProfileRepo(db *DB) *ProfileRepo {
	return &ProfileRepo{db: db}
}

const profileColumns = `user_id, cefr_level, learning_goals, topics, daily_goal_minutes, created_at, updated_at`

const (
	getProfileSQL = `SELECT ` + profileColumns + ` FROM user_profiles WHERE user_id = ?`

	ensureProfileSQL = `
INSERT INTO user_profiles (user_id, created_at, updated_at) VALUES (?, ?, ?)
ON CONFLICT (user_id) DO NOTHING`

	updateProfileSQL = `
UPDATE user_profiles
SET cefr_level = ?, learning_goals = ?, topics = ?, daily_goal_minutes = ?, updated_at = ?
WHERE user_id = ?
RETURNING ` + profileColumns
)

type profileRow struct {
	UserID           uuid.UUID `db:"user_id"`
	CEFRLevel        string    `db:"cefr_level"`
	LearningGoals    string    `db:"learning_goals"`
	Topics           string    `db:"topics"`
	DailyGoalMinutes int       `db:"daily_goal_minutes"`
	CreatedAt        int64     `db:"created_at"`
	UpdatedAt        int64     `db:"updated_at"`
}

func (r profileRow) toDomain() (*domain.UserProfile, error) {
	p := &domain.UserProfile{
		UserID:           r.UserID,
		CEFRLevel:        domain.CEFRLevel(r.CEFRLevel),
		LearningGoals:    r.LearningGoals,
		Topics:           []string{},
		DailyGoalMinutes: r.DailyGoalMinutes,
		CreatedAt:        fromMillis(r.CreatedAt),
		UpdatedAt:        fromMillis(r.UpdatedAt),
	}
	if err := json.Unmarshal([]byte(r.Topics), &p.Topics); err != nil {
		return nil, fmt.Errorf("user_profile %s: unmarshal topics: %w", r.UserID, err)
	}
	return p, nil
}

func (r *ProfileRepo) getProfile(ctx context.Context, query string, args ...any) (*domain.UserProfile, error) {
	var dst profileRow
	if err := sqlscan.Get(ctx, r.db.q(ctx), &dst, query, args...); err != nil {
		return nil, err
	}
	return dst.toDomain()
}

// Get returns the profile of a user, or domain.ErrNotFound.
func (r *ProfileRepo) Get(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	p, err := r.getProfile(ctx, getProfileSQL, userID)
	if err != nil {
		return nil, mapError(err, "user_profile", userID)
	}
	return p, nil
}

// GetForUpdate creates the profile with defaults when missing and returns it.
func (r *ProfileRepo) GetForUpdate(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	now := toMillis(time.Now())
	if _, err := r.db.q(ctx).ExecContext(ctx, ensureProfileSQL, userID, now, now); err != nil {
		return nil, mapError(err, "user_profile", userID)
	}
	return r.Get(ctx, userID)
}

// Update writes every mutable profile field.
func (r *ProfileRepo) Update(ctx context.Context, p *domain.UserProfile) (*domain.UserProfile, error) {
	topics, err := jsonStrings(p.Topics)
	if err != nil {
		return nil, fmt.Errorf("marshal topics: %w", err)
	}

	out, err := r.getProfile(ctx, updateProfileSQL,
		string(p.CEFRLevel), p.LearningGoals, topics, p.DailyGoalMinutes, toMillis(time.Now()), p.UserID,
	)
	if err != nil {
		return nil, mapError(err, "user_profile", p.UserID)
	}
	return out, nil
}

func jsonStrings(s []string) (string, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
