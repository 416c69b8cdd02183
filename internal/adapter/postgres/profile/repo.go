// Package profile implements the user profile repository using PostgreSQL.
package profile

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

// Repo provides profile persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new profile repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const profileColumns = `user_id, cefr_level, learning_goals, topics, daily_goal_minutes, created_at, updated_at`

const (
	getSQL = `SELECT ` + profileColumns + ` FROM user_profiles WHERE user_id = $1`

	ensureSQL = `
INSERT INTO user_profiles (user_id, created_at, updated_at) VALUES ($1, now(), now())
ON CONFLICT (user_id) DO NOTHING`

	getForUpdateSQL = getSQL + ` FOR UPDATE`

	updateSQL = `
UPDATE user_profiles
SET cefr_level = $2, learning_goals = $3, topics = $4, daily_goal_minutes = $5, updated_at = now()
WHERE user_id = $1
RETURNING ` + profileColumns
)

type profileRow struct {
	UserID           uuid.UUID `db:"user_id"`
	CEFRLevel        string    `db:"cefr_level"`
	LearningGoals    string    `db:"learning_goals"`
	Topics           []byte    `db:"topics"`
	DailyGoalMinutes int       `db:"daily_goal_minutes"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

func (r profileRow) toDomain() (*domain.UserProfile, error) {
	p := &domain.UserProfile{
		UserID:           r.UserID,
		CEFRLevel:        domain.CEFRLevel(r.CEFRLevel),
		LearningGoals:    r.LearningGoals,
		Topics:           []string{},
		DailyGoalMinutes: r.DailyGoalMinutes,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
	if len(r.Topics) > 0 {
		if err := json.Unmarshal(r.Topics, &p.Topics); err != nil {
			return nil, fmt.Errorf("user_profile %s: unmarshal topics: %w", r.UserID, err)
		}
	}
	return p, nil
}

func (r *Repo) get(ctx context.Context, q postgres.Querier, query string, args ...any) (*domain.UserProfile, error) {
	var dst profileRow
	if err := pgxscan.Get(ctx, q, &dst, query, args...); err != nil {
		return nil, err
	}
	return dst.toDomain()
}

// Get returns the profile of a user, or domain.ErrNotFound when the user
// never saved one.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	p, err := r.get(ctx, postgres.QuerierFromCtx(ctx, r.db), getSQL, userID)
	if err != nil {
		return nil, postgres.MapError(err, "user_profile", userID)
	}
	return p, nil
}

// GetForUpdate creates the profile with defaults when missing and locks it
// until the surrounding transaction ends.
func (r *Repo) GetForUpdate(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, ensureSQL, userID); err != nil {
		return nil, postgres.MapError(err, "user_profile", userID)
	}

	p, err := r.get(ctx, q, getForUpdateSQL, userID)
	if err != nil {
		return nil, postgres.MapError(err, "user_profile", userID)
	}
	return p, nil
}

// Update writes every mutable profile field.
func (r *Repo) Update(ctx context.Context, p *domain.UserProfile) (*domain.UserProfile, error) {
	topics, err := marshalStrings(p.Topics)
	if err != nil {
		return nil, fmt.Errorf("marshal topics: %w", err)
	}

	out, err := r.get(ctx, postgres.QuerierFromCtx(ctx, r.db), updateSQL,
		p.UserID, string(p.CEFRLevel), p.LearningGoals, topics, p.DailyGoalMinutes,
	)
	if err != nil {
		return nil, postgres.MapError(err, "user_profile", p.UserID)
	}
	return out, nil
}

func marshalStrings(s []string) ([]byte, error) {
	if s == nil {
		return []byte(`[]`), nil
	}
	return json.Marshal(s)
}
