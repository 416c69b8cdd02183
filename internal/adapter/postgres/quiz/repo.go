// Package quiz implements the quiz result repository using PostgreSQL.
package quiz

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

// Repo provides quiz result persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new quiz result repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const (
	insertSQL = `
INSERT INTO quiz_results (id, user_id, article_id, score, total_questions, answers, completed_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	listSQL = `
SELECT id, user_id, article_id, score, total_questions, answers, completed_at
FROM quiz_results
WHERE user_id = $1
ORDER BY completed_at DESC, id DESC
LIMIT $2`
)

type quizRow struct {
	ID             uuid.UUID `db:"id"`
	UserID         uuid.UUID `db:"user_id"`
	ArticleID      string    `db:"article_id"`
	Score          int       `db:"score"`
	TotalQuestions int       `db:"total_questions"`
	Answers        []byte    `db:"answers"`
	CompletedAt    time.Time `db:"completed_at"`
}

// Create inserts a quiz result.
func (r *Repo) Create(ctx context.Context, res *domain.QuizResult) error {
	answers := res.Answers
	if answers == nil {
		answers = []string{}
	}
	b, err := json.Marshal(answers)
	if err != nil {
		return fmt.Errorf("marshal quiz answers: %w", err)
	}

	_, err = postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, insertSQL,
		res.ID, res.UserID, res.ArticleID, res.Score, res.TotalQuestions, b, res.CompletedAt,
	)
	if err != nil {
		return postgres.MapError(err, "quiz_result", res.ID)
	}
	return nil
}

// List returns the newest quiz results of a user.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, limit int) ([]domain.QuizResult, error) {
	var rows []quizRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listSQL, userID, limit); err != nil {
		return nil, fmt.Errorf("list quiz results: %w", err)
	}

	out := make([]domain.QuizResult, len(rows))
	for i, row := range rows {
		res := domain.QuizResult{
			ID:             row.ID,
			UserID:         row.UserID,
			ArticleID:      row.ArticleID,
			Score:          row.Score,
			TotalQuestions: row.TotalQuestions,
			Answers:        []string{},
			CompletedAt:    row.CompletedAt,
		}
		if len(row.Answers) > 0 {
			if err := json.Unmarshal(row.Answers, &res.Answers); err != nil {
				return nil, fmt.Errorf("quiz_result %s: unmarshal answers: %w", row.ID, err)
			}
		}
		out[i] = res
	}
	return out, nil
}
