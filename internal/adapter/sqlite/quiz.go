package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/georgysavva/scany/v2/sqlscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/mylingua-backend/internal/domain"
)

// QuizRepo provides quiz result persistence backed by SQLite.
type QuizRepo struct {
	db *DB
}

// NewQuizRepo creates a new quiz result repository.
func NewQuizRepo(db *DB) *QuizRepo {
	return &QuizRepo{db: db}
}

const (
	insertQuizSQL = `
INSERT INTO quiz_results (id, user_id, article_id, score, total_questions, answers, completed_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`

	listQuizzesSQL = `
SELECT id, user_id, article_id, score, total_questions, answers, completed_at
FROM quiz_results
WHERE user_id = ?
ORDER BY completed_at DESC, rowid DESC
LIMIT ?`
)

type quizRow struct {
	ID             uuid.UUID `db:"id"`
	UserID         uuid.UUID `db:"user_id"`
	ArticleID      string    `db:"article_id"`
	Score          int       `db:"score"`
	TotalQuestions int       `db:"total_questions"`
	Answers        string    `db:"answers"`
	CompletedAt    int64     `db:"completed_at"`
}

// Create inserts a quiz result.
func (r *QuizRepo) Create(ctx context.Context, res *domain.QuizResult) error {
	answers, err := jsonStrings(res.Answers)
	if err != nil {
		return fmt.Errorf("marshal quiz answers: %w", err)
	}

	_, err = r.db.q(ctx).ExecContext(ctx, insertQuizSQL,
		res.ID, res.UserID, res.ArticleID, res.Score, res.TotalQuestions, answers, toMillis(res.CompletedAt),
	)
	if err != nil {
		return mapError(err, "quiz_result", res.ID)
	}
	return nil
}

// List returns the newest quiz results of a user.
func (r *QuizRepo) List(ctx context.Context, userID uuid.UUID, limit int) ([]domain.QuizResult, error) {
	var rows []quizRow
	if err := sqlscan.Select(ctx, r.db.q(ctx), &rows, listQuizzesSQL, userID, limit); err != nil {
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
			CompletedAt:    fromMillis(row.CompletedAt),
		}
		if err := json.Unmarshal([]byte(row.Answers), &res.Answers); err != nil {
			return nil, fmt.Errorf("quiz_result %s: unmarshal answers: %w", row.ID, err)
		}
		out[i] = res
	}
	return out, nil
}
