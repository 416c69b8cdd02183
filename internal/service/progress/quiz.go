package progress

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/mylingua-backend/internal/domain"
	"github.com/heartmarshall/mylingua-backend/pkg/ctxutil"
)

// RecordQuizResult stores a finished quiz and credits the quiz activity.
func (s *Service) RecordQuizResult(ctx context.Context, input RecordQuizInput) (*QuizResultOutcome, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	answers := input.Answers
	if answers == nil {
		answers = []string{}
	}
	res := domain.QuizResult{
		ID:             uuid.New(),
		UserID:         userID,
		ArticleID:      input.ArticleID,
		Score:          input.Score,
		TotalQuestions: input.TotalQuestions,
		Answers:        answers,
		CompletedAt:    s.now().UTC(),
	}

	var outcome QuizResultOutcome
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.quizzes.Create(txCtx, &res); err != nil {
			return fmt.Errorf("create quiz result: %w", err)
		}

		act, err := s.RecordActivity(txCtx, RecordActivityInput{
			Type: domain.ActivityQuiz,
			Metadata: map[string]any{
				"article_id": res.ArticleID,
				"quiz_id":    res.ID.String(),
				"score":      res.Score,
				"total":      res.TotalQuestions,
			},
		})
		if err != nil {
			return fmt.Errorf("record activity: %w", err)
		}

		outcome = QuizResultOutcome{Result: res, XPEarned: act.Activity.XPEarned, Progress: act.Progress}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "quiz recorded",
		slog.String("user_id", userID.String()),
		slog.String("article_id", res.ArticleID),
		slog.Int("score", res.Score),
		slog.Int("total", res.TotalQuestions),
	)

	return &outcome, nil
}

// ListQuizResults returns the newest quiz results of the current user.
func (s *Service) ListQuizResults(ctx context.Context, input ListHistoryInput) ([]domain.QuizResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	results, err := s.quizzes.List(ctx, userID, input.limit())
	if err != nil {
		return nil, fmt.Errorf("list quiz results: %w", err)
	}
	return results, nil
}
