package study

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/mylingua-backend/internal/domain"
	"github.com/heartmarshall/mylingua-backend/pkg/ctxutil"
)

// GetReviewQueue returns the words due now, the longest-overdue first.
func (s *Service) GetReviewQueue(ctx context.Context, input GetQueueInput) ([]domain.Word, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.QueueMaxLimit); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.cfg.QueueDefaultLimit
	}

	words, err := s.words.GetDue(ctx, userID, s.now(), limit)
	if err != nil {
		return nil, fmt.Errorf("get due words: %w", err)
	}

	s.log.InfoContext(ctx, "review queue generated",
		slog.String("user_id", userID.String()),
		slog.Int("due_count", len(words)),
	)

	return words, nil
}
