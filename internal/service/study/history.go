package study

import (
	"context"
	"fmt"

	"github.com/heartmarshall/mylingua-backend/internal/domain"
	"github.com/heartmarshall/mylingua-backend/pkg/ctxutil"
)

// GetWordHistory returns the reviews of a word, newest first.
func (s *Service) GetWordHistory(ctx context.Context, input GetWordHistoryInput) (*WordHistory, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = defaultHistoryLimit
	}

	// Ownership check: foreign words are reported as missing.
	if _, err := s.words.GetByID(ctx, userID, input.WordID); err != nil {
		return nil, fmt.Errorf("get word: %w", err)
	}

	logs, total, err := s.reviews.ListByWordID(ctx, userID, input.WordID, limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list review logs: %w", err)
	}

	return &WordHistory{Logs: logs, Total: total}, nil
}
