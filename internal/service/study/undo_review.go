package study

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/mylingua-backend/internal/domain"
	"github.com/heartmarshall/mylingua-backend/pkg/ctxutil"
)

// UndoReview restores the state a word had before its latest review, if
// that review happened within the undo window. XP already credited stays.
func (s *Service) UndoReview(ctx context.Context, input UndoReviewInput) (*domain.Word, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	var (
		restored *domain.Word
		undone   domain.Quality
	)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		word, err := s.words.GetByIDForUpdate(txCtx, userID, input.WordID)
		if err != nil {
			return fmt.Errorf("get word: %w", err)
		}

		last, err := s.reviews.GetLastByWordID(txCtx, userID, word.ID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NewValidationError("word_id", "word has no reviews to undo")
			}
			return fmt.Errorf("get last review: %w", err)
		}

		if now.Sub(last.ReviewedAt) > s.cfg.UndoWindow() {
			return domain.NewValidationError("review", "undo window expired")
		}

		restored, err = s.words.UpdateReviewState(txCtx, userID, word.ID, last.PrevState)
		if err != nil {
			return fmt.Errorf("restore review state: %w", err)
		}

		if err := s.reviews.Delete(txCtx, last.ID); err != nil {
			return fmt.Errorf("delete review log: %w", err)
		}

		undone = last.Quality
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "review undone",
		slog.String("user_id", userID.String()),
		slog.String("word_id", input.WordID.String()),
		slog.Int("undone_quality", int(undone)),
		slog.Int("restored_interval", restored.Review.Interval),
	)

	return restored, nil
}
