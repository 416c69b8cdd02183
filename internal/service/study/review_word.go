package study

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mylingua-backend/internal/domain"
	"github.com/heartmarshall/mylingua-backend/internal/service/progress"
	"github.com/heartmarshall/mylingua-backend/internal/service/study/sm2"
	"github.com/heartmarshall/mylingua-backend/pkg/ctxutil"
)

// ReviewWord grades a word, reschedules it with SM-2 and credits the vocab
// activity. The word row is locked for the whole transaction, so concurrent
// reviews of one word apply one after the other.
func (s *Service) ReviewWord(ctx context.Context, input ReviewWordInput) (*ReviewResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	quality := resolveQuality(input)
	now := s.now().UTC()

	var result ReviewResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		word, err := s.words.GetByIDForUpdate(txCtx, userID, input.WordID)
		if err != nil {
			return fmt.Errorf("get word: %w", err)
		}

		prev := word.Review
		// Words still in learning (zero repetitions) may be drilled at any time;
		// their interval cannot grow until they pass.
		if prev.Repetitions > 0 && !prev.IsDue(now) {
			return fmt.Errorf("word %s is not due until %s: %w",
				word.ID, prev.NextReview.Format(time.RFC3339), domain.ErrConflict)
		}

		next, err := sm2.Schedule(int(quality), prev.Easiness, prev.Interval, prev.Repetitions, now)
		if err != nil {
			return domain.NewValidationError("quality", err.Error())
		}

		updated, err := s.words.UpdateReviewState(txCtx, userID, word.ID, toReviewState(next))
		if err != nil {
			return fmt.Errorf("update review state: %w", err)
		}

		entry := domain.ReviewLog{
			ID:         uuid.New(),
			WordID:     word.ID,
			UserID:     userID,
			Quality:    quality,
			PrevState:  prev,
			NextState:  updated.Review,
			DurationMs: input.DurationMs,
			ReviewedAt: now,
		}
		if err := s.reviews.Create(txCtx, &entry); err != nil {
			return fmt.Errorf("create review log: %w", err)
		}

		activity, err := s.progress.RecordActivity(txCtx, progress.RecordActivityInput{
			Type: domain.ActivityVocab,
			Metadata: map[string]any{
				"word_id": word.ID.String(),
				"quality": int(quality),
			},
		})
		if err != nil {
			return fmt.Errorf("record activity: %w", err)
		}

		result = ReviewResult{
			Word:     *updated,
			Log:      entry,
			XPEarned: activity.Activity.XPEarned,
			Progress: activity.Progress,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "word reviewed",
		slog.String("user_id", userID.String()),
		slog.String("word_id", input.WordID.String()),
		slog.Int("quality", int(quality)),
		slog.Float64("easiness", result.Word.Review.Easiness),
		slog.Int("interval", result.Word.Review.Interval),
		slog.Int("repetitions", result.Word.Review.Repetitions),
	)

	return &result, nil
}
