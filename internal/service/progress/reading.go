package progress

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/mylingua-backend/internal/domain"
	"github.com/heartmarshall/mylingua-backend/pkg/ctxutil"
)

// RecordReading stores a reading session. A session stored as completed
// credits the read activity in the same transaction.
func (s *Service) RecordReading(ctx context.Context, input RecordReadingInput) (*ReadingResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	rec := domain.ReadingRecord{
		ID:               uuid.New(),
		UserID:           userID,
		ArticleID:        input.ArticleID,
		Completed:        input.Completed,
		TimeSpentSeconds: input.TimeSpentSeconds,
		ReadAt:           s.now().UTC(),
	}

	result := ReadingResult{Reading: rec}
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.readings.Create(txCtx, &rec); err != nil {
			return fmt.Errorf("create reading: %w", err)
		}
		if rec.Completed {
			return s.creditReading(txCtx, &rec, &result)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "reading recorded",
		slog.String("user_id", userID.String()),
		slog.String("article_id", rec.ArticleID),
		slog.Bool("completed", rec.Completed),
	)

	return &result, nil
}

// UpdateReading changes time spent or completes a session. Completing it
// credits the read activity once.
func (s *Service) UpdateReading(ctx context.Context, input UpdateReadingInput) (*ReadingResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var result ReadingResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		rec, err := s.readings.GetByIDForUpdate(txCtx, userID, input.ID)
		if err != nil {
			return fmt.Errorf("get reading: %w", err)
		}

		wasCompleted := rec.Completed
		if input.Completed != nil {
			if wasCompleted && !*input.Completed {
				return domain.NewValidationError("completed", "a completed reading cannot be reopened")
			}
			rec.Completed = *input.Completed
		}
		if input.TimeSpentSeconds != nil {
			rec.TimeSpentSeconds = *input.TimeSpentSeconds
		}

		updated, err := s.readings.Update(txCtx, rec)
		if err != nil {
			return fmt.Errorf("update reading: %w", err)
		}
		result.Reading = *updated

		if !wasCompleted && updated.Completed {
			return s.creditReading(txCtx, updated, &result)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "reading updated",
		slog.String("user_id", userID.String()),
		slog.String("reading_id", input.ID.String()),
		slog.Bool("completed", result.Reading.Completed),
	)

	return &result, nil
}

func (s *Service) creditReading(ctx context.Context, rec *domain.ReadingRecord, result *ReadingResult) error {
	act, err := s.RecordActivity(ctx, RecordActivityInput{
		Type: domain.ActivityRead,
		Metadata: map[string]any{
			"article_id":         rec.ArticleID,
			"reading_id":         rec.ID.String(),
			"time_spent_seconds": rec.TimeSpentSeconds,
		},
	})
	if err != nil {
		return fmt.Errorf("record activity: %w", err)
	}
	result.XPEarned = act.Activity.XPEarned
	result.Progress = &act.Progress
	return nil
}

// ListReadingHistory returns the newest reading sessions of the current user.
func (s *Service) ListReadingHistory(ctx context.Context, input ListHistoryInput) ([]domain.ReadingRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	recs, err := s.readings.List(ctx, userID, input.limit())
	if err != nil {
		return nil, fmt.Errorf("list readings: %w", err)
	}
	return recs, nil
}
