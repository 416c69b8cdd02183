package progress

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/mylingua-backend/internal/domain"
	"github.com/heartmarshall/mylingua-backend/pkg/ctxutil"
)

// GetProgress returns the progress of the current user. Users without any
// activity get the zero progress; nothing is written.
func (s *Service) GetProgress(ctx context.Context) (*domain.Progress, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p, err := s.progress.Get(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		zero := domain.NewProgress(userID)
		return &zero, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}

	p.Streak = currentStreak(p, domain.CalendarDate(s.now(), domain.ParseTimezone(p.Timezone)))
	return p, nil
}

// ListActivities returns the newest activities of the current user.
func (s *Service) ListActivities(ctx context.Context, input ListActivitiesInput) ([]domain.Activity, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = defaultActivityLimit
	}

	activities, err := s.progress.ListActivities(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return activities, nil
}

// SetTimezone changes the timezone used for streak and "today" boundaries.
func (s *Service) SetTimezone(ctx context.Context, input SetTimezoneInput) (*domain.Progress, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	p, err := s.progress.SetTimezone(ctx, userID, input.Timezone)
	if err != nil {
		return nil, fmt.Errorf("set timezone: %w", err)
	}

	s.log.InfoContext(ctx, "timezone updated",
		slog.String("user_id", userID.String()),
		slog.String("timezone", input.Timezone),
	)

	p.Streak = currentStreak(p, domain.CalendarDate(s.now(), domain.ParseTimezone(p.Timezone)))
	return p, nil
}
