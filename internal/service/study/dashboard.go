package study

import (
	"context"
	"fmt"

	"github.com/heartmarshall/mylingua-backend/internal/domain"
	"github.com/heartmarshall/mylingua-backend/pkg/ctxutil"
)

// GetDashboard returns aggregated study statistics for the user. "Today" is
// the current day in the user's timezone.
func (s *Service) GetDashboard(ctx context.Context) (domain.Dashboard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Dashboard{}, domain.ErrUnauthorized
	}

	now := s.now()

	prog, err := s.progress.GetProgress(ctx)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("get progress: %w", err)
	}
	dayStart := domain.DayStart(now, domain.ParseTimezone(prog.Timezone))

	total, err := s.words.Count(ctx, userID)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("count words: %w", err)
	}

	due, err := s.words.CountDue(ctx, userID, now)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("count due words: %w", err)
	}

	reviewedToday, err := s.reviews.CountSince(ctx, userID, dayStart)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("count reviewed today: %w", err)
	}

	return domain.Dashboard{
		TotalWords:    total,
		DueCount:      due,
		ReviewedToday: reviewedToday,
		XP:            prog.XP,
		Level:         prog.Level,
		Streak:        prog.Streak,
		LongestStreak: prog.LongestStreak,
	}, nil
}
