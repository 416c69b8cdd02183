package progress

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/mylingua-backend/internal/domain"
	"github.com/heartmarshall/mylingua-backend/pkg/ctxutil"
)

// RecordActivity appends an activity and applies its XP and streak effect.
// When ctx carries a transaction the writes join it.
func (s *Service) RecordActivity(ctx context.Context, input RecordActivityInput) (*RecordActivityResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	activity := domain.Activity{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      input.Type,
		XPEarned:  s.XPFor(input.Type),
		Metadata:  input.Metadata,
		CreatedAt: now,
	}

	var updated *domain.Progress
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := s.progress.GetForUpdate(txCtx, userID)
		if err != nil {
			return fmt.Errorf("get progress: %w", err)
		}

		p.XP += activity.XPEarned
		p.Level = domain.LevelForXP(p.XP, s.cfg.XPPerLevel)
		advanceStreak(p, domain.CalendarDate(now, domain.ParseTimezone(p.Timezone)))

		if err := s.progress.CreateActivity(txCtx, &activity); err != nil {
			return fmt.Errorf("create activity: %w", err)
		}

		updated, err = s.progress.Update(txCtx, p)
		if err != nil {
			return fmt.Errorf("update progress: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "activity recorded",
		slog.String("user_id", userID.String()),
		slog.String("type", input.Type.String()),
		slog.Int("xp_earned", activity.XPEarned),
		slog.Int("xp", updated.XP),
		slog.Int("streak", updated.Streak),
	)

	return &RecordActivityResult{Activity: activity, Progress: *updated}, nil
}
