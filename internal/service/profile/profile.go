package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/mylingua-backend/internal/domain"
	"github.com/heartmarshall/mylingua-backend/pkg/ctxutil"
)

// GetProfile returns the profile of the current user. Users who never saved
// one get the defaults; nothing is written.
func (s *Service) GetProfile(ctx context.Context) (*domain.UserProfile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p, err := s.profiles.Get(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		def := domain.NewUserProfile(userID)
		return &def, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

// UpdateProfile applies a partial change, creating the profile with
// defaults first when the user has none.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.UserProfile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.UserProfile
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := s.profiles.GetForUpdate(txCtx, userID)
		if err != nil {
			return fmt.Errorf("get profile: %w", err)
		}

		input.Fields().Apply(p)

		updated, err = s.profiles.Update(txCtx, p)
		if err != nil {
			return fmt.Errorf("update profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.String("user_id", userID.String()),
		slog.String("cefr_level", updated.CEFRLevel.String()),
		slog.Int("daily_goal_minutes", updated.DailyGoalMinutes),
	)

	return updated, nil
}
