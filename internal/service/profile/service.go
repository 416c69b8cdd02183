// Package profile stores the learner's level, goals and topic preferences.
package profile

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/mylingua-backend/internal/domain"
)

type profileRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error)
	GetForUpdate(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error)
	Update(ctx context.Context, p *domain.UserProfile) (*domain.UserProfile, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the profile business logic.
type Service struct {
	profiles profileRepo
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new Profile service.
func NewService(log *slog.Logger, profiles profileRepo, tx txManager) *Service {
	return &Service{
		profiles: profiles,
		tx:       tx,
		log:      log.With("service", "profile"),
	}
}
