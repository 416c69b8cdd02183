// Package vocabulary manages the words a learner saves while reading.
package vocabulary

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mylingua-backend/internal/domain"
)

type wordRepo interface {
	Create(ctx context.Context, w *domain.Word) (*domain.Word, error)
	GetByID(ctx context.Context, userID, wordID uuid.UUID) (*domain.Word, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.WordFilter) ([]domain.Word, int, error)
	Update(ctx context.Context, userID, wordID uuid.UUID, fields domain.WordFields) (*domain.Word, error)
	Delete(ctx context.Context, userID, wordID uuid.UUID) error
}

// Service implements the vocabulary business logic.
type Service struct {
	words wordRepo
	log   *slog.Logger
	now   func() time.Time
}

// NewService creates a new Vocabulary service.
func NewService(log *slog.Logger, words wordRepo) *Service {
	return &Service{
		words: words,
		log:   log.With("service", "vocabulary"),
		now:   time.Now,
	}
}
