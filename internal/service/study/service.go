// Package study runs review sessions: it builds the due queue, applies the
// SM-2 scheduler to reviews, keeps the review history and reports study
// statistics.
package study

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mylingua-backend/internal/config"
	"github.com/heartmarshall/mylingua-backend/internal/domain"
	"github.com/heartmarshall/mylingua-backend/internal/service/progress"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type wordRepo interface {
	GetByID(ctx context.Context, userID, wordID uuid.UUID) (*domain.Word, error)
	GetByIDForUpdate(ctx context.Context, userID, wordID uuid.UUID) (*domain.Word, error)
	GetDue(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]domain.Word, error)
	CountDue(ctx context.Context, userID uuid.UUID, now time.Time) (int, error)
	Count(ctx context.Context, userID uuid.UUID) (int, error)
	UpdateReviewState(ctx context.Context, userID, wordID uuid.UUID, state domain.ReviewState) (*domain.Word, error)
}

type reviewLogRepo interface {
	Create(ctx context.Context, log *domain.ReviewLog) error
	GetLastByWordID(ctx context.Context, userID, wordID uuid.UUID) (*domain.ReviewLog, error)
	ListByWordID(ctx context.Context, userID, wordID uuid.UUID, limit, offset int) ([]domain.ReviewLog, int, error)
	CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type progressTracker interface {
	RecordActivity(ctx context.Context, input progress.RecordActivityInput) (*progress.RecordActivityResult, error)
	GetProgress(ctx context.Context) (*domain.Progress, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the study business logic.
type Service struct {
	words    wordRepo
	reviews  reviewLogRepo
	progress progressTracker
	tx       txManager
	log      *slog.Logger
	cfg      config.StudyConfig
	now      func() time.Time
}

// NewService creates a new Study service.
func NewService(
	log *slog.Logger,
	words wordRepo,
	reviews reviewLogRepo,
	progress progressTracker,
	tx txManager,
	cfg config.StudyConfig,
) *Service {
	return &Service{
		words:    words,
		reviews:  reviews,
		progress: progress,
		tx:       tx,
		log:      log.With("service", "study"),
		cfg:      cfg,
		now:      time.Now,
	}
}
