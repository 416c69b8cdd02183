// Package progress keeps XP, level and day-streak bookkeeping, the
// append-only activity log and the reading and quiz records that earn XP.
package progress

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mylingua-backend/internal/config"
	"github.com/heartmarshall/mylingua-backend/internal/domain"
)

type progressRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.Progress, error)
	GetForUpdate(ctx context.Context, userID uuid.UUID) (*domain.Progress, error)
	Update(ctx context.Context, p *domain.Progress) (*domain.Progress, error)
	SetTimezone(ctx context.Context, userID uuid.UUID, tz string) (*domain.Progress, error)
	CreateActivity(ctx context.Context, a *domain.Activity) error
	ListActivities(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Activity, error)
}

type readingRepo interface {
	Create(ctx context.Context, rec *domain.ReadingRecord) error
	GetByIDForUpdate(ctx context.Context, userID, id uuid.UUID) (*domain.ReadingRecord, error)
	Update(ctx context.Context, rec *domain.ReadingRecord) (*domain.ReadingRecord, error)
	List(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ReadingRecord, error)
}

type quizRepo interface {
	Create(ctx context.Context, res *domain.QuizResult) error
	List(ctx context.Context, userID uuid.UUID, limit int) ([]domain.QuizResult, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	defaultActivityLimit = 50
	maxActivityLimit     = 200

	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

// Service implements the progress business logic.
type Service struct {
	progress progressRepo
	readings readingRepo
	quizzes  quizRepo
	tx       txManager
	log      *slog.Logger
	cfg      config.ProgressConfig
	now      func() time.Time
}

// NewService creates a new Progress service.
func NewService(
	log *slog.Logger,
	progress progressRepo,
	readings readingRepo,
	quizzes quizRepo,
	tx txManager,
	cfg config.ProgressConfig,
) *Service {
	return &Service{
		progress: progress,
		readings: readings,
		quizzes:  quizzes,
		tx:       tx,
		log:      log.With("service", "progress"),
		cfg:      cfg,
		now:      time.Now,
	}
}

// XPFor returns the XP reward of an activity type.
func (s *Service) XPFor(t domain.ActivityType) int {
	switch t {
	case domain.ActivityRead:
		return s.cfg.XPRead
	case domain.ActivityQuiz:
		return s.cfg.XPQuiz
	case domain.ActivityVocab:
		return s.cfg.XPVocab
	case domain.ActivityGame:
		return s.cfg.XPGame
	case domain.ActivityChat:
		return s.cfg.XPChat
	}
	return 0
}
