package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mylingua-backend/internal/adapter/postgres"
	pgprofile "github.com/heartmarshall/mylingua-backend/internal/adapter/postgres/profile"
	pgprogress "github.com/heartmarshall/mylingua-backend/internal/adapter/postgres/progress"
	"github.com/heartmarshall/mylingua-backend/internal/adapter/postgres/quiz"
	"github.com/heartmarshall/mylingua-backend/internal/adapter/postgres/reading"
	"github.com/heartmarshall/mylingua-backend/internal/adapter/postgres/reviewlog"
	"github.com/heartmarshall/mylingua-backend/internal/adapter/postgres/word"
	"github.com/heartmarshall/mylingua-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/mylingua-backend/internal/config"
	"github.com/heartmarshall/mylingua-backend/internal/domain"
)

// WordStore is the union of the word repository methods the services use.
type WordStore interface {
	Create(ctx context.Context, w *domain.Word) (*domain.Word, error)
	GetByID(ctx context.Context, userID, wordID uuid.UUID) (*domain.Word, error)
	GetByIDForUpdate(ctx context.Context, userID, wordID uuid.UUID) (*domain.Word, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.WordFilter) ([]domain.Word, int, error)
	GetDue(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]domain.Word, error)
	CountDue(ctx context.Context, userID uuid.UUID, now time.Time) (int, error)
	Count(ctx context.Context, userID uuid.UUID) (int, error)
	Update(ctx context.Context, userID, wordID uuid.UUID, fields domain.WordFields) (*domain.Word, error)
	UpdateReviewState(ctx context.Context, userID, wordID uuid.UUID, state domain.ReviewState) (*domain.Word, error)
	Delete(ctx context.Context, userID, wordID uuid.UUID) error
}

// ReviewLogStore is the review-log repository contract.
type ReviewLogStore interface {
	Create(ctx context.Context, rl *domain.ReviewLog) error
	GetLastByWordID(ctx context.Context, userID, wordID uuid.UUID) (*domain.ReviewLog, error)
	ListByWordID(ctx context.Context, userID, wordID uuid.UUID, limit, offset int) ([]domain.ReviewLog, int, error)
	CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteBefore(ctx context.Context, before time.Time) (int64, error)
}

// ProgressStore is the progress repository contract.
type ProgressStore interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.Progress, error)
	GetForUpdate(ctx context.Context, userID uuid.UUID) (*domain.Progress, error)
	Update(ctx context.Context, p *domain.Progress) (*domain.Progress, error)
	SetTimezone(ctx context.Context, userID uuid.UUID, tz string) (*domain.Progress, error)
	CreateActivity(ctx context.Context, a *domain.Activity) error
	ListActivities(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Activity, error)
}

// ProfileStore is the profile repository contract.
type ProfileStore interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error)
	GetForUpdate(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error)
	Update(ctx context.Context, p *domain.UserProfile) (*domain.UserProfile, error)
}

// ReadingStore is the reading history repository contract.
type ReadingStore interface {
	Create(ctx context.Context, rec *domain.ReadingRecord) error
	GetByIDForUpdate(ctx context.Context, userID, id uuid.UUID) (*domain.ReadingRecord, error)
	Update(ctx context.Context, rec *domain.ReadingRecord) (*domain.ReadingRecord, error)
	List(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ReadingRecord, error)
}

// QuizStore is the quiz result repository contract.
type QuizStore interface {
	Create(ctx context.Context, res *domain.QuizResult) error
	List(ctx context.Context, userID uuid.UUID, limit int) ([]domain.QuizResult, error)
}

// TxRunner runs fn in a transaction carried by the context.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Store bundles the repositories of one storage backend.
type Store struct {
	Words    WordStore
	Reviews  ReviewLogStore
	Progress ProgressStore
	Profiles ProfileStore
	Readings ReadingStore
	Quizzes  QuizStore
	Tx       TxRunner

	ping  func(ctx context.Context) error
	close func()
}

// Ping checks that the backend is reachable.
func (s *Store) Ping(ctx context.Context) error { return s.ping(ctx) }

// Close releases the backend's connections.
func (s *Store) Close() { s.close() }

// OpenStore connects to the configured backend and, when enabled, applies
// pending migrations.
func OpenStore(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (*Store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return openPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return openSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("open store: unsupported driver %q", cfg.Driver)
	}
}

func openPostgres(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (*Store, error) {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		n, err := postgres.Migrate(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		log.Info("migrations applied", slog.String("driver", cfg.Driver), slog.Int("count", n))
	}

	return &Store{
		Words:    word.New(pool),
		Reviews:  reviewlog.New(pool),
		Progress: pgprogress.New(pool),
		Profiles: pgprofile.New(pool),
		Readings: reading.New(pool),
		Quizzes:  quiz.New(pool),
		Tx:       postgres.NewTxManager(pool),
		ping:     pool.Ping,
		close:    pool.Close,
	}, nil
}

func openSQLite(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (*Store, error) {
	db, err := sqlite.Open(ctx, cfg.DSN)
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		n, err := db.Migrate(ctx)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		log.Info("migrations applied", slog.String("driver", cfg.Driver), slog.Int("count", n))
	}

	return &Store{
		Words:    sqlite.NewWordRepo(db),
		Reviews:  sqlite.NewReviewLogRepo(db),
		Progress: sqlite.NewProgressRepo(db),
		Profiles: sqlite.NewProfileRepo(db),
		Readings: sqlite.NewReadingRepo(db),
		Quizzes:  sqlite.NewQuizRepo(db),
		Tx:       db,
		ping:     db.Ping,
		close:    func() { _ = db.Close() },
	}, nil
}
