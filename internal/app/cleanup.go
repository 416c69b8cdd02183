package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/mylingua-backend/internal/config"
)

type reviewLogPruner interface {
	DeleteBefore(ctx context.Context, before time.Time) (int64, error)
}

// Cleanup deletes review logs older than the configured retention. It is
// meant to be run from cron, not inside the server process.
func Cleanup(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	store, err := OpenStore(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	_, err = pruneReviewLogs(ctx, store.Reviews, cfg.Study, time.Now(), logger)
	return err
}

func pruneReviewLogs(ctx context.Context, logs reviewLogPruner, cfg config.StudyConfig, now time.Time, logger *slog.Logger) (int64, error) {
	threshold := now.Add(-cfg.ReviewLogRetention())

	deleted, err := logs.DeleteBefore(ctx, threshold)
	if err != nil {
		logger.Error("review log cleanup failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		return 0, fmt.Errorf("delete review logs: %w", err)
	}

	logger.Info("review log cleanup completed",
		slog.Int64("deleted", deleted),
		slog.Time("threshold", threshold),
	)
	return deleted, nil
}
