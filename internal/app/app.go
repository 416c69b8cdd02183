package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/mylingua-backend/internal/auth"
	"github.com/heartmarshall/mylingua-backend/internal/config"
	"github.com/heartmarshall/mylingua-backend/internal/service/profile"
	"github.com/heartmarshall/mylingua-backend/internal/service/progress"
	"github.com/heartmarshall/mylingua-backend/internal/service/study"
	"github.com/heartmarshall/mylingua-backend/internal/service/vocabulary"
	"github.com/heartmarshall/mylingua-backend/internal/transport/middleware"
	"github.com/heartmarshall/mylingua-backend/internal/transport/rest"
)

const rateLimitCleanupInterval = 5 * time.Minute

// Run is the application entry point. It loads configuration, opens the
// store, wires services and serves HTTP until ctx is cancelled, then shuts
// the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("db_driver", cfg.Database.Driver),
	)

	store, err := OpenStore(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	handler, stop := NewHandler(cfg, store, logger)
	defer stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// NewHandler wires services and REST handlers on top of store and wraps
// them in the middleware chain. stop releases background resources.
func NewHandler(cfg *config.Config, store *Store, logger *slog.Logger) (http.Handler, func()) {
	progressSvc := progress.NewService(logger, store.Progress, store.Readings, store.Quizzes, store.Tx, cfg.Progress)
	profileSvc := profile.NewService(logger, store.Profiles, store.Tx)
	vocabularySvc := vocabulary.NewService(logger, store.Words)
	studySvc := study.NewService(logger, store.Words, store.Reviews, progressSvc, store.Tx, cfg.Study)

	router := rest.NewRouter(rest.Handlers{
		Health:   rest.NewHealthHandler(store, BuildVersion()),
		Words:    rest.NewWordHandler(vocabularySvc, studySvc, logger),
		Study:    rest.NewStudyHandler(studySvc, logger),
		Progress: rest.NewProgressHandler(progressSvc, logger),
		Profile:  rest.NewProfileHandler(profileSvc, logger),
	})

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, rateLimitCleanupInterval)

	chain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(),
		middleware.Auth(jwtManager),
	)

	return chain(router), limiter.Stop
}

// serve runs srv until ctx is done, then shuts it down within timeout.
func serve(ctx context.Context, srv *http.Server, timeout time.Duration, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("application stopped")
	return nil
}
