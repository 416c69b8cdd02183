// Command cleanup deletes review logs older than the configured retention
// period. It is intended to be invoked by an external cron job.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/mylingua-backend/internal/app"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := app.Cleanup(ctx); err != nil {
		slog.Error("cleanup failed", slog.String("error", err.Error()))
		cancel()
		os.Exit(1)
	}
}
