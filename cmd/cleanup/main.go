// Command cleanup runs the periodic maintenance jobs: it removes likes whose
// video, comment or tweet no longer exists and prunes search history older
// than the configured retention. Schedule it from an external cron.
//
// Exit codes: 0 = every job succeeded, 1 = startup failed or a job failed.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/vidstream-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vidstream-backend/internal/adapter/postgres/like"
	"github.com/heartmarshall/vidstream-backend/internal/adapter/postgres/searchhistory"
	"github.com/heartmarshall/vidstream-backend/internal/app"
	"github.com/heartmarshall/vidstream-backend/internal/config"
)

type job struct {
	name string
	run  func(ctx context.Context) (int64, error)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log).With("command", "cleanup")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Cleanup.Timeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	jobs := []job{{name: "orphaned_likes", run: like.New(pool).DeleteOrphans}}
	if retention := cfg.Cleanup.SearchHistoryRetention; retention > 0 {
		history := searchhistory.New(pool)
		jobs = append(jobs, job{name: "search_history", run: func(ctx context.Context) (int64, error) {
			return history.DeleteOlderThan(ctx, time.Now().Add(-retention))
		}})
	}

	failed := false
	for _, j := range jobs {
		start := time.Now()
		deleted, err := j.run(ctx)
		if err != nil {
			logger.Error("cleanup job failed", slog.String("job", j.name), slog.String("error", err.Error()))
			failed = true
			continue
		}
		logger.Info("cleanup job completed",
			slog.String("job", j.name),
			slog.Int64("deleted", deleted),
			slog.Duration("duration", time.Since(start)),
		)
	}

	if failed {
		pool.Close()
		os.Exit(1)
	}
}
