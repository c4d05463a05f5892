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

	"github.com/heartmarshall/vidstream-backend/internal/adapter/media"
	"github.com/heartmarshall/vidstream-backend/internal/adapter/postgres"
	commentrepo "github.com/heartmarshall/vidstream-backend/internal/adapter/postgres/comment"
	likerepo "github.com/heartmarshall/vidstream-backend/internal/adapter/postgres/like"
	playlistrepo "github.com/heartmarshall/vidstream-backend/internal/adapter/postgres/playlist"
	historyrepo "github.com/heartmarshall/vidstream-backend/internal/adapter/postgres/searchhistory"
	subscriptionrepo "github.com/heartmarshall/vidstream-backend/internal/adapter/postgres/subscription"
	tweetrepo "github.com/heartmarshall/vidstream-backend/internal/adapter/postgres/tweet"
	userrepo "github.com/heartmarshall/vidstream-backend/internal/adapter/postgres/user"
	videorepo "github.com/heartmarshall/vidstream-backend/internal/adapter/postgres/video"
	"github.com/heartmarshall/vidstream-backend/internal/auth"
	"github.com/heartmarshall/vidstream-backend/internal/config"
	"github.com/heartmarshall/vidstream-backend/internal/domain"
	"github.com/heartmarshall/vidstream-backend/internal/service/content"
	"github.com/heartmarshall/vidstream-backend/internal/service/engagement"
	"github.com/heartmarshall/vidstream-backend/internal/service/feed"
	"github.com/heartmarshall/vidstream-backend/internal/service/graph"
	"github.com/heartmarshall/vidstream-backend/internal/service/join"
	"github.com/heartmarshall/vidstream-backend/internal/service/playlist"
	"github.com/heartmarshall/vidstream-backend/internal/service/searchhistory"
	"github.com/heartmarshall/vidstream-backend/internal/service/stats"
	"github.com/heartmarshall/vidstream-backend/internal/service/video"
	"github.com/heartmarshall/vidstream-backend/internal/transport/middleware"
	"github.com/heartmarshall/vidstream-backend/internal/transport/rest"
	"github.com/heartmarshall/vidstream-backend/migrations"
)

// userLimiterSweep is how often idle per-user limiters are evicted.
const userLimiterSweep = 5 * time.Minute

// Run loads configuration, connects to PostgreSQL and object storage, and
// serves the HTTP API until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		applied, err := postgres.Migrate(ctx, pool, migrations.FS)
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied", slog.Int("count", applied))
	}

	store, err := media.New(logger, cfg.Media)
	if err != nil {
		return fmt.Errorf("media store: %w", err)
	}
	if err := store.EnsureBuckets(ctx); err != nil {
		// Uploads return 503 until storage is reachable.
		logger.Warn("media buckets not verified", slog.String("error", err.Error()))
	}

	// Repositories.
	var (
		users         = userrepo.New(pool)
		videos        = videorepo.New(pool)
		comments      = commentrepo.New(pool)
		tweets        = tweetrepo.New(pool)
		likes         = likerepo.New(pool)
		subscriptions = subscriptionrepo.New(pool)
		playlists     = playlistrepo.New(pool)
		history       = historyrepo.New(pool)
		tx            = postgres.NewTxManager(pool)
	)

	// Services.
	pageLimits := domain.PageLimits{DefaultSize: cfg.Feed.DefaultPageSize, MaxSize: cfg.Feed.MaxPageSize}
	joins := join.NewResolver(logger, users, likes, subscriptions)
	feedSvc := feed.NewService(logger, feed.Config{
		DefaultPageSize: cfg.Feed.DefaultPageSize,
		MaxPageSize:     cfg.Feed.MaxPageSize,
	}, videos, comments, tweets, joins)
	engagementSvc := engagement.NewService(logger, videos, comments, tweets, users, likes, subscriptions)
	graphSvc := graph.NewService(logger, pageLimits, users, subscriptions, videos, joins)
	statsSvc := stats.NewService(logger, users, videos, playlists, joins)
	contentSvc := content.NewService(logger, videos, comments, tweets, likes, tx)
	videoSvc := video.NewService(logger, videos, comments, likes, store, tx, cfg.Media.RetryBackoff)
	playlistSvc := playlist.NewService(logger, playlists, videos)
	historySvc := searchhistory.NewService(logger, pageLimits, history)

	// Transport.
	verifier := auth.NewVerifier(cfg.Auth)
	userLimiter := middleware.NewUserLimiter(cfg.RateLimit, userLimiterSweep)
	defer userLimiter.Stop()

	router := rest.NewRouter(rest.Handlers{
		Health:        rest.NewHealthHandler(pool, rest.PingFunc(store.Ready), BuildVersion()),
		Videos:        rest.NewVideoHandler(feedSvc, videoSvc, logger, cfg.Media.MaxUploadBytes, cfg.Media.TempDir),
		Content:       rest.NewContentHandler(feedSvc, contentSvc, logger),
		Engagement:    rest.NewEngagementHandler(engagementSvc, feedSvc, graphSvc, logger),
		Playlists:     rest.NewPlaylistHandler(playlistSvc, statsSvc, logger),
		SearchHistory: rest.NewSearchHistoryHandler(historySvc, logger),
	}, []middleware.Middleware{
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.Metrics(),
		middleware.CORS(cfg.CORS),
	}, []middleware.Middleware{
		middleware.LimitByIP(cfg.RateLimit),
		middleware.Auth(verifier, logger),
		userLimiter.Limit(),
	})

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

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
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
