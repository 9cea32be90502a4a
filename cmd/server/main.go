package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"blog-api/internal/auth"
	"blog-api/internal/cache"
	"blog-api/internal/config"
	"blog-api/internal/handler"
	"blog-api/internal/infrastructure/database"
	"blog-api/internal/logger"
	"blog-api/internal/metrics"
	"blog-api/internal/repository"
	"blog-api/internal/service"
	"blog-api/internal/validator"
)

// storage groups the repositories selected by STORAGE_DRIVER.
type storage struct {
	users repository.UserRepository
	posts repository.PostRepository
	pool  *pgxpool.Pool
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.SetLogger(logger.New(os.Stdout, cfg.LogLevel))

	ctx := context.Background()
	checks := make(map[string]handler.Pinger)

	// Initialize repositories
	store, err := openStorage(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to open storage",
			slog.String("driver", cfg.StorageDriver),
			slog.String("error", err.Error()))
	}
	if store.pool != nil {
		defer store.pool.Close()
		checks["database"] = database.PostgresPinger{Pool: store.pool}

		// Start database pool metrics collector
		poolStatsCollector := metrics.NewPoolStatsCollector(store.pool)
		poolStatsCollector.Start(15 * time.Second)
		defer poolStatsCollector.Stop()
		metrics.LogPoolStats(ctx, store.pool)
	}

	// Sessions and the listing cache live in Redis when it is configured
	var (
		sessions  auth.Store
		listCache service.ListCache
	)
	if cfg.RedisAddr != "" {
		rdb, err := database.NewRedis(ctx, database.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			logger.Fatal("Failed to connect to redis",
				slog.String("addr", cfg.RedisAddr),
				slog.String("error", err.Error()))
		}
		defer closeRedis(rdb)
		checks["redis"] = database.RedisPinger{Client: rdb}

		sessions = auth.NewRedisStore(rdb, cfg.SessionTTL)
		if cfg.CacheTTL > 0 {
			listCache = cache.NewPostCache(rdb, cfg.CacheTTL)
		}
	} else {
		logger.Warn("REDIS_ADDR not set, keeping sessions in memory and listing cache disabled")
		sessions = auth.NewMemoryStore(cfg.SessionTTL)
	}

	// Initialize validator
	v := validator.NewValidator()

	// Initialize services
	postService := service.NewPostService(store.posts, v, listCache, time.Now)
	userService, err := service.NewUserService(store.users, v, cfg.BcryptCost)
	if err != nil {
		logger.Fatal("Failed to create user service",
			slog.String("error", err.Error()))
	}

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := handler.NewRouter(handler.RouterConfig{
		Posts:              postService,
		Users:              userService,
		Sessions:           sessions,
		Health:             handler.NewHealthHandler(checks, cfg.Version),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		SecureCookies:      cfg.SessionCookieSecure,
		AccessLog:          cfg.AccessLog,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort),
			slog.String("storage", cfg.StorageDriver),
			slog.Bool("cache", listCache != nil))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Shutdown HTTP server
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}

func openStorage(ctx context.Context, cfg *config.Config) (*storage, error) {
	if cfg.StorageDriver == config.StorageMemory {
		logger.Warn("Using in-memory storage, data is lost on restart")
		users := repository.NewMemoryUserRepository()
		return &storage{users: users, posts: repository.NewMemoryPostRepository(users)}, nil
	}

	if err := database.Migrate(cfg.DatabaseURL(), cfg.MigrationsDir); err != nil {
		return nil, err
	}
	logger.Info("Database migrations applied", slog.String("dir", cfg.MigrationsDir))

	// Connect to database
	pool, err := database.NewPostgres(ctx, database.PoolConfig{
		URL:               cfg.DatabaseURL(),
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	})
	if err != nil {
		return nil, err
	}

	return &storage{
		users: repository.NewPostgresUserRepository(pool),
		posts: repository.NewPostgresPostRepository(pool),
		pool:  pool,
	}, nil
}

func closeRedis(rdb *redis.Client) {
	if err := rdb.Close(); err != nil {
		logger.Error("Redis close error", slog.String("error", err.Error()))
	}
}
