package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gearxp/internal/config"
	"github.com/GlebRadaev/gearxp/internal/handlers"
	"github.com/GlebRadaev/gearxp/internal/notify"
	"github.com/GlebRadaev/gearxp/internal/pg"
	"github.com/GlebRadaev/gearxp/internal/repo"
	"github.com/GlebRadaev/gearxp/internal/service"
	"github.com/GlebRadaev/gearxp/internal/sweeper"
	"github.com/GlebRadaev/gearxp/pkg/clients"
	"github.com/GlebRadaev/gearxp/pkg/logger"
	"github.com/GlebRadaev/gearxp/pkg/ratelimit"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg     *config.Config
	api     *handlers.Handlers
	srv     *service.Services
	repo    *repo.Repositories
	mail    *notify.Service
	sweeper *sweeper.Sweeper
	redis   *redis.Client
	pool    *pgxpool.Pool

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New(cfg *config.Config) *Application {
	return &Application{
		cfg:   cfg,
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	err := logger.InitLogger(a.cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, a.cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	a.pool = pool
	txManager := pg.NewTXManager(pool)

	conn := pg.New(pool)
	a.mail = notify.New(a.cfg, clients.NewHTTPClient())
	if !a.mail.Enabled() {
		zap.L().Info("mail api key not set, notifications disabled")
	}
	a.repo = repo.New(conn)
	a.srv = service.New(a.repo, txManager, a.mail)
	a.api = handlers.New(a.srv, a.cfg, a.rateLimiter(ctx))
	a.sweeper = sweeper.New(a.cfg, a.srv.SweepService)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}
	a.startBackground(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

// rateLimiter returns nil when no redis address is configured.
// An unreachable redis is only logged because the limiter fails open.
func (a *Application) rateLimiter(ctx context.Context) *ratelimit.Limiter {
	if a.cfg.RedisAddress == "" {
		zap.L().Info("redis address not set, rate limiting disabled")
		return nil
	}
	a.redis = redis.NewClient(&redis.Options{
		Addr: a.cfg.RedisAddress,
	})
	if err := a.redis.Ping(ctx).Err(); err != nil {
		zap.L().Warn("redis ping failed, rate limiter will fail open", zap.Error(err))
	}
	return ratelimit.New(ratelimit.NewRedisCounter(a.redis), a.cfg.XPRateLimit, a.cfg.XPRateWindow)
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

// startBackground runs the referral sweeper and releases the notifier and
// redis once ctx is done and the last sweep batch has returned.
func (a *Application) startBackground(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.sweeper.Run(ctx)
		<-ctx.Done()

		a.mail.Close()
		if a.redis != nil {
			if err := a.redis.Close(); err != nil {
				zap.L().Warn("closing redis failed", zap.Error(err))
			}
		}
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	if a.pool != nil {
		a.pool.Close()
	}
	return appErr
}
