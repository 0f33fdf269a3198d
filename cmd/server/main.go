// @title Elevate Cart API
// @version 1.0
// @description Course listings from Ellucian Elevate Live Links feeds with a session-scoped cart and checkout handoff.
// @BasePath /
package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"elevatecart/config"
	_ "elevatecart/docs"
	"elevatecart/internal/adapters/elevate"
	"elevatecart/internal/adapters/session"
	deliveryhttp "elevatecart/internal/delivery/http"
	"elevatecart/internal/delivery/http/controllers"
	"elevatecart/internal/delivery/http/middleware"
	"elevatecart/internal/repository/file"
	"elevatecart/internal/repository/memory"
	"elevatecart/internal/repository/postgres"
	"elevatecart/internal/services"

	_ "github.com/lib/pq"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := config.NewLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		return err
	}
	defer db.Close()
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	if err := db.PingContext(pingCtx); err != nil {
		logger.Warn("database unreachable, catalog fetches will not be recorded", "err", err)
	}
	cancel()

	pages, err := file.LoadPageRepository(cfg.PagesFile, cfg.CatalogURL)
	if err != nil {
		return err
	}

	fetchLogRepo := postgres.NewFetchLogRepository(db)
	cartRepo := memory.NewCartRepository()
	fetcher := elevate.NewHTTPFetcher(nil, cfg.CatalogTimeout)
	sessions := session.NewJWTSessions(cfg.SessionSecret, cfg.SessionMaxAge)

	listingService := services.NewListingService(fetcher, fetchLogRepo, logger, nil)
	cartService := services.NewCartService(cartRepo, services.CartConfig{CheckoutURL: cfg.CheckoutURL()})

	router := deliveryhttp.NewRouter(
		controllers.NewListingController(logger, pages, listingService),
		controllers.NewCartController(logger, cartService),
		controllers.NewFetchLogController(logger, fetchLogRepo),
		middleware.CartSession(sessions, session.NewSessionID, middleware.SessionCookie{
			Secure:   cfg.Environment == "production",
			SameSite: cfg.CookieSameSite(),
		}, logger),
	)
	var handler http.Handler = router
	handler = middleware.LoggingMiddleware(logger, handler)
	handler = middleware.CORS(cfg.AllowedOrigins, handler)

	go sweepCarts(ctx, cartRepo, cfg.CartSessionIdle, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.Environment, "elevate", cfg.ElevateRoot())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logger.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}

// sweepCarts drops carts idle for longer than maxIdle until ctx is done.
func sweepCarts(ctx context.Context, repo *memory.CartRepository, maxIdle time.Duration, logger *slog.Logger) {
	if maxIdle <= 0 {
		return
	}
	ticker := time.NewTicker(maxIdle / 4)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := repo.Sweep(maxIdle); n > 0 {
				logger.Debug("swept idle carts", "count", n, "remaining", repo.Len())
			}
		}
	}
}
