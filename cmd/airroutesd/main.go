// Command airroutesd serves route queries over HTTP.
//
// Records come from DATABASE_URL when it is set (DATABASE_DRIVER pgx or
// mysql), otherwise from the CSV files in DATA_DIR.
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

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/katalvlaran/airroutes/dataset"
	"github.com/katalvlaran/airroutes/internal/config"
	"github.com/katalvlaran/airroutes/internal/httpapi"
	"github.com/katalvlaran/airroutes/planner"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	data, err := load(ctx, cfg)
	if err != nil {
		slog.Error("failed to load dataset", "error", err)
		os.Exit(1)
	}

	p, err := planner.Populate(data.Airlines, data.Airports, data.Flights,
		planner.WithExclusionCacheSize(cfg.ExclusionCacheSize))
	if err != nil {
		slog.Error("failed to build network", "error", err)
		os.Exit(1)
	}
	stats := p.Network().Stats()
	slog.Info("network ready",
		"airlines", cfg.Airlines,
		"airports", stats.Airports,
		"flights", stats.Flights,
		"parallel_pairs", stats.ParallelPairs)

	router := httpapi.NewRouter(httpapi.NewHandler(p, httpapi.WithQueryTimeout(cfg.QueryTimeout)))
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.QueryTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		slog.Info("http server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			slog.Error("failed to listen and serve http server", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "failed to close resources", "name", "HTTP Server", "error", err)
	}
	slog.Info("application gracefully shutdown")
}

func load(ctx context.Context, cfg config.Config) (*dataset.Dataset, error) {
	if !cfg.UseDatabase() {
		slog.Info("loading dataset", "source", "csv", "dir", cfg.DataDir)
		return dataset.LoadDir(cfg.DataDir, cfg.Airlines)
	}

	slog.Info("loading dataset", "source", "sql", "driver", cfg.DatabaseDriver)
	db, err := dataset.Open(ctx, cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	return dataset.LoadSQL(ctx, db, cfg.Airlines)
}
