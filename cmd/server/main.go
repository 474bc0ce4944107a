package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/leadspring/attribution-go/internal/attribution"
	"github.com/leadspring/attribution-go/internal/config"
	"github.com/leadspring/attribution-go/internal/httpx"
	"github.com/leadspring/attribution-go/internal/upstream"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", slog.String("err", err.Error()))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	opts := upstream.Options{
		Timeout:    cfg.FetchTimeout,
		Retries:    cfg.FetchRetries,
		RetryDelay: cfg.FetchRetryDelay,
	}
	sales := upstream.NewClient("sales", cfg.SalesURL, opts, logger)
	costs := upstream.NewClient("cost-importer", cfg.CostsURL, opts, logger)
	svc := attribution.NewService(sales, costs, logger)

	r := httpx.NewRouter(logger, svc)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("starting server", slog.String("port", cfg.Port))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", slog.String("err", err.Error()))
		os.Exit(1)
	}
}
