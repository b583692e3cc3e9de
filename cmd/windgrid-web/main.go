// SPDX-License-Identifier: MIT

// Command windgrid-web serves the interactive simulation form, the JSON API
// and Prometheus metrics.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/katalvlaran/windgrid/logging"
	"github.com/katalvlaran/windgrid/metrics"
	"github.com/katalvlaran/windgrid/web"
)

const (
	shutdownTimeout   = 30 * time.Second
	readHeaderTimeout = 5 * time.Second
)

var (
	version = "--- set from makefile ---"

	help        = flag.Bool("help", false, "show help message")
	showVersion = flag.Bool("version", false, "show command version")
	addr        = flag.String("addr", ":8000", "HTTP network address")
	logLevel    = flag.String("log-level", logging.LevelFromEnv(), "log level: debug, info, warn or error")
	logFormat   = flag.String("log-format", logging.FormatText, "log format: text or json")
	workers     = flag.Int("workers", 0, "parallel greedy trials per run (0 = GOMAXPROCS)")
)

func main() {
	flag.Parse()

	if *help {
		flag.Usage()
		return
	}

	if *showVersion {
		fmt.Println(version)
		return
	}

	logger, err := logging.New(os.Stdout, *logLevel, *logFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, logger); err != nil {
		logger.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	wg := sync.WaitGroup{}

	// ----------------------------------------------------------------------------
	// Initialization

	srv := web.New(
		web.WithServerLogger(logger),
		web.WithMetrics(metrics.DefaultRegistry()),
		web.WithWorkers(*workers),
	)

	// ----------------------------------------------------------------------------
	// Server Setup

	server := &http.Server{
		Addr:              *addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	serverErrs := make(chan error, 1)
	wg.Go(func() {
		defer close(serverErrs)

		logger.Info("starting http server", "addr", *addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrs <- fmt.Errorf("server error: %w", err)
		}
	})

	// ----------------------------------------------------------------------------
	// Shutdown

	select {
	case err := <-serverErrs:
		if err != nil {
			return fmt.Errorf("received server error: %w", err)
		}
	case <-ctx.Done():
		logger.Info("shutting down application")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			server.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	logger.Info("waiting for background tasks to complete")
	wg.Wait()
	return nil
}
