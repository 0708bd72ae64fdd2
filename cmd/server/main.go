package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"marketday/internal/audit"
	checkinhandler "marketday/internal/checkin/handler"
	checkinmetrics "marketday/internal/checkin/metrics"
	checkinservice "marketday/internal/checkin/service"
	"marketday/internal/directory"
	directorymetrics "marketday/internal/directory/metrics"
	markethandler "marketday/internal/market/handler"
	marketservice "marketday/internal/market/service"
	"marketday/internal/platform/config"
	"marketday/internal/platform/httpserver"
	"marketday/internal/platform/logger"
	"marketday/internal/platform/middleware"
	signuphandler "marketday/internal/signup/handler"
	signupmetrics "marketday/internal/signup/metrics"
	signupservice "marketday/internal/signup/service"
)

// main wires dependencies and keeps the server lifecycle small. Business
// logic lives in the internal service packages.
func main() {
	log := logger.New()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	directoryClient := directory.NewHTTPClient(cfg.DirectoryURL, cfg.DirectoryTimeout,
		directory.WithLogger(log),
		directory.WithMetrics(directorymetrics.New()),
	)

	recorder := audit.NewRecorder(256, audit.WithMetrics(audit.NewMetrics()))
	worker := audit.NewWorker(recorder, log)

	marketResolver := marketservice.NewResolver(directoryClient, cfg.ResetNotice,
		marketservice.WithLogger(log))
	checkin := checkinservice.New(directoryClient,
		checkinservice.WithLogger(log),
		checkinservice.WithMetrics(checkinmetrics.New()),
		checkinservice.WithAuditRecorder(recorder),
	)
	signup := signupservice.New(directoryClient,
		signupservice.WithLogger(log),
		signupservice.WithMetrics(signupmetrics.New()),
		signupservice.WithAuditRecorder(recorder),
	)

	router := chi.NewRouter()
	router.Use(middleware.RequestContext())
	router.Use(middleware.RequestLogger(log))
	markethandler.New(marketResolver, log).Register(router)
	checkinhandler.New(checkin, log).Register(router)
	signuphandler.New(signup, log).Register(router)
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Handle("/metrics", promhttp.Handler())

	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting marketday gateway", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
	log.Info("shutdown complete")
}
