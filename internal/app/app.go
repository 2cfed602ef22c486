package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/manjunagaraj95-sudo/10-Auto-Service-Claim/internal/access"
	claimrepo "github.com/manjunagaraj95-sudo/10-Auto-Service-Claim/internal/adapter/memory/claim"
	"github.com/manjunagaraj95-sudo/10-Auto-Service-Claim/internal/audit"
	"github.com/manjunagaraj95-sudo/10-Auto-Service-Claim/internal/config"
	"github.com/manjunagaraj95-sudo/10-Auto-Service-Claim/internal/kpi"
	"github.com/manjunagaraj95-sudo/10-Auto-Service-Claim/internal/service/claim"
	"github.com/manjunagaraj95-sudo/10-Auto-Service-Claim/internal/transport/middleware"
	"github.com/manjunagaraj95-sudo/10-Auto-Service-Claim/internal/transport/rest"
	"github.com/manjunagaraj95-sudo/10-Auto-Service-Claim/internal/workflow"
)

// Run is the application entry point. It loads configuration, wires the
// claim stack and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("addr", cfg.Server.Addr()),
	)

	return Serve(ctx, cfg, logger)
}

// Serve runs the HTTP server for cfg and shuts it down gracefully once ctx
// is done.
func Serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      NewHandler(cfg, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// NewHandler builds the full claim stack over a fresh in-memory store and
// returns the root HTTP handler with middleware applied.
func NewHandler(cfg *config.Config, logger *slog.Logger) http.Handler {
	repo := claimrepo.New(cfg.Workflow.IDStart, nil)

	svc := claim.NewService(
		logger,
		repo,
		access.NewGate(),
		workflow.NewEngine(cfg.Workflow.SLA, nil),
		audit.NewTrail(nil),
		kpi.NewAggregator(kpi.Windows{
			Requests:       cfg.Dashboard.RequestWindow(),
			FollowUp:       cfg.Dashboard.FollowUpAfter,
			RecentPayments: cfg.Dashboard.RecentPaymentsWindow,
		}),
		nil,
	)

	mux := http.NewServeMux()
	rest.NewClaimHandler(svc, logger).Register(mux)
	rest.NewHealthHandler(repo, Version).Register(mux)

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CORS(cfg.CORS),
		middleware.Actor(),
		middleware.Logger(logger),
	)(mux)
}
