// Package api is the HTTP surface of the sale ledger. Identity is the
// X-Account header; the deployment fronts this service with a gateway
// that authenticates accounts, so the header is trusted here.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/tokenforge-io/presale-ledger/internal/config"
	"github.com/tokenforge-io/presale-ledger/internal/observability/tracing"
	"github.com/tokenforge-io/presale-ledger/internal/services"
)

const (
	accountHeader = "X-Account"

	readTimeout     = 10 * time.Second
	writeTimeout    = 30 * time.Second
	idleTimeout     = 60 * time.Second
	shutdownTimeout = 10 * time.Second
)

type Server struct {
	cfg     *config.Config
	service *services.Service
	httpSrv *http.Server
}

func New(cfg *config.Config, service *services.Service) *Server {
	srv := &Server{
		cfg:     cfg,
		service: service,
	}
	srv.httpSrv = &http.Server{
		Addr:         cfg.Api.Address(),
		Handler:      srv.routes(),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}
	return srv
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.tracingMiddleware)

	r.Get("/healthcheck", s.handleHealthcheck)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/info", s.handleGetInfo)
		r.Get("/assets", s.handleListAssets)
		r.Post("/deposit", s.handleDeposit)
		r.Post("/release", s.handleRelease)
		r.Post("/withdraw", s.handleWithdraw)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/assets", s.handleEnableAsset)
			r.Post("/strategy/approve", s.handleApproveStrategySpend)
			r.Post("/strategy/deploy", s.handleDeployToStrategy)
			r.Post("/strategy/claim-profit", s.handleClaimStrategyProfit)
			r.Post("/strategy/raw-call", s.handleRawCall)
		})
	})

	return r
}

// tracingMiddleware gives every request a trace id so log lines of one
// operation correlate across the service.
func (s *Server) tracingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := tracing.InjectTraceID(r.Context())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Start serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("address", s.httpSrv.Addr).Msg("Starting API server")
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.httpSrv.Shutdown(shutdownCtx)
}
