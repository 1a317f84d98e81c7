// Package httpapi wires the HTTP surface of the bank ledger. Handlers stay
// thin, delegating validation of the business rules to the ledger service.
package httpapi

import (
	"log/slog"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/smartbank/ledger/internal/service/ledger"
)

// Server wires handlers and middleware using chi.
type Server struct {
	svc   *ledger.Service
	store ledger.Store
	log   *slog.Logger
	rt    *chi.Mux
}

// New constructs the HTTP server with routes and middleware. The store is
// only consulted by the readiness probe; all data access goes through the
// service.
func New(svc *ledger.Service, store ledger.Store, logger *slog.Logger) *Server {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(requestLogger(logger))
	r.Use(recoverer(logger))
	r.Use(metricsMiddleware)

	s := &Server{svc: svc, store: store, log: logger, rt: r}
	s.routes()
	return s
}

// Handler exposes the configured http.Handler.
func (s *Server) Handler() http.Handler { return s.rt }

// routes declares the public HTTP API endpoints.
func (s *Server) routes() {
	// Accounts
	s.rt.Post("/v1/accounts", s.postAccount)
	s.rt.Get("/v1/accounts", s.listAccounts)
	s.rt.Get("/v1/accounts/{number}", s.getAccount)
	// Transactions
	s.rt.Post("/v1/accounts/{number}/deposit", s.postDeposit)
	s.rt.Post("/v1/accounts/{number}/withdraw", s.postWithdraw)
	s.rt.Post("/v1/accounts/{number}/repay", s.postRepay)
	s.rt.Post("/v1/transfers", s.postTransfer)
	// Batch interest
	s.rt.Post("/v1/month-end", s.postMonthEnd)
	// Statement log tail
	s.rt.Get("/v1/statements", s.getStatements)
	// Health and metrics (unversioned)
	s.rt.Get("/healthz", s.healthz)
	s.rt.Get("/readyz", s.readyz)
	s.rt.Method(http.MethodGet, "/metrics", metricsHandler())
}
