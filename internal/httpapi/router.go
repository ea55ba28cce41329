// Package httpapi wires the HTTP surface of the bank clients service.
// It keeps handlers thin, delegating business rules to the service layer.
package httpapi

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"log/slog"

	"github.com/okezie/bankclients/internal/service/client"
)

// Server wires handlers and middleware using Chi.
type Server struct {
	svc      client.Service
	ready    ReadyChecker
	validate *validator.Validate
	log      *slog.Logger
	rt       *chi.Mux
}

// New constructs the HTTP server with routes and middleware. ready may be
// nil when the storage backend has no readiness probe of its own.
func New(svc client.Service, ready ReadyChecker, logger *slog.Logger) *Server {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(requestLogger(logger))
	r.Use(recoverer(logger))
	r.Use(metricsMiddleware)

	s := &Server{
		svc:      svc,
		ready:    ready,
		validate: validator.New(),
		rt:       r,
		log:      logger,
	}
	s.routes()
	return s
}

// Handler exposes the configured http.Handler.
func (s *Server) Handler() http.Handler { return s.rt }

// routes declares the public HTTP API endpoints and attaches any per-route
// middleware. The paths and casing are fixed by the public contract.
func (s *Server) routes() {
	s.rt.Route("/api/BankClients", func(r chi.Router) {
		r.With(s.validateCreateAccount()).Post("/createAccount", s.createAccount)
		r.With(s.validateDeleteAccount()).Post("/deleteAccount", s.deleteAccount)
		r.With(s.validateDeposit()).Post("/deposit", s.deposit)
		r.With(s.validateWithdraw()).Post("/withdraw", s.withdraw)
		r.With(s.validateTransfer()).Post("/transfer", s.transfer)
		r.With(s.validateRetrieveByID()).Get("/RetrieveByID", s.retrieveByID)
		r.Get("/RetrieveBySalary", s.retrieveBySalary)
		r.Get("/RetrieveByBalance", s.retrieveByBalance)
		r.With(s.validateRetrieveByCreationDate()).Get("/RetrieveByCreationDate", s.retrieveByCreationDate)
		r.Get("/RetrieveTheClientWithTheHighestSalary", s.retrieveHighestSalary)
	})
	// Health and metrics (unversioned)
	s.rt.Get("/healthz", s.healthz)
	s.rt.Get("/readyz", s.readyz)
	s.rt.Method(http.MethodGet, "/metrics", metricsHandler())
}
