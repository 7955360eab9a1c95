package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"crowdfund-escrow/internal/core/port"
)

// EventStream serves a live event feed for one campaign, or for all
// campaigns when campaignID is empty.
type EventStream interface {
	ServeWS(w http.ResponseWriter, r *http.Request, campaignID string)
}

// Options configures optional parts of the HTTP surface.
type Options struct {
	// Auth verifies bearer tokens on mutating routes. Required.
	Auth *Authenticator
	// Events backs the websocket routes. When nil they answer 404.
	Events EventStream
	// AllowDeposits enables wallet funding from outside the escrow.
	AllowDeposits bool
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the escrow use case and a logger for structured logging. Routes
// are registered on a chi.Router; reads are public and every mutation runs
// behind the bearer token middleware.
type Handler struct {
	svc      port.EscrowUseCase
	logger   *slog.Logger
	validate *validator.Validate
	opts     Options
	router   chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.EscrowUseCase, logger *slog.Logger, opts Options) *Handler {
	h := &Handler{
		svc:      svc,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		opts:     opts,
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer, h.logRequests)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/campaigns", h.handleListCampaigns)
		r.Get("/campaigns/{id}", h.handleGetCampaign)
		r.Get("/campaigns/{id}/contributions/{contributor}", h.handleGetContribution)
		r.Get("/campaigns/{id}/events", h.handleCampaignEvents)
		r.Get("/events", h.handleAllEvents)
		r.Get("/accounts/{id}", h.handleGetBalance)
		r.Get("/stats/overview", h.handleStatsOverview)

		r.Group(func(r chi.Router) {
			r.Use(opts.Auth.Middleware)
			r.Post("/campaigns", h.handleCreateCampaign)
			r.Post("/campaigns/{id}/donations", h.handleDonate)
			r.Post("/campaigns/{id}/cancel", h.handleCancel)
			r.Post("/campaigns/{id}/withdraw", h.handleOwnerWithdraw)
			r.Post("/campaigns/{id}/refunds/failed", h.handleRefundIfFailed)
			r.Post("/campaigns/{id}/refunds/cancelled", h.handleRefundIfCancelled)
			r.Post("/accounts/{id}/deposits", h.handleDeposit)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.logger.Debug("http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.String("request_id", middleware.GetReqID(r.Context())))
	})
}
