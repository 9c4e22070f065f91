package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"traffic-exchange/internal/core/port"
)

// Deps are the collaborators of the HTTP adapter. Limiter and Ready are
// optional.
type Deps struct {
	Ledger    port.LedgerUseCase
	Campaigns port.CampaignUseCase
	Profiles  port.ProfileUseCase
	Fraud     port.FraudUseCase

	Verifier *TokenVerifier
	// Limiter throttles visit recording per user. Nil disables it.
	Limiter *RateLimiter
	// Ready reports whether backing services are reachable.
	Ready func(ctx context.Context) error

	Logger *slog.Logger
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// Every route under /api/v1 requires a bearer token; the admin routes
// additionally require the caller's profile to have the admin role.
type Handler struct {
	ledger    port.LedgerUseCase
	campaigns port.CampaignUseCase
	profiles  port.ProfileUseCase
	fraud     port.FraudUseCase
	ready     func(ctx context.Context) error

	validate *validator.Validate
	logger   *slog.Logger
	router   chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(d Deps) *Handler {
	h := &Handler{
		ledger:    d.Ledger,
		campaigns: d.Campaigns,
		profiles:  d.Profiles,
		fraud:     d.Fraud,
		ready:     d.Ready,
		validate:  newValidator(),
		logger:    d.Logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(Authenticator(d.Verifier, h.writeError))

		r.Route("/profile", func(r chi.Router) {
			r.Post("/", h.handleEnsureProfile)
			r.Get("/", h.handleGetProfile)
			r.Get("/transactions", h.handleListTransactions)
		})

		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", h.handleListMyCampaigns)
			r.Post("/", h.handleCreateCampaign)
			r.Get("/available", h.handleListAvailable)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.handleGetCampaign)
				r.Post("/pause", h.handlePauseCampaign)
				r.Post("/resume", h.handleResumeCampaign)
				r.Post("/credits", h.handleAddCredits)
				r.Delete("/", h.handleDeleteCampaign)
				r.With(limit(d.Limiter)).Post("/visits", h.handleRecordVisit)
			})
		})

		r.Post("/visits/{id}/complete", h.handleCompleteVisit)

		r.Route("/admin", func(r chi.Router) {
			r.Use(h.requireAdmin)
			r.Get("/fraud", h.handleFraudReport)
			r.Put("/fraud/reviews", h.handleReviewFinding)
			r.Put("/profiles/{id}/role", h.handleSetRole)
			r.Post("/profiles/{id}/credits", h.handleAdjustCredits)
			r.Get("/profiles/{id}/reconciliation", h.handleReconcile)
		})
	})

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if h.ready != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.ready(ctx); err != nil {
			h.logger.Warn("health check failed", slog.Any("error", err))
			h.writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.logger.Debug("http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("duration", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

// newValidator reports field names as they appear in JSON.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func limit(l *RateLimiter) func(http.Handler) http.Handler {
	if l == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return l.Handler
}
