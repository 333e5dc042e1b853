package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"mergington/internal/platform/middleware"
	dErrors "mergington/pkg/domain-errors"
	"mergington/pkg/platform/httputil"
)

// Service defines the interface for enrollment operations.
type Service interface {
	Signup(ctx context.Context, activityName, email string) (string, error)
	Unregister(ctx context.Context, activityName, email string) (string, error)
}

// Handler handles signup and unregister endpoints.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New creates a new enrollment Handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register registers the enrollment routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/activities/{name}/signup", h.handleSignup)
	r.Delete("/activities/{name}/unregister", h.handleUnregister)
}

// activityName returns the {name} route parameter with any percent-encoding
// removed, so names with spaces match the catalog keys.
func activityName(r *http.Request) string {
	name := chi.URLParam(r, "name")
	if decoded, err := url.PathUnescape(name); err == nil {
		return decoded
	}
	return name
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := activityName(r)

	email := r.URL.Query().Get("email")
	if email == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "email is required"))
		return
	}

	message, err := h.service.Signup(ctx, name, email)
	if err != nil {
		h.logger.WarnContext(ctx, "signup rejected",
			"request_id", middleware.GetRequestID(ctx),
			"activity", name,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"message": message})
}

func (h *Handler) handleUnregister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := activityName(r)

	email := r.URL.Query().Get("email")
	if email == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "email is required"))
		return
	}

	message, err := h.service.Unregister(ctx, name, email)
	if err != nil {
		h.logger.WarnContext(ctx, "unregister rejected",
			"request_id", middleware.GetRequestID(ctx),
			"activity", name,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"message": message})
}
