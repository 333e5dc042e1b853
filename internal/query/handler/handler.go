package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"mergington/internal/activity/models"
	queryservice "mergington/internal/query/service"
	dErrors "mergington/pkg/domain-errors"
	"mergington/pkg/platform/httputil"
)

// Service defines the interface for the read-only query endpoints.
type Service interface {
	Activities(ctx context.Context) (map[string]models.Activity, error)
	SortedActivities(ctx context.Context, sortBy string, descending bool) ([]models.ActivityView, error)
	SortedParticipants(ctx context.Context, activityName, sortBy string, descending bool) ([]models.ParticipantScore, error)
}

// Handler handles the catalog listing and the two sorted views.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New creates a new query Handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register registers the query routes with the chi router. The static
// /activities/sorted route must win over /activities/{name}; chi gives static
// segments priority, so registration order does not matter.
func (h *Handler) Register(r chi.Router) {
	r.Get("/activities", h.handleActivities)
	r.Get("/activities/sorted", h.handleSortedActivities)
	r.Get("/activities/{name}/participants/sorted", h.handleSortedParticipants)
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

func (h *Handler) handleActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.service.Activities(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, activities)
}

func (h *Handler) handleSortedActivities(w http.ResponseWriter, r *http.Request) {
	sortBy, descending, err := sortParams(r, queryservice.SortByName)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	views, err := h.service.SortedActivities(r.Context(), sortBy, descending)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, views)
}

func (h *Handler) handleSortedParticipants(w http.ResponseWriter, r *http.Request) {
	name := activityName(r)

	sortBy, descending, err := sortParams(r, queryservice.SortByName)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	rows, err := h.service.SortedParticipants(r.Context(), name, sortBy, descending)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, rows)
}

// sortParams extracts sort_by (with default) and descending from the query
// string. Sort key validation stays in the service; only the boolean is
// checked here since it cannot cross the service boundary half-parsed.
func sortParams(r *http.Request, defaultSort string) (string, bool, error) {
	q := r.URL.Query()

	sortBy := q.Get("sort_by")
	if sortBy == "" {
		sortBy = defaultSort
	}

	descending := false
	if raw := q.Get("descending"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return "", false, dErrors.New(dErrors.CodeValidation, "descending must be a boolean")
		}
		descending = parsed
	}
	return sortBy, descending, nil
}
