package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"mergington/internal/activity/models"
	"mergington/internal/platform/middleware"
	dErrors "mergington/pkg/domain-errors"
	"mergington/pkg/platform/httputil"
)

// Service defines the interface for document operations.
type Service interface {
	Submit(ctx context.Context, activityName, email, filename, contentType string, score int) (string, error)
	ListDocuments(ctx context.Context, activityName string) ([]models.Document, error)
	Verify(ctx context.Context, activityName, email, filename string) (string, error)
}

// Handler handles document upload, listing, and verification endpoints.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New creates a new document Handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register registers the document routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/activities/{name}/upload", h.handleUpload)
	r.Get("/activities/{name}/documents", h.handleListDocuments)
	r.Post("/activities/{name}/verify", h.handleVerify)
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

func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := activityName(r)

	// FormFile parses the multipart body on first use. The file handle is
	// closed without reading: only filename and content type are retained.
	file, header, err := r.FormFile("file")
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "file is required"))
		return
	}
	_ = file.Close()

	email := r.FormValue("email")
	if email == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "email is required"))
		return
	}

	score, err := strconv.Atoi(r.FormValue("score"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "score must be an integer"))
		return
	}

	message, err := h.service.Submit(ctx, name, email, header.Filename, header.Header.Get("Content-Type"), score)
	if err != nil {
		h.logger.WarnContext(ctx, "upload rejected",
			"request_id", middleware.GetRequestID(ctx),
			"activity", name,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"message": message})
}

func (h *Handler) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := activityName(r)

	docs, err := h.service.ListDocuments(ctx, name)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, docs)
}

func (h *Handler) handleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := activityName(r)

	q := r.URL.Query()
	email := q.Get("email")
	filename := q.Get("filename")
	if email == "" || filename == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "email and filename are required"))
		return
	}

	message, err := h.service.Verify(ctx, name, email, filename)
	if err != nil {
		h.logger.WarnContext(ctx, "verify rejected",
			"request_id", middleware.GetRequestID(ctx),
			"activity", name,
			"filename", filename,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"message": message})
}
