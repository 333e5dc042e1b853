package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"mergington/internal/activity/models"
	"mergington/internal/platform/metrics"
	dErrors "mergington/pkg/domain-errors"
	"mergington/pkg/platform/sentinel"
)

// ActivityStore is the slice of the activity store this service needs.
type ActivityStore interface {
	Exists(ctx context.Context, name string) bool
}

// DocumentStore owns the per-activity document sequences.
type DocumentStore interface {
	Append(ctx context.Context, activityName string, doc models.Document) error
	List(ctx context.Context, activityName string) ([]models.Document, error)
	MarkVerified(ctx context.Context, activityName, email, filename string) (models.Document, error)
}

// Service records achievement document submissions and flips their
// verification state. Scores are accepted as-is; the API performs no range
// validation on them.
type Service struct {
	activities ActivityStore
	documents  DocumentStore
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New constructs a Service.
func New(activities ActivityStore, documents DocumentStore, opts ...Option) *Service {
	s := &Service{activities: activities, documents: documents, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit records the metadata of one uploaded document. File contents are
// already discarded by the time this runs; only filename and content type
// survive.
func (s *Service) Submit(ctx context.Context, activityName, email, filename, contentType string, score int) (string, error) {
	if !s.activities.Exists(ctx, activityName) {
		return "", dErrors.New(dErrors.CodeNotFound, "Activity not found")
	}

	doc := models.Document{
		Email:       email,
		Filename:    filename,
		ContentType: contentType,
		Score:       score,
		Verified:    false,
	}
	if err := s.documents.Append(ctx, activityName, doc); err != nil {
		return "", err
	}

	s.metrics.ObserveDocumentUploaded()
	s.logger.InfoContext(ctx, "document submitted",
		"activity", activityName,
		"email", email,
		"filename", filename,
	)
	return fmt.Sprintf("Uploaded %s for %s in %s", filename, email, activityName), nil
}

// ListDocuments returns the activity's documents in submission order.
func (s *Service) ListDocuments(ctx context.Context, activityName string) ([]models.Document, error) {
	if !s.activities.Exists(ctx, activityName) {
		return nil, dErrors.New(dErrors.CodeNotFound, "Activity not found")
	}
	return s.documents.List(ctx, activityName)
}

// Verify marks the first document matching (email, filename) as verified.
// Activity existence is intentionally not checked separately: an unknown
// activity simply has no documents, and both cases report the same not-found.
func (s *Service) Verify(ctx context.Context, activityName, email, filename string) (string, error) {
	if _, err := s.documents.MarkVerified(ctx, activityName, email, filename); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return "", dErrors.New(dErrors.CodeNotFound, "Document not found")
		}
		return "", err
	}

	s.metrics.ObserveDocumentVerified()
	s.logger.InfoContext(ctx, "document verified",
		"activity", activityName,
		"email", email,
		"filename", filename,
	)
	return fmt.Sprintf("Verified %s for %s in %s", filename, email, activityName), nil
}
