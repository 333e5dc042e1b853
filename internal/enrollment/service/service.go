package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"mergington/internal/platform/metrics"
	dErrors "mergington/pkg/domain-errors"
	"mergington/pkg/platform/sentinel"
)

// ActivityStore is the slice of the activity store enrollment needs.
type ActivityStore interface {
	Exists(ctx context.Context, name string) bool
	AddParticipant(ctx context.Context, name, email string) error
	RemoveParticipant(ctx context.Context, name, email string) error
}

// Service manages roster membership. Capacity (max_participants) is stored on
// the activity but deliberately never consulted here: over-capacity signups
// succeed, matching the API's long-standing behavior.
type Service struct {
	activities ActivityStore
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
func New(activities ActivityStore, opts ...Option) *Service {
	s := &Service{activities: activities, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Signup adds email to the activity's roster and returns the confirmation
// message for the client.
func (s *Service) Signup(ctx context.Context, activityName, email string) (string, error) {
	if !s.activities.Exists(ctx, activityName) {
		return "", dErrors.New(dErrors.CodeNotFound, "Activity not found")
	}

	if err := s.activities.AddParticipant(ctx, activityName, email); err != nil {
		switch {
		case errors.Is(err, sentinel.ErrNotFound):
			return "", dErrors.New(dErrors.CodeNotFound, "Activity not found")
		case errors.Is(err, sentinel.ErrConflict):
			return "", dErrors.New(dErrors.CodeConflict, "Student is already signed up")
		}
		return "", err
	}

	s.metrics.ObserveSignup()
	s.logger.InfoContext(ctx, "student signed up",
		"activity", activityName,
		"email", email,
	)
	return fmt.Sprintf("Signed up %s for %s", email, activityName), nil
}

// Unregister removes email from the activity's roster.
func (s *Service) Unregister(ctx context.Context, activityName, email string) (string, error) {
	if !s.activities.Exists(ctx, activityName) {
		return "", dErrors.New(dErrors.CodeNotFound, "Activity not found")
	}

	if err := s.activities.RemoveParticipant(ctx, activityName, email); err != nil {
		switch {
		case errors.Is(err, sentinel.ErrNotFound):
			return "", dErrors.New(dErrors.CodeNotFound, "Activity not found")
		case errors.Is(err, sentinel.ErrConflict):
			return "", dErrors.New(dErrors.CodeConflict, "Student is not signed up for this activity")
		}
		return "", err
	}

	s.metrics.ObserveUnregistration()
	s.logger.InfoContext(ctx, "student unregistered",
		"activity", activityName,
		"email", email,
	)
	return fmt.Sprintf("Unregistered %s from %s", email, activityName), nil
}
