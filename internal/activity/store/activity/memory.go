package activity

import (
	"context"
	"sync"

	"mergington/internal/activity/models"
	"mergington/pkg/platform/sentinel"
)

// InMemory keeps the activity catalog in process memory. Durability is an
// explicit non-goal; every operation is atomic under the lock and all returned
// values are deep copies, so callers never observe a half-applied mutation.
type InMemory struct {
	mu         sync.RWMutex
	activities map[string]*models.Activity
	// order tracks insertion order; it is the deterministic base order that
	// stable sorts fall back to on ties.
	order []string
}

func NewInMemory() *InMemory {
	return &InMemory{activities: make(map[string]*models.Activity)}
}

// Create adds a new activity under name. Used only while seeding the catalog.
func (s *InMemory) Create(_ context.Context, name string, a models.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.activities[name]; ok {
		return sentinel.ErrConflict
	}
	clone := a.Clone()
	s.activities[name] = &clone
	s.order = append(s.order, name)
	return nil
}

// List returns the full catalog keyed by name.
func (s *InMemory) List(_ context.Context) (map[string]models.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]models.Activity, len(s.activities))
	for name, a := range s.activities {
		out[name] = a.Clone()
	}
	return out, nil
}

// ListOrdered returns the catalog in insertion order with names attached.
func (s *InMemory) ListOrdered(_ context.Context) ([]models.ActivityView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ActivityView, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, models.ActivityView{Name: name, Activity: s.activities[name].Clone()})
	}
	return out, nil
}

// Exists reports whether an activity with the given name is in the catalog.
// Names are case-sensitive, exact match.
func (s *InMemory) Exists(_ context.Context, name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.activities[name]
	return ok
}

// Get returns one activity by name.
func (s *InMemory) Get(_ context.Context, name string) (models.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.activities[name]
	if !ok {
		return models.Activity{}, sentinel.ErrNotFound
	}
	return a.Clone(), nil
}

// AddParticipant appends email to the roster. Returns ErrNotFound for an
// unknown activity and ErrConflict when the email is already signed up.
func (s *InMemory) AddParticipant(_ context.Context, name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.activities[name]
	if !ok {
		return sentinel.ErrNotFound
	}
	for _, p := range a.Participants {
		if p == email {
			return sentinel.ErrConflict
		}
	}
	a.Participants = append(a.Participants, email)
	return nil
}

// RemoveParticipant removes exactly one matching roster entry, preserving the
// relative order of the rest. Returns ErrConflict when the email is not on
// the roster.
func (s *InMemory) RemoveParticipant(_ context.Context, name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.activities[name]
	if !ok {
		return sentinel.ErrNotFound
	}
	for i, p := range a.Participants {
		if p == email {
			a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
			return nil
		}
	}
	return sentinel.ErrConflict
}
