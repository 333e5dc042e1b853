package document

import (
	"context"
	"sync"

	"mergington/internal/activity/models"
	"mergington/pkg/platform/sentinel"
)

// InMemory keeps per-activity document sequences in process memory, keyed by
// activity name. The store never checks that the activity exists; that is the
// calling service's responsibility against the activity store.
type InMemory struct {
	mu   sync.RWMutex
	docs map[string][]models.Document
}

func NewInMemory() *InMemory {
	return &InMemory{docs: make(map[string][]models.Document)}
}

// Append adds doc to the end of the activity's sequence, creating the
// sequence on first use.
func (s *InMemory) Append(_ context.Context, activityName string, doc models.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[activityName] = append(s.docs[activityName], doc)
	return nil
}

// List returns the activity's documents in insertion order. An activity with
// no recorded documents yields an empty sequence, never an error.
func (s *InMemory) List(_ context.Context, activityName string) ([]models.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Document{}, s.docs[activityName]...), nil
}

// MarkVerified flips verified on the first document matching (email,
// filename) in insertion order and returns the updated record. Later
// duplicates are left untouched.
func (s *InMemory) MarkVerified(_ context.Context, activityName, email, filename string) (models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	docs := s.docs[activityName]
	for i := range docs {
		if docs[i].Email == email && docs[i].Filename == filename {
			docs[i].Verified = true
			return docs[i], nil
		}
	}
	return models.Document{}, sentinel.ErrNotFound
}
