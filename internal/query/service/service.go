package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"mergington/internal/activity/models"
	dErrors "mergington/pkg/domain-errors"
	"mergington/pkg/platform/sentinel"
)

// Sort keys accepted by the sorted views.
const (
	SortByName         = "name"
	SortByParticipants = "participants"
	SortByScore        = "score"
)

// ActivityStore is the read-only slice of the activity store queries need.
type ActivityStore interface {
	List(ctx context.Context) (map[string]models.Activity, error)
	ListOrdered(ctx context.Context) ([]models.ActivityView, error)
	Get(ctx context.Context, name string) (models.Activity, error)
}

// DocumentStore is the read-only slice of the document store queries need.
type DocumentStore interface {
	List(ctx context.Context, activityName string) ([]models.Document, error)
}

// Service produces the derived, sortable views over activities and rosters.
// It only ever reads; all mutation goes through the enrollment and document
// services.
type Service struct {
	activities ActivityStore
	documents  DocumentStore
}

// New constructs a Service.
func New(activities ActivityStore, documents DocumentStore) *Service {
	return &Service{activities: activities, documents: documents}
}

// Activities returns the full catalog keyed by name.
func (s *Service) Activities(ctx context.Context) (map[string]models.Activity, error) {
	return s.activities.List(ctx)
}

// SortedActivities ranks the catalog by name, roster size, or average
// verified score. The sort is stable over the catalog's insertion order, and
// descending flips the comparator direction rather than reversing the result,
// so ties keep their original relative order either way.
func (s *Service) SortedActivities(ctx context.Context, sortBy string, descending bool) ([]models.ActivityView, error) {
	items, err := s.activities.ListOrdered(ctx)
	if err != nil {
		return nil, err
	}

	var compare func(a, b models.ActivityView) int
	switch sortBy {
	case SortByName:
		compare = func(a, b models.ActivityView) int {
			return cmp.Compare(a.Name, b.Name)
		}
	case SortByParticipants:
		compare = func(a, b models.ActivityView) int {
			return cmp.Compare(len(a.Participants), len(b.Participants))
		}
	case SortByScore:
		averages := make(map[string]float64, len(items))
		for _, item := range items {
			avg, err := s.averageVerifiedScore(ctx, item.Name)
			if err != nil {
				return nil, err
			}
			averages[item.Name] = avg
		}
		compare = func(a, b models.ActivityView) int {
			return cmp.Compare(averages[a.Name], averages[b.Name])
		}
	default:
		return nil, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("sort_by must be one of name, participants, score; got %q", sortBy))
	}

	if descending {
		asc := compare
		compare = func(a, b models.ActivityView) int { return asc(b, a) }
	}
	slices.SortStableFunc(items, compare)
	return items, nil
}

// SortedParticipants ranks one activity's roster by email or score. A
// participant's score is the score of their first verified document in
// submission order, or null when none is verified; null sorts as zero.
func (s *Service) SortedParticipants(ctx context.Context, activityName, sortBy string, descending bool) ([]models.ParticipantScore, error) {
	activity, err := s.activities.Get(ctx, activityName)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "Activity not found")
		}
		return nil, err
	}

	docs, err := s.documents.List(ctx, activityName)
	if err != nil {
		return nil, err
	}

	rows := make([]models.ParticipantScore, 0, len(activity.Participants))
	for _, email := range activity.Participants {
		rows = append(rows, models.ParticipantScore{Email: email, Score: firstVerifiedScore(docs, email)})
	}

	var compare func(a, b models.ParticipantScore) int
	switch sortBy {
	case SortByName:
		compare = func(a, b models.ParticipantScore) int {
			return cmp.Compare(a.Email, b.Email)
		}
	case SortByScore:
		compare = func(a, b models.ParticipantScore) int {
			return cmp.Compare(scoreOrZero(a), scoreOrZero(b))
		}
	default:
		return nil, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("sort_by must be one of name, score; got %q", sortBy))
	}

	if descending {
		asc := compare
		compare = func(a, b models.ParticipantScore) int { return asc(b, a) }
	}
	slices.SortStableFunc(rows, compare)
	return rows, nil
}

// averageVerifiedScore averages the scores of verified documents only. An
// activity with zero verified documents averages to 0, not "no score".
func (s *Service) averageVerifiedScore(ctx context.Context, activityName string) (float64, error) {
	docs, err := s.documents.List(ctx, activityName)
	if err != nil {
		return 0, err
	}
	sum, count := 0, 0
	for _, d := range docs {
		if d.Verified {
			sum += d.Score
			count++
		}
	}
	if count == 0 {
		return 0, nil
	}
	return float64(sum) / float64(count), nil
}

func firstVerifiedScore(docs []models.Document, email string) *int {
	for _, d := range docs {
		if d.Email == email && d.Verified {
			score := d.Score
			return &score
		}
	}
	return nil
}

func scoreOrZero(p models.ParticipantScore) int {
	if p.Score != nil {
		return *p.Score
	}
	return 0
}
