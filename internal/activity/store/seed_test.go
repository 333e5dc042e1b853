package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	activitystore "mergington/internal/activity/store/activity"
)

func TestSeedActivities(t *testing.T) {
	s := activitystore.NewInMemory()
	SeedActivities(s)
	ctx := context.Background()

	catalog, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, catalog, 9)

	chess, err := s.Get(ctx, "Chess Club")
	require.NoError(t, err)
	assert.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, chess.Participants)
	assert.Equal(t, 12, chess.MaxParticipants)

	views, err := s.ListOrdered(ctx)
	require.NoError(t, err)
	require.Len(t, views, 9)
	assert.Equal(t, "Chess Club", views[0].Name)
	assert.Equal(t, "Debate Team", views[8].Name)
}
