package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"mergington/internal/activity/models"
	activitystore "mergington/internal/activity/store/activity"
	dErrors "mergington/pkg/domain-errors"
)

type EnrollmentServiceSuite struct {
	suite.Suite
	store   *activitystore.InMemory
	service *Service
	ctx     context.Context
}

func TestEnrollmentServiceSuite(t *testing.T) {
	suite.Run(t, new(EnrollmentServiceSuite))
}

func (s *EnrollmentServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = activitystore.NewInMemory()
	s.Require().NoError(s.store.Create(s.ctx, "Chess Club", models.Activity{
		Description:     "Learn strategies and compete in chess tournaments",
		Schedule:        "Fridays, 3:30 PM - 5:00 PM",
		MaxParticipants: 2,
		Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
	}))
	s.service = New(s.store)
}

func (s *EnrollmentServiceSuite) roster(name string) []string {
	a, err := s.store.Get(s.ctx, name)
	s.Require().NoError(err)
	return a.Participants
}

func (s *EnrollmentServiceSuite) TestSignup() {
	s.Run("appends the new student and confirms", func() {
		msg, err := s.service.Signup(s.ctx, "Chess Club", "ada@mergington.edu")
		s.Require().NoError(err)
		s.Equal("Signed up ada@mergington.edu for Chess Club", msg)
		s.Equal([]string{"michael@mergington.edu", "daniel@mergington.edu", "ada@mergington.edu"}, s.roster("Chess Club"))
	})

	s.Run("rejects a duplicate signup and leaves the roster unchanged", func() {
		before := s.roster("Chess Club")

		_, err := s.service.Signup(s.ctx, "Chess Club", "michael@mergington.edu")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeConflict))
		s.Equal(before, s.roster("Chess Club"))
	})

	s.Run("returns NotFound for an unknown activity", func() {
		_, err := s.service.Signup(s.ctx, "Fencing Club", "ada@mergington.edu")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("never enforces capacity", func() {
		// Chess Club is seeded at its max of 2; extra signups still succeed.
		_, err := s.service.Signup(s.ctx, "Chess Club", "grace@mergington.edu")
		s.Require().NoError(err)
		_, err = s.service.Signup(s.ctx, "Chess Club", "alan@mergington.edu")
		s.Require().NoError(err)
	})
}

func (s *EnrollmentServiceSuite) TestUnregister() {
	s.Run("removes exactly one entry and preserves order", func() {
		msg, err := s.service.Unregister(s.ctx, "Chess Club", "michael@mergington.edu")
		s.Require().NoError(err)
		s.Equal("Unregistered michael@mergington.edu from Chess Club", msg)
		s.Equal([]string{"daniel@mergington.edu"}, s.roster("Chess Club"))
	})

	s.Run("rejects an email that is not signed up, state unchanged", func() {
		before := s.roster("Chess Club")

		_, err := s.service.Unregister(s.ctx, "Chess Club", "ada@mergington.edu")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeConflict))
		s.Equal(before, s.roster("Chess Club"))
	})

	s.Run("returns NotFound for an unknown activity", func() {
		_, err := s.service.Unregister(s.ctx, "Fencing Club", "ada@mergington.edu")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}
