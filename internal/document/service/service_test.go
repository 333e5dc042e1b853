package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"mergington/internal/activity/models"
	activitystore "mergington/internal/activity/store/activity"
	documentstore "mergington/internal/activity/store/document"
	dErrors "mergington/pkg/domain-errors"
)

type DocumentServiceSuite struct {
	suite.Suite
	activities *activitystore.InMemory
	documents  *documentstore.InMemory
	service    *Service
	ctx        context.Context
}

func TestDocumentServiceSuite(t *testing.T) {
	suite.Run(t, new(DocumentServiceSuite))
}

func (s *DocumentServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.activities = activitystore.NewInMemory()
	s.documents = documentstore.NewInMemory()
	s.Require().NoError(s.activities.Create(s.ctx, "Chess Club", models.Activity{
		Participants: []string{"michael@mergington.edu"},
	}))
	s.service = New(s.activities, s.documents)
}

func (s *DocumentServiceSuite) TestSubmit() {
	s.Run("records metadata with verified false", func() {
		msg, err := s.service.Submit(s.ctx, "Chess Club", "michael@mergington.edu", "cert.pdf", "application/pdf", 85)
		s.Require().NoError(err)
		s.Equal("Uploaded cert.pdf for michael@mergington.edu in Chess Club", msg)

		docs, err := s.documents.List(s.ctx, "Chess Club")
		s.Require().NoError(err)
		s.Require().Len(docs, 1)
		s.Equal(models.Document{
			Email:       "michael@mergington.edu",
			Filename:    "cert.pdf",
			ContentType: "application/pdf",
			Score:       85,
			Verified:    false,
		}, docs[0])
	})

	s.Run("accepts any integer score, including negative", func() {
		_, err := s.service.Submit(s.ctx, "Chess Club", "michael@mergington.edu", "odd.pdf", "application/pdf", -40)
		s.Require().NoError(err)
	})

	s.Run("returns NotFound for an unknown activity", func() {
		_, err := s.service.Submit(s.ctx, "Fencing Club", "a@mergington.edu", "cert.pdf", "application/pdf", 85)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func (s *DocumentServiceSuite) TestListDocuments() {
	s.Run("returns the empty sequence when nothing was submitted", func() {
		docs, err := s.service.ListDocuments(s.ctx, "Chess Club")
		s.Require().NoError(err)
		s.Empty(docs)
	})

	s.Run("returns NotFound for an unknown activity", func() {
		_, err := s.service.ListDocuments(s.ctx, "Fencing Club")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func (s *DocumentServiceSuite) TestVerify() {
	s.Run("flips verified on the exact submitted record", func() {
		_, err := s.service.Submit(s.ctx, "Chess Club", "michael@mergington.edu", "cert.pdf", "application/pdf", 85)
		s.Require().NoError(err)

		msg, err := s.service.Verify(s.ctx, "Chess Club", "michael@mergington.edu", "cert.pdf")
		s.Require().NoError(err)
		s.Equal("Verified cert.pdf for michael@mergington.edu in Chess Club", msg)

		docs, err := s.documents.List(s.ctx, "Chess Club")
		s.Require().NoError(err)
		s.True(docs[0].Verified)
	})

	s.Run("returns NotFound for a non-existent pair", func() {
		_, err := s.service.Verify(s.ctx, "Chess Club", "michael@mergington.edu", "missing.pdf")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("does not validate activity existence separately", func() {
		// Documents can exist for names outside the catalog; verify only
		// cares about the record.
		s.Require().NoError(s.documents.Append(s.ctx, "Ghost Club", models.Document{
			Email:    "a@mergington.edu",
			Filename: "cert.pdf",
		}))

		_, err := s.service.Verify(s.ctx, "Ghost Club", "a@mergington.edu", "cert.pdf")
		s.Require().NoError(err)
	})
}
