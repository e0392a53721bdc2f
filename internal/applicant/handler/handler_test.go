package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/online-dot/abroad-application-platform/internal/applicant"
	id "github.com/online-dot/abroad-application-platform/pkg/domain"
	dErrors "github.com/online-dot/abroad-application-platform/pkg/domain-errors"
	"github.com/online-dot/abroad-application-platform/pkg/testutil"
)

type stubService struct {
	current *applicant.Applicant
	err     error
}

func (s *stubService) CurrentApplicant(context.Context) (*applicant.Applicant, error) {
	return s.current, s.err
}

type ProfileSuite struct {
	suite.Suite
	service *stubService
	handler *Handler
}

func TestProfileSuite(t *testing.T) {
	suite.Run(t, new(ProfileSuite))
}

func (s *ProfileSuite) SetupTest() {
	s.service = &stubService{}
	s.handler = New(s.service, testutil.DiscardLogger())
}

func (s *ProfileSuite) TestProfileWithPassport() {
	s.service.current = &applicant.Applicant{
		ID:          id.ApplicantID(uuid.New()),
		FullName:    "Ada Lovelace",
		Email:       "ada@example.com",
		HasPassport: true,
		CreatedAt:   time.Now(),
	}

	req := testutil.NewJSONRequest(s.T(), http.MethodGet, "/me", nil)
	rec := testutil.DoRequest(http.HandlerFunc(s.handler.HandleProfile), req)

	s.Equal(http.StatusOK, rec.Code)
	resp := testutil.UnmarshalResponse[ProfileResponse](s.T(), rec)
	s.Equal("Ada Lovelace", resp.FullName)
	s.True(resp.HasPassport)
	s.Empty(resp.PassportHint)
}

// TestProfileWithoutPassport verifies the dashboard steers passport-less
// applicants toward the acquisition flow.
func (s *ProfileSuite) TestProfileWithoutPassport() {
	s.service.current = &applicant.Applicant{
		ID:    id.ApplicantID(uuid.New()),
		Email: "ada@example.com",
	}

	req := testutil.NewJSONRequest(s.T(), http.MethodGet, "/me", nil)
	rec := testutil.DoRequest(http.HandlerFunc(s.handler.HandleProfile), req)

	s.Equal(http.StatusOK, rec.Code)
	resp := testutil.UnmarshalResponse[ProfileResponse](s.T(), rec)
	s.False(resp.HasPassport)
	s.Equal("/passport", resp.PassportHint)
}

func (s *ProfileSuite) TestProfileUnauthorized() {
	s.service.err = dErrors.New(dErrors.CodeUnauthorized, "authentication required")

	req := testutil.NewJSONRequest(s.T(), http.MethodGet, "/me", nil)
	rec := testutil.DoRequest(http.HandlerFunc(s.handler.HandleProfile), req)

	s.Equal(http.StatusUnauthorized, rec.Code)
	resp := testutil.UnmarshalResponse[map[string]any](s.T(), rec)
	s.Equal("/login", (*resp)["redirect"])
}
