package jwttoken

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	id "github.com/online-dot/abroad-application-platform/pkg/domain"
	dErrors "github.com/online-dot/abroad-application-platform/pkg/domain-errors"
)

type JWTSuite struct {
	suite.Suite
	service     *JWTService
	applicantID id.ApplicantID
	sessionID   id.SessionID
}

func TestJWTSuite(t *testing.T) {
	suite.Run(t, new(JWTSuite))
}

func (s *JWTSuite) SetupTest() {
	s.service = NewJWTService("test-signing-key", "abroad-portal", "abroad-portal-web")
	s.applicantID = id.ApplicantID(uuid.New())
	s.sessionID = id.SessionID(uuid.New())
}

func (s *JWTSuite) TestRoundTrip() {
	token, err := s.service.GenerateAccessToken(s.applicantID, s.sessionID, time.Hour)
	s.Require().NoError(err)
	s.NotEmpty(token)

	claims, err := s.service.ValidateToken(token)
	s.Require().NoError(err)
	s.Equal(s.applicantID.String(), claims.ApplicantID)
	s.Equal(s.sessionID.String(), claims.SessionID)
}

func (s *JWTSuite) TestExpiredToken() {
	token, err := s.service.GenerateAccessToken(s.applicantID, s.sessionID, -time.Minute)
	s.Require().NoError(err)

	_, err = s.service.ValidateToken(token)
	s.Require().Error(err)
	s.Equal(dErrors.CodeUnauthorized, dErrors.CodeOf(err))

	var de *dErrors.Error
	s.Require().ErrorAs(err, &de)
	s.Equal("token has expired", de.Message)
}

func (s *JWTSuite) TestWrongSigningKey() {
	other := NewJWTService("different-key", "abroad-portal", "abroad-portal-web")
	token, err := other.GenerateAccessToken(s.applicantID, s.sessionID, time.Hour)
	s.Require().NoError(err)

	_, err = s.service.ValidateToken(token)
	s.Require().Error(err)
	s.Equal(dErrors.CodeUnauthorized, dErrors.CodeOf(err))
}

func (s *JWTSuite) TestGarbageToken() {
	_, err := s.service.ValidateToken("not.a.token")
	s.Require().Error(err)
	s.Equal(dErrors.CodeUnauthorized, dErrors.CodeOf(err))
}

// TestAdapter verifies the middleware adapter surfaces the raw string claims.
func (s *JWTSuite) TestAdapter() {
	token, err := s.service.GenerateAccessToken(s.applicantID, s.sessionID, time.Hour)
	s.Require().NoError(err)

	adapter := NewJWTServiceAdapter(s.service)
	claims, err := adapter.ValidateToken(token)
	s.Require().NoError(err)
	s.Equal(s.applicantID.String(), claims.ApplicantID)
	s.Equal(s.sessionID.String(), claims.SessionID)
}
