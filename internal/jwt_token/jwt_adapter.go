package jwttoken

import (
	"github.com/online-dot/abroad-application-platform/internal/platform/middleware"
)

// JWTServiceAdapter exposes JWTService through the middleware's TokenValidator
// interface so the middleware package does not depend on JWT internals.
type JWTServiceAdapter struct {
	service *JWTService
}

func NewJWTServiceAdapter(service *JWTService) *JWTServiceAdapter {
	return &JWTServiceAdapter{service: service}
}

func (a *JWTServiceAdapter) ValidateToken(tokenString string) (*middleware.TokenClaims, error) {
	claims, err := a.service.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	return &middleware.TokenClaims{
		ApplicantID: claims.ApplicantID,
		SessionID:   claims.SessionID,
	}, nil
}
