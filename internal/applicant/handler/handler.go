package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/online-dot/abroad-application-platform/internal/applicant"
	"github.com/online-dot/abroad-application-platform/pkg/platform/httputil"
)

// Service resolves the authenticated applicant.
type Service interface {
	CurrentApplicant(ctx context.Context) (*applicant.Applicant, error)
}

// Handler serves the applicant dashboard profile.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// ProfileResponse is the dashboard view of the caller's account. PassportHint
// steers applicants without a passport toward the acquisition flow before they
// reach the (gated) application form.
type ProfileResponse struct {
	ID           string `json:"id"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	HasPassport  bool   `json:"has_passport"`
	PassportHint string `json:"passport_hint,omitempty"`
}

// HandleProfile handles GET /me requests.
func (h *Handler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	current, err := h.service.CurrentApplicant(r.Context())
	if err != nil {
		httputil.WriteErrorRedirect(w, err, "/login")
		return
	}

	resp := ProfileResponse{
		ID:          current.ID.String(),
		FullName:    current.FullName,
		Email:       current.Email,
		HasPassport: current.HasPassport,
	}
	if !current.HasPassport {
		resp.PassportHint = "/passport"
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}
