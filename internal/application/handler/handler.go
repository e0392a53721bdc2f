package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/online-dot/abroad-application-platform/internal/application"
	id "github.com/online-dot/abroad-application-platform/pkg/domain"
	dErrors "github.com/online-dot/abroad-application-platform/pkg/domain-errors"
	"github.com/online-dot/abroad-application-platform/pkg/platform/httputil"
	"github.com/online-dot/abroad-application-platform/pkg/requestcontext"
)

// Service defines the interface for submission operations.
type Service interface {
	Submit(ctx context.Context, draft application.Draft) (*application.Application, error)
	GetByNumber(ctx context.Context, number id.ApplicationNumber) (*application.Application, error)
	ListMine(ctx context.Context) ([]*application.Application, error)
}

// Handler wires application endpoints to the submission service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an application handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// HandleSubmit handles POST /applications requests.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[SubmitRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	app, err := h.service.Submit(ctx, req.Draft())
	if err != nil {
		h.writeSubmitError(w, r, req, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, FromApplication(app))
}

// writeSubmitError maps each terminal submission state to its outcome surface:
// blocked callers get a steering redirect, rejected and failed submissions get
// their input echoed back so nothing has to be retyped.
func (h *Handler) writeSubmitError(w http.ResponseWriter, r *http.Request, req *SubmitRequest, err error) {
	switch dErrors.CodeOf(err) {
	case dErrors.CodeUnauthorized:
		httputil.WriteErrorRedirect(w, err, "/login")
	case dErrors.CodePrecondition:
		httputil.WriteErrorRedirect(w, err, "/passport")
	case dErrors.CodeValidation:
		httputil.WriteJSON(w, dErrors.HTTPStatus(dErrors.CodeValidation), RejectedResponse{
			Error:  string(dErrors.CodeValidation),
			Fields: dErrors.FieldsOf(err),
			Form:   req.Echo(),
		})
	case dErrors.CodeUnavailable:
		var de *dErrors.Error
		description := "please try again"
		if errors.As(err, &de) {
			description = de.Message
		}
		httputil.WriteJSON(w, dErrors.HTTPStatus(dErrors.CodeUnavailable), FailedResponse{
			Error:            string(dErrors.CodeUnavailable),
			ErrorDescription: description,
			Form:             req.Echo(),
		})
	default:
		h.logger.ErrorContext(r.Context(), "submission failed",
			"request_id", requestcontext.RequestID(r.Context()),
			"error", err,
		)
		httputil.WriteError(w, err)
	}
}

// HandleGet handles GET /applications/{number} requests.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	number, err := id.ParseApplicationNumber(chi.URLParam(r, "number"))
	if err != nil {
		// Malformed numbers read the same as unknown ones.
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "application not found"))
		return
	}

	app, err := h.service.GetByNumber(ctx, number)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromApplication(app))
}

// HandleList handles GET /applications requests.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	apps, err := h.service.ListMine(ctx)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromApplications(apps))
}
