// Package httputil centralizes JSON encoding and domain-error translation for
// HTTP handlers so every endpoint emits the same envelopes.
package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	dErrors "github.com/online-dot/abroad-application-platform/pkg/domain-errors"
)

// maxBodyBytes bounds request bodies; submission forms are tiny.
const maxBodyBytes = 64 << 10

// Validatable is implemented by request DTOs that can check their own shape.
// Validate should fail fast on structural problems (missing body, oversized
// fields); business rules belong to domain validators.
type Validatable interface {
	Validate() error
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorEnvelope is the uniform error body. Fields carries ordered field-error
// identifiers for validation failures. Redirect steers browsers toward the
// flow that resolves the block (login, passport acquisition).
type errorEnvelope struct {
	Error            string   `json:"error"`
	ErrorDescription string   `json:"error_description,omitempty"`
	Fields           []string `json:"fields,omitempty"`
	Redirect         string   `json:"redirect,omitempty"`
}

// WriteError translates a domain error into its HTTP envelope. Internal errors
// omit the description so storage details never leak to clients.
func WriteError(w http.ResponseWriter, err error) {
	WriteErrorRedirect(w, err, "")
}

// WriteErrorRedirect is WriteError with a redirect hint for blocked callers.
func WriteErrorRedirect(w http.ResponseWriter, err error, redirect string) {
	code := dErrors.CodeOf(err)
	envelope := errorEnvelope{
		Error:    string(code),
		Fields:   dErrors.FieldsOf(err),
		Redirect: redirect,
	}
	if code != dErrors.CodeInternal {
		var de *dErrors.Error
		if errors.As(err, &de) {
			envelope.ErrorDescription = de.Message
		}
	}
	WriteJSON(w, dErrors.HTTPStatus(code), envelope)
}

// DecodeAndPrepare decodes the JSON body into a fresh T and runs its Validate.
// On failure it writes the error response and returns ok=false; handlers just
// return. The logger records malformed payloads for debugging, keyed by the
// request ID.
func DecodeAndPrepare[T any, PT interface {
	*T
	Validatable
}](w http.ResponseWriter, r *http.Request, logger *slog.Logger, ctx context.Context, requestID string) (PT, bool) {
	req := PT(new(T))
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(req); err != nil {
		if logger != nil {
			logger.WarnContext(ctx, "malformed request body",
				"request_id", requestID,
				"error", err,
			)
		}
		msg := "request body must be valid JSON"
		if errors.Is(err, io.EOF) {
			msg = "request body is required"
		}
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, msg))
		return nil, false
	}
	if err := req.Validate(); err != nil {
		WriteError(w, err)
		return nil, false
	}
	return req, true
}
