package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/tarsojabbes/science/internal/domain"
	"github.com/tarsojabbes/science/pkg/ctxutil"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error  string              `json:"error"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// handleError maps service errors onto HTTP status codes. Business errors
// carry their message to the client; anything unexpected is logged and
// answered with a generic 500.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: ve.Errors})
		return
	}

	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "unexpected error",
			slog.String("error", err.Error()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())))
		writeError(w, status, "internal server error")
		return
	}

	writeError(w, status, publicMessage(err))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidState),
		errors.Is(err, domain.ErrConflict):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage prefers the contract message of a *domain.Error over the
// wrapped chain, which contains internal step names.
func publicMessage(err error) string {
	var de *domain.Error
	if errors.As(err, &de) {
		return de.Error()
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "not found"
	case errors.Is(err, domain.ErrAlreadyExists):
		return "already exists"
	case errors.Is(err, domain.ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, domain.ErrForbidden):
		return "forbidden"
	}
	return err.Error()
}

// decodeJSON reads a size-limited JSON body and rejects unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return domain.NewValidationError("body", "invalid JSON: "+err.Error())
	}
	return nil
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a UUID")
	}
	return id, nil
}

func queryUUID(r *http.Request, name string) (*uuid.UUID, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, domain.NewValidationError(name, "must be a UUID")
	}
	return &id, nil
}

// page reads limit and offset query parameters. Clamping is left to services.
func page(r *http.Request) (limit, offset int, err error) {
	q := r.URL.Query()
	if limit, err = queryInt(q.Get("limit"), "limit"); err != nil {
		return 0, 0, err
	}
	if offset, err = queryInt(q.Get("offset"), "offset"); err != nil {
		return 0, 0, err
	}
	return limit, offset, nil
}

func queryInt(raw, name string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(name, fmt.Sprintf("must be an integer, got %q", raw))
	}
	return n, nil
}

// currentUser returns the authenticated caller, or ErrUnauthorized for an
// anonymous request.
func currentUser(r *http.Request) (uuid.UUID, error) {
	id, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return id, nil
}
