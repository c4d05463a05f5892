package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/heartmarshall/vidstream-backend/internal/domain"
)

// maxJSONBody caps JSON request bodies.
const maxJSONBody = 1 << 20

type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  []domain.FieldError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: errorDetail{Code: code, Message: message}})
}

// handleError maps a service error to its HTTP status. Unknown errors are
// logged and reported as 500 without detail.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: errorDetail{
			Code:    "VALIDATION",
			Message: ve.Error(),
			Fields:  ve.Errors,
		}})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "VALIDATION", err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "authentication required")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "FORBIDDEN", "not allowed")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "not found")
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "CONFLICT", "conflict")
	case errors.Is(err, domain.ErrUnavailable):
		log.WarnContext(r.Context(), "dependency unavailable", slog.String("error", err.Error()))
		writeError(w, http.StatusServiceUnavailable, "UNAVAILABLE", "service temporarily unavailable")
	case errors.Is(err, context.Canceled):
		log.DebugContext(r.Context(), "request cancelled", slog.String("path", r.URL.Path))
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "INTERNAL", "internal server error")
	}
}

// decodeJSON reads a JSON body of at most maxJSONBody bytes into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.NewValidationError("body", "required")
		}
		return domain.NewValidationError("body", "invalid JSON")
	}
	return nil
}

// uuidParam parses a UUID path parameter.
func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "invalid id")
	}
	return id, nil
}

// optionalUUIDQuery parses an optional UUID query parameter.
func optionalUUIDQuery(r *http.Request, name string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, domain.NewValidationError(name, "invalid id")
	}
	return &id, nil
}

// pageRequest reads page and limit. Absent values are left zero for the
// service to default; a present value must be a positive integer.
func pageRequest(r *http.Request) (domain.PageRequest, error) {
	var (
		req  domain.PageRequest
		errs []domain.FieldError
	)
	q := r.URL.Query()
	for _, p := range []struct {
		name string
		dst  *int
	}{
		{"page", &req.Page},
		{"limit", &req.PageSize},
	} {
		if !q.Has(p.name) {
			continue
		}
		n, err := strconv.Atoi(q.Get(p.name))
		if err != nil || n < 1 {
			errs = append(errs, domain.FieldError{Field: p.name, Message: "must be a positive integer"})
			continue
		}
		*p.dst = n
	}
	if len(errs) > 0 {
		return domain.PageRequest{}, domain.NewValidationErrors(errs)
	}
	return req, nil
}

// listQuery reads the listing parameters shared by every feed.
func listQuery(r *http.Request) (domain.ListQuery, error) {
	page, err := pageRequest(r)
	if err != nil {
		return domain.ListQuery{}, err
	}
	q := r.URL.Query()
	return domain.ListQuery{
		Search:   q.Get("query"),
		SortBy:   q.Get("sortBy"),
		SortType: q.Get("sortType"),
		Page:     page,
	}, nil
}
