package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/structura/backend/internal/model"
	"github.com/structura/backend/internal/repository"
	"github.com/structura/backend/internal/service"
	"github.com/structura/backend/internal/validate"
)

// response is the uniform JSON envelope every endpoint returns.
type response struct {
	Success    bool                  `json:"success"`
	Message    string                `json:"message,omitempty"`
	Data       any                   `json:"data,omitempty"`
	Pagination *model.Pagination     `json:"pagination,omitempty"`
	Errors     []validate.FieldError `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, resp response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("write response", "error", err)
	}
}

func respondData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, response{Success: true, Data: data})
}

func respondList(w http.ResponseWriter, data any, pg *model.Pagination) {
	writeJSON(w, http.StatusOK, response{Success: true, Data: data, Pagination: pg})
}

func respondMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, response{Success: true, Message: msg})
}

func respondFail(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, response{Success: false, Message: msg})
}

func respondValidation(w http.ResponseWriter, errs []validate.FieldError) {
	writeJSON(w, http.StatusBadRequest, response{
		Success: false,
		Message: "validation failed",
		Errors:  errs,
	})
}

// debugErrors controls whether 500 responses carry the underlying error
// detail. Set once from Routes before the server starts serving; production
// clients only ever see the generic message.
var debugErrors bool

func internalErrorMessage(detail string) string {
	if debugErrors {
		return detail
	}
	return "internal server error"
}

// respondError maps domain errors to HTTP statuses. Anything unrecognized is
// logged and surfaced as a 500.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		respondFail(w, http.StatusNotFound, "resource not found")
	case errors.Is(err, repository.ErrDuplicate):
		respondFail(w, http.StatusBadRequest, "resource already exists")
	case errors.Is(err, service.ErrInvalidCredentials):
		respondFail(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, service.ErrAlreadySubscribed):
		respondFail(w, http.StatusBadRequest, "email is already subscribed")
	default:
		slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		respondFail(w, http.StatusInternalServerError, internalErrorMessage(err.Error()))
	}
}

// decodeJSON decodes the request body into dst, rejecting unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// PageLimits carries the configured pagination bounds into handlers.
type PageLimits struct {
	Default int
	Max     int
}

// parsePage reads page and limit query parameters. Out-of-range or
// non-numeric values are a client error, never silently clamped.
func parsePage(r *http.Request, lim PageLimits) (model.PageQuery, error) {
	q := model.PageQuery{Page: 1, Limit: lim.Default}

	if raw := r.URL.Query().Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return model.PageQuery{}, errors.New("page must be a positive integer")
		}
		q.Page = n
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > lim.Max {
			return model.PageQuery{}, errors.New("limit must be between 1 and " + strconv.Itoa(lim.Max))
		}
		q.Limit = n
	}
	return q, nil
}

// boolParam parses an optional true/false query parameter into a *bool
// filter. Unparseable values are ignored.
func boolParam(r *http.Request, name string) *bool {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &b
}

// CORS returns middleware that answers preflight requests and stamps the
// allowed origin on every response.
func CORS(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Allow-Credentials", "true")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
