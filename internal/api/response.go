package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/SerikaYuzuki/WordApp/internal/models"
	"github.com/SerikaYuzuki/WordApp/internal/quiz"
	"github.com/SerikaYuzuki/WordApp/internal/service"
	"github.com/SerikaYuzuki/WordApp/pkg/validator"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	errInvalidID  = errors.New("invalid id")
	errBadRequest = errors.New("malformed request body")
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error("failed to encode response", zap.Error(err))
	}
}

// respondError maps err to a status code. Only server errors are logged.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusCode(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		h.log.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
		message = "internal error"
	}
	h.respondJSON(w, status, ErrorResponse{Error: message})
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound),
		errors.Is(err, service.ErrNoSession):
		return http.StatusNotFound

	case errors.Is(err, quiz.ErrAlreadyAnswered),
		errors.Is(err, quiz.ErrNotAnswered),
		errors.Is(err, quiz.ErrFinished):
		return http.StatusConflict

	case errors.Is(err, quiz.ErrEmptyInput),
		errors.Is(err, models.ErrEmptyWord),
		errors.Is(err, service.ErrNothingToMerge),
		errors.Is(err, validator.ErrValidation):
		return http.StatusUnprocessableEntity

	case errors.Is(err, errInvalidID),
		errors.Is(err, quiz.ErrUnknownMode),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// decode reads a JSON body into dst and validates it.
func decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errBadRequest
	}
	return validator.ValidateStruct(dst)
}

func pathUUID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, errInvalidID
	}
	return id, nil
}
