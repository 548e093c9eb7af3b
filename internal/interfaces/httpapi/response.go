package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/hockey-league/internal/usecase"
)

const (
	msgEndpointNotFound = "Endpoint not found"
	msgInternalError    = "internal server error"
)

var errInvalidBody = errors.New("invalid JSON body")

type errorResponse struct {
	Error string `json:"error"`
}

type successResponse struct {
	Success bool `json:"success"`
}

type mappedError struct {
	HTTPStatus int
	Message    string
}

func writeJSON(_ context.Context, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter) {
	writeJSON(ctx, w, http.StatusOK, successResponse{Success: true})
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	mapped := mapError(err)
	writeJSON(ctx, w, mapped.HTTPStatus, errorResponse{Error: mapped.Message})
}

func writeNotFound(ctx context.Context, w http.ResponseWriter) {
	writeJSON(ctx, w, http.StatusNotFound, errorResponse{Error: msgEndpointNotFound})
}

func writeInternalError(w http.ResponseWriter, _ *http.Request) {
	writeJSON(context.Background(), w, http.StatusInternalServerError, errorResponse{Error: msgInternalError})
}

// mapError exposes validation messages to the caller. Storage errors are
// reported without detail.
func mapError(err error) mappedError {
	switch {
	case errors.Is(err, errInvalidBody), errors.Is(err, usecase.ErrInvalidInput):
		return mappedError{HTTPStatus: http.StatusBadRequest, Message: err.Error()}
	case errors.Is(err, usecase.ErrNotFound):
		return mappedError{HTTPStatus: http.StatusNotFound, Message: err.Error()}
	default:
		return mappedError{HTTPStatus: http.StatusInternalServerError, Message: msgInternalError}
	}
}
