package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"qrgen/pkg/domain"
	"qrgen/pkg/logger"
	"qrgen/pkg/serrors"

	"go.uber.org/zap"
)

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Error  string `json:"error"`
	Kind   string `json:"kind"`
	Reason string `json:"reason,omitempty"`
}

// StatusFor maps a semantic error kind to an HTTP status code.
func StatusFor(k serrors.Kind) int {
	switch k {
	case serrors.ErrInvalidInput, serrors.ErrBadRequest:
		return http.StatusBadRequest
	case serrors.ErrEncodingFailed:
		return http.StatusUnprocessableEntity
	case serrors.ErrPayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	case serrors.ErrNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// WriteJSON writes data as a JSON body with the given status code.
func WriteJSON(ctx context.Context, w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Warn(ctx, "could not write response", zap.Error(err))
	}
}

// WriteError writes err as an ErrorResponse. Internal errors are logged and
// their details hidden from the client.
func WriteError(ctx context.Context, w http.ResponseWriter, err error) {
	kind := serrors.KindOf(err)
	status := StatusFor(kind)

	resp := ErrorResponse{Error: err.Error(), Kind: kind.Error()}
	if status == http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
		resp.Error = "internal error"
	}

	var reason domain.Reason
	if errors.As(err, &reason) {
		resp.Reason = reason.String()
	}

	WriteJSON(ctx, w, status, resp)
}
