package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/racedaybr/pitvote/internal/usecase"
)

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    int    `json:"code"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type mappedError struct {
	HTTPStatus int
	Reason     string
}

// Every rejected credential reads the same, so the body never reveals
// whether the token, the subject, or the header was the problem.
const unauthorizedMessage = "could not validate credentials"

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	_, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	mapped := mapError(ctx, err)
	if mapped.HTTPStatus == http.StatusInternalServerError {
		// Infrastructure details never leave the process.
		writeInternalError(ctx, w)
		return
	}

	message := err.Error()
	if mapped.HTTPStatus == http.StatusUnauthorized {
		message = unauthorizedMessage
	}

	writeJSON(ctx, w, mapped.HTTPStatus, errorResponse{
		Error: errorBody{
			Code:    mapped.HTTPStatus,
			Reason:  mapped.Reason,
			Message: message,
		},
	})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	ctx, span := startSpan(ctx, "httpapi.writeInternalError")
	defer span.End()

	const msg = "internal server error"

	writeJSON(ctx, w, http.StatusInternalServerError, errorResponse{
		Error: errorBody{
			Code:    http.StatusInternalServerError,
			Reason:  "internalError",
			Message: msg,
		},
	})
}

func mapError(ctx context.Context, err error) mappedError {
	_, span := startSpan(ctx, "httpapi.mapError")
	defer span.End()

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return mappedError{HTTPStatus: http.StatusBadRequest, Reason: "invalidInput"}
	case errors.Is(err, usecase.ErrRaceClosed):
		return mappedError{HTTPStatus: http.StatusBadRequest, Reason: "raceClosed"}
	case errors.Is(err, usecase.ErrDuplicateVote):
		return mappedError{HTTPStatus: http.StatusConflict, Reason: "duplicateVote"}
	case errors.Is(err, usecase.ErrNotFound):
		return mappedError{HTTPStatus: http.StatusNotFound, Reason: "notFound"}
	case errors.Is(err, usecase.ErrUnauthorized):
		return mappedError{HTTPStatus: http.StatusUnauthorized, Reason: "unauthorized"}
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return mappedError{HTTPStatus: http.StatusServiceUnavailable, Reason: "dependencyUnavailable"}
	default:
		return mappedError{HTTPStatus: http.StatusInternalServerError, Reason: "internalError"}
	}
}
