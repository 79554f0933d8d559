package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"QUORA_BACK-END/internal/apperrors"
	"QUORA_BACK-END/internal/dto"
	"QUORA_BACK-END/internal/logging"
)

// maxBodyBytes caps JSON request bodies
const maxBodyBytes = 1 << 20

// WriteJSONResponse writes a JSON response to the HTTP response writer
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// WriteErrorResponse writes a {"code","message"} error body
func WriteErrorResponse(w http.ResponseWriter, status int, code, message string) {
	WriteJSONResponse(w, status, dto.ErrorResponse{Code: code, Message: message})
}

// WriteAppError reports err to the client. Errors that are not
// *apperrors.Error are logged and reported as INT-001 without details.
func WriteAppError(w http.ResponseWriter, r *http.Request, logger logging.Logger, err error) {
	appErr, ok := apperrors.As(err)
	if !ok {
		logger.Error(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		appErr = apperrors.ErrInternal
	}
	WriteErrorResponse(w, appErr.HTTPStatus(), appErr.Code, appErr.Message)
}

// DecodeJSONRequest decodes the request body into dst. Malformed or
// oversized bodies yield a REQ-001 error.
func DecodeJSONRequest(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return apperrors.Validation("request body is required")
		case errors.As(err, &maxErr):
			return apperrors.Validation(fmt.Sprintf("request body must not exceed %d bytes", maxErr.Limit))
		default:
			return apperrors.Validation("invalid request body: " + err.Error())
		}
	}
	return nil
}
