package api

import (
	"encoding/json"
	"net/http"

	serrors "staticd/internal/errors"
)

// ErrorResponse represents a JSON error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteError writes an error as a JSON response with its mapped status
func WriteError(w http.ResponseWriter, err error) {
	resp := ErrorResponse{
		Error: err.Error(),
		Code:  string(serrors.InternalError),
	}
	status := http.StatusInternalServerError

	if serr, ok := err.(*serrors.ServeError); ok {
		resp.Code = string(serr.Code)
		status = MapErrorToStatus(serr.Code)
	}

	WriteJSON(w, resp, status)
}

// MapErrorToStatus maps serve error codes to HTTP status codes
func MapErrorToStatus(code serrors.ErrorCode) int {
	switch code {
	case serrors.InvalidPath:
		return http.StatusBadRequest // 400
	case serrors.NotFound:
		return http.StatusNotFound // 404
	case serrors.StreamFailure:
		return http.StatusInternalServerError // 500
	case serrors.InternalError:
		return http.StatusInternalServerError // 500
	default:
		return http.StatusInternalServerError // 500
	}
}

// InternalError writes a 500 Internal Server Error
func InternalError(w http.ResponseWriter, message string) {
	WriteError(w, serrors.New(serrors.InternalError, message, nil))
}
