// Package httpapi exposes the admin REST API of the rental platform.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/roadfleet/roadfleet/internal/common"
)

// envelope is the standard success wrapper; most endpoints return
// {"success": true, "data": ...}.
type envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

// errorBody is the failure wrapper shared by all endpoints.
type errorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{Success: true, Data: data})
}

// writeError maps service errors onto HTTP statuses. 401 is reserved for
// authentication failures; clients treat it as a forced logout.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		status = http.StatusUnauthorized
	case errors.Is(err, common.ErrorNotFound):
		status = http.StatusNotFound
	case errors.Is(err, common.ErrorAlreadyExists):
		status = http.StatusConflict
	case errors.Is(err, common.ErrorValidation):
		status = http.StatusBadRequest
	}
	writeJSON(w, status, errorBody{Success: false, Message: err.Error()})
}

func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return common.ErrorValidation
	}
	return nil
}
