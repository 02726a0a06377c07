// Package httpx holds the JSON response helpers shared by every handler.
// All success responses use the same {status, message, data} envelope and all
// failures funnel through WriteError, so the wire format is defined in exactly
// one place.
package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/user/accounts-go/apperror"
)

// Envelope is the JSON shape of every successful response.
type Envelope struct {
	Status  bool        `json:"status" example:"true"`
	Message string      `json:"message" example:"Users fetched successfully"`
	Data    interface{} `json:"data,omitempty"`
}

// WriteJSON serializes data to JSON with the given status code.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, `{"status":false,"message":"failed to encode response"}`, http.StatusInternalServerError)
		}
	}
}

// WriteSuccess writes the standard success envelope.
func WriteSuccess(w http.ResponseWriter, status int, message string, data interface{}) {
	WriteJSON(w, status, Envelope{Status: true, Message: message, Data: data})
}

// WriteError translates any error into the standard error envelope. Errors
// that are not already an *apperror.AppError are wrapped as internal errors
// so nothing unexpected leaks to the client.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperror.FromError(err)
	if !ok {
		appErr = apperror.NewInternalError("an unexpected error occurred", err)
	}
	WriteJSON(w, appErr.StatusCode(), appErr.ToResponse())
}
