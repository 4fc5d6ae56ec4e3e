package common

import (
	"encoding/json"
	"net/http"

	"aeromart/internal/logging"
)

// APIResponse is the uniform envelope every endpoint answers with. List
// endpoints embed it in richer DTOs that add pagination fields.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// RespondSuccess sends a standardized JSON success response.
func RespondSuccess(w http.ResponseWriter, message string, data any, statusCode ...int) {
	code := http.StatusOK
	if len(statusCode) > 0 {
		code = statusCode[0]
	}

	WriteJSON(w, code, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// RespondError sends a standardized JSON error response.
func RespondError(w http.ResponseWriter, err error, message string, statusCode ...int) {
	code := http.StatusInternalServerError
	if len(statusCode) > 0 {
		code = statusCode[0]
	}

	msg := message
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}

	WriteJSON(w, code, APIResponse{
		Success: false,
		Message: msg,
	})
}

// WriteJSON marshals data and writes it to the HTTP response.
func WriteJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Error("JSON encode failed", "error", err.Error())
	}
}
