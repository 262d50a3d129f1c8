package utils

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var validate = validator.New()

// Response is the envelope for error and message-only replies.
type Response struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func RespondWithJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("failed to encode response", zap.Error(err))
	}
}

func RespondWithError(w http.ResponseWriter, statusCode int, message string) {
	RespondWithJSON(w, statusCode, Response{Message: message})
}

// RespondWithValidationErrors reports per-field failures so clients can fix
// every problem in one pass.
func RespondWithValidationErrors(w http.ResponseWriter, fieldErrors map[string]string) {
	RespondWithJSON(w, http.StatusBadRequest, Response{
		Message: "Validation failed",
		Errors:  fieldErrors,
	})
}

// DecodeAndValidate parses the JSON body into T and applies the struct's
// validate tags.
func DecodeAndValidate[T any](r *http.Request) (T, error) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, err
	}
	if err := validate.Struct(req); err != nil {
		return req, err
	}
	return req, nil
}
