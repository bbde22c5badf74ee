// Package httpapi exposes the HTTP API layer of the service.
package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/fairyhunter13/product-order-service/internal/model"
	"github.com/fairyhunter13/product-order-service/internal/obs"
)

// jsonError represents a JSON error payload.
type jsonError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// WriteJSONError writes a JSON error payload with the given status code.
func WriteJSONError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(jsonError{Error: message, Details: details})
}

// writeBusinessError translates a workflow error into a transport response:
// InvalidArgument -> 400, NotFound -> 404, Conflict -> 409, anything else ->
// 500 with a generic message. Internal detail is logged, never returned.
func writeBusinessError(w http.ResponseWriter, err error) {
	switch model.KindOf(err) {
	case model.KindInvalidArgument:
		WriteJSONError(w, http.StatusBadRequest, "validation_error", err.Error())
	case model.KindNotFound:
		WriteJSONError(w, http.StatusNotFound, "not_found", err.Error())
	case model.KindConflict:
		WriteJSONError(w, http.StatusConflict, "insufficient_stock", err.Error())
	default:
		obs.Logger.Error("internal_error", "error", err)
		WriteJSONError(w, http.StatusInternalServerError, "internal_error", "an unexpected error occurred")
	}
}
