package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/servicehub/booking-system/shared/models"
)

type messageResponse struct {
	Message string `json:"message"`
}

// WriteJSON writes body as JSON with the given status
func WriteJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteMessage writes a {"message": ...} body
func WriteMessage(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, messageResponse{Message: message})
}

// StatusOf maps a classified error to its HTTP status
func StatusOf(err error) int {
	kind, _, ok := models.KindOf(err)
	if !ok {
		return http.StatusInternalServerError
	}

	switch kind {
	case models.KindInvalidInput, models.KindPreconditionFailed, models.KindGatewayDeclined:
		return http.StatusBadRequest
	case models.KindNotFound:
		return http.StatusNotFound
	case models.KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// WriteError maps err to a response. Unclassified errors are logged and
// answered with a generic message.
func WriteError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		WriteMessage(w, status, "internal server error")
		return
	}

	_, message, _ := models.KindOf(err)
	WriteMessage(w, status, message)
}

// DecodeJSON decodes the request body into v
func DecodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return models.NewInvalidInput("invalid request body")
	}
	return nil
}
