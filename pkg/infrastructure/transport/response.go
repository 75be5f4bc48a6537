package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"sales/pkg/domain/model"
	"sales/pkg/domain/service"
)

var errMalformedJSON = errors.New("malformed JSON")

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errMalformedJSON
	}
	return nil
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrUsernameTaken):
		return http.StatusConflict
	case errors.Is(err, errMalformedJSON),
		errors.Is(err, service.ErrEmptyField),
		errors.Is(err, service.ErrInvalidPrice),
		errors.Is(err, model.ErrQuantityOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrProductNotFound),
		errors.Is(err, model.ErrOrderNotFound),
		errors.Is(err, model.ErrCartItemNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// writeFailure reports err to the client. Unexpected errors are logged and
// replaced by a generic message.
func (h *Handler) writeFailure(w http.ResponseWriter, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		h.logger.WithError(err).Error("request failed")
		writeError(w, status, "internal error")
		return
	}
	writeError(w, status, err.Error())
}
