package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/wickedsales/storefront/internal/errs"
)

type errorBody struct {
	Error string `json:"error"`
}

// JSON writes v as a JSON response with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

// Error is the single error-reporting stage for all handlers. Client errors
// are reported with their status and message; everything else is logged and
// reported as a generic 500 so the underlying cause never leaks to the
// caller.
func Error(w http.ResponseWriter, err error) {
	if clientErr, ok := errs.AsClient(err); ok {
		JSON(w, clientErr.Status, errorBody{Error: clientErr.Message})

		return
	}

	slog.Error("Unexpected error", "error", err)
	JSON(w, http.StatusInternalServerError, errorBody{Error: "an unexpected error occurred"})
}
