// Package respond centralizes JSON responses and the mapping from
// coordinator failures to HTTP status codes.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mygive/platform-core/pkg/api"
	"github.com/mygive/platform-core/pkg/ledger"
	"github.com/mygive/platform-core/pkg/lifecycle"
)

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

// Error classifies err and writes the matching status: precondition
// failures are 400, terminal-state rejections 409, ledger reverts 422,
// an unavailable ledger 503, missing records 404 and anything else 500.
func Error(w http.ResponseWriter, log *slog.Logger, err error) {
	status := http.StatusInternalServerError
	kind := ""

	var coordErr *lifecycle.Error
	switch {
	case errors.Is(err, ledger.ErrNotFound):
		status = http.StatusNotFound
	case errors.As(err, &coordErr):
		kind = string(coordErr.Kind)
		switch coordErr.Kind {
		case lifecycle.KindValidation:
			status = http.StatusBadRequest
		case lifecycle.KindTerminal:
			status = http.StatusConflict
		case lifecycle.KindTransaction:
			status = http.StatusUnprocessableEntity
		case lifecycle.KindNotReady:
			status = http.StatusServiceUnavailable
		}
	case errors.Is(err, ledger.ErrNotReady):
		status = http.StatusServiceUnavailable
		kind = string(lifecycle.KindNotReady)
	}

	if status == http.StatusInternalServerError {
		log.Error("request failed", "error", err)
	}
	JSON(w, status, api.Error{Error: err.Error(), Kind: kind})
}

// BadRequest writes a 400 with the given message.
func BadRequest(w http.ResponseWriter, msg string) {
	JSON(w, http.StatusBadRequest, api.Error{Error: msg, Kind: string(lifecycle.KindValidation)})
}
