// Package chat exposes the per-claim message threads over HTTP.
package chat

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mygive/platform-core/pkg/api"
	"github.com/mygive/platform-core/pkg/handlers/respond"
	"github.com/mygive/platform-core/pkg/lifecycle"
	"github.com/mygive/platform-core/pkg/mapping"
)

// Handler holds the dependencies for chat endpoints.
type Handler struct {
	Coordinator *lifecycle.Coordinator
	Log         *slog.Logger
}

// New creates a chat Handler.
func New(coordinator *lifecycle.Coordinator, log *slog.Logger) *Handler {
	return &Handler{Coordinator: coordinator, Log: log}
}

// Routes mounts the chat endpoints.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/resources/{id}/claims/{claimId}/messages", h.GetThread)
	r.Post("/resources/{id}/claims/{claimId}/messages", h.PostMessage)
}

// GetThread retrieves a claim's message thread.
func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respond.BadRequest(w, "invalid resource id")
		return
	}

	thread, err := h.Coordinator.ChatMessages(r.Context(), id, chi.URLParam(r, "claimId"))
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiChatMessages(thread))
}

// PostMessage appends a message to a claim's thread.
func (h *Handler) PostMessage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respond.BadRequest(w, "invalid resource id")
		return
	}

	var in api.NewChatMessage
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.BadRequest(w, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	entry, err := h.Coordinator.SendChatMessage(r.Context(), id, chi.URLParam(r, "claimId"), in.Message)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusCreated, mapping.ToApiChatMessage(entry))
}
