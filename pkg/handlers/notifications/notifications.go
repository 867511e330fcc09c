// Package notifications exposes the per-user journal over HTTP.
package notifications

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mygive/platform-core/pkg/api"
	"github.com/mygive/platform-core/pkg/handlers/respond"
	"github.com/mygive/platform-core/pkg/mapping"
	"github.com/mygive/platform-core/pkg/notifications"
)

// Handler holds the dependencies for notification endpoints.
type Handler struct {
	Journal *notifications.Journal
	Log     *slog.Logger
}

// New creates a notifications Handler.
func New(journal *notifications.Journal, log *slog.Logger) *Handler {
	return &Handler{Journal: journal, Log: log}
}

// Routes mounts the notification endpoints.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/notifications/{wallet}", h.List)
	r.Get("/notifications/{wallet}/unread", h.UnreadCount)
	r.Post("/notifications/{wallet}/read-all", h.MarkAllRead)
	r.Post("/notifications/{wallet}/{id}/read", h.MarkRead)
	r.Delete("/notifications/{wallet}/{id}", h.Remove)
	r.Delete("/notifications/{wallet}", h.Clear)
}

// List retrieves one wallet's journal, newest first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Journal.List(r.Context(), chi.URLParam(r, "wallet"))
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiNotifications(entries))
}

// UnreadCount reports how many entries are unread.
func (h *Handler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.Journal.UnreadCount(r.Context(), chi.URLParam(r, "wallet"))
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, api.UnreadCount{Count: count})
}

// MarkRead marks one entry read.
func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	err := h.Journal.MarkRead(r.Context(), chi.URLParam(r, "wallet"), chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MarkAllRead marks the whole journal read.
func (h *Handler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	if err := h.Journal.MarkAllRead(r.Context(), chi.URLParam(r, "wallet")); err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Remove deletes one entry.
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	err := h.Journal.Remove(r.Context(), chi.URLParam(r, "wallet"), chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Clear empties the journal.
func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.Journal.Clear(r.Context(), chi.URLParam(r, "wallet")); err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
