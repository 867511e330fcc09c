// Package profiles exposes the off-chain user profiles over HTTP.
package profiles

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mygive/platform-core/pkg/api"
	"github.com/mygive/platform-core/pkg/handlers/respond"
	"github.com/mygive/platform-core/pkg/mapping"
	"github.com/mygive/platform-core/pkg/offchain"
)

// Handler holds the dependencies for profile endpoints.
type Handler struct {
	Store *offchain.Store
	Log   *slog.Logger
}

// New creates a profiles Handler.
func New(store *offchain.Store, log *slog.Logger) *Handler {
	return &Handler{Store: store, Log: log}
}

// Routes mounts the profile endpoints.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/profiles/{wallet}", h.GetProfile)
	r.Put("/profiles/{wallet}", h.PutProfile)
}

// GetProfile retrieves one wallet's profile. A wallet with no profile
// yields 404.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	wallet := chi.URLParam(r, "wallet")

	profile, err := h.Store.Profile(r.Context(), wallet)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	if profile == nil {
		respond.JSON(w, http.StatusNotFound, api.Error{Error: "no profile for this wallet"})
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiProfile(profile))
}

// PutProfile upserts one wallet's profile.
func (h *Handler) PutProfile(w http.ResponseWriter, r *http.Request) {
	wallet := chi.URLParam(r, "wallet")

	var in api.Profile
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.BadRequest(w, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	profile := mapping.ToDomainProfile(wallet, &in)
	if err := h.Store.PutProfile(r.Context(), profile); err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiProfile(profile))
}
