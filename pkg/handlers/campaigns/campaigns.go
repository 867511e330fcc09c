// Package campaigns exposes the crowdfunding operations over HTTP.
package campaigns

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
	"github.com/mygive/platform-core/pkg/models"
	"github.com/mygive/platform-core/pkg/offchain"
	"github.com/mygive/platform-core/pkg/reports"
)

// Handler holds the dependencies for campaign endpoints.
type Handler struct {
	Coordinator *lifecycle.Coordinator
	Store       *offchain.Store
	Log         *slog.Logger
}

// New creates a campaigns Handler.
func New(coordinator *lifecycle.Coordinator, store *offchain.Store, log *slog.Logger) *Handler {
	return &Handler{Coordinator: coordinator, Store: store, Log: log}
}

// Routes mounts the campaign endpoints.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/campaigns", h.ListCampaigns)
	r.Post("/campaigns", h.CreateCampaign)
	r.Get("/campaigns/{id}", h.GetCampaign)
	r.Get("/campaigns/{id}/donations", h.ListDonators)
	r.Post("/campaigns/{id}/donations", h.Donate)
	r.Post("/campaigns/{id}/updates", h.PostUpdate)
	r.Get("/campaigns/{id}/receipts/{donor}", h.GetReceipt)
	r.Get("/users/{wallet}/donations", h.ListUserDonations)
	r.Get("/users/{wallet}/verification", h.GetVerification)
}

func campaignId(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// ListCampaigns retrieves campaigns, optionally filtered to active ones
// or to one owner.
func (h *Handler) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	var (
		campaigns []models.Campaign
		err       error
	)
	switch {
	case r.URL.Query().Get("owner") != "":
		campaigns, err = h.Coordinator.CampaignsByOwner(r.Context(), r.URL.Query().Get("owner"))
	case r.URL.Query().Get("active") == "true":
		campaigns, err = h.Coordinator.ActiveCampaigns(r.Context())
	default:
		campaigns, err = h.Coordinator.Campaigns(r.Context())
	}
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiCampaigns(campaigns))
}

// GetCampaign retrieves one campaign with donations and updates.
func (h *Handler) GetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := campaignId(r)
	if err != nil {
		respond.BadRequest(w, "invalid campaign id")
		return
	}

	campaign, err := h.Coordinator.Campaign(r.Context(), id)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiCampaign(campaign))
}

// CreateCampaign records a new campaign.
func (h *Handler) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	var newCampaign api.NewCampaign
	if err := json.NewDecoder(r.Body).Decode(&newCampaign); err != nil {
		respond.BadRequest(w, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	result, err := h.Coordinator.CreateCampaign(r.Context(), mapping.ToDomainNewCampaign(&newCampaign))
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusCreated, api.TxReceipt{TxHash: result.TxHash, Id: &result.Id})
}

// Donate submits a donation to a campaign.
func (h *Handler) Donate(w http.ResponseWriter, r *http.Request) {
	id, err := campaignId(r)
	if err != nil {
		respond.BadRequest(w, "invalid campaign id")
		return
	}

	var donation api.NewDonation
	if err := json.NewDecoder(r.Body).Decode(&donation); err != nil {
		respond.BadRequest(w, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	result, err := h.Coordinator.Donate(r.Context(), id, donation.Amount)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusCreated, api.TxReceipt{TxHash: result.TxHash})
}

// ListDonators retrieves a campaign's donation pairs.
func (h *Handler) ListDonators(w http.ResponseWriter, r *http.Request) {
	id, err := campaignId(r)
	if err != nil {
		respond.BadRequest(w, "invalid campaign id")
		return
	}

	donations, err := h.Coordinator.Donators(r.Context(), id)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	out := make([]api.Donation, len(donations))
	for i, donation := range donations {
		out[i] = api.Donation{Donor: donation.Donor, Amount: donation.Amount}
	}
	respond.JSON(w, http.StatusOK, out)
}

// PostUpdate appends an owner update to a campaign.
func (h *Handler) PostUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := campaignId(r)
	if err != nil {
		respond.BadRequest(w, "invalid campaign id")
		return
	}

	var update api.NewCampaignUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respond.BadRequest(w, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	result, err := h.Coordinator.PostCampaignUpdate(r.Context(), id, update.Title, update.Content)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusCreated, api.TxReceipt{TxHash: result.TxHash})
}

// GetReceipt retrieves the receipt document for one donor's donation.
func (h *Handler) GetReceipt(w http.ResponseWriter, r *http.Request) {
	id, err := campaignId(r)
	if err != nil {
		respond.BadRequest(w, "invalid campaign id")
		return
	}
	donor := chi.URLParam(r, "donor")

	receipt, err := h.Store.DonationReceipt(r.Context(), id, donor)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	if receipt == nil {
		respond.JSON(w, http.StatusNotFound, api.Error{Error: "no receipt for this donor"})
		return
	}

	profile, err := h.Store.Profile(r.Context(), donor)
	if err != nil {
		h.Log.Warn("receipt served without donor profile", "donor", donor, "error", err)
		profile = nil
	}

	respond.JSON(w, http.StatusOK, mapping.ToApiReceipt(reports.BuildReceipt(receipt, profile)))
}

// ListUserDonations retrieves one donor's history across campaigns.
func (h *Handler) ListUserDonations(w http.ResponseWriter, r *http.Request) {
	donations, err := h.Coordinator.UserDonations(r.Context(), chi.URLParam(r, "wallet"))
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiUserDonations(donations))
}

// GetVerification reports a wallet's ledger-side verification flags.
func (h *Handler) GetVerification(w http.ResponseWriter, r *http.Request) {
	status, err := h.Coordinator.Verification(r.Context(), chi.URLParam(r, "wallet"))
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, api.Verification{
		Organizer: status.Organizer,
		Donor:     status.Donor,
	})
}
