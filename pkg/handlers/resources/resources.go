// Package resources exposes the resource-sharing operations over HTTP.
package resources

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
)

// Handler holds the dependencies for resource endpoints.
type Handler struct {
	Coordinator *lifecycle.Coordinator
	Log         *slog.Logger
}

// New creates a resources Handler.
func New(coordinator *lifecycle.Coordinator, log *slog.Logger) *Handler {
	return &Handler{Coordinator: coordinator, Log: log}
}

// Routes mounts the resource endpoints.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/resources", h.ListResources)
	r.Post("/resources", h.PostResource)
	r.Get("/resources/{id}", h.GetResource)
	r.Post("/resources/{id}/deactivate", h.Deactivate)
	r.Post("/resources/{id}/reactivate", h.Reactivate)
	r.Get("/resources/{id}/claims", h.ListClaims)
	r.Post("/resources/{id}/claims", h.Claim)
	r.Post("/resources/{id}/claims/{index}/complete", h.CompleteClaim)
	r.Post("/resources/{id}/claims/{index}/cancel", h.CancelClaim)
	r.Get("/users/{wallet}/claims", h.ListUserClaims)
}

func resourceId(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func claimIndex(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "index"))
}

// ListResources retrieves resources, optionally filtered to active
// ones, one owner or one category.
func (h *Handler) ListResources(w http.ResponseWriter, r *http.Request) {
	var (
		resources []models.Resource
		err       error
	)
	switch {
	case r.URL.Query().Get("owner") != "":
		resources, err = h.Coordinator.ResourcesByOwner(r.Context(), r.URL.Query().Get("owner"))
	case r.URL.Query().Get("category") != "":
		resources, err = h.Coordinator.ResourcesByCategory(r.Context(), r.URL.Query().Get("category"))
	case r.URL.Query().Get("active") == "true":
		resources, err = h.Coordinator.ActiveResources(r.Context())
	default:
		resources, err = h.Coordinator.Resources(r.Context())
	}
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiResources(resources))
}

// GetResource retrieves one resource with its claims.
func (h *Handler) GetResource(w http.ResponseWriter, r *http.Request) {
	id, err := resourceId(r)
	if err != nil {
		respond.BadRequest(w, "invalid resource id")
		return
	}

	resource, err := h.Coordinator.Resource(r.Context(), id)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiResource(resource))
}

// PostResource records a new resource.
func (h *Handler) PostResource(w http.ResponseWriter, r *http.Request) {
	var newResource api.NewResource
	if err := json.NewDecoder(r.Body).Decode(&newResource); err != nil {
		respond.BadRequest(w, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	result, err := h.Coordinator.PostResource(r.Context(), mapping.ToDomainNewResource(&newResource))
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusCreated, api.TxReceipt{TxHash: result.TxHash, Id: &result.Id})
}

// Claim reserves quantity on a resource for the connected identity.
func (h *Handler) Claim(w http.ResponseWriter, r *http.Request) {
	id, err := resourceId(r)
	if err != nil {
		respond.BadRequest(w, "invalid resource id")
		return
	}

	var claim api.NewClaim
	if err := json.NewDecoder(r.Body).Decode(&claim); err != nil {
		respond.BadRequest(w, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	result, err := h.Coordinator.ClaimResource(r.Context(), id, claim.Amount)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusCreated, api.TxReceipt{TxHash: result.TxHash})
}

// CompleteClaim marks a pending claim completed.
func (h *Handler) CompleteClaim(w http.ResponseWriter, r *http.Request) {
	id, err := resourceId(r)
	if err != nil {
		respond.BadRequest(w, "invalid resource id")
		return
	}
	index, err := claimIndex(r)
	if err != nil {
		respond.BadRequest(w, "invalid claim index")
		return
	}

	result, err := h.Coordinator.CompleteClaim(r.Context(), id, index)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, api.TxReceipt{TxHash: result.TxHash})
}

// CancelClaim cancels a pending claim.
func (h *Handler) CancelClaim(w http.ResponseWriter, r *http.Request) {
	id, err := resourceId(r)
	if err != nil {
		respond.BadRequest(w, "invalid resource id")
		return
	}
	index, err := claimIndex(r)
	if err != nil {
		respond.BadRequest(w, "invalid claim index")
		return
	}

	result, err := h.Coordinator.CancelClaim(r.Context(), id, index)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, api.TxReceipt{TxHash: result.TxHash})
}

// Deactivate hides a resource from active listings.
func (h *Handler) Deactivate(w http.ResponseWriter, r *http.Request) {
	id, err := resourceId(r)
	if err != nil {
		respond.BadRequest(w, "invalid resource id")
		return
	}

	result, err := h.Coordinator.DeactivateResource(r.Context(), id)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, api.TxReceipt{TxHash: result.TxHash})
}

// Reactivate restores a deactivated resource.
func (h *Handler) Reactivate(w http.ResponseWriter, r *http.Request) {
	id, err := resourceId(r)
	if err != nil {
		respond.BadRequest(w, "invalid resource id")
		return
	}

	result, err := h.Coordinator.ReactivateResource(r.Context(), id)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, api.TxReceipt{TxHash: result.TxHash})
}

// ListClaims retrieves the claims recorded against a resource.
func (h *Handler) ListClaims(w http.ResponseWriter, r *http.Request) {
	id, err := resourceId(r)
	if err != nil {
		respond.BadRequest(w, "invalid resource id")
		return
	}

	claims, err := h.Coordinator.ResourceClaims(r.Context(), id)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiClaims(claims))
}

// ListUserClaims retrieves one claimer's history across resources.
func (h *Handler) ListUserClaims(w http.ResponseWriter, r *http.Request) {
	claims, err := h.Coordinator.UserClaims(r.Context(), chi.URLParam(r, "wallet"))
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiUserClaims(claims))
}
