// Package handlers assembles the HTTP router from the per-area
// handlers.
package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/mygive/platform-core/pkg/handlers/campaigns"
	"github.com/mygive/platform-core/pkg/handlers/chat"
	notificationhandlers "github.com/mygive/platform-core/pkg/handlers/notifications"
	"github.com/mygive/platform-core/pkg/handlers/profiles"
	"github.com/mygive/platform-core/pkg/handlers/resources"
	"github.com/mygive/platform-core/pkg/handlers/respond"
	"github.com/mygive/platform-core/pkg/lifecycle"
	"github.com/mygive/platform-core/pkg/mapping"
	appmiddleware "github.com/mygive/platform-core/pkg/middleware"
	"github.com/mygive/platform-core/pkg/notifications"
	"github.com/mygive/platform-core/pkg/offchain"
	"github.com/mygive/platform-core/pkg/reports"
)

// Deps carries everything the HTTP surface needs.
type Deps struct {
	Coordinator *lifecycle.Coordinator
	Store       *offchain.Store
	Journal     *notifications.Journal
	Log         *slog.Logger
}

// NewRouter builds the chi router with all endpoints mounted.
func NewRouter(deps Deps) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(appmiddleware.NewStructuredLogger(deps.Log))

	r.Get("/healthz", health(deps))
	r.Get("/stats", platformStats(deps))

	campaigns.New(deps.Coordinator, deps.Store, deps.Log).Routes(r)
	resources.New(deps.Coordinator, deps.Log).Routes(r)
	profiles.New(deps.Store, deps.Log).Routes(r)
	notificationhandlers.New(deps.Journal, deps.Log).Routes(r)
	chat.New(deps.Coordinator, deps.Log).Routes(r)

	return r
}

type healthResponse struct {
	Status          string `json:"status"`
	LedgerConnected bool   `json:"ledger_connected"`
	RemoteStore     bool   `json:"remote_store"`
	Account         string `json:"account,omitempty"`
}

// health reports liveness. The service stays up without a ledger
// connection; the flag tells operators which mode it is in.
func health(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusOK, healthResponse{
			Status:          "ok",
			LedgerConnected: deps.Coordinator.Ready(),
			RemoteStore:     deps.Store.RemoteConfigured(),
			Account:         deps.Coordinator.Account(),
		})
	}
}

// platformStats merges both contracts' aggregate figures. Either side
// failing degrades to partial figures rather than an error.
func platformStats(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		campaignStats, err := deps.Coordinator.PlatformStats(r.Context())
		if err != nil {
			deps.Log.Warn("campaign stats unavailable", "error", err)
			campaignStats = nil
		}
		resourceStats, err := deps.Coordinator.ResourceStats(r.Context())
		if err != nil {
			deps.Log.Warn("resource stats unavailable", "error", err)
			resourceStats = nil
		}

		if campaignStats == nil && resourceStats == nil {
			respond.Error(w, deps.Log, lifecycle.NotReadyError())
			return
		}

		summary := reports.BuildPlatformSummary(campaignStats, resourceStats, time.Now())
		respond.JSON(w, http.StatusOK, mapping.ToApiPlatformStats(summary))
	}
}
