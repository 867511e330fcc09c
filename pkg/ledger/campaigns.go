package ledger

import (
	"context"

	"github.com/mygive/platform-core/pkg/models"
)

// CampaignReader defines the read surface of the crowdfunding contract.
// All records come back fully normalized; a missing campaign yields
// ErrNotFound, never a partial record.
type CampaignReader interface {
	// Campaigns retrieves every campaign on the ledger.
	Campaigns(ctx context.Context) ([]models.Campaign, error)

	// Campaign retrieves one campaign by its ledger-assigned id,
	// including its donation pairs.
	Campaign(ctx context.Context, id int64) (*models.Campaign, error)

	// ActiveCampaigns retrieves only campaigns still accepting donations.
	ActiveCampaigns(ctx context.Context) ([]models.Campaign, error)

	// CampaignsByOwner retrieves the campaigns created by one identity.
	CampaignsByOwner(ctx context.Context, owner string) ([]models.Campaign, error)

	// Donators retrieves the ordered (donor, amount) pairs of a campaign.
	Donators(ctx context.Context, id int64) ([]models.Donation, error)

	// CampaignUpdates retrieves the updates posted on a campaign.
	CampaignUpdates(ctx context.Context, id int64) ([]models.CampaignUpdate, error)

	// UserDonations retrieves one donor's history across campaigns.
	UserDonations(ctx context.Context, donor string) ([]models.UserDonation, error)

	// PlatformStats retrieves the aggregate crowdfunding figures.
	PlatformStats(ctx context.Context) (*models.PlatformStats, error)

	// IsOrganizerVerified reports whether an organizer identity has been
	// verified on the ledger.
	IsOrganizerVerified(ctx context.Context, owner string) (bool, error)
}
