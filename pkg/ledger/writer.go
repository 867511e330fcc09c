package ledger

import (
	"context"
	"time"
)

// CreateCampaignInput carries the fields of a new campaign. Target is a
// display-decimal amount; the implementation converts it to the
// ledger's native integer unit in exactly one place.
type CreateCampaignInput struct {
	Title       string
	Description string
	Target      string
	Deadline    time.Time
	Image       string
	Category    string
}

// PostResourceInput carries the fields of a new shared resource.
type PostResourceInput struct {
	Title       string
	Description string
	Category    string
	Quantity    int64
	Unit        string
	Location    string
	Image       string
}

// Writer defines the transactional surface of both contracts. Each
// operation submits exactly one ledger transaction, blocks until the
// ledger confirms it, and surfaces failures verbatim as a *TxError.
// Nothing here retries.
type Writer interface {
	// CreateCampaign records a new campaign owned by the connected
	// identity and returns its ledger-assigned id.
	CreateCampaign(ctx context.Context, in CreateCampaignInput) (*CreateResult, error)

	// Donate transfers the display-decimal amount to a campaign.
	Donate(ctx context.Context, campaignId int64, amount string) (*TxResult, error)

	// PostCampaignUpdate appends an owner update to a campaign.
	PostCampaignUpdate(ctx context.Context, campaignId int64, title, content string) (*TxResult, error)

	// PostResource records a new resource and returns its id.
	PostResource(ctx context.Context, in PostResourceInput) (*CreateResult, error)

	// ClaimResource reserves quantity on a resource for the connected
	// identity. The ledger deducts quantityAvailable on confirmation.
	ClaimResource(ctx context.Context, resourceId, amount int64) (*TxResult, error)

	// CompleteClaim marks a pending claim completed. Quantity is
	// unchanged; it was deducted at claim time.
	CompleteClaim(ctx context.Context, resourceId int64, claimIndex int) (*TxResult, error)

	// CancelClaim cancels a pending claim; the ledger restores the
	// claimed quantity to quantityAvailable.
	CancelClaim(ctx context.Context, resourceId int64, claimIndex int) (*TxResult, error)

	// DeactivateResource hides a resource from active listings.
	DeactivateResource(ctx context.Context, resourceId int64) (*TxResult, error)

	// ReactivateResource restores a deactivated resource.
	ReactivateResource(ctx context.Context, resourceId int64) (*TxResult, error)
}
