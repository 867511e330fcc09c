package models

import (
	"math/big"
	"time"
)

// ClaimStatus defines the possible states of a resource claim.
type ClaimStatus string

const (
	PENDING   ClaimStatus = "PENDING"
	COMPLETED ClaimStatus = "COMPLETED"
	CANCELLED ClaimStatus = "CANCELLED"
)

// Campaign is the typed record for a crowdfunding campaign as read from
// the ledger. Monetary fields carry both the ledger's native wei value
// and the display-decimal string produced at the ledger boundary.
type Campaign struct {
	Id              int64
	Owner           string
	Title           string
	Description     string
	TargetWei       *big.Int
	Target          string
	Deadline        time.Time
	CollectedWei    *big.Int
	AmountCollected string
	Image           string
	Category        string
	IsVerified      bool
	Donations       []Donation
	Updates         []CampaignUpdate

	Derived CampaignDerived
}

// CampaignDerived holds the computed facts for a campaign. It is
// recomputed from the latest ledger read on every access and never
// persisted.
type CampaignDerived struct {
	DaysLeft        int64   `json:"days_left"`
	ProgressPercent float64 `json:"progress_percent"`
	IsActive        bool    `json:"is_active"`
	IsFullyFunded   bool    `json:"is_fully_funded"`
	IsExpired       bool    `json:"is_expired"`
}

// Donation is one (donor, amount) pair on a campaign. Append-only.
type Donation struct {
	Donor     string
	AmountWei *big.Int
	Amount    string
}

// CampaignUpdate is a progress update posted by the campaign owner.
type CampaignUpdate struct {
	Title     string
	Content   string
	Timestamp time.Time
}

// Resource is a shared good posted on the resource-sharing ledger.
type Resource struct {
	Id                int64
	Owner             string
	Title             string
	Description       string
	Category          string
	QuantityAvailable int64
	QuantityOriginal  int64
	Unit              string
	Location          string
	PostedAt          time.Time
	IsActive          bool
	IsVerified        bool
	Image             string
	Claims            []Claim

	TotalClaimed int64
}

// Claim is a reservation of quantity on a resource. Its state machine is
// PENDING -> COMPLETED (owner action) or PENDING -> CANCELLED (claimer
// or owner action); both are terminal.
type Claim struct {
	Index       int
	ResourceId  int64
	Claimer     string
	Amount      int64
	Timestamp   time.Time
	IsCompleted bool
	IsCancelled bool
}

// Status derives the claim's lifecycle state from its flags.
func (c Claim) Status() ClaimStatus {
	switch {
	case c.IsCompleted:
		return COMPLETED
	case c.IsCancelled:
		return CANCELLED
	default:
		return PENDING
	}
}

// Terminal reports whether no further transition is permitted.
func (c Claim) Terminal() bool {
	return c.IsCompleted || c.IsCancelled
}

// UserProfile is the mutable off-chain profile for a wallet identity.
// Keys are case-normalized at the store boundary.
type UserProfile struct {
	WalletAddress string    `json:"wallet_address"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Location      string    `json:"location"`
	Bio           string    `json:"bio"`
	ProfileImage  string    `json:"profile_image"`
	CampaignCount int       `json:"campaign_count"`
	ClaimCount    int       `json:"claim_count"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ChatMessage is one message in the thread between a resource owner and
// a claimer, scoped to (resourceId, claimId). Append-only.
type ChatMessage struct {
	Id         string    `json:"id"`
	ResourceId int64     `json:"resource_id"`
	ClaimId    string    `json:"claim_id"`
	Sender     string    `json:"sender"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

// Notification is one entry in a per-owner journal. The journal keeps at
// most the 50 most recent entries.
type Notification struct {
	Id        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Link      string    `json:"link,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// DonationReceipt is the off-chain record persisted after a confirmed
// donation, keyed by (campaignId, donor). The external document
// generator consumes it to render a receipt.
type DonationReceipt struct {
	ReceiptNumber string    `json:"receipt_number"`
	TxHash        string    `json:"tx_hash"`
	CampaignId    int64     `json:"campaign_id"`
	CampaignTitle string    `json:"campaign_title"`
	Category      string    `json:"category"`
	Donor         string    `json:"donor"`
	Amount        string    `json:"amount"`
	CreatedAt     time.Time `json:"created_at"`
}

// PlatformStats are the aggregate campaign figures exposed by the
// crowdfunding contract.
type PlatformStats struct {
	TotalCampaigns      int64
	TotalDonationsCount int64
	TotalRaisedWei      *big.Int
	TotalAmountRaised   string
	ActiveCampaigns     int64
}

// ResourceStats are the aggregate figures exposed by the
// resource-sharing contract.
type ResourceStats struct {
	TotalResources  int64
	ActiveResources int64
	TotalClaims     int64
	CompletedClaims int64
}

// UserDonation is one entry in a donor's history across campaigns.
type UserDonation struct {
	CampaignId int64
	AmountWei  *big.Int
	Amount     string
}

// UserClaim is one entry in a claimer's history across resources.
type UserClaim struct {
	ResourceId  int64
	Amount      int64
	Timestamp   time.Time
	IsCompleted bool
}
