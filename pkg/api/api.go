// Package api defines the request and response shapes of the HTTP
// surface. Handlers decode into these and mapping converts them to and
// from the domain models.
package api

import "time"

// Campaign is the API view of a campaign with its derived facts.
type Campaign struct {
	Id              int64            `json:"id"`
	Owner           string           `json:"owner"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Target          string           `json:"target"`
	AmountCollected string           `json:"amount_collected"`
	Deadline        time.Time        `json:"deadline"`
	Image           string           `json:"image,omitempty"`
	Category        string           `json:"category,omitempty"`
	IsVerified      bool             `json:"is_verified"`
	DaysLeft        int64            `json:"days_left"`
	ProgressPercent float64          `json:"progress_percent"`
	IsActive        bool             `json:"is_active"`
	IsFullyFunded   bool             `json:"is_fully_funded"`
	IsExpired       bool             `json:"is_expired"`
	Donations       []Donation       `json:"donations,omitempty"`
	Updates         []CampaignUpdate `json:"updates,omitempty"`
}

// Donation is one (donor, amount) pair on a campaign.
type Donation struct {
	Donor  string `json:"donor"`
	Amount string `json:"amount"`
}

// CampaignUpdate is a progress update posted by the campaign owner.
type CampaignUpdate struct {
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// NewCampaign is the request body for creating a campaign.
type NewCampaign struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Target      string    `json:"target"`
	Deadline    time.Time `json:"deadline"`
	Image       string    `json:"image,omitempty"`
	Category    string    `json:"category,omitempty"`
}

// NewDonation is the request body for donating to a campaign.
type NewDonation struct {
	Amount string `json:"amount"`
}

// NewCampaignUpdate is the request body for posting a campaign update.
type NewCampaignUpdate struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Resource is the API view of a shared resource.
type Resource struct {
	Id                int64     `json:"id"`
	Owner             string    `json:"owner"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	Category          string    `json:"category,omitempty"`
	QuantityAvailable int64     `json:"quantity_available"`
	QuantityOriginal  int64     `json:"quantity_original"`
	TotalClaimed      int64     `json:"total_claimed"`
	Unit              string    `json:"unit,omitempty"`
	Location          string    `json:"location,omitempty"`
	PostedAt          time.Time `json:"posted_at"`
	IsActive          bool      `json:"is_active"`
	IsVerified        bool      `json:"is_verified"`
	Image             string    `json:"image,omitempty"`
	Claims            []Claim   `json:"claims,omitempty"`
}

// Claim is the API view of a reservation on a resource.
type Claim struct {
	Index      int       `json:"index"`
	ResourceId int64     `json:"resource_id"`
	Claimer    string    `json:"claimer"`
	Amount     int64     `json:"amount"`
	Timestamp  time.Time `json:"timestamp"`
	Status     string    `json:"status"`
}

// NewResource is the request body for posting a resource.
type NewResource struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category,omitempty"`
	Quantity    int64  `json:"quantity"`
	Unit        string `json:"unit,omitempty"`
	Location    string `json:"location,omitempty"`
	Image       string `json:"image,omitempty"`
}

// NewClaim is the request body for claiming quantity on a resource.
type NewClaim struct {
	Amount int64 `json:"amount"`
}

// Profile is the API view of a user profile.
type Profile struct {
	WalletAddress string    `json:"wallet_address"`
	Name          string    `json:"name,omitempty"`
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Location      string    `json:"location,omitempty"`
	Bio           string    `json:"bio,omitempty"`
	ProfileImage  string    `json:"profile_image,omitempty"`
	CampaignCount int       `json:"campaign_count"`
	ClaimCount    int       `json:"claim_count"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Notification is one journal entry.
type Notification struct {
	Id        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Link      string    `json:"link,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// UnreadCount reports how many journal entries are unread.
type UnreadCount struct {
	Count int `json:"count"`
}

// ChatMessage is one message in a claim thread.
type ChatMessage struct {
	Id        string    `json:"id"`
	Sender    string    `json:"sender"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// NewChatMessage is the request body for posting into a claim thread.
type NewChatMessage struct {
	Message string `json:"message"`
}

// Receipt is the API view of a donation receipt document.
type Receipt struct {
	ReceiptNumber string    `json:"receipt_number"`
	IssuedAt      time.Time `json:"issued_at"`
	Donor         string    `json:"donor"`
	DonorName     string    `json:"donor_name,omitempty"`
	CampaignTitle string    `json:"campaign_title"`
	Category      string    `json:"category,omitempty"`
	Amount        string    `json:"amount"`
	TxHash        string    `json:"tx_hash"`
}

// TxReceipt reports a confirmed ledger transaction.
type TxReceipt struct {
	TxHash string `json:"tx_hash"`
	Id     *int64 `json:"id,omitempty"`
}

// UserDonation is one entry in a donor's history.
type UserDonation struct {
	CampaignId int64  `json:"campaign_id"`
	Amount     string `json:"amount"`
}

// UserClaim is one entry in a claimer's history.
type UserClaim struct {
	ResourceId  int64     `json:"resource_id"`
	Amount      int64     `json:"amount"`
	Timestamp   time.Time `json:"timestamp"`
	IsCompleted bool      `json:"is_completed"`
}

// PlatformStats aggregates both contracts' figures.
type PlatformStats struct {
	TotalCampaigns      int64  `json:"total_campaigns"`
	ActiveCampaigns     int64  `json:"active_campaigns"`
	TotalDonationsCount int64  `json:"total_donations_count"`
	TotalAmountRaised   string `json:"total_amount_raised"`
	TotalResources      int64  `json:"total_resources"`
	ActiveResources     int64  `json:"active_resources"`
	TotalClaims         int64  `json:"total_claims"`
	CompletedClaims     int64  `json:"completed_claims"`
}

// Verification reports a wallet's ledger-side verification flags.
type Verification struct {
	Organizer bool `json:"organizer"`
	Donor     bool `json:"donor"`
}

// Error is the uniform error response body.
type Error struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}
