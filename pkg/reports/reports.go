// Package reports builds the structured records handed to the external
// document generator. Builders are pure; they never touch the ledger or
// the store.
package reports

import (
	"time"

	"github.com/mygive/platform-core/pkg/models"
)

// ReceiptDocument is the renderable form of a donation receipt.
type ReceiptDocument struct {
	ReceiptNumber string    `json:"receipt_number"`
	IssuedAt      time.Time `json:"issued_at"`
	Donor         string    `json:"donor"`
	DonorName     string    `json:"donor_name,omitempty"`
	CampaignTitle string    `json:"campaign_title"`
	Category      string    `json:"category,omitempty"`
	Amount        string    `json:"amount"`
	TxHash        string    `json:"tx_hash"`
}

// BuildReceipt assembles a receipt document, folding in the donor's
// profile name when one exists.
func BuildReceipt(receipt *models.DonationReceipt, profile *models.UserProfile) *ReceiptDocument {
	doc := &ReceiptDocument{
		ReceiptNumber: receipt.ReceiptNumber,
		IssuedAt:      receipt.CreatedAt,
		Donor:         receipt.Donor,
		CampaignTitle: receipt.CampaignTitle,
		Category:      receipt.Category,
		Amount:        receipt.Amount,
		TxHash:        receipt.TxHash,
	}
	if profile != nil {
		doc.DonorName = profile.Name
	}
	return doc
}

// CampaignSummary is the renderable form of one campaign's standing.
type CampaignSummary struct {
	Id              int64     `json:"id"`
	Title           string    `json:"title"`
	Owner           string    `json:"owner"`
	Category        string    `json:"category,omitempty"`
	Target          string    `json:"target"`
	AmountCollected string    `json:"amount_collected"`
	ProgressPercent float64   `json:"progress_percent"`
	DaysLeft        int64     `json:"days_left"`
	IsActive        bool      `json:"is_active"`
	DonationCount   int       `json:"donation_count"`
	Deadline        time.Time `json:"deadline"`
}

// BuildCampaignSummary assembles a summary from an annotated campaign.
func BuildCampaignSummary(campaign *models.Campaign) *CampaignSummary {
	return &CampaignSummary{
		Id:              campaign.Id,
		Title:           campaign.Title,
		Owner:           campaign.Owner,
		Category:        campaign.Category,
		Target:          campaign.Target,
		AmountCollected: campaign.AmountCollected,
		ProgressPercent: campaign.Derived.ProgressPercent,
		DaysLeft:        campaign.Derived.DaysLeft,
		IsActive:        campaign.Derived.IsActive,
		DonationCount:   len(campaign.Donations),
		Deadline:        campaign.Deadline,
	}
}

// PlatformSummary aggregates both contracts' figures into one record.
type PlatformSummary struct {
	GeneratedAt         time.Time `json:"generated_at"`
	TotalCampaigns      int64     `json:"total_campaigns"`
	ActiveCampaigns     int64     `json:"active_campaigns"`
	TotalDonationsCount int64     `json:"total_donations_count"`
	TotalAmountRaised   string    `json:"total_amount_raised"`
	TotalResources      int64     `json:"total_resources"`
	ActiveResources     int64     `json:"active_resources"`
	TotalClaims         int64     `json:"total_claims"`
	CompletedClaims     int64     `json:"completed_claims"`
}

// BuildPlatformSummary merges campaign and resource statistics. Either
// side may be nil when its contract is unavailable.
func BuildPlatformSummary(campaigns *models.PlatformStats, resources *models.ResourceStats, now time.Time) *PlatformSummary {
	summary := &PlatformSummary{GeneratedAt: now}
	if campaigns != nil {
		summary.TotalCampaigns = campaigns.TotalCampaigns
		summary.ActiveCampaigns = campaigns.ActiveCampaigns
		summary.TotalDonationsCount = campaigns.TotalDonationsCount
		summary.TotalAmountRaised = campaigns.TotalAmountRaised
	}
	if resources != nil {
		summary.TotalResources = resources.TotalResources
		summary.ActiveResources = resources.ActiveResources
		summary.TotalClaims = resources.TotalClaims
		summary.CompletedClaims = resources.CompletedClaims
	}
	return summary
}
