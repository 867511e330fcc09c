package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mygive/platform-core/pkg/models"
)

func TestBuildReceiptFoldsInProfileName(t *testing.T) {
	receipt := &models.DonationReceipt{
		ReceiptNumber: "RCP-001001",
		Donor:         "0xdonor",
		CampaignTitle: "School supplies",
		Amount:        "1.5",
		TxHash:        "0xabc",
		CreatedAt:     time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}

	doc := BuildReceipt(receipt, &models.UserProfile{Name: "Amina"})
	assert.Equal(t, "Amina", doc.DonorName)
	assert.Equal(t, "RCP-001001", doc.ReceiptNumber)

	anonymous := BuildReceipt(receipt, nil)
	assert.Empty(t, anonymous.DonorName)
}

func TestBuildCampaignSummary(t *testing.T) {
	campaign := &models.Campaign{
		Id:              3,
		Title:           "School supplies",
		Owner:           "0xowner",
		Target:          "10",
		AmountCollected: "4",
		Donations:       []models.Donation{{Donor: "0xdonor", Amount: "4"}},
		Derived: models.CampaignDerived{
			DaysLeft:        3,
			ProgressPercent: 40,
			IsActive:        true,
		},
	}

	summary := BuildCampaignSummary(campaign)
	assert.Equal(t, int64(3), summary.DaysLeft)
	assert.Equal(t, 40.0, summary.ProgressPercent)
	assert.Equal(t, 1, summary.DonationCount)
	assert.True(t, summary.IsActive)
}

func TestBuildPlatformSummaryHandlesMissingSides(t *testing.T) {
	now := time.Now()

	summary := BuildPlatformSummary(&models.PlatformStats{TotalCampaigns: 5, ActiveCampaigns: 2}, nil, now)
	assert.Equal(t, int64(5), summary.TotalCampaigns)
	assert.Zero(t, summary.TotalResources)

	summary = BuildPlatformSummary(nil, &models.ResourceStats{TotalResources: 7}, now)
	assert.Equal(t, int64(7), summary.TotalResources)
	assert.Zero(t, summary.TotalCampaigns)
}
