package lifecycle

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mygive/platform-core/pkg/ledger"
	"github.com/mygive/platform-core/pkg/ledger/mocks"
	"github.com/mygive/platform-core/pkg/models"
	"github.com/mygive/platform-core/pkg/notifications"
)

const donorWallet = "0xDonor"

func wei(units int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(units), new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil))
}

func testCampaign(id int64) *models.Campaign {
	return &models.Campaign{
		Id:           id,
		Owner:        ownerWallet,
		Title:        "School supplies",
		Description:  "Books and pens",
		TargetWei:    wei(10),
		Target:       "10",
		Deadline:     time.Now().Add(72 * time.Hour),
		CollectedWei: wei(4),
	}
}

func TestCreateCampaign(t *testing.T) {
	input := ledger.CreateCampaignInput{
		Title:       "School supplies",
		Description: "Books and pens",
		Target:      "10",
		Deadline:    time.Now().Add(72 * time.Hour),
		Category:    "Education",
	}

	t.Run("Success Persists Category", func(t *testing.T) {
		client := new(mocks.Client)
		coord, _ := newTestCoordinator(client)

		client.On("Ready").Return(true)
		client.On("Account").Return(ownerWallet)
		client.On("CreateCampaign", mock.Anything, input).
			Return(&ledger.CreateResult{TxResult: ledger.TxResult{TxHash: "0xabc"}, Id: 7}, nil)

		result, err := coord.CreateCampaign(context.Background(), input)

		require.NoError(t, err)
		assert.Equal(t, int64(7), result.Id)
		client.AssertExpectations(t)

		category, err := coord.store.CampaignCategory(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, "Education", category)
	})

	t.Run("Rejects Past Deadline", func(t *testing.T) {
		client := new(mocks.Client)
		coord, _ := newTestCoordinator(client)

		client.On("Ready").Return(true)
		client.On("Account").Return(ownerWallet)

		bad := input
		bad.Deadline = time.Now().Add(-time.Hour)

		_, err := coord.CreateCampaign(context.Background(), bad)

		assertKind(t, err, KindValidation)
		client.AssertNotCalled(t, "CreateCampaign", mock.Anything, mock.Anything)
	})

	t.Run("Rejects Unparseable Target", func(t *testing.T) {
		client := new(mocks.Client)
		coord, _ := newTestCoordinator(client)

		client.On("Ready").Return(true)
		client.On("Account").Return(ownerWallet)

		bad := input
		bad.Target = "ten"

		_, err := coord.CreateCampaign(context.Background(), bad)

		assertKind(t, err, KindValidation)
	})
}

func TestDonate(t *testing.T) {
	t.Run("Success Records Receipt And Notifies Both Parties", func(t *testing.T) {
		client := new(mocks.Client)
		coord, journal := newTestCoordinator(client)

		client.On("Ready").Return(true)
		client.On("Account").Return(donorWallet)
		client.On("Campaign", mock.Anything, int64(1)).Return(testCampaign(1), nil)
		client.On("Donate", mock.Anything, int64(1), "1.5").
			Return(&ledger.TxResult{TxHash: "0xabc"}, nil)

		_, err := coord.Donate(context.Background(), 1, "1.5")

		require.NoError(t, err)
		client.AssertExpectations(t)

		receipt, err := coord.store.DonationReceipt(context.Background(), 1, donorWallet)
		require.NoError(t, err)
		require.NotNil(t, receipt)
		assert.Equal(t, "RCP-001001", receipt.ReceiptNumber)
		assert.Equal(t, "0xabc", receipt.TxHash)
		assert.Equal(t, "1.5", receipt.Amount)

		ownerEntries, err := journal.List(context.Background(), ownerWallet)
		require.NoError(t, err)
		require.Len(t, ownerEntries, 1)
		assert.Equal(t, notifications.TypeDonationReceived, ownerEntries[0].Type)

		donorEntries, err := journal.List(context.Background(), donorWallet)
		require.NoError(t, err)
		require.Len(t, donorEntries, 1)
		assert.Equal(t, notifications.TypeDonationMade, donorEntries[0].Type)
	})

	t.Run("Rejects Expired Campaign", func(t *testing.T) {
		client := new(mocks.Client)
		coord, _ := newTestCoordinator(client)

		campaign := testCampaign(1)
		campaign.Deadline = time.Now().Add(-time.Hour)

		client.On("Ready").Return(true)
		client.On("Account").Return(donorWallet)
		client.On("Campaign", mock.Anything, int64(1)).Return(campaign, nil)

		_, err := coord.Donate(context.Background(), 1, "1")

		assertKind(t, err, KindValidation)
		client.AssertNotCalled(t, "Donate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Rejects Fully Funded Campaign", func(t *testing.T) {
		client := new(mocks.Client)
		coord, _ := newTestCoordinator(client)

		campaign := testCampaign(1)
		campaign.CollectedWei = wei(10)

		client.On("Ready").Return(true)
		client.On("Account").Return(donorWallet)
		client.On("Campaign", mock.Anything, int64(1)).Return(campaign, nil)

		_, err := coord.Donate(context.Background(), 1, "1")

		assertKind(t, err, KindValidation)
	})

	t.Run("Rejects Zero Amount", func(t *testing.T) {
		client := new(mocks.Client)
		coord, _ := newTestCoordinator(client)

		client.On("Ready").Return(true)
		client.On("Account").Return(donorWallet)

		_, err := coord.Donate(context.Background(), 1, "0")

		assertKind(t, err, KindValidation)
		client.AssertNotCalled(t, "Campaign", mock.Anything, mock.Anything)
	})

	t.Run("No Receipt On Ledger Failure", func(t *testing.T) {
		client := new(mocks.Client)
		coord, _ := newTestCoordinator(client)

		client.On("Ready").Return(true)
		client.On("Account").Return(donorWallet)
		client.On("Campaign", mock.Anything, int64(1)).Return(testCampaign(1), nil)
		client.On("Donate", mock.Anything, int64(1), "1").
			Return(nil, &ledger.TxError{Reason: "execution reverted"})

		_, err := coord.Donate(context.Background(), 1, "1")

		assertKind(t, err, KindTransaction)

		receipt, err := coord.store.DonationReceipt(context.Background(), 1, donorWallet)
		require.NoError(t, err)
		assert.Nil(t, receipt)
	})
}

func TestPostCampaignUpdate(t *testing.T) {
	t.Run("Notifies Each Donor Once", func(t *testing.T) {
		client := new(mocks.Client)
		coord, journal := newTestCoordinator(client)

		campaign := testCampaign(1)
		campaign.Donations = []models.Donation{
			{Donor: donorWallet, Amount: "1"},
			{Donor: donorWallet, Amount: "2"},
			{Donor: "0xOther", Amount: "1"},
		}

		client.On("Ready").Return(true)
		client.On("Account").Return(ownerWallet)
		client.On("Campaign", mock.Anything, int64(1)).Return(campaign, nil)
		client.On("PostCampaignUpdate", mock.Anything, int64(1), "Milestone", "Halfway there").
			Return(&ledger.TxResult{TxHash: "0xabc"}, nil)

		_, err := coord.PostCampaignUpdate(context.Background(), 1, "Milestone", "Halfway there")

		require.NoError(t, err)

		entries, err := journal.List(context.Background(), donorWallet)
		require.NoError(t, err)
		assert.Len(t, entries, 1)

		other, err := journal.List(context.Background(), "0xOther")
		require.NoError(t, err)
		assert.Len(t, other, 1)
	})

	t.Run("Only Owner May Post", func(t *testing.T) {
		client := new(mocks.Client)
		coord, _ := newTestCoordinator(client)

		client.On("Ready").Return(true)
		client.On("Account").Return(donorWallet)
		client.On("Campaign", mock.Anything, int64(1)).Return(testCampaign(1), nil)

		_, err := coord.PostCampaignUpdate(context.Background(), 1, "Milestone", "Halfway there")

		assertKind(t, err, KindValidation)
		client.AssertNotCalled(t, "PostCampaignUpdate",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCampaignReadAnnotatesDerivedState(t *testing.T) {
	client := new(mocks.Client)
	coord, _ := newTestCoordinator(client)

	campaign := testCampaign(1)
	client.On("Campaign", mock.Anything, int64(1)).Return(campaign, nil)
	client.On("CampaignUpdates", mock.Anything, int64(1)).Return([]models.CampaignUpdate{}, nil)

	result, err := coord.Campaign(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, int64(3), result.Derived.DaysLeft)
	assert.InDelta(t, 40.0, result.Derived.ProgressPercent, 0.01)
	assert.True(t, result.Derived.IsActive)
	assert.False(t, result.Derived.IsFullyFunded)
}
