// Package mocks provides a testify mock of the ledger.Client interface
// for coordinator and handler tests.
package mocks

import (
	"context"

	"github.com/mygive/platform-core/pkg/ledger"
	"github.com/mygive/platform-core/pkg/models"
	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of ledger.Client.
type Client struct {
	mock.Mock
}

var _ ledger.Client = (*Client)(nil)

func (m *Client) Ready() bool {
	return m.Called().Bool(0)
}

func (m *Client) Account() string {
	return m.Called().String(0)
}

func (m *Client) Campaigns(ctx context.Context) ([]models.Campaign, error) {
	args := m.Called(ctx)
	var r0 []models.Campaign
	if args.Get(0) != nil {
		r0 = args.Get(0).([]models.Campaign)
	}
	return r0, args.Error(1)
}

func (m *Client) Campaign(ctx context.Context, id int64) (*models.Campaign, error) {
	args := m.Called(ctx, id)
	var r0 *models.Campaign
	if args.Get(0) != nil {
		r0 = args.Get(0).(*models.Campaign)
	}
	return r0, args.Error(1)
}

func (m *Client) ActiveCampaigns(ctx context.Context) ([]models.Campaign, error) {
	args := m.Called(ctx)
	var r0 []models.Campaign
	if args.Get(0) != nil {
		r0 = args.Get(0).([]models.Campaign)
	}
	return r0, args.Error(1)
}

func (m *Client) CampaignsByOwner(ctx context.Context, owner string) ([]models.Campaign, error) {
	args := m.Called(ctx, owner)
	var r0 []models.Campaign
	if args.Get(0) != nil {
		r0 = args.Get(0).([]models.Campaign)
	}
	return r0, args.Error(1)
}

func (m *Client) Donators(ctx context.Context, id int64) ([]models.Donation, error) {
	args := m.Called(ctx, id)
	var r0 []models.Donation
	if args.Get(0) != nil {
		r0 = args.Get(0).([]models.Donation)
	}
	return r0, args.Error(1)
}

func (m *Client) CampaignUpdates(ctx context.Context, id int64) ([]models.CampaignUpdate, error) {
	args := m.Called(ctx, id)
	var r0 []models.CampaignUpdate
	if args.Get(0) != nil {
		r0 = args.Get(0).([]models.CampaignUpdate)
	}
	return r0, args.Error(1)
}

func (m *Client) UserDonations(ctx context.Context, donor string) ([]models.UserDonation, error) {
	args := m.Called(ctx, donor)
	var r0 []models.UserDonation
	if args.Get(0) != nil {
		r0 = args.Get(0).([]models.UserDonation)
	}
	return r0, args.Error(1)
}

func (m *Client) PlatformStats(ctx context.Context) (*models.PlatformStats, error) {
	args := m.Called(ctx)
	var r0 *models.PlatformStats
	if args.Get(0) != nil {
		r0 = args.Get(0).(*models.PlatformStats)
	}
	return r0, args.Error(1)
}

func (m *Client) IsOrganizerVerified(ctx context.Context, owner string) (bool, error) {
	args := m.Called(ctx, owner)
	return args.Bool(0), args.Error(1)
}

func (m *Client) Resources(ctx context.Context) ([]models.Resource, error) {
	args := m.Called(ctx)
	var r0 []models.Resource
	if args.Get(0) != nil {
		r0 = args.Get(0).([]models.Resource)
	}
	return r0, args.Error(1)
}

func (m *Client) Resource(ctx context.Context, id int64) (*models.Resource, error) {
	args := m.Called(ctx, id)
	var r0 *models.Resource
	if args.Get(0) != nil {
		r0 = args.Get(0).(*models.Resource)
	}
	return r0, args.Error(1)
}

func (m *Client) ActiveResources(ctx context.Context) ([]models.Resource, error) {
	args := m.Called(ctx)
	var r0 []models.Resource
	if args.Get(0) != nil {
		r0 = args.Get(0).([]models.Resource)
	}
	return r0, args.Error(1)
}

func (m *Client) ResourcesByOwner(ctx context.Context, owner string) ([]models.Resource, error) {
	args := m.Called(ctx, owner)
	var r0 []models.Resource
	if args.Get(0) != nil {
		r0 = args.Get(0).([]models.Resource)
	}
	return r0, args.Error(1)
}

func (m *Client) ResourcesByCategory(ctx context.Context, category string) ([]models.Resource, error) {
	args := m.Called(ctx, category)
	var r0 []models.Resource
	if args.Get(0) != nil {
		r0 = args.Get(0).([]models.Resource)
	}
	return r0, args.Error(1)
}

func (m *Client) ResourceClaims(ctx context.Context, id int64) ([]models.Claim, error) {
	args := m.Called(ctx, id)
	var r0 []models.Claim
	if args.Get(0) != nil {
		r0 = args.Get(0).([]models.Claim)
	}
	return r0, args.Error(1)
}

func (m *Client) UserClaims(ctx context.Context, claimer string) ([]models.UserClaim, error) {
	args := m.Called(ctx, claimer)
	var r0 []models.UserClaim
	if args.Get(0) != nil {
		r0 = args.Get(0).([]models.UserClaim)
	}
	return r0, args.Error(1)
}

func (m *Client) ResourceStats(ctx context.Context) (*models.ResourceStats, error) {
	args := m.Called(ctx)
	var r0 *models.ResourceStats
	if args.Get(0) != nil {
		r0 = args.Get(0).(*models.ResourceStats)
	}
	return r0, args.Error(1)
}

func (m *Client) IsDonorVerified(ctx context.Context, donor string) (bool, error) {
	args := m.Called(ctx, donor)
	return args.Bool(0), args.Error(1)
}

func (m *Client) CreateCampaign(ctx context.Context, in ledger.CreateCampaignInput) (*ledger.CreateResult, error) {
	args := m.Called(ctx, in)
	var r0 *ledger.CreateResult
	if args.Get(0) != nil {
		r0 = args.Get(0).(*ledger.CreateResult)
	}
	return r0, args.Error(1)
}

func (m *Client) Donate(ctx context.Context, campaignId int64, amount string) (*ledger.TxResult, error) {
	args := m.Called(ctx, campaignId, amount)
	var r0 *ledger.TxResult
	if args.Get(0) != nil {
		r0 = args.Get(0).(*ledger.TxResult)
	}
	return r0, args.Error(1)
}

func (m *Client) PostCampaignUpdate(ctx context.Context, campaignId int64, title, content string) (*ledger.TxResult, error) {
	args := m.Called(ctx, campaignId, title, content)
	var r0 *ledger.TxResult
	if args.Get(0) != nil {
		r0 = args.Get(0).(*ledger.TxResult)
	}
	return r0, args.Error(1)
}

func (m *Client) PostResource(ctx context.Context, in ledger.PostResourceInput) (*ledger.CreateResult, error) {
	args := m.Called(ctx, in)
	var r0 *ledger.CreateResult
	if args.Get(0) != nil {
		r0 = args.Get(0).(*ledger.CreateResult)
	}
	return r0, args.Error(1)
}

func (m *Client) ClaimResource(ctx context.Context, resourceId, amount int64) (*ledger.TxResult, error) {
	args := m.Called(ctx, resourceId, amount)
	var r0 *ledger.TxResult
	if args.Get(0) != nil {
		r0 = args.Get(0).(*ledger.TxResult)
	}
	return r0, args.Error(1)
}

func (m *Client) CompleteClaim(ctx context.Context, resourceId int64, claimIndex int) (*ledger.TxResult, error) {
	args := m.Called(ctx, resourceId, claimIndex)
	var r0 *ledger.TxResult
	if args.Get(0) != nil {
		r0 = args.Get(0).(*ledger.TxResult)
	}
	return r0, args.Error(1)
}

func (m *Client) CancelClaim(ctx context.Context, resourceId int64, claimIndex int) (*ledger.TxResult, error) {
	args := m.Called(ctx, resourceId, claimIndex)
	var r0 *ledger.TxResult
	if args.Get(0) != nil {
		r0 = args.Get(0).(*ledger.TxResult)
	}
	return r0, args.Error(1)
}

func (m *Client) DeactivateResource(ctx context.Context, resourceId int64) (*ledger.TxResult, error) {
	args := m.Called(ctx, resourceId)
	var r0 *ledger.TxResult
	if args.Get(0) != nil {
		r0 = args.Get(0).(*ledger.TxResult)
	}
	return r0, args.Error(1)
}

func (m *Client) ReactivateResource(ctx context.Context, resourceId int64) (*ledger.TxResult, error) {
	args := m.Called(ctx, resourceId)
	var r0 *ledger.TxResult
	if args.Get(0) != nil {
		r0 = args.Get(0).(*ledger.TxResult)
	}
	return r0, args.Error(1)
}
