package eth

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/mygive/platform-core/pkg/ledger"
	"github.com/mygive/platform-core/pkg/models"
)

// rawCampaign mirrors the Campaign tuple returned by the contract.
// Field names must match the ABI component names.
type rawCampaign struct {
	Owner           common.Address
	Title           string
	Description     string
	Target          *big.Int
	Deadline        *big.Int
	AmountCollected *big.Int
	Image           string
	Category        string
	IsVerified      bool
	Donators        []common.Address
	Donations       []*big.Int
}

type rawCampaignUpdate struct {
	Title     string
	Content   string
	Timestamp *big.Int
}

func toCampaign(id int64, raw *rawCampaign) models.Campaign {
	c := models.Campaign{
		Id:              id,
		Owner:           raw.Owner.Hex(),
		Title:           raw.Title,
		Description:     raw.Description,
		TargetWei:       raw.Target,
		Target:          FormatAmount(raw.Target),
		Deadline:        time.Unix(raw.Deadline.Int64(), 0).UTC(),
		CollectedWei:    raw.AmountCollected,
		AmountCollected: FormatAmount(raw.AmountCollected),
		Image:           raw.Image,
		Category:        raw.Category,
		IsVerified:      raw.IsVerified,
	}
	for i, donor := range raw.Donators {
		var amount *big.Int
		if i < len(raw.Donations) {
			amount = raw.Donations[i]
		}
		c.Donations = append(c.Donations, models.Donation{
			Donor:     donor.Hex(),
			AmountWei: amount,
			Amount:    FormatAmount(amount),
		})
	}
	return c
}

func (c *Client) campaignList(ctx context.Context, method string) ([]models.Campaign, error) {
	if err := c.guardRead(); err != nil {
		return nil, err
	}

	out, err := c.crowdfunding.call(ctx, method)
	if err != nil {
		return nil, err
	}
	raws := *abi.ConvertType(out[0], new([]rawCampaign)).(*[]rawCampaign)

	campaigns := make([]models.Campaign, 0, len(raws))
	for i := range raws {
		campaigns = append(campaigns, toCampaign(int64(i), &raws[i]))
	}
	return campaigns, nil
}

// Campaigns retrieves every campaign; the slice index on the ledger is
// the campaign id.
func (c *Client) Campaigns(ctx context.Context) ([]models.Campaign, error) {
	return c.campaignList(ctx, "getCampaigns")
}

// ActiveCampaigns retrieves campaigns still accepting donations.
func (c *Client) ActiveCampaigns(ctx context.Context) ([]models.Campaign, error) {
	return c.campaignList(ctx, "getActiveCampaigns")
}

// Campaign retrieves one campaign with its donation pairs.
func (c *Client) Campaign(ctx context.Context, id int64) (*models.Campaign, error) {
	if err := c.guardRead(); err != nil {
		return nil, err
	}

	out, err := c.crowdfunding.call(ctx, "campaigns", big.NewInt(id))
	if err != nil {
		return nil, err
	}

	raw := rawCampaign{
		Owner:           asAddress(out[0]),
		Title:           asString(out[1]),
		Description:     asString(out[2]),
		Target:          asBigInt(out[3]),
		Deadline:        asBigInt(out[4]),
		AmountCollected: asBigInt(out[5]),
		Image:           asString(out[6]),
		Category:        asString(out[7]),
		IsVerified:      asBool(out[8]),
	}
	if raw.Owner == (common.Address{}) {
		return nil, ledger.ErrNotFound
	}

	campaign := toCampaign(id, &raw)

	donations, err := c.Donators(ctx, id)
	if err != nil {
		return nil, err
	}
	campaign.Donations = donations

	return &campaign, nil
}

// CampaignsByOwner retrieves the campaigns created by one identity.
func (c *Client) CampaignsByOwner(ctx context.Context, owner string) ([]models.Campaign, error) {
	if err := c.guardRead(); err != nil {
		return nil, err
	}

	out, err := c.crowdfunding.call(ctx, "getCampaignsByOwner", common.HexToAddress(owner))
	if err != nil {
		return nil, err
	}
	ids := *abi.ConvertType(out[0], new([]*big.Int)).(*[]*big.Int)

	campaigns := make([]models.Campaign, 0, len(ids))
	for _, id := range ids {
		campaign, err := c.Campaign(ctx, id.Int64())
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, *campaign)
	}
	return campaigns, nil
}

// Donators retrieves the ordered (donor, amount) pairs of a campaign.
func (c *Client) Donators(ctx context.Context, id int64) ([]models.Donation, error) {
	if err := c.guardRead(); err != nil {
		return nil, err
	}

	out, err := c.crowdfunding.call(ctx, "getDonators", big.NewInt(id))
	if err != nil {
		return nil, err
	}
	donors := *abi.ConvertType(out[0], new([]common.Address)).(*[]common.Address)
	amounts := *abi.ConvertType(out[1], new([]*big.Int)).(*[]*big.Int)

	donations := make([]models.Donation, 0, len(donors))
	for i, donor := range donors {
		var amount *big.Int
		if i < len(amounts) {
			amount = amounts[i]
		}
		donations = append(donations, models.Donation{
			Donor:     donor.Hex(),
			AmountWei: amount,
			Amount:    FormatAmount(amount),
		})
	}
	return donations, nil
}

// CampaignUpdates retrieves the updates posted on a campaign.
func (c *Client) CampaignUpdates(ctx context.Context, id int64) ([]models.CampaignUpdate, error) {
	if err := c.guardRead(); err != nil {
		return nil, err
	}

	out, err := c.crowdfunding.call(ctx, "getCampaignUpdates", big.NewInt(id))
	if err != nil {
		return nil, err
	}
	raws := *abi.ConvertType(out[0], new([]rawCampaignUpdate)).(*[]rawCampaignUpdate)

	updates := make([]models.CampaignUpdate, 0, len(raws))
	for _, raw := range raws {
		updates = append(updates, models.CampaignUpdate{
			Title:     raw.Title,
			Content:   raw.Content,
			Timestamp: time.Unix(raw.Timestamp.Int64(), 0).UTC(),
		})
	}
	return updates, nil
}

// UserDonations retrieves one donor's history across campaigns.
func (c *Client) UserDonations(ctx context.Context, donor string) ([]models.UserDonation, error) {
	if err := c.guardRead(); err != nil {
		return nil, err
	}

	out, err := c.crowdfunding.call(ctx, "getUserDonations", common.HexToAddress(donor))
	if err != nil {
		return nil, err
	}
	ids := *abi.ConvertType(out[0], new([]*big.Int)).(*[]*big.Int)
	amounts := *abi.ConvertType(out[1], new([]*big.Int)).(*[]*big.Int)

	donations := make([]models.UserDonation, 0, len(ids))
	for i, id := range ids {
		var amount *big.Int
		if i < len(amounts) {
			amount = amounts[i]
		}
		donations = append(donations, models.UserDonation{
			CampaignId: id.Int64(),
			AmountWei:  amount,
			Amount:     FormatAmount(amount),
		})
	}
	return donations, nil
}

// PlatformStats retrieves the aggregate crowdfunding figures.
func (c *Client) PlatformStats(ctx context.Context) (*models.PlatformStats, error) {
	if err := c.guardRead(); err != nil {
		return nil, err
	}

	out, err := c.crowdfunding.call(ctx, "getPlatformStats")
	if err != nil {
		return nil, err
	}

	raised := asBigInt(out[2])
	return &models.PlatformStats{
		TotalCampaigns:      asBigInt(out[0]).Int64(),
		TotalDonationsCount: asBigInt(out[1]).Int64(),
		TotalRaisedWei:      raised,
		TotalAmountRaised:   FormatAmount(raised),
		ActiveCampaigns:     asBigInt(out[3]).Int64(),
	}, nil
}

// IsOrganizerVerified reports whether an organizer identity has been
// verified on the ledger.
func (c *Client) IsOrganizerVerified(ctx context.Context, owner string) (bool, error) {
	if err := c.guardRead(); err != nil {
		return false, err
	}

	out, err := c.crowdfunding.call(ctx, "isOrganizerVerified", common.HexToAddress(owner))
	if err != nil {
		return false, err
	}
	return asBool(out[0]), nil
}

// CreateCampaign records a new campaign owned by the connected identity
// and blocks until the ledger confirms it.
func (c *Client) CreateCampaign(ctx context.Context, in ledger.CreateCampaignInput) (*ledger.CreateResult, error) {
	target, err := ParseAmount(in.Target)
	if err != nil {
		return nil, err
	}

	receipt, err := c.transact(ctx, c.crowdfunding, nil, "createCampaign",
		c.account, in.Title, in.Description, target, big.NewInt(in.Deadline.Unix()), in.Image, in.Category)
	if err != nil {
		return nil, err
	}

	result := &ledger.CreateResult{TxResult: ledger.TxResult{TxHash: receipt.TxHash.Hex()}}
	if id, ok := c.crowdfunding.eventId(receipt, "CampaignCreated"); ok {
		result.Id = id
		return result, nil
	}

	// Older deployments do not emit CampaignCreated; the new campaign is
	// the last slot of the campaign counter.
	out, err := c.crowdfunding.call(ctx, "numberOfCampaigns")
	if err != nil {
		return nil, err
	}
	result.Id = asBigInt(out[0]).Int64() - 1
	return result, nil
}

// Donate transfers the display-decimal amount to a campaign.
func (c *Client) Donate(ctx context.Context, campaignId int64, amount string) (*ledger.TxResult, error) {
	wei, err := ParseAmount(amount)
	if err != nil {
		return nil, err
	}

	receipt, err := c.transact(ctx, c.crowdfunding, wei, "donateToCampaign", big.NewInt(campaignId))
	if err != nil {
		return nil, err
	}
	return &ledger.TxResult{TxHash: receipt.TxHash.Hex()}, nil
}

// PostCampaignUpdate appends an owner update to a campaign.
func (c *Client) PostCampaignUpdate(ctx context.Context, campaignId int64, title, content string) (*ledger.TxResult, error) {
	receipt, err := c.transact(ctx, c.crowdfunding, nil, "postCampaignUpdate", big.NewInt(campaignId), title, content)
	if err != nil {
		return nil, err
	}
	return &ledger.TxResult{TxHash: receipt.TxHash.Hex()}, nil
}
