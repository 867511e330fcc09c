package lifecycle

import (
	"context"
	"fmt"
	"math/big"

	"github.com/mygive/platform-core/pkg/derived"
	"github.com/mygive/platform-core/pkg/ledger"
	"github.com/mygive/platform-core/pkg/ledger/eth"
	"github.com/mygive/platform-core/pkg/models"
	"github.com/mygive/platform-core/pkg/notifications"
)

// annotateCampaigns attaches derived facts, off-chain categories and
// the pending-donation overlay to a batch of ledger reads.
func (c *Coordinator) annotateCampaigns(ctx context.Context, campaigns []models.Campaign) []models.Campaign {
	ids := make([]int64, len(campaigns))
	for i := range campaigns {
		ids[i] = campaigns[i].Id
	}

	categories, err := c.store.CampaignCategories(ctx, ids)
	if err != nil {
		c.log.Warn("failed to load campaign categories", "error", err)
		categories = nil
	}

	now := c.now()
	for i := range campaigns {
		campaign := &campaigns[i]
		if category, ok := categories[campaign.Id]; ok && campaign.Category == "" {
			campaign.Category = category
		}
		c.overlayDonations(campaign)
		derived.AnnotateCampaign(campaign, now)
	}
	return campaigns
}

// overlayDonations folds unconfirmed in-flight donations into the
// collected total so mid-transaction reads do not regress.
func (c *Coordinator) overlayDonations(campaign *models.Campaign) {
	pending := c.pending.donationOverlay(campaign.Id)
	if pending == nil {
		return
	}
	if campaign.CollectedWei == nil {
		campaign.CollectedWei = new(big.Int)
	}
	campaign.CollectedWei = new(big.Int).Add(campaign.CollectedWei, pending)
	campaign.AmountCollected = eth.FormatAmount(campaign.CollectedWei)
}

// Campaigns retrieves every campaign with derived facts and categories
// attached.
func (c *Coordinator) Campaigns(ctx context.Context) ([]models.Campaign, error) {
	campaigns, err := c.ledger.Campaigns(ctx)
	if err != nil {
		return nil, classify(err, "failed to read campaigns")
	}
	return c.annotateCampaigns(ctx, campaigns), nil
}

// ActiveCampaigns retrieves campaigns still accepting donations.
func (c *Coordinator) ActiveCampaigns(ctx context.Context) ([]models.Campaign, error) {
	campaigns, err := c.ledger.ActiveCampaigns(ctx)
	if err != nil {
		return nil, classify(err, "failed to read active campaigns")
	}
	return c.annotateCampaigns(ctx, campaigns), nil
}

// CampaignsByOwner retrieves one identity's campaigns.
func (c *Coordinator) CampaignsByOwner(ctx context.Context, owner string) ([]models.Campaign, error) {
	campaigns, err := c.ledger.CampaignsByOwner(ctx, owner)
	if err != nil {
		return nil, classify(err, "failed to read campaigns by owner")
	}
	return c.annotateCampaigns(ctx, campaigns), nil
}

// Campaign retrieves one campaign with donations, updates, derived
// facts and category attached.
func (c *Coordinator) Campaign(ctx context.Context, id int64) (*models.Campaign, error) {
	campaign, err := c.ledger.Campaign(ctx, id)
	if err != nil {
		return nil, classify(err, "failed to read campaign")
	}

	updates, err := c.ledger.CampaignUpdates(ctx, id)
	if err != nil {
		c.log.Warn("failed to read campaign updates", "campaign", id, "error", err)
	} else {
		campaign.Updates = updates
	}

	annotated := c.annotateCampaigns(ctx, []models.Campaign{*campaign})
	return &annotated[0], nil
}

// Donators retrieves a campaign's donation pairs.
func (c *Coordinator) Donators(ctx context.Context, id int64) ([]models.Donation, error) {
	donations, err := c.ledger.Donators(ctx, id)
	if err != nil {
		return nil, classify(err, "failed to read donators")
	}
	return donations, nil
}

// UserDonations retrieves one donor's history across campaigns.
func (c *Coordinator) UserDonations(ctx context.Context, donor string) ([]models.UserDonation, error) {
	donations, err := c.ledger.UserDonations(ctx, donor)
	if err != nil {
		return nil, classify(err, "failed to read user donations")
	}
	return donations, nil
}

// PlatformStats retrieves the aggregate crowdfunding figures.
func (c *Coordinator) PlatformStats(ctx context.Context) (*models.PlatformStats, error) {
	stats, err := c.ledger.PlatformStats(ctx)
	if err != nil {
		return nil, classify(err, "failed to read platform stats")
	}
	return stats, nil
}

// CreateCampaign validates the input, records the campaign on the
// ledger and persists its category off-chain. The category write is
// best-effort; the campaign exists once the ledger confirms.
func (c *Coordinator) CreateCampaign(ctx context.Context, in ledger.CreateCampaignInput) (*ledger.CreateResult, error) {
	if err := c.requireSigner(); err != nil {
		return nil, err
	}
	if in.Title == "" {
		return nil, validationErr("campaign title is required")
	}
	if in.Description == "" {
		return nil, validationErr("campaign description is required")
	}
	target, err := eth.ParseAmount(in.Target)
	if err != nil {
		return nil, validationErr(fmt.Sprintf("invalid target amount %q", in.Target))
	}
	if target.Sign() <= 0 {
		return nil, validationErr("campaign target must be positive")
	}
	if !in.Deadline.After(c.now()) {
		return nil, validationErr("campaign deadline must be in the future")
	}

	result, err := c.ledger.CreateCampaign(ctx, in)
	if err != nil {
		return nil, classify(err, "failed to create campaign")
	}

	if in.Category != "" {
		if err := c.store.PutCampaignCategory(ctx, result.Id, in.Category); err != nil {
			c.log.Warn("campaign created but category not persisted",
				"campaign", result.Id, "error", err)
		}
	}

	c.log.Info("campaign created", "campaign", result.Id, "tx", result.TxHash)
	return result, nil
}

// Donate validates against a fresh campaign read, submits the donation
// and on confirmation records the receipt and notifies both parties.
func (c *Coordinator) Donate(ctx context.Context, campaignId int64, amount string) (*ledger.TxResult, error) {
	if err := c.requireSigner(); err != nil {
		return nil, err
	}
	wei, err := eth.ParseAmount(amount)
	if err != nil {
		return nil, validationErr(fmt.Sprintf("invalid donation amount %q", amount))
	}
	if wei.Sign() <= 0 {
		return nil, validationErr("donation amount must be positive")
	}

	campaign, err := c.ledger.Campaign(ctx, campaignId)
	if err != nil {
		return nil, classify(err, "failed to read campaign before donation")
	}
	if derived.IsExpired(campaign.Deadline, c.now()) {
		return nil, validationErr("campaign deadline has passed")
	}
	if derived.IsFullyFunded(campaign.CollectedWei, campaign.TargetWei) {
		return nil, validationErr("campaign is already fully funded")
	}

	release := c.pending.addDonation(campaignId, wei)
	defer release()

	result, err := c.ledger.Donate(ctx, campaignId, amount)
	if err != nil {
		return nil, classify(err, "donation failed")
	}

	c.recordReceipt(ctx, campaign, result.TxHash, amount)

	donor := c.Account()
	c.journal.Notify(ctx, campaign.Owner, models.Notification{
		Type:    notifications.TypeDonationReceived,
		Title:   "New donation",
		Message: fmt.Sprintf("%s donated %s to %q", donor, amount, campaign.Title),
		Link:    fmt.Sprintf("/campaigns/%d", campaignId),
	})
	c.journal.Notify(ctx, donor, models.Notification{
		Type:    notifications.TypeDonationMade,
		Title:   "Donation confirmed",
		Message: fmt.Sprintf("Your donation of %s to %q was confirmed", amount, campaign.Title),
		Link:    fmt.Sprintf("/campaigns/%d", campaignId),
	})

	c.log.Info("donation confirmed", "campaign", campaignId, "donor", donor, "tx", result.TxHash)
	return result, nil
}

// recordReceipt persists the off-chain receipt record for a confirmed
// donation. Failures are logged; the donation already stands.
func (c *Coordinator) recordReceipt(ctx context.Context, campaign *models.Campaign, txHash, amount string) {
	number, err := c.store.NextReceiptNumber(ctx)
	if err != nil {
		c.log.Warn("donation confirmed but receipt number not allocated",
			"campaign", campaign.Id, "error", err)
		return
	}

	receipt := &models.DonationReceipt{
		ReceiptNumber: number,
		TxHash:        txHash,
		CampaignId:    campaign.Id,
		CampaignTitle: campaign.Title,
		Category:      campaign.Category,
		Donor:         c.Account(),
		Amount:        amount,
		CreatedAt:     c.now().UTC(),
	}
	if err := c.store.PutDonationReceipt(ctx, receipt); err != nil {
		c.log.Warn("donation confirmed but receipt not persisted",
			"campaign", campaign.Id, "error", err)
	}
}

// PostCampaignUpdate appends an owner update and notifies every donor.
func (c *Coordinator) PostCampaignUpdate(ctx context.Context, campaignId int64, title, content string) (*ledger.TxResult, error) {
	if err := c.requireSigner(); err != nil {
		return nil, err
	}
	if title == "" || content == "" {
		return nil, validationErr("update title and content are required")
	}

	campaign, err := c.ledger.Campaign(ctx, campaignId)
	if err != nil {
		return nil, classify(err, "failed to read campaign before update")
	}
	if !sameIdentity(campaign.Owner, c.ledger.Account()) {
		return nil, validationErr("only the campaign owner may post updates")
	}

	result, err := c.ledger.PostCampaignUpdate(ctx, campaignId, title, content)
	if err != nil {
		return nil, classify(err, "failed to post campaign update")
	}

	notified := make(map[string]bool)
	for _, donation := range campaign.Donations {
		donor := donation.Donor
		if notified[donor] || sameIdentity(donor, campaign.Owner) {
			continue
		}
		notified[donor] = true
		c.journal.Notify(ctx, donor, models.Notification{
			Type:    notifications.TypeCampaignUpdate,
			Title:   fmt.Sprintf("Update on %q", campaign.Title),
			Message: title,
			Link:    fmt.Sprintf("/campaigns/%d", campaignId),
		})
	}

	c.log.Info("campaign update posted", "campaign", campaignId, "tx", result.TxHash)
	return result, nil
}
