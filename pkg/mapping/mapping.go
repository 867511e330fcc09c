// Package mapping converts between domain models and API models so the
// HTTP surface never leaks ledger-native types.
package mapping

import (
	"github.com/mygive/platform-core/pkg/api"
	"github.com/mygive/platform-core/pkg/ledger"
	"github.com/mygive/platform-core/pkg/models"
	"github.com/mygive/platform-core/pkg/reports"
)

// ToApiCampaign converts a domain Campaign to its API view.
func ToApiCampaign(c *models.Campaign) *api.Campaign {
	out := &api.Campaign{
		Id:              c.Id,
		Owner:           c.Owner,
		Title:           c.Title,
		Description:     c.Description,
		Target:          c.Target,
		AmountCollected: c.AmountCollected,
		Deadline:        c.Deadline,
		Image:           c.Image,
		Category:        c.Category,
		IsVerified:      c.IsVerified,
		DaysLeft:        c.Derived.DaysLeft,
		ProgressPercent: c.Derived.ProgressPercent,
		IsActive:        c.Derived.IsActive,
		IsFullyFunded:   c.Derived.IsFullyFunded,
		IsExpired:       c.Derived.IsExpired,
	}
	for _, donation := range c.Donations {
		out.Donations = append(out.Donations, api.Donation{Donor: donation.Donor, Amount: donation.Amount})
	}
	for _, update := range c.Updates {
		out.Updates = append(out.Updates, api.CampaignUpdate{
			Title:     update.Title,
			Content:   update.Content,
			Timestamp: update.Timestamp,
		})
	}
	return out
}

// ToApiCampaigns converts a batch of campaigns.
func ToApiCampaigns(campaigns []models.Campaign) []api.Campaign {
	out := make([]api.Campaign, len(campaigns))
	for i := range campaigns {
		out[i] = *ToApiCampaign(&campaigns[i])
	}
	return out
}

// ToDomainNewCampaign converts a campaign creation request to the
// ledger input.
func ToDomainNewCampaign(in *api.NewCampaign) ledger.CreateCampaignInput {
	return ledger.CreateCampaignInput{
		Title:       in.Title,
		Description: in.Description,
		Target:      in.Target,
		Deadline:    in.Deadline,
		Image:       in.Image,
		Category:    in.Category,
	}
}

// ToApiResource converts a domain Resource to its API view.
func ToApiResource(r *models.Resource) *api.Resource {
	out := &api.Resource{
		Id:                r.Id,
		Owner:             r.Owner,
		Title:             r.Title,
		Description:       r.Description,
		Category:          r.Category,
		QuantityAvailable: r.QuantityAvailable,
		QuantityOriginal:  r.QuantityOriginal,
		TotalClaimed:      r.TotalClaimed,
		Unit:              r.Unit,
		Location:          r.Location,
		PostedAt:          r.PostedAt,
		IsActive:          r.IsActive,
		IsVerified:        r.IsVerified,
		Image:             r.Image,
	}
	for _, claim := range r.Claims {
		out.Claims = append(out.Claims, *ToApiClaim(&claim))
	}
	return out
}

// ToApiResources converts a batch of resources.
func ToApiResources(resources []models.Resource) []api.Resource {
	out := make([]api.Resource, len(resources))
	for i := range resources {
		out[i] = *ToApiResource(&resources[i])
	}
	return out
}

// ToDomainNewResource converts a resource posting request to the ledger
// input.
func ToDomainNewResource(in *api.NewResource) ledger.PostResourceInput {
	return ledger.PostResourceInput{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Quantity:    in.Quantity,
		Unit:        in.Unit,
		Location:    in.Location,
		Image:       in.Image,
	}
}

// ToApiClaim converts a domain Claim to its API view with the derived
// status string.
func ToApiClaim(c *models.Claim) *api.Claim {
	return &api.Claim{
		Index:      c.Index,
		ResourceId: c.ResourceId,
		Claimer:    c.Claimer,
		Amount:     c.Amount,
		Timestamp:  c.Timestamp,
		Status:     string(c.Status()),
	}
}

// ToApiClaims converts a batch of claims.
func ToApiClaims(claims []models.Claim) []api.Claim {
	out := make([]api.Claim, len(claims))
	for i := range claims {
		out[i] = *ToApiClaim(&claims[i])
	}
	return out
}

// ToApiProfile converts a domain UserProfile to its API view.
func ToApiProfile(p *models.UserProfile) *api.Profile {
	return &api.Profile{
		WalletAddress: p.WalletAddress,
		Name:          p.Name,
		Email:         p.Email,
		Phone:         p.Phone,
		Location:      p.Location,
		Bio:           p.Bio,
		ProfileImage:  p.ProfileImage,
		CampaignCount: p.CampaignCount,
		ClaimCount:    p.ClaimCount,
		UpdatedAt:     p.UpdatedAt,
	}
}

// ToDomainProfile converts a profile upsert request to the domain
// model. The wallet address comes from the URL, not the body.
func ToDomainProfile(wallet string, in *api.Profile) *models.UserProfile {
	return &models.UserProfile{
		WalletAddress: wallet,
		Name:          in.Name,
		Email:         in.Email,
		Phone:         in.Phone,
		Location:      in.Location,
		Bio:           in.Bio,
		ProfileImage:  in.ProfileImage,
		CampaignCount: in.CampaignCount,
		ClaimCount:    in.ClaimCount,
	}
}

// ToApiNotification converts a journal entry to its API view.
func ToApiNotification(n *models.Notification) *api.Notification {
	return &api.Notification{
		Id:        n.Id,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		Link:      n.Link,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

// ToApiNotifications converts a batch of journal entries.
func ToApiNotifications(entries []models.Notification) []api.Notification {
	out := make([]api.Notification, len(entries))
	for i := range entries {
		out[i] = *ToApiNotification(&entries[i])
	}
	return out
}

// ToApiChatMessage converts a chat message to its API view.
func ToApiChatMessage(m *models.ChatMessage) *api.ChatMessage {
	return &api.ChatMessage{
		Id:        m.Id,
		Sender:    m.Sender,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}

// ToApiChatMessages converts a thread.
func ToApiChatMessages(thread []models.ChatMessage) []api.ChatMessage {
	out := make([]api.ChatMessage, len(thread))
	for i := range thread {
		out[i] = *ToApiChatMessage(&thread[i])
	}
	return out
}

// ToApiReceipt converts a built receipt document to its API view.
func ToApiReceipt(doc *reports.ReceiptDocument) *api.Receipt {
	return &api.Receipt{
		ReceiptNumber: doc.ReceiptNumber,
		IssuedAt:      doc.IssuedAt,
		Donor:         doc.Donor,
		DonorName:     doc.DonorName,
		CampaignTitle: doc.CampaignTitle,
		Category:      doc.Category,
		Amount:        doc.Amount,
		TxHash:        doc.TxHash,
	}
}

// ToApiUserDonations converts a donor's history.
func ToApiUserDonations(donations []models.UserDonation) []api.UserDonation {
	out := make([]api.UserDonation, len(donations))
	for i, donation := range donations {
		out[i] = api.UserDonation{CampaignId: donation.CampaignId, Amount: donation.Amount}
	}
	return out
}

// ToApiUserClaims converts a claimer's history.
func ToApiUserClaims(claims []models.UserClaim) []api.UserClaim {
	out := make([]api.UserClaim, len(claims))
	for i, claim := range claims {
		out[i] = api.UserClaim{
			ResourceId:  claim.ResourceId,
			Amount:      claim.Amount,
			Timestamp:   claim.Timestamp,
			IsCompleted: claim.IsCompleted,
		}
	}
	return out
}

// ToApiPlatformStats merges both contracts' figures into one response.
func ToApiPlatformStats(summary *reports.PlatformSummary) *api.PlatformStats {
	return &api.PlatformStats{
		TotalCampaigns:      summary.TotalCampaigns,
		ActiveCampaigns:     summary.ActiveCampaigns,
		TotalDonationsCount: summary.TotalDonationsCount,
		TotalAmountRaised:   summary.TotalAmountRaised,
		TotalResources:      summary.TotalResources,
		ActiveResources:     summary.ActiveResources,
		TotalClaims:         summary.TotalClaims,
		CompletedClaims:     summary.CompletedClaims,
	}
}
