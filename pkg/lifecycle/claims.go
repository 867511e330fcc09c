package lifecycle

import (
	"context"
	"fmt"

	"github.com/mygive/platform-core/pkg/ledger"
	"github.com/mygive/platform-core/pkg/models"
	"github.com/mygive/platform-core/pkg/notifications"
)

// ClaimResource reserves quantity on a resource for the connected
// identity, validating availability against a fresh ledger read first.
func (c *Coordinator) ClaimResource(ctx context.Context, resourceId, amount int64) (*ledger.TxResult, error) {
	if err := c.requireSigner(); err != nil {
		return nil, err
	}
	if amount <= 0 {
		return nil, validationErr("claim amount must be positive")
	}

	resource, err := c.ledger.Resource(ctx, resourceId)
	if err != nil {
		return nil, classify(err, "failed to read resource before claim")
	}
	if !resource.IsActive {
		return nil, validationErr("resource is not active")
	}
	if sameIdentity(resource.Owner, c.ledger.Account()) {
		return nil, validationErr("owners cannot claim their own resource")
	}

	available := resource.QuantityAvailable - c.pending.claimOverlay(resourceId)
	if amount > available {
		return nil, validationErr(fmt.Sprintf("claim of %d exceeds available quantity %d", amount, available))
	}

	release := c.pending.addClaim(resourceId, amount)
	defer release()

	result, err := c.ledger.ClaimResource(ctx, resourceId, amount)
	if err != nil {
		return nil, classify(err, "claim failed")
	}

	claimer := c.Account()
	c.journal.Notify(ctx, resource.Owner, models.Notification{
		Type:    notifications.TypeClaimReceived,
		Title:   "New claim",
		Message: fmt.Sprintf("%s claimed %d %s of %q", claimer, amount, resource.Unit, resource.Title),
		Link:    fmt.Sprintf("/resources/%d", resourceId),
	})

	c.log.Info("claim confirmed", "resource", resourceId, "claimer", claimer,
		"amount", amount, "tx", result.TxHash)
	return result, nil
}

// claimForTransition loads a claim and rejects terminal states before
// any transaction is submitted. The ledger would revert the transition
// anyway; rejecting here saves the fee and gives the caller a clean
// classification.
func (c *Coordinator) claimForTransition(ctx context.Context, resourceId int64, claimIndex int) (*models.Resource, *models.Claim, error) {
	resource, err := c.ledger.Resource(ctx, resourceId)
	if err != nil {
		return nil, nil, classify(err, "failed to read resource before claim transition")
	}
	if claimIndex < 0 || claimIndex >= len(resource.Claims) {
		return nil, nil, validationErr(fmt.Sprintf("resource %d has no claim %d", resourceId, claimIndex))
	}

	claim := resource.Claims[claimIndex]
	if claim.Terminal() {
		return nil, nil, terminalErr(fmt.Sprintf("claim is already %s", claim.Status()))
	}
	return resource, &claim, nil
}

// CompleteClaim marks a pending claim completed. Owner only; claimed
// quantity stays deducted.
func (c *Coordinator) CompleteClaim(ctx context.Context, resourceId int64, claimIndex int) (*ledger.TxResult, error) {
	if err := c.requireSigner(); err != nil {
		return nil, err
	}

	resource, claim, err := c.claimForTransition(ctx, resourceId, claimIndex)
	if err != nil {
		return nil, err
	}
	if !sameIdentity(resource.Owner, c.ledger.Account()) {
		return nil, validationErr("only the resource owner may complete a claim")
	}

	result, err := c.ledger.CompleteClaim(ctx, resourceId, claimIndex)
	if err != nil {
		return nil, classify(err, "failed to complete claim")
	}

	c.journal.Notify(ctx, claim.Claimer, models.Notification{
		Type:    notifications.TypeClaimCompleted,
		Title:   "Claim completed",
		Message: fmt.Sprintf("Your claim on %q was marked completed", resource.Title),
		Link:    fmt.Sprintf("/resources/%d", resourceId),
	})

	c.log.Info("claim completed", "resource", resourceId, "claim", claimIndex, "tx", result.TxHash)
	return result, nil
}

// CancelClaim cancels a pending claim and restores its quantity on the
// ledger. The claimer or the resource owner may cancel.
func (c *Coordinator) CancelClaim(ctx context.Context, resourceId int64, claimIndex int) (*ledger.TxResult, error) {
	if err := c.requireSigner(); err != nil {
		return nil, err
	}

	resource, claim, err := c.claimForTransition(ctx, resourceId, claimIndex)
	if err != nil {
		return nil, err
	}
	caller := c.ledger.Account()
	if !sameIdentity(claim.Claimer, caller) && !sameIdentity(resource.Owner, caller) {
		return nil, validationErr("only the claimer or the resource owner may cancel a claim")
	}

	result, err := c.ledger.CancelClaim(ctx, resourceId, claimIndex)
	if err != nil {
		return nil, classify(err, "failed to cancel claim")
	}

	// Tell the party that did not initiate the cancellation.
	recipient := claim.Claimer
	if sameIdentity(claim.Claimer, caller) {
		recipient = resource.Owner
	}
	c.journal.Notify(ctx, recipient, models.Notification{
		Type:    notifications.TypeClaimCancelled,
		Title:   "Claim cancelled",
		Message: fmt.Sprintf("A claim of %d %s on %q was cancelled", claim.Amount, resource.Unit, resource.Title),
		Link:    fmt.Sprintf("/resources/%d", resourceId),
	})

	c.log.Info("claim cancelled", "resource", resourceId, "claim", claimIndex, "tx", result.TxHash)
	return result, nil
}
