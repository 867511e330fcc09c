package lifecycle

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mygive/platform-core/pkg/models"
	"github.com/mygive/platform-core/pkg/notifications"
)

// SendChatMessage appends a message to the thread between a resource
// owner and a claimer and notifies the other party. The sender must be
// one of the two.
func (c *Coordinator) SendChatMessage(ctx context.Context, resourceId int64, claimId, message string) (*models.ChatMessage, error) {
	if err := c.requireSigner(); err != nil {
		return nil, err
	}
	if message == "" {
		return nil, validationErr("chat message is required")
	}

	resource, err := c.ledger.Resource(ctx, resourceId)
	if err != nil {
		return nil, classify(err, "failed to read resource before chat message")
	}

	claimIndex, err := strconv.Atoi(claimId)
	if err != nil || claimIndex < 0 || claimIndex >= len(resource.Claims) {
		return nil, validationErr(fmt.Sprintf("resource %d has no claim %q", resourceId, claimId))
	}
	claim := resource.Claims[claimIndex]

	sender := c.ledger.Account()
	var recipient string
	switch {
	case sameIdentity(resource.Owner, sender):
		recipient = claim.Claimer
	case sameIdentity(claim.Claimer, sender):
		recipient = resource.Owner
	default:
		return nil, validationErr("only the resource owner or the claimer may post in this thread")
	}

	entry, err := c.store.AppendChatMessage(ctx, resourceId, claimId, sender, message)
	if err != nil {
		return nil, fmt.Errorf("failed to store chat message: %w", err)
	}

	c.journal.Notify(ctx, recipient, models.Notification{
		Type:    notifications.TypeChatMessage,
		Title:   fmt.Sprintf("New message about %q", resource.Title),
		Message: message,
		Link:    fmt.Sprintf("/resources/%d", resourceId),
	})

	return entry, nil
}

// ChatMessages retrieves a thread, restricted to its two participants.
func (c *Coordinator) ChatMessages(ctx context.Context, resourceId int64, claimId string) ([]models.ChatMessage, error) {
	if err := c.requireSigner(); err != nil {
		return nil, err
	}

	resource, err := c.ledger.Resource(ctx, resourceId)
	if err != nil {
		return nil, classify(err, "failed to read resource before chat read")
	}

	claimIndex, err := strconv.Atoi(claimId)
	if err != nil || claimIndex < 0 || claimIndex >= len(resource.Claims) {
		return nil, validationErr(fmt.Sprintf("resource %d has no claim %q", resourceId, claimId))
	}
	claim := resource.Claims[claimIndex]

	caller := c.ledger.Account()
	if !sameIdentity(resource.Owner, caller) && !sameIdentity(claim.Claimer, caller) {
		return nil, validationErr("only the resource owner or the claimer may read this thread")
	}

	return c.store.ChatMessages(ctx, resourceId, claimId)
}
