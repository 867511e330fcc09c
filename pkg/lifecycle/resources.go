package lifecycle

import (
	"context"

	"github.com/mygive/platform-core/pkg/derived"
	"github.com/mygive/platform-core/pkg/ledger"
	"github.com/mygive/platform-core/pkg/models"
)

// annotateResources attaches derived facts and the pending-claim
// overlay to a batch of ledger reads.
func (c *Coordinator) annotateResources(resources []models.Resource) []models.Resource {
	for i := range resources {
		resource := &resources[i]
		if pending := c.pending.claimOverlay(resource.Id); pending > 0 {
			resource.QuantityAvailable -= pending
			if resource.QuantityAvailable < 0 {
				resource.QuantityAvailable = 0
			}
		}
		derived.AnnotateResource(resource)
	}
	return resources
}

// Resources retrieves every posted resource.
func (c *Coordinator) Resources(ctx context.Context) ([]models.Resource, error) {
	resources, err := c.ledger.Resources(ctx)
	if err != nil {
		return nil, classify(err, "failed to read resources")
	}
	return c.annotateResources(resources), nil
}

// ActiveResources retrieves resources open for claims.
func (c *Coordinator) ActiveResources(ctx context.Context) ([]models.Resource, error) {
	resources, err := c.ledger.ActiveResources(ctx)
	if err != nil {
		return nil, classify(err, "failed to read active resources")
	}
	return c.annotateResources(resources), nil
}

// ResourcesByOwner retrieves one identity's posted resources.
func (c *Coordinator) ResourcesByOwner(ctx context.Context, owner string) ([]models.Resource, error) {
	resources, err := c.ledger.ResourcesByOwner(ctx, owner)
	if err != nil {
		return nil, classify(err, "failed to read resources by owner")
	}
	return c.annotateResources(resources), nil
}

// ResourcesByCategory retrieves the resources in one category.
func (c *Coordinator) ResourcesByCategory(ctx context.Context, category string) ([]models.Resource, error) {
	resources, err := c.ledger.ResourcesByCategory(ctx, category)
	if err != nil {
		return nil, classify(err, "failed to read resources by category")
	}
	return c.annotateResources(resources), nil
}

// Resource retrieves one resource with its claims and derived facts.
func (c *Coordinator) Resource(ctx context.Context, id int64) (*models.Resource, error) {
	resource, err := c.ledger.Resource(ctx, id)
	if err != nil {
		return nil, classify(err, "failed to read resource")
	}
	annotated := c.annotateResources([]models.Resource{*resource})
	return &annotated[0], nil
}

// ResourceClaims retrieves the claims recorded against a resource.
func (c *Coordinator) ResourceClaims(ctx context.Context, id int64) ([]models.Claim, error) {
	claims, err := c.ledger.ResourceClaims(ctx, id)
	if err != nil {
		return nil, classify(err, "failed to read resource claims")
	}
	return claims, nil
}

// UserClaims retrieves one claimer's history across resources.
func (c *Coordinator) UserClaims(ctx context.Context, claimer string) ([]models.UserClaim, error) {
	claims, err := c.ledger.UserClaims(ctx, claimer)
	if err != nil {
		return nil, classify(err, "failed to read user claims")
	}
	return claims, nil
}

// ResourceStats retrieves the aggregate resource-sharing figures.
func (c *Coordinator) ResourceStats(ctx context.Context) (*models.ResourceStats, error) {
	stats, err := c.ledger.ResourceStats(ctx)
	if err != nil {
		return nil, classify(err, "failed to read resource stats")
	}
	return stats, nil
}

// PostResource validates the input and records a new resource owned by
// the connected identity.
func (c *Coordinator) PostResource(ctx context.Context, in ledger.PostResourceInput) (*ledger.CreateResult, error) {
	if err := c.requireSigner(); err != nil {
		return nil, err
	}
	if in.Title == "" {
		return nil, validationErr("resource title is required")
	}
	if in.Description == "" {
		return nil, validationErr("resource description is required")
	}
	if in.Quantity <= 0 {
		return nil, validationErr("resource quantity must be positive")
	}

	result, err := c.ledger.PostResource(ctx, in)
	if err != nil {
		return nil, classify(err, "failed to post resource")
	}

	c.log.Info("resource posted", "resource", result.Id, "tx", result.TxHash)
	return result, nil
}

// DeactivateResource hides a resource from active listings. Owner only.
func (c *Coordinator) DeactivateResource(ctx context.Context, resourceId int64) (*ledger.TxResult, error) {
	if err := c.requireSigner(); err != nil {
		return nil, err
	}

	resource, err := c.ledger.Resource(ctx, resourceId)
	if err != nil {
		return nil, classify(err, "failed to read resource before deactivation")
	}
	if !sameIdentity(resource.Owner, c.ledger.Account()) {
		return nil, validationErr("only the resource owner may deactivate it")
	}
	if !resource.IsActive {
		return nil, validationErr("resource is already inactive")
	}

	result, err := c.ledger.DeactivateResource(ctx, resourceId)
	if err != nil {
		return nil, classify(err, "failed to deactivate resource")
	}

	c.log.Info("resource deactivated", "resource", resourceId, "tx", result.TxHash)
	return result, nil
}

// ReactivateResource restores a deactivated resource. Owner only.
func (c *Coordinator) ReactivateResource(ctx context.Context, resourceId int64) (*ledger.TxResult, error) {
	if err := c.requireSigner(); err != nil {
		return nil, err
	}

	resource, err := c.ledger.Resource(ctx, resourceId)
	if err != nil {
		return nil, classify(err, "failed to read resource before reactivation")
	}
	if !sameIdentity(resource.Owner, c.ledger.Account()) {
		return nil, validationErr("only the resource owner may reactivate it")
	}
	if resource.IsActive {
		return nil, validationErr("resource is already active")
	}

	result, err := c.ledger.ReactivateResource(ctx, resourceId)
	if err != nil {
		return nil, classify(err, "failed to reactivate resource")
	}

	c.log.Info("resource reactivated", "resource", resourceId, "tx", result.TxHash)
	return result, nil
}
