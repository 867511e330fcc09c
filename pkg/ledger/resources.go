package ledger

import (
	"context"

	"github.com/mygive/platform-core/pkg/models"
)

// ResourceReader defines the read surface of the resource-sharing
// contract.
type ResourceReader interface {
	// Resources retrieves every posted resource.
	Resources(ctx context.Context) ([]models.Resource, error)

	// Resource retrieves one resource by id. A zero-owner record on the
	// ledger means the resource does not exist and yields ErrNotFound.
	Resource(ctx context.Context, id int64) (*models.Resource, error)

	// ActiveResources retrieves only resources whose owners have not
	// deactivated them.
	ActiveResources(ctx context.Context) ([]models.Resource, error)

	// ResourcesByOwner retrieves the resources posted by one identity.
	ResourcesByOwner(ctx context.Context, owner string) ([]models.Resource, error)

	// ResourcesByCategory retrieves the resources in one category.
	ResourcesByCategory(ctx context.Context, category string) ([]models.Resource, error)

	// ResourceClaims retrieves the claims recorded against a resource,
	// ordered by claim index.
	ResourceClaims(ctx context.Context, id int64) ([]models.Claim, error)

	// UserClaims retrieves one claimer's history across resources.
	UserClaims(ctx context.Context, claimer string) ([]models.UserClaim, error)

	// ResourceStats retrieves the aggregate resource-sharing figures.
	ResourceStats(ctx context.Context) (*models.ResourceStats, error)

	// IsDonorVerified reports whether a donor identity has been verified
	// on the ledger.
	IsDonorVerified(ctx context.Context, donor string) (bool, error)
}
