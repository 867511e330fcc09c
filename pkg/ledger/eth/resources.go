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

// rawResource mirrors the Resource tuple returned by the contract.
type rawResource struct {
	Owner             common.Address
	Title             string
	Description       string
	Category          string
	QuantityAvailable *big.Int
	QuantityOriginal  *big.Int
	Unit              string
	Location          string
	PostedTimestamp   *big.Int
	IsActive          bool
	IsVerified        bool
	Image             string
	Claimers          []common.Address
	ClaimedAmounts    []*big.Int
}

type rawClaim struct {
	ResourceId  *big.Int
	Claimer     common.Address
	Amount      *big.Int
	Timestamp   *big.Int
	IsCompleted bool
	IsCancelled bool
}

func toResource(id int64, raw *rawResource) models.Resource {
	r := models.Resource{
		Id:                id,
		Owner:             raw.Owner.Hex(),
		Title:             raw.Title,
		Description:       raw.Description,
		Category:          raw.Category,
		QuantityAvailable: raw.QuantityAvailable.Int64(),
		QuantityOriginal:  raw.QuantityOriginal.Int64(),
		Unit:              raw.Unit,
		Location:          raw.Location,
		PostedAt:          time.Unix(raw.PostedTimestamp.Int64(), 0).UTC(),
		IsActive:          raw.IsActive,
		IsVerified:        raw.IsVerified,
		Image:             raw.Image,
	}
	r.TotalClaimed = r.QuantityOriginal - r.QuantityAvailable
	return r
}

func toClaims(raws []rawClaim) []models.Claim {
	claims := make([]models.Claim, 0, len(raws))
	for i, raw := range raws {
		claims = append(claims, models.Claim{
			Index:       i,
			ResourceId:  raw.ResourceId.Int64(),
			Claimer:     raw.Claimer.Hex(),
			Amount:      raw.Amount.Int64(),
			Timestamp:   time.Unix(raw.Timestamp.Int64(), 0).UTC(),
			IsCompleted: raw.IsCompleted,
			IsCancelled: raw.IsCancelled,
		})
	}
	return claims
}

func (c *Client) resourceList(ctx context.Context, method string, args ...interface{}) ([]models.Resource, error) {
	if err := c.guardRead(); err != nil {
		return nil, err
	}

	out, err := c.resources.call(ctx, method, args...)
	if err != nil {
		return nil, err
	}
	raws := *abi.ConvertType(out[0], new([]rawResource)).(*[]rawResource)

	list := make([]models.Resource, 0, len(raws))
	for i := range raws {
		list = append(list, toResource(int64(i), &raws[i]))
	}
	return list, nil
}

// Resources retrieves every posted resource.
func (c *Client) Resources(ctx context.Context) ([]models.Resource, error) {
	return c.resourceList(ctx, "getResources")
}

// ActiveResources retrieves resources whose owners have not deactivated
// them.
func (c *Client) ActiveResources(ctx context.Context) ([]models.Resource, error) {
	return c.resourceList(ctx, "getActiveResources")
}

// ResourcesByCategory retrieves the resources in one category.
func (c *Client) ResourcesByCategory(ctx context.Context, category string) ([]models.Resource, error) {
	return c.resourceList(ctx, "getResourcesByCategory", category)
}

// Resource retrieves one resource with its full claim list.
func (c *Client) Resource(ctx context.Context, id int64) (*models.Resource, error) {
	if err := c.guardRead(); err != nil {
		return nil, err
	}

	out, err := c.resources.call(ctx, "resources", big.NewInt(id))
	if err != nil {
		return nil, err
	}

	raw := rawResource{
		Owner:             asAddress(out[0]),
		Title:             asString(out[1]),
		Description:       asString(out[2]),
		Category:          asString(out[3]),
		QuantityAvailable: asBigInt(out[4]),
		QuantityOriginal:  asBigInt(out[5]),
		Unit:              asString(out[6]),
		Location:          asString(out[7]),
		PostedTimestamp:   asBigInt(out[8]),
		IsActive:          asBool(out[9]),
		IsVerified:        asBool(out[10]),
		Image:             asString(out[11]),
	}
	if raw.Owner == (common.Address{}) {
		return nil, ledger.ErrNotFound
	}

	resource := toResource(id, &raw)

	claims, err := c.ResourceClaims(ctx, id)
	if err != nil {
		return nil, err
	}
	resource.Claims = claims

	return &resource, nil
}

// ResourcesByOwner retrieves the resources posted by one identity.
func (c *Client) ResourcesByOwner(ctx context.Context, owner string) ([]models.Resource, error) {
	if err := c.guardRead(); err != nil {
		return nil, err
	}

	out, err := c.resources.call(ctx, "getResourcesByOwner", common.HexToAddress(owner))
	if err != nil {
		return nil, err
	}
	ids := *abi.ConvertType(out[0], new([]*big.Int)).(*[]*big.Int)

	list := make([]models.Resource, 0, len(ids))
	for _, id := range ids {
		resource, err := c.Resource(ctx, id.Int64())
		if err != nil {
			return nil, err
		}
		list = append(list, *resource)
	}
	return list, nil
}

// ResourceClaims retrieves the claims recorded against a resource.
func (c *Client) ResourceClaims(ctx context.Context, id int64) ([]models.Claim, error) {
	if err := c.guardRead(); err != nil {
		return nil, err
	}

	out, err := c.resources.call(ctx, "getResourceClaims", big.NewInt(id))
	if err != nil {
		return nil, err
	}
	raws := *abi.ConvertType(out[0], new([]rawClaim)).(*[]rawClaim)

	return toClaims(raws), nil
}

// UserClaims retrieves one claimer's history across resources.
func (c *Client) UserClaims(ctx context.Context, claimer string) ([]models.UserClaim, error) {
	if err := c.guardRead(); err != nil {
		return nil, err
	}

	out, err := c.resources.call(ctx, "getUserClaims", common.HexToAddress(claimer))
	if err != nil {
		return nil, err
	}
	ids := *abi.ConvertType(out[0], new([]*big.Int)).(*[]*big.Int)
	amounts := *abi.ConvertType(out[1], new([]*big.Int)).(*[]*big.Int)
	timestamps := *abi.ConvertType(out[2], new([]*big.Int)).(*[]*big.Int)
	completed := *abi.ConvertType(out[3], new([]bool)).(*[]bool)

	claims := make([]models.UserClaim, 0, len(ids))
	for i, id := range ids {
		claim := models.UserClaim{ResourceId: id.Int64()}
		if i < len(amounts) {
			claim.Amount = amounts[i].Int64()
		}
		if i < len(timestamps) {
			claim.Timestamp = time.Unix(timestamps[i].Int64(), 0).UTC()
		}
		if i < len(completed) {
			claim.IsCompleted = completed[i]
		}
		claims = append(claims, claim)
	}
	return claims, nil
}

// ResourceStats retrieves the aggregate resource-sharing figures.
func (c *Client) ResourceStats(ctx context.Context) (*models.ResourceStats, error) {
	if err := c.guardRead(); err != nil {
		return nil, err
	}

	out, err := c.resources.call(ctx, "getResourceStats")
	if err != nil {
		return nil, err
	}

	return &models.ResourceStats{
		TotalResources:  asBigInt(out[0]).Int64(),
		ActiveResources: asBigInt(out[1]).Int64(),
		TotalClaims:     asBigInt(out[2]).Int64(),
		CompletedClaims: asBigInt(out[3]).Int64(),
	}, nil
}

// IsDonorVerified reports whether a donor identity has been verified on
// the ledger.
func (c *Client) IsDonorVerified(ctx context.Context, donor string) (bool, error) {
	if err := c.guardRead(); err != nil {
		return false, err
	}

	out, err := c.resources.call(ctx, "isDonorVerified", common.HexToAddress(donor))
	if err != nil {
		return false, err
	}
	return asBool(out[0]), nil
}

// PostResource records a new resource and returns its ledger-assigned
// id, recovered from the ResourcePosted event.
func (c *Client) PostResource(ctx context.Context, in ledger.PostResourceInput) (*ledger.CreateResult, error) {
	receipt, err := c.transact(ctx, c.resources, nil, "postResource",
		in.Title, in.Description, in.Category, big.NewInt(in.Quantity), in.Unit, in.Location, in.Image)
	if err != nil {
		return nil, err
	}

	result := &ledger.CreateResult{TxResult: ledger.TxResult{TxHash: receipt.TxHash.Hex()}}
	if id, ok := c.resources.eventId(receipt, "ResourcePosted"); ok {
		result.Id = id
		return result, nil
	}

	// Fall back to the tail of the resource list when the event is
	// missing from the receipt.
	list, err := c.Resources(ctx)
	if err != nil {
		return nil, err
	}
	result.Id = int64(len(list)) - 1
	return result, nil
}

// ClaimResource reserves quantity on a resource for the connected
// identity.
func (c *Client) ClaimResource(ctx context.Context, resourceId, amount int64) (*ledger.TxResult, error) {
	receipt, err := c.transact(ctx, c.resources, nil, "claimResource", big.NewInt(resourceId), big.NewInt(amount))
	if err != nil {
		return nil, err
	}
	return &ledger.TxResult{TxHash: receipt.TxHash.Hex()}, nil
}

// CompleteClaim marks a pending claim completed.
func (c *Client) CompleteClaim(ctx context.Context, resourceId int64, claimIndex int) (*ledger.TxResult, error) {
	receipt, err := c.transact(ctx, c.resources, nil, "completeClaim", big.NewInt(resourceId), big.NewInt(int64(claimIndex)))
	if err != nil {
		return nil, err
	}
	return &ledger.TxResult{TxHash: receipt.TxHash.Hex()}, nil
}

// CancelClaim cancels a pending claim; the ledger restores the claimed
// quantity.
func (c *Client) CancelClaim(ctx context.Context, resourceId int64, claimIndex int) (*ledger.TxResult, error) {
	receipt, err := c.transact(ctx, c.resources, nil, "cancelClaim", big.NewInt(resourceId), big.NewInt(int64(claimIndex)))
	if err != nil {
		return nil, err
	}
	return &ledger.TxResult{TxHash: receipt.TxHash.Hex()}, nil
}

// DeactivateResource hides a resource from active listings.
func (c *Client) DeactivateResource(ctx context.Context, resourceId int64) (*ledger.TxResult, error) {
	receipt, err := c.transact(ctx, c.resources, nil, "deactivateResource", big.NewInt(resourceId))
	if err != nil {
		return nil, err
	}
	return &ledger.TxResult{TxHash: receipt.TxHash.Hex()}, nil
}

// ReactivateResource restores a deactivated resource.
func (c *Client) ReactivateResource(ctx context.Context, resourceId int64) (*ledger.TxResult, error) {
	receipt, err := c.transact(ctx, c.resources, nil, "reactivateResource", big.NewInt(resourceId))
	if err != nil {
		return nil, err
	}
	return &ledger.TxResult{TxHash: receipt.TxHash.Hex()}, nil
}
