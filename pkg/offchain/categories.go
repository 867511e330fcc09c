package offchain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

type categoryRecord struct {
	CampaignId int64  `json:"campaign_id"`
	Category   string `json:"category"`
}

func categoryKey(campaignId int64) string {
	return strconv.FormatInt(campaignId, 10)
}

// PutCampaignCategory records the category chosen for a campaign. The
// ledger does not store categories, so this mapping is the only place
// they live.
func (s *Store) PutCampaignCategory(ctx context.Context, campaignId int64, category string) error {
	value, err := json.Marshal(categoryRecord{CampaignId: campaignId, Category: category})
	if err != nil {
		return fmt.Errorf("failed to encode category: %w", err)
	}
	return s.Put(ctx, CollectionCategories, categoryKey(campaignId), value)
}

// CampaignCategory retrieves the category for one campaign, or "" when
// none was recorded.
func (s *Store) CampaignCategory(ctx context.Context, campaignId int64) (string, error) {
	value, err := s.Get(ctx, CollectionCategories, categoryKey(campaignId))
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	var record categoryRecord
	if err := json.Unmarshal(value, &record); err != nil {
		return "", fmt.Errorf("failed to decode category: %w", err)
	}
	return record.Category, nil
}

// CampaignCategories retrieves categories for several campaigns at
// once, keyed by campaign id. Campaigns with no recorded category are
// absent from the result.
func (s *Store) CampaignCategories(ctx context.Context, campaignIds []int64) (map[int64]string, error) {
	keys := make([]string, len(campaignIds))
	for i, id := range campaignIds {
		keys[i] = categoryKey(id)
	}

	values, err := s.List(ctx, CollectionCategories, keys)
	if err != nil {
		return nil, err
	}

	categories := make(map[int64]string, len(values))
	for key, value := range values {
		var record categoryRecord
		if err := json.Unmarshal(value, &record); err != nil {
			s.log.Warn("skipping undecodable category", "key", key, "error", err)
			continue
		}
		categories[record.CampaignId] = record.Category
	}
	return categories, nil
}
