package offchain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/mygive/platform-core/pkg/models"
)

const (
	receiptCounterKey  = "receipt_number"
	receiptCounterSeed = 1000
)

// receiptKey identifies a donor's receipt on one campaign. A repeat
// donation by the same donor overwrites the record with the cumulative
// latest state.
func receiptKey(campaignId int64, donor string) string {
	return fmt.Sprintf("donation_%d_%s", campaignId, NormalizeKey(donor))
}

// PutDonationReceipt persists the receipt record for a confirmed
// donation.
func (s *Store) PutDonationReceipt(ctx context.Context, receipt *models.DonationReceipt) error {
	receipt.Donor = NormalizeKey(receipt.Donor)
	if receipt.CreatedAt.IsZero() {
		receipt.CreatedAt = time.Now().UTC()
	}

	value, err := json.Marshal(receipt)
	if err != nil {
		return fmt.Errorf("failed to encode receipt: %w", err)
	}
	return s.Put(ctx, CollectionReceipts, receiptKey(receipt.CampaignId, receipt.Donor), value)
}

// DonationReceipt retrieves the receipt for (campaign, donor), or
// (nil, nil) when none exists.
func (s *Store) DonationReceipt(ctx context.Context, campaignId int64, donor string) (*models.DonationReceipt, error) {
	value, err := s.Get(ctx, CollectionReceipts, receiptKey(campaignId, donor))
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var receipt models.DonationReceipt
	if err := json.Unmarshal(value, &receipt); err != nil {
		return nil, fmt.Errorf("failed to decode receipt: %w", err)
	}
	return &receipt, nil
}

// NextReceiptNumber allocates the next sequential receipt number,
// formatted as RCP-000000. The counter starts at 1000 and is stored in
// the counters collection so numbering survives restarts.
func (s *Store) NextReceiptNumber(ctx context.Context) (string, error) {
	counter := int64(receiptCounterSeed)

	value, err := s.Get(ctx, CollectionCounters, receiptCounterKey)
	switch {
	case errors.Is(err, ErrNotFound):
		// First receipt ever; start from the seed.
	case err != nil:
		return "", err
	default:
		parsed, perr := strconv.ParseInt(string(value), 10, 64)
		if perr != nil {
			return "", fmt.Errorf("corrupt receipt counter %q: %w", string(value), perr)
		}
		counter = parsed
	}

	next := counter + 1
	if err := s.Put(ctx, CollectionCounters, receiptCounterKey, []byte(strconv.FormatInt(next, 10))); err != nil {
		return "", err
	}
	return fmt.Sprintf("RCP-%06d", next), nil
}
