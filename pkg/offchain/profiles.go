package offchain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mygive/platform-core/pkg/models"
)

// PutProfile upserts the profile for a wallet. The wallet address on
// the record is normalized so reads under any casing find it.
func (s *Store) PutProfile(ctx context.Context, profile *models.UserProfile) error {
	profile.WalletAddress = NormalizeKey(profile.WalletAddress)
	if profile.WalletAddress == "" {
		return fmt.Errorf("profile wallet address is required")
	}
	profile.UpdatedAt = time.Now().UTC()

	value, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	return s.Put(ctx, CollectionProfiles, profile.WalletAddress, value)
}

// Profile retrieves a wallet's profile. A wallet with no profile yet
// yields (nil, nil).
func (s *Store) Profile(ctx context.Context, wallet string) (*models.UserProfile, error) {
	value, err := s.Get(ctx, CollectionProfiles, wallet)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var profile models.UserProfile
	if err := json.Unmarshal(value, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile for %s: %w", NormalizeKey(wallet), err)
	}
	return &profile, nil
}

// Profiles retrieves profiles for several wallets. Wallets with no
// profile are simply absent from the result, keyed by normalized
// address.
func (s *Store) Profiles(ctx context.Context, wallets []string) (map[string]*models.UserProfile, error) {
	values, err := s.List(ctx, CollectionProfiles, wallets)
	if err != nil {
		return nil, err
	}

	profiles := make(map[string]*models.UserProfile, len(values))
	for key, value := range values {
		var profile models.UserProfile
		if err := json.Unmarshal(value, &profile); err != nil {
			s.log.Warn("skipping undecodable profile", "key", key, "error", err)
			continue
		}
		profiles[key] = &profile
	}
	return profiles, nil
}
