// Package notifications maintains a bounded per-user journal of
// platform events on top of the off-chain store.
package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mygive/platform-core/pkg/models"
	"github.com/mygive/platform-core/pkg/offchain"
)

// maxEntries bounds the journal so it never grows past the most recent
// entries for a user.
const maxEntries = 50

// Notification types recorded by the coordinator.
const (
	TypeDonationReceived = "donation_received"
	TypeDonationMade     = "donation_made"
	TypeClaimReceived    = "claim_received"
	TypeClaimCompleted   = "claim_completed"
	TypeClaimCancelled   = "claim_cancelled"
	TypeCampaignUpdate   = "campaign_update"
	TypeChatMessage      = "chat_message"
)

// Journal is the per-user notification log. Each user's journal is one
// document in the off-chain store, newest entry first.
type Journal struct {
	store *offchain.Store
	log   *slog.Logger
}

// NewJournal creates a Journal over the given store.
func NewJournal(store *offchain.Store, log *slog.Logger) *Journal {
	return &Journal{store: store, log: log}
}

func (j *Journal) load(ctx context.Context, owner string) ([]models.Notification, error) {
	value, err := j.store.Get(ctx, offchain.CollectionNotifications, owner)
	if errors.Is(err, offchain.ErrNotFound) {
		return []models.Notification{}, nil
	}
	if err != nil {
		return nil, err
	}

	var entries []models.Notification
	if err := json.Unmarshal(value, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode notification journal: %w", err)
	}
	return entries, nil
}

func (j *Journal) save(ctx context.Context, owner string, entries []models.Notification) error {
	value, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode notification journal: %w", err)
	}
	return j.store.Put(ctx, offchain.CollectionNotifications, owner, value)
}

// Append records a new notification for owner. The newest entry goes to
// the front and the oldest entries beyond the cap are evicted.
func (j *Journal) Append(ctx context.Context, owner string, notification models.Notification) error {
	entries, err := j.load(ctx, owner)
	if err != nil {
		return err
	}

	notification.Id = uuid.New().String()
	notification.Read = false
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now().UTC()
	}

	entries = append([]models.Notification{notification}, entries...)
	if len(entries) > maxEntries {
		entries = entries[:maxEntries]
	}

	return j.save(ctx, owner, entries)
}

// List retrieves owner's journal, newest first. A user with no journal
// yet gets an empty slice.
func (j *Journal) List(ctx context.Context, owner string) ([]models.Notification, error) {
	return j.load(ctx, owner)
}

// UnreadCount reports how many entries in owner's journal are unread.
// It is recomputed from the journal on every call rather than stored.
func (j *Journal) UnreadCount(ctx context.Context, owner string) (int, error) {
	entries, err := j.load(ctx, owner)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, entry := range entries {
		if !entry.Read {
			count++
		}
	}
	return count, nil
}

// MarkRead marks one entry read. Unknown ids are a no-op.
func (j *Journal) MarkRead(ctx context.Context, owner, id string) error {
	entries, err := j.load(ctx, owner)
	if err != nil {
		return err
	}

	changed := false
	for i := range entries {
		if entries[i].Id == id && !entries[i].Read {
			entries[i].Read = true
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return j.save(ctx, owner, entries)
}

// MarkAllRead marks every entry in owner's journal read.
func (j *Journal) MarkAllRead(ctx context.Context, owner string) error {
	entries, err := j.load(ctx, owner)
	if err != nil {
		return err
	}

	changed := false
	for i := range entries {
		if !entries[i].Read {
			entries[i].Read = true
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return j.save(ctx, owner, entries)
}

// Remove deletes one entry from owner's journal. Unknown ids are a
// no-op.
func (j *Journal) Remove(ctx context.Context, owner, id string) error {
	entries, err := j.load(ctx, owner)
	if err != nil {
		return err
	}

	kept := entries[:0]
	for _, entry := range entries {
		if entry.Id != id {
			kept = append(kept, entry)
		}
	}
	if len(kept) == len(entries) {
		return nil
	}
	return j.save(ctx, owner, kept)
}

// Clear empties owner's journal.
func (j *Journal) Clear(ctx context.Context, owner string) error {
	return j.save(ctx, owner, []models.Notification{})
}

// Notify is the fire-and-forget entry point used by the coordinator.
// Journal failures are logged and swallowed because notifications must
// never fail the operation that triggered them.
func (j *Journal) Notify(ctx context.Context, owner string, notification models.Notification) {
	if err := j.Append(ctx, owner, notification); err != nil {
		j.log.Warn("failed to record notification",
			"owner", offchain.NormalizeKey(owner), "type", notification.Type, "error", err)
	}
}
