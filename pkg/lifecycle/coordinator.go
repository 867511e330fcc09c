// Package lifecycle sequences multi-step platform operations across the
// ledger and the off-chain store. Every mutation validates against a
// fresh ledger read, submits exactly one transaction, and only then
// touches off-chain records, so a failure can never leave metadata for
// state the ledger does not have.
package lifecycle

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/mygive/platform-core/pkg/ledger"
	"github.com/mygive/platform-core/pkg/notifications"
	"github.com/mygive/platform-core/pkg/offchain"
)

// Coordinator owns the operation sequencing. It is safe for concurrent
// use; in-flight transaction amounts are tracked so concurrent reads
// can overlay them.
type Coordinator struct {
	ledger  ledger.Client
	store   *offchain.Store
	journal *notifications.Journal
	pending *pendingState
	log     *slog.Logger

	// now is swappable in tests.
	now func() time.Time
}

// New creates a Coordinator over the given ledger client, store and
// notification journal.
func New(client ledger.Client, store *offchain.Store, journal *notifications.Journal, log *slog.Logger) *Coordinator {
	return &Coordinator{
		ledger:  client,
		store:   store,
		journal: journal,
		pending: newPendingState(),
		log:     log,
		now:     time.Now,
	}
}

// Ready reports whether ledger-backed operations can be served.
func (c *Coordinator) Ready() bool { return c.ledger.Ready() }

// Account returns the connected signing identity, normalized.
func (c *Coordinator) Account() string {
	return offchain.NormalizeKey(c.ledger.Account())
}

func (c *Coordinator) requireSigner() error {
	if !c.ledger.Ready() || c.ledger.Account() == "" {
		return notReadyErr()
	}
	return nil
}

// sameIdentity compares two wallet strings case-insensitively.
func sameIdentity(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// VerificationStatus reports a wallet's ledger-side verification flags.
type VerificationStatus struct {
	Organizer bool
	Donor     bool
}

// Verification reads both verification registries for one wallet.
func (c *Coordinator) Verification(ctx context.Context, wallet string) (*VerificationStatus, error) {
	organizer, err := c.ledger.IsOrganizerVerified(ctx, wallet)
	if err != nil {
		return nil, classify(err, "failed to read organizer verification")
	}
	donor, err := c.ledger.IsDonorVerified(ctx, wallet)
	if err != nil {
		return nil, classify(err, "failed to read donor verification")
	}
	return &VerificationStatus{Organizer: organizer, Donor: donor}, nil
}
