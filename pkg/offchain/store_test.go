package offchain

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mygive/platform-core/pkg/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// unreachableBackend fails every call, standing in for a remote store
// that is down or misconfigured.
type unreachableBackend struct{}

func (unreachableBackend) Get(ctx context.Context, collection, key string) ([]byte, error) {
	return nil, errors.New("connection refused")
}

func (unreachableBackend) Put(ctx context.Context, collection, key string, value []byte) error {
	return errors.New("connection refused")
}

func (unreachableBackend) List(ctx context.Context, collection string, keys []string) (map[string][]byte, error) {
	return nil, errors.New("connection refused")
}

func TestPutSucceedsWhenRemoteUnreachable(t *testing.T) {
	store := New(unreachableBackend{}, NewMemoryBackend(), testLogger())

	err := store.Put(context.Background(), CollectionProfiles, "0xABC", []byte(`{"name":"a"}`))
	assert.NoError(t, err)

	value, err := store.Get(context.Background(), CollectionProfiles, "0xabc")
	assert.NoError(t, err)
	assert.Equal(t, []byte(`{"name":"a"}`), value)
}

func TestGetPrefersRemoteAndRefreshesLocal(t *testing.T) {
	remote := NewMemoryBackend()
	local := NewMemoryBackend()
	store := New(remote, local, testLogger())

	assert.NoError(t, local.Put(context.Background(), CollectionProfiles, "0xabc", []byte(`stale`)))
	assert.NoError(t, remote.Put(context.Background(), CollectionProfiles, "0xabc", []byte(`fresh`)))

	value, err := store.Get(context.Background(), CollectionProfiles, "0xABC")
	assert.NoError(t, err)
	assert.Equal(t, []byte(`fresh`), value)

	refreshed, err := local.Get(context.Background(), CollectionProfiles, "0xabc")
	assert.NoError(t, err)
	assert.Equal(t, []byte(`fresh`), refreshed)
}

func TestGetFallsBackToLocalOnRemoteMiss(t *testing.T) {
	remote := NewMemoryBackend()
	local := NewMemoryBackend()
	store := New(remote, local, testLogger())

	assert.NoError(t, local.Put(context.Background(), CollectionProfiles, "0xabc", []byte(`cached`)))

	value, err := store.Get(context.Background(), CollectionProfiles, "0xabc")
	assert.NoError(t, err)
	assert.Equal(t, []byte(`cached`), value)
}

func TestGetMissOnBothSidesIsNotFound(t *testing.T) {
	store := New(NewMemoryBackend(), NewMemoryBackend(), testLogger())

	_, err := store.Get(context.Background(), CollectionProfiles, "0xnobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListMergesRemoteAndLocal(t *testing.T) {
	remote := NewMemoryBackend()
	local := NewMemoryBackend()
	store := New(remote, local, testLogger())

	assert.NoError(t, remote.Put(context.Background(), CollectionProfiles, "0xaaa", []byte(`a`)))
	assert.NoError(t, local.Put(context.Background(), CollectionProfiles, "0xbbb", []byte(`b`)))

	values, err := store.List(context.Background(), CollectionProfiles, []string{"0xAAA", "0xBBB", "0xccc"})
	assert.NoError(t, err)
	assert.Len(t, values, 2)
	assert.Equal(t, []byte(`a`), values["0xaaa"])
	assert.Equal(t, []byte(`b`), values["0xbbb"])
}

func TestProfileRoundTripNormalizesWallet(t *testing.T) {
	store := New(nil, NewMemoryBackend(), testLogger())

	err := store.PutProfile(context.Background(), &models.UserProfile{
		WalletAddress: "0xAbCd",
		Name:          "Amina",
	})
	assert.NoError(t, err)

	profile, err := store.Profile(context.Background(), "0xABCD")
	assert.NoError(t, err)
	assert.NotNil(t, profile)
	assert.Equal(t, "0xabcd", profile.WalletAddress)
	assert.Equal(t, "Amina", profile.Name)
}

func TestProfileMissingIsNilNotError(t *testing.T) {
	store := New(nil, NewMemoryBackend(), testLogger())

	profile, err := store.Profile(context.Background(), "0xnobody")
	assert.NoError(t, err)
	assert.Nil(t, profile)
}

func TestChatThreadAppendsInOrder(t *testing.T) {
	store := New(nil, NewMemoryBackend(), testLogger())

	first, err := store.AppendChatMessage(context.Background(), 7, "0", "0xOwner", "hello")
	assert.NoError(t, err)
	assert.NotEmpty(t, first.Id)

	_, err = store.AppendChatMessage(context.Background(), 7, "0", "0xClaimer", "hi back")
	assert.NoError(t, err)

	thread, err := store.ChatMessages(context.Background(), 7, "0")
	assert.NoError(t, err)
	assert.Len(t, thread, 2)
	assert.Equal(t, "hello", thread[0].Message)
	assert.Equal(t, "hi back", thread[1].Message)
	assert.Equal(t, "0xowner", thread[0].Sender)

	// Threads are scoped per claim.
	other, err := store.ChatMessages(context.Background(), 7, "1")
	assert.NoError(t, err)
	assert.Empty(t, other)
}

func TestCampaignCategories(t *testing.T) {
	store := New(nil, NewMemoryBackend(), testLogger())

	assert.NoError(t, store.PutCampaignCategory(context.Background(), 1, "Education"))
	assert.NoError(t, store.PutCampaignCategory(context.Background(), 2, "Health"))

	category, err := store.CampaignCategory(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, "Education", category)

	missing, err := store.CampaignCategory(context.Background(), 99)
	assert.NoError(t, err)
	assert.Equal(t, "", missing)

	categories, err := store.CampaignCategories(context.Background(), []int64{1, 2, 99})
	assert.NoError(t, err)
	assert.Len(t, categories, 2)
	assert.Equal(t, "Health", categories[2])
}

func TestReceiptNumbersAreSequentialFromSeed(t *testing.T) {
	store := New(nil, NewMemoryBackend(), testLogger())

	first, err := store.NextReceiptNumber(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "RCP-001001", first)

	second, err := store.NextReceiptNumber(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "RCP-001002", second)
}

func TestDonationReceiptRoundTrip(t *testing.T) {
	store := New(nil, NewMemoryBackend(), testLogger())

	err := store.PutDonationReceipt(context.Background(), &models.DonationReceipt{
		ReceiptNumber: "RCP-001001",
		CampaignId:    3,
		Donor:         "0xDoNoR",
		Amount:        "1.5",
	})
	assert.NoError(t, err)

	receipt, err := store.DonationReceipt(context.Background(), 3, "0xdonor")
	assert.NoError(t, err)
	assert.NotNil(t, receipt)
	assert.Equal(t, "RCP-001001", receipt.ReceiptNumber)
	assert.Equal(t, "0xdonor", receipt.Donor)
	assert.False(t, receipt.CreatedAt.IsZero())
}
