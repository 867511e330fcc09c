package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mygive/platform-core/pkg/offchain"
)

func openTestBackend(t *testing.T) *Backend {
	t.Helper()
	backend, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })
	return backend
}

func TestPutGetRoundTrip(t *testing.T) {
	backend := openTestBackend(t)

	err := backend.Put(context.Background(), offchain.CollectionProfiles, "0xabc", []byte(`{"name":"a"}`))
	assert.NoError(t, err)

	value, err := backend.Get(context.Background(), offchain.CollectionProfiles, "0xabc")
	assert.NoError(t, err)
	assert.Equal(t, []byte(`{"name":"a"}`), value)
}

func TestPutOverwrites(t *testing.T) {
	backend := openTestBackend(t)

	assert.NoError(t, backend.Put(context.Background(), offchain.CollectionProfiles, "0xabc", []byte(`v1`)))
	assert.NoError(t, backend.Put(context.Background(), offchain.CollectionProfiles, "0xabc", []byte(`v2`)))

	value, err := backend.Get(context.Background(), offchain.CollectionProfiles, "0xabc")
	assert.NoError(t, err)
	assert.Equal(t, []byte(`v2`), value)
}

func TestGetMissingIsNotFound(t *testing.T) {
	backend := openTestBackend(t)

	_, err := backend.Get(context.Background(), offchain.CollectionProfiles, "0xnobody")
	assert.ErrorIs(t, err, offchain.ErrNotFound)
}

func TestCollectionsAreIsolated(t *testing.T) {
	backend := openTestBackend(t)

	assert.NoError(t, backend.Put(context.Background(), offchain.CollectionProfiles, "k", []byte(`profile`)))

	_, err := backend.Get(context.Background(), offchain.CollectionChat, "k")
	assert.ErrorIs(t, err, offchain.ErrNotFound)
}

func TestListReturnsOnlyPresentKeys(t *testing.T) {
	backend := openTestBackend(t)

	assert.NoError(t, backend.Put(context.Background(), offchain.CollectionProfiles, "0xaaa", []byte(`a`)))
	assert.NoError(t, backend.Put(context.Background(), offchain.CollectionProfiles, "0xbbb", []byte(`b`)))

	values, err := backend.List(context.Background(), offchain.CollectionProfiles, []string{"0xaaa", "0xbbb", "0xccc"})
	assert.NoError(t, err)
	assert.Len(t, values, 2)
	assert.Equal(t, []byte(`a`), values["0xaaa"])
	assert.Equal(t, []byte(`b`), values["0xbbb"])
}
