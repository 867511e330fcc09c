package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mygive/platform-core/pkg/api"
	"github.com/mygive/platform-core/pkg/ledger"
	"github.com/mygive/platform-core/pkg/ledger/mocks"
	"github.com/mygive/platform-core/pkg/lifecycle"
	"github.com/mygive/platform-core/pkg/models"
	"github.com/mygive/platform-core/pkg/notifications"
	"github.com/mygive/platform-core/pkg/offchain"
)

func newTestServer(client *mocks.Client) (*httptest.Server, *offchain.Store) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := offchain.New(nil, offchain.NewMemoryBackend(), log)
	journal := notifications.NewJournal(store, log)
	coordinator := lifecycle.New(client, store, journal, log)

	router := NewRouter(Deps{
		Coordinator: coordinator,
		Store:       store,
		Journal:     journal,
		Log:         log,
	})
	return httptest.NewServer(router), store
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) api.Error {
	t.Helper()
	defer resp.Body.Close()
	var out api.Error
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestHealthReportsDegradedLedger(t *testing.T) {
	client := new(mocks.Client)
	client.On("Ready").Return(false)
	client.On("Account").Return("")

	server, _ := newTestServer(client)
	defer server.Close()

	resp, err := http.Get(server.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var health struct {
		Status          string `json:"status"`
		LedgerConnected bool   `json:"ledger_connected"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "ok", health.Status)
	assert.False(t, health.LedgerConnected)
}

func TestDonateStatusMapping(t *testing.T) {
	campaign := &models.Campaign{
		Id:       1,
		Owner:    "0xowner",
		Title:    "School supplies",
		Deadline: time.Now().Add(72 * time.Hour),
	}

	t.Run("Created On Success", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("Ready").Return(true)
		client.On("Account").Return("0xdonor")
		client.On("Campaign", mock.Anything, int64(1)).Return(campaign, nil)
		client.On("Donate", mock.Anything, int64(1), "1.5").
			Return(&ledger.TxResult{TxHash: "0xabc"}, nil)

		server, _ := newTestServer(client)
		defer server.Close()

		resp := postJSON(t, server.URL+"/campaigns/1/donations", api.NewDonation{Amount: "1.5"})
		defer resp.Body.Close()

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var receipt api.TxReceipt
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&receipt))
		assert.Equal(t, "0xabc", receipt.TxHash)
	})

	t.Run("Validation Failure Is 400", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("Ready").Return(true)
		client.On("Account").Return("0xdonor")

		server, _ := newTestServer(client)
		defer server.Close()

		resp := postJSON(t, server.URL+"/campaigns/1/donations", api.NewDonation{Amount: "-1"})

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, string(lifecycle.KindValidation), decodeError(t, resp).Kind)
	})

	t.Run("Ledger Revert Is 422", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("Ready").Return(true)
		client.On("Account").Return("0xdonor")
		client.On("Campaign", mock.Anything, int64(1)).Return(campaign, nil)
		client.On("Donate", mock.Anything, int64(1), "1").
			Return(nil, &ledger.TxError{Reason: "execution reverted"})

		server, _ := newTestServer(client)
		defer server.Close()

		resp := postJSON(t, server.URL+"/campaigns/1/donations", api.NewDonation{Amount: "1"})

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, string(lifecycle.KindTransaction), decodeError(t, resp).Kind)
	})

	t.Run("Ledger Down Is 503", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("Ready").Return(false)

		server, _ := newTestServer(client)
		defer server.Close()

		resp := postJSON(t, server.URL+"/campaigns/1/donations", api.NewDonation{Amount: "1"})

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, string(lifecycle.KindNotReady), decodeError(t, resp).Kind)
	})
}

func TestCancelClaimTerminalIs409(t *testing.T) {
	cancelled := models.Claim{Index: 0, ResourceId: 2, Claimer: "0xclaimer", Amount: 5, IsCancelled: true}
	resource := &models.Resource{
		Id: 2, Owner: "0xowner", Title: "Winter coats",
		QuantityAvailable: 20, QuantityOriginal: 20, IsActive: true,
		Claims: []models.Claim{cancelled},
	}

	client := new(mocks.Client)
	client.On("Ready").Return(true)
	client.On("Account").Return("0xclaimer")
	client.On("Resource", mock.Anything, int64(2)).Return(resource, nil)

	server, _ := newTestServer(client)
	defer server.Close()

	resp := postJSON(t, server.URL+"/resources/2/claims/0/cancel", struct{}{})

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, string(lifecycle.KindTerminal), decodeError(t, resp).Kind)
	client.AssertNotCalled(t, "CancelClaim", mock.Anything, mock.Anything, mock.Anything)
}

func TestCampaignNotFoundIs404(t *testing.T) {
	client := new(mocks.Client)
	client.On("Campaign", mock.Anything, int64(99)).Return(nil, ledger.ErrNotFound)

	server, _ := newTestServer(client)
	defer server.Close()

	resp, err := http.Get(server.URL + "/campaigns/99")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProfileRoundTripOverHTTP(t *testing.T) {
	client := new(mocks.Client)

	server, _ := newTestServer(client)
	defer server.Close()

	req, err := http.NewRequest(http.MethodPut, server.URL+"/profiles/0xAbC",
		bytes.NewReader([]byte(`{"name":"Amina","location":"Nairobi"}`)))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(server.URL + "/profiles/0xabc")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var profile api.Profile
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&profile))
	assert.Equal(t, "Amina", profile.Name)
	assert.Equal(t, "0xabc", profile.WalletAddress)
}

func TestNotificationsOverHTTP(t *testing.T) {
	client := new(mocks.Client)

	server, store := newTestServer(client)
	defer server.Close()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	journal := notifications.NewJournal(store, log)
	require.NoError(t, journal.Append(context.Background(), "0xowner", models.Notification{
		Type: notifications.TypeDonationReceived, Title: "New donation",
	}))

	resp, err := http.Get(server.URL + "/notifications/0xowner")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var entries []api.Notification
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "New donation", entries[0].Title)

	resp, err = http.Get(server.URL + "/notifications/0xowner/unread")
	require.NoError(t, err)
	defer resp.Body.Close()

	var unread api.UnreadCount
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&unread))
	assert.Equal(t, 1, unread.Count)
}
