package lifecycle

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPendingDonationOverlay(t *testing.T) {
	pending := newPendingState()

	assert.Nil(t, pending.donationOverlay(1))

	releaseA := pending.addDonation(1, big.NewInt(100))
	releaseB := pending.addDonation(1, big.NewInt(50))

	assert.Equal(t, big.NewInt(150), pending.donationOverlay(1))
	assert.Nil(t, pending.donationOverlay(2))

	releaseA()
	assert.Equal(t, big.NewInt(50), pending.donationOverlay(1))

	releaseB()
	assert.Nil(t, pending.donationOverlay(1))
}

func TestPendingClaimOverlay(t *testing.T) {
	pending := newPendingState()

	assert.Zero(t, pending.claimOverlay(1))

	release := pending.addClaim(1, 5)
	pending.addClaim(1, 3)

	assert.Equal(t, int64(8), pending.claimOverlay(1))

	release()
	assert.Equal(t, int64(3), pending.claimOverlay(1))
}

func TestReleaseSurvivesCallerMutatingAmount(t *testing.T) {
	pending := newPendingState()

	amount := big.NewInt(100)
	release := pending.addDonation(1, amount)

	// The tracker must hold its own copy.
	amount.SetInt64(1)

	assert.Equal(t, big.NewInt(100), pending.donationOverlay(1))
	release()
	assert.Nil(t, pending.donationOverlay(1))
}
