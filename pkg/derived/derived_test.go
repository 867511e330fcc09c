package derived

import (
	"math/big"
	"testing"
	"time"

	"github.com/mygive/platform-core/pkg/models"
	"github.com/stretchr/testify/assert"
)

func eth(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), big.NewInt(1e18))
}

func TestDaysLeft(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	t.Run("Deadline Now", func(t *testing.T) {
		assert.Equal(t, int64(0), DaysLeft(now, now))
	})

	t.Run("Deadline Passed", func(t *testing.T) {
		assert.Equal(t, int64(0), DaysLeft(now.Add(-time.Hour), now))
	})

	t.Run("Exact Days", func(t *testing.T) {
		assert.Equal(t, int64(3), DaysLeft(now.Add(3*24*time.Hour), now))
	})

	t.Run("Partial Day Rounds Up", func(t *testing.T) {
		assert.Equal(t, int64(1), DaysLeft(now.Add(time.Second), now))
		assert.Equal(t, int64(2), DaysLeft(now.Add(24*time.Hour+time.Second), now))
	})
}

func TestProgressPercent(t *testing.T) {
	t.Run("Zero Target", func(t *testing.T) {
		assert.Equal(t, float64(0), ProgressPercent(eth(5), big.NewInt(0)))
	})

	t.Run("Half Funded", func(t *testing.T) {
		assert.InDelta(t, 50.0, ProgressPercent(eth(5), eth(10)), 0.0001)
	})

	t.Run("Capped At 100", func(t *testing.T) {
		assert.Equal(t, 100.0, ProgressPercent(eth(25), eth(10)))
	})

	t.Run("Non Decreasing Over Donations", func(t *testing.T) {
		target := eth(10)
		collected := big.NewInt(0)
		prev := float64(0)
		for _, d := range []int64{1, 2, 3, 4} {
			collected = new(big.Int).Add(collected, eth(d))
			pct := ProgressPercent(collected, target)
			assert.GreaterOrEqual(t, pct, prev)
			prev = pct
		}
	})
}

func TestAnnotateCampaign(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	t.Run("Fully Funded Is Inactive Regardless Of Days Left", func(t *testing.T) {
		c := &models.Campaign{
			TargetWei:    eth(10),
			CollectedWei: eth(10), // donations of 4 and 6
			Deadline:     now.Add(30 * 24 * time.Hour),
		}
		AnnotateCampaign(c, now)
		assert.True(t, c.Derived.IsFullyFunded)
		assert.False(t, c.Derived.IsActive)
		assert.False(t, c.Derived.IsExpired)
		assert.Equal(t, int64(30), c.Derived.DaysLeft)
	})

	t.Run("Expired Is Inactive", func(t *testing.T) {
		c := &models.Campaign{
			TargetWei:    eth(10),
			CollectedWei: eth(1),
			Deadline:     now.Add(-time.Hour),
		}
		AnnotateCampaign(c, now)
		assert.True(t, c.Derived.IsExpired)
		assert.False(t, c.Derived.IsActive)
		assert.Equal(t, int64(0), c.Derived.DaysLeft)
	})

	t.Run("Underfunded Before Deadline Is Active", func(t *testing.T) {
		c := &models.Campaign{
			TargetWei:    eth(10),
			CollectedWei: eth(4),
			Deadline:     now.Add(24 * time.Hour),
		}
		AnnotateCampaign(c, now)
		assert.True(t, c.Derived.IsActive)
		assert.InDelta(t, 40.0, c.Derived.ProgressPercent, 0.0001)
	})
}

func TestAnnotateResource(t *testing.T) {
	r := &models.Resource{QuantityOriginal: 20, QuantityAvailable: 15}
	AnnotateResource(r)
	assert.Equal(t, int64(5), r.TotalClaimed)
}
