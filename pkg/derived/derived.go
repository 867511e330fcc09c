// Package derived computes UI-facing facts from raw ledger records.
// Every function is pure: the caller supplies the clock, no value here
// is ever persisted, and everything is recomputed on each read.
package derived

import (
	"math/big"
	"time"

	"github.com/mygive/platform-core/pkg/models"
)

const secondsPerDay = 86400

// DaysLeft returns the number of whole or partial days between now and
// the deadline, never negative. A deadline exactly now yields 0.
func DaysLeft(deadline, now time.Time) int64 {
	secs := deadline.Unix() - now.Unix()
	if secs <= 0 {
		return 0
	}
	return (secs + secondsPerDay - 1) / secondsPerDay
}

// ProgressPercent returns collected/target as a percentage capped at
// 100. A zero target yields 0 rather than dividing.
func ProgressPercent(collected, target *big.Int) float64 {
	if target == nil || target.Sign() == 0 {
		return 0
	}
	if collected == nil {
		return 0
	}
	ratio := new(big.Float).Quo(new(big.Float).SetInt(collected), new(big.Float).SetInt(target))
	pct, _ := new(big.Float).Mul(ratio, big.NewFloat(100)).Float64()
	if pct > 100 {
		return 100
	}
	return pct
}

// IsFullyFunded reports whether the collected amount has reached the
// target.
func IsFullyFunded(collected, target *big.Int) bool {
	if collected == nil || target == nil {
		return false
	}
	return collected.Cmp(target) >= 0
}

// IsExpired reports whether the deadline has passed.
func IsExpired(deadline, now time.Time) bool {
	return !now.Before(deadline)
}

// IsActive reports whether a campaign still accepts donations: not
// fully funded and not expired.
func IsActive(collected, target *big.Int, deadline, now time.Time) bool {
	return !IsFullyFunded(collected, target) && !IsExpired(deadline, now)
}

// TotalClaimed returns the quantity taken off a resource so far.
func TotalClaimed(r *models.Resource) int64 {
	return r.QuantityOriginal - r.QuantityAvailable
}

// AnnotateCampaign stamps the derived block onto a campaign from the
// supplied clock.
func AnnotateCampaign(c *models.Campaign, now time.Time) {
	c.Derived = models.CampaignDerived{
		DaysLeft:        DaysLeft(c.Deadline, now),
		ProgressPercent: ProgressPercent(c.CollectedWei, c.TargetWei),
		IsFullyFunded:   IsFullyFunded(c.CollectedWei, c.TargetWei),
		IsExpired:       IsExpired(c.Deadline, now),
		IsActive:        IsActive(c.CollectedWei, c.TargetWei, c.Deadline, now),
	}
}

// AnnotateResource stamps the derived totals onto a resource.
func AnnotateResource(r *models.Resource) {
	r.TotalClaimed = TotalClaimed(r)
}
