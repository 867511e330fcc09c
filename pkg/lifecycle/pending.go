package lifecycle

import (
	"math/big"
	"sync"
)

// pendingState tracks amounts that have been submitted to the ledger
// but not yet confirmed, so reads taken mid-flight can overlay them
// instead of showing stale totals. Entries live only for the duration
// of one confirmed-or-failed transaction.
type pendingState struct {
	mu        sync.Mutex
	donations map[int64]*big.Int
	claims    map[int64]int64
}

func newPendingState() *pendingState {
	return &pendingState{
		donations: make(map[int64]*big.Int),
		claims:    make(map[int64]int64),
	}
}

// addDonation registers an in-flight donation and returns its release
// func. Release is safe to call exactly once, on confirmation or
// failure alike.
func (p *pendingState) addDonation(campaignId int64, wei *big.Int) func() {
	amount := new(big.Int).Set(wei)

	p.mu.Lock()
	if existing, ok := p.donations[campaignId]; ok {
		existing.Add(existing, amount)
	} else {
		p.donations[campaignId] = new(big.Int).Set(amount)
	}
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		if existing, ok := p.donations[campaignId]; ok {
			existing.Sub(existing, amount)
			if existing.Sign() <= 0 {
				delete(p.donations, campaignId)
			}
		}
	}
}

// addClaim registers an in-flight claim and returns its release func.
func (p *pendingState) addClaim(resourceId, amount int64) func() {
	p.mu.Lock()
	p.claims[resourceId] += amount
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.claims[resourceId] -= amount
		if p.claims[resourceId] <= 0 {
			delete(p.claims, resourceId)
		}
	}
}

// donationOverlay reports the unconfirmed donation total for a
// campaign, or nil when nothing is in flight.
func (p *pendingState) donationOverlay(campaignId int64) *big.Int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if existing, ok := p.donations[campaignId]; ok && existing.Sign() > 0 {
		return new(big.Int).Set(existing)
	}
	return nil
}

// claimOverlay reports the unconfirmed claimed quantity for a resource.
func (p *pendingState) claimOverlay(resourceId int64) int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.claims[resourceId]
}
