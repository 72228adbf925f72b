package ledger

import (
	sdkmath "cosmossdk.io/math"
)

// ReleaseStage is the finalization of an account's pending entitlements
// across a caller-supplied asset list, computed against a single snapshot
// of the global counters taken at stage time.
type ReleaseStage struct {
	book    *Book
	account string

	// assets whose pending entitlement was positive at stage time, with
	// the avgPrice each row will carry after commit.
	released     []string
	newAvgPrices map[string]sdkmath.Int

	// Minted is the aggregate amount to mint, already pro-rata scaled.
	Minted sdkmath.Int
}

// StageRelease walks the supplied assets and sums their pending
// entitlements. When cumulative demand exceeded the cap, every row's
// avgPrice is rescaled by cap/demand inside the loop and the aggregate is
// rescaled once after it; both scalings deliberately mirror each other but
// are applied independently. When demand stayed at or under the cap the
// ratio clamps to exactly 1 and nothing is rescaled.
//
// Assets whose pending entitlement is already zero are skipped, which
// makes release idempotent per asset.
func (b *Book) StageRelease(account string, assets []string) *ReleaseStage {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Snapshot once at call start; commits of this stage never change the
	// counters, so the ratio is stable for the whole call.
	maxTokens := b.totalMaxTokens
	demand := b.totalCurrentTokens
	oversubscribed := demand.GT(maxTokens)

	stage := &ReleaseStage{
		book:         b,
		account:      account,
		newAvgPrices: make(map[string]sdkmath.Int),
		Minted:       sdkmath.ZeroInt(),
	}

	pending := sdkmath.ZeroInt()
	for _, asset := range assets {
		rec, ok := b.records[Key{Account: account, Asset: asset}]
		if !ok || !rec.TokensToMint.IsPositive() {
			continue
		}

		pending = pending.Add(rec.TokensToMint)

		newAvg := rec.AvgPrice
		if oversubscribed {
			newAvg = rec.AvgPrice.Mul(maxTokens).Quo(demand)
		}
		stage.released = append(stage.released, asset)
		stage.newAvgPrices[asset] = newAvg
	}

	if pending.IsPositive() {
		if oversubscribed {
			pending = pending.Mul(maxTokens).Quo(demand)
		}
		stage.Minted = pending
	}

	return stage
}

// Assets returns the assets this stage will touch, in input order.
func (s *ReleaseStage) Assets() []string {
	return s.released
}

// Commit zeroes the pending entitlement of every released row and writes
// the rescaled average prices. The rows' tokensToMint is reset exactly
// once; a later release of the same asset stages nothing.
func (s *ReleaseStage) Commit() map[string]Record {
	b := s.book
	b.mu.Lock()
	defer b.mu.Unlock()

	updated := make(map[string]Record, len(s.released))
	for _, asset := range s.released {
		rec := b.record(Key{Account: s.account, Asset: asset})
		rec.AvgPrice = s.newAvgPrices[asset]
		rec.TokensToMint = sdkmath.ZeroInt()
		updated[asset] = *rec
	}
	return updated
}
