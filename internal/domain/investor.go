package domain

// Investor is a market participant. Holdings is a per-asset share
// count, mutated only by Credit/Debit — which in turn are only called
// from order execution (credit on buy fill, debit on sell fill).
//
// Invariant: every value in Holdings is >= 0; a Debit that would
// violate this is rejected with ErrOutOfRange.
type Investor struct {
	InvestorID  string
	DisplayName string
	Holdings    map[string]uint64
}

func NewInvestor(investorID, displayName string) *Investor {
	return &Investor{
		InvestorID:  investorID,
		DisplayName: displayName,
		Holdings:    make(map[string]uint64),
	}
}

// Credit adds n shares of assetID to the investor's holdings, creating
// the entry with value n if it does not already exist.
func (inv *Investor) Credit(assetID string, n uint64) {
	inv.Holdings[assetID] += n
}

// CanDebit reports whether Debit(assetID, n) would currently succeed,
// without mutating anything. Used to pre-check the transactional
// boundary in OrderBook.TryMatch before any side is mutated.
func (inv *Investor) CanDebit(assetID string, n uint64) bool {
	held, ok := inv.Holdings[assetID]
	return ok && held >= n
}

// Debit removes n shares of assetID from the investor's holdings.
// Fails with ErrNotFound if the asset has no entry, and ErrOutOfRange
// if the stored count is less than n.
func (inv *Investor) Debit(assetID string, n uint64) error {
	held, ok := inv.Holdings[assetID]
	if !ok {
		return ErrNotFound
	}
	if held < n {
		return ErrOutOfRange
	}
	inv.Holdings[assetID] = held - n
	return nil
}
