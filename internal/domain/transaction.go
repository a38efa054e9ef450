package domain

import (
	"time"

	"github.com/google/uuid"
)

// Transaction is an immutable record of a fill. It is constructed only
// by OrderBook.TryMatch; every field is fully computed at construction,
// including a fresh UUIDv4 id and the wall-clock UTC instant of the
// match.
type Transaction struct {
	TransactionID string
	BuyingOrder   OrderSnapshot
	SellingOrder  OrderSnapshot
	TradedShares  uint64
	UnitPrice     Price
	Total         float64
	TradedAt      time.Time
}

// NewTransaction builds a Transaction from the post-fill snapshots of
// both sides. total is computed as a floating-point product; the
// engine applies no rounding.
func NewTransaction(buying, selling OrderSnapshot, tradedShares uint64, unitPrice Price) Transaction {
	return Transaction{
		TransactionID: uuid.New().String(),
		BuyingOrder:   buying,
		SellingOrder:  selling,
		TradedShares:  tradedShares,
		UnitPrice:     unitPrice,
		Total:         float64(tradedShares) * unitPrice.Float64(),
		TradedAt:      time.Now().UTC(),
	}
}
