// Package book holds the per-asset order book: two price-priority
// queues and the matching algorithm that sweeps them.
//
// Bids and asks are kept in two github.com/tidwall/btree trees sorted
// by opposite comparators — bids greatest-first, asks least-first —
// so the best resting order on either side is always the tree's
// minimum element, rather than maintaining two different lookup
// shapes for the two sides.
package book

import (
	"github.com/tidwall/btree"

	"bourse/internal/domain"
)

// PriceLevel groups every resting order at one price, FIFO by arrival:
// appended on insert, popped from the front once that order is fully
// filled (a partially filled front order stays at the front).
type PriceLevel struct {
	Price  domain.Price
	Orders []*domain.Order
}

type priceLevels = btree.BTreeG[*PriceLevel]

// OrderBook is the per-asset container holding both price-priority
// queues and the log of transactions it has produced.
type OrderBook struct {
	AssetID string

	bids *priceLevels // sorted greatest price first
	asks *priceLevels // sorted least price first

	TransactionLog []domain.Transaction
}

// NewOrderBook constructs an empty book for assetID.
func NewOrderBook(assetID string) *OrderBook {
	bids := btree.NewBTreeG(func(a, b *PriceLevel) bool {
		return a.Price.Greater(b.Price)
	})
	asks := btree.NewBTreeG(func(a, b *PriceLevel) bool {
		return a.Price.Less(b.Price)
	})
	return &OrderBook{
		AssetID: assetID,
		bids:    bids,
		asks:    asks,
	}
}

// Append inserts an OPEN order into the side queue matching its Side.
// Fails with ErrInvalidAsset if order.AssetID doesn't match the book's,
// and ErrInvalidState if the order isn't OPEN. Both checks happen
// before any mutation, so a failing Append leaves the book untouched.
func (b *OrderBook) Append(order *domain.Order) error {
	if order.AssetID != b.AssetID {
		return domain.ErrInvalidAsset
	}
	if order.State != domain.Open {
		return domain.ErrInvalidState
	}

	levels := b.levelsFor(order.Side)
	key := &PriceLevel{Price: order.Price}
	if level, ok := levels.GetMut(key); ok {
		level.Orders = append(level.Orders, order)
		return nil
	}
	levels.Set(&PriceLevel{Price: order.Price, Orders: []*domain.Order{order}})
	return nil
}

func (b *OrderBook) levelsFor(side domain.Side) *priceLevels {
	if side == domain.Buy {
		return b.bids
	}
	return b.asks
}

// BidLevels returns the resting buy-side price levels, greatest price
// first. Intended for tests and introspection, not the match loop.
func (b *OrderBook) BidLevels() []*PriceLevel {
	return b.bids.Items()
}

// AskLevels returns the resting sell-side price levels, least price
// first. Intended for tests and introspection, not the match loop.
func (b *OrderBook) AskLevels() []*PriceLevel {
	return b.asks.Items()
}

// TryMatch attempts exactly one fill. Fails with ErrNoMatch if either
// queue is empty or the best bid doesn't cross the best ask. Fails
// with a *domain.MatchingError wrapping ErrOutOfRange if the fill
// can't be applied without violating seller inventory — in that case
// neither order is mutated at all (the only transactional boundary in
// the engine).
func (b *OrderBook) TryMatch() (domain.Transaction, error) {
	bestBid, bidOK := b.bids.MinMut()
	bestAsk, askOK := b.asks.MinMut()
	if !bidOK || !askOK {
		return domain.Transaction{}, domain.ErrNoMatch
	}
	if bestBid.Price.Less(bestAsk.Price) {
		return domain.Transaction{}, domain.ErrNoMatch
	}

	buyOrder := bestBid.Orders[0]
	sellOrder := bestAsk.Orders[0]
	unitPrice := buyOrder.Price
	tradedShares := min(buyOrder.PendingShares, sellOrder.PendingShares)

	// Pre-check the only failure mode (seller inventory) before
	// mutating anything, so a failed match never partially applies.
	if !sellOrder.Investor.CanDebit(sellOrder.AssetID, tradedShares) {
		return domain.Transaction{}, &domain.MatchingError{Inner: domain.ErrOutOfRange}
	}

	if err := buyOrder.Buy(tradedShares); err != nil {
		return domain.Transaction{}, &domain.MatchingError{Inner: err}
	}
	if err := sellOrder.Sell(tradedShares); err != nil {
		return domain.Transaction{}, &domain.MatchingError{Inner: err}
	}

	if buyOrder.State == domain.Closed {
		b.popFront(b.bids, bestBid)
	}
	if sellOrder.State == domain.Closed {
		b.popFront(b.asks, bestAsk)
	}

	txn := domain.NewTransaction(buyOrder.Snapshot(), sellOrder.Snapshot(), tradedShares, unitPrice)
	b.TransactionLog = append(b.TransactionLog, txn)
	return txn, nil
}

// popFront removes the front (earliest arrived) order from level and
// deletes the level entirely once it's empty.
func (b *OrderBook) popFront(levels *priceLevels, level *PriceLevel) {
	level.Orders = level.Orders[1:]
	if len(level.Orders) == 0 {
		levels.Delete(level)
	}
}
