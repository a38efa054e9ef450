package domain

import (
	"fmt"
)

// Side is the order side.
type Side int

const (
	Buy Side = iota
	Sell
)

func (s Side) String() string {
	if s == Buy {
		return "BUY"
	}
	return "SELL"
}

// State is the order lifecycle state. It is monotonic: Open -> Closed,
// never the reverse.
type State int

const (
	Open State = iota
	Closed
)

func (s State) String() string {
	if s == Open {
		return "OPEN"
	}
	return "CLOSED"
}

// Order is the central entity. OrderID, Side, AssetID, Investor,
// Price and InitialShares are immutable after construction;
// PendingShares is monotonically non-increasing and State is
// monotonic. An order carries a direct reference to its submitting
// Investor's shared registry record, captured at construction time, so
// Buy/Sell can credit or debit it without a second registry lookup.
type Order struct {
	OrderID       string
	Side          Side
	AssetID       string
	Investor      *Investor
	Price         Price
	InitialShares uint64
	PendingShares uint64
	State         State
}

// NewOrder creates an order in state Open with PendingShares ==
// InitialShares. initialShares must be > 0.
func NewOrder(orderID string, side Side, assetID string, investor *Investor, price Price, initialShares uint64) *Order {
	return &Order{
		OrderID:       orderID,
		Side:          side,
		AssetID:       assetID,
		Investor:      investor,
		Price:         price,
		InitialShares: initialShares,
		PendingShares: initialShares,
		State:         Open,
	}
}

func (o *Order) String() string {
	return fmt.Sprintf(
		"Order{ID: %s, Side: %s, AssetID: %s, Price: %v, Pending: %d/%d, State: %s}",
		o.OrderID, o.Side, o.AssetID, o.Price.Float64(), o.PendingShares, o.InitialShares, o.State,
	)
}

// Buy debits n shares of pending quantity from a BUY order and credits
// the submitting investor's holdings for AssetID by n. Fails with
// ErrOutOfRange if n > PendingShares. n must be > 0 — the book never
// calls this with a zero quantity.
func (o *Order) Buy(n uint64) error {
	if o.Side != Buy {
		return ErrInvalidState
	}
	if n > o.PendingShares {
		return ErrOutOfRange
	}
	o.Investor.Credit(o.AssetID, n)
	o.PendingShares -= n
	if o.PendingShares == 0 {
		o.State = Closed
	}
	return nil
}

// Sell debits n shares of pending quantity from a SELL order and
// debits the submitting investor's holdings for AssetID by n. Fails
// with ErrOutOfRange if n > PendingShares, or if the investor's
// holding for AssetID is insufficient — this is the only inventory
// check in the engine.
func (o *Order) Sell(n uint64) error {
	if o.Side != Sell {
		return ErrInvalidState
	}
	if n > o.PendingShares {
		return ErrOutOfRange
	}
	if !o.Investor.CanDebit(o.AssetID, n) {
		return ErrOutOfRange
	}
	if err := o.Investor.Debit(o.AssetID, n); err != nil {
		return err
	}
	o.PendingShares -= n
	if o.PendingShares == 0 {
		o.State = Closed
	}
	return nil
}

// Snapshot copies the fields a Transaction needs to describe this
// order's post-fill state, without aliasing the live *Order — later
// mutations to o must never be visible through a previously taken
// Snapshot.
func (o *Order) Snapshot() OrderSnapshot {
	return OrderSnapshot{
		OrderID:       o.OrderID,
		Side:          o.Side,
		AssetID:       o.AssetID,
		InvestorID:    o.Investor.InvestorID,
		Price:         o.Price,
		PendingShares: o.PendingShares,
		State:         o.State,
	}
}

// OrderSnapshot is an immutable, detached view of an Order at the
// moment a Transaction was constructed.
type OrderSnapshot struct {
	OrderID       string
	Side          Side
	AssetID       string
	InvestorID    string
	Price         Price
	PendingShares uint64
	State         State
}
