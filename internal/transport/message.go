// Package transport holds the narrow external-bus boundary the
// matching core never crosses directly: wire payload parsing (JSON)
// and the concrete bus adapter. Nothing in internal/domain or
// internal/book imports this package.
package transport

import (
	"encoding/json"
	"errors"
	"time"

	"bourse/internal/domain"
)

// Topic names for the orders and transactions buses.
const (
	OrdersTopic       = "orders_topic"
	TransactionsTopic = "transactions_topic"
)

var (
	ErrUnknownOrderType = errors.New("unknown order_type")
	ErrInvalidQuantity  = errors.New("quantity must be >= 1")
)

// IncomingOrder mirrors the flat JSON object carried on the orders
// bus, discriminated on order_type.
type IncomingOrder struct {
	OrderType    string  `json:"order_type"`
	ID           string  `json:"id"`
	InvestorID   string  `json:"investor_id"`
	InvestorName string  `json:"investor_name"`
	AssetID      string  `json:"asset_id"`
	Price        float32 `json:"price"`
	Quantity     uint32  `json:"quantity"`
}

// DecodeOrder parses one order payload off the bus.
func DecodeOrder(data []byte) (IncomingOrder, error) {
	var incoming IncomingOrder
	if err := json.Unmarshal(data, &incoming); err != nil {
		return IncomingOrder{}, err
	}
	return incoming, nil
}

// ToDomainOrder validates an IncomingOrder and builds the domain Order
// it describes, seeding the submitting investor's holdings in
// investors on first sight (empty for BUY, {asset_id: quantity} for
// SELL).
func (in IncomingOrder) ToDomainOrder(investors *domain.InvestorRegistry) (*domain.Order, error) {
	if in.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	price, err := domain.NewPrice(float64(in.Price))
	if err != nil {
		return nil, err
	}

	var side domain.Side
	var investor *domain.Investor
	switch in.OrderType {
	case "Buy":
		side = domain.Buy
		investor = investors.GetOrCreateForBuy(in.InvestorID, in.InvestorName)
	case "Sell":
		side = domain.Sell
		investor = investors.GetOrCreateForSell(in.InvestorID, in.InvestorName, in.AssetID, uint64(in.Quantity))
	default:
		return nil, ErrUnknownOrderType
	}

	return domain.NewOrder(in.ID, side, in.AssetID, investor, price, uint64(in.Quantity)), nil
}

// OutgoingTransaction mirrors the flat JSON object published on the
// transactions bus.
type OutgoingTransaction struct {
	ID             string  `json:"id"`
	BuyingOrderID  string  `json:"buying_order_id"`
	SellingOrderID string  `json:"selling_order_id"`
	TradedShares   uint64  `json:"traded_shares"`
	Total          float64 `json:"total"`
	TradedAt       string  `json:"traded_at"`
}

// EncodeTransaction serializes a domain Transaction to its wire form.
func EncodeTransaction(txn domain.Transaction) ([]byte, error) {
	out := OutgoingTransaction{
		ID:             txn.TransactionID,
		BuyingOrderID:  txn.BuyingOrder.OrderID,
		SellingOrderID: txn.SellingOrder.OrderID,
		TradedShares:   txn.TradedShares,
		Total:          txn.Total,
		TradedAt:       txn.TradedAt.Format(time.RFC3339),
	}
	return json.Marshal(out)
}
