package transport_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bourse/internal/domain"
	"bourse/internal/transport"
)

func TestDecodeOrder_ParsesFields(t *testing.T) {
	raw := []byte(`{"order_type":"Buy","id":"B1","investor_id":"I1","investor_name":"Jane","asset_id":"X","price":5.5,"quantity":10}`)

	in, err := transport.DecodeOrder(raw)
	require.NoError(t, err)
	assert.Equal(t, "Buy", in.OrderType)
	assert.Equal(t, "X", in.AssetID)
	assert.Equal(t, float32(5.5), in.Price)
	assert.Equal(t, uint32(10), in.Quantity)
}

func TestToDomainOrder_BuySeedsEmptyHoldings(t *testing.T) {
	investors := domain.NewInvestorRegistry()
	in := transport.IncomingOrder{
		OrderType:  "Buy",
		ID:         "B1",
		InvestorID: "I1",
		AssetID:    "X",
		Price:      5.0,
		Quantity:   10,
	}

	order, err := in.ToDomainOrder(investors)
	require.NoError(t, err)
	assert.Equal(t, domain.Buy, order.Side)
	assert.Empty(t, order.Investor.Holdings)
}

func TestToDomainOrder_SellSeedsQuantityHoldings(t *testing.T) {
	investors := domain.NewInvestorRegistry()
	in := transport.IncomingOrder{
		OrderType:  "Sell",
		ID:         "A1",
		InvestorID: "I1",
		AssetID:    "X",
		Price:      5.0,
		Quantity:   10,
	}

	order, err := in.ToDomainOrder(investors)
	require.NoError(t, err)
	assert.Equal(t, domain.Sell, order.Side)
	assert.Equal(t, uint64(10), order.Investor.Holdings["X"])
}

func TestToDomainOrder_RejectsZeroQuantity(t *testing.T) {
	investors := domain.NewInvestorRegistry()
	in := transport.IncomingOrder{OrderType: "Buy", ID: "B1", InvestorID: "I1", AssetID: "X", Price: 5.0, Quantity: 0}

	_, err := in.ToDomainOrder(investors)
	assert.ErrorIs(t, err, transport.ErrInvalidQuantity)
}

func TestToDomainOrder_RejectsUnknownOrderType(t *testing.T) {
	investors := domain.NewInvestorRegistry()
	in := transport.IncomingOrder{OrderType: "Short", ID: "B1", InvestorID: "I1", AssetID: "X", Price: 5.0, Quantity: 1}

	_, err := in.ToDomainOrder(investors)
	assert.ErrorIs(t, err, transport.ErrUnknownOrderType)
}

func TestEncodeTransaction_ProducesExpectedFields(t *testing.T) {
	buyer := domain.NewInvestor("I2", "")
	seller := domain.NewInvestor("I1", "")
	seller.Holdings["X"] = 10
	price, err := domain.NewPrice(5.0)
	require.NoError(t, err)

	buy := domain.NewOrder("B", domain.Buy, "X", buyer, price, 10)
	sell := domain.NewOrder("A", domain.Sell, "X", seller, price, 10)
	require.NoError(t, buy.Buy(10))
	require.NoError(t, sell.Sell(10))

	txn := domain.NewTransaction(buy.Snapshot(), sell.Snapshot(), 10, price)
	payload, err := transport.EncodeTransaction(txn)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(payload, &out))
	assert.Equal(t, "B", out["buying_order_id"])
	assert.Equal(t, "A", out["selling_order_id"])
	assert.Equal(t, float64(10), out["traded_shares"])
	assert.Equal(t, 50.0, out["total"])
}
