// Command bourse-cli is a small flag-driven harness that publishes
// sample order JSON onto the configured bus and prints transaction
// JSON it receives back, for manually exercising a running engine.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"bourse/internal/config"
	"bourse/internal/transport"
)

func main() {
	action := flag.String("action", "place", "Action to perform: ['place', 'listen']")
	investorID := flag.String("investor-id", "", "Investor id (compulsory for 'place')")
	investorName := flag.String("investor-name", "", "Investor display name")
	assetID := flag.String("asset-id", "AAPL", "Asset id")
	sideStr := flag.String("side", "buy", "Order side: 'buy' or 'sell'")
	price := flag.Float64("price", 100.0, "Limit price")
	qty := flag.Uint("qty", 10, "Quantity")
	flag.Parse()

	cfg := config.FromEnv()
	bus, err := transport.DialAMQPBus(cfg.AMQPURL)
	if err != nil {
		log.Fatalf("unable to connect to bus: %v", err)
	}
	defer bus.Close()

	switch strings.ToLower(*action) {
	case "place":
		if *investorID == "" {
			log.Fatal("-investor-id is required for 'place'")
		}
		if err := place(bus, *investorID, *investorName, *assetID, *sideStr, *price, uint32(*qty)); err != nil {
			log.Fatalf("failed to place order: %v", err)
		}
	case "listen":
		listen(bus)
	default:
		log.Fatalf("unknown action: %s", *action)
	}
}

func place(bus *transport.AMQPBus, investorID, investorName, assetID, sideStr string, price float64, qty uint32) error {
	orderType := "Buy"
	if strings.ToLower(sideStr) == "sell" {
		orderType = "Sell"
	}

	payload, err := encodeOrder(orderType, investorID, investorName, assetID, price, qty)
	if err != nil {
		return err
	}

	if err := bus.Publish(transport.OrdersTopic, payload); err != nil {
		return err
	}
	fmt.Printf("-> sent %s order: %s %d @ %.2f\n", orderType, assetID, qty, price)
	return nil
}

func encodeOrder(orderType, investorID, investorName, assetID string, price float64, qty uint32) ([]byte, error) {
	order := transport.IncomingOrder{
		OrderType:    orderType,
		ID:           uuid.New().String(),
		InvestorID:   investorID,
		InvestorName: investorName,
		AssetID:      assetID,
		Price:        float32(price),
		Quantity:     qty,
	}
	return json.Marshal(order)
}

func listen(bus *transport.AMQPBus) {
	deliveries, err := bus.Consume(transport.TransactionsTopic)
	if err != nil {
		log.Fatalf("failed to consume transactions: %v", err)
	}

	fmt.Println("listening for transactions... (Ctrl+C to exit)")
	for raw := range deliveries {
		fmt.Printf("[TRANSACTION] %s\n", string(raw))
	}
	fmt.Println("transactions bus disconnected")
}
