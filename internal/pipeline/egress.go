package pipeline

import (
	"github.com/rs/zerolog/log"
	tomb "gopkg.in/tomb.v2"

	"bourse/internal/domain"
	"bourse/internal/transport"
)

// Egress dequeues transactions and publishes them back to the bus. It
// runs as a single dedicated loop, the last of the pipeline's three
// long-running activities.
type Egress struct {
	Bus          transport.Bus
	Transactions *Queue[domain.Transaction]
}

// Run blocks on Transactions.Pop (the internal queue) and on the bus
// publish call. It returns once Transactions is closed and drained,
// or publishing fails — both are treated as fatal.
func (eg *Egress) Run(t *tomb.Tomb) error {
	for {
		txn, ok := eg.Transactions.Pop()
		if !ok {
			return errBusDisconnected
		}

		payload, err := transport.EncodeTransaction(txn)
		if err != nil {
			log.Error().Err(err).Str("transaction_id", txn.TransactionID).Msg("egress: encode failed")
			continue
		}

		if err := eg.Bus.Publish(transport.TransactionsTopic, payload); err != nil {
			log.Error().Err(err).Str("transaction_id", txn.TransactionID).Msg("egress: publish failed")
			return err
		}
	}
}
