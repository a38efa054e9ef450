package pipeline

import (
	"errors"
	"runtime"

	"github.com/rs/zerolog/log"
	tomb "gopkg.in/tomb.v2"

	"bourse/internal/book"
	"bourse/internal/domain"
)

var errBusDisconnected = errors.New("bus disconnected")

// Matcher is the core of the pipeline: it dequeues orders, routes each
// to the per-asset OrderBook via the shared Registry, runs the
// matching algorithm, and enqueues every produced Transaction.
type Matcher struct {
	Registry     *book.Registry
	Orders       *Queue[*domain.Order]
	Transactions *Queue[domain.Transaction]
}

// Run polls Orders non-blockingly until t is dying. TryPop reports a
// closed, drained queue the same way as an empty one, so closing
// Orders does not by itself stop Run; it keeps polling until t dies.
func (m *Matcher) Run(t *tomb.Tomb) error {
	for {
		select {
		case <-t.Dying():
			return nil
		default:
		}

		order, ok := m.Orders.TryPop()
		if !ok {
			runtime.Gosched()
			continue
		}
		m.process(order)
	}
}

// process runs one append + repeated try_match cycle for a single
// incoming order, holding the registry's single exclusive lock for
// the whole cycle so no other order can interleave on the same book.
func (m *Matcher) process(order *domain.Order) {
	m.Registry.Lock()
	defer m.Registry.Unlock()

	b := m.Registry.GetOrCreate(order.AssetID)

	if err := b.Append(order); err != nil {
		// A rejected append indicates a routing or lifecycle bug:
		// loud, but the engine continues.
		log.Error().
			Err(err).
			Str("order_id", order.OrderID).
			Str("asset_id", order.AssetID).
			Msg("matcher: append rejected order")
		return
	}

	for {
		txn, err := b.TryMatch()
		if err != nil {
			var matchErr *domain.MatchingError
			switch {
			case errors.Is(err, domain.ErrNoMatch):
				log.Debug().Str("asset_id", order.AssetID).Msg("matcher: no match")
			case errors.As(err, &matchErr):
				log.Warn().
					Err(matchErr).
					Str("asset_id", order.AssetID).
					Msg("matcher: match discarded")
			default:
				log.Error().Err(err).Str("asset_id", order.AssetID).Msg("matcher: unexpected error")
			}
			return
		}
		m.Transactions.Push(txn)
	}
}
