package pipeline

import (
	"github.com/rs/zerolog/log"
	tomb "gopkg.in/tomb.v2"

	"bourse/internal/domain"
	"bourse/internal/transport"
)

// Ingress pulls raw order payloads off the bus, decodes them into
// domain orders, and enqueues them on Orders. It runs as a single
// dedicated loop, the first of the pipeline's three long-running
// activities.
type Ingress struct {
	Bus       transport.Bus
	Investors *domain.InvestorRegistry
	Orders    *Queue[*domain.Order]
}

// Run blocks until the bus's orders topic disconnects (fatal) or t
// is dying.
func (in *Ingress) Run(t *tomb.Tomb) error {
	deliveries, err := in.Bus.Consume(transport.OrdersTopic)
	if err != nil {
		return err
	}

	for {
		select {
		case <-t.Dying():
			return nil
		case raw, ok := <-deliveries:
			if !ok {
				log.Error().Msg("ingress: orders bus disconnected")
				return errBusDisconnected
			}
			in.handle(raw)
		}
	}
}

func (in *Ingress) handle(raw []byte) {
	incoming, err := transport.DecodeOrder(raw)
	if err != nil {
		log.Error().Err(err).Msg("ingress: malformed order payload")
		return
	}

	order, err := incoming.ToDomainOrder(in.Investors)
	if err != nil {
		log.Error().Err(err).Str("order_id", incoming.ID).Msg("ingress: rejected order")
		return
	}

	in.Orders.Push(order)
}
