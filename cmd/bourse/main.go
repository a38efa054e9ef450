// Command bourse runs the matching engine pipeline: Ingress, Matcher,
// Egress, wired around an AMQP bus, shutting down cleanly on
// SIGINT/SIGTERM.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	tomb "gopkg.in/tomb.v2"

	"bourse/internal/book"
	"bourse/internal/config"
	"bourse/internal/domain"
	"bourse/internal/pipeline"
	"bourse/internal/transport"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg := config.FromEnv()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	bus, err := transport.DialAMQPBus(cfg.AMQPURL)
	if err != nil {
		log.Fatal().Err(err).Msg("unable to connect to bus")
	}
	defer bus.Close()

	registry := book.NewRegistry()
	investors := domain.NewInvestorRegistry()
	orders := pipeline.NewQueue[*domain.Order]()
	transactions := pipeline.NewQueue[domain.Transaction]()

	t, ctx := tomb.WithContext(ctx)

	ingress := &pipeline.Ingress{Bus: bus, Investors: investors, Orders: orders}
	egress := &pipeline.Egress{Bus: bus, Transactions: transactions}
	matchers := pipeline.NewMatcherPool(cfg.MatcherPool, registry, transactions)

	t.Go(func() error { return ingress.Run(t) })
	t.Go(func() error { return egress.Run(t) })
	matchers.Setup(t, orders)

	log.Info().Str("amqp_url", cfg.AMQPURL).Int("matcher_workers", cfg.MatcherPool).Msg("bourse running")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	orders.Close()
	transactions.Close()
	t.Kill(nil)
	if err := t.Wait(); err != nil {
		log.Error().Err(err).Msg("pipeline exited with error")
		os.Exit(1)
	}
}
