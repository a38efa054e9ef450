package pipeline

import (
	"hash/fnv"
	"runtime"

	"github.com/rs/zerolog/log"
	tomb "gopkg.in/tomb.v2"

	"bourse/internal/book"
	"bourse/internal/domain"
)

// MatcherPool runs N Matcher workers hash-sharded by asset_id. The
// baseline topology uses N=1; raising N only changes throughput, never
// correctness, because every worker still goes through the same
// Registry's single exclusive lock.
type MatcherPool struct {
	registry     *book.Registry
	transactions *Queue[domain.Transaction]
	shards       []*Queue[*domain.Order]
}

// NewMatcherPool builds a pool of n shards. n must be >= 1.
func NewMatcherPool(n int, registry *book.Registry, transactions *Queue[domain.Transaction]) *MatcherPool {
	shards := make([]*Queue[*domain.Order], n)
	for i := range shards {
		shards[i] = NewQueue[*domain.Order]()
	}
	return &MatcherPool{
		registry:     registry,
		transactions: transactions,
		shards:       shards,
	}
}

// Setup starts the router and every shard worker under t.
func (p *MatcherPool) Setup(t *tomb.Tomb, orders *Queue[*domain.Order]) {
	log.Info().Int("shards", len(p.shards)).Msg("matcher pool starting")
	t.Go(func() error {
		return p.route(t, orders)
	})
	for i := range p.shards {
		i := i
		t.Go(func() error {
			return p.runShard(t, i)
		})
	}
}

// route drains the single global orders queue and fans each order out
// to the shard responsible for its asset_id, preserving per-asset FIFO
// order since the same asset_id always hashes to the same shard.
func (p *MatcherPool) route(t *tomb.Tomb, orders *Queue[*domain.Order]) error {
	for {
		select {
		case <-t.Dying():
			return nil
		default:
		}

		order, ok := orders.TryPop()
		if !ok {
			runtime.Gosched()
			continue
		}
		p.shards[shardFor(order.AssetID, len(p.shards))].Push(order)
	}
}

func (p *MatcherPool) runShard(t *tomb.Tomb, idx int) error {
	m := &Matcher{
		Registry:     p.registry,
		Orders:       p.shards[idx],
		Transactions: p.transactions,
	}
	return m.Run(t)
}

func shardFor(assetID string, n int) int {
	if n == 1 {
		return 0
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(assetID))
	return int(h.Sum32() % uint32(n))
}
