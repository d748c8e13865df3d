package mempool

import (
	"sync"
	"time"

	logger "github.com/sirupsen/logrus"
)

var log = logger.WithFields(logger.Fields{"process": "mempool"})

// compactionThreshold is the number of successful admissions between
// reindex/compaction passes, per spec section 4.1.
const compactionThreshold = 1000

// expiryInterval is the fixed expiry tick period, per spec section 3.
const expiryInterval = 30 * time.Second

// Config is the static configuration a Pool is built with, per spec
// section 6. Loading it from disk/env/flags is an out-of-scope external
// concern (spec section 1); see pkg/config for that loader.
type Config struct {
	// BroadcastInterval is the bundle loop tick period.
	BroadcastInterval time.Duration
	// ReleaseLimit bounds how many bundled transactions are drained per
	// bundle tick.
	ReleaseLimit int
	// MaxTxsPerQueue is the per-queue capacity.
	MaxTxsPerQueue int
	// MaxTxsPerBlock bounds fillPool selection.
	MaxTxsPerBlock int
	// MaxSharedTxs upper-bounds getMergedTransactionList.
	MaxSharedTxs int
	// UnconfirmedTransactionTimeOut is the base TTL in seconds.
	UnconfirmedTransactionTimeOut int
}

// Pool is the mempool: the four named queues, the compaction counter,
// and the collaborator references, gathered into one explicit value per
// the design note in spec section 9 (replacing the source's module-level
// singletons).
type Pool struct {
	mu sync.Mutex

	cfg Config

	unconfirmed    *queueStore
	bundled        *queueStore
	queued         *queueStore
	multisignature *queueStore

	processed int

	accounts     Accounts
	transactions TransactionApplier
	loader       Loader
	logic        TransactionLogic
	bus          Bus
	jobs         JobsQueue
}

// NewPool constructs a Pool with its static configuration, bus and
// scheduler. Accounts/transactions/loader collaborators are wired later
// via Bind, mirroring the teacher's late-binding NewMempool/bind split.
func NewPool(cfg Config, logic TransactionLogic, bus Bus, jobs JobsQueue) *Pool {
	p := &Pool{
		cfg:            cfg,
		unconfirmed:    newQueueStore(queueUnconfirmed),
		bundled:        newQueueStore(queueBundled),
		queued:         newQueueStore(queueQueued),
		multisignature: newQueueStore(queueMultisignature),
		logic:          logic,
		bus:            bus,
		jobs:           jobs,
	}
	log.Infof("pool initialized maxTxsPerQueue=%d maxTxsPerBlock=%d", cfg.MaxTxsPerQueue, cfg.MaxTxsPerBlock)
	return p
}

// Bind wires the account-lookup, transaction-logic mutator and loader
// collaborators, per spec section 6's `bind(accounts, transactions,
// loader)`.
func (p *Pool) Bind(accounts Accounts, transactions TransactionApplier, loader Loader) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.accounts = accounts
	p.transactions = transactions
	p.loader = loader
}

// queueByName resolves a queue by its name; used by the expiry pass to
// walk queues in a named order.
func (p *Pool) queueByName(name queueName) *queueStore {
	switch name {
	case queueUnconfirmed:
		return p.unconfirmed
	case queueBundled:
		return p.bundled
	case queueQueued:
		return p.queued
	case queueMultisignature:
		return p.multisignature
	default:
		return nil
	}
}

// anyIndexed reports whether id is present in any of the four queues,
// per spec section 4.2 step 1. Caller holds p.mu.
func (p *Pool) anyIndexed(id string) bool {
	for _, q := range []*queueStore{p.unconfirmed, p.bundled, p.queued, p.multisignature} {
		if _, ok := q.index[id]; ok {
			return true
		}
	}
	return false
}

// reindexQueuesLocked compacts all four queues and resets the processed
// counter, per spec section 4.1. Caller holds p.mu.
func (p *Pool) reindexQueuesLocked() {
	for _, q := range []*queueStore{p.unconfirmed, p.bundled, p.queued, p.multisignature} {
		q.reindex()
	}
	p.processed = 1
}

// ReindexQueues is the exposed block-producer hook for spec section 6.
func (p *Pool) ReindexQueues() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reindexQueuesLocked()
}
