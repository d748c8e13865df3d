package mempool

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// ticker is the minimal, non-reentrant periodic job scheduler the pool
// registers its two jobs with. A named job never re-enters while its
// previous invocation is still outstanding (spec section 5); the
// teacher's Run() select-loop inlines exactly this discipline around a
// single time.After case, generalized here into a reusable primitive
// so bundle and expiry can run independently and interleave freely.
type ticker struct {
	name     string
	interval time.Duration
	running  int32
	quit     chan struct{}
}

func newTicker(name string, interval time.Duration) *ticker {
	return &ticker{name: name, interval: interval, quit: make(chan struct{})}
}

func (t *ticker) start(fn JobFunc) {
	go func() {
		tk := time.NewTicker(t.interval)
		defer tk.Stop()
		for {
			select {
			case <-t.quit:
				return
			case <-tk.C:
				if !atomic.CompareAndSwapInt32(&t.running, 0, 1) {
					log.WithField("job", t.name).Debug("tick skipped, previous run still outstanding")
					continue
				}
				tickID := uuid.NewString()
				go func() {
					defer atomic.StoreInt32(&t.running, 0)
					ctx := context.Background()
					if err := fn(ctx); err != nil {
						log.WithField("job", t.name).WithField("tick", tickID).WithError(err).Error("job tick failed")
					}
				}()
			}
		}
	}()
}

func (t *ticker) stop() {
	close(t.quit)
}

// defaultJobsQueue is the in-process JobsQueue implementation built on
// ticker.
type defaultJobsQueue struct {
	tickers []*ticker
}

// NewDefaultJobsQueue returns a JobsQueue suitable for a single-process
// node, to be passed to NewPool. StartJobs registers on whichever
// JobsQueue the pool was built with; there is no fallback when it is nil.
func NewDefaultJobsQueue() JobsQueue {
	return &defaultJobsQueue{}
}

func (d *defaultJobsQueue) Register(name string, interval time.Duration, fn JobFunc) {
	t := newTicker(name, interval)
	d.tickers = append(d.tickers, t)
	t.start(fn)
}

func (d *defaultJobsQueue) Stop() {
	for _, t := range d.tickers {
		t.stop()
	}
}

// StartJobs registers the bundle and expiry periodic jobs, per spec
// section 4/§5: transactionPoolNextBundle at BroadcastInterval,
// transactionPoolNextExpiry at the fixed 30s expiryInterval. The two
// jobs are independent and may interleave.
func (p *Pool) StartJobs() {
	p.jobs.Register("transactionPoolNextBundle", p.cfg.BroadcastInterval, func(ctx context.Context) error {
		return p.processBundled(ctx)
	})
	p.jobs.Register("transactionPoolNextExpiry", expiryInterval, func(ctx context.Context) error {
		_, err := p.expireTransactions(ctx)
		return err
	})
}
