package mempool

import (
	"context"
	"time"
)

// ProcessUnconfirmedTransaction is the admission controller of spec
// section 4.2: dedup, compaction trigger, bundle-or-verify routing.
func (p *Pool) ProcessUnconfirmedTransaction(ctx context.Context, tx Transaction, broadcast bool) error {
	if tx == nil {
		return ErrMissingTransaction
	}

	p.mu.Lock()
	if p.anyIndexed(tx.ID()) {
		p.mu.Unlock()
		return ErrAlreadyInPool
	}
	p.processed++
	if p.processed > compactionThreshold {
		p.reindexQueuesLocked()
	}
	p.mu.Unlock()

	if tx.Bundled() {
		return p.QueueTransaction(tx)
	}

	if err := p.processVerifyTransaction(ctx, tx, broadcast); err != nil {
		log.WithField("tx", tx.ID()).WithError(err).Warn("verify failed on ingress")
		return err
	}

	return p.QueueTransaction(tx)
}

// QueueTransaction stamps receivedAt, classifies the transaction, and
// enqueues it into its target queue, per spec section 4.2 step "queueTransaction".
func (p *Pool) QueueTransaction(tx Transaction) error {
	if tx == nil {
		return ErrMissingTransaction
	}
	tx.SetReceivedAt(time.Now())

	var target *queueStore
	switch {
	case tx.Bundled():
		target = p.bundled
	case classify(tx) == kindMultisig:
		target = p.multisignature
	default:
		target = p.queued
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, already := target.index[tx.ID()]; !already && target.count() >= p.cfg.MaxTxsPerQueue {
		return ErrPoolFull
	}

	target.add(tx)
	return nil
}
