package mempool

import "context"

// TransactionInPool reports whether id is present in any of the four
// queues, per spec section 6.
func (p *Pool) TransactionInPool(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.anyIndexed(id)
}

// GetUnconfirmedTransaction returns the live unconfirmed transaction for
// id, or nil.
func (p *Pool) GetUnconfirmedTransaction(id string) Transaction {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.unconfirmed.get(id)
}

// GetQueuedTransaction returns the live queued transaction for id, or nil.
func (p *Pool) GetQueuedTransaction(id string) Transaction {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.queued.get(id)
}

// GetMultisignatureTransaction returns the live multisignature
// transaction for id, or nil.
func (p *Pool) GetMultisignatureTransaction(id string) Transaction {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.multisignature.get(id)
}

// GetBundledTransaction returns the live bundled transaction for id, or
// nil.
func (p *Pool) GetBundledTransaction(id string) Transaction {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.bundled.get(id)
}

// GetUnconfirmedTransactionList lists the unconfirmed queue.
func (p *Pool) GetUnconfirmedTransactionList(reverse bool, limit int) []Transaction {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.unconfirmed.list(reverse, limit)
}

// GetQueuedTransactionList lists the queued queue.
func (p *Pool) GetQueuedTransactionList(reverse bool, limit int) []Transaction {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.queued.list(reverse, limit)
}

// GetBundledTransactionList lists the bundled queue.
func (p *Pool) GetBundledTransactionList(reverse bool, limit int) []Transaction {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.bundled.list(reverse, limit)
}

// GetMultisignatureTransactionList lists the multisignature queue,
// optionally filtered to ready==true. Spec section 9: when ready is
// true, the source ignores limit and returns all ready entries;
// reproduced faithfully.
func (p *Pool) GetMultisignatureTransactionList(reverse, ready bool, limit int) []Transaction {
	p.mu.Lock()
	defer p.mu.Unlock()

	if ready {
		all := p.multisignature.list(reverse, 0)
		out := make([]Transaction, 0, len(all))
		for _, tx := range all {
			if tx.Ready() {
				out = append(out, tx)
			}
		}
		return out
	}
	return p.multisignature.list(reverse, limit)
}

// CountUnconfirmed, CountBundled, CountQueued, CountMultisignature
// report the live entry count of each queue, per spec section 6.
func (p *Pool) CountUnconfirmed() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.unconfirmed.count()
}

func (p *Pool) CountBundled() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.bundled.count()
}

func (p *Pool) CountQueued() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.queued.count()
}

func (p *Pool) CountMultisignature() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.multisignature.count()
}

// AddUnconfirmedTransaction adds tx to unconfirmed and clears it from
// queued/multisignature, preserving invariant 1 of spec section 3.
func (p *Pool) AddUnconfirmedTransaction(tx Transaction) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.unconfirmed.add(tx)
	p.queued.remove(tx.ID())
	p.multisignature.remove(tx.ID())
}

// RemoveUnconfirmedTransaction removes id from unconfirmed, queued and
// multisignature.
func (p *Pool) RemoveUnconfirmedTransaction(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.unconfirmed.remove(id)
	p.queued.remove(id)
	p.multisignature.remove(id)
}

// AddQueuedTransaction, RemoveQueuedTransaction and the bundled/
// multisignature equivalents are the per-queue add/remove mutators of
// spec section 6.
func (p *Pool) AddQueuedTransaction(tx Transaction) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.queued.add(tx)
}

func (p *Pool) RemoveQueuedTransaction(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.queued.remove(id)
}

func (p *Pool) AddBundledTransaction(tx Transaction) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.bundled.add(tx)
}

func (p *Pool) RemoveBundledTransaction(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.bundled.remove(id)
}

func (p *Pool) AddMultisignatureTransaction(tx Transaction) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.multisignature.add(tx)
}

func (p *Pool) RemoveMultisignatureTransaction(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.multisignature.remove(id)
}

// ReceiveTransactions processes a batch of ingress transactions, per
// spec section 6. Per-transaction errors are logged and the batch never
// aborts; cb, if non-nil, is invoked once per transaction with its
// outcome.
func (p *Pool) ReceiveTransactions(ctx context.Context, txs []Transaction, broadcast bool, cb func(tx Transaction, err error)) {
	for _, tx := range txs {
		err := p.ProcessUnconfirmedTransaction(ctx, tx, broadcast)
		if err != nil {
			entry := log.WithError(err)
			if tx != nil {
				entry = entry.WithField("tx", tx.ID())
			}
			entry.Warn("receiveTransactions: rejected")
		}
		if cb != nil {
			cb(tx, err)
		}
	}
}

// GetMergedTransactionList returns unconfirmed ++ multisignature ++
// queued, truncated per spec section 4.9. Bundled transactions are
// never included.
func (p *Pool) GetMergedTransactionList(reverse bool, limit int) []Transaction {
	if limit <= p.cfg.MaxTxsPerBlock+2 || limit > p.cfg.MaxSharedTxs {
		limit = p.cfg.MaxTxsPerBlock + 2
	}

	p.mu.Lock()
	unconfirmed := p.unconfirmed.list(reverse, p.cfg.MaxTxsPerBlock)
	multisig := p.multisignature.list(reverse, p.cfg.MaxTxsPerBlock)
	p.mu.Unlock()

	remainder := limit - len(unconfirmed) - len(multisig)
	if remainder < 0 {
		remainder = 0
	}

	p.mu.Lock()
	queued := p.queued.list(reverse, remainder)
	p.mu.Unlock()

	out := make([]Transaction, 0, len(unconfirmed)+len(multisig)+len(queued))
	out = append(out, unconfirmed...)
	out = append(out, multisig...)
	out = append(out, queued...)
	return out
}
