package mempool

import "context"

// UndoUnconfirmedList walks the unconfirmed queue forward; for each live
// entry it asks the transaction collaborator to undo its effects,
// unconditionally removes it from unconfirmed, and, only if the undo
// succeeded, re-admits it to queued. Returns the ids considered, per
// spec section 4.8.
func (p *Pool) UndoUnconfirmedList(ctx context.Context) []string {
	p.mu.Lock()
	snapshot := p.unconfirmed.list(false, 0)
	p.mu.Unlock()

	ids := make([]string, 0, len(snapshot))
	for _, tx := range snapshot {
		ids = append(ids, tx.ID())

		err := p.transactions.UndoUnconfirmed(ctx, tx, nil)

		p.mu.Lock()
		p.unconfirmed.remove(tx.ID())
		p.mu.Unlock()

		if err != nil {
			log.WithField("tx", tx.ID()).WithError(err).Warn("undo failed, dropping")
			continue
		}

		// Spec section 4.8 re-admits directly to queued, unlike the
		// classify-based routing queueTransaction performs on fresh
		// ingress.
		p.mu.Lock()
		if p.queued.count() < p.cfg.MaxTxsPerQueue {
			p.queued.add(tx)
		} else {
			log.WithField("tx", tx.ID()).Warn("queued full, dropping re-admitted transaction")
		}
		p.mu.Unlock()
	}

	return ids
}
