package mempool

import (
	"context"
	"math"
)

// multisigQuotaSize is the maximum number of multisignature transactions
// fillPool will ever select per block, per spec section 4.6.
const multisigQuotaSize = 5

// FillPool assembles up to MaxTxsPerBlock transactions (at most 5
// multisig, ready only, plus remainder from queued) and applies them as
// unconfirmed, per spec section 4.6.
func (p *Pool) FillPool(ctx context.Context) error {
	if p.loader != nil && p.loader.Syncing() {
		return nil
	}

	p.mu.Lock()
	u := p.unconfirmed.count()
	if u >= p.cfg.MaxTxsPerBlock {
		p.mu.Unlock()
		return nil
	}
	spare := p.cfg.MaxTxsPerBlock - u

	multisigQuota := 0
	if spare >= multisigQuotaSize {
		multisigQuota = multisigQuotaSize
	}

	ready := make([]Transaction, 0, multisigQuota)
	for _, tx := range p.multisignature.list(true, 0) {
		if len(ready) >= multisigQuota {
			break
		}
		if tx.Ready() {
			ready = append(ready, tx)
		}
	}

	// Spec section 9: the source takes Math.abs(spare - len(multisig)),
	// masking an underflow that cannot occur under the quota above.
	// Reproduced faithfully rather than simplified to a plain
	// subtraction.
	remaining := int(math.Abs(float64(spare - len(ready))))
	queuedTxs := p.queued.list(true, remaining)

	p.mu.Unlock()

	selected := make([]Transaction, 0, len(ready)+len(queuedTxs))
	selected = append(selected, ready...)
	selected = append(selected, queuedTxs...)

	p.applyUnconfirmedList(ctx, selected)
	return nil
}

// applyUnconfirmedList re-verifies and applies each candidate to the
// in-memory unconfirmed account state, per spec section 4.7. Errors are
// logged per transaction; the overall apply reports no error.
func (p *Pool) applyUnconfirmedList(ctx context.Context, txs []Transaction) {
	for _, tx := range txs {
		if err := p.processVerifyTransaction(ctx, tx, false); err != nil {
			log.WithField("tx", tx.ID()).WithError(err).Warn("apply verify failed")
			p.RemoveUnconfirmedTransaction(tx.ID())
			continue
		}

		sender, err := p.accounts.SetAccountAndGet(ctx, tx.SenderPublicKey(), nil)
		if err != nil || sender == nil {
			log.WithField("tx", tx.ID()).WithError(err).Warn("apply sender lookup failed")
			p.RemoveUnconfirmedTransaction(tx.ID())
			continue
		}

		if err := p.transactions.ApplyUnconfirmed(ctx, tx, sender, nil); err != nil {
			log.WithField("tx", tx.ID()).WithError(err).Warn("applyUnconfirmed failed")
			p.RemoveUnconfirmedTransaction(tx.ID())
			continue
		}

		p.AddUnconfirmedTransaction(tx)
	}
}
