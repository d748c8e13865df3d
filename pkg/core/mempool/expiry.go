package mempool

import (
	"context"
	"time"
)

// expireTransactions walks unconfirmed, queued and multisignature in
// that order, each in reverse, dropping entries past their type-
// dependent TTL, per spec section 4.5. Bundled entries never expire.
// Returns the concatenated list of expired ids.
func (p *Pool) expireTransactions(ctx context.Context) ([]string, error) {
	now := time.Now()
	var expired []string

	for _, name := range []queueName{queueUnconfirmed, queueQueued, queueMultisignature} {
		p.mu.Lock()
		snapshot := p.queueByName(name).list(true, 0)
		p.mu.Unlock()

		for _, tx := range snapshot {
			ttl := ttlSeconds(tx, p.cfg.UnconfirmedTransactionTimeOut)
			if now.Sub(tx.ReceivedAt()) > time.Duration(ttl)*time.Second {
				p.RemoveUnconfirmedTransaction(tx.ID())
				expired = append(expired, tx.ID())
			}
		}
	}

	if len(expired) > 0 {
		log.Infof("expired %d transactions", len(expired))
	}
	return expired, nil
}

// ExpireTransactions is the exposed block-producer hook for spec
// section 6 (synchronous entry point for the periodic expiry job).
func (p *Pool) ExpireTransactions(ctx context.Context) ([]string, error) {
	return p.expireTransactions(ctx)
}
