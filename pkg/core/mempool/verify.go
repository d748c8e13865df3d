package mempool

import (
	"context"

	"github.com/pkg/errors"
)

// processVerifyTransaction runs the sequential verify pipeline of spec
// section 4.3: sender fetch, optional requester fetch, logic
// process/normalize/verify, and a bus publish on success. It is opaque
// to storage: it only reads account state through the accounts
// collaborator.
func (p *Pool) processVerifyTransaction(ctx context.Context, tx Transaction, broadcast bool) error {
	if tx == nil {
		return ErrMissingTransaction
	}

	sender, err := p.accounts.SetAccountAndGet(ctx, tx.SenderPublicKey(), nil)
	if err != nil || sender == nil {
		return errors.Wrapf(ErrSenderMissing, "tx=%s: %v", tx.ID(), err)
	}

	var requester *Account
	if sender.IsMultisig() {
		if len(tx.RequesterPublicKey()) > 0 {
			requester, err = p.accounts.GetAccount(ctx, tx.RequesterPublicKey(), nil)
			if err != nil || requester == nil {
				return errors.Wrapf(ErrRequesterMissing, "tx=%s: %v", tx.ID(), err)
			}
		}
		if sigs, present := tx.Signatures(); !present || sigs == nil {
			tx.SetSignatures([][]byte{})
		}
	}

	if err := p.logic.Process(ctx, tx, sender, requester, nil); err != nil {
		return errors.Wrapf(err, "logic process failed for tx=%s", tx.ID())
	}

	if err := p.logic.ObjectNormalize(tx); err != nil {
		return errors.Wrapf(err, "normalize failed for tx=%s", tx.ID())
	}

	if err := p.logic.Verify(ctx, tx, sender, nil); err != nil {
		return errors.Wrapf(err, "verify failed for tx=%s", tx.ID())
	}

	p.bus.Publish(TopicUnconfirmedTransaction, tx, broadcast)
	return nil
}
