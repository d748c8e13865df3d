package mempool

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errApplyFailed = errors.New("apply failed")

func TestFillPoolSkipsWhenSyncing(t *testing.T) {
	p, _, _, loader, _, _ := newTestPool()
	loader.syncing = true

	tx := newFakeTx("A")
	p.cfg.MaxTxsPerQueue = 10
	require.NoError(t, p.QueueTransaction(tx))

	require.NoError(t, p.FillPool(context.Background()))
	assert.Equal(t, 0, p.CountUnconfirmed(), "fillPool must not select while syncing")
}

func TestFillPoolSkipsWhenUnconfirmedAtCapacity(t *testing.T) {
	p, _, _, _, _, _ := newTestPool()
	p.cfg.MaxTxsPerBlock = 1
	p.AddUnconfirmedTransaction(newFakeTx("already-there"))

	queued := newFakeTx("Q")
	p.cfg.MaxTxsPerQueue = 10
	require.NoError(t, p.QueueTransaction(queued))

	require.NoError(t, p.FillPool(context.Background()))
	assert.Equal(t, 1, p.CountUnconfirmed(), "unconfirmed count must stay untouched at capacity")
}

func TestFillPoolSelectsQuotaBoundedMultisigPlusRemainder(t *testing.T) {
	p, _, applier, _, _, _ := newTestPool()
	p.cfg.MaxTxsPerQueue = 1000
	p.cfg.MaxTxsPerBlock = 25

	for i := 0; i < 10; i++ {
		tx := newFakeTx("multi-" + strconv.Itoa(i))
		tx.kind = MultiType
		tx.asset = &MultisigAsset{Lifetime: 100}
		tx.ready = true
		require.NoError(t, p.QueueTransaction(tx), "setup multisig %d", i)
	}
	for i := 0; i < 100; i++ {
		tx := newFakeTx("queued-" + strconv.Itoa(i))
		require.NoError(t, p.QueueTransaction(tx), "setup queued %d", i)
	}

	require.NoError(t, p.FillPool(context.Background()))

	assert.Equal(t, 25, p.CountUnconfirmed(), "want 5 multisig + 20 queued")
	assert.Len(t, applier.applied, 25)
}

func TestApplyUnconfirmedListRemovesOnApplyFailure(t *testing.T) {
	p, _, applier, _, _, _ := newTestPool()
	p.cfg.MaxTxsPerQueue = 10
	tx := newFakeTx("A")
	applier.applyErr["A"] = errApplyFailed

	require.NoError(t, p.QueueTransaction(tx))

	p.applyUnconfirmedList(context.Background(), []Transaction{tx})

	assert.False(t, p.TransactionInPool("A"), "A should have been removed after apply failure")
}
