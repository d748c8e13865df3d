package mempool

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessBundledDrainsToQueued(t *testing.T) {
	p, _, _, _, _, _ := newTestPool()
	tx := newFakeTx("A")
	tx.bundled = true
	require.NoError(t, p.QueueTransaction(tx))

	require.NoError(t, p.ProcessBundled(context.Background()))

	assert.Equal(t, 0, p.CountBundled())
	assert.NotNil(t, p.GetQueuedTransaction("A"))
	assert.False(t, tx.Bundled(), "bundled flag should be cleared on exit")
}

func TestProcessBundledRespectsReleaseLimit(t *testing.T) {
	p, _, _, _, _, _ := newTestPool()
	p.cfg.MaxTxsPerQueue = 100
	p.cfg.ReleaseLimit = 2

	for _, id := range []string{"A", "B", "C"} {
		tx := newFakeTx(id)
		tx.bundled = true
		require.NoError(t, p.QueueTransaction(tx))
	}

	require.NoError(t, p.ProcessBundled(context.Background()))

	assert.Equal(t, 1, p.CountBundled(), "one bundled transaction should remain after release limit")
	assert.Equal(t, 2, p.CountQueued())
}

func TestProcessBundledVerifyFailureContinuesBatch(t *testing.T) {
	p, _, _, _, logic, _ := newTestPool()
	p.cfg.MaxTxsPerQueue = 100

	bad := newFakeTx("bad")
	bad.bundled = true
	logic.verifyErr["bad"] = errors.New("invalid signature")

	good := newFakeTx("good")
	good.bundled = true

	require.NoError(t, p.QueueTransaction(bad))
	require.NoError(t, p.QueueTransaction(good))

	assert.NoError(t, p.ProcessBundled(context.Background()), "a bad transaction must not abort the tick")

	assert.NotNil(t, p.GetQueuedTransaction("good"), "good should have been promoted despite bad's failure")
	assert.False(t, p.TransactionInPool("bad"), "bad should not remain in any queue after verify failure")
}
