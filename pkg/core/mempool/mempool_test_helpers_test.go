package mempool

import (
	"context"
	"fmt"
	"time"
)

// fakeTx is a minimal Transaction used across the test suite, in the
// teacher's own table-driven-fixture style (dupeTests/dupeFilterTests in
// the pack's dupemap_test.go).
type fakeTx struct {
	id         string
	kind       int32
	sender     []byte
	requester  []byte
	sigs       [][]byte
	sigsSet    bool
	asset      *MultisigAsset
	bundled    bool
	receivedAt time.Time
	ready      bool
}

func newFakeTx(id string) *fakeTx {
	return &fakeTx{id: id, sender: []byte("sender-" + id)}
}

func (t *fakeTx) ID() string                   { return t.id }
func (t *fakeTx) Type() int32                  { return t.kind }
func (t *fakeTx) SenderPublicKey() []byte      { return t.sender }
func (t *fakeTx) RequesterPublicKey() []byte   { return t.requester }
func (t *fakeTx) Signatures() ([][]byte, bool) { return t.sigs, t.sigsSet }
func (t *fakeTx) SetSignatures(sigs [][]byte)  { t.sigs = sigs; t.sigsSet = true }
func (t *fakeTx) MultisigAsset() *MultisigAsset { return t.asset }
func (t *fakeTx) Bundled() bool                { return t.bundled }
func (t *fakeTx) SetBundled(b bool)            { t.bundled = b }
func (t *fakeTx) ReceivedAt() time.Time        { return t.receivedAt }
func (t *fakeTx) SetReceivedAt(at time.Time)   { t.receivedAt = at }
func (t *fakeTx) Ready() bool                  { return t.ready }

// fakeAccounts is a trivial in-memory accounts collaborator.
type fakeAccounts struct {
	accounts map[string]*Account
	missing  map[string]bool
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{accounts: make(map[string]*Account), missing: make(map[string]bool)}
}

func (f *fakeAccounts) SetAccountAndGet(ctx context.Context, publicKey []byte, txCtx TxContext) (*Account, error) {
	key := string(publicKey)
	if f.missing[key] {
		return nil, fmt.Errorf("no such account")
	}
	if acc, ok := f.accounts[key]; ok {
		return acc, nil
	}
	acc := &Account{PublicKey: publicKey}
	f.accounts[key] = acc
	return acc, nil
}

func (f *fakeAccounts) GetAccount(ctx context.Context, publicKey []byte, txCtx TxContext) (*Account, error) {
	key := string(publicKey)
	if f.missing[key] {
		return nil, fmt.Errorf("no such account")
	}
	if acc, ok := f.accounts[key]; ok {
		return acc, nil
	}
	return nil, fmt.Errorf("not found")
}

// fakeApplier is a trivial transaction-mutator collaborator.
type fakeApplier struct {
	applyErr map[string]error
	undoErr  map[string]error
	applied  []string
	undone   []string
}

func newFakeApplier() *fakeApplier {
	return &fakeApplier{applyErr: map[string]error{}, undoErr: map[string]error{}}
}

func (f *fakeApplier) UndoUnconfirmed(ctx context.Context, tx Transaction, txCtx TxContext) error {
	f.undone = append(f.undone, tx.ID())
	return f.undoErr[tx.ID()]
}

func (f *fakeApplier) ApplyUnconfirmed(ctx context.Context, tx Transaction, sender *Account, txCtx TxContext) error {
	f.applied = append(f.applied, tx.ID())
	return f.applyErr[tx.ID()]
}

// fakeLoader reports a fixed syncing state.
type fakeLoader struct{ syncing bool }

func (f *fakeLoader) Syncing() bool { return f.syncing }

// fakeLogic is a no-op transaction-logic collaborator: every stage
// succeeds unless the test pre-loads a failure for a given tx id.
type fakeLogic struct {
	processErr   map[string]error
	normalizeErr map[string]error
	verifyErr    map[string]error
}

func newFakeLogic() *fakeLogic {
	return &fakeLogic{
		processErr:   map[string]error{},
		normalizeErr: map[string]error{},
		verifyErr:    map[string]error{},
	}
}

func (f *fakeLogic) Process(ctx context.Context, tx Transaction, sender, requester *Account, txCtx TxContext) error {
	return f.processErr[tx.ID()]
}

func (f *fakeLogic) ObjectNormalize(tx Transaction) error {
	return f.normalizeErr[tx.ID()]
}

func (f *fakeLogic) Verify(ctx context.Context, tx Transaction, sender *Account, txCtx TxContext) error {
	return f.verifyErr[tx.ID()]
}

// fakeBus records every published event.
type fakeBus struct {
	published []struct {
		topic string
		args  []interface{}
	}
}

func (f *fakeBus) Publish(topic string, args ...interface{}) {
	f.published = append(f.published, struct {
		topic string
		args  []interface{}
	}{topic, args})
}

// noopJobsQueue never actually schedules anything; tests drive the
// bundle/expiry loops directly rather than waiting on wall-clock ticks.
type noopJobsQueue struct{}

func (noopJobsQueue) Register(name string, interval time.Duration, fn JobFunc) {}
func (noopJobsQueue) Stop()                                                    {}

func testConfig() Config {
	return Config{
		BroadcastInterval:             time.Second,
		ReleaseLimit:                  100,
		MaxTxsPerQueue:                3,
		MaxTxsPerBlock:                25,
		MaxSharedTxs:                  1000,
		UnconfirmedTransactionTimeOut: 100,
	}
}

func newTestPool() (*Pool, *fakeAccounts, *fakeApplier, *fakeLoader, *fakeLogic, *fakeBus) {
	accounts := newFakeAccounts()
	applier := newFakeApplier()
	loader := &fakeLoader{}
	logic := newFakeLogic()
	bus := &fakeBus{}

	p := NewPool(testConfig(), logic, bus, noopJobsQueue{})
	p.Bind(accounts, applier, loader)
	return p, accounts, applier, loader, logic, bus
}
