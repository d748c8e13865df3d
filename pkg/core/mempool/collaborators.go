package mempool

import (
	"context"
	"time"
)

// TxContext is the opaque database-transaction handle threaded through
// collaborator calls. The mempool neither creates nor inspects it,
// per spec section 6.
type TxContext interface{}

// Accounts is the account-lookup collaborator (spec section 6).
type Accounts interface {
	// SetAccountAndGet fetches, or lazily creates, the account snapshot
	// for publicKey.
	SetAccountAndGet(ctx context.Context, publicKey []byte, txCtx TxContext) (*Account, error)
	// GetAccount fetches the account snapshot for publicKey, used for
	// the multisignature requester lookup.
	GetAccount(ctx context.Context, publicKey []byte, txCtx TxContext) (*Account, error)
}

// TransactionApplier is the transaction-logic state mutator collaborator
// (spec section 6): applies and undoes effects on the in-memory
// unconfirmed ledger.
type TransactionApplier interface {
	UndoUnconfirmed(ctx context.Context, tx Transaction, txCtx TxContext) error
	ApplyUnconfirmed(ctx context.Context, tx Transaction, sender *Account, txCtx TxContext) error
}

// Loader reports chain sync status (spec section 6); fillPool refuses to
// select while the node is catching up.
type Loader interface {
	Syncing() bool
}

// TransactionLogic is the ecosystem-specific preprocessing/validation
// collaborator (spec section 6 / 4.3).
type TransactionLogic interface {
	Process(ctx context.Context, tx Transaction, sender, requester *Account, txCtx TxContext) error
	ObjectNormalize(tx Transaction) error
	Verify(ctx context.Context, tx Transaction, sender *Account, txCtx TxContext) error
}

// Bus is the fire-and-forget event publication collaborator (spec
// section 6). It is the Go shape of the source's `bus.message(name,
// ...args)` call.
type Bus interface {
	Publish(topic string, args ...interface{})
}

// TopicUnconfirmedTransaction is the bus topic the verify pipeline
// publishes on success, with the transaction and the broadcast flag.
const (
	TopicUnconfirmedTransaction = "unconfirmedTransaction"
)

// JobFunc is the body of a registered periodic job.
type JobFunc func(ctx context.Context) error

// JobsQueue schedules a non-reentrant periodic job, per spec section 6
// (`jobsQueue.register`) and section 5 ("a named job does not re-enter
// while its previous invocation is still outstanding").
type JobsQueue interface {
	Register(name string, interval time.Duration, fn JobFunc)
	Stop()
}
