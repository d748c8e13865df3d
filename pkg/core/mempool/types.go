package mempool

import (
	"time"

	"github.com/pkg/errors"
)

// Errors produced or surfaced by the mempool, per the error taxonomy.
var (
	// ErrAlreadyInPool is returned when a transaction id is already
	// present in one of the four queues.
	ErrAlreadyInPool = errors.New("already in pool")
	// ErrPoolFull is returned when the target queue is at capacity.
	ErrPoolFull = errors.New("pool full")
	// ErrSenderMissing is returned when the sender account cannot be found.
	ErrSenderMissing = errors.New("sender missing")
	// ErrRequesterMissing is returned when a multisignature requester
	// account cannot be found.
	ErrRequesterMissing = errors.New("requester missing")
	// ErrMissingTransaction is returned for a nil input transaction.
	ErrMissingTransaction = errors.New("missing transaction")
)

// MultiType is the distinguished transaction type tag that marks a
// multisignature-registration transaction.
const MultiType = int32(-1)

// MultisigAsset carries the multisignature-specific fields present iff
// Type == MultiType.
type MultisigAsset struct {
	// Lifetime is the TTL, in hours, of the registration transaction.
	Lifetime int
}

// Transaction is the subset of fields the mempool reads or mutates on
// an otherwise opaque candidate transaction.
type Transaction interface {
	ID() string
	Type() int32
	SenderPublicKey() []byte
	RequesterPublicKey() []byte

	// Signatures returns (value, present). present distinguishes a
	// nil signature list from a field the caller never set: the mere
	// presence of the field marks the payload as multisig-bearing,
	// per spec invariant 4.
	Signatures() ([][]byte, bool)
	SetSignatures(sigs [][]byte)

	MultisigAsset() *MultisigAsset

	Bundled() bool
	SetBundled(bool)

	ReceivedAt() time.Time
	SetReceivedAt(time.Time)

	Ready() bool
}

// TxDesc pairs a transaction with its classification. The queues store
// Transaction values directly, not TxDesc.
type TxDesc struct {
	Tx   Transaction
	Kind txKind
}

// Account is the opaque sender/requester snapshot the accounts
// collaborator returns.
type Account struct {
	PublicKey     []byte
	Multisignature []byte
}

// IsMultisig reports whether the account belongs to a multisignature
// group.
func (a *Account) IsMultisig() bool {
	return a != nil && len(a.Multisignature) > 0
}
