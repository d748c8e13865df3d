package mempool

// queueName identifies one of the four disjoint queues of spec section 3.
type queueName string

const (
	queueUnconfirmed    queueName = "unconfirmed"
	queueBundled        queueName = "bundled"
	queueQueued         queueName = "queued"
	queueMultisignature queueName = "multisignature"
)

// slot is either a live transaction reference or a tombstone.
type slot struct {
	tx   Transaction
	live bool
}

// queueStore is an append-only sequence of slots plus an id->position
// index, with soft-delete and periodic compaction. This is the Go-native
// rendering of spec section 4.1, chosen over a plain ordered map because
// reindex/compaction is itself a tested operation (spec section 8) rather
// than an implementation detail a map would hide.
type queueStore struct {
	name  queueName
	slots []slot
	index map[string]int
}

func newQueueStore(name queueName) *queueStore {
	return &queueStore{
		name:  name,
		index: make(map[string]int),
	}
}

// add appends tx if its id is not already indexed. Duplicate add is a
// silent no-op, per spec section 4.1.
func (q *queueStore) add(tx Transaction) {
	if _, ok := q.index[tx.ID()]; ok {
		return
	}
	q.index[tx.ID()] = len(q.slots)
	q.slots = append(q.slots, slot{tx: tx, live: true})
}

// remove tombstones the slot for id and unmaps it. Idempotent.
func (q *queueStore) remove(id string) {
	pos, ok := q.index[id]
	if !ok {
		return
	}
	q.slots[pos].live = false
	q.slots[pos].tx = nil
	delete(q.index, id)
}

// get returns the live transaction for id, or nil if absent.
func (q *queueStore) get(id string) Transaction {
	pos, ok := q.index[id]
	if !ok {
		return nil
	}
	return q.slots[pos].tx
}

// count returns the number of live (indexed) entries.
func (q *queueStore) count() int {
	return len(q.index)
}

// list materializes a snapshot of live entries, optionally reversed and
// truncated to limit (0 or negative means no limit). The snapshot is safe
// to range over across suspension points: later add/remove calls mutate
// the live queueStore, not the returned slice, per spec section 5.
func (q *queueStore) list(reverse bool, limit int) []Transaction {
	out := make([]Transaction, 0, len(q.index))
	if reverse {
		for i := len(q.slots) - 1; i >= 0; i-- {
			if q.slots[i].live {
				out = append(out, q.slots[i].tx)
			}
		}
	} else {
		for i := range q.slots {
			if q.slots[i].live {
				out = append(out, q.slots[i].tx)
			}
		}
	}
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}

// reindex drops tombstones and rebuilds the id->position map from the
// compacted sequence, per spec section 4.1. Called from the admission
// controller every 1000 successful admissions.
func (q *queueStore) reindex() {
	compacted := make([]slot, 0, len(q.index))
	for i := range q.slots {
		if q.slots[i].live {
			compacted = append(compacted, q.slots[i])
		}
	}
	index := make(map[string]int, len(compacted))
	for pos, s := range compacted {
		index[s.tx.ID()] = pos
	}
	q.slots = compacted
	q.index = index
}
