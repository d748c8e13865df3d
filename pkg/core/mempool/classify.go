package mempool

// txKind is the tagged classification computed once per transaction on
// admission, per the design note in spec section 9: avoid repeating the
// "type == MULTI || signatures present" predicate inline.
type txKind int

const (
	kindPlain txKind = iota
	kindMultisig
	kindBundled
)

// classify determines which queue a freshly-verified transaction belongs
// in, per spec invariant 4 and section 4.2 step 2. bundled status is
// checked first by the caller (queueTransaction); classify only
// distinguishes multisig from plain.
func classify(tx Transaction) txKind {
	if tx.Type() == MultiType {
		return kindMultisig
	}
	if _, present := tx.Signatures(); present {
		return kindMultisig
	}
	return kindPlain
}

// ttlSeconds computes the type-dependent expiry TTL of spec section 4.5.
func ttlSeconds(tx Transaction, baseTimeout int) int64 {
	if tx.Type() == MultiType {
		asset := tx.MultisigAsset()
		lifetime := 0
		if asset != nil {
			lifetime = asset.Lifetime
		}
		return int64(lifetime) * 3600
	}
	if _, present := tx.Signatures(); present {
		return int64(baseTimeout) * 8
	}
	return int64(baseTimeout)
}
