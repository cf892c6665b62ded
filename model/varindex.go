package model

// BayIndexer fixes a stable iteration order over every bay key, shared by
// every turn's slice of the x variable space so buildVariableList and
// buildObjective enumerate bays identically.
type BayIndexer struct {
	keys []BayKey
}

// NewBayIndexer builds a stable ordering over every bay key. Callers should
// build one indexer per run and reuse it everywhere variables are enumerated.
func NewBayIndexer(keys []BayKey) *BayIndexer {
	return &BayIndexer{keys: append([]BayKey(nil), keys...)}
}

// Len returns the total number of bays (n_bays_total).
func (b *BayIndexer) Len() int {
	return len(b.keys)
}

// Keys returns the full ordered key slice.
func (b *BayIndexer) Keys() []BayKey {
	return b.keys
}
