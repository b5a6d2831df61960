package memo

import "sync/atomic"

// Table is a Trie that can be resized at runtime by swapping in an empty one.
type Table[O any] struct {
	trie atomic.Pointer[Trie[O]]
}

// NewTable returns a Table backed by a Trie of maxSize.
func NewTable[O any](maxSize uint32) *Table[O] {
	t := &Table[O]{}
	t.Reset(maxSize)
	return t
}

// Reset drops every entry and continues with a Trie of maxSize.
func (t *Table[O]) Reset(maxSize uint32) {
	t.trie.Store(NewTrie[O](maxSize))
}

// LoadOrCompute delegates to the current Trie.
func (t *Table[O]) LoadOrCompute(keys []Key, compute func() O) O {
	return t.trie.Load().LoadOrCompute(keys, compute)
}

// Load delegates to the current Trie.
func (t *Table[O]) Load(keys []Key) (O, bool) {
	return t.trie.Load().Load(keys)
}
