package memo

import (
	"sync"
	"sync/atomic"
)

// Key is one level of a trie path. Every key must be comparable.
type Key = any

// Trie is a bounded memo table addressed by key paths.
//
// Entries live in two generations. Once the head generation holds maxSize
// entries the older generation is dropped and a fresh one becomes the head,
// so the table never holds more than 2*maxSize entries.
type Trie[O any] struct {
	memos   [2]atomic.Pointer[sync.Map]
	headIdx atomic.Uint32
	size    atomic.Uint32
	maxSize uint32
}

// Load looks the path up in the head generation first, then in the previous one.
func (t *Trie[O]) Load(keys []Key) (O, bool) {
	headIdx := t.headIdx.Load()
	if v, ok := t.load(t.memos[headIdx].Load(), keys); ok {
		return v, true
	}
	return t.load(t.memos[1-headIdx].Load(), keys)
}

func (t *Trie[O]) load(targetMap *sync.Map, keys []Key) (O, bool) {
	var zero O
	length := len(keys)
	if length == 0 {
		panic("memo: empty keys")
	}

	for _, k := range keys[:length-1] {
		v, ok := targetMap.Load(k)
		if !ok {
			return zero, false
		}
		targetMap = v.(*sync.Map)
	}
	v, ok := targetMap.Load(keys[length-1])
	if !ok {
		return zero, false
	}
	return v.(O), true
}

func (t *Trie[O]) traverse(targetMap *sync.Map, keys []Key) (*sync.Map, Key) {
	length := len(keys)
	if length == 0 {
		panic("memo: empty keys")
	}

	for _, k := range keys[:length-1] {
		v, _ := targetMap.LoadOrStore(k, &sync.Map{})
		targetMap = v.(*sync.Map)
	}
	return targetMap, keys[length-1]
}

// Store records value under the path, rotating generations when the head is full.
func (t *Trie[O]) Store(keys []Key, value O) {
	if swapped := t.size.CompareAndSwap(t.maxSize, 0); swapped {
		next := 1 - t.headIdx.Load()
		t.memos[next].Store(&sync.Map{})
		t.headIdx.Store(next)
	}
	m, k := t.traverse(t.memos[t.headIdx.Load()].Load(), keys)
	m.Store(k, value)
	t.size.Add(1)
}

// LoadOrCompute returns the memoized value for the path, computing and storing it on a miss.
// compute must be pure: concurrent misses on the same path may each run it.
func (t *Trie[O]) LoadOrCompute(keys []Key, compute func() O) O {
	if v, ok := t.Load(keys); ok {
		return v
	}
	v := compute()
	t.Store(keys, v)
	return v
}

// NewTrie returns an empty table rotating every maxSize stores.
func NewTrie[O any](maxSize uint32) *Trie[O] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	t := &Trie[O]{maxSize: maxSize}
	t.memos[0].Store(&sync.Map{})
	t.memos[1].Store(&sync.Map{})
	return t
}
