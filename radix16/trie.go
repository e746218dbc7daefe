package radix16

import "fmt"

// Trie is a 16-way radix trie mapping keys of type K to values of type
// V. Keys are addressed by the nibble expansion of their byte
// serialization, so any key type works as long as the caller supplies a
// deterministic, lossless encoder.
//
// A Trie must not be used from multiple goroutines without external
// synchronization.
type Trie[K, V any] struct {
	enc  func(K) []byte
	root *node[K, V]
	size int
}

// New creates an empty trie keyed through the given encoder. The
// encoder must be deterministic and lossless: two keys encoding to the
// same bytes are the same key.
func New[K, V any](enc func(K) []byte) *Trie[K, V] {
	if enc == nil {
		panic("radix16: nil key encoder")
	}

	return &Trie[K, V]{enc: enc, root: &node[K, V]{}}
}

// NewBytes creates a trie keyed by raw byte slices.
func NewBytes[V any](init ...KV[[]byte, V]) *Trie[[]byte, V] {
	t := New[[]byte, V](func(key []byte) []byte { return key })

	for _, kv := range init {
		t.Set(kv.Key, kv.Val)
	}

	return t
}

// NewString creates a trie keyed by strings.
func NewString[V any](init ...KV[string, V]) *Trie[string, V] {
	t := New[string, V](func(key string) []byte { return []byte(key) })

	for _, kv := range init {
		t.Set(kv.Key, kv.Val)
	}

	return t
}

// Len returns the number of stored entries.
func (t *Trie[K, V]) Len() int {
	return t.size
}

// Empty reports whether the trie holds no entries.
func (t *Trie[K, V]) Empty() bool {
	return t.size == 0
}

// Get returns the value associated with the key.
func (t *Trie[K, V]) Get(key K) (val V, ok bool) {
	if kv := t.find(key); kv != nil {
		return kv.Val, true
	}

	return val, false
}

// GetRef returns a pointer to the stored value so the caller can update
// it in place, or nil when the key is absent. The pointer stays valid
// until the next Set or Del.
func (t *Trie[K, V]) GetRef(key K) *V {
	if kv := t.find(key); kv != nil {
		return &kv.Val
	}

	return nil
}

// Has reports whether the key is present.
func (t *Trie[K, V]) Has(key K) bool {
	return t.find(key) != nil
}

func (t *Trie[K, V]) find(key K) *KV[K, V] {
	n := t.root.walk(FromBytes(t.enc(key)))
	if n == nil {
		return nil
	}

	return n.kv
}

// Set associates a value with a key and returns the previous value if
// the key already existed.
func (t *Trie[K, V]) Set(key K, val V) (prev V, replaced bool) {
	rem := FromBytes(t.enc(key))
	kv := KV[K, V]{Key: key, Val: val}

	if t.size == 0 {
		// the sentinel root absorbs the whole key
		t.root.frag = rem
		t.root.kv = &kv
		t.size++

		return prev, false
	}

	prev, replaced = t.root.set(rem, kv)
	if !replaced {
		t.size++
	}

	return prev, replaced
}

// Del removes the key and returns its value if it was present.
func (t *Trie[K, V]) Del(key K) (prev V, removed bool) {
	prev, removed, act := t.root.del(FromBytes(t.enc(key)))

	// the root has no parent, so the wrapper applies the verdict
	switch act.kind {
	case deleteNode:
		t.root = &node[K, V]{}
	case replaceNode:
		t.root = act.repl
	}

	if removed {
		t.size--
	}

	return prev, removed
}

// DebugDump prints the tree structure to stdout.
func (t *Trie[K, V]) DebugDump() {
	t.debugDump(t.root, "T:", "")
}

func (t *Trie[K, V]) debugDump(n *node[K, V], tag, indent string) {
	entry := ""
	if n.kv != nil {
		entry = fmt.Sprintf(" key=%v val=%v", n.kv.Key, n.kv.Val)
	}

	fmt.Printf("%s%s frag=%q width=%d%s\n", indent, tag, n.frag.String(), n.width(), entry)

	for nib, child := range n.children {
		if child != nil {
			t.debugDump(child, fmt.Sprintf("%x:", nib), indent+"  ")
		}
	}
}
