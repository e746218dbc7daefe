package radix16

import (
	"math/bits"

	"github.com/hideo55/go-popcount"
)

// branchFactor is the trie's alphabet size: one child slot per nibble.
const branchFactor = 1 << nibbleWidth

// KV is a single key/value entry.
type KV[K, V any] struct {
	Key K
	Val V
}

// node is one trie node. It exclusively owns its children; nothing in
// the tree points back up. frag holds the compressed nibble run from
// the branch point above down to this node's key boundary or next
// branch, excluding the branch nibble itself (that is the child index).
type node[K, V any] struct {
	frag     Nibbles
	kv       *KV[K, V]
	children [branchFactor]*node[K, V]
	bitmap   uint16 // occupied slots of children
}

func (n *node[K, V]) width() int {
	return int(popcount.Count(uint64(n.bitmap)))
}

func (n *node[K, V]) attach(nib byte, child *node[K, V]) {
	n.children[nib] = child
	n.bitmap |= 1 << nib
}

func (n *node[K, V]) detach(nib byte) {
	n.children[nib] = nil
	n.bitmap &^= 1 << nib
}

// soleChild returns the only occupied slot. Callers guarantee width()==1.
func (n *node[K, V]) soleChild() (byte, *node[K, V]) {
	nib := byte(bits.TrailingZeros16(n.bitmap))
	return nib, n.children[nib]
}

// walk descends to the node whose accumulated path consumes rem
// exactly, or returns nil when the path diverges or runs out. Get,
// GetRef and Has all share this traversal; whether the entry is then
// read or written is up to the caller.
func (n *node[K, V]) walk(rem Nibbles) *node[K, V] {
	p := CommonPrefixLen(n.frag, rem)

	if p < n.frag.Len() {
		// diverged inside the fragment
		return nil
	}

	if p == rem.Len() {
		return n
	}

	child := n.children[rem.At(p)]
	if child == nil {
		return nil
	}

	_, suffix := rem.Split(p + 1)

	return child.walk(suffix)
}

// set stores kv at the position addressed by rem, splitting this
// node's fragment when the key diverges before its end. It returns the
// displaced value if the key already existed.
func (n *node[K, V]) set(rem Nibbles, kv KV[K, V]) (prev V, replaced bool) {
	p := CommonPrefixLen(n.frag, rem)

	if p < n.frag.Len() {
		// the key diverges inside the fragment: cut the fragment at p
		// and push this node's entry and children one level down
		head, tail := n.frag.Split(p)
		_, innerFrag := tail.Split(1)

		inner := &node[K, V]{
			frag:     innerFrag,
			kv:       n.kv,
			children: n.children,
			bitmap:   n.bitmap,
		}

		n.frag = head
		n.kv = nil
		n.children = [branchFactor]*node[K, V]{}
		n.bitmap = 0
		n.attach(tail.At(0), inner)
	}

	if p == rem.Len() {
		// the key ends here (possibly right at the fresh split point)
		if n.kv != nil {
			prev, replaced = n.kv.Val, true
		}
		n.kv = &kv

		return prev, replaced
	}

	nib := rem.At(p)
	_, suffix := rem.Split(p + 1)

	if child := n.children[nib]; child != nil {
		return child.set(suffix, kv)
	}

	n.attach(nib, &node[K, V]{frag: suffix, kv: &kv})

	return prev, false
}
