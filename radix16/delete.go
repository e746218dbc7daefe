package radix16

// A recursive del call cannot restructure its parent directly: nodes
// hold no parent references and the parent's child slot is borrowed for
// the duration of the call. Instead del reports a verdict which the
// caller applies to the slot after the call returns.
type verdictKind int

const (
	doNothing   verdictKind = iota // subtree structurally unchanged
	deleteNode                     // subtree is empty, clear the slot
	replaceNode                    // subtree collapsed into repl
)

type verdict[K, V any] struct {
	kind verdictKind
	repl *node[K, V] // set iff kind == replaceNode
}

func keep[K, V any]() verdict[K, V] {
	return verdict[K, V]{kind: doNothing}
}

// del removes the entry addressed by rem from the subtree rooted at n.
// It returns the removed value, if any, and the verdict the caller must
// apply to the slot holding n.
func (n *node[K, V]) del(rem Nibbles) (prev V, removed bool, act verdict[K, V]) {
	p := CommonPrefixLen(n.frag, rem)

	if p < n.frag.Len() {
		// diverged inside the fragment - nothing stored under rem
		return prev, false, keep[K, V]()
	}

	if p == rem.Len() {
		// rem ends exactly at this node
		if n.kv == nil {
			return prev, false, keep[K, V]()
		}

		prev, removed = n.kv.Val, true
		n.kv = nil

		return prev, removed, n.collapse()
	}

	nib := rem.At(p)
	child := n.children[nib]
	if child == nil {
		return prev, false, keep[K, V]()
	}

	_, suffix := rem.Split(p + 1)
	prev, removed, act = child.del(suffix)

	// the recursive call is done with the slot - apply its verdict
	switch act.kind {
	case replaceNode:
		n.children[nib] = act.repl
	case deleteNode:
		n.detach(nib)
		return prev, removed, n.collapse()
	}

	return prev, removed, keep[K, V]()
}

// collapse re-evaluates this node after it lost its entry or a child
// and tells the parent what to do with it. A node left with a single
// child and no entry must not survive: it is merged with that child so
// the path stays compressed.
func (n *node[K, V]) collapse() verdict[K, V] {
	if n.kv != nil {
		return keep[K, V]()
	}

	switch n.width() {
	case 0:
		return verdict[K, V]{kind: deleteNode}

	case 1:
		nib, child := n.soleChild()

		frag := n.frag.Clone()
		frag.Push(nib)

		return verdict[K, V]{
			kind: replaceNode,
			repl: &node[K, V]{
				frag:     Join(frag, child.frag),
				kv:       child.kv,
				children: child.children,
				bitmap:   child.bitmap,
			},
		}
	}

	return keep[K, V]()
}
