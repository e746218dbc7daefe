package radix16

import "fmt"

// CheckIntegrity validates every structural invariant of the trie and
// returns a description of the first violation found, or nil. A
// violation means a mutation left the tree in a state it must never
// reach, so this is a test-time tool, not something to call on a hot
// path.
//
// Checked invariants:
//   - every fragment keeps the odd-length zero-padding;
//   - the child bitmap matches the occupied slots;
//   - no non-root node is left without both children and an entry;
//   - no node has a single child and no entry (missed merge);
//   - concatenating fragments from the root reproduces the nibble
//     expansion of every stored key;
//   - the entry counter matches the number of entries in the tree.
func (t *Trie[K, V]) CheckIntegrity() error {
	found := 0

	if err := t.checkNode(t.root, Nibbles{}, true, &found); err != nil {
		return err
	}

	if found != t.size {
		return fmt.Errorf("radix16: Len reports %d entries but the tree holds %d", t.size, found)
	}

	return nil
}

func (t *Trie[K, V]) checkNode(n *node[K, V], path Nibbles, isRoot bool, found *int) error {
	if !n.frag.wellFormed() {
		return fmt.Errorf("radix16: malformed fragment storage below path %q", path.String())
	}

	width := 0
	for nib, child := range n.children {
		occupied := n.bitmap&(1<<nib) != 0

		switch {
		case child == nil && occupied:
			return fmt.Errorf("radix16: bitmap claims child %x below path %q but the slot is empty", nib, path.String())
		case child != nil && !occupied:
			return fmt.Errorf("radix16: child %x below path %q is missing from the bitmap", nib, path.String())
		case child != nil:
			width++
		}
	}

	full := Join(path, n.frag)

	if n.kv == nil {
		switch width {
		case 0:
			if !isRoot {
				return fmt.Errorf("radix16: dangling node at path %q: no entry and no children", full.String())
			}
			if n.frag.Len() != 0 {
				return fmt.Errorf("radix16: empty root kept fragment %q", n.frag.String())
			}
		case 1:
			return fmt.Errorf("radix16: uncompressed node at path %q: single child and no entry", full.String())
		}
	}

	if n.kv != nil {
		*found++

		want := FromBytes(t.enc(n.kv.Key))
		if !full.Equal(want) {
			return fmt.Errorf("radix16: entry for key %q stored at path %q", want.String(), full.String())
		}
	}

	for nib, child := range n.children {
		if child == nil {
			continue
		}

		sub := full.Clone()
		sub.Push(byte(nib))

		if err := t.checkNode(child, sub, false, found); err != nil {
			return err
		}
	}

	return nil
}
