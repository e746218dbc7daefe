// Package radix16 defines an ordered associative container built on a
// 16-way radix trie keyed by 4-bit symbols (nibbles).
//
// Keys are arbitrary byte sequences viewed as their nibble expansion
// (high nibble of each byte first). Runs of non-branching nibbles are
// compressed into a single node fragment, and a value may be stored at
// any node on a path, not only at leaves.
//
// Each node has three fields:
// ---------------------------
//
//   - frag     - the nibble run from the branch point above the node down
//     to its own key boundary or its nearest branch;
//   - kv       - an optional key/value entry terminating at this node;
//   - children - up to 16 owned child slots, indexed by the nibble that
//     follows frag (the branch nibble itself is not repeated in
//     the child's fragment). A bitmap mirrors the occupied slots.
//
// Example trie:
// ------------
//
// After Set("cat", 1), Set("car", 2), Set("dog", 3) the tree is
//
//	[root frag="6"]--3--[frag="617"]--4--[frag="" kv=("cat",1)]
//	               |                \-2--[frag="" kv=("car",2)]
//	               |
//	               `-4--[frag="6f67" kv=("dog",3)]
//
// ("cat" is 636174 in nibbles and "car" is 636172, so they share the
// run 63617 and diverge on the final nibble; "dog" is 646f67 and splits
// off right after the leading 6.)
//
// Removal is driven one level above the affected node: a recursive call
// reports one of three verdicts - keep the child slot, clear it, or
// overwrite it with a merged replacement - and the caller applies the
// verdict after the call returns. This lets a subtree collapse without
// any node holding a reference to its parent.
//
// A Trie is a single-owner sequential structure. Callers that need
// concurrent access must synchronize around the whole trie.
package radix16
