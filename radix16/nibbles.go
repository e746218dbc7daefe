package radix16

import (
	"bytes"
	"fmt"
)

const (
	nibbleWidth = 4
	nibbleMask  = (1 << nibbleWidth) - 1 // 0b1111
	highMask    = nibbleMask << nibbleWidth
)

// Nibbles is an ordered sequence of 4-bit symbols packed two per byte,
// high nibble first. A sequence of odd length keeps the low nibble of
// its final byte zeroed, so two equal sequences are always bit-identical.
type Nibbles struct {
	data []byte
	size int
}

// FromBytes views a byte sequence as its nibble expansion. The bytes
// are copied, so the caller keeps ownership of key.
func FromBytes(key []byte) Nibbles {
	data := make([]byte, len(key))
	copy(data, key)

	return Nibbles{data: data, size: len(key) * 2}
}

// Len returns the number of nibbles in the sequence.
func (ns Nibbles) Len() int {
	return ns.size
}

// At returns the i-th nibble. All indices are derived from length
// checks, so an out-of-range index is a bug in the caller.
func (ns Nibbles) At(i int) byte {
	if i < 0 || i >= ns.size {
		panic(fmt.Sprintf("radix16: nibble index %d out of range [0..%d)", i, ns.size))
	}

	b := ns.data[i>>1]
	if i&1 == 0 {
		return b >> nibbleWidth
	}

	return b & nibbleMask
}

// Push appends one nibble, growing the backing storage by a byte only
// when the current length is even.
func (ns *Nibbles) Push(nib byte) {
	if nib > nibbleMask {
		panic(fmt.Sprintf("radix16: %#x is not a nibble", nib))
	}

	if ns.size&1 == 0 {
		ns.data = append(ns.data, nib<<nibbleWidth)
	} else {
		ns.data[len(ns.data)-1] |= nib
	}

	ns.size++
}

// Split partitions the sequence into a head of length at and a tail
// holding the rest. Both parts get their own storage. When at is odd
// the cut falls mid-byte: the head's final low nibble is zeroed and the
// tail is rebuilt shifted by half a byte.
func (ns Nibbles) Split(at int) (head, tail Nibbles) {
	if at < 0 || at > ns.size {
		panic(fmt.Sprintf("radix16: split index %d out of range [0..%d]", at, ns.size))
	}

	head = Nibbles{data: make([]byte, (at+1)/2), size: at}
	copy(head.data, ns.data)

	tail = Nibbles{data: make([]byte, (ns.size-at+1)/2), size: ns.size - at}

	if at&1 == 0 {
		copy(tail.data, ns.data[at/2:])
		return head, tail
	}

	head.data[len(head.data)-1] &= highMask

	for j := range tail.data {
		b := ns.data[at/2+j] << nibbleWidth
		if at/2+j+1 < len(ns.data) {
			b |= ns.data[at/2+j+1] >> nibbleWidth
		}
		tail.data[j] = b
	}

	return head, tail
}

// Join concatenates two sequences into a new one. For an even-length a
// the tail bytes are reused verbatim; otherwise the tail is re-packed
// nibble by nibble across the half-byte boundary.
func Join(a, b Nibbles) Nibbles {
	out := Nibbles{
		data: make([]byte, len(a.data), (a.size+b.size+1)/2),
		size: a.size,
	}
	copy(out.data, a.data)

	if a.size&1 == 0 {
		out.data = append(out.data, b.data...)
		out.size += b.size

		return out
	}

	for i := 0; i < b.size; i++ {
		out.Push(b.At(i))
	}

	return out
}

// CommonPrefixLen returns the length of the longest shared leading
// nibble run of a and b.
func CommonPrefixLen(a, b Nibbles) int {
	min := a.size
	if b.size < min {
		min = b.size
	}

	// compare whole bytes first
	i := 0
	for ; i < min>>1; i++ {
		if a.data[i] != b.data[i] {
			break
		}
	}

	n := i * 2
	for n < min && a.At(n) == b.At(n) {
		n++
	}

	return n
}

// Equal reports whether two sequences hold the same nibbles. Thanks to
// the zero-padding invariant this is a plain storage comparison.
func (ns Nibbles) Equal(other Nibbles) bool {
	return ns.size == other.size && bytes.Equal(ns.data, other.data)
}

// Clone returns a copy backed by its own storage.
func (ns Nibbles) Clone() Nibbles {
	data := make([]byte, len(ns.data))
	copy(data, ns.data)

	return Nibbles{data: data, size: ns.size}
}

// String renders the sequence as lowercase hex digits, one per nibble.
func (ns Nibbles) String() string {
	const digits = "0123456789abcdef"

	buf := make([]byte, ns.size)
	for i := range buf {
		buf[i] = digits[ns.At(i)]
	}

	return string(buf)
}

// wellFormed checks the storage length and the odd-length padding
// invariant. A violation corrupts any following Push or Join.
func (ns Nibbles) wellFormed() bool {
	if len(ns.data) != (ns.size+1)/2 {
		return false
	}
	if ns.size&1 == 1 && ns.data[len(ns.data)-1]&nibbleMask != 0 {
		return false
	}

	return true
}
