package bst

import (
	"encoding/binary"
	"fmt"
	"hash/maphash"
	"strings"
)

// String lists the elements in ascending order, separated by " -> ". An empty
// tree is rendered as "null".
func (t *Tree[V]) String() string {
	if t.root == nil {
		return "null"
	}
	var b strings.Builder
	t.Ascend(func(v V) bool {
		if b.Len() > 0 {
			b.WriteString(" -> ")
		}
		fmt.Fprint(&b, v)
		return true
	})
	return b.String()
}

// Equal reports whether t and other have the same shape with equal values in
// the same positions. Two trees built from different insertion orders are
// equal if they end up with the same shape. A nil other is an empty tree.
func (t *Tree[V]) Equal(other *Tree[V]) bool {
	if other == nil {
		return t.root == nil
	}
	return t.root.equal(other.root, t.compare)
}

var hashSeed = maphash.MakeSeed()

// Hash returns a hash of the tree that agrees with Equal. For a tree built
// with New it covers the shape and the values. A comparator passed to NewFunc
// may treat values that look different as equal, so for those trees Hash
// covers only the shape. Hashes are only comparable within one process.
func (t *Tree[V]) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	t.root.writeHash(&h, t.key)
	return h.Sum64()
}

// writeHash feeds a pre-order encoding of n to h: a 0 byte for an empty
// subtree, otherwise a 1 byte, the length-prefixed key of the value when key
// is set, then both children.
func (n *node[V]) writeHash(h *maphash.Hash, key func(V) string) {
	if n == nil {
		h.WriteByte(0)
		return
	}
	h.WriteByte(1)
	if key != nil {
		s := key(n.value)
		var l [8]byte
		binary.LittleEndian.PutUint64(l[:], uint64(len(s)))
		h.Write(l[:])
		h.WriteString(s)
	}
	n.left.writeHash(h, key)
	n.right.writeHash(h, key)
}
