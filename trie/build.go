package trie

import (
	"bytes"
	"hash"
	"sort"
)

// Tree is an in-memory crit-bit Merkle trie, built once from a complete,
// sorted entry set. It has no append/update operations: fixtures that need a
// new version rebuild the whole tree, the way akdtest rebuilds over every
// leaf it holds whenever a root or proof is requested.
type Tree struct {
	root *node
}

// Build constructs a Tree from entries, which must be sorted by Key in
// strictly increasing order (bytes.Compare). This mirrors the
// strictly-increasing-key requirement go-merklelog/urkle places on its
// streaming builder; here it is simply a precondition checked up front
// since the whole key set is available at once.
func Build(hasher hash.Hash, entries []Entry) (*Tree, Digest, error) {
	if len(entries) == 0 {
		return nil, Digest{}, ErrEmptyEntrySet
	}
	for i, e := range entries {
		if i == 0 {
			continue
		}
		cmp := bytes.Compare(entries[i-1].Key[:], e.Key[:])
		if cmp == 0 {
			return nil, Digest{}, ErrDuplicateKey
		}
		if cmp > 0 {
			return nil, Digest{}, ErrOutOfOrderKey
		}
	}

	root := buildRange(hasher, entries)
	return &Tree{root: root}, root.hash, nil
}

// buildRange recursively splits entries on the highest bit at which the
// first and last element of the range differ, binary-searching for the
// split point. This produces the same shape a crit-bit trie built by
// sequential insertion would produce, without needing the incremental
// frontier machinery go-merklelog/urkle uses for append-only storage.
func buildRange(hasher hash.Hash, entries []Entry) *node {
	if len(entries) == 1 {
		e := entries[0]
		return &node{
			kind:  kindLeaf,
			key:   e.Key,
			value: e.Value,
			hash:  hashLeaf(hasher, e.Key, e.Value),
		}
	}

	bit := topDifferingBit(entries[0].Key, entries[len(entries)-1].Key)
	split := sort.Search(len(entries), func(i int) bool {
		return bitAt(entries[i].Key, bit) == 1
	})
	// split must be in (0, len(entries)) because entries[0] has bit==0 and
	// entries[len-1] has bit==1 at the chosen bit index.

	left := buildRange(hasher, entries[:split])
	right := buildRange(hasher, entries[split:])
	return &node{
		kind:  kindBranch,
		bit:   bit,
		left:  left,
		right: right,
		hash:  hashBranch(hasher, bit, left.hash, right.hash),
	}
}

// Root returns the tree's root commitment.
func (t *Tree) Root() Digest {
	return t.root.hash
}
