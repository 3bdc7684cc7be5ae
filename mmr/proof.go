package mmr

import (
	"errors"
)

// InclusionProof collects the merkle proof mmr index i
//
// For the following index tree, and i=15 with mmrSize = 26 we would obtain the path
//
// [H(16), H(20)]
//
// Because the accumulator peak committing 15 is 21, and given the value for 15, we only need 16 and
// then 20 to verify the proof.
//
//	3              14
//	             /    \
//	            /      \
//	           /        \
//	          /          \
//	2        6            13           21
//	       /   \        /    \
//	1     2     5      9     12     17     20     24
//	     / \   / \    / \   /  \   /  \
//	0   0   1 3   4  7   8 10  11 15  16 18  19 22  23   25
func InclusionProof(store indexStoreGetter, mmrLastIndex uint64, i uint64) ([][]byte, error) {

	var iSibling uint64

	var proof [][]byte

	if i > mmrLastIndex {
		return nil, errors.New("index out of range")
	}

	g := IndexHeight(i) // allows for proofs of interior nodes

	for { // iSibling is guaranteed to break the loop

		// The sibling of i is at i +/- 2^(g+1)
		siblingOffset := uint64((2 << g))

		// If the index after i is heigher, it is the left parent, and i is the right sibling.
		if IndexHeight(i+1) > g {
			// The witness to the right sibling is offset behind i
			iSibling = i - siblingOffset + 1

			// The parent of a right sibling is stored imediately after the sibling
			i += 1
		} else {

			// The witness to the left sibling is offset ahead of i
			iSibling = i + siblingOffset - 1

			// The parent of a left sibling is stored imediately after its right sibling
			i += siblingOffset
		}

		// When the computed sibling exceedes the range of MMR(C+1),
		// we have completed the path.
		if iSibling > mmrLastIndex {
			return proof, nil
		}

		value, err := store.Get(iSibling)
		if err != nil {
			return nil, err
		}
		proof = append(proof, value)

		// Set g to the height of the next item in the path.
		g += 1
	}
}
