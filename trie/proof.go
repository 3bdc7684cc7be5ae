package trie

import "hash"

// ProveInclusion generates an inclusion proof for key under t.
func (t *Tree) ProveInclusion(key Key) (InclusionProof, error) {
	if t == nil || t.root == nil {
		return InclusionProof{}, ErrEmptyTrie
	}
	leaf, steps := descend(t.root, key)
	if leaf.key != key {
		return InclusionProof{}, ErrKeyNotFound
	}
	return InclusionProof{
		Key:   key,
		Value: leaf.value,
		Steps: reverseSteps(steps),
	}, nil
}

// ProveExclusion generates an exclusion proof for targetKey under t.
func (t *Tree) ProveExclusion(targetKey Key) (ExclusionProof, error) {
	if t == nil || t.root == nil {
		return ExclusionProof{}, ErrEmptyTrie
	}
	leaf, steps := descend(t.root, targetKey)
	if leaf.key == targetKey {
		return ExclusionProof{}, ErrKeyPresent
	}
	return ExclusionProof{
		TargetKey:      targetKey,
		EncounteredKey: leaf.key,
		Value:          leaf.value,
		Steps:          reverseSteps(steps),
	}, nil
}

// VerifyInclusion verifies an inclusion proof against expectedRoot.
func VerifyInclusion(hasher hash.Hash, expectedRoot Digest, p InclusionProof) (bool, error) {
	cur := hashLeaf(hasher, p.Key, p.Value)
	for _, s := range p.Steps {
		if s.Dir != bitAt(p.Key, s.Bit) {
			return false, ErrVerifyInclusionFailed
		}
		cur = combine(hasher, s, cur)
	}
	if cur != expectedRoot {
		return false, ErrVerifyInclusionFailed
	}
	return true, nil
}

// VerifyExclusion verifies an exclusion proof against expectedRoot.
func VerifyExclusion(hasher hash.Hash, expectedRoot Digest, p ExclusionProof) (bool, error) {
	if p.EncounteredKey == p.TargetKey {
		return false, ErrVerifyExclusionFailed
	}
	cur := hashLeaf(hasher, p.EncounteredKey, p.Value)
	for _, s := range p.Steps {
		// The proof path must be the search path for TargetKey, not
		// EncounteredKey - that's what shows the trie has no better match.
		if s.Dir != bitAt(p.TargetKey, s.Bit) {
			return false, ErrVerifyExclusionFailed
		}
		cur = combine(hasher, s, cur)
	}
	if cur != expectedRoot {
		return false, ErrVerifyExclusionFailed
	}
	return true, nil
}

func combine(hasher hash.Hash, s ProofStep, cur Digest) Digest {
	if s.Dir == 0 {
		return hashBranch(hasher, s.Bit, cur, s.SiblingHash)
	}
	return hashBranch(hasher, s.Bit, s.SiblingHash, cur)
}

// descend walks from root towards key, returning the leaf actually reached
// (which may not carry key, in the exclusion case) and the steps taken in
// root -> leaf order.
func descend(root *node, key Key) (*node, []ProofStep) {
	cur := root
	var steps []ProofStep
	for cur.kind == kindBranch {
		dir := bitAt(key, cur.bit)
		var next, sib *node
		if dir == 0 {
			next, sib = cur.left, cur.right
		} else {
			next, sib = cur.right, cur.left
		}
		steps = append(steps, ProofStep{Bit: cur.bit, Dir: dir, SiblingHash: sib.hash})
		cur = next
	}
	return cur, steps
}

func reverseSteps(in []ProofStep) []ProofStep {
	out := make([]ProofStep, len(in))
	copy(out, in)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
