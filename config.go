package akd

import "hash"

// Configuration abstracts the cryptographic primitives a directory
// implementation chose: the hash used for commitments, the VRF used to
// derive leaf indices from labels, and the Merkle membership/non-membership
// scheme the proofs were built against. The verifier in this package never
// picks a concrete hash or curve itself - it only calls out through this
// interface, the same way the package treats proof construction and storage
// as the directory's problem, not its own.
//
// A reference implementation, grounded on package trie and package vrf, is
// provided by package akdref for tests and for callers happy with the
// default choices.
type Configuration interface {
	// NewHasher returns a fresh hash.Hash used for commitments. Must be
	// safe to call repeatedly and must not retain state across calls.
	NewHasher() hash.Hash

	// StaleAzksValue is the fixed commitment substituted for a leaf's value
	// once that leaf has been superseded by a later version. It has no
	// preimage under Commit - it is a protocol-level sentinel, not a
	// committed value.
	StaleAzksValue() Digest

	// VRFInput builds the domain-separated input fed to the VRF for a given
	// label, freshness tag, and version. Two distinct (label, freshness,
	// version) triples must never collide.
	VRFInput(label Label, freshness Freshness, version Version) []byte

	// VerifyVRF checks vrfProof against domainInput under vrfPublicKey and,
	// on success, returns the deterministic output used as the leaf's index
	// into the membership structure.
	VerifyVRF(vrfPublicKey []byte, domainInput []byte, vrfProof []byte) (Digest, error)

	// VerifyMembership checks that index is present under rootHash at the
	// given epoch, returning the commitment recorded at that leaf.
	VerifyMembership(rootHash Digest, index Digest, epoch Epoch, membershipProof []byte) (Digest, error)

	// VerifyNonMembership checks that index is absent under rootHash.
	VerifyNonMembership(rootHash Digest, index Digest, nonMembershipProof []byte) error

	// Commit computes the commitment for a value under the given nonce.
	Commit(value Value, nonce []byte) Digest
}
