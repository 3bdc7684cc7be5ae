/*
Package trie provides a reference implementation of the keyed Merkle
membership/non-membership primitive that the verifier in this module treats
as an external collaborator (see package akd, base.go).

It follows the same "functional primitives" style as go-merklelog/mmr and its
sibling urkle package: small composable functions, explicit hash domains, and
a crit-bit (PATRICIA) trie shape rather than a dense binary tree, so that
sparse 256-bit key spaces (VRF outputs) don't require materializing empty
subtrees.

Keys here are full 32-byte digests (typically the output of a VRF applied to
a directory label), not the 64-bit monotone keys used by go-merklelog/urkle.
Because the verifier never builds trees in production - only servers do,
and proof construction is explicitly out of scope for this module - the
builder in build.go exists purely to manufacture fixtures for tests
(package akdtest leans on it), mirroring the role go-merklelog/mmrtesting
plays for the mmr package.

Layout:

  - types.go   node/entry/proof-step shapes and sentinel errors
  - hash.go    the two hash domains (leaf, branch)
  - build.go   crit-bit construction from a sorted key set (test-only use)
  - proof.go   inclusion/exclusion proof generation and verification
*/
package trie
