// Package akdtest is an in-memory fixture builder for the verifier in the
// root package: it plays the part of an AKD directory server well enough to
// produce real, internally-consistent UpdateProof / HistoryProof /
// HistoryProofV2 bundles for tests, the way package mmrtesting in
// go-merklelog plays the part of a populated MMR log for its own tests.
//
// It is test-only scaffolding, not a production directory implementation:
// it keeps every leaf it has ever written in memory, rebuilds the whole
// tree from scratch whenever a root or proof is requested, and never
// persists anything.
package akdtest
