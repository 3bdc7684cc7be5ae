// Package akdref is a reference akd.Configuration implementation: sha256
// commitments, the package vrf ed25519-based VRF, and package trie as the
// Merkle membership/non-membership primitive, with proofs carried over the
// wire as CBOR (github.com/fxamacker/cbor/v2, the same codec the wider
// go-akd-verify dependency set uses for checkpoint and receipt payloads).
//
// It exists so the verifier package's Configuration interface has a
// concrete, testable implementation, and so package akdtest has something
// to build fixtures against. A real directory deployment is free to swap in
// its own Configuration - a different hash, a production VRF, a different
// membership scheme - without this package or the verifier caring.
package akdref
