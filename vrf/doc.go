// Package vrf provides a reference verifiable random function used to turn
// a directory label into the leaf index a client checks membership proofs
// against, so that the server cannot selectively enumerate or correlate
// labels from the public root alone.
//
// This is a simplified VRF built from an ed25519 signature: the proof is a
// deterministic ed25519 signature over the domain-separated input, and the
// VRF output is a hash of that signature. This is the same construction
// used for demonstration VRF providers elsewhere in the ecosystem; a
// production directory should use a proper draft-irtf-cfrg-vrf
// construction (ECVRF-EDWARDS25519-SHA512-TAI) instead, since a bare
// signature-as-VRF only gives pseudorandomness, not the full VRF
// uniqueness guarantee under adversarial key generation.
package vrf
