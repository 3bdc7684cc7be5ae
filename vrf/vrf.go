package vrf

import (
	"crypto/ed25519"
	"crypto/sha256"
	"errors"
)

// Output is the deterministic, uniformly-distributed VRF output derived
// from a verified proof.
type Output [32]byte

var (
	ErrInvalidPublicKey = errors.New("vrf: public key has wrong length for ed25519")
	ErrInvalidSignature = errors.New("vrf: proof does not verify against input and public key")
)

// Verify checks proof as an ed25519 signature by publicKey over input, and
// on success returns the VRF output: sha256 of the signature itself.
// Because ed25519 signing is deterministic, the same (key, input) always
// reproduces the same proof and hence the same output, which is what lets a
// verifier treat Verify's result as a commitment to a single leaf index.
func Verify(publicKey ed25519.PublicKey, input []byte, proof []byte) (Output, error) {
	if len(publicKey) != ed25519.PublicKeySize {
		return Output{}, ErrInvalidPublicKey
	}
	if !ed25519.Verify(publicKey, input, proof) {
		return Output{}, ErrInvalidSignature
	}
	return sha256.Sum256(proof), nil
}

// GenerateProof produces the VRF proof and output for input under priv. It
// exists for building test fixtures and reference directory
// implementations; the verifier in this module never calls it.
func GenerateProof(priv ed25519.PrivateKey, input []byte) ([]byte, Output) {
	sig := ed25519.Sign(priv, input)
	return sig, sha256.Sum256(sig)
}
