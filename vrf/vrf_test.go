package vrf

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerifyRoundTrip(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	input := []byte("label:fresh:3")
	proof, wantOutput := GenerateProof(priv, input)

	gotOutput, err := Verify(pub, input, proof)
	require.NoError(t, err)
	require.Equal(t, wantOutput, gotOutput)
}

func TestVerifyRejectsWrongInput(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	proof, _ := GenerateProof(priv, []byte("label:fresh:3"))

	_, err = Verify(pub, []byte("label:fresh:4"), proof)
	require.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	_, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	otherPub, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	input := []byte("label:fresh:1")
	proof, _ := GenerateProof(priv, input)

	_, err = Verify(otherPub, input, proof)
	require.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerifyRejectsBadPublicKeyLength(t *testing.T) {
	_, err := Verify(ed25519.PublicKey{0x01, 0x02}, []byte("x"), []byte("y"))
	require.ErrorIs(t, err, ErrInvalidPublicKey)
}

func TestGenerateProofIsDeterministic(t *testing.T) {
	_, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	input := []byte("label:stale:2")
	proof1, out1 := GenerateProof(priv, input)
	proof2, out2 := GenerateProof(priv, input)
	require.Equal(t, proof1, proof2)
	require.Equal(t, out1, out2)
}
