package epochlog

import (
	"crypto/ecdsa"
	"crypto/rand"
	"fmt"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/fxamacker/cbor/v2"
	"github.com/veraison/go-cose"
)

// Sign produces a COSE_Sign1 checkpoint over state, signed with privateKey
// (an ECDSA P-256 key, COSE algorithm ES256) and identified in the protected
// header by keyID.
//
// Grounded on massifs.RootSigner.Sign1, simplified: this repository signs a
// single EpochState payload directly rather than pre-signing a COSE Receipt
// per MMR peak, since a single log/single signer trust model has no need for
// the datatrails multi-tenant receipt scheme.
func Sign(privateKey *ecdsa.PrivateKey, keyID string, state EpochState) ([]byte, error) {
	payload, err := cbor.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("epochlog: encoding state: %w", err)
	}

	signer, err := cose.NewSigner(cose.AlgorithmES256, privateKey)
	if err != nil {
		return nil, fmt.Errorf("epochlog: constructing signer: %w", err)
	}

	msg := cose.NewSign1Message()
	msg.Headers.Protected.SetAlgorithm(cose.AlgorithmES256)
	msg.Headers.Protected[cose.HeaderLabelKeyID] = []byte(keyID)
	msg.Payload = payload

	if err := msg.Sign(rand.Reader, nil, signer); err != nil {
		return nil, fmt.Errorf("epochlog: signing checkpoint: %w", err)
	}

	logger.Sugar.Debugf("epochlog: signed checkpoint for log %s at epoch %d", state.LogID, state.Epoch)

	return msg.MarshalCBOR()
}

// VerifyCheckpoint verifies a COSE_Sign1 checkpoint against publicKey and
// returns the embedded EpochState.
//
// Grounded on massifs.DecodeSignedRoot / massifs.VerifySignedCheckPoint's
// decode-then-verify split, collapsed into one call since this repository's
// checkpoints are not re-signed after peak removal the way datatrails'
// published roots are.
func VerifyCheckpoint(publicKey *ecdsa.PublicKey, msg []byte) (EpochState, error) {
	var signed cose.Sign1Message
	if err := signed.UnmarshalCBOR(msg); err != nil {
		return EpochState{}, fmt.Errorf("epochlog: decoding checkpoint: %w", err)
	}

	alg, err := signed.Headers.Protected.Algorithm()
	if err != nil {
		return EpochState{}, fmt.Errorf("epochlog: reading checkpoint algorithm: %w", err)
	}
	verifier, err := cose.NewVerifier(alg, publicKey)
	if err != nil {
		return EpochState{}, fmt.Errorf("epochlog: constructing verifier: %w", err)
	}
	if err := signed.Verify(nil, verifier); err != nil {
		return EpochState{}, fmt.Errorf("epochlog: checkpoint signature invalid: %w", err)
	}

	var state EpochState
	if err := cbor.Unmarshal(signed.Payload, &state); err != nil {
		return EpochState{}, fmt.Errorf("epochlog: decoding state: %w", err)
	}

	logger.Sugar.Debugf("epochlog: verified checkpoint for log %s at epoch %d", state.LogID, state.Epoch)

	return state, nil
}
