// Package akd implements the client-side verifier for key-history proofs
// produced by an Auditable Key Directory (AKD): an append-only, verifiable
// map from opaque labels to a versioned sequence of committed values,
// anchored by a Merkle root per epoch.
//
// The package is a pure, synchronous library. It never talks to a directory
// server, never persists anything, and never constructs proofs - it only
// checks ones handed to it against a trusted root hash and VRF public key.
// The hard part, and the reason this package exists at all, is
// KeyHistoryVerifyV2 (and its deprecated predecessor KeyHistoryVerify):
// cross-validating a bundle of interlocking sub-proofs whose shape is itself
// derived from the claimed version range.
//
// See SPEC_FULL.md for the full component breakdown; DESIGN.md records where
// each part is grounded.
package akd

import "fmt"

// Label identifies a directory entry (typically a username or account id).
// It is opaque to the verifier.
type Label []byte

func (l Label) String() string {
	return fmt.Sprintf("%x", []byte(l))
}

// Version is a label's 1-based, strictly increasing update counter.
type Version = uint64

// Epoch is the directory's logical clock. It is non-negative and strictly
// increasing across a single label's updates, though distinct labels may
// share an epoch.
type Epoch = uint64

// Value is an opaque, committed value. The distinguished TOMBSTONE pattern
// marks a value that has been redacted from storage.
type Value []byte

// TOMBSTONE is the sentinel value a directory substitutes for a value it has
// redacted. It is never a value a client could plausibly have committed
// (it isn't a valid commitment preimage under any configuration's hash),
// which is what lets AllowMissingValues skip the value-equality check
// safely: the cryptographic existence check still runs unchanged.
var TOMBSTONE = Value{0x00, 'T', 'O', 'M', 'B', 'S', 'T', 'O', 'N', 'E'}

// IsTombstone reports whether v is the TOMBSTONE sentinel.
func (v Value) IsTombstone() bool {
	if len(v) != len(TOMBSTONE) {
		return false
	}
	for i := range v {
		if v[i] != TOMBSTONE[i] {
			return false
		}
	}
	return true
}

// Freshness distinguishes a value's introduction leaf (Fresh) from the leaf
// recorded when it is superseded by a later version (Stale).
type Freshness uint8

const (
	Fresh Freshness = iota
	Stale
)

func (f Freshness) String() string {
	if f == Stale {
		return "stale"
	}
	return "fresh"
}

// Digest is the fixed-width output of the configuration's hash function.
type Digest [32]byte

// UpdateProof is everything needed to verify one claimed (version, epoch,
// value) entry in a label's history, plus - for every version after the
// first - the staleness proof for the version it superseded.
type UpdateProof struct {
	Version Version
	Epoch   Epoch
	Value   Value

	ExistenceVrfProof []byte
	ExistenceProof    []byte
	CommitmentNonce   []byte

	// PreviousVersionVrfProof and PreviousVersionProof are present iff
	// Version > 1: they prove the (version-1, Stale) leaf exists with the
	// configuration's stale sentinel committed at this update's epoch.
	PreviousVersionVrfProof []byte
	PreviousVersionProof    []byte
}

// HistoryProof is the legacy ("v1") proof bundle. update_proofs runs newest
// to oldest over a contiguous block of versions; the marker proofs cover
// every version and power-of-two from just above the last one up to the
// directory's current epoch.
type HistoryProof struct {
	UpdateProofs []UpdateProof

	UntilMarkerVrfProofs          [][]byte
	NonExistenceUntilMarkerProofs [][]byte

	FutureMarkerVrfProofs            [][]byte
	NonExistenceOfFutureMarkerProofs [][]byte
}

// HistoryProofV2 is the current proof bundle. It replaces v1's until/future
// marker skeleton with a symmetric past-marker-existence,
// future-marker-non-existence skeleton driven by getMarkerVersions, and
// supports returning a bounded window of the most recent versions instead of
// always the complete history.
type HistoryProofV2 struct {
	UpdateProofs []UpdateProof

	PastMarkerVrfProofs           [][]byte
	ExistenceOfPastMarkerProofs   [][]byte
	FutureMarkerVrfProofs         [][]byte
	NonExistenceOfFutureMarkerProofs [][]byte
}

// VerifyResult is emitted for each UpdateProof that passes verification, in
// the same order update_proofs was supplied in.
type VerifyResult struct {
	Epoch   Epoch
	Version Version
	Value   Value
}

// HistoryParamsKind selects how much of a label's history a proof is
// expected to cover.
type HistoryParamsKind int

const (
	// HistoryComplete requires the proof to start at version 1.
	HistoryComplete HistoryParamsKind = iota
	// HistoryMostRecentKind requires the proof to cover at most N versions,
	// and to start at version 1 if fewer than N were returned.
	HistoryMostRecentKind
)

// HistoryParams describes how much of the label's history a proof claims to
// cover. Construct with Complete() or MostRecent(n).
type HistoryParams struct {
	Kind    HistoryParamsKind
	Recency uint64
}

// Complete requires the history proof to start at version 1.
func Complete() HistoryParams {
	return HistoryParams{Kind: HistoryComplete}
}

// MostRecent requires the history proof to cover at most the n most recent
// versions, falling back to a complete history if fewer than n versions
// exist.
func MostRecent(n uint64) HistoryParams {
	return HistoryParams{Kind: HistoryMostRecentKind, Recency: n}
}

// VerificationParamsKind selects the tombstone-tolerance policy.
type VerificationParamsKind int

const (
	// ParamsDefault requires every UpdateProof.Value to match its
	// commitment; a TOMBSTONE value is rejected.
	ParamsDefault VerificationParamsKind = iota
	// ParamsAllowMissingValues permits UpdateProof.Value to be TOMBSTONE,
	// skipping the value-equality check (but not the cryptographic
	// existence check) for that update.
	ParamsAllowMissingValues
)

// HistoryVerificationParams customizes how history proof verification
// proceeds. Only ParamsAllowMissingValues permits TOMBSTONE values.
type HistoryVerificationParams struct {
	Kind    VerificationParamsKind
	History HistoryParams
}

// DefaultParams requires every value to match its commitment.
func DefaultParams(h HistoryParams) HistoryVerificationParams {
	return HistoryVerificationParams{Kind: ParamsDefault, History: h}
}

// AllowMissingValues tolerates TOMBSTONE values in place of a redacted one.
func AllowMissingValues(h HistoryParams) HistoryVerificationParams {
	return HistoryVerificationParams{Kind: ParamsAllowMissingValues, History: h}
}

func (p HistoryVerificationParams) allowsMissingValues() bool {
	return p.Kind == ParamsAllowMissingValues
}
