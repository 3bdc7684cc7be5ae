package akd

import "fmt"

// ErrorKind classifies a VerificationError along the lines the directory
// protocol itself distinguishes: a malformed proof bundle, a policy the
// caller's params rule out, a cryptographic check that failed, or a
// structurally-required piece of the proof that was never supplied.
type ErrorKind int

const (
	// ErrHistoryProof covers structural defects in the proof bundle itself:
	// wrong version ordering, marker-count mismatches, version-range
	// violations against the requested HistoryParams.
	ErrHistoryProof ErrorKind = iota
	// ErrVrfInvalid means a VRF proof failed to verify against the
	// configured public key.
	ErrVrfInvalid
	// ErrMembershipInvalid means a claimed-present leaf failed its Merkle
	// inclusion check.
	ErrMembershipInvalid
	// ErrNonMembershipInvalid means a claimed-absent leaf failed its Merkle
	// exclusion check.
	ErrNonMembershipInvalid
	// ErrCommitmentMismatch means a leaf's committed value didn't match the
	// value (or sentinel) the proof claims it holds.
	ErrCommitmentMismatch
)

func (k ErrorKind) String() string {
	switch k {
	case ErrHistoryProof:
		return "history_proof"
	case ErrVrfInvalid:
		return "vrf_invalid"
	case ErrMembershipInvalid:
		return "membership_invalid"
	case ErrNonMembershipInvalid:
		return "non_membership_invalid"
	case ErrCommitmentMismatch:
		return "commitment_mismatch"
	default:
		return "unknown"
	}
}

// VerificationError reports a failed verification. It carries the label, an
// epoch, and the offending version when one is implicated. Epoch is the
// directory's current epoch for whole-proof checks; errors raised while
// checking a single update proof (including the epoch-ordering checks of the
// history verifiers) carry that update's own epoch instead, not the current
// epoch.
type VerificationError struct {
	Kind    ErrorKind
	Msg     string
	Label   Label
	Epoch   Epoch
	Version Version

	// HasVersion distinguishes "version 0, unset" from a genuine version-0
	// failure; directory versions are 1-based so a zero Version never
	// legitimately applies.
	HasVersion bool
}

func (e *VerificationError) Error() string {
	if e.HasVersion {
		return fmt.Sprintf("akd: %s: %s (label=%s epoch=%d version=%d)", e.Kind, e.Msg, e.Label, e.Epoch, e.Version)
	}
	return fmt.Sprintf("akd: %s: %s (label=%s epoch=%d)", e.Kind, e.Msg, e.Label, e.Epoch)
}

// Is supports errors.Is comparisons against another *VerificationError by
// Kind alone, so callers can write
// errors.Is(err, &akd.VerificationError{Kind: akd.ErrHistoryProof}).
func (e *VerificationError) Is(target error) bool {
	t, ok := target.(*VerificationError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func newErr(kind ErrorKind, label Label, epoch Epoch, format string, args ...any) *VerificationError {
	return &VerificationError{
		Kind:  kind,
		Msg:   fmt.Sprintf(format, args...),
		Label: label,
		Epoch: epoch,
	}
}

func newVersionErr(kind ErrorKind, label Label, epoch Epoch, version Version, format string, args ...any) *VerificationError {
	return &VerificationError{
		Kind:       kind,
		Msg:        fmt.Sprintf(format, args...),
		Label:      label,
		Epoch:      epoch,
		Version:    version,
		HasVersion: true,
	}
}
