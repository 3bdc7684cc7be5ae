package epochlog

import (
	"errors"
)

// ErrInconsistentLog is returned by CheckConsistency when the log's current
// state is not a valid append-only extension of the trusted prior state.
var ErrInconsistentLog = errors.New("epochlog: log is not a consistent extension of the trusted state")

// CheckConsistency proves that l's current state is an append-only
// extension of a previously trusted state (typically the EpochState from a
// Checkpoint verified earlier with VerifyCheckpoint). It does not re-derive
// trust in priorPeaks itself - that is the caller's job, via VerifyCheckpoint
// or an equivalent out-of-band pin.
//
// Grounded on massifs.VerifySignedCheckPoint's three-step recipe: decode a
// trusted prior state, obtain the current peaks from the log, and verify
// consistency between the two.
func (l *Log) CheckConsistency(priorMMRSize uint64, priorPeaks [][]byte) error {
	if priorMMRSize == 0 || priorMMRSize > l.MMRSize() {
		return ErrInconsistentLog
	}
	if priorMMRSize == l.MMRSize() {
		// Nothing has been appended since the trusted state; trivially
		// consistent so long as the peaks the caller already trusts match
		// what the log currently holds for that size.
		currentPeaks, err := peakHashesAt(l, priorMMRSize)
		if err != nil {
			return err
		}
		if !peaksEqual(currentPeaks, priorPeaks) {
			return ErrInconsistentLog
		}
		return nil
	}

	ok, _, err := checkConsistency(l, priorMMRSize, l.MMRSize(), priorPeaks)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInconsistentLog
	}
	return nil
}

func peaksEqual(a, b [][]byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}
