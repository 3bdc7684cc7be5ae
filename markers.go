package akd

import "github.com/datatrails/go-akd-verify/mmr"

// Marker versions are the power-of-two versions at which the directory
// commits an extra existence or non-existence proof, so that a verifier can
// detect a run of silently omitted updates without being handed the whole
// history. See historyv1.go and historyv2.go for where these counts are
// checked against the proof actually supplied.

// markerExp returns floor(log2(v)) for v >= 1. It reuses the bit-length
// primitive the companion mmr package already provides for its own index
// arithmetic (see mmr/bits.go), rather than recomputing it.
func markerExp(v uint64) uint64 {
	return mmr.Log2Uint64(v)
}

// getMarkerVersions splits the powers of two in [1, max(endVersion,
// currentEpoch)] into the "past" markers (in [startVersion, endVersion]) the
// v2 history proof must exhibit as Fresh existence, and the "future" markers
// (in (endVersion, currentEpoch]) it must exhibit as Fresh non-existence.
// Both lists are ascending by exponent. A power of two equal to endVersion
// belongs to past, never to future.
func getMarkerVersions(startVersion, endVersion, currentEpoch uint64) (past, future []uint64) {
	for exp := 0; exp < 64; exp++ {
		p := uint64(1) << uint(exp)
		if p > currentEpoch && p > endVersion {
			break
		}
		switch {
		case p >= startVersion && p <= endVersion:
			past = append(past, p)
		case p > endVersion && p <= currentEpoch:
			future = append(future, p)
		}
	}
	return past, future
}

// v1 uses an asymmetric skeleton: a contiguous "until marker" non-existence
// run from just above the last proven version up to the next power of two,
// followed by one "future marker" non-existence proof per power-of-two
// exponent beyond that. The boundary power-of-two itself is treated as a
// future marker, not an until marker - see REDESIGN note in historyv1.go.

// nextMarkerExp is the exponent of the first power-of-two strictly above
// lastVersion.
func nextMarkerExp(lastVersion uint64) uint64 {
	return markerExp(lastVersion) + 1
}

// finalMarkerExp is the exponent of the largest power-of-two not exceeding
// currentEpoch.
func finalMarkerExp(currentEpoch uint64) uint64 {
	return markerExp(currentEpoch)
}

// untilMarkerCount is the number of versions strictly between lastVersion
// and the next power-of-two above it - exactly the versions a v1 proof must
// supply Fresh non-existence proofs for.
func untilMarkerCount(lastVersion uint64) uint64 {
	next := nextMarkerExp(lastVersion)
	return (uint64(1) << next) - lastVersion - 1
}

// futureMarkerCount is the number of power-of-two exponents from
// nextMarkerExp(lastVersion) through finalMarkerExp(currentEpoch) inclusive.
func futureMarkerCount(lastVersion, currentEpoch uint64) uint64 {
	return finalMarkerExp(currentEpoch) + 1 - nextMarkerExp(lastVersion)
}
