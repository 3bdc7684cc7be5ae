package akd

// KeyHistoryVerify verifies the deprecated v1 HistoryProof bundle for label
// against rootHash and vrfPublicKey at currentEpoch. Prefer
// KeyHistoryVerifyV2: v1's until/future marker skeleton is kept only for
// directories that have not migrated their proof format.
//
// Unlike v2, v1 does not accept a HistoryParams window - it always covers
// the contiguous run of versions it was handed, ending at whatever the
// directory considers the label's most recent version.
func KeyHistoryVerify(cfg Configuration, rootHash Digest, vrfPublicKey []byte, label Label, currentEpoch Epoch, proof HistoryProof, params HistoryVerificationParams) ([]VerifyResult, error) {
	if len(proof.UpdateProofs) == 0 {
		return nil, newErr(ErrHistoryProof, label, currentEpoch, "history proof contains no updates")
	}
	for i := 1; i < len(proof.UpdateProofs); i++ {
		if proof.UpdateProofs[i].Version+1 != proof.UpdateProofs[i-1].Version {
			return nil, newErr(ErrHistoryProof, label, currentEpoch, "update proof versions are not contiguous and descending")
		}
	}

	lastVersion := proof.UpdateProofs[0].Version
	for _, u := range proof.UpdateProofs {
		if u.Version > lastVersion {
			lastVersion = u.Version
		}
	}
	// key_history_verify in the v1 source has no equivalent guard; we add one
	// because futureMarkerCount below computes a marker count as
	// finalMarkerExp(currentEpoch)+1-nextMarkerExp(lastVersion) and would
	// underflow silently for a version from the future.
	if lastVersion > currentEpoch {
		return nil, newVersionErr(ErrHistoryProof, label, currentEpoch, lastVersion, "update proof version exceeds current epoch")
	}

	results := make([]VerifyResult, 0, len(proof.UpdateProofs))
	var previousEpoch Epoch
	for i, u := range proof.UpdateProofs {
		if i > 0 && u.Epoch > previousEpoch {
			return nil, newVersionErr(ErrHistoryProof, label, u.Epoch, u.Version, "update proof epochs are not monotonically non-increasing across descending versions")
		}
		previousEpoch = u.Epoch

		r, err := verifySingleUpdateProof(cfg, rootHash, vrfPublicKey, label, params, u)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}

	next := nextMarkerExp(lastVersion)
	final := finalMarkerExp(currentEpoch)

	wantUntil := untilMarkerCount(lastVersion)
	if wantUntil != uint64(len(proof.NonExistenceUntilMarkerProofs)) || wantUntil != uint64(len(proof.UntilMarkerVrfProofs)) {
		return nil, newErr(ErrHistoryProof, label, currentEpoch, "until-marker proof count does not match expected count")
	}
	// REDESIGN: the boundary power-of-two itself - 1<<next - is never part
	// of this run, even when it happens to equal lastVersion+1; it is checked
	// as the first future marker below when it does not exceed currentEpoch.
	for v := lastVersion + 1; v < (uint64(1) << next); v++ {
		idx := v - lastVersion - 1
		if err := verifyNonexistence(cfg, rootHash, vrfPublicKey, label, currentEpoch, Fresh, v, proof.UntilMarkerVrfProofs[idx], proof.NonExistenceUntilMarkerProofs[idx]); err != nil {
			return nil, err
		}
	}

	wantFuture := futureMarkerCount(lastVersion, currentEpoch)
	if wantFuture != uint64(len(proof.FutureMarkerVrfProofs)) || wantFuture != uint64(len(proof.NonExistenceOfFutureMarkerProofs)) {
		return nil, newErr(ErrHistoryProof, label, currentEpoch, "future-marker proof count does not match expected count")
	}
	for exp := next; exp <= final; exp++ {
		v := uint64(1) << exp
		idx := exp - next
		if err := verifyNonexistence(cfg, rootHash, vrfPublicKey, label, currentEpoch, Fresh, v, proof.FutureMarkerVrfProofs[idx], proof.NonExistenceOfFutureMarkerProofs[idx]); err != nil {
			return nil, err
		}
	}

	return results, nil
}
