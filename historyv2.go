package akd

// verifyHistoryRange runs the structural checks of KeyHistoryVerifyV2 (v1
// makes its own, narrower checks inline): the proof must be non-empty, its versions must run in one contiguous
// descending block, and the (start, end) version range it covers must be
// consistent with both currentEpoch and the caller's requested HistoryParams.
func verifyHistoryRange(label Label, currentEpoch Epoch, updateProofs []UpdateProof, hp HistoryParams) (startVersion, endVersion Version, err error) {
	if len(updateProofs) == 0 {
		return 0, 0, newErr(ErrHistoryProof, label, currentEpoch, "history proof contains no updates")
	}

	for i := 1; i < len(updateProofs); i++ {
		if updateProofs[i].Version+1 != updateProofs[i-1].Version {
			return 0, 0, newErr(ErrHistoryProof, label, currentEpoch, "update proof versions are not contiguous and descending")
		}
	}

	startVersion = updateProofs[0].Version
	endVersion = updateProofs[0].Version
	for _, u := range updateProofs {
		if u.Version < startVersion {
			startVersion = u.Version
		}
		if u.Version > endVersion {
			endVersion = u.Version
		}
	}

	if startVersion == 0 {
		return 0, 0, newErr(ErrHistoryProof, label, currentEpoch, "history proof contains version 0")
	}
	if endVersion > currentEpoch {
		return 0, 0, newVersionErr(ErrHistoryProof, label, currentEpoch, endVersion, "update proof version exceeds current epoch")
	}

	n := uint64(len(updateProofs))
	switch hp.Kind {
	case HistoryComplete:
		if startVersion != 1 {
			return 0, 0, newErr(ErrHistoryProof, label, currentEpoch, "complete history requested but proof does not start at version 1")
		}
	case HistoryMostRecentKind:
		switch {
		case n < hp.Recency:
			if startVersion != 1 {
				return 0, 0, newErr(ErrHistoryProof, label, currentEpoch, "fewer updates than requested recency, but proof does not start at version 1")
			}
		case n > hp.Recency:
			return 0, 0, newErr(ErrHistoryProof, label, currentEpoch, "more updates supplied than the requested recency")
		}
	}

	return startVersion, endVersion, nil
}

// KeyHistoryVerifyV2 verifies a HistoryProofV2 bundle for label against
// rootHash and vrfPublicKey at currentEpoch, under params. On success it
// returns one VerifyResult per UpdateProof, in the order the proof supplied
// them.
func KeyHistoryVerifyV2(cfg Configuration, rootHash Digest, vrfPublicKey []byte, label Label, currentEpoch Epoch, proof HistoryProofV2, params HistoryVerificationParams) ([]VerifyResult, error) {
	startVersion, endVersion, err := verifyHistoryRange(label, currentEpoch, proof.UpdateProofs, params.History)
	if err != nil {
		return nil, err
	}

	pastMarkers, futureMarkers := getMarkerVersions(startVersion, endVersion, currentEpoch)
	if len(pastMarkers) != len(proof.ExistenceOfPastMarkerProofs) || len(pastMarkers) != len(proof.PastMarkerVrfProofs) {
		return nil, newErr(ErrHistoryProof, label, currentEpoch, "past marker proof count does not match expected marker versions")
	}
	if len(futureMarkers) != len(proof.NonExistenceOfFutureMarkerProofs) || len(futureMarkers) != len(proof.FutureMarkerVrfProofs) {
		return nil, newErr(ErrHistoryProof, label, currentEpoch, "future marker proof count does not match expected marker versions")
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

	for i, v := range pastMarkers {
		if _, err := verifyExistence(cfg, rootHash, vrfPublicKey, label, currentEpoch, Fresh, v, proof.PastMarkerVrfProofs[i], proof.ExistenceOfPastMarkerProofs[i]); err != nil {
			return nil, err
		}
	}
	for i, v := range futureMarkers {
		if err := verifyNonexistence(cfg, rootHash, vrfPublicKey, label, currentEpoch, Fresh, v, proof.FutureMarkerVrfProofs[i], proof.NonExistenceOfFutureMarkerProofs[i]); err != nil {
			return nil, err
		}
	}

	return results, nil
}
