package akd

// verifySingleUpdateProof verifies one UpdateProof in isolation: that its
// claimed (version, value) exists Fresh at its claimed epoch, and - for
// every version after the first - that the version it superseded exists
// Stale, committed to the configuration's stale sentinel, at this update's
// epoch (the epoch of the version that superseded it, not the one that was
// superseded - see REDESIGN note below).
func verifySingleUpdateProof(cfg Configuration, rootHash Digest, vrfPK []byte, label Label, params HistoryVerificationParams, u UpdateProof) (VerifyResult, error) {
	if params.allowsMissingValues() && u.Value.IsTombstone() {
		if _, err := verifyExistence(cfg, rootHash, vrfPK, label, u.Epoch, Fresh, u.Version, u.ExistenceVrfProof, u.ExistenceProof); err != nil {
			return VerifyResult{}, err
		}
	} else {
		if err := verifyExistenceWithVal(cfg, rootHash, vrfPK, label, u.Epoch, u.Version, u.Value, u.CommitmentNonce, u.ExistenceVrfProof, u.ExistenceProof); err != nil {
			return VerifyResult{}, err
		}
	}

	if u.Version > 1 {
		if u.PreviousVersionProof == nil {
			return VerifyResult{}, newVersionErr(ErrHistoryProof, label, u.Epoch, u.Version, "missing membership proof for previous version")
		}
		if u.PreviousVersionVrfProof == nil {
			return VerifyResult{}, newVersionErr(ErrHistoryProof, label, u.Epoch, u.Version, "missing VRF proof for previous version")
		}
		// REDESIGN: the epoch used here is u.Epoch, the epoch at which this
		// update superseded the previous version, not the previous version's
		// own (older) epoch - the stale leaf is written as of the update that
		// made it stale.
		if err := verifyExistenceWithCommitment(cfg, rootHash, vrfPK, label, u.Epoch, Stale, u.Version-1, cfg.StaleAzksValue(), u.PreviousVersionVrfProof, u.PreviousVersionProof); err != nil {
			return VerifyResult{}, err
		}
	}

	return VerifyResult{Epoch: u.Epoch, Version: u.Version, Value: u.Value}, nil
}
