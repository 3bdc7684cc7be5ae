package akd

// verifyExistence checks that the VRF-derived index for (label, freshness,
// version) is present under rootHash at epoch, without checking what value
// is committed there. It returns the leaf's commitment for the caller to
// check (or ignore, in the tombstoned case).
func verifyExistence(cfg Configuration, rootHash Digest, vrfPK []byte, label Label, epoch Epoch, freshness Freshness, version Version, vrfProof, membershipProof []byte) (Digest, error) {
	domainInput := cfg.VRFInput(label, freshness, version)
	index, err := cfg.VerifyVRF(vrfPK, domainInput, vrfProof)
	if err != nil {
		return Digest{}, newVersionErr(ErrVrfInvalid, label, epoch, version, "vrf verification failed for %s version: %v", freshness, err)
	}
	commitment, err := cfg.VerifyMembership(rootHash, index, epoch, membershipProof)
	if err != nil {
		return Digest{}, newVersionErr(ErrMembershipInvalid, label, epoch, version, "membership proof failed for %s version: %v", freshness, err)
	}
	return commitment, nil
}

// verifyExistenceWithVal checks existence and additionally that the
// committed value matches value under nonce.
func verifyExistenceWithVal(cfg Configuration, rootHash Digest, vrfPK []byte, label Label, epoch Epoch, version Version, value Value, nonce, vrfProof, membershipProof []byte) error {
	commitment, err := verifyExistence(cfg, rootHash, vrfPK, label, epoch, Fresh, version, vrfProof, membershipProof)
	if err != nil {
		return err
	}
	want := cfg.Commit(value, nonce)
	if commitment != want {
		return newVersionErr(ErrCommitmentMismatch, label, epoch, version, "committed value does not match proof value")
	}
	return nil
}

// verifyExistenceWithCommitment checks existence and that the leaf's
// committed value equals an explicit, caller-supplied commitment - used for
// the stale-leaf check, where the expected commitment is the directory's
// fixed stale sentinel rather than something derived from a value+nonce
// pair.
func verifyExistenceWithCommitment(cfg Configuration, rootHash Digest, vrfPK []byte, label Label, epoch Epoch, freshness Freshness, version Version, want Digest, vrfProof, membershipProof []byte) error {
	commitment, err := verifyExistence(cfg, rootHash, vrfPK, label, epoch, freshness, version, vrfProof, membershipProof)
	if err != nil {
		return err
	}
	if commitment != want {
		return newVersionErr(ErrCommitmentMismatch, label, epoch, version, "committed value does not match expected commitment")
	}
	return nil
}

// verifyNonexistence checks that the VRF-derived index for (label,
// freshness, version) is absent under rootHash.
func verifyNonexistence(cfg Configuration, rootHash Digest, vrfPK []byte, label Label, epoch Epoch, freshness Freshness, version Version, vrfProof, nonMembershipProof []byte) error {
	domainInput := cfg.VRFInput(label, freshness, version)
	index, err := cfg.VerifyVRF(vrfPK, domainInput, vrfProof)
	if err != nil {
		return newVersionErr(ErrVrfInvalid, label, epoch, version, "vrf verification failed for %s marker version: %v", freshness, err)
	}
	if err := cfg.VerifyNonMembership(rootHash, index, nonMembershipProof); err != nil {
		return newVersionErr(ErrNonMembershipInvalid, label, epoch, version, "non-membership proof failed for %s marker version: %v", freshness, err)
	}
	return nil
}
