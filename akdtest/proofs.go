package akdtest

import (
	"fmt"

	akd "github.com/datatrails/go-akd-verify"
)

// BuildUpdateProof builds the UpdateProof for one version of label. version
// must have actually been introduced via Set.
func (d *Directory) BuildUpdateProof(label string, version akd.Version) (akd.UpdateProof, error) {
	recs := d.history[label]
	var rec *versionRecord
	for i := range recs {
		if recs[i].Version == version {
			rec = &recs[i]
			break
		}
	}
	if rec == nil {
		return akd.UpdateProof{}, fmt.Errorf("akdtest: label %q has no version %d", label, version)
	}

	tree, err := d.buildTree()
	if err != nil {
		return akd.UpdateProof{}, err
	}

	freshKey := d.leafKey(label, akd.Fresh, version)
	incl, err := tree.ProveInclusion(freshKey)
	if err != nil {
		return akd.UpdateProof{}, err
	}

	up := akd.UpdateProof{
		Version:           version,
		Epoch:             rec.Epoch,
		Value:             rec.Value,
		ExistenceVrfProof: d.vrfProofFor(label, akd.Fresh, version),
		ExistenceProof:    marshalProof(incl),
		CommitmentNonce:   rec.Nonce,
	}

	if version > 1 {
		staleKey := d.leafKey(label, akd.Stale, version-1)
		staleIncl, err := tree.ProveInclusion(staleKey)
		if err != nil {
			return akd.UpdateProof{}, err
		}
		up.PreviousVersionVrfProof = d.vrfProofFor(label, akd.Stale, version-1)
		up.PreviousVersionProof = marshalProof(staleIncl)
	}

	return up, nil
}

func (d *Directory) startVersionFor(label string, hp akd.HistoryParams) (start, end akd.Version, err error) {
	recs := d.history[label]
	if len(recs) == 0 {
		return 0, 0, fmt.Errorf("akdtest: label %q has no history", label)
	}
	end = recs[len(recs)-1].Version

	switch hp.Kind {
	case akd.HistoryComplete:
		start = 1
	case akd.HistoryMostRecentKind:
		if uint64(len(recs)) <= hp.Recency {
			start = 1
		} else {
			start = end - hp.Recency + 1
		}
	default:
		start = 1
	}
	return start, end, nil
}

func (d *Directory) updateProofRange(label string, start, end akd.Version) ([]akd.UpdateProof, error) {
	ups := make([]akd.UpdateProof, 0, end-start+1)
	for v, count := end, end-start+1; count > 0; v, count = v-1, count-1 {
		up, err := d.BuildUpdateProof(label, v)
		if err != nil {
			return nil, err
		}
		ups = append(ups, up)
	}
	return ups, nil
}

// BuildHistoryProofV2 builds a current-style HistoryProofV2 bundle for
// label covering the version window hp describes. Returns the proof and the
// root it verifies against (the directory's current epoch's root).
func (d *Directory) BuildHistoryProofV2(label string, hp akd.HistoryParams) (akd.HistoryProofV2, akd.Digest, error) {
	start, end, err := d.startVersionFor(label, hp)
	if err != nil {
		return akd.HistoryProofV2{}, akd.Digest{}, err
	}
	updateProofs, err := d.updateProofRange(label, start, end)
	if err != nil {
		return akd.HistoryProofV2{}, akd.Digest{}, err
	}

	tree, err := d.buildTree()
	if err != nil {
		return akd.HistoryProofV2{}, akd.Digest{}, err
	}
	root, err := d.Root()
	if err != nil {
		return akd.HistoryProofV2{}, akd.Digest{}, err
	}

	past, future := markerVersions(start, end, d.epoch)

	pastVrf := make([][]byte, len(past))
	pastProofs := make([][]byte, len(past))
	for i, v := range past {
		key := d.leafKey(label, akd.Fresh, v)
		incl, err := tree.ProveInclusion(key)
		if err != nil {
			return akd.HistoryProofV2{}, akd.Digest{}, fmt.Errorf("akdtest: past marker %d: %w", v, err)
		}
		pastVrf[i] = d.vrfProofFor(label, akd.Fresh, v)
		pastProofs[i] = marshalProof(incl)
	}

	futureVrf := make([][]byte, len(future))
	futureProofs := make([][]byte, len(future))
	for i, v := range future {
		key := d.leafKey(label, akd.Fresh, v)
		excl, err := tree.ProveExclusion(key)
		if err != nil {
			return akd.HistoryProofV2{}, akd.Digest{}, fmt.Errorf("akdtest: future marker %d: %w", v, err)
		}
		futureVrf[i] = d.vrfProofFor(label, akd.Fresh, v)
		futureProofs[i] = marshalProof(excl)
	}

	return akd.HistoryProofV2{
		UpdateProofs:                     updateProofs,
		PastMarkerVrfProofs:              pastVrf,
		ExistenceOfPastMarkerProofs:      pastProofs,
		FutureMarkerVrfProofs:            futureVrf,
		NonExistenceOfFutureMarkerProofs: futureProofs,
	}, root, nil
}

// BuildHistoryProof builds a legacy v1 HistoryProof bundle covering label's
// complete history.
func (d *Directory) BuildHistoryProof(label string) (akd.HistoryProof, akd.Digest, error) {
	recs := d.history[label]
	if len(recs) == 0 {
		return akd.HistoryProof{}, akd.Digest{}, fmt.Errorf("akdtest: label %q has no history", label)
	}
	lastVersion := recs[len(recs)-1].Version

	updateProofs, err := d.updateProofRange(label, 1, lastVersion)
	if err != nil {
		return akd.HistoryProof{}, akd.Digest{}, err
	}

	tree, err := d.buildTree()
	if err != nil {
		return akd.HistoryProof{}, akd.Digest{}, err
	}
	root, err := d.Root()
	if err != nil {
		return akd.HistoryProof{}, akd.Digest{}, err
	}

	untilFirst, untilLast := untilMarkerRange(lastVersion)
	var untilVrf, untilProofs [][]byte
	for v := untilFirst; v <= untilLast; v++ {
		key := d.leafKey(label, akd.Fresh, v)
		excl, err := tree.ProveExclusion(key)
		if err != nil {
			return akd.HistoryProof{}, akd.Digest{}, fmt.Errorf("akdtest: until marker %d: %w", v, err)
		}
		untilVrf = append(untilVrf, d.vrfProofFor(label, akd.Fresh, v))
		untilProofs = append(untilProofs, marshalProof(excl))
	}

	firstExp, lastExp := futureMarkerExponents(lastVersion, d.epoch)
	var futureVrf, futureProofs [][]byte
	for exp := firstExp; exp <= lastExp; exp++ {
		v := uint64(1) << exp
		key := d.leafKey(label, akd.Fresh, v)
		excl, err := tree.ProveExclusion(key)
		if err != nil {
			return akd.HistoryProof{}, akd.Digest{}, fmt.Errorf("akdtest: future marker %d: %w", v, err)
		}
		futureVrf = append(futureVrf, d.vrfProofFor(label, akd.Fresh, v))
		futureProofs = append(futureProofs, marshalProof(excl))
	}

	return akd.HistoryProof{
		UpdateProofs:                     updateProofs,
		UntilMarkerVrfProofs:             untilVrf,
		NonExistenceUntilMarkerProofs:    untilProofs,
		FutureMarkerVrfProofs:            futureVrf,
		NonExistenceOfFutureMarkerProofs: futureProofs,
	}, root, nil
}
