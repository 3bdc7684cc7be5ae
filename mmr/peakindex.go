package mmr

import "errors"

// ErrNotFound is returned by NodeAppender/indexStoreGetter implementations
// in this package's tests when a requested index has not been stored.
var ErrNotFound = errors.New("mmr: index not found")

// PeakHashes returns the node values at each of the mmr's peak positions, in
// the same highest-peak-first order Peaks returns their positions in.
// mmrIndex is the last valid node index in the mmr (size - 1), matching the
// index-based convention the rest of this package's proof functions use.
func PeakHashes(store indexStoreGetter, mmrIndex uint64) ([][]byte, error) {
	mmrSize := mmrIndex + 1
	positions := Peaks(mmrSize)
	hashes := make([][]byte, len(positions))
	for i, pos := range positions {
		v, err := store.Get(pos - 1)
		if err != nil {
			return nil, err
		}
		hashes[i] = v
	}
	return hashes, nil
}
