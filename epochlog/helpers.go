package epochlog

import "github.com/datatrails/go-akd-verify/mmr"

func checkConsistency(l *Log, mmrSizeA, mmrSizeB uint64, peakHashesA [][]byte) (bool, [][]byte, error) {
	return mmr.CheckConsistency(l.store, l.hasher, mmrSizeA, mmrSizeB, peakHashesA)
}

func peakHashesAt(l *Log, mmrSize uint64) ([][]byte, error) {
	if mmrSize == 0 {
		return nil, nil
	}
	return mmr.PeakHashes(l.store, mmrSize-1)
}
