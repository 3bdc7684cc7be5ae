package epochlog

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"hash"

	akd "github.com/datatrails/go-akd-verify"
	"github.com/datatrails/go-akd-verify/mmr"
	"github.com/google/uuid"
)

// ErrEpochNotIncreasing is returned by Append when the supplied epoch does
// not strictly exceed the last appended epoch.
var ErrEpochNotIncreasing = errors.New("epochlog: epoch must strictly increase")

// EpochState is the committed state of an epoch-root log at the point a
// given epoch was appended: the log identifier, the current epoch and MMR
// size, the peak hashes of that size, and the wall-clock time the state was
// captured. It is the CBOR payload of a signed Checkpoint.
type EpochState struct {
	LogID     uuid.UUID `cbor:"1,keyasint"`
	Epoch     uint64    `cbor:"2,keyasint"`
	MMRSize   uint64    `cbor:"3,keyasint"`
	Peaks     [][]byte  `cbor:"4,keyasint"`
	Timestamp int64     `cbor:"5,keyasint"`
}

// memStore is an in-memory mmr.NodeAppender backing a Log.
type memStore struct {
	values [][]byte
}

func (s *memStore) Get(i uint64) ([]byte, error) {
	if i >= uint64(len(s.values)) {
		return nil, mmr.ErrNotFound
	}
	return s.values[i], nil
}

func (s *memStore) Append(value []byte) (uint64, error) {
	s.values = append(s.values, value)
	return uint64(len(s.values)), nil
}

// Log is an append-only Merkle Mountain Range of epoch-root commitments. It
// is a separate structure from the AKD directory itself: each leaf commits
// to (epoch, root) rather than to a label's value.
//
// Log is not safe for concurrent Append calls, matching the single-writer
// assumption the teacher's mmr.NodeAppender implementations make throughout.
type Log struct {
	id      uuid.UUID
	store   *memStore
	hasher  hash.Hash
	epoch   akd.Epoch
	started bool
}

// NewLog creates an empty log identified by id. Callers that need a fresh
// identifier can mint one with uuid.New().
func NewLog(id uuid.UUID) *Log {
	return &Log{id: id, store: &memStore{}, hasher: sha256.New()}
}

// ID returns the log's identifier, carried in every EpochState so a
// checkpoint can never be verified against the wrong log.
func (l *Log) ID() uuid.UUID {
	return l.id
}

// MMRSize returns the number of nodes (leaves and interior) currently stored.
func (l *Log) MMRSize() uint64 {
	return uint64(len(l.store.values))
}

// Append commits a new epoch root to the log. epoch must be strictly
// greater than every previously appended epoch; the AKD core enforces the
// analogous rule per-label (spec invariant I3), and this log enforces it
// across the whole directory's published roots.
func (l *Log) Append(epoch akd.Epoch, root akd.Digest) error {
	if l.started && epoch <= l.epoch {
		return ErrEpochNotIncreasing
	}

	l.hasher.Reset()
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], epoch)
	l.hasher.Write(buf[:])
	l.hasher.Write(root[:])
	leaf := l.hasher.Sum(nil)

	if _, err := mmr.AddHashedLeaf(l.store, l.hasher, leaf); err != nil {
		return err
	}
	l.epoch = epoch
	l.started = true
	return nil
}

// State captures the log's current state, suitable for signing into a
// Checkpoint with Sign.
func (l *Log) State(timestamp int64) (EpochState, error) {
	mmrSize := l.MMRSize()
	var peaks [][]byte
	if mmrSize > 0 {
		var err error
		peaks, err = mmr.PeakHashes(l.store, mmrSize-1)
		if err != nil {
			return EpochState{}, err
		}
	}
	return EpochState{
		LogID:     l.id,
		Epoch:     l.epoch,
		MMRSize:   mmrSize,
		Peaks:     peaks,
		Timestamp: timestamp,
	}, nil
}
