package akdtest

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"sort"

	akd "github.com/datatrails/go-akd-verify"
	"github.com/datatrails/go-akd-verify/akdref"
	"github.com/datatrails/go-akd-verify/trie"
	"github.com/datatrails/go-akd-verify/vrf"
	"github.com/fxamacker/cbor/v2"
)

// versionRecord is one entry in a label's recorded history.
type versionRecord struct {
	Version      akd.Version
	Epoch        akd.Epoch // epoch at which this version was introduced Fresh
	StaleAtEpoch akd.Epoch // epoch at which it was superseded; 0 if still current
	Value        akd.Value
	Nonce        []byte
}

// Directory is an in-memory stand-in for an AKD directory server.
type Directory struct {
	priv ed25519.PrivateKey
	pub  ed25519.PublicKey
	cfg  *akdref.Configuration

	epoch akd.Epoch
	leaves map[trie.Key]trie.Digest
	order  []trie.Key

	history map[string][]versionRecord
}

// NewDirectory creates an empty directory with a fresh VRF keypair.
func NewDirectory() (*Directory, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}
	return &Directory{
		priv:    priv,
		pub:     pub,
		cfg:     akdref.New(),
		leaves:  make(map[trie.Key]trie.Digest),
		history: make(map[string][]versionRecord),
	}, nil
}

// PublicKey returns the directory's VRF public key.
func (d *Directory) PublicKey() ed25519.PublicKey {
	return d.pub
}

// CurrentEpoch returns the directory's current epoch.
func (d *Directory) CurrentEpoch() akd.Epoch {
	return d.epoch
}

func (d *Directory) leafKey(label string, freshness akd.Freshness, version akd.Version) trie.Key {
	input := d.cfg.VRFInput(akd.Label(label), freshness, version)
	_, out := vrf.GenerateProof(d.priv, input)
	return trie.Key(out)
}

func (d *Directory) vrfProofFor(label string, freshness akd.Freshness, version akd.Version) []byte {
	input := d.cfg.VRFInput(akd.Label(label), freshness, version)
	proof, _ := vrf.GenerateProof(d.priv, input)
	return proof
}

func (d *Directory) insertLeaf(key trie.Key, commitment trie.Digest) {
	if _, exists := d.leaves[key]; !exists {
		d.order = append(d.order, key)
	}
	d.leaves[key] = commitment
}

// Set advances the directory to epoch (which must be >= the current epoch)
// and introduces a new version of label committing to value. If label
// already has a version, a separate Stale leaf for the previous version is
// added at this same epoch; that version's Fresh leaf is kept.
func (d *Directory) Set(label string, epoch akd.Epoch, value []byte) error {
	if epoch < d.epoch {
		return fmt.Errorf("akdtest: epoch must not go backwards (have %d, got %d)", d.epoch, epoch)
	}
	d.epoch = epoch

	recs := d.history[label]
	nextVersion := akd.Version(len(recs) + 1)

	if len(recs) > 0 {
		prev := recs[len(recs)-1]
		prev.StaleAtEpoch = epoch
		recs[len(recs)-1] = prev

		staleKey := d.leafKey(label, akd.Stale, prev.Version)
		var staleSentinel trie.Digest = trie.Digest(d.cfg.StaleAzksValue())
		d.insertLeaf(staleKey, staleSentinel)
	}

	nonce := make([]byte, 16)
	if _, err := rand.Read(nonce); err != nil {
		return err
	}
	commitment := d.cfg.Commit(akd.Value(value), nonce)

	freshKey := d.leafKey(label, akd.Fresh, nextVersion)
	d.insertLeaf(freshKey, trie.Digest(commitment))

	recs = append(recs, versionRecord{
		Version: nextVersion,
		Epoch:   epoch,
		Value:   akd.Value(value),
		Nonce:   nonce,
	})
	d.history[label] = recs
	return nil
}

// Root builds the current tree over every leaf ever written and returns its
// root commitment.
func (d *Directory) Root() (akd.Digest, error) {
	if len(d.order) == 0 {
		return akd.Digest{}, fmt.Errorf("akdtest: directory is empty")
	}
	tree, err := d.buildTree()
	if err != nil {
		return akd.Digest{}, err
	}
	return akd.Digest(tree.Root()), nil
}

func lessTrieKey(a, b trie.Key) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

func (d *Directory) buildTree() (*trie.Tree, error) {
	keys := append([]trie.Key(nil), d.order...)
	sort.Slice(keys, func(i, j int) bool {
		return lessTrieKey(keys[i], keys[j])
	})
	entries := make([]trie.Entry, len(keys))
	for i, k := range keys {
		entries[i] = trie.Entry{Key: k, Value: d.leaves[k]}
	}
	tree, _, err := trie.Build(sha256.New(), entries)
	return tree, err
}

func marshalProof(v any) []byte {
	b, err := cbor.Marshal(v)
	if err != nil {
		panic(err) // fixture construction bug, not a runtime verification path
	}
	return b
}
