package akdref

import (
	"crypto/ed25519"
	"crypto/sha256"
	"hash"

	akd "github.com/datatrails/go-akd-verify"
	"github.com/datatrails/go-akd-verify/trie"
	"github.com/datatrails/go-akd-verify/vrf"
	"github.com/fxamacker/cbor/v2"
)

// staleSentinel has no Commit preimage; it is a fixed domain-separated
// constant, not a hash of any real value.
var staleSentinel = sha256.Sum256([]byte("go-akd-verify/stale-azks-value/v1"))

// Configuration is the reference akd.Configuration implementation.
type Configuration struct{}

// New returns a ready-to-use reference Configuration.
func New() *Configuration {
	return &Configuration{}
}

func (c *Configuration) NewHasher() hash.Hash {
	return sha256.New()
}

func (c *Configuration) StaleAzksValue() akd.Digest {
	return akd.Digest(staleSentinel)
}

func (c *Configuration) VRFInput(label akd.Label, freshness akd.Freshness, version akd.Version) []byte {
	buf := make([]byte, 0, len(label)+1+8)
	buf = append(buf, label...)
	buf = append(buf, byte(freshness))
	for i := 7; i >= 0; i-- {
		buf = append(buf, byte(version>>(8*uint(i))))
	}
	return buf
}

func (c *Configuration) VerifyVRF(vrfPublicKey []byte, domainInput []byte, vrfProof []byte) (akd.Digest, error) {
	out, err := vrf.Verify(ed25519.PublicKey(vrfPublicKey), domainInput, vrfProof)
	if err != nil {
		return akd.Digest{}, err
	}
	return akd.Digest(out), nil
}

func (c *Configuration) VerifyMembership(rootHash akd.Digest, index akd.Digest, epoch akd.Epoch, membershipProof []byte) (akd.Digest, error) {
	var p trie.InclusionProof
	if err := cbor.Unmarshal(membershipProof, &p); err != nil {
		return akd.Digest{}, err
	}
	if p.Key != trie.Key(index) {
		return akd.Digest{}, trie.ErrKeyNotFound
	}
	ok, err := trie.VerifyInclusion(sha256.New(), trie.Digest(rootHash), p)
	if err != nil {
		return akd.Digest{}, err
	}
	if !ok {
		return akd.Digest{}, trie.ErrVerifyInclusionFailed
	}
	return akd.Digest(p.Value), nil
}

func (c *Configuration) VerifyNonMembership(rootHash akd.Digest, index akd.Digest, nonMembershipProof []byte) error {
	var p trie.ExclusionProof
	if err := cbor.Unmarshal(nonMembershipProof, &p); err != nil {
		return err
	}
	if p.TargetKey != trie.Key(index) {
		return trie.ErrKeyPresent
	}
	ok, err := trie.VerifyExclusion(sha256.New(), trie.Digest(rootHash), p)
	if err != nil {
		return err
	}
	if !ok {
		return trie.ErrVerifyExclusionFailed
	}
	return nil
}

func (c *Configuration) Commit(value akd.Value, nonce []byte) akd.Digest {
	h := sha256.New()
	h.Write(nonce)
	h.Write(value)
	var d akd.Digest
	copy(d[:], h.Sum(nil))
	return d
}
