package trie

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/require"
)

func keyFromInt(i int) Key {
	var k Key
	sum := sha256.Sum256([]byte{byte(i), byte(i >> 8), byte(i >> 16)})
	copy(k[:], sum[:])
	return k
}

func valueFromInt(i int) Digest {
	var v Digest
	v[0] = byte(i)
	v[31] = byte(^i)
	return v
}

func sortedEntries(t *testing.T, n int) []Entry {
	t.Helper()
	entries := make([]Entry, n)
	for i := 0; i < n; i++ {
		entries[i] = Entry{Key: keyFromInt(i), Value: valueFromInt(i)}
	}
	sortEntriesByKey(entries)
	return entries
}

func TestProveInclusionRoundTrip(t *testing.T) {
	entries := sortedEntries(t, 12)

	tree, root, err := Build(sha256.New(), entries)
	require.NoError(t, err)

	for _, e := range entries {
		p, err := tree.ProveInclusion(e.Key)
		require.NoError(t, err)
		require.Equal(t, e.Value, p.Value)

		ok, err := VerifyInclusion(sha256.New(), root, p)
		require.NoError(t, err)
		require.True(t, ok)
	}
}

func TestProveInclusionMissingKeyFails(t *testing.T) {
	entries := sortedEntries(t, 8)
	tree, _, err := Build(sha256.New(), entries)
	require.NoError(t, err)

	var missing Key
	missing[0] = 0xff // astronomically unlikely to collide with a sha256 output

	_, err = tree.ProveInclusion(missing)
	require.ErrorIs(t, err, ErrKeyNotFound)
}

func TestProveExclusionRoundTrip(t *testing.T) {
	entries := sortedEntries(t, 20)
	tree, root, err := Build(sha256.New(), entries)
	require.NoError(t, err)

	// Present key must refuse an exclusion proof.
	_, err = tree.ProveExclusion(entries[3].Key)
	require.ErrorIs(t, err, ErrKeyPresent)

	var missing Key
	missing[0] = 0xff

	p, err := tree.ProveExclusion(missing)
	require.NoError(t, err)
	require.NotEqual(t, missing, p.EncounteredKey)

	ok, err := VerifyExclusion(sha256.New(), root, p)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerifyInclusionRejectsTamperedValue(t *testing.T) {
	entries := sortedEntries(t, 6)
	tree, root, err := Build(sha256.New(), entries)
	require.NoError(t, err)

	p, err := tree.ProveInclusion(entries[2].Key)
	require.NoError(t, err)
	p.Value[0] ^= 0xff

	ok, err := VerifyInclusion(sha256.New(), root, p)
	require.Error(t, err)
	require.False(t, ok)
}

func TestVerifyInclusionRejectsTamperedSibling(t *testing.T) {
	entries := sortedEntries(t, 9)
	tree, root, err := Build(sha256.New(), entries)
	require.NoError(t, err)

	p, err := tree.ProveInclusion(entries[5].Key)
	require.NoError(t, err)
	require.NotEmpty(t, p.Steps)
	p.Steps[0].SiblingHash[0] ^= 0xff

	ok, err := VerifyInclusion(sha256.New(), root, p)
	require.Error(t, err)
	require.False(t, ok)
}

func TestBuildRejectsOutOfOrderAndDuplicateKeys(t *testing.T) {
	entries := sortedEntries(t, 4)
	entries[1], entries[2] = entries[2], entries[1]
	_, _, err := Build(sha256.New(), entries)
	require.ErrorIs(t, err, ErrOutOfOrderKey)

	entries = sortedEntries(t, 4)
	entries[1] = entries[0]
	_, _, err = Build(sha256.New(), entries)
	require.ErrorIs(t, err, ErrDuplicateKey)
}

func sortEntriesByKey(entries []Entry) {
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0; j-- {
			if lessKey(entries[j].Key, entries[j-1].Key) {
				entries[j], entries[j-1] = entries[j-1], entries[j]
				continue
			}
			break
		}
	}
}

func lessKey(a, b Key) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
