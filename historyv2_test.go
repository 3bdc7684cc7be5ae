package akd_test

import (
	"testing"

	akd "github.com/datatrails/go-akd-verify"
	"github.com/datatrails/go-akd-verify/akdref"
	"github.com/datatrails/go-akd-verify/akdtest"
	"github.com/stretchr/testify/require"
)

func TestKeyHistoryVerifyV2CompleteHistory(t *testing.T) {
	dir, err := akdtest.NewDirectory()
	require.NoError(t, err)

	require.NoError(t, dir.Set("alice", 1, []byte("v1")))
	require.NoError(t, dir.Set("alice", 4, []byte("v2")))
	require.NoError(t, dir.Set("alice", 9, []byte("v3")))

	proof, root, err := dir.BuildHistoryProofV2("alice", akd.Complete())
	require.NoError(t, err)

	cfg := akdref.New()
	results, err := akd.KeyHistoryVerifyV2(cfg, root, dir.PublicKey(), akd.Label("alice"), dir.CurrentEpoch(), proof, akd.DefaultParams(akd.Complete()))
	require.NoError(t, err)
	require.Len(t, results, 3)

	require.Equal(t, akd.Version(3), results[0].Version)
	require.Equal(t, akd.Value("v3"), results[0].Value)
	require.Equal(t, akd.Version(1), results[2].Version)
	require.Equal(t, akd.Value("v1"), results[2].Value)
}

func TestKeyHistoryVerifyV2MostRecent(t *testing.T) {
	dir, err := akdtest.NewDirectory()
	require.NoError(t, err)

	for epoch, v := range []string{"v1", "v2", "v3", "v4", "v5"} {
		require.NoError(t, dir.Set("bob", uint64(epoch+1), []byte(v)))
	}

	proof, root, err := dir.BuildHistoryProofV2("bob", akd.MostRecent(2))
	require.NoError(t, err)
	require.Len(t, proof.UpdateProofs, 2)

	cfg := akdref.New()
	results, err := akd.KeyHistoryVerifyV2(cfg, root, dir.PublicKey(), akd.Label("bob"), dir.CurrentEpoch(), proof, akd.DefaultParams(akd.MostRecent(2)))
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, akd.Version(5), results[0].Version)
	require.Equal(t, akd.Version(4), results[1].Version)
}

func TestKeyHistoryVerifyV2RejectsTamperedValue(t *testing.T) {
	dir, err := akdtest.NewDirectory()
	require.NoError(t, err)
	require.NoError(t, dir.Set("carol", 1, []byte("v1")))
	require.NoError(t, dir.Set("carol", 2, []byte("v2")))

	proof, root, err := dir.BuildHistoryProofV2("carol", akd.Complete())
	require.NoError(t, err)

	proof.UpdateProofs[0].Value = akd.Value("tampered")

	cfg := akdref.New()
	_, err = akd.KeyHistoryVerifyV2(cfg, root, dir.PublicKey(), akd.Label("carol"), dir.CurrentEpoch(), proof, akd.DefaultParams(akd.Complete()))
	require.Error(t, err)

	var verr *akd.VerificationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, akd.ErrCommitmentMismatch, verr.Kind)
}

func TestKeyHistoryVerifyV2AllowsTombstoneUnderAllowMissingValues(t *testing.T) {
	dir, err := akdtest.NewDirectory()
	require.NoError(t, err)
	require.NoError(t, dir.Set("dan", 1, []byte("secret-v1")))
	require.NoError(t, dir.Set("dan", 2, []byte("secret-v2")))

	proof, root, err := dir.BuildHistoryProofV2("dan", akd.Complete())
	require.NoError(t, err)

	// Simulate the directory redacting the older value.
	proof.UpdateProofs[1].Value = akd.TOMBSTONE

	cfg := akdref.New()

	_, err = akd.KeyHistoryVerifyV2(cfg, root, dir.PublicKey(), akd.Label("dan"), dir.CurrentEpoch(), proof, akd.DefaultParams(akd.Complete()))
	require.Error(t, err, "tombstones must be rejected under default params")

	results, err := akd.KeyHistoryVerifyV2(cfg, root, dir.PublicKey(), akd.Label("dan"), dir.CurrentEpoch(), proof, akd.AllowMissingValues(akd.Complete()))
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.True(t, results[1].Value.IsTombstone())
}

func TestKeyHistoryVerifyV2RejectsVersionBeyondCurrentEpoch(t *testing.T) {
	dir, err := akdtest.NewDirectory()
	require.NoError(t, err)
	require.NoError(t, dir.Set("erin", 1, []byte("v1")))

	proof, root, err := dir.BuildHistoryProofV2("erin", akd.Complete())
	require.NoError(t, err)

	cfg := akdref.New()
	_, err = akd.KeyHistoryVerifyV2(cfg, root, dir.PublicKey(), akd.Label("erin"), 0, proof, akd.DefaultParams(akd.Complete()))
	require.Error(t, err)
}
