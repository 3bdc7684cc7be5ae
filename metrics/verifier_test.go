package metrics_test

import (
	"testing"

	akd "github.com/datatrails/go-akd-verify"
	"github.com/datatrails/go-akd-verify/akdref"
	"github.com/datatrails/go-akd-verify/akdtest"
	"github.com/datatrails/go-akd-verify/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)

	var total float64
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			total += metric.GetCounter().GetValue()
		}
	}
	return total
}

func TestVerifierRecordsSuccess(t *testing.T) {
	reg := prometheus.NewRegistry()
	v := metrics.NewVerifier(reg)

	dir, err := akdtest.NewDirectory()
	require.NoError(t, err)
	require.NoError(t, dir.Set("alice", 1, []byte("v1")))

	proof, root, err := dir.BuildHistoryProofV2("alice", akd.Complete())
	require.NoError(t, err)

	cfg := akdref.New()
	results, err := v.KeyHistoryVerifyV2(cfg, root, dir.PublicKey(), akd.Label("alice"), dir.CurrentEpoch(), proof, akd.DefaultParams(akd.Complete()))
	require.NoError(t, err)
	require.Len(t, results, 1)

	require.Equal(t, float64(1), counterValue(t, reg, "akd_verify_total"))
}

func TestVerifierRecordsFailureKind(t *testing.T) {
	reg := prometheus.NewRegistry()
	v := metrics.NewVerifier(reg)

	dir, err := akdtest.NewDirectory()
	require.NoError(t, err)
	require.NoError(t, dir.Set("carol", 1, []byte("v1")))

	proof, root, err := dir.BuildHistoryProofV2("carol", akd.Complete())
	require.NoError(t, err)
	proof.UpdateProofs[0].Value = akd.Value("tampered")

	cfg := akdref.New()
	_, err = v.KeyHistoryVerifyV2(cfg, root, dir.PublicKey(), akd.Label("carol"), dir.CurrentEpoch(), proof, akd.DefaultParams(akd.Complete()))
	require.Error(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)

	var sawCommitmentMismatch bool
	for _, family := range families {
		if family.GetName() != "akd_verify_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "result" && label.GetValue() == "commitment_mismatch" {
					sawCommitmentMismatch = true
				}
			}
		}
	}
	require.True(t, sawCommitmentMismatch)
}
