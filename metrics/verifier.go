package metrics

import (
	"errors"
	"time"

	akd "github.com/datatrails/go-akd-verify"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Verifier wraps the root akd package's verify operations with call-count
// and latency instrumentation. It never alters verification semantics - it
// calls straight through to akd.KeyHistoryVerify / akd.KeyHistoryVerifyV2
// and observes the outcome.
type Verifier struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewVerifier registers the collectors against registerer and returns a
// ready-to-use Verifier. Passing prometheus.DefaultRegisterer matches the
// common case of a single process-wide verifier.
func NewVerifier(registerer prometheus.Registerer) *Verifier {
	factory := promauto.With(registerer)
	return &Verifier{
		calls: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "akd_verify_total",
			Help: "Total number of key history verification calls, by operation and result.",
		}, []string{"operation", "result"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "akd_verify_duration_seconds",
			Help:    "Key history verification call latency in seconds, by operation.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
	}
}

func (v *Verifier) observe(operation string, start time.Time, err error) {
	v.duration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	v.calls.WithLabelValues(operation, resultLabel(err)).Inc()
}

func resultLabel(err error) string {
	if err == nil {
		return "ok"
	}
	var verr *akd.VerificationError
	if errors.As(err, &verr) {
		return verr.Kind.String()
	}
	return "error"
}

// KeyHistoryVerify instruments akd.KeyHistoryVerify.
func (v *Verifier) KeyHistoryVerify(
	cfg akd.Configuration,
	rootHash akd.Digest,
	vrfPublicKey []byte,
	label akd.Label,
	currentEpoch akd.Epoch,
	proof akd.HistoryProof,
	params akd.HistoryVerificationParams,
) ([]akd.VerifyResult, error) {
	start := time.Now()
	results, err := akd.KeyHistoryVerify(cfg, rootHash, vrfPublicKey, label, currentEpoch, proof, params)
	v.observe("v1", start, err)
	return results, err
}

// KeyHistoryVerifyV2 instruments akd.KeyHistoryVerifyV2.
func (v *Verifier) KeyHistoryVerifyV2(
	cfg akd.Configuration,
	rootHash akd.Digest,
	vrfPublicKey []byte,
	label akd.Label,
	currentEpoch akd.Epoch,
	proof akd.HistoryProofV2,
	params akd.HistoryVerificationParams,
) ([]akd.VerifyResult, error) {
	start := time.Now()
	results, err := akd.KeyHistoryVerifyV2(cfg, rootHash, vrfPublicKey, label, currentEpoch, proof, params)
	v.observe("v2", start, err)
	return results, err
}
