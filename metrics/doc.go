// Package metrics wraps the root akd package's verify operations with
// Prometheus instrumentation: a call counter labelled by outcome, and a
// latency histogram.
//
// Grounded on the pack's telemetry.MetricsCollector pattern
// (genusd-chaincode/telemetry), adapted to accept an explicit
// prometheus.Registerer (via promauto.With) rather than registering against
// the global default registry, since this package is a library dependency
// that may be constructed more than once in a process.
package metrics
