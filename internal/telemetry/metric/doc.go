// Package metric provides Prometheus metrics for sshblend.
//
// Metrics cover the watch daemon: generation runs and their outcomes,
// what triggered them, fragment counts, and the time of the last
// successful write. The registry is self-contained so one-shot
// commands never pay for metrics they do not expose.
package metric
