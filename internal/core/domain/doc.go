// Package domain defines the core domain models for sshblend.
//
// Domain models are pure value objects without any IO dependencies
// or framework coupling. This package contains:
//
//   - Fragment: One parsed .sshconf fragment file
//   - Conditions: Network-presence criteria declared by a fragment
//   - Evaluation: The local-or-remote decision for one fragment
//   - RunReport: Per-run record of fragment outcomes and output state
//   - Errors: Domain-specific error definitions
//
// Fragment parsing is deliberately permissive: unrecognized lines are
// opaque payload, never errors. All validation that can fail lives in
// the service and infrastructure layers.
package domain
