// Package service provides the domain services for sshblend.
//
// Services orchestrate operations on domain models and define the
// interfaces for their infrastructure dependencies, allowing for
// dependency injection and testability.
//
// This package contains:
//
//   - Evaluator: Decides local-or-remote per fragment by checking
//     network-presence conditions against a probe
//   - Compose: Renders the final client configuration from evaluated
//     fragments in two ordered passes
//   - Generator: Runs the full discover, evaluate, compose, write
//     pipeline and produces a RunReport
//
// Per-fragment failures are contained in the RunReport; only
// directory listing and output write failures abort a run.
package service
