// Package main provides the entry point for sshblend.
//
// The binary supports:
//
//   - One-shot generation (the default action)
//   - Dry runs with a per-fragment decision report (check)
//   - A long-running watch mode that regenerates on network or
//     fragment changes (watch)
//   - Configuration inspection and validation (config)
//
// Usage:
//
//	sshblend [command] [flags]
//	sshblend -d ~/.ssh/config.d -o ~/.ssh/config
//	sshblend check --format json
//	sshblend watch --metrics-addr :9090
package main
