// Package buildinfo provides build information for sshblend.
//
// This package exposes build-time information injected via ldflags:
//
//   - Version: Semantic version (e.g., "1.0.0")
//   - Commit: Git commit hash
//   - BuildTime: Build timestamp
//   - GoVersion: Go compiler version
//
// The -V flag and the version subcommand surface these values.
package buildinfo
