// Package command defines the sshblend CLI.
//
// The default action runs one generation pass. Subcommands cover the
// dry-run plan (check), the long-running regeneration daemon (watch),
// and configuration inspection (config). Commands receive their
// network probe and output sink through the app metadata so tests can
// substitute deterministic fakes.
package command
