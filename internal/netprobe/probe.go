// Package netprobe answers questions about the live network
// environment for condition evaluation.
package netprobe

import (
	"context"
)

// ARPEntry is one row of the system's ARP/neighbor table.
type ARPEntry struct {
	// IP is the entry's protocol address as reported by the system.
	IP string `json:"ip"`

	// MAC is the entry's hardware address, lower-cased with colon
	// separators. Empty for incomplete entries.
	MAC string `json:"mac,omitempty"`
}

// Probe answers questions about the live network environment. All
// methods honor context cancellation and bound their own execution
// time; a failed probe returns an error and never blocks the caller
// beyond the configured timeout.
type Probe interface {
	// CurrentSSID returns the name of the currently associated
	// wireless network, or "" when no network is associated.
	CurrentSSID(ctx context.Context) (string, error)

	// ARPEntries returns a snapshot of the ARP/neighbor table.
	ARPEntries(ctx context.Context) ([]ARPEntry, error)

	// Ping reports whether addr answered a single echo request
	// within the probe's timeout. An unanswered ping is a false
	// result, not an error.
	Ping(ctx context.Context, addr string) (bool, error)
}
