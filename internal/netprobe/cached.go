// Package netprobe answers questions about the live network
// environment for condition evaluation.
package netprobe

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cached memoizes another probe's answers for the lifetime of one
// generation run: at most one SSID lookup, one ARP snapshot, and one
// echo request per address reach the underlying probe. Failures are
// memoized too; a failed probe is not retried within the run.
//
// Safe for concurrent use. Concurrent callers asking the same
// question share a single underlying call.
type Cached struct {
	probe  Probe
	flight singleflight.Group

	mu    sync.Mutex
	ssid  *ssidAnswer
	arp   *arpAnswer
	pings map[string]pingAnswer
}

type ssidAnswer struct {
	ssid string
	err  error
}

type arpAnswer struct {
	entries []ARPEntry
	err     error
}

type pingAnswer struct {
	up  bool
	err error
}

// NewCached wraps probe with a per-run cache.
func NewCached(probe Probe) *Cached {
	return &Cached{
		probe: probe,
		pings: make(map[string]pingAnswer),
	}
}

// CurrentSSID implements Probe.
func (c *Cached) CurrentSSID(ctx context.Context) (string, error) {
	c.mu.Lock()
	if a := c.ssid; a != nil {
		c.mu.Unlock()
		return a.ssid, a.err
	}
	c.mu.Unlock()

	v, _, _ := c.flight.Do("ssid", func() (any, error) {
		ssid, err := c.probe.CurrentSSID(ctx)
		a := &ssidAnswer{ssid: ssid, err: err}
		c.mu.Lock()
		c.ssid = a
		c.mu.Unlock()
		return a, nil
	})
	a := v.(*ssidAnswer)
	return a.ssid, a.err
}

// ARPEntries implements Probe.
func (c *Cached) ARPEntries(ctx context.Context) ([]ARPEntry, error) {
	c.mu.Lock()
	if a := c.arp; a != nil {
		c.mu.Unlock()
		return a.entries, a.err
	}
	c.mu.Unlock()

	v, _, _ := c.flight.Do("arp", func() (any, error) {
		entries, err := c.probe.ARPEntries(ctx)
		a := &arpAnswer{entries: entries, err: err}
		c.mu.Lock()
		c.arp = a
		c.mu.Unlock()
		return a, nil
	})
	a := v.(*arpAnswer)
	return a.entries, a.err
}

// Ping implements Probe.
func (c *Cached) Ping(ctx context.Context, addr string) (bool, error) {
	c.mu.Lock()
	if a, ok := c.pings[addr]; ok {
		c.mu.Unlock()
		return a.up, a.err
	}
	c.mu.Unlock()

	v, _, _ := c.flight.Do("ping:"+addr, func() (any, error) {
		up, err := c.probe.Ping(ctx, addr)
		a := pingAnswer{up: up, err: err}
		c.mu.Lock()
		c.pings[addr] = a
		c.mu.Unlock()
		return a, nil
	})
	a := v.(pingAnswer)
	return a.up, a.err
}
