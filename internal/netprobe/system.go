// Package netprobe answers questions about the live network
// environment for condition evaluation.
package netprobe

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/sshblend/sshblend/internal/core/domain"
)

// Default execution bounds for probe utilities.
const (
	DefaultPingTimeout    = 1 * time.Second
	DefaultCommandTimeout = 2 * time.Second
	DefaultWifiInterface  = "en0"
)

// procNetARP is the kernel ARP table on Linux.
const procNetARP = "/proc/net/arp"

// Config bounds the system probe's external command execution.
type Config struct {
	// PingTimeout bounds one echo request round trip.
	PingTimeout time.Duration

	// CommandTimeout bounds any other utility invocation.
	CommandTimeout time.Duration

	// WifiInterface is the wireless interface queried on platforms
	// whose utilities require one (networksetup on darwin).
	WifiInterface string
}

// DefaultConfig returns the default probe configuration.
func DefaultConfig() Config {
	return Config{
		PingTimeout:    DefaultPingTimeout,
		CommandTimeout: DefaultCommandTimeout,
		WifiInterface:  DefaultWifiInterface,
	}
}

// runFunc executes one external command and returns its stdout.
type runFunc func(ctx context.Context, name string, args ...string) (string, error)

// System probes the live network environment through the platform's
// standard utilities. The zero value is not usable; construct with
// NewSystem.
type System struct {
	cfg  Config
	goos string
	run  runFunc
}

// NewSystem creates a probe for the current platform. Zero config
// fields fall back to defaults.
func NewSystem(cfg Config) *System {
	if cfg.PingTimeout <= 0 {
		cfg.PingTimeout = DefaultPingTimeout
	}
	if cfg.CommandTimeout <= 0 {
		cfg.CommandTimeout = DefaultCommandTimeout
	}
	if cfg.WifiInterface == "" {
		cfg.WifiInterface = DefaultWifiInterface
	}
	return &System{cfg: cfg, goos: runtime.GOOS, run: runCommand}
}

// CurrentSSID implements Probe.
func (p *System) CurrentSSID(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.CommandTimeout)
	defer cancel()

	switch p.goos {
	case "linux":
		out, err := p.run(ctx, "iwgetid", "-r")
		if err != nil {
			// iwgetid exits nonzero when no interface is associated.
			if isExitError(err) {
				return "", nil
			}
			return "", domain.ErrProbe.WithDetails("iwgetid").WithCause(err)
		}
		return firstLine(out), nil

	case "darwin":
		out, err := p.run(ctx, "networksetup", "-getairportnetwork", p.cfg.WifiInterface)
		if err != nil {
			return "", domain.ErrProbe.WithDetails("networksetup").WithCause(err)
		}
		return parseAirportNetwork(out), nil

	case "windows":
		out, err := p.run(ctx, "netsh", "wlan", "show", "interfaces")
		if err != nil {
			return "", domain.ErrProbe.WithDetails("netsh").WithCause(err)
		}
		return parseNetshSSID(out), nil
	}
	return "", domain.ErrProbeUnsupported.WithDetails("ssid lookup on " + p.goos)
}

// ARPEntries implements Probe.
func (p *System) ARPEntries(ctx context.Context) ([]ARPEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.CommandTimeout)
	defer cancel()

	switch p.goos {
	case "linux":
		text, err := os.ReadFile(procNetARP)
		if err != nil {
			return nil, domain.ErrProbe.WithDetails(procNetARP).WithCause(err)
		}
		return parseProcNetARP(string(text)), nil

	case "darwin":
		out, err := p.run(ctx, "arp", "-an")
		if err != nil {
			return nil, domain.ErrProbe.WithDetails("arp -an").WithCause(err)
		}
		return parseARPVerbose(out), nil

	case "windows":
		out, err := p.run(ctx, "arp", "-a")
		if err != nil {
			return nil, domain.ErrProbe.WithDetails("arp -a").WithCause(err)
		}
		return parseARPTable(out), nil
	}
	return nil, domain.ErrProbeUnsupported.WithDetails("arp lookup on " + p.goos)
}

// Ping implements Probe. One echo request, no retries.
func (p *System) Ping(ctx context.Context, addr string) (bool, error) {
	// Let the utility's own wait expire before the context does.
	ctx, cancel := context.WithTimeout(ctx, p.cfg.PingTimeout+500*time.Millisecond)
	defer cancel()

	name, args := pingCommand(p.goos, addr, p.cfg.PingTimeout)
	_, err := p.run(ctx, name, args...)
	switch {
	case err == nil:
		return true, nil
	case isExitError(err) || ctx.Err() != nil:
		// An unanswered ping is a result, not a failure.
		return false, nil
	}
	return false, domain.ErrProbe.WithDetails("ping " + addr).WithCause(err)
}

// runCommand is the production runFunc.
func runCommand(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	return string(out), err
}

// isExitError reports whether err is a nonzero exit from a command
// that did start.
func isExitError(err error) bool {
	var exit *exec.ExitError
	return errors.As(err, &exit)
}
