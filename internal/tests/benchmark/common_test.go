package benchmark

import (
	"context"
	"fmt"
	"strings"

	"github.com/sshblend/sshblend/internal/netprobe"
)

// FragmentCounts defines the fragment counts for benchmarking. A
// personal fragment directory rarely holds more than a few dozen
// files; the larger counts probe scaling headroom.
var FragmentCounts = []int{10, 50, 200, 1000}

// fragmentText builds a realistic fragment with conditions and all
// three sections, numbered so each is distinct.
func fragmentText(i int) string {
	var b strings.Builder
	b.WriteString("# CONDITIONS BEGIN\n")
	fmt.Fprintf(&b, "LocalSSID Net%d\n", i)
	fmt.Fprintf(&b, "LocalGateway 192.168.%d.1\n", i%256)
	b.WriteString("# CONDITIONS END\n")
	b.WriteString("# GLOBAL CONFIG BEGIN\n")
	fmt.Fprintf(&b, "Host shared-%d\n    ServerAliveInterval 60\n", i)
	b.WriteString("# GLOBAL CONFIG END\n")
	b.WriteString("# LOCAL CONFIG BEGIN\n")
	fmt.Fprintf(&b, "Host box-%d\n    HostName 192.168.%d.10\n", i, i%256)
	b.WriteString("# LOCAL CONFIG END\n")
	b.WriteString("# REMOTE CONFIG BEGIN\n")
	fmt.Fprintf(&b, "Host box-%d\n    HostName box-%d.example.com\n    ProxyJump bastion\n", i, i)
	b.WriteString("# REMOTE CONFIG END\n")
	return b.String()
}

// staticProbe answers from fixed data with no system calls, so
// benchmarks measure evaluation logic rather than subprocess cost.
type staticProbe struct {
	ssid    string
	entries []netprobe.ARPEntry
	up      map[string]bool
}

func (p *staticProbe) CurrentSSID(context.Context) (string, error) {
	return p.ssid, nil
}

func (p *staticProbe) ARPEntries(context.Context) ([]netprobe.ARPEntry, error) {
	return p.entries, nil
}

func (p *staticProbe) Ping(_ context.Context, addr string) (bool, error) {
	return p.up[addr], nil
}
