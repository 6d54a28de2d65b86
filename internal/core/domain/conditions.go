// Package domain defines the core domain models for sshblend.
package domain

import (
	"strings"
)

// Condition keys recognized inside a CONDITIONS section. Lines with
// any other key are ignored.
const (
	KeyLocalSSID    = "LocalSSID"
	KeyLocalGateway = "LocalGateway"
	KeyLocalPing    = "LocalPing"
)

// Gateway pairs a gateway IP address with an optional hardware address.
type Gateway struct {
	// IP is the gateway address exactly as written in the fragment.
	IP string `json:"ip"`

	// MAC is the expected hardware address, lower-cased. Empty when
	// the entry did not specify one; an empty MAC matches any
	// hardware address at that IP.
	MAC string `json:"mac,omitempty"`
}

// String formats the gateway the way it is written in fragments.
func (g Gateway) String() string {
	if g.MAC == "" {
		return g.IP
	}
	return g.IP + "|" + g.MAC
}

// Conditions holds the network-presence criteria declared by one
// fragment. Categories are independent; a fragment resolves to its
// local section when any single criterion in any category matches.
type Conditions struct {
	// SSIDs lists wireless network names, matched case-sensitively
	// against the currently associated SSID.
	SSIDs []string `json:"ssids,omitempty"`

	// Gateways lists gateway addresses expected in the ARP/neighbor
	// table, each with an optional hardware address.
	Gateways []Gateway `json:"gateways,omitempty"`

	// PingTargets lists addresses probed with a single echo request.
	PingTargets []string `json:"ping_targets,omitempty"`
}

// Empty reports whether no criteria are declared. A fragment with
// empty conditions can never resolve to its local section.
func (c Conditions) Empty() bool {
	return len(c.SSIDs) == 0 && len(c.Gateways) == 0 && len(c.PingTargets) == 0
}

// Count returns the total number of declared criteria.
func (c Conditions) Count() int {
	return len(c.SSIDs) + len(c.Gateways) + len(c.PingTargets)
}

// addLine folds one CONDITIONS payload line into c. The line format
// is "Key value[,value...]"; the key is everything before the first
// space or tab. Blank lines, comments, unknown keys, and keys without
// a value are ignored. Repeated keys accumulate.
func (c *Conditions) addLine(line string) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return
	}

	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return
	}
	key := line[:i]
	value := strings.TrimSpace(line[i+1:])

	switch key {
	case KeyLocalSSID:
		c.SSIDs = append(c.SSIDs, splitList(value)...)
	case KeyLocalGateway:
		for _, item := range splitList(value) {
			if gw, ok := parseGateway(item); ok {
				c.Gateways = append(c.Gateways, gw)
			}
		}
	case KeyLocalPing:
		c.PingTargets = append(c.PingTargets, splitList(value)...)
	}
}

// splitList splits a comma-separated value, trimming each item and
// dropping empty ones. Order is preserved.
func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		items = append(items, item)
	}
	return items
}

// parseGateway parses one "ip|mac" gateway item. The separator and
// hardware address are optional; an item with an empty IP is rejected.
// Hardware addresses are lower-cased and dash separators converted to
// colons so they compare against probe output directly.
func parseGateway(item string) (Gateway, bool) {
	ip, mac, _ := strings.Cut(item, "|")
	ip = strings.TrimSpace(ip)
	if ip == "" {
		return Gateway{}, false
	}
	mac = strings.ToLower(strings.TrimSpace(mac))
	mac = strings.ReplaceAll(mac, "-", ":")
	return Gateway{IP: ip, MAC: mac}, true
}
