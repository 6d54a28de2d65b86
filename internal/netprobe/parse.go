// Package netprobe answers questions about the live network
// environment for condition evaluation.
package netprobe

import (
	"net"
	"strconv"
	"strings"
	"time"
)

// zeroMAC marks incomplete entries in the kernel ARP table.
const zeroMAC = "00:00:00:00:00:00"

// parseProcNetARP parses /proc/net/arp. The first line is a header;
// each following row is
//
//	IP address  HW type  Flags  HW address  Mask  Device
//
// Entries with flags 0x0 or an all-zero hardware address are
// incomplete and yield an empty MAC.
func parseProcNetARP(text string) []ARPEntry {
	var entries []ARPEntry
	for i, line := range strings.Split(text, "\n") {
		if i == 0 {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}
		mac := normalizeMAC(fields[3])
		if fields[2] == "0x0" || mac == zeroMAC {
			mac = ""
		}
		entries = append(entries, ARPEntry{IP: fields[0], MAC: mac})
	}
	return entries
}

// parseARPVerbose parses `arp -an` output as printed on darwin and
// the BSDs:
//
//	? (192.168.1.1) at aa:bb:cc:dd:ee:ff on en0 ifscope [ethernet]
//	? (192.168.1.7) at (incomplete) on en0 ifscope [ethernet]
func parseARPVerbose(text string) []ARPEntry {
	var entries []ARPEntry
	for _, line := range strings.Split(text, "\n") {
		open := strings.IndexByte(line, '(')
		closing := strings.IndexByte(line, ')')
		if open < 0 || closing < open {
			continue
		}
		ip := line[open+1 : closing]

		rest := line[closing+1:]
		i := strings.Index(rest, " at ")
		if i < 0 {
			continue
		}
		mac := rest[i+len(" at "):]
		if j := strings.IndexByte(mac, ' '); j >= 0 {
			mac = mac[:j]
		}
		if strings.HasPrefix(mac, "(") {
			mac = ""
		}
		entries = append(entries, ARPEntry{IP: ip, MAC: normalizeMAC(mac)})
	}
	return entries
}

// parseARPTable parses `arp -a` output as printed on windows:
//
//	Interface: 192.168.1.12 --- 0x5
//	  Internet Address      Physical Address      Type
//	  192.168.1.1           aa-bb-cc-dd-ee-ff     dynamic
//
// Rows whose first field is not an IP address are headers.
func parseARPTable(text string) []ARPEntry {
	var entries []ARPEntry
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		if net.ParseIP(fields[0]) == nil {
			continue
		}
		entries = append(entries, ARPEntry{IP: fields[0], MAC: normalizeMAC(fields[1])})
	}
	return entries
}

// parseNetshSSID extracts the SSID from `netsh wlan show interfaces`
// output. The prefix match is anchored to the trimmed row start so
// the BSSID row does not qualify.
func parseNetshSSID(text string) string {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "SSID") {
			continue
		}
		_, value, found := strings.Cut(trimmed, ":")
		if !found {
			continue
		}
		return strings.TrimSpace(value)
	}
	return ""
}

// parseAirportNetwork extracts the SSID from
// `networksetup -getairportnetwork` output:
//
//	Current Wi-Fi Network: HomeWiFi
//
// The not-associated message has no ": " separator and yields "".
func parseAirportNetwork(text string) string {
	line := firstLine(text)
	_, value, found := strings.Cut(line, ": ")
	if !found {
		return ""
	}
	return strings.TrimSpace(value)
}

// pingCommand builds the platform's single-echo ping invocation with
// the wait bounded by timeout.
func pingCommand(goos, addr string, timeout time.Duration) (string, []string) {
	switch goos {
	case "windows":
		ms := strconv.FormatInt(timeout.Milliseconds(), 10)
		return "ping", []string{"-n", "1", "-w", ms, addr}
	case "darwin":
		return "ping", []string{"-c", "1", "-t", secondsArg(timeout), addr}
	default:
		return "ping", []string{"-c", "1", "-W", secondsArg(timeout), addr}
	}
}

// secondsArg renders a duration as whole seconds, minimum 1.
func secondsArg(d time.Duration) string {
	s := int64(d / time.Second)
	if s < 1 {
		s = 1
	}
	return strconv.FormatInt(s, 10)
}

// normalizeMAC lowers a hardware address and converts dash separators
// to colons. Strings without any separator are not MAC-like and
// yield "".
func normalizeMAC(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", ":")
	if !strings.Contains(s, ":") {
		return ""
	}
	return s
}

// firstLine returns the first line of s, trimmed.
func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSpace(line)
}
