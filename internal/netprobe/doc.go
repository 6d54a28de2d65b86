// Package netprobe answers questions about the live network
// environment for condition evaluation.
//
// The package isolates every platform-specific discovery mechanism
// behind the Probe interface:
//
//   - CurrentSSID: the currently associated wireless network name
//   - ARPEntries: a snapshot of the ARP/neighbor table
//   - Ping: reachability of one address via a single echo request
//
// System is the production implementation. It shells out to the
// platform's standard utilities (iwgetid, networksetup, netsh, arp,
// ping) with bounded timeouts and parses their output with pure
// helpers. Cached wraps any Probe and memoizes its answers for the
// lifetime of one generation run, including failures, so concurrent
// fragment evaluations share a single underlying call per question.
//
// Probe failures are ordinary errors; callers decide whether they are
// fatal. The evaluator treats every probe error as "condition not
// matched".
package netprobe
