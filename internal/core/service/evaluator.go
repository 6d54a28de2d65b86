// Package service provides the domain services for sshblend.
package service

import (
	"context"

	"github.com/sshblend/sshblend/internal/core/domain"
	"github.com/sshblend/sshblend/internal/netprobe"
	"github.com/sshblend/sshblend/internal/telemetry/logger"
)

// Evaluator decides whether a fragment's conditions match the live
// network environment. Categories are checked in the SSID, gateway,
// ping order; the first matching criterion wins and later checks are
// skipped. A probe failure counts as "no match" for that category and
// never fails the evaluation.
type Evaluator struct {
	probe netprobe.Probe
	log   logger.Logger
}

// NewEvaluator creates a new Evaluator. A nil log falls back to the
// package default logger.
func NewEvaluator(probe netprobe.Probe, log logger.Logger) *Evaluator {
	if log == nil {
		log = logger.Default()
	}
	return &Evaluator{probe: probe, log: log}
}

// Evaluate resolves one fragment's section choice. Empty conditions
// resolve to the remote section without touching the probe.
func (e *Evaluator) Evaluate(ctx context.Context, cond domain.Conditions) domain.Evaluation {
	// 1. Nothing declared: remote, zero probe calls.
	if cond.Empty() {
		return domain.Evaluation{}
	}

	// 2. Wireless network name.
	if match := e.matchSSID(ctx, cond.SSIDs); match != nil {
		return domain.Evaluation{UseLocal: true, Matched: match}
	}

	// 3. Gateway presence in the ARP/neighbor table.
	if match := e.matchGateway(ctx, cond.Gateways); match != nil {
		return domain.Evaluation{UseLocal: true, Matched: match}
	}

	// 4. Echo reachability.
	if match := e.matchPing(ctx, cond.PingTargets); match != nil {
		return domain.Evaluation{UseLocal: true, Matched: match}
	}

	return domain.Evaluation{}
}

// matchSSID checks whether the currently associated wireless network
// is one of the configured names. Comparison is case-sensitive.
func (e *Evaluator) matchSSID(ctx context.Context, ssids []string) *domain.ConditionMatch {
	if len(ssids) == 0 {
		return nil
	}

	current, err := e.probe.CurrentSSID(ctx)
	if err != nil {
		e.log.Debug("ssid probe failed, treating as no match", "error", err)
		return nil
	}
	if current == "" {
		return nil
	}

	for _, ssid := range ssids {
		if ssid == current {
			return &domain.ConditionMatch{Kind: domain.MatchSSID, Value: ssid}
		}
	}
	return nil
}

// matchGateway checks whether any configured gateway appears in the
// ARP/neighbor table. The IP must match exactly; hardware addresses
// are compared only when both sides carry one.
func (e *Evaluator) matchGateway(ctx context.Context, gateways []domain.Gateway) *domain.ConditionMatch {
	if len(gateways) == 0 {
		return nil
	}

	entries, err := e.probe.ARPEntries(ctx)
	if err != nil {
		e.log.Debug("arp probe failed, treating as no match", "error", err)
		return nil
	}

	for _, gw := range gateways {
		for _, entry := range entries {
			if gatewayMatches(gw, entry) {
				return &domain.ConditionMatch{Kind: domain.MatchGateway, Value: gw.String()}
			}
		}
	}
	return nil
}

// matchPing probes targets in order and stops at the first reply.
func (e *Evaluator) matchPing(ctx context.Context, targets []string) *domain.ConditionMatch {
	for _, target := range targets {
		up, err := e.probe.Ping(ctx, target)
		if err != nil {
			e.log.Debug("ping probe failed, treating as no match", "target", target, "error", err)
			continue
		}
		if up {
			return &domain.ConditionMatch{Kind: domain.MatchPing, Value: target}
		}
	}
	return nil
}

// gatewayMatches reports whether one ARP entry satisfies one gateway
// criterion. A criterion without a hardware address matches on IP
// alone, as does an entry the system reported as incomplete.
func gatewayMatches(gw domain.Gateway, entry netprobe.ARPEntry) bool {
	if gw.IP != entry.IP {
		return false
	}
	if gw.MAC == "" || entry.MAC == "" {
		return true
	}
	return gw.MAC == entry.MAC
}
