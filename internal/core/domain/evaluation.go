// Package domain defines the core domain models for sshblend.
package domain

import (
	"fmt"
)

// Condition kinds reported in evaluation results.
const (
	MatchSSID    = "ssid"
	MatchGateway = "gateway"
	MatchPing    = "ping"
)

// ConditionMatch identifies the condition that resolved a fragment to
// its local section.
type ConditionMatch struct {
	// Kind is one of MatchSSID, MatchGateway, MatchPing.
	Kind string `json:"kind"`

	// Value is the matched criterion as written in the fragment.
	Value string `json:"value"`
}

// String formats the match for output headers and reports.
func (m ConditionMatch) String() string {
	return fmt.Sprintf("%s %q", m.Kind, m.Value)
}

// Evaluation is the outcome of checking one fragment's conditions
// against the live network environment.
type Evaluation struct {
	// UseLocal selects the fragment's local section when true, the
	// remote section otherwise.
	UseLocal bool `json:"use_local"`

	// Matched identifies the first condition that fired, in the
	// SSID, gateway, ping order. Nil when no condition matched.
	Matched *ConditionMatch `json:"matched,omitempty"`
}

// Summary describes the evaluation for output headers and reports.
// The fragment's conditions distinguish "nothing declared" from
// "nothing matched".
func (e Evaluation) Summary(c Conditions) string {
	switch {
	case e.UseLocal && e.Matched != nil:
		return e.Matched.String()
	case e.UseLocal:
		return "matched"
	case c.Empty():
		return "no conditions defined"
	default:
		return "no conditions matched"
	}
}
