// Package domain defines the core domain models for sshblend.
package domain

import (
	"crypto/rand"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// RunIDPrefix is the prefix for run report IDs.
const RunIDPrefix = "sbr-"

// FragmentReport records the outcome of one fragment file within a
// run. Skipped fragments carry a reason; composed fragments carry the
// section decision.
type FragmentReport struct {
	// Name is the fragment's base filename.
	Name string `json:"name"`

	// Skipped reports whether the fragment was excluded from the
	// composed output.
	Skipped bool `json:"skipped"`

	// Reason describes why a skipped fragment was excluded.
	Reason string `json:"reason,omitempty"`

	// UseLocal records the section choice for composed fragments.
	UseLocal bool `json:"use_local"`

	// Matched identifies the condition that selected the local
	// section, nil when none fired.
	Matched *ConditionMatch `json:"matched,omitempty"`
}

// Section names the emitted section for reports.
func (r FragmentReport) Section() string {
	switch {
	case r.Skipped:
		return "skipped"
	case r.UseLocal:
		return "local"
	default:
		return "remote"
	}
}

// RunReport records the outcome of one generation run. Per-fragment
// failures are contained here instead of failing the run.
type RunReport struct {
	// ID is the unique identifier for the run.
	// Format: sbr-{ulid_lowercase}.
	ID string `json:"id"`

	// StartedAt is the run start time.
	StartedAt time.Time `json:"started_at"`

	// Duration is the total wall time of the run.
	Duration time.Duration `json:"duration"`

	// Fragments holds one entry per discovered fragment file, in
	// composition (lexicographic filename) order.
	Fragments []FragmentReport `json:"fragments"`

	// OutputPath is the destination of the composed config.
	OutputPath string `json:"output_path,omitempty"`

	// Bytes is the size of the composed document.
	Bytes int `json:"bytes"`

	// Checksum is the fingerprint of the composed document, hex.
	Checksum string `json:"checksum,omitempty"`

	// Written reports whether the output file was replaced.
	Written bool `json:"written"`

	// Unchanged reports whether the composed document was identical
	// to the previous output.
	Unchanged bool `json:"unchanged"`
}

// WriteResult describes the outcome of persisting one composed
// document.
type WriteResult struct {
	// Path is the output file the document was destined for.
	Path string `json:"path"`

	// Bytes is the document size.
	Bytes int `json:"bytes"`

	// Checksum is the document fingerprint, hex.
	Checksum string `json:"checksum"`

	// Written reports whether the output file was replaced.
	Written bool `json:"written"`

	// Unchanged reports whether the document matched the previous
	// output byte for byte.
	Unchanged bool `json:"unchanged"`
}

// NewRunReport creates a RunReport with a generated ID and start time.
func NewRunReport() (*RunReport, error) {
	id, err := GenerateRunID()
	if err != nil {
		return nil, err
	}
	return &RunReport{
		ID:        id,
		StartedAt: time.Now(),
	}, nil
}

// GenerateRunID generates a new run ID using ULID.
// Format: sbr-{ulid_lowercase}.
func GenerateRunID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", ErrInternal.WithCause(err)
	}
	return RunIDPrefix + strings.ToLower(id.String()), nil
}

// Finish stamps the run duration.
func (r *RunReport) Finish() {
	r.Duration = time.Since(r.StartedAt)
}

// Composed returns the number of fragments that contributed to the
// output.
func (r *RunReport) Composed() int {
	n := 0
	for _, fr := range r.Fragments {
		if !fr.Skipped {
			n++
		}
	}
	return n
}

// SkippedCount returns the number of fragments excluded from the run.
func (r *RunReport) SkippedCount() int {
	return len(r.Fragments) - r.Composed()
}
