// Package domain defines the core domain models for sshblend.
package domain

import (
	"strings"
	"testing"
)

func TestGenerateRunID(t *testing.T) {
	id, err := GenerateRunID()
	if err != nil {
		t.Fatalf("GenerateRunID() error = %v", err)
	}

	if !strings.HasPrefix(id, RunIDPrefix) {
		t.Errorf("id = %q, want prefix %q", id, RunIDPrefix)
	}
	if id != strings.ToLower(id) {
		t.Errorf("id = %q, want lowercase", id)
	}

	// IDs must be unique across calls
	other, err := GenerateRunID()
	if err != nil {
		t.Fatalf("GenerateRunID() error = %v", err)
	}
	if id == other {
		t.Errorf("consecutive ids should differ, both %q", id)
	}
}

func TestNewRunReport(t *testing.T) {
	report, err := NewRunReport()
	if err != nil {
		t.Fatalf("NewRunReport() error = %v", err)
	}

	if report.ID == "" {
		t.Error("ID should be set")
	}
	if report.StartedAt.IsZero() {
		t.Error("StartedAt should be set")
	}

	report.Finish()
	if report.Duration < 0 {
		t.Errorf("Duration = %v, want >= 0", report.Duration)
	}
}

func TestRunReport_Counts(t *testing.T) {
	report := &RunReport{
		Fragments: []FragmentReport{
			{Name: "a.sshconf", UseLocal: true},
			{Name: "b.sshconf", Skipped: true, Reason: "read failed"},
			{Name: "c.sshconf"},
		},
	}

	if got := report.Composed(); got != 2 {
		t.Errorf("Composed() = %d, want 2", got)
	}
	if got := report.SkippedCount(); got != 1 {
		t.Errorf("SkippedCount() = %d, want 1", got)
	}
}

func TestFragmentReport_Section(t *testing.T) {
	tests := []struct {
		name   string
		report FragmentReport
		want   string
	}{
		{name: "skipped", report: FragmentReport{Skipped: true}, want: "skipped"},
		{name: "local", report: FragmentReport{UseLocal: true}, want: "local"},
		{name: "remote", report: FragmentReport{}, want: "remote"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.report.Section(); got != tt.want {
				t.Errorf("Section() = %q, want %q", got, tt.want)
			}
		})
	}
}
