// Package service provides the domain services for sshblend.
package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sshblend/sshblend/internal/core/domain"
)

// fakeSink records the last written document.
type fakeSink struct {
	doc    []byte
	writes int
	err    error
}

func (s *fakeSink) Write(ctx context.Context, doc []byte) (domain.WriteResult, error) {
	if s.err != nil {
		return domain.WriteResult{}, s.err
	}
	s.doc = append([]byte(nil), doc...)
	s.writes++
	return domain.WriteResult{
		Path:     "/tmp/out",
		Bytes:    len(doc),
		Checksum: "feed",
		Written:  true,
	}, nil
}

// writeFragment drops a fragment file into dir.
func writeFragment(t *testing.T, dir, name, text string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(text), 0o644); err != nil {
		t.Fatalf("write fragment: %v", err)
	}
}

func newTestGenerator(t *testing.T, dir string, probe *fakeProbe, sink OutputSink) *Generator {
	t.Helper()
	return NewGenerator(
		GeneratorConfig{FragmentsDir: dir},
		NewEvaluator(probe, nil),
		sink,
		nil,
	)
}

func TestGenerator_Run(t *testing.T) {
	dir := t.TempDir()
	writeFragment(t, dir, "b.sshconf", "# GLOBAL CONFIG BEGIN\nHost work\n# GLOBAL CONFIG END\n")
	writeFragment(t, dir, "a.sshconf", `# CONDITIONS BEGIN
LocalSSID HomeWiFi
# CONDITIONS END
# GLOBAL CONFIG BEGIN
Host *
# GLOBAL CONFIG END
# LOCAL CONFIG BEGIN
Host nas
# LOCAL CONFIG END
# REMOTE CONFIG BEGIN
Host far
# REMOTE CONFIG END
`)

	probe := &fakeProbe{ssid: "HomeWiFi"}
	sink := &fakeSink{}
	gen := newTestGenerator(t, dir, probe, sink)

	report, err := gen.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(report.Fragments) != 2 {
		t.Fatalf("fragments = %d, want 2", len(report.Fragments))
	}
	// Lexicographic discovery order.
	if report.Fragments[0].Name != "a.sshconf" || report.Fragments[1].Name != "b.sshconf" {
		t.Errorf("order = %s, %s; want a.sshconf, b.sshconf",
			report.Fragments[0].Name, report.Fragments[1].Name)
	}
	if !report.Fragments[0].UseLocal {
		t.Error("a.sshconf should resolve local on matching ssid")
	}
	if report.Fragments[1].UseLocal {
		t.Error("b.sshconf has no conditions and should resolve remote")
	}

	doc := string(sink.doc)
	if !strings.Contains(doc, "Host nas") {
		t.Errorf("local section missing from output:\n%s", doc)
	}
	if strings.Contains(doc, "Host far") {
		t.Errorf("unselected remote section leaked into output:\n%s", doc)
	}

	if !report.Written || report.OutputPath != "/tmp/out" {
		t.Errorf("report output fields = %+v, want sink result folded in", report)
	}
	if report.Checksum != "feed" {
		t.Errorf("Checksum = %q, want %q", report.Checksum, "feed")
	}
	if report.ID == "" || !strings.HasPrefix(report.ID, domain.RunIDPrefix) {
		t.Errorf("ID = %q, want %q prefix", report.ID, domain.RunIDPrefix)
	}
}

func TestGenerator_UnreadableFragmentIsContained(t *testing.T) {
	dir := t.TempDir()
	writeFragment(t, dir, "a.sshconf", "# GLOBAL CONFIG BEGIN\nHost a\n# GLOBAL CONFIG END\n")
	// A directory with the fragment extension reads as EISDIR,
	// which is a read failure like any other.
	if err := os.Mkdir(filepath.Join(dir, "bad.sshconf"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeFragment(t, dir, "c.sshconf", "# GLOBAL CONFIG BEGIN\nHost c\n# GLOBAL CONFIG END\n")

	sink := &fakeSink{}
	gen := newTestGenerator(t, dir, &fakeProbe{}, sink)

	report, err := gen.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v, want contained failure", err)
	}

	if len(report.Fragments) != 3 {
		t.Fatalf("fragments = %d, want 3", len(report.Fragments))
	}
	bad := report.Fragments[1]
	if bad.Name != "bad.sshconf" || !bad.Skipped {
		t.Errorf("bad.sshconf should be skipped, got %+v", bad)
	}
	if !strings.Contains(bad.Reason, "SB-FRAG-5000") {
		t.Errorf("Reason = %q, want read failure code", bad.Reason)
	}

	doc := string(sink.doc)
	if !strings.Contains(doc, "Host a") || !strings.Contains(doc, "Host c") {
		t.Errorf("surviving fragments missing from output:\n%s", doc)
	}
}

func TestGenerator_EmptyFragmentSkipped(t *testing.T) {
	dir := t.TempDir()
	writeFragment(t, dir, "empty.sshconf", "  \n\n")

	sink := &fakeSink{}
	gen := newTestGenerator(t, dir, &fakeProbe{}, sink)

	report, err := gen.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(report.Fragments) != 1 || !report.Fragments[0].Skipped {
		t.Fatalf("empty fragment should be skipped, got %+v", report.Fragments)
	}
	if !strings.Contains(report.Fragments[0].Reason, "SB-FRAG-4000") {
		t.Errorf("Reason = %q, want empty fragment code", report.Fragments[0].Reason)
	}
}

func TestGenerator_NoFragmentsWritesBannerOnly(t *testing.T) {
	dir := t.TempDir()

	sink := &fakeSink{}
	gen := newTestGenerator(t, dir, &fakeProbe{}, sink)

	report, err := gen.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v, want success for empty directory", err)
	}

	if len(report.Fragments) != 0 {
		t.Errorf("fragments = %d, want 0", len(report.Fragments))
	}
	if sink.writes != 1 {
		t.Fatalf("writes = %d, want 1", sink.writes)
	}
	if got, want := string(sink.doc), Banner+"\n"; got != want {
		t.Errorf("doc = %q, want banner only %q", got, want)
	}
}

func TestGenerator_MissingDirectoryIsFatal(t *testing.T) {
	sink := &fakeSink{}
	gen := newTestGenerator(t, "/nonexistent/sshblend-test", &fakeProbe{}, sink)

	_, err := gen.Run(context.Background())
	if !domain.IsDomainError(err, "SB-FRAG-5001") {
		t.Errorf("error = %v, want SB-FRAG-5001", err)
	}
	if sink.writes != 0 {
		t.Error("sink should not be touched on fatal listing error")
	}
}

func TestGenerator_IgnoresOtherExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFragment(t, dir, "notes.txt", "not a fragment")
	writeFragment(t, dir, "a.sshconf", "# GLOBAL CONFIG BEGIN\nHost a\n# GLOBAL CONFIG END\n")

	sink := &fakeSink{}
	gen := newTestGenerator(t, dir, &fakeProbe{}, sink)

	report, err := gen.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(report.Fragments) != 1 || report.Fragments[0].Name != "a.sshconf" {
		t.Errorf("fragments = %+v, want only a.sshconf", report.Fragments)
	}
}

func TestGenerator_SinkErrorIsFatal(t *testing.T) {
	dir := t.TempDir()
	writeFragment(t, dir, "a.sshconf", "# GLOBAL CONFIG BEGIN\nHost a\n# GLOBAL CONFIG END\n")

	sink := &fakeSink{err: domain.ErrOutputWrite.WithDetails("disk full")}
	gen := newTestGenerator(t, dir, &fakeProbe{}, sink)

	_, err := gen.Run(context.Background())
	if !domain.IsDomainError(err, "SB-OUT-5000") {
		t.Errorf("error = %v, want SB-OUT-5000", err)
	}
}

func TestGenerator_PlanDoesNotWrite(t *testing.T) {
	dir := t.TempDir()
	writeFragment(t, dir, "a.sshconf", "# GLOBAL CONFIG BEGIN\nHost a\n# GLOBAL CONFIG END\n")

	sink := &fakeSink{}
	gen := newTestGenerator(t, dir, &fakeProbe{}, sink)

	report, doc, err := gen.Plan(context.Background())
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	if sink.writes != 0 {
		t.Errorf("writes = %d, want 0 for dry run", sink.writes)
	}
	if !strings.Contains(string(doc), "Host a") {
		t.Errorf("doc missing payload:\n%s", doc)
	}
	if report.Bytes != len(doc) {
		t.Errorf("Bytes = %d, want %d", report.Bytes, len(doc))
	}
}

func TestGenerator_ConcurrentEvaluationPreservesOrder(t *testing.T) {
	dir := t.TempDir()
	// Enough fragments to make completion order unlikely to match
	// discovery order if composition depended on it.
	names := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	for _, n := range names {
		writeFragment(t, dir, n+".sshconf",
			"# GLOBAL CONFIG BEGIN\nHost "+n+"\n# GLOBAL CONFIG END\n")
	}

	sink := &fakeSink{}
	gen := NewGenerator(
		GeneratorConfig{FragmentsDir: dir, Concurrency: 4},
		NewEvaluator(&fakeProbe{}, nil),
		sink,
		nil,
	)

	report, err := gen.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	for i, n := range names {
		if report.Fragments[i].Name != n+".sshconf" {
			t.Fatalf("fragment[%d] = %s, want %s.sshconf", i, report.Fragments[i].Name, n)
		}
	}

	doc := string(sink.doc)
	pos := -1
	for _, n := range names {
		i := strings.Index(doc, "Host "+n)
		if i < 0 {
			t.Fatalf("output missing Host %s", n)
		}
		if i < pos {
			t.Fatalf("output out of discovery order:\n%s", doc)
		}
		pos = i
	}
}
