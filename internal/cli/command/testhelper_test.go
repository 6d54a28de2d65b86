package command

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/urfave/cli/v2"

	"github.com/sshblend/sshblend/internal/core/domain"
	"github.com/sshblend/sshblend/internal/core/service"
	"github.com/sshblend/sshblend/internal/netprobe"
)

// Fragment fixtures shared by command tests.
const (
	baseFragment = `# GLOBAL CONFIG BEGIN
Host *
    ServerAliveInterval 60
# GLOBAL CONFIG END
`

	homeFragment = `# CONDITIONS BEGIN
LocalSSID HomeNet
# CONDITIONS END

# LOCAL CONFIG BEGIN
Host nas
    HostName 192.168.1.10
# LOCAL CONFIG END

# REMOTE CONFIG BEGIN
Host nas
    HostName nas.example.com
# REMOTE CONFIG END
`
)

// fakeProbe answers network questions from scripted values.
type fakeProbe struct {
	mu      sync.Mutex
	ssid    string
	ssidErr error
	arp     []netprobe.ARPEntry
	pings   map[string]bool
}

func (p *fakeProbe) CurrentSSID(context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ssid, p.ssidErr
}

func (p *fakeProbe) ARPEntries(context.Context) ([]netprobe.ARPEntry, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.arp, nil
}

func (p *fakeProbe) Ping(_ context.Context, addr string) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pings[addr], nil
}

func (p *fakeProbe) setSSID(ssid string, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ssid, p.ssidErr = ssid, err
}

// fakeSink collects composed documents in memory.
type fakeSink struct {
	mu   sync.Mutex
	docs [][]byte
	err  error
}

func (s *fakeSink) Write(_ context.Context, doc []byte) (domain.WriteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return domain.WriteResult{}, s.err
	}
	s.docs = append(s.docs, append([]byte(nil), doc...))
	return domain.WriteResult{Path: "test-output", Bytes: len(doc), Written: true}, nil
}

func (s *fakeSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.docs)
}

func (s *fakeSink) last() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.docs) == 0 {
		return ""
	}
	return string(s.docs[len(s.docs)-1])
}

var _ service.OutputSink = (*fakeSink)(nil)

// newTestApp wires the app with fakes and captures its output. HOME
// is redirected so default ~ paths stay inside the test sandbox.
func newTestApp(t *testing.T, probe netprobe.Probe, sink service.OutputSink) (*cli.App, *bytes.Buffer) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	app := App()
	app.Metadata[metaProbe] = probe
	app.Metadata[metaSink] = sink

	buf := &bytes.Buffer{}
	app.Writer = buf
	return app, buf
}

// writeFragment drops one fragment file into dir.
func writeFragment(t *testing.T, dir, name, text string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(text), 0644); err != nil {
		t.Fatalf("write fragment %s: %v", name, err)
	}
}
