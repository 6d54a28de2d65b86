package metric

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/sshblend/sshblend/internal/core/domain"
)

func TestObserveRun_Success(t *testing.T) {
	r := NewRegistry()

	report := &domain.RunReport{
		ID:        "sbr-test",
		StartedAt: time.Now(),
		Duration:  120 * time.Millisecond,
		Bytes:     512,
		Fragments: []domain.FragmentReport{
			{Name: "00-base.sshconf"},
			{Name: "10-home.sshconf", UseLocal: true},
			{Name: "99-broken.sshconf", Skipped: true, Reason: "read failed"},
		},
	}
	r.ObserveRun(report, nil)

	if got := testutil.ToFloat64(r.RunsTotal.WithLabelValues(ResultSuccess)); got != 1 {
		t.Errorf("runs_total{result=success} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.FragmentsComposed); got != 2 {
		t.Errorf("fragments_composed = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.FragmentsSkipped); got != 1 {
		t.Errorf("fragments_skipped = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.OutputBytes); got != 512 {
		t.Errorf("output_bytes = %v, want 512", got)
	}
	if got := testutil.ToFloat64(r.LastSuccessTime); got == 0 {
		t.Error("last_success_timestamp_seconds not set")
	}
}

func TestObserveRun_Error(t *testing.T) {
	r := NewRegistry()

	r.ObserveRun(nil, errors.New("boom"))

	if got := testutil.ToFloat64(r.RunsTotal.WithLabelValues(ResultError)); got != 1 {
		t.Errorf("runs_total{result=error} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.LastSuccessTime); got != 0 {
		t.Errorf("last_success_timestamp_seconds = %v, want 0", got)
	}
}

func TestObserveTrigger(t *testing.T) {
	r := NewRegistry()

	r.ObserveTrigger(TriggerInitial)
	r.ObserveTrigger(TriggerSSID)
	r.ObserveTrigger(TriggerSSID)

	if got := testutil.ToFloat64(r.TriggersTotal.WithLabelValues(TriggerSSID)); got != 2 {
		t.Errorf("triggers_total{trigger=ssid} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.TriggersTotal.WithLabelValues(TriggerInitial)); got != 1 {
		t.Errorf("triggers_total{trigger=initial} = %v, want 1", got)
	}
}

func TestHandler_ServesMetrics(t *testing.T) {
	r := NewRegistry()
	r.ObserveTrigger(TriggerFragments)

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	if err != nil {
		t.Fatalf("GET /metrics error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}
