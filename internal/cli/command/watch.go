package command

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"golang.org/x/time/rate"

	"github.com/sshblend/sshblend/internal/core/domain"
	"github.com/sshblend/sshblend/internal/infra/confloader"
	"github.com/sshblend/sshblend/internal/infra/shutdown"
	"github.com/sshblend/sshblend/internal/telemetry/metric"
)

// shutdownTimeout bounds the watch daemon's teardown.
const shutdownTimeout = 5 * time.Second

// WatchCommand returns the watch subcommand: generate once, then
// regenerate whenever the wireless network or a fragment file changes.
func WatchCommand() *cli.Command {
	return &cli.Command{
		Name:  "watch",
		Usage: "Keep the config regenerated as the network environment changes",
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:  "interval",
				Usage: "SSID polling interval",
			},
			&cli.StringFlag{
				Name:  "metrics-addr",
				Usage: "Prometheus listen address (empty disables the endpoint)",
			},
		},
		Action: runWatch,
	}
}

func runWatch(c *cli.Context) error {
	rt, err := buildRuntime(c)
	if err != nil {
		return err
	}
	if c.IsSet("interval") {
		rt.cfg.Watch.Interval = c.Duration("interval")
	}
	if c.IsSet("metrics-addr") {
		rt.cfg.Watch.MetricsAddr = c.String("metrics-addr")
	}
	// Watch mode defaults to leaving an identical config untouched,
	// so a flapping trigger does not churn the file.
	rt.cfg.Output.SkipUnchanged = true

	ctx, cancel := context.WithCancel(c.Context)
	defer cancel()

	registry := metric.NewRegistry()
	daemon := newDaemon(rt, registry)

	watcher, err := confloader.NewWatcher(confloader.WithWatcherLogger(rt.log))
	if err != nil {
		return err
	}
	ext := "." + strings.TrimPrefix(rt.cfg.Fragments.Extension, ".")
	watcher.OnChange(func(path string) {
		if strings.HasSuffix(path, ext) {
			daemon.trigger(metric.TriggerFragments)
		}
	})
	if err := watcher.WatchDir(rt.cfg.Fragments.Dir); err != nil {
		return domain.ErrFragmentDir.WithDetails(rt.cfg.Fragments.Dir).WithCause(err)
	}
	watcher.StartAsync()

	var metricsSrv *http.Server
	if addr := rt.cfg.Watch.MetricsAddr; addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", registry.Handler())
		metricsSrv = &http.Server{Addr: addr, Handler: mux}
		go func() {
			rt.log.Info("metrics endpoint listening", "addr", addr)
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				rt.log.Error("metrics endpoint failed", "error", err)
			}
		}()
	}

	go daemon.loop(ctx)

	handler := shutdown.NewHandler(shutdownTimeout)
	handler.OnShutdown(func(context.Context) error {
		cancel()
		return watcher.Stop()
	})
	if metricsSrv != nil {
		handler.OnShutdown(func(ctx context.Context) error {
			return metricsSrv.Shutdown(ctx)
		})
	}

	rt.log.Info("watch started",
		"fragments_dir", rt.cfg.Fragments.Dir,
		"output", rt.cfg.Output.Path,
		"interval", rt.cfg.Watch.Interval,
	)
	return handler.Wait()
}

// daemon drives watch-mode regeneration: an initial run, then one run
// per coalesced trigger, debounced so bursts of file events produce a
// single regeneration.
type daemon struct {
	rt       *runtime
	registry *metric.Registry
	limiter  *rate.Limiter
	triggers chan string

	lastSSID string
	primed   bool
}

func newDaemon(rt *runtime, registry *metric.Registry) *daemon {
	limiter := rate.NewLimiter(rate.Inf, 1)
	if d := rt.cfg.Watch.Debounce; d > 0 {
		limiter = rate.NewLimiter(rate.Every(d), 1)
	}
	return &daemon{
		rt:       rt,
		registry: registry,
		limiter:  limiter,
		triggers: make(chan string, 8),
	}
}

// trigger enqueues a regeneration cause. A full queue drops the
// trigger: a regeneration is already pending and will cover it.
func (d *daemon) trigger(cause string) {
	select {
	case d.triggers <- cause:
	default:
	}
}

func (d *daemon) loop(ctx context.Context) {
	d.regenerate(ctx, metric.TriggerInitial)
	d.ssidChanged(ctx) // prime the baseline for change detection

	ticker := time.NewTicker(d.rt.cfg.Watch.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case cause := <-d.triggers:
			if err := d.limiter.Wait(ctx); err != nil {
				return
			}
			d.drain()
			d.regenerate(ctx, cause)
		case <-ticker.C:
			if d.ssidChanged(ctx) {
				d.trigger(metric.TriggerSSID)
			}
		}
	}
}

// drain discards triggers that piled up while waiting out the
// debounce; the upcoming run covers them all.
func (d *daemon) drain() {
	for {
		select {
		case <-d.triggers:
		default:
			return
		}
	}
}

// ssidChanged polls the current SSID and reports whether it differs
// from the last observation. The first observation only sets the
// baseline; a failed poll never counts as a change.
func (d *daemon) ssidChanged(ctx context.Context) bool {
	ssid, err := d.rt.probe.CurrentSSID(ctx)
	if err != nil {
		d.rt.log.Debug("ssid poll failed", "error", err)
		return false
	}
	if !d.primed {
		d.primed = true
		d.lastSSID = ssid
		return false
	}
	if ssid == d.lastSSID {
		return false
	}
	d.rt.log.Info("wireless network changed", "from", d.lastSSID, "to", ssid)
	d.lastSSID = ssid
	return true
}

func (d *daemon) regenerate(ctx context.Context, cause string) {
	d.registry.ObserveTrigger(cause)

	report, err := d.rt.generator().Run(ctx)
	d.registry.ObserveRun(report, err)
	if err != nil {
		d.rt.log.Error("generation failed", "trigger", cause, "error", err)
		return
	}
	d.rt.log.Info("config regenerated",
		"trigger", cause,
		"run_id", report.ID,
		"written", report.Written,
		"unchanged", report.Unchanged,
	)
}
