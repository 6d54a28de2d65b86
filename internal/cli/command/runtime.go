package command

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/sshblend/sshblend/internal/config"
	"github.com/sshblend/sshblend/internal/core/domain"
	"github.com/sshblend/sshblend/internal/core/service"
	"github.com/sshblend/sshblend/internal/infra/confloader"
	"github.com/sshblend/sshblend/internal/netprobe"
	"github.com/sshblend/sshblend/internal/storage"
	"github.com/sshblend/sshblend/internal/telemetry/logger"
)

// runtime bundles the collaborators a command needs to run the
// generation pipeline.
type runtime struct {
	cfg   *config.Config
	log   logger.Logger
	probe netprobe.Probe
	sink  service.OutputSink
}

// buildRuntime loads the configuration and assembles the pipeline
// collaborators. Fakes installed in the app metadata take the place
// of the system probe and the file writer.
func buildRuntime(c *cli.Context) (*runtime, error) {
	flags := ParseGlobalFlags(c)

	cfg, err := loadConfig(c, flags)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	if err != nil {
		return nil, err
	}
	logger.SetDefault(log)

	rt := &runtime{cfg: cfg, log: log}

	if probe, ok := c.App.Metadata[metaProbe].(netprobe.Probe); ok {
		rt.probe = probe
	} else {
		rt.probe = netprobe.NewSystem(netprobe.Config{
			PingTimeout:    cfg.Probe.PingTimeout,
			CommandTimeout: cfg.Probe.CommandTimeout,
			WifiInterface:  cfg.Probe.WifiInterface,
		})
	}

	if sink, ok := c.App.Metadata[metaSink].(service.OutputSink); ok {
		rt.sink = sink
	} else {
		writer, err := storage.NewWriter(storage.Config{
			Path:          cfg.Output.Path,
			BackupKeep:    cfg.Output.BackupKeep,
			SkipUnchanged: cfg.Output.SkipUnchanged,
		}, log)
		if err != nil {
			return nil, err
		}
		rt.sink = writer
	}

	return rt, nil
}

// generator assembles a pipeline around a fresh probe cache, so each
// run sees one consistent snapshot of the network environment.
func (rt *runtime) generator() *service.Generator {
	eval := service.NewEvaluator(netprobe.NewCached(rt.probe), rt.log)
	return service.NewGenerator(service.GeneratorConfig{
		FragmentsDir: rt.cfg.Fragments.Dir,
		Extension:    rt.cfg.Fragments.Extension,
		Concurrency:  rt.cfg.Probe.Concurrency,
	}, eval, rt.sink, rt.log)
}

// loadConfig merges defaults, the configuration file, environment
// variables, and command line flags, in rising priority.
func loadConfig(c *cli.Context, flags *GlobalFlags) (*config.Config, error) {
	cfg := config.Default()

	var opts []confloader.Option
	if flags.ConfigFile != "" {
		// An explicitly named file must exist.
		opts = append(opts, confloader.WithConfigFile(flags.ConfigFile))
	} else if path := config.ConfigFilePath(""); path != "" {
		if _, err := os.Stat(path); err == nil {
			opts = append(opts, confloader.WithConfigFile(path))
		}
	}

	loader := confloader.NewLoader(opts...)
	if err := loader.Load(cfg); err != nil {
		return nil, domain.ErrConfigInvalid.WithCause(err)
	}

	if overrides := flagOverrides(c, flags); len(overrides) > 0 {
		if err := loader.LoadMap(overrides); err != nil {
			return nil, domain.ErrConfigInvalid.WithCause(err)
		}
		if err := loader.Unmarshal(cfg); err != nil {
			return nil, domain.ErrConfigInvalid.WithCause(err)
		}
	}

	if flags.Verbose {
		cfg.Log.Level = "debug"
	}

	if err := config.Verify(cfg); err != nil {
		return nil, err
	}
	if err := config.ExpandPaths(cfg); err != nil {
		return nil, domain.ErrConfigInvalid.WithDetails(err.Error())
	}
	return cfg, nil
}

// flagOverrides maps set command line flags onto configuration keys.
func flagOverrides(c *cli.Context, flags *GlobalFlags) map[string]any {
	overrides := make(map[string]any)
	if c.IsSet("fragments-dir") {
		overrides["fragments.dir"] = flags.FragmentsDir
	}
	if c.IsSet("output") {
		overrides["output.path"] = flags.Output
	}
	return overrides
}
