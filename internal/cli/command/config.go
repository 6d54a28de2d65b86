package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/sshblend/sshblend/internal/cli/output"
	"github.com/sshblend/sshblend/internal/config"
)

// ConfigCommand returns the config subcommand group.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Inspect the effective configuration",
		Subcommands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Print the merged configuration",
				Action: runConfigShow,
			},
			{
				Name:   "validate",
				Usage:  "Validate the merged configuration",
				Action: runConfigValidate,
			},
		},
	}
}

func runConfigShow(c *cli.Context) error {
	flags := ParseGlobalFlags(c)
	cfg, err := loadConfig(c, flags)
	if err != nil {
		return err
	}

	formatter := output.NewFormatter(output.Format(flags.Format), flags.Wide)
	return formatter.Format(c.App.Writer, configMap(cfg))
}

func runConfigValidate(c *cli.Context) error {
	flags := ParseGlobalFlags(c)
	if _, err := loadConfig(c, flags); err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, "configuration ok")
	return nil
}

// configMap flattens the configuration to dotted keys, the same shape
// the loader reads them in.
func configMap(cfg *config.Config) map[string]any {
	return map[string]any{
		"fragments.dir":         cfg.Fragments.Dir,
		"fragments.extension":   cfg.Fragments.Extension,
		"output.path":           cfg.Output.Path,
		"output.backup_keep":    cfg.Output.BackupKeep,
		"output.skip_unchanged": cfg.Output.SkipUnchanged,
		"probe.ping_timeout":    cfg.Probe.PingTimeout,
		"probe.command_timeout": cfg.Probe.CommandTimeout,
		"probe.concurrency":     cfg.Probe.Concurrency,
		"probe.wifi_interface":  cfg.Probe.WifiInterface,
		"watch.interval":        cfg.Watch.Interval,
		"watch.debounce":        cfg.Watch.Debounce,
		"watch.metrics_addr":    cfg.Watch.MetricsAddr,
		"log.level":             cfg.Log.Level,
		"log.format":            cfg.Log.Format,
	}
}
