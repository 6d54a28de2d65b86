// Package config defines the sshblend tool configuration.
package config

import (
	"errors"
	"strings"

	"github.com/sshblend/sshblend/internal/core/domain"
)

// Verify validates the merged configuration. The first violation is
// returned wrapped in the configuration error code.
func Verify(cfg *Config) error {
	checks := []func() error{
		func() error { return verifyFragments(&cfg.Fragments) },
		func() error { return verifyOutput(&cfg.Output) },
		func() error { return verifyProbe(&cfg.Probe) },
		func() error { return verifyWatch(&cfg.Watch) },
		func() error { return verifyLog(&cfg.Log) },
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return domain.ErrConfigInvalid.WithDetails(err.Error())
		}
	}
	return nil
}

func verifyFragments(cfg *FragmentsSection) error {
	if cfg.Dir == "" {
		return errors.New("fragments.dir is required")
	}
	if strings.TrimPrefix(cfg.Extension, ".") == "" {
		return errors.New("fragments.extension is required")
	}
	return nil
}

func verifyOutput(cfg *OutputSection) error {
	if cfg.Path == "" {
		return errors.New("output.path is required")
	}
	if cfg.BackupKeep < 0 {
		return errors.New("output.backup_keep must not be negative")
	}
	return nil
}

func verifyProbe(cfg *ProbeSection) error {
	if cfg.PingTimeout <= 0 {
		return errors.New("probe.ping_timeout must be positive")
	}
	if cfg.CommandTimeout <= 0 {
		return errors.New("probe.command_timeout must be positive")
	}
	if cfg.Concurrency < 1 {
		return errors.New("probe.concurrency must be at least 1")
	}
	return nil
}

func verifyWatch(cfg *WatchSection) error {
	if cfg.Interval <= 0 {
		return errors.New("watch.interval must be positive")
	}
	if cfg.Debounce < 0 {
		return errors.New("watch.debounce must not be negative")
	}
	return nil
}

func verifyLog(cfg *LogSection) error {
	switch cfg.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.New("log.level must be one of debug, info, warn, error")
	}
	switch cfg.Format {
	case "text", "json":
	default:
		return errors.New("log.format must be text or json")
	}
	return nil
}
