// Package config defines the sshblend tool configuration.
package config

import "time"

// Default configuration values. Paths keep their ~ prefix until
// ExpandPath resolves them against the user's home directory.
const (
	DefaultFragmentsDir      = "~/.ssh/conf.d"
	DefaultFragmentExtension = "sshconf"

	DefaultOutputPath = "~/.ssh/config"
	DefaultBackupKeep = 0

	DefaultPingTimeout    = 1 * time.Second
	DefaultCommandTimeout = 2 * time.Second
	DefaultConcurrency    = 4
	DefaultWifiInterface  = "en0"

	DefaultWatchInterval = 20 * time.Second
	DefaultWatchDebounce = 2 * time.Second

	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"

	// DefaultConfigFile is the tool's own configuration file.
	DefaultConfigFile = "~/.config/sshblend/config.yaml"
)

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Fragments: FragmentsSection{
			Dir:       DefaultFragmentsDir,
			Extension: DefaultFragmentExtension,
		},
		Output: OutputSection{
			Path:       DefaultOutputPath,
			BackupKeep: DefaultBackupKeep,
		},
		Probe: ProbeSection{
			PingTimeout:    DefaultPingTimeout,
			CommandTimeout: DefaultCommandTimeout,
			Concurrency:    DefaultConcurrency,
			WifiInterface:  DefaultWifiInterface,
		},
		Watch: WatchSection{
			Interval: DefaultWatchInterval,
			Debounce: DefaultWatchDebounce,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
