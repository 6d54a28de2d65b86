// Package config defines the sshblend tool configuration.
package config

import "time"

// Config is the root configuration for sshblend.
type Config struct {
	Fragments FragmentsSection `koanf:"fragments"`
	Output    OutputSection    `koanf:"output"`
	Probe     ProbeSection     `koanf:"probe"`
	Watch     WatchSection     `koanf:"watch"`
	Log       LogSection       `koanf:"log"`
}

// FragmentsSection configures fragment file discovery.
type FragmentsSection struct {
	// Dir is the directory scanned for fragment files. Files are
	// processed in lexicographic filename order.
	Dir string `koanf:"dir"`

	// Extension selects fragment files within Dir, without the
	// leading dot.
	Extension string `koanf:"extension"`
}

// OutputSection configures the composed configuration destination.
type OutputSection struct {
	// Path is the SSH client configuration file to write.
	Path string `koanf:"path"`

	// BackupKeep is the number of timestamped copies of the previous
	// output to retain. Zero disables backups.
	BackupKeep int `koanf:"backup_keep"`

	// SkipUnchanged suppresses the write when the composed document
	// is byte-identical to the current output file.
	SkipUnchanged bool `koanf:"skip_unchanged"`
}

// ProbeSection bounds network probing.
type ProbeSection struct {
	// PingTimeout bounds one echo request round trip.
	PingTimeout time.Duration `koanf:"ping_timeout"`

	// CommandTimeout bounds any other probe utility invocation.
	CommandTimeout time.Duration `koanf:"command_timeout"`

	// Concurrency bounds parallel fragment evaluation.
	Concurrency int `koanf:"concurrency"`

	// WifiInterface is the wireless interface queried on platforms
	// whose utilities require one.
	WifiInterface string `koanf:"wifi_interface"`
}

// WatchSection configures the regeneration daemon.
type WatchSection struct {
	// Interval is the SSID polling period.
	Interval time.Duration `koanf:"interval"`

	// Debounce is the minimum spacing between regenerations when
	// triggers arrive in bursts.
	Debounce time.Duration `koanf:"debounce"`

	// MetricsAddr is the optional Prometheus listen address. Empty
	// disables the endpoint.
	MetricsAddr string `koanf:"metrics_addr"`
}

// LogSection configures logging.
type LogSection struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `koanf:"level"`

	// Format is the output format (text, json).
	Format string `koanf:"format"`
}
