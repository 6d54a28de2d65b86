// Package config defines the sshblend tool configuration.
//
// The configuration is split into sections mirroring the pipeline:
// fragment discovery, output persistence, network probing, watch mode,
// and logging. Values load through internal/infra/confloader with the
// priority flag > environment > file > default; Verify validates the
// merged result before anything touches the filesystem or network.
package config
