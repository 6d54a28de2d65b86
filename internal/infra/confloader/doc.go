// Package confloader provides configuration loading mechanism.
//
// This package implements a flexible configuration loader that supports
// multiple sources and formats using koanf as the underlying library.
//
// Features:
//
//   - Multiple Sources: Files, environment variables, flags, maps
//   - Multiple Formats: YAML via the file provider
//   - Watch Support: Automatic reload on config file changes
//   - Type Safety: Unmarshaling into typed structs
//
// Priority (highest to lowest):
//
//  1. Command-line flags (loaded via LoadMap after Load)
//  2. Environment variables
//  3. Configuration files
//  4. Default values (the pre-populated target struct)
//
// The package also provides Watcher, an fsnotify wrapper used both for
// reloading the tool configuration and for triggering regeneration
// when fragment files change.
package confloader
