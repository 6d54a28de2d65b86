// Package storage persists composed configuration documents.
//
// The Writer replaces the output file atomically: the document is
// written to a temporary file in the destination directory and renamed
// into place, so a failed or interrupted write never leaves a partial
// config behind. Optional timestamped backups of the previous output
// are retained with an oldest-first pruning policy.
package storage
