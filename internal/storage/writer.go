package storage

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spaolacci/murmur3"

	"github.com/sshblend/sshblend/internal/core/domain"
	"github.com/sshblend/sshblend/internal/telemetry/logger"
)

// backupExtension marks retained copies of a replaced output file.
// Backups are named <output>.<timestamp>.orig next to the output.
const backupExtension = ".orig"

// backupTimeFormat is the timestamp embedded in backup filenames.
// Lexicographic order of backup names equals chronological order.
const backupTimeFormat = "20060102150405"

// outputFileMode is the permission for the written config. SSH clients
// expect their configuration to not be group or world accessible.
const outputFileMode = os.FileMode(0600)

// Config configures the output writer.
type Config struct {
	// Path is the output file the composed document replaces.
	Path string

	// BackupKeep is the number of timestamped copies of the previous
	// output to retain. Zero disables backups.
	BackupKeep int

	// SkipUnchanged suppresses the write when the document is
	// byte-identical to the current output file.
	SkipUnchanged bool
}

// Writer persists composed documents to the configured output path.
// Writes are atomic: the document lands in a temporary file in the
// output directory and is renamed over the previous config.
type Writer struct {
	cfg Config
	log logger.Logger
}

// NewWriter creates a Writer. A nil log falls back to the package
// default logger.
func NewWriter(cfg Config, log logger.Logger) (*Writer, error) {
	if cfg.Path == "" {
		return nil, domain.ErrOutputWrite.WithDetails("output path is required")
	}
	if log == nil {
		log = logger.Default()
	}
	return &Writer{cfg: cfg, log: log}, nil
}

// Write replaces the output file with doc. The previous output is
// backed up first when backups are enabled; an unchanged document is
// left in place when SkipUnchanged is set.
func (w *Writer) Write(ctx context.Context, doc []byte) (domain.WriteResult, error) {
	res := domain.WriteResult{
		Path:     w.cfg.Path,
		Bytes:    len(doc),
		Checksum: Fingerprint(doc),
	}

	if err := ctx.Err(); err != nil {
		return res, domain.ErrOutputWrite.WithDetails(w.cfg.Path).WithCause(err)
	}

	previous, err := os.ReadFile(w.cfg.Path)
	exists := err == nil
	if exists && bytes.Equal(previous, doc) {
		res.Unchanged = true
		if w.cfg.SkipUnchanged {
			w.log.Debug("output unchanged, write skipped",
				"path", w.cfg.Path,
				"checksum", res.Checksum,
			)
			return res, nil
		}
	}

	if exists && w.cfg.BackupKeep > 0 && !res.Unchanged {
		if err := w.backup(previous); err != nil {
			return res, err
		}
	}

	if err := w.replace(doc); err != nil {
		return res, err
	}
	res.Written = true

	w.log.Debug("output written",
		"path", w.cfg.Path,
		"bytes", res.Bytes,
		"checksum", res.Checksum,
	)
	return res, nil
}

// replace writes doc to a temporary file in the output directory and
// renames it over the output path.
func (w *Writer) replace(doc []byte) error {
	dir := filepath.Dir(w.cfg.Path)
	tmp, err := os.CreateTemp(dir, filepath.Base(w.cfg.Path)+".tmp-*")
	if err != nil {
		return domain.ErrOutputWrite.WithDetails(dir).WithCause(err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(doc); err != nil {
		tmp.Close()
		return domain.ErrOutputWrite.WithDetails(tmpPath).WithCause(err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return domain.ErrOutputWrite.WithDetails(tmpPath).WithCause(err)
	}
	if err := tmp.Close(); err != nil {
		return domain.ErrOutputWrite.WithDetails(tmpPath).WithCause(err)
	}
	if err := os.Chmod(tmpPath, outputFileMode); err != nil {
		return domain.ErrOutputWrite.WithDetails(tmpPath).WithCause(err)
	}
	if err := os.Rename(tmpPath, w.cfg.Path); err != nil {
		return domain.ErrOutputWrite.WithDetails(w.cfg.Path).WithCause(err)
	}
	return nil
}

// backup retains a timestamped copy of the previous output and prunes
// the oldest copies beyond the retention count. A backup failure
// aborts the write: the previous config must not be replaced without
// the promised copy.
func (w *Writer) backup(previous []byte) error {
	name := fmt.Sprintf("%s.%s%s", w.cfg.Path, time.Now().Format(backupTimeFormat), backupExtension)
	if err := os.WriteFile(name, previous, outputFileMode); err != nil {
		return domain.ErrOutputBackup.WithDetails(name).WithCause(err)
	}
	w.log.Debug("previous output backed up", "backup", name)

	backups, err := w.listBackups()
	if err != nil {
		return err
	}
	for len(backups) > w.cfg.BackupKeep {
		oldest := backups[0]
		backups = backups[1:]
		if err := os.Remove(oldest); err != nil {
			return domain.ErrOutputBackup.WithDetails(oldest).WithCause(err)
		}
		w.log.Debug("old backup pruned", "backup", oldest)
	}
	return nil
}

// listBackups returns this output's backup files, oldest first.
func (w *Writer) listBackups() ([]string, error) {
	dir := filepath.Dir(w.cfg.Path)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, domain.ErrOutputBackup.WithDetails(dir).WithCause(err)
	}

	prefix := filepath.Base(w.cfg.Path) + "."
	var backups []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, prefix) && strings.HasSuffix(name, backupExtension) {
			backups = append(backups, filepath.Join(dir, name))
		}
	}
	sort.Strings(backups)
	return backups, nil
}

// Fingerprint returns the hex fingerprint of a composed document,
// used for change detection and report checksums.
func Fingerprint(doc []byte) string {
	h1, h2 := murmur3.Sum128(doc)
	var sum [16]byte
	for i := 0; i < 8; i++ {
		sum[i] = byte(h1 >> (56 - 8*i))
		sum[8+i] = byte(h2 >> (56 - 8*i))
	}
	return hex.EncodeToString(sum[:])
}
