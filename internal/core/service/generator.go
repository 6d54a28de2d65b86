// Package service provides the domain services for sshblend.
package service

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/sshblend/sshblend/internal/core/domain"
	"github.com/sshblend/sshblend/internal/telemetry/logger"
)

// DefaultConcurrency bounds parallel fragment evaluation when the
// configuration does not.
const DefaultConcurrency = 4

// OutputSink persists composed configuration documents.
type OutputSink interface {
	// Write replaces the output file with doc and reports what
	// happened. Implementations decide whether an unchanged
	// document is rewritten.
	Write(ctx context.Context, doc []byte) (domain.WriteResult, error)
}

// GeneratorConfig holds the generator's runtime parameters.
type GeneratorConfig struct {
	// FragmentsDir is the directory scanned for fragment files.
	FragmentsDir string

	// Extension filters fragment files; defaults to ".sshconf".
	Extension string

	// Concurrency bounds parallel fragment evaluation.
	Concurrency int
}

// Generator runs the full generation pipeline: discover fragment
// files, evaluate their conditions, compose the output document, and
// hand it to the sink. Per-fragment failures are contained in the
// RunReport and never abort a run.
type Generator struct {
	cfg  GeneratorConfig
	eval *Evaluator
	sink OutputSink
	log  logger.Logger
}

// NewGenerator creates a new Generator. A nil log falls back to the
// package default logger.
func NewGenerator(cfg GeneratorConfig, eval *Evaluator, sink OutputSink, log logger.Logger) *Generator {
	if cfg.Extension == "" {
		cfg.Extension = domain.FragmentExt
	}
	if !strings.HasPrefix(cfg.Extension, ".") {
		cfg.Extension = "." + cfg.Extension
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DefaultConcurrency
	}
	if log == nil {
		log = logger.Default()
	}
	return &Generator{cfg: cfg, eval: eval, sink: sink, log: log}
}

// Run executes one generation run and persists the composed document.
func (g *Generator) Run(ctx context.Context) (*domain.RunReport, error) {
	report, doc, err := g.Plan(ctx)
	if err != nil {
		return nil, err
	}

	res, err := g.sink.Write(ctx, doc)
	if err != nil {
		return nil, err
	}

	report.OutputPath = res.Path
	report.Bytes = res.Bytes
	report.Checksum = res.Checksum
	report.Written = res.Written
	report.Unchanged = res.Unchanged
	report.Finish()

	g.log.Info("run complete",
		"run_id", report.ID,
		"fragments", len(report.Fragments),
		"composed", report.Composed(),
		"skipped", report.SkippedCount(),
		"bytes", report.Bytes,
		"written", report.Written,
		"duration", report.Duration,
	)
	return report, nil
}

// Plan runs discovery, evaluation, and composition without touching
// the output file. Used for dry runs; Run builds on it.
func (g *Generator) Plan(ctx context.Context) (*domain.RunReport, []byte, error) {
	report, err := domain.NewRunReport()
	if err != nil {
		return nil, nil, err
	}
	log := g.log.With("run_id", report.ID)

	// 1. Discover fragment files, lexicographic order.
	files, err := g.listFragments()
	if err != nil {
		return nil, nil, err
	}

	// 2. Read and parse. Read failures and empty files are recorded
	// and skipped; the run continues.
	type pending struct {
		frag *domain.Fragment
		idx  int // index into report.Fragments
	}
	var parsed []pending
	for _, name := range files {
		text, err := os.ReadFile(filepath.Join(g.cfg.FragmentsDir, name))
		if err != nil {
			log.Info("skipping unreadable fragment", "file", name, "error", err)
			report.Fragments = append(report.Fragments, domain.FragmentReport{
				Name:    name,
				Skipped: true,
				Reason:  domain.ErrFragmentRead.WithDetails(err.Error()).Error(),
			})
			continue
		}
		if len(bytes.TrimSpace(text)) == 0 {
			log.Info("skipping empty fragment", "file", name)
			report.Fragments = append(report.Fragments, domain.FragmentReport{
				Name:    name,
				Skipped: true,
				Reason:  domain.ErrFragmentEmpty.Error(),
			})
			continue
		}

		report.Fragments = append(report.Fragments, domain.FragmentReport{Name: name})
		parsed = append(parsed, pending{
			frag: domain.ParseFragment(name, string(text)),
			idx:  len(report.Fragments) - 1,
		})
	}

	// 3. Evaluate concurrently. Results land by index, so output
	// order never depends on completion order.
	evals := make([]domain.Evaluation, len(parsed))
	eg, ectx := errgroup.WithContext(ctx)
	eg.SetLimit(g.cfg.Concurrency)
	for i, p := range parsed {
		eg.Go(func() error {
			evals[i] = g.eval.Evaluate(ectx, p.frag.Conditions)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	// 4. Compose in discovery order.
	items := make([]Item, 0, len(parsed))
	for i, p := range parsed {
		report.Fragments[p.idx].UseLocal = evals[i].UseLocal
		report.Fragments[p.idx].Matched = evals[i].Matched
		items = append(items, Item{Fragment: p.frag, Evaluation: evals[i]})

		log.Debug("fragment evaluated",
			"file", p.frag.Name,
			"section", report.Fragments[p.idx].Section(),
			"reason", evals[i].Summary(p.frag.Conditions),
		)
	}

	doc := Compose(items)
	report.Bytes = len(doc)
	report.Finish()
	return report, doc, nil
}

// listFragments returns the base names of fragment files in the
// fragment directory, sorted lexicographically.
func (g *Generator) listFragments() ([]string, error) {
	entries, err := os.ReadDir(g.cfg.FragmentsDir)
	if err != nil {
		return nil, domain.ErrFragmentDir.WithDetails(g.cfg.FragmentsDir).WithCause(err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.HasSuffix(entry.Name(), g.cfg.Extension) {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)
	return files, nil
}
