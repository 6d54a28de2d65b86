// Package service provides the domain services for sshblend.
package service

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/sshblend/sshblend/internal/core/domain"
)

// Banner is the comment opening every composed document. It carries
// no timestamp so identical runs produce identical bytes.
const Banner = "# Generated by sshblend. Do not edit; changes are overwritten."

// lineEnding follows the platform convention for generated files.
var lineEnding = func() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}()

// Item pairs a fragment with its evaluation for composition.
type Item struct {
	Fragment   *domain.Fragment
	Evaluation domain.Evaluation
}

// Compose renders the final client configuration. Two passes over the
// items preserve fragment order within each pass: first every global
// section, then every chosen local-or-remote section. Each emitted
// section is preceded by a header comment naming its source fragment;
// sections without non-blank payload are suppressed entirely.
//
// Compose is content-agnostic: payload lines pass through verbatim,
// including duplicate Host entries.
func Compose(items []Item) []byte {
	var b strings.Builder
	b.WriteString(Banner)
	b.WriteString(lineEnding)

	// 1. All global sections, fragment order.
	for _, it := range items {
		writeSection(&b, sectionHeader(it.Fragment.Name, "global", ""), it.Fragment.Global)
	}

	// 2. The selected section per fragment, fragment order.
	for _, it := range items {
		summary := it.Evaluation.Summary(it.Fragment.Conditions)
		if it.Evaluation.UseLocal {
			writeSection(&b, sectionHeader(it.Fragment.Name, "local", summary), it.Fragment.Local)
		} else {
			writeSection(&b, sectionHeader(it.Fragment.Name, "remote", summary), it.Fragment.Remote)
		}
	}

	return []byte(b.String())
}

// sectionHeader formats the per-section source comment.
func sectionHeader(name, section, summary string) string {
	if summary == "" {
		return fmt.Sprintf("# sshblend: %s (%s)", name, section)
	}
	return fmt.Sprintf("# sshblend: %s (%s; %s)", name, section, summary)
}

// writeSection emits one header-prefixed section. Edge blank lines
// are trimmed, interior ones preserved; an all-blank section is
// skipped together with its header.
func writeSection(b *strings.Builder, header string, lines []string) {
	lines = trimBlankEdges(lines)
	if len(lines) == 0 {
		return
	}

	b.WriteString(lineEnding)
	b.WriteString(header)
	b.WriteString(lineEnding)
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString(lineEnding)
	}
}

// trimBlankEdges drops leading and trailing blank lines.
func trimBlankEdges(lines []string) []string {
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	end := len(lines)
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[start:end]
}
