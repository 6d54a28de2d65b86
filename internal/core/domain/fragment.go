// Package domain defines the core domain models for sshblend.
package domain

import (
	"strings"
)

// Fragment file section markers. A marker only counts when it is the
// entire line after surrounding whitespace is trimmed; anywhere else
// the text is ordinary payload.
const (
	MarkerConditionsBegin = "# CONDITIONS BEGIN"
	MarkerConditionsEnd   = "# CONDITIONS END"
	MarkerGlobalBegin     = "# GLOBAL CONFIG BEGIN"
	MarkerGlobalEnd       = "# GLOBAL CONFIG END"
	MarkerLocalBegin      = "# LOCAL CONFIG BEGIN"
	MarkerLocalEnd        = "# LOCAL CONFIG END"
	MarkerRemoteBegin     = "# REMOTE CONFIG BEGIN"
	MarkerRemoteEnd       = "# REMOTE CONFIG END"
)

// FragmentExt is the extension fragment files must carry to be
// picked up from the fragment directory.
const FragmentExt = ".sshconf"

// Fragment is one parsed fragment file. All marker-delimited sections
// are optional; a missing section is an empty slice, never an error.
// Fragments are immutable after parsing.
type Fragment struct {
	// Name is the fragment's base filename, kept for report and
	// output header traceability.
	Name string `json:"name"`

	// Conditions holds the declared network-presence criteria.
	Conditions Conditions `json:"conditions"`

	// Global holds the verbatim payload lines of the GLOBAL CONFIG
	// section, markers excluded. Emitted on every run.
	Global []string `json:"global,omitempty"`

	// Local holds the LOCAL CONFIG section, emitted when the
	// conditions match the live network environment.
	Local []string `json:"local,omitempty"`

	// Remote holds the REMOTE CONFIG section, emitted when they
	// do not.
	Remote []string `json:"remote,omitempty"`
}

// block identifies which fragment section the parser is inside.
type block int

const (
	blockNone block = iota
	blockConditions
	blockGlobal
	blockLocal
	blockRemote
)

// ParseFragment parses fragment file text. Parsing is line-oriented
// and never fails: section markers switch the current block, payload
// lines accumulate into it, and everything outside a block is
// ignored. A BEGIN marker while a block is open implicitly closes the
// open block; an END marker that does not match the open block is
// discarded. Duplicate sections append to each other.
func ParseFragment(name, text string) *Fragment {
	frag := &Fragment{Name: name}

	current := blockNone
	for _, line := range splitLines(text) {
		if kind, begin, ok := markerOf(strings.TrimSpace(line)); ok {
			switch {
			case begin:
				current = kind
			case current == kind:
				current = blockNone
			}
			continue
		}

		switch current {
		case blockConditions:
			frag.Conditions.addLine(line)
		case blockGlobal:
			frag.Global = append(frag.Global, line)
		case blockLocal:
			frag.Local = append(frag.Local, line)
		case blockRemote:
			frag.Remote = append(frag.Remote, line)
		}
	}
	return frag
}

// HasConditions reports whether the fragment declares any criteria.
func (f *Fragment) HasConditions() bool {
	return !f.Conditions.Empty()
}

// markerOf reports whether a trimmed line is a section marker, and if
// so which section it opens or closes.
func markerOf(line string) (kind block, begin bool, ok bool) {
	switch line {
	case MarkerConditionsBegin:
		return blockConditions, true, true
	case MarkerConditionsEnd:
		return blockConditions, false, true
	case MarkerGlobalBegin:
		return blockGlobal, true, true
	case MarkerGlobalEnd:
		return blockGlobal, false, true
	case MarkerLocalBegin:
		return blockLocal, true, true
	case MarkerLocalEnd:
		return blockLocal, false, true
	case MarkerRemoteBegin:
		return blockRemote, true, true
	case MarkerRemoteEnd:
		return blockRemote, false, true
	}
	return blockNone, false, false
}

// splitLines splits text into lines, tolerating both LF and CRLF
// endings. A trailing newline does not produce a final empty line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
