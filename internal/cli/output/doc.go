// Package output renders command results for the terminal.
//
// Two formats are supported: a tab-aligned table for humans and
// indented JSON for scripting. Run reports get a purpose-built table
// layout; other values (configuration maps, single structs) go through
// a small reflection-based fallback.
package output
