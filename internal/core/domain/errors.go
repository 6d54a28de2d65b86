// Package domain defines the core domain models for sshblend.
package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a domain error with a structured error code.
// Codes follow the format SB-<AREA>-<NNNN>, where the 4xxx range marks
// validation failures and the 5xxx range marks system failures.
type DomainError struct {
	Code    string // Error code (e.g., "SB-FRAG-5000")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support for error comparison.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// Wrap wraps an error with this domain error as the cause.
func (e *DomainError) Wrap(cause error) *DomainError {
	return e.WithCause(cause)
}

// IsDomainError checks if an error is a DomainError with the given code.
// If code is empty, it only checks if the error is a DomainError.
func IsDomainError(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		if code == "" {
			return true // Only check if it's a DomainError
		}
		return de.Code == code
	}
	return false
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// ============================================================================
// Fragment Errors (FRAG)
// ============================================================================

var (
	// ErrFragmentRead indicates a fragment file could not be read.
	// Per-fragment and non-fatal: the fragment is skipped and reported.
	ErrFragmentRead = NewDomainError("SB-FRAG-5000", "fragment read failed")

	// ErrFragmentDir indicates the fragment directory is missing or
	// cannot be listed. Fatal for the run.
	ErrFragmentDir = NewDomainError("SB-FRAG-5001", "fragment directory unavailable")

	// ErrFragmentEmpty indicates a fragment file contained no text.
	// The fragment is skipped and reported, never composed.
	ErrFragmentEmpty = NewDomainError("SB-FRAG-4000", "empty fragment file")
)

// ============================================================================
// Probe Errors (PROBE)
// ============================================================================

var (
	// ErrProbe indicates a network probe invocation failed. The
	// evaluator downgrades this to "condition not matched".
	ErrProbe = NewDomainError("SB-PROBE-5000", "network probe failed")

	// ErrProbeUnsupported indicates no probe utility is known for the
	// current platform.
	ErrProbeUnsupported = NewDomainError("SB-PROBE-5001", "probe not supported on this platform")
)

// ============================================================================
// Output Errors (OUT)
// ============================================================================

var (
	// ErrOutputWrite indicates the composed config could not be written.
	ErrOutputWrite = NewDomainError("SB-OUT-5000", "output write failed")

	// ErrOutputBackup indicates the previous config could not be backed
	// up before being replaced.
	ErrOutputBackup = NewDomainError("SB-OUT-5001", "output backup failed")
)

// ============================================================================
// Configuration Errors (CONF)
// ============================================================================

var (
	// ErrConfigInvalid indicates the tool configuration failed validation.
	ErrConfigInvalid = NewDomainError("SB-CONF-4000", "invalid configuration")
)

// ============================================================================
// System Errors (SYS)
// ============================================================================

var (
	// ErrInternal indicates an unexpected internal failure.
	ErrInternal = NewDomainError("SB-SYS-5000", "internal error")
)

// ============================================================================
// Argument Errors (ARG)
// ============================================================================

var (
	// ErrInvalidArgument indicates an invalid command line argument.
	ErrInvalidArgument = NewDomainError("SB-ARG-1001", "invalid argument")

	// ErrMissingArgument indicates a required argument is missing.
	ErrMissingArgument = NewDomainError("SB-ARG-1002", "missing required argument")
)
