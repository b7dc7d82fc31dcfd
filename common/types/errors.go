package types

import (
	"errors"
	"fmt"
)

// ProbeFailure classifies why a presence probe failed.
type ProbeFailure uint8

const (
	// ProbeOther is any failure that carries no refinement.
	ProbeOther ProbeFailure = iota
	// ProbeUninitialized is reported by the credential store when no wallet was ever stored.
	ProbeUninitialized
	// ProbePresenceCheck is reported by the database files probe when presence couldn't be determined.
	ProbePresenceCheck
)

func (f ProbeFailure) String() string {
	switch f {
	case ProbeUninitialized:
		return "uninitialized"
	case ProbePresenceCheck:
		return "presence check"
	default:
		return "other"
	}
}

// ProbeError is returned by credential and database presence probes.
type ProbeError struct {
	Kind ProbeFailure
	Err  error
}

func (e *ProbeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("probe failed: %s", e.Kind)
	}
	return fmt.Sprintf("probe failed (%s): %v", e.Kind, e.Err)
}

func (e *ProbeError) Unwrap() error { return e.Err }

// ProbeKind extracts the refinement of a probe failure. Errors that are not
// ProbeError are classified as ProbeOther.
func ProbeKind(err error) ProbeFailure {
	var perr *ProbeError
	if errors.As(err, &perr) {
		return perr.Kind
	}
	return ProbeOther
}

// BootstrapError wraps any failure while assembling engine configuration or starting the engine.
type BootstrapError struct {
	Step string
	Err  error
}

func (e *BootstrapError) Error() string {
	return fmt.Sprintf("bootstrap %s: %v", e.Step, e.Err)
}

func (e *BootstrapError) Unwrap() error { return e.Err }

// ValidationError is returned when a seed phrase fails validation.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid seed phrase: %v", e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// GateError is returned when backup metadata can't be turned into a backup flow.
type GateError struct {
	Err error
}

func (e *GateError) Error() string {
	return fmt.Sprintf("backup gate: %v", e.Err)
}

func (e *GateError) Unwrap() error { return e.Err }
