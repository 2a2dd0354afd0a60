package janitor

import (
	"errors"
	"fmt"
)

// ErrEmptyGroundTruth is returned when the instance listing succeeded but
// contained no instances and empty ground truth was not explicitly allowed.
var ErrEmptyGroundTruth = errors.New("instance listing returned no instances")

// GroundTruthError means the live instance set could not be established.
// A pass that hits it performs no deletions at all.
type GroundTruthError struct {
	Err error
}

func (e *GroundTruthError) Error() string {
	return fmt.Sprintf("ground truth: %v", e.Err)
}

func (e *GroundTruthError) Unwrap() error { return e.Err }

// ScanError means listing one resource kind failed part way.
type ScanError struct {
	Kind Kind
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scan %s: %v", e.Kind, e.Err)
}

func (e *ScanError) Unwrap() error { return e.Err }

// DeleteError records a failed delete of a single resource.
type DeleteError struct {
	Kind Kind
	Name string
	Err  error
}

func (e *DeleteError) Error() string {
	return fmt.Sprintf("delete %s %q: %v", e.Kind, e.Name, e.Err)
}

func (e *DeleteError) Unwrap() error { return e.Err }

// BatchSubmitError means a DNS change batch was rejected. None of its
// changes took effect.
type BatchSubmitError struct {
	ZoneID  string
	Changes int
	Err     error
}

func (e *BatchSubmitError) Error() string {
	return fmt.Sprintf("submit change batch of %d records to zone %s: %v", e.Changes, e.ZoneID, e.Err)
}

func (e *BatchSubmitError) Unwrap() error { return e.Err }

// PassError accumulates every failure of a pass.
type PassError struct {
	Errors []error
}

func (e *PassError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("janitor pass encountered %d errors: %v", len(e.Errors), e.Errors)
}

// Unwrap exposes every accumulated error to errors.Is and errors.As.
func (e *PassError) Unwrap() []error {
	return e.Errors
}

// Add appends err unless it is nil.
func (e *PassError) Add(err error) {
	if err != nil {
		e.Errors = append(e.Errors, err)
	}
}

func (e *PassError) HasErrors() bool {
	return len(e.Errors) > 0
}
