// Package taxerror defines the typed errors the engine reports at its boundaries.
// Calculators never return these; they are raised by validation, reference-data
// loading, and strict permission checks.
package taxerror

import (
	"errors"
	"fmt"
)

// ErrNegativeAmount is matched by every InvalidAmountError through errors.Is.
var ErrNegativeAmount = errors.New("amount must not be negative")

// InvalidAmountError reports a monetary input rejected at the boundary.
type InvalidAmountError struct {
	Field string
	Value string
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount for %s='%s': %v", e.Field, e.Value, ErrNegativeAmount)
}

func (e *InvalidAmountError) Unwrap() error {
	return ErrNegativeAmount
}

// UnknownNameError reports a role, section, action or capability name that is
// not part of its taxonomy. Only strict permission checks return it.
type UnknownNameError struct {
	Kind string
	Name string
}

func (e *UnknownNameError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Name)
}

// RulesError reports a tax rules table that cannot be used.
type RulesError struct {
	Reason string
}

func (e *RulesError) Error() string {
	return fmt.Sprintf("invalid tax rules: %s", e.Reason)
}

// ReferenceDataError reports a reference data file that could not be loaded.
type ReferenceDataError struct {
	FilePath string
	Err      error
}

func (e *ReferenceDataError) Error() string {
	return fmt.Sprintf("reference data %s: %v", e.FilePath, e.Err)
}

func (e *ReferenceDataError) Unwrap() error {
	return e.Err
}
