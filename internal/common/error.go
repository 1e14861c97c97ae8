// Package common defines shared sentinel errors and small helpers used
// across the Ponte Acadêmica components. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound    = errors.New("not found")
	ErrorDuplicateID = errors.New("duplicate id")

	// Authentication errors.
	ErrorWrongPassword = errors.New("wrong password")

	// Assignment errors (claim conflicts).
	ErrorAlreadyAssigned = errors.New("already assigned")

	// Validation errors (empty required text, non-positive ids).
	ErrorValidation = errors.New("validation error")
)
