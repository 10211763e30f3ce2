package roster

import "errors"

var (
	// ErrMissingRequiredField is returned by Builder.Build when a required
	// field is blank after trimming.
	ErrMissingRequiredField = errors.New("roster: required field cannot be empty")

	// ErrMissingRegistrationKey is returned when a join link is requested
	// for a record that has no registration key yet.
	ErrMissingRegistrationKey = errors.New("roster: record has no registration key")

	// ErrNotFound is returned by repository lookups that match no row.
	ErrNotFound = errors.New("roster: student not found")
)
