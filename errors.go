package cliparser

import "errors"

// Errors reported by the declaration and access surfaces. They are always
// wrapped together with the parameter name and recognized with errors.Is.
// Parse itself reports nothing through errors: parse-time problems are
// Warnings.
var (
	// ErrDuplicateName rejects a declaration reusing a registered name.
	ErrDuplicateName = errors.New("already defined")

	// ErrInvalidArity rejects an Argument declared with nargs < 1.
	ErrInvalidArity = errors.New("nargs must be at least 1")

	// ErrUnknownParameter rejects access to a name that was never declared.
	ErrUnknownParameter = errors.New("not defined")

	// ErrNotYetParsed rejects access before the first call to Parse.
	ErrNotYetParsed = errors.New("not parsed yet")

	// ErrMissingValue rejects access to an Argument the parsed command
	// line did not supply.
	ErrMissingValue = errors.New("missing from the command line")
)
