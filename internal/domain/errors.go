package domain

import "errors"

// Failure kinds reported by the mutator. Callers match them with errors.Is;
// the wrapped error carries the path and the underlying cause.
var (
	// ErrParse means the scheme is missing, unreadable, or not well-formed XML.
	ErrParse = errors.New("cannot load scheme")
	// ErrNotFound means no buildable reference names the requested blueprint.
	ErrNotFound = errors.New("no testable reference found")
	// ErrAmbiguous means several references matched under the unique policy.
	ErrAmbiguous = errors.New("more than one testable reference matched")
	// ErrWrite means the rewritten scheme could not be saved.
	ErrWrite = errors.New("cannot write scheme")
	// ErrInvalidArgs means the mutation was requested without a scheme or blueprint.
	ErrInvalidArgs = errors.New("invalid arguments")
)
