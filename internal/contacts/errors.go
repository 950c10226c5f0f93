package contacts

import (
	"errors"
	"fmt"
)

// ErrNoContacts is returned when every parsing strategy ran to completion but
// produced zero valid records. It is the one extraction failure that must
// reach the user, and it always names the manual-entry alternative.
var ErrNoContacts = errors.New("no valid contacts found in the file; check that it contains name, email and company columns, or add contacts manually")

// ParseError represents a failure of one parsing strategy. The pipeline
// selector records these per strategy and keeps trying the next one.
type ParseError struct {
	Strategy string
	Message  string
	Cause    error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s parse failed: %s: %v", e.Strategy, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s parse failed: %s", e.Strategy, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
