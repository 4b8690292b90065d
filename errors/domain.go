package errors

import (
	"errors"
	"fmt"
)

// InvariantError is a field-level domain rule violation. Base, when set, is
// the sentinel callers match with errors.Is.
type InvariantError struct {
	Base   error
	Field  string
	Reason string
}

func (e InvariantError) Error() string {
	msg := e.Reason
	if e.Base != nil {
		msg = e.Base.Error()
	}
	if e.Field == "" {
		return msg
	}
	return fmt.Sprintf("%s: %s", e.Field, msg)
}

func (e InvariantError) Unwrap() error {
	return e.Base
}

// DomainInvariant builds a violation such as "number: invalid_number".
func DomainInvariant(field, reason string) error {
	return InvariantError{Field: field, Reason: reason}
}

// DomainInvariantOf is DomainInvariant that also unwraps to base.
func DomainInvariantOf(base error, field, reason string) error {
	return InvariantError{Base: base, Field: field, Reason: reason}
}

func IsInvariant(err error) bool {
	var ie InvariantError
	return errors.As(err, &ie)
}
