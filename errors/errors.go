// Package errors defines the failures the animal operations report to callers.
//
// An *Error carries a machine-readable Code next to its human-readable Message.
// Error() returns the message unchanged, so it is what a GraphQL client sees in
// the "message" field of the response; the code is exposed through Extensions.
package errors

import (
	"errors"
	"fmt"
)

// Code identifies a kind of failure.
type Code string

const (
	CodeInvalidAnimalKind Code = "INVALID_ANIMAL_KIND"
	CodeAnimalNotFound    Code = "ANIMAL_NOT_FOUND"
	CodeInvalidInput      Code = "INVALID_INPUT"
)

// Sentinels for errors.Is. They match any *Error with the same code.
var (
	ErrInvalidAnimalKind = &Error{Code: CodeInvalidAnimalKind}
	ErrAnimalNotFound    = &Error{Code: CodeAnimalNotFound}
	ErrInvalidInput      = &Error{Code: CodeInvalidInput}
)

type Error struct {
	Code    Code
	Message string
	Species string
	Err     error
}

// Errorf returns an *Error with a formatted message.
func Errorf(code Code, format string, a ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, a...),
	}
}

// InvalidAnimalKind reports an add request that names no variant.
func InvalidAnimalKind() *Error {
	return &Error{Code: CodeInvalidAnimalKind, Message: "Invalid animal type"}
}

// AnimalNotFound reports an update of a species that is not stored.
func AnimalNotFound(species string) *Error {
	return &Error{
		Code:    CodeAnimalNotFound,
		Message: fmt.Sprintf("Animal with species %s not found", species),
		Species: species,
	}
}

// InvalidInput wraps a validation failure.
func InvalidInput(species string, err error) *Error {
	return &Error{
		Code:    CodeInvalidInput,
		Message: fmt.Sprintf("Invalid input for species %q: %s", species, err),
		Species: species,
		Err:     err,
	}
}

func (err *Error) Error() string {
	if err == nil {
		return "<nil>"
	}
	if err.Message == "" {
		return string(err.Code)
	}
	return err.Message
}

func (err *Error) Unwrap() error {
	return err.Err
}

// Is reports whether target is an *Error with the same code.
func (err *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && err != nil && t.Code == err.Code
}

// Extensions provides additional error context according to the spec https://spec.graphql.org/October2021/#sel-GAPHRPZCAACCBx6b.
func (err *Error) Extensions() map[string]interface{} {
	ext := map[string]interface{}{
		"code": string(err.Code),
	}
	if err.Species != "" {
		ext["species"] = err.Species
	}
	return ext
}

// CodeOf returns the code of the first *Error in err's chain, or "" if there is
// none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

var _ error = &Error{}
