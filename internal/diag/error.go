package diag

import (
	"errors"
	"fmt"
)

// Error is a coded error value. Processors raise it without a pointer; the
// tokenizer attaches the rendered pointer before returning to the caller.
type Error struct {
	Code    Code
	Message string
	Pointer string
}

func (e *Error) Error() string {
	if e.Pointer != "" {
		return e.Message + "\n" + e.Pointer
	}
	return e.Message
}

// Errorf constructs a coded error with a formatted message.
func Errorf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the diagnostic code from err, or UnknownCode if err does
// not carry one.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return UnknownCode
}

// Describe converts err into a Diagnostic with SevError severity.
func Describe(err error) Diagnostic {
	var e *Error
	if errors.As(err, &e) {
		return Diagnostic{Severity: SevError, Code: e.Code, Message: e.Message, Pointer: e.Pointer}
	}
	return Diagnostic{Severity: SevError, Code: UnknownCode, Message: err.Error()}
}
