// Package apperr defines the coded error taxonomy used across the
// registry: configuration, connectivity, validation, IO and chain RPC
// failures. The top-level driver switches on the code to pick a message.
package apperr

import (
	"errors"
	"fmt"
)

// Code classifies a failure.
type Code string

const (
	CodeConfiguration Code = "CONFIGURATION_ERROR"
	CodeConnectivity  Code = "CONNECTIVITY_ERROR"
	CodeValidation    Code = "VALIDATION_ERROR"
	CodeIO            Code = "IO_ERROR"
	CodeChainRPC      Code = "CHAIN_RPC_ERROR"
)

// AppError carries a code, the operation that failed and the cause.
type AppError struct {
	Code Code
	Op   string
	Err  error
}

func (e *AppError) Error() string {
	return fmt.Sprintf("[%s] %s: %v", e.Code, e.Op, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Wrap attaches a code and operation to err. Returns nil if err is nil.
func Wrap(code Code, op string, err error) error {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Op: op, Err: err}
}

// New builds a coded error from a message.
func New(code Code, op string, format string, args ...any) error {
	return &AppError{Code: code, Op: op, Err: fmt.Errorf(format, args...)}
}

// CodeOf returns the code of the outermost AppError in err's chain,
// or the empty code if there is none.
func CodeOf(err error) Code {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	return CodeOf(err) == code
}
