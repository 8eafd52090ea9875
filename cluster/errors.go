// Copyright 2025 The ChapaUY Authors
// SPDX-License-Identifier: Apache-2.0

package cluster

import (
	"errors"
	"fmt"
)

// ErrorType classifies failures raised by the clustering pipeline.
type ErrorType int

const (
	// ErrorTypeUnknown is an unclassified failure.
	ErrorTypeUnknown ErrorType = iota
	// ErrorTypePrecondition is a call made before the required fit.
	ErrorTypePrecondition
	// ErrorTypeInvalidParameter is a caller supplied value out of range.
	ErrorTypeInvalidParameter
)

var (
	// ErrNotFitted matches every precondition failure.
	ErrNotFitted = errors.New("not fitted")
	// ErrInvalidParameter matches every invalid parameter failure.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// Error carries the violated precondition or parameter.
type Error struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for the error's type.
func (e *Error) Is(target error) bool {
	switch e.Type {
	case ErrorTypePrecondition:
		return target == ErrNotFitted
	case ErrorTypeInvalidParameter:
		return target == ErrInvalidParameter
	default:
		return false
	}
}

// NotFitted builds a precondition error for the named operation.
func NotFitted(op string) error {
	return &Error{
		Type:    ErrorTypePrecondition,
		Message: op + " called before fit",
	}
}

// InvalidParameter builds an invalid parameter error.
func InvalidParameter(format string, args ...any) error {
	return &Error{
		Type:    ErrorTypeInvalidParameter,
		Message: fmt.Sprintf(format, args...),
	}
}

// IsPreconditionError reports whether err is a precondition failure.
func IsPreconditionError(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Type == ErrorTypePrecondition
	}

	return false
}

// IsInvalidParameterError reports whether err is an invalid parameter failure.
func IsInvalidParameterError(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Type == ErrorTypeInvalidParameter
	}

	return false
}
