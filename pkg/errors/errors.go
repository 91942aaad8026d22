// Package errors provides the sentinel-error-plus-AppError pattern used by
// every fallible outer operation in this repository (corpus loading, cache
// I/O, config parsing). The core search packages never return errors; this
// package exists for the layers around it.
package errors

import (
	"errors"
	"fmt"
)

var (
	ErrCorpusSourceUnavailable = errors.New("corpus source unavailable")
	ErrCorpusRecordInvalid     = errors.New("corpus record invalid")
	ErrCacheUnavailable        = errors.New("preprocessing cache unavailable")
	ErrConfigInvalid           = errors.New("configuration invalid")
	ErrTimeout                 = errors.New("operation timed out")
	ErrInternal                = errors.New("internal error")
)

// AppError pairs a sentinel with a human-readable message and an exit code.
// This repository has no HTTP surface, but cmd/mediasearch still uses
// ExitCode to pick a process exit status, reusing the teacher's
// classification without its HTTP transport.
type AppError struct {
	Err      error
	Message  string
	ExitCode int
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(sentinel error, exitCode int, message string) *AppError {
	return &AppError{Err: sentinel, Message: message, ExitCode: exitCode}
}

func Newf(sentinel error, exitCode int, format string, args ...any) *AppError {
	return &AppError{Err: sentinel, Message: fmt.Sprintf(format, args...), ExitCode: exitCode}
}

// ExitCode maps err to a process exit status: 2 for malformed input/config,
// 3 for an unavailable external dependency, 1 for anything else fallible,
// 0 only for a nil error.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.ExitCode
	}
	switch {
	case errors.Is(err, ErrConfigInvalid), errors.Is(err, ErrCorpusRecordInvalid):
		return 2
	case errors.Is(err, ErrCorpusSourceUnavailable), errors.Is(err, ErrCacheUnavailable), errors.Is(err, ErrTimeout):
		return 3
	default:
		return 1
	}
}
