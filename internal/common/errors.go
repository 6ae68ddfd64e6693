package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Pipeline error taxonomy. Per-document errors are caught at the document
// loop; run-setup and credential errors fail the whole run.
var (
	ErrUnsupportedFormat = errors.New("unsupported document format")
	ErrNotImplemented    = errors.New("not implemented")
	ErrExtractionBackend = errors.New("extraction backend error")
	ErrNoCredentials     = errors.New("no credentials available")
	ErrCorruptCredential = errors.New("corrupt credential")
	ErrRunSetup          = errors.New("run setup failed")
	ErrNotFound          = errors.New("resource not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrDatabase          = errors.New("database error")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// IsFatalForRun reports whether an error must fail the whole run rather
// than skip the current document.
func IsFatalForRun(err error) bool {
	return errors.Is(err, ErrRunSetup) ||
		errors.Is(err, ErrNoCredentials) ||
		errors.Is(err, ErrCorruptCredential)
}

// gRPC error helpers
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func InternalErrorf(format string, args ...interface{}) error {
	return InternalError(fmt.Sprintf(format, args...))
}
