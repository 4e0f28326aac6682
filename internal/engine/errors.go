// internal/engine/errors.go
package engine

import (
	"errors"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// ErrCodeNetwork covers transport failures: connection errors, timeouts,
	// unreadable bodies. HTTP status codes are not inspected.
	ErrCodeNetwork ErrorCode = "NETWORK_ERROR"
	// ErrCodeStructure means the markup did not have the expected shape.
	ErrCodeStructure ErrorCode = "STRUCTURE_ERROR"
	// ErrCodeIO means the output artifact could not be written.
	ErrCodeIO ErrorCode = "IO_ERROR"
)

// Sentinels for errors.Is checks against a code
var (
	ErrNetwork   = &EngineError{Code: ErrCodeNetwork}
	ErrStructure = &EngineError{Code: ErrCodeStructure}
	ErrIO        = &EngineError{Code: ErrCodeIO}
)

// EngineError wraps errors with additional context
type EngineError struct {
	Code       ErrorCode
	Message    string
	Underlying error
	Details    map[string]interface{}
}

// Error implements the error interface
func (e *EngineError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Underlying)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *EngineError) Unwrap() error {
	return e.Underlying
}

// Is checks if the error matches the target
func (e *EngineError) Is(target error) bool {
	if t, ok := target.(*EngineError); ok {
		return e.Code == t.Code
	}
	return errors.Is(e.Underlying, target)
}

// NewEngineError creates a new EngineError
func NewEngineError(code ErrorCode, message string, err error) *EngineError {
	return &EngineError{
		Code:       code,
		Message:    message,
		Underlying: err,
		Details:    make(map[string]interface{}),
	}
}

// NetworkError builds an ErrCodeNetwork error for the given URL
func NetworkError(url string, err error) *EngineError {
	return NewEngineError(ErrCodeNetwork, "request failed", err).WithDetail("url", url)
}

// StructureError reports a selector that found nothing usable
func StructureError(message string, err error) *EngineError {
	return NewEngineError(ErrCodeStructure, message, err)
}

// IOError builds an ErrCodeIO error for the given path
func IOError(path string, err error) *EngineError {
	return NewEngineError(ErrCodeIO, "write "+path, err).WithDetail("path", path)
}

// WithDetail adds a detail to the error
func (e *EngineError) WithDetail(key string, value interface{}) *EngineError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// CodeOf returns the code of the first EngineError in err's chain, or "".
func CodeOf(err error) ErrorCode {
	var ee *EngineError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return ""
}
