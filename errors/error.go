package errors

import "fmt"

// Error extends the standard error interface with a code, a retry
// classification, contextual metadata, and an unwrappable cause.
type Error interface {
	error

	// Code returns the error code identifying the failure condition.
	Code() ErrorCode

	// Classification returns whether the error is retryable or permanent.
	Classification() ErrorClassification

	// Message returns the human-readable message without the code prefix.
	Message() string

	// Context returns attached metadata as a copy, or nil if none was set.
	Context() map[string]any

	// Unwrap returns the wrapped cause for errors.Is and errors.As, or nil.
	Unwrap() error
}

// codedError is the concrete implementation of Error. It is unexported so
// all construction flows through the package functions.
type codedError struct {
	code           ErrorCode
	classification ErrorClassification
	message        string
	context        map[string]any
	cause          error
}

// Error renders as "[CODE] message" with the cause appended when present.
func (e *codedError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

func (e *codedError) Code() ErrorCode                     { return e.code }
func (e *codedError) Classification() ErrorClassification { return e.classification }
func (e *codedError) Message() string                     { return e.message }

// Context returns a copy of the context map so callers cannot mutate the
// error after construction.
func (e *codedError) Context() map[string]any {
	if e.context == nil {
		return nil
	}
	ctx := make(map[string]any, len(e.context))
	for k, v := range e.context {
		ctx[k] = v
	}
	return ctx
}

func (e *codedError) Unwrap() error { return e.cause }
