package errors

import (
	stderrors "errors"
	"fmt"
)

// New creates an Error with the given code and message. The classification
// comes from the code's default mapping.
//
//	err := errors.New(errors.CodeNotFound, "no such file")
func New(code ErrorCode, message string) Error {
	return &codedError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        message,
	}
}

// Newf creates an Error with a formatted message.
func Newf(code ErrorCode, format string, args ...any) Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps err with a code and message while keeping the original error
// reachable through Unwrap, errors.Is, and errors.As. If err is already an
// Error its classification is preserved. Returns nil if err is nil.
//
//	if err := fsys.Remove(name); err != nil {
//	    return errors.Wrap(err, errors.CodeIO, "remove failed")
//	}
func Wrap(err error, code ErrorCode, message string) Error {
	if err == nil {
		return nil
	}

	classification := getDefaultClassification(code)
	var coded Error
	if stderrors.As(err, &coded) {
		classification = coded.Classification()
	}

	return &codedError{
		code:           code,
		classification: classification,
		message:        message,
		cause:          err,
	}
}

// Wrapf wraps err with a formatted message. Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...any) Error {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithContext returns a copy of err carrying one more context field.
// A non-Error err is first wrapped with CodeUnknown. Returns nil if err
// is nil.
//
//	return errors.WithContext(err, "path", p.String())
func WithContext(err error, key string, value any) Error {
	if err == nil {
		return nil
	}

	var coded Error
	if !stderrors.As(err, &coded) {
		coded = &codedError{
			code:           CodeUnknown,
			classification: ClassificationPermanent,
			message:        err.Error(),
			cause:          err,
		}
	}

	ctx := make(map[string]any)
	for k, v := range coded.Context() {
		ctx[k] = v
	}
	ctx[key] = value

	return &codedError{
		code:           coded.Code(),
		classification: coded.Classification(),
		message:        coded.Message(),
		context:        ctx,
		cause:          coded.Unwrap(),
	}
}
