package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target. It is a
// convenience re-export of the standard library errors.Is so callers do not
// need two errors imports.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain matching target. Re-exported from
// the standard library for the same reason as Is.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// GetCode extracts the ErrorCode from the outermost Error in err's chain.
// Returns CodeUnknown for nil errors and errors without a code.
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}
	var coded Error
	if stderrors.As(err, &coded) {
		return coded.Code()
	}
	return CodeUnknown
}

// GetClassification extracts the classification from the outermost Error in
// err's chain. Nil and uncoded errors report permanent, so nothing retries
// on an unclassified failure.
func GetClassification(err error) ErrorClassification {
	if err == nil {
		return ClassificationPermanent
	}
	var coded Error
	if stderrors.As(err, &coded) {
		return coded.Classification()
	}
	return ClassificationPermanent
}

// IsRetryable reports whether err is classified as retryable.
func IsRetryable(err error) bool {
	return GetClassification(err).IsRetryable()
}
