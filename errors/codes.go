// Package errors provides the structured error system used across pathops.
// It extends Go's standard error handling with error codes, retry
// classification, and context preservation while staying compatible with
// errors.Is, errors.As, and errors.Unwrap.
package errors

// ErrorCode identifies a specific failure condition. Codes are string-based
// so they read well in logs and error messages.
type ErrorCode string

const (
	// CodeNotFound indicates the target path does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeAlreadyExists indicates the target path already exists and the
	// operation refuses to replace it.
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// CodeNotEmpty indicates a directory delete targeted a directory that
	// still has children.
	CodeNotEmpty ErrorCode = "DIRECTORY_NOT_EMPTY"

	// CodeUnsupportedInput indicates a value was passed to a coercion
	// boundary that has no handler for its type.
	CodeUnsupportedInput ErrorCode = "UNSUPPORTED_INPUT"

	// CodeInvalidInput indicates input that was recognized but malformed,
	// such as a URL with a non-file scheme.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodePermission indicates the operation was denied by the backend.
	CodePermission ErrorCode = "PERMISSION_DENIED"

	// CodeIO indicates any other underlying I/O failure.
	CodeIO ErrorCode = "IO_FAILURE"

	// CodeInternal indicates an unexpected internal failure.
	CodeInternal ErrorCode = "INTERNAL"

	// CodeUnknown is used when no code can be determined from an error.
	CodeUnknown ErrorCode = "UNKNOWN"
)
