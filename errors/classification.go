package errors

// ErrorClassification indicates whether an error may clear on retry.
// Callers driving retry loops around filesystem operations use this instead
// of matching individual codes.
type ErrorClassification string

const (
	// ClassificationRetryable marks temporary failures that may succeed on
	// retry, such as transient device errors.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent marks failures that will not succeed on
	// retry, such as missing paths or rejected input types.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable reports whether the classification allows a retry.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// defaultClassifications maps each code to its default classification.
var defaultClassifications = map[ErrorCode]ErrorClassification{
	CodeIO: ClassificationRetryable,

	CodeNotFound:         ClassificationPermanent,
	CodeAlreadyExists:    ClassificationPermanent,
	CodeNotEmpty:         ClassificationPermanent,
	CodeUnsupportedInput: ClassificationPermanent,
	CodeInvalidInput:     ClassificationPermanent,
	CodePermission:       ClassificationPermanent,
	CodeInternal:         ClassificationPermanent,
}

// getDefaultClassification returns the default classification for a code.
// Unknown codes are treated as permanent so nothing retries blindly.
func getDefaultClassification(code ErrorCode) ErrorClassification {
	if c, ok := defaultClassifications[code]; ok {
		return c
	}
	return ClassificationPermanent
}
