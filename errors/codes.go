package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Dispatch errors
const (
	// ErrCodeHandlerNotFound indicates no handler is registered for a request type.
	ErrCodeHandlerNotFound ErrorCode = "HANDLER_NOT_FOUND"
	// ErrCodeInvalidRequest indicates the request value itself is unusable (e.g. nil).
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
)

// Registration errors
const (
	// ErrCodeInvalidRegistration indicates a handler or behavior cannot be registered,
	// or a resolver returned a value of the wrong shape.
	ErrCodeInvalidRegistration ErrorCode = "INVALID_REGISTRATION"
	// ErrCodeAlreadyExists indicates a second handler for the same request type.
	ErrCodeAlreadyExists ErrorCode = "ALREADY_EXISTS"
)

// Pipeline errors, raised by behaviors
const (
	// ErrCodeInvalidInput indicates a request failed validation.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeTimeout indicates the chain did not finish before its deadline.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeRateLimited indicates a concurrency limit rejected the request.
	ErrCodeRateLimited ErrorCode = "RATE_LIMITED"
	// ErrCodeServiceUnavailable indicates a circuit breaker is open.
	ErrCodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
	// ErrCodeInternal indicates an unexpected failure such as a recovered panic.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeTimeout:            true,
	ErrCodeRateLimited:        true,
	ErrCodeServiceUnavailable: true,
	ErrCodeHandlerNotFound:    false,
	ErrCodeInternal:           false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
