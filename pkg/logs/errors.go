package logs

import "fmt"

// RetrievalError wraps a transport failure from the Source. The cause is
// kept for diagnostics; nothing inside this package retries.
type RetrievalError struct {
	cause error
}

func (x *RetrievalError) Error() string {
	return "log retrieval failed: " + x.cause.Error()
}

// Cause returns the underlying transport fault (pkg/errors compatible).
func (x *RetrievalError) Cause() error { return x.cause }

// Unwrap returns the underlying transport fault.
func (x *RetrievalError) Unwrap() error { return x.cause }

func newRetrievalError(cause error) *RetrievalError {
	return &RetrievalError{cause: cause}
}

// ConfigError reports invalid retrieval options. It is raised before any
// Source call is attempted.
type ConfigError struct {
	Reason string
}

func (x *ConfigError) Error() string {
	return "invalid log retrieval options: " + x.Reason
}

func newConfigError(format string, args ...interface{}) *ConfigError {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}
