package cli

import "fmt"

// Exit codes, matching the documented command contract.
const (
	ExitOK            = 0 // success, including degenerate successes
	ExitInvalidTarget = 1 // target network string is not a valid network
	ExitBadAddresses  = 2 // missing/ambiguous addresses or classification errors
)

// ExitError carries a process exit code alongside the message to print on
// stderr. main inspects it so the library code never calls os.Exit itself.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

func exitErrorf(code int, format string, args ...interface{}) *ExitError {
	return &ExitError{Code: code, Message: fmt.Sprintf(format, args...)}
}
