package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Target root errors
	ErrTargetRootNotAbsolute  ErrorCode = "TARGET_ROOT_NOT_ABSOLUTE"
	ErrTargetRootNotDirectory ErrorCode = "TARGET_ROOT_NOT_DIRECTORY"

	// Metadata file errors
	ErrOpenMetadata            ErrorCode = "OPEN_METADATA"
	ErrWriteEntry              ErrorCode = "WRITE_ENTRY"
	ErrParseEntries            ErrorCode = "PARSE_ENTRIES"
	ErrParseEntrySource        ErrorCode = "PARSE_ENTRY_SOURCE"
	ErrParseEntryTarget        ErrorCode = "PARSE_ENTRY_TARGET"
	ErrParseEntryTargetMissing ErrorCode = "PARSE_ENTRY_TARGET_MISSING"

	// Entry validation errors
	ErrEntrySourceNotExists      ErrorCode = "ENTRY_SOURCE_NOT_EXISTS"
	ErrEntryTargetDuplicate      ErrorCode = "ENTRY_TARGET_DUPLICATE"
	ErrEntryTargetExists         ErrorCode = "ENTRY_TARGET_EXISTS"
	ErrNewEntrySourceNotAbsolute ErrorCode = "NEW_ENTRY_SOURCE_NOT_ABSOLUTE"
	ErrNewEntryTargetIsAbsolute  ErrorCode = "NEW_ENTRY_TARGET_IS_ABSOLUTE"

	// Reconciliation errors
	ErrTargetOccupied        ErrorCode = "TARGET_OCCUPIED"
	ErrCanonicalizeTarget    ErrorCode = "CANONICALIZE_TARGET"
	ErrCreateParent          ErrorCode = "CREATE_PARENT"
	ErrCreateTargetDirectory ErrorCode = "CREATE_TARGET_DIRECTORY"
	ErrCreateSymlink         ErrorCode = "CREATE_SYMLINK"
	ErrReadDirectory         ErrorCode = "READ_DIRECTORY"
	ErrUnlink                ErrorCode = "UNLINK"

	// Command errors
	ErrLinkReadMetadata ErrorCode = "LINK_READ_METADATA"
	ErrLinkCreate       ErrorCode = "LINK_CREATE"
	ErrLinkRemove       ErrorCode = "LINK_REMOVE"
	ErrRegisterCreate   ErrorCode = "REGISTER_CREATE"
	ErrRegisterWrite    ErrorCode = "REGISTER_WRITE"
	ErrWatch            ErrorCode = "WATCH"
	ErrStatusUnhealthy  ErrorCode = "STATUS_UNHEALTHY"
)

// MakkyError represents a structured error with code and details
type MakkyError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface. The code is left out so that
// chained errors read as a single sentence; use GetErrorCode to inspect it.
func (e *MakkyError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Wrapped)
	}
	return e.Message
}

// Unwrap implements the errors.Unwrap interface
func (e *MakkyError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *MakkyError) Is(target error) bool {
	var targetErr *MakkyError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new MakkyError with the given code and message
func New(code ErrorCode, message string) *MakkyError {
	return &MakkyError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new MakkyError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *MakkyError {
	return &MakkyError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a MakkyError
func Wrap(err error, code ErrorCode, message string) *MakkyError {
	if err == nil {
		return nil
	}
	return &MakkyError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *MakkyError {
	if err == nil {
		return nil
	}
	return &MakkyError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *MakkyError) WithDetail(key string, value interface{}) *MakkyError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// Aggregate reports several independent errors as one failure. It is
// returned when every problem in a batch should be shown at once instead
// of stopping at the first one.
type Aggregate struct {
	Code    ErrorCode
	Message string
	Errors  []error
}

// NewAggregate creates an Aggregate. It returns nil when errs is empty so
// callers can return its result directly.
func NewAggregate(code ErrorCode, message string, errs []error) *Aggregate {
	if len(errs) == 0 {
		return nil
	}
	return &Aggregate{Code: code, Message: message, Errors: errs}
}

// Error renders the message followed by one tab-indented line per error.
func (a *Aggregate) Error() string {
	var b strings.Builder
	b.WriteString(a.Message)
	b.WriteString(":")
	for _, err := range a.Errors {
		b.WriteString("\n\t")
		b.WriteString(err.Error())
	}
	return b.String()
}

// Unwrap exposes the collected errors to errors.Is and errors.As.
func (a *Aggregate) Unwrap() []error {
	return a.Errors
}

// Is matches a MakkyError target carrying the aggregate's code.
func (a *Aggregate) Is(target error) bool {
	var targetErr *MakkyError
	if errors.As(target, &targetErr) {
		return a.Code == targetErr.Code
	}
	return false
}

// IsErrorCode checks if an error, or any error in its chain, has a specific
// error code
func IsErrorCode(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, &MakkyError{Code: code})
}

// GetErrorCode returns the code of the outermost coded error in the chain,
// or ErrUnknown if there is none
func GetErrorCode(err error) ErrorCode {
	for err != nil {
		switch e := err.(type) {
		case *MakkyError:
			return e.Code
		case *Aggregate:
			return e.Code
		}
		err = errors.Unwrap(err)
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a MakkyError
func GetErrorDetails(err error) map[string]interface{} {
	var makkyErr *MakkyError
	if errors.As(err, &makkyErr) {
		return makkyErr.Details
	}
	return nil
}

// AsAggregate returns the first Aggregate found in the error chain.
func AsAggregate(err error) (*Aggregate, bool) {
	var agg *Aggregate
	if errors.As(err, &agg) {
		return agg, true
	}
	return nil, false
}
