package petapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"syscall"
)

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeNetwork indicates the request could not complete
	ErrTypeNetwork ErrorType = iota
	// ErrTypeHTTP indicates a response with a non-2xx status
	ErrTypeHTTP
	// ErrTypeParse indicates a success response that could not be decoded
	ErrTypeParse
	// ErrTypeValidation indicates input rejected before any request was sent
	ErrTypeValidation
	// ErrTypeTimeout indicates a request timeout
	ErrTypeTimeout
	// ErrTypeConnectionRefused indicates the server refused the connection
	ErrTypeConnectionRefused
	// ErrTypeDNS indicates a DNS resolution failure
	ErrTypeDNS
	// ErrTypeCanceled indicates the caller canceled the request
	ErrTypeCanceled
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeNetwork:
		return "Network Error"
	case ErrTypeHTTP:
		return "HTTP Error"
	case ErrTypeParse:
		return "Parse Error"
	case ErrTypeValidation:
		return "Validation Error"
	case ErrTypeTimeout:
		return "Timeout"
	case ErrTypeConnectionRefused:
		return "Connection Refused"
	case ErrTypeDNS:
		return "DNS Error"
	case ErrTypeCanceled:
		return "Canceled"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// Operation names carried by FetchError.Op
const (
	OpList   = "list"
	OpGet    = "get"
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

// FetchError is returned by every Client method.
type FetchError struct {
	Type       ErrorType // Category of error
	Op         string    // Operation that failed (list, get, create, update, delete)
	Message    string    // Human-readable error message
	StatusCode int       // HTTP status code, for ErrTypeHTTP
	Body       string    // Server-provided error text, for ErrTypeHTTP
	Field      string    // Offending field, for ErrTypeValidation
	Err        error     // Underlying error (if any)
}

// Error implements the error interface
func (e *FetchError) Error() string {
	prefix := e.Type.String()
	if e.Op != "" {
		prefix = e.Op + ": " + prefix
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", prefix, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *FetchError) Unwrap() error {
	return e.Err
}

// ClassifyNetworkError maps a transport error to a FetchError.
func ClassifyNetworkError(op string, err error) *FetchError {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, context.Canceled):
		return &FetchError{Type: ErrTypeCanceled, Op: op, Message: "Request canceled", Err: err}
	case errors.Is(err, context.DeadlineExceeded), os.IsTimeout(err):
		return &FetchError{Type: ErrTypeTimeout, Op: op, Message: "Request timed out", Err: err}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &FetchError{
			Type:    ErrTypeDNS,
			Op:      op,
			Message: fmt.Sprintf("DNS resolution failed for %s", dnsErr.Name),
			Err:     err,
		}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && errors.Is(opErr.Err, syscall.ECONNREFUSED) {
		return &FetchError{Type: ErrTypeConnectionRefused, Op: op, Message: "Server refused connection", Err: err}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != err {
		return ClassifyNetworkError(op, urlErr.Err)
	}

	return &FetchError{Type: ErrTypeNetwork, Op: op, Message: "Network error occurred", Err: err}
}

// NewNetworkError creates a network-level error with automatic classification
func NewNetworkError(op, message string, err error) *FetchError {
	classified := ClassifyNetworkError(op, err)
	if classified == nil {
		return &FetchError{Type: ErrTypeNetwork, Op: op, Message: message}
	}
	classified.Message = message
	return classified
}

// NewHTTPError creates an error for a non-2xx response.
// body is the server's error text; status is the response status line.
func NewHTTPError(op string, statusCode int, status, body string) *FetchError {
	text := body
	if text == "" {
		text = status
	}
	if text == "" {
		text = http.StatusText(statusCode)
	}
	return &FetchError{
		Type:       ErrTypeHTTP,
		Op:         op,
		Message:    fmt.Sprintf("%s failed with status %d: %s", op, statusCode, text),
		StatusCode: statusCode,
		Body:       body,
	}
}

// NewParseError creates a parsing error
func NewParseError(op, message string, err error) *FetchError {
	return &FetchError{Type: ErrTypeParse, Op: op, Message: message, Err: err}
}

// NewValidationError creates a validation error for field
func NewValidationError(field, message string) *FetchError {
	return &FetchError{Type: ErrTypeValidation, Field: field, Message: message}
}

func asFetchError(err error) (*FetchError, bool) {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// IsNetworkError reports whether the request could not complete
// (including timeouts, refused connections and DNS failures).
func IsNetworkError(err error) bool {
	fe, ok := asFetchError(err)
	if !ok {
		return false
	}
	switch fe.Type {
	case ErrTypeNetwork, ErrTypeTimeout, ErrTypeConnectionRefused, ErrTypeDNS:
		return true
	}
	return false
}

// IsHTTPError checks if an error is a non-2xx response
func IsHTTPError(err error) bool {
	fe, ok := asFetchError(err)
	return ok && fe.Type == ErrTypeHTTP
}

// IsNotFound reports a 404 response
func IsNotFound(err error) bool {
	fe, ok := asFetchError(err)
	return ok && fe.Type == ErrTypeHTTP && fe.StatusCode == http.StatusNotFound
}

// IsParseError checks if an error is a parse error
func IsParseError(err error) bool {
	fe, ok := asFetchError(err)
	return ok && fe.Type == ErrTypeParse
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	fe, ok := asFetchError(err)
	return ok && fe.Type == ErrTypeValidation
}

// StatusCode returns the HTTP status of err, or 0.
func StatusCode(err error) int {
	if fe, ok := asFetchError(err); ok {
		return fe.StatusCode
	}
	return 0
}

// GetShortErrorMessage returns a concise, user-facing message for an alert
func GetShortErrorMessage(err error) string {
	fe, ok := asFetchError(err)
	if !ok {
		return err.Error()
	}

	switch fe.Type {
	case ErrTypeTimeout:
		return "Registry not responding (timeout)"
	case ErrTypeConnectionRefused:
		return "Registry refused the connection"
	case ErrTypeDNS:
		return "Cannot resolve registry hostname"
	case ErrTypeNetwork:
		return "Network error - check connection"
	case ErrTypeCanceled:
		return "Request canceled"
	case ErrTypeHTTP:
		if fe.StatusCode == http.StatusNotFound {
			return "Pet not found (HTTP 404)"
		}
		if fe.Body != "" {
			return fmt.Sprintf("Registry error (HTTP %d): %s", fe.StatusCode, fe.Body)
		}
		return fmt.Sprintf("Registry error (HTTP %d)", fe.StatusCode)
	case ErrTypeParse:
		return "Unexpected response from registry"
	default:
		return fe.Message
	}
}

// GetTroubleshootingHints returns advice for the CLI error box
func GetTroubleshootingHints(err error) []string {
	fe, ok := asFetchError(err)
	if !ok {
		return nil
	}

	switch fe.Type {
	case ErrTypeTimeout:
		return []string{
			"The registry did not answer in time",
			"Raise api.request_timeout or set it to 0s to disable it",
		}
	case ErrTypeConnectionRefused, ErrTypeNetwork:
		return []string{
			"Check your network connection",
			"Verify api.base_url (or MASCOTAS_API_URL) points at the registry",
		}
	case ErrTypeDNS:
		return []string{
			"Check the hostname in api.base_url",
			"Check your DNS settings",
		}
	case ErrTypeHTTP:
		switch {
		case fe.StatusCode == http.StatusNotFound:
			return []string{"Run 'mascotas-admin list' to see the existing ids"}
		case fe.StatusCode >= 500:
			return []string{"The registry failed to handle the request, try again later"}
		default:
			return []string{"The registry rejected the request, check the field values"}
		}
	case ErrTypeParse:
		return []string{"Verify the endpoint paths in the configuration"}
	}
	return nil
}
