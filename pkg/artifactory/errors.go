package artifactory

import (
	"fmt"
	"net/http"
)

// ClientError is the base error type for failures raised by this
// library itself (as opposed to failures surfaced by the transport,
// which propagate unmodified).
type ClientError struct {
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// ArgumentError is raised when a caller supplies malformed input that
// would otherwise produce a malformed URL (empty property names,
// unsupported query argument types). The remote service's reading of a
// malformed query string is undefined, so these fail fast.
type ArgumentError struct {
	*ClientError
	Argument string
	Value    interface{}
}

func NewArgumentError(argument string, value interface{}, message string) *ArgumentError {
	return &ArgumentError{
		ClientError: &ClientError{Message: message},
		Argument:    argument,
		Value:       value,
	}
}

// APIError carries a non-2xx response for callers who opt into status
// interpretation via Response.Error. The dispatcher itself never
// constructs one.
type APIError struct {
	*ClientError
	StatusCode int
	Body       []byte
	Request    *http.Request
}

func NewAPIError(statusCode int, body []byte, req *http.Request) *APIError {
	message := fmt.Sprintf("request failed with status %d", statusCode)
	if req != nil {
		message = fmt.Sprintf("%s %s failed with status %d", req.Method, req.URL, statusCode)
	}

	return &APIError{
		ClientError: &ClientError{Message: message},
		StatusCode:  statusCode,
		Body:        body,
		Request:     req,
	}
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}
