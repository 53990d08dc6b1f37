package errors

import "net/http"

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                Code = "OK"
	CodeCanceled          Code = "CANCELED"
	CodeInvalidArgument   Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded  Code = "DEADLINE_EXCEEDED"
	CodeNotFound          Code = "NOT_FOUND"
	CodePermissionDenied  Code = "PERMISSION_DENIED"
	CodeResourceExhausted Code = "RESOURCE_EXHAUSTED"
	CodeUnimplemented     Code = "UNIMPLEMENTED"
	CodeInternal          Code = "INTERNAL"
	CodeUnavailable       Code = "UNAVAILABLE"
	CodeDataLoss          Code = "DATA_LOSS"
	CodeUnauthenticated   Code = "UNAUTHENTICATED"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// FromHTTPStatus classifies an upstream response status.
// Any 2xx maps to CodeOK; server errors and unknown statuses are treated as
// the upstream being unavailable.
func FromHTTPStatus(status int) Code {
	switch {
	case status >= 200 && status < 300:
		return CodeOK
	case status == http.StatusNotFound:
		return CodeNotFound
	case status == http.StatusBadRequest:
		return CodeInvalidArgument
	case status == http.StatusUnauthorized:
		return CodeUnauthenticated
	case status == http.StatusForbidden:
		return CodePermissionDenied
	case status == http.StatusTooManyRequests:
		return CodeResourceExhausted
	case status == http.StatusRequestTimeout, status == http.StatusGatewayTimeout:
		return CodeDeadlineExceeded
	default:
		return CodeUnavailable
	}
}
