package api

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"google.golang.org/grpc/codes"
)

// ErrorDetail is one coded error inside a service failure, in the order the
// platform returned it.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (d ErrorDetail) String() string {
	return fmt.Sprintf("%s: %s", d.Code, d.Message)
}

// ServiceError is a structured rejection from the platform: a request
// correlation id plus one or more (code, message) pairs. It is terminal for
// the call; nothing is retried.
type ServiceError struct {
	RequestID string
	Errors    []ErrorDetail
}

func (e *ServiceError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "request failed (request id %s)", e.RequestID)
	for _, d := range e.Errors {
		b.WriteString("\n  ")
		b.WriteString(d.String())
	}
	return b.String()
}

// TransportError covers every non-service failure: HTTP errors without a
// failure detail, undecodable bodies, and network-level errors. StatusText is
// the canonical status exactly as the wire carried it (e.g. PERMISSION_DENIED);
// Status is its decoded form for programmatic checks.
type TransportError struct {
	StatusCode int
	Status     codes.Code
	StatusText string
	Message    string
	cause      error
}

func (e *TransportError) Error() string {
	switch {
	case e.StatusCode != 0 && e.StatusText != "":
		return fmt.Sprintf("HTTP %d (%s): %s", e.StatusCode, e.StatusText, e.Message)
	case e.StatusCode != 0:
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
	default:
		return e.Message
	}
}

func (e *TransportError) Unwrap() error {
	return e.cause
}

// decodeFailure classifies an error response body. A body carrying the
// platform's failure detail block (the detail entry with an "errors" list)
// becomes a *ServiceError; anything else becomes a *TransportError.
func decodeFailure(body []byte, statusCode int, cause error) error {
	errObj := gjson.GetBytes(body, "error")
	if !errObj.Exists() {
		msg := strings.TrimSpace(string(body))
		if msg == "" && cause != nil {
			msg = cause.Error()
		}
		return &TransportError{StatusCode: statusCode, Message: msg, cause: cause}
	}

	var svc *ServiceError
	errObj.Get("details").ForEach(func(_, detail gjson.Result) bool {
		errs := detail.Get("errors")
		if !errs.Exists() {
			return true
		}
		svc = &ServiceError{RequestID: detail.Get("requestId").String()}
		errs.ForEach(func(_, e gjson.Result) bool {
			d := ErrorDetail{Message: e.Get("message").String()}
			// errorCode is a one-entry object keyed by error category; the
			// value is the enum name we surface.
			e.Get("errorCode").ForEach(func(_, v gjson.Result) bool {
				d.Code = v.String()
				return false
			})
			svc.Errors = append(svc.Errors, d)
			return true
		})
		return false
	})
	if svc != nil {
		return svc
	}

	code := codes.Unknown
	statusText := errObj.Get("status").String()
	if statusText != "" {
		var parsed codes.Code
		if err := parsed.UnmarshalJSON([]byte(strconv.Quote(statusText))); err == nil {
			code = parsed
		}
	}
	return &TransportError{
		StatusCode: statusCode,
		Status:     code,
		StatusText: statusText,
		Message:    errObj.Get("message").String(),
		cause:      cause,
	}
}
