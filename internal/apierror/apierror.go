package apierror

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

type ErrorCode string

const (
	ErrValidation       ErrorCode = "VALIDATION_FAILED"
	ErrTimeout          ErrorCode = "TIMEOUT"
	ErrServerValidation ErrorCode = "SERVER_VALIDATION"
	ErrNetwork          ErrorCode = "NETWORK_ERROR"
	ErrUnexpected       ErrorCode = "UNEXPECTED_ERROR"
)

type APIError struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func (e APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAPIError(code ErrorCode, message string, details interface{}) APIError {
	logrus.Error(details)
	return APIError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// FromServerResponse maps a non-2xx intake response body onto an
// APIError. The backend answers in one of two observed shapes: an
// object of field name to message list, or a single detail/error
// string. Anything else degrades to a generic network error.
func FromServerResponse(status int, body []byte) APIError {
	var fieldErrs map[string][]string
	if err := json.Unmarshal(body, &fieldErrs); err == nil && len(fieldErrs) > 0 {
		return NewAPIError(ErrServerValidation, "the server rejected the submission", fieldErrs)
	}

	var detail struct {
		Detail string `json:"detail"`
		Err    string `json:"error"`
	}
	if err := json.Unmarshal(body, &detail); err == nil {
		if detail.Detail != "" {
			return NewAPIError(ErrServerValidation, detail.Detail, nil)
		}
		if detail.Err != "" {
			return NewAPIError(ErrServerValidation, detail.Err, nil)
		}
	}

	return NewAPIError(ErrNetwork, fmt.Sprintf("the server responded with status %d", status), nil)
}

// Messages flattens an APIError into displayable strings: the collected
// rule violations for client validation errors, one line per field
// violation for server validation errors, the message otherwise.
func Messages(e APIError) []string {
	if msgs, ok := e.Details.([]string); ok && len(msgs) > 0 {
		return msgs
	}
	fieldErrs, ok := e.Details.(map[string][]string)
	if !ok {
		return []string{e.Message}
	}
	fields := make([]string, 0, len(fieldErrs))
	for f := range fieldErrs {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	var out []string
	for _, f := range fields {
		for _, msg := range fieldErrs[f] {
			out = append(out, fmt.Sprintf("%s: %s", f, msg))
		}
	}
	return out
}
