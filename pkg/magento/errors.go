package magento

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Static errors for caller-fixable precondition violations. All of them are
// raised before any network I/O.
var (
	ErrConfigRequired         = errors.New("config is required")
	ErrDomainRequired         = errors.New("domain is required")
	ErrMissingCredentials     = errors.New("either a password or an API key must be provided")
	ErrAuthAttemptsExceeded   = errors.New("maximum number of authentication attempts exceeded")
	ErrInvalidMethod          = errors.New("invalid request method provided")
	ErrEmptyPayload           = errors.New("must provide a non-empty payload")
	ErrOptionsAttributeNotSet = errors.New("attribute options require an attribute: call SetAttributeOptionsAttribute first")
	ErrMediaProductNotSet     = errors.New("media entries require a product: call SetMediaEntriesProduct first")
	ErrNoResult               = errors.New("no matching result for this query")
)

// AuthenticationError reports a rejected login request or a rejected
// post-login validation call. It carries the HTTP status and the decoded
// error summary of the triggering response for diagnostics.
type AuthenticationError struct {
	Message    string
	StatusCode int
	Response   string
}

func (e *AuthenticationError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "failed to authenticate credentials"
	}

	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}

	if e.Response != "" {
		msg += ": " + e.Response
	}

	return msg
}

// IsAuthenticationError checks whether err is an AuthenticationError.
func IsAuthenticationError(err error) bool {
	authErr := &AuthenticationError{}

	return errors.As(err, &authErr)
}

// APIError reports a non-2xx API response surfaced by a resource manager.
type APIError struct {
	Method     string
	Endpoint   string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s returned status %d: %s", e.Method, e.Endpoint, e.StatusCode, e.Message)
}

// IsAPIError checks whether err is an APIError, returning it when so.
func IsAPIError(err error) (*APIError, bool) {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}

// ErrorResponse represents the error body returned by the Magento API.
//
// Parameters can be either an object of named parameters or a positional
// list, so it is kept raw and resolved during message substitution.
type ErrorResponse struct {
	Message    string          `json:"message"`
	Parameters json.RawMessage `json:"parameters,omitempty"`
	Errors     []ErrorDetail   `json:"errors,omitempty"`
}

// ErrorDetail is a single entry of a multi-error response.
type ErrorDetail struct {
	Message    string          `json:"message"`
	Parameters json.RawMessage `json:"parameters,omitempty"`
}

// Summary renders the response as a human readable message with all
// %-placeholders substituted.
func (e *ErrorResponse) Summary() string {
	var parts []string

	if e.Message != "" {
		parts = append(parts, fmt.Sprintf("Message: %q", substituteParams(e.Message, e.Parameters)))
	}

	for _, detail := range e.Errors {
		parts = append(parts, substituteParams(detail.Message, detail.Parameters))
	}

	return strings.Join(parts, "\n")
}

// ParseError decodes a Magento error body and returns its summary.
// Undecodable bodies are returned as-is.
func ParseError(body []byte) string {
	var errResp ErrorResponse

	err := json.Unmarshal(body, &errResp)
	if err != nil || (errResp.Message == "" && len(errResp.Errors) == 0) {
		return strings.TrimSpace(string(body))
	}

	return errResp.Summary()
}

// substituteParams replaces %name placeholders using a parameter object, or
// %1..%n placeholders using a positional parameter list.
func substituteParams(message string, params json.RawMessage) string {
	if len(params) == 0 {
		return message
	}

	var named map[string]interface{}
	if err := json.Unmarshal(params, &named); err == nil {
		for key, value := range named {
			message = strings.ReplaceAll(message, "%"+key, fmt.Sprintf("%v", value))
		}

		return message
	}

	var positional []interface{}
	if err := json.Unmarshal(params, &positional); err == nil {
		for i, value := range positional {
			message = strings.ReplaceAll(message, fmt.Sprintf("%%%d", i+1), fmt.Sprintf("%v", value))
		}
	}

	return message
}
