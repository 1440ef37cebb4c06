package client

import (
	"encoding/json"
	"errors"
)

// GenericErrorMessage is shown for failures the server did not explain.
const GenericErrorMessage = "Something bad happened; please try again later."

// Kind classifies a failed call.
type Kind string

const (
	// KindValidation: the server rejected the input and said why.
	KindValidation Kind = "validation"
	// KindAuth: missing, expired or invalid token (401/403).
	KindAuth Kind = "auth"
	// KindTransport: the request never got a response.
	KindTransport Kind = "transport"
	// KindServer: any other non-2xx answer.
	KindServer Kind = "server"
)

// APIError is the normalized failure every Client method returns. Error()
// is the display message only; status and raw body go to the log.
type APIError struct {
	Kind    Kind
	Message string
	Status  int
	cause   error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// Is matches any *APIError of the same Kind, so the sentinels below work
// with errors.Is.
func (e *APIError) Is(target error) bool {
	var t *APIError
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

var (
	ErrValidation   = &APIError{Kind: KindValidation, Message: "validation error"}
	ErrUnauthorized = &APIError{Kind: KindAuth, Message: "unauthorized"}
	ErrUnavailable  = &APIError{Kind: KindTransport, Message: "server unavailable"}
	ErrServer       = &APIError{Kind: KindServer, Message: GenericErrorMessage}
)

// Message returns the text to show the user for err.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

// errorBody is the structured error shape of the API:
//
//	{"errors": [{"msg": "Username is required", ...}]}
type errorBody struct {
	Errors []struct {
		Msg string `json:"msg"`
	} `json:"errors"`
}

// firstErrorMessage returns the first entry of a structured error body.
func firstErrorMessage(body []byte) (string, bool) {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return "", false
	}
	if len(eb.Errors) == 0 || eb.Errors[0].Msg == "" {
		return "", false
	}
	return eb.Errors[0].Msg, true
}

func newTransportError(err error) *APIError {
	return &APIError{Kind: KindTransport, Message: err.Error(), cause: err}
}

func newValidationError(msg string, cause error) *APIError {
	return &APIError{Kind: KindValidation, Message: msg, cause: cause}
}
