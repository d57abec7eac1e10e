package model

import "fmt"

// HTTPError is an error that already knows the status code it should be
// surfaced with. Handlers forward these to the centralized responder
// untouched; anything else is treated as a 500.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

// WrapHTTPError builds an HTTPError whose message carries the underlying
// collaborator failure, matching the "<context>. <cause>" responses the API
// has always produced.
func WrapHTTPError(code int, message string, cause error) *HTTPError {
	if cause == nil {
		return &HTTPError{Code: code, Message: message}
	}
	return &HTTPError{Code: code, Message: fmt.Sprintf("%s %v", message, cause)}
}
