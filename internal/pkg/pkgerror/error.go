package pkgerror

import (
	"errors"
	"net/http"
)

type Code int

const (
	CodeInternal Code = iota
	CodeInvalidInput
	CodeNotFound
	CodeUpstreamRejected
	CodeUnavailable
)

// Business is an error that is safe to surface to API consumers.
type Business struct {
	Message string
	Code    Code
}

func NewBusiness(message string, code Code) *Business {
	return &Business{Message: message, Code: code}
}

func (e *Business) Error() string {
	return e.Message
}

// HTTPStatus maps an error to a response status. Non-business errors are
// internal failures.
func HTTPStatus(err error) int {
	var be *Business
	if !errors.As(err, &be) {
		return http.StatusInternalServerError
	}

	switch be.Code {
	case CodeInvalidInput:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeUpstreamRejected:
		return http.StatusBadGateway
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// UserMessage returns the business message when present, otherwise a
// generic fallback so internals are never leaked.
func UserMessage(err error) string {
	var be *Business
	if errors.As(err, &be) {
		return be.Message
	}
	return "something went wrong, please try again"
}
