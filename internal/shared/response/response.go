package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Kind is the closed set of failure classes this API produces.
// Exactly one mapping from kind to HTTP status exists (Status below);
// handlers never pick raw status codes for failures.
type Kind int

const (
	KindBadRequest Kind = iota
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindInternal
)

// Status maps a failure kind to its HTTP status code
func (k Kind) Status() int {
	switch k {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Base is the envelope every response body embeds. Success payloads embed
// it in a typed struct so their fields sit at the top level next to
// success/message.
type Base struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// OK builds the success half of an envelope
func OK(message string) Base {
	return Base{Success: true, Message: message}
}

// ErrorDetail describes a failure: the status code it maps to and a message
type ErrorDetail struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// ErrorBody is the envelope for every failure response
type ErrorBody struct {
	Base
	Error ErrorDetail `json:"error"`
}

// Fail writes a failure envelope where the client-facing message and the
// error detail are the same text.
func Fail(c *gin.Context, kind Kind, message string) {
	status := kind.Status()
	c.JSON(status, ErrorBody{
		Base:  Base{Success: false, Message: message},
		Error: ErrorDetail{Status: status, Message: message},
	})
}

// FailWithError writes a failure envelope with a generic client message and
// the underlying error text in the detail field. Used for 500s, where the
// full error is also logged server-side.
func FailWithError(c *gin.Context, kind Kind, message string, err error) {
	status := kind.Status()
	detail := message
	if err != nil {
		detail = err.Error()
	}
	c.JSON(status, ErrorBody{
		Base:  Base{Success: false, Message: message},
		Error: ErrorDetail{Status: status, Message: detail},
	})
}
