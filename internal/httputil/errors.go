package httputil

import "errors"

var (
	ErrInvalidBody      = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")
	ErrRequestBodyEmpty = errors.New("the request body must not be empty")
	ErrInvalidUUID      = errors.New("the specified resource ID is not a valid UUID")
)

// ErrorResponse is the body of responses that only carry an error.
type ErrorResponse struct {
	Error string `json:"error" example:"there is no endpoint at this path"`
}
