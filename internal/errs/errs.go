package errs

import "errors"

// ClientError is an error caused by the caller: bad input or a missing
// resource. It carries the HTTP status to report and a message that is safe
// to return in the response body. Every other error is treated as unexpected
// and reported as a generic 500 with the cause logged server-side only.
type ClientError struct {
	Status  int
	Message string
}

func (e *ClientError) Error() string {
	return e.Message
}

// NewClientError creates a new ClientError.
func NewClientError(status int, message string) *ClientError {
	return &ClientError{
		Status:  status,
		Message: message,
	}
}

// AsClient unwraps err into a ClientError if it is one.
func AsClient(err error) (*ClientError, bool) {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr, true
	}

	return nil, false
}
