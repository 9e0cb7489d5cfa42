package apperror

import (
	"errors"
	"fmt"
)

// TransportError reports a gateway round trip that did not produce a usable
// response: either the call never completed (Err set, StatusCode 0) or the
// gateway answered with a non-2xx status. Body keeps the gateway's diagnostic
// payload verbatim.
type TransportError struct {
	Operation  string
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transport %s: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("HTTP error! status: %d, body: %s", e.StatusCode, e.Body)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// AsTransport extracts a *TransportError from err's chain.
func AsTransport(err error) (*TransportError, bool) {
	var te *TransportError
	if errors.As(err, &te) {
		return te, true
	}
	return nil, false
}
