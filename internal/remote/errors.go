package remote

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrBaseURLRequired is returned when a client is constructed without an endpoint.
var ErrBaseURLRequired = errors.New("remote: base URL is required")

// TransportError reports that a request never produced an HTTP response:
// DNS failure, refused connection, timeout, cancelled context.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("remote: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RequestError reports a non-2xx response. Body carries the server's payload,
// truncated to a bounded size.
type RequestError struct {
	Method string
	Path   string
	Status int
	Body   []byte
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("remote: %s %s: unexpected status %d", e.Method, e.Path, e.Status)
}

// IsStatus reports whether err is a RequestError with the given status code.
func IsStatus(err error, status int) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr) && reqErr.Status == status
}

// IsNotFound reports whether err is a 404 response.
func IsNotFound(err error) bool {
	return IsStatus(err, http.StatusNotFound)
}
