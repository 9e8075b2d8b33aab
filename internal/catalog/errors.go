package catalog

import (
	"errors"
	"fmt"
)

// ErrMissingCredential indicates no API credential is configured for a
// provider that requires one. Callers should surface it as a setup
// prompt, not a transient failure.
var ErrMissingCredential = errors.New("no API credential configured")

// NotFoundError indicates a valid request for an entity that does not
// exist. Callers should render an absent result, not an error banner.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("movie %d not found", e.ID)
}

// RemoteError indicates the upstream API rejected the request.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("remote API error (status %d)", e.StatusCode)
}

// NetworkError indicates a transport failure reaching the upstream API.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ErrorMessage converts a provider error into the human-readable text a
// slice stores in its failed state.
func ErrorMessage(err error) string {
	var remote *RemoteError
	var notFound *NotFoundError
	var network *NetworkError

	switch {
	case errors.Is(err, ErrMissingCredential):
		return "No API key configured. Add one in settings to browse the live catalog."
	case errors.As(err, &notFound):
		return notFound.Error()
	case errors.As(err, &remote):
		return remote.Error()
	case errors.As(err, &network):
		return "Could not reach the catalog service. Check your connection and try again."
	default:
		return err.Error()
	}
}
