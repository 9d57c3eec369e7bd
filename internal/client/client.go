package client

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// FetchError describes a failed call to a backend service: a transport
// failure, a non-2xx status, or an undecodable payload. Callers treat a
// primary-collection fetch failure as all-or-nothing; there are never
// partial results behind a FetchError.
type FetchError struct {
	Op     string // e.g. "list users"
	Status int    // upstream HTTP status, 0 on transport failure
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: upstream status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// AsFetchError unwraps err into a *FetchError if there is one.
func AsFetchError(err error) (*FetchError, bool) {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// newHTTPClient builds the resty client shared by each service fetcher.
// The per-request timeout bounds every call so a single unreachable
// dependency cannot hang a page load indefinitely.
func newHTTPClient(baseURL string, timeout time.Duration) *resty.Client {
	return resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(timeout)
}

func transportErr(op string, err error) *FetchError {
	return &FetchError{Op: op, Err: err}
}

func statusErr(op string, status int) *FetchError {
	return &FetchError{Op: op, Status: status}
}

func decodeErr(op string, err error) *FetchError {
	return &FetchError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
}
