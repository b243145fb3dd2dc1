// Package httpx contains small adapters over net/http used by the
// outbound clients and their tests.
package httpx

import "net/http"

// Doer sends a single HTTP request and returns its response.
// *http.Client satisfies it.
type Doer interface {
	Do(r *http.Request) (*http.Response, error)
}

// DoerFunc is an adapter to use ordinary functions as Doer.
type DoerFunc func(r *http.Request) (*http.Response, error)

// Do calls the wrapped function.
func (f DoerFunc) Do(r *http.Request) (*http.Response, error) { return f(r) }

// RoundTripperFunc is and adapter to use ordinary functions as http.RoundTripper.
type RoundTripperFunc func(r *http.Request) (*http.Response, error)

// RoundTrip proxies call to the wrapped function.
func (f RoundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}
