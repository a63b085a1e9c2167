// Package testutil contains common utility functions for unit tests.
package testutil

import (
	"net/http"
	"testing"
)

// NetworkGuard returns an http.RoundTripper that fails t immediately if
// any request is made through it. SafeParse never performs network
// I/O — external entity and external DTD references are rejected
// before any resource is fetched — so tests exercising that guarantee
// wire this RoundTripper in via http.DefaultTransport and assert it
// never fires.
func NetworkGuard(t *testing.T) http.RoundTripper {
	return &networkGuard{t: t}
}

type networkGuard struct {
	t *testing.T
}

func (g *networkGuard) RoundTrip(req *http.Request) (*http.Response, error) {
	g.t.Fatalf("unexpected network request to %s", req.URL)
	return nil, nil
}
