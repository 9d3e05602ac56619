// Package transport implements the client-side request pipeline: common
// header stamping, bearer-token injection for non-public endpoints, and the
// session-clearing policy applied on authorization failures.
package transport

import (
	"net/http"

	"github.com/oklog/ulid/v2"
)

// HeaderTransport stamps every outgoing request with the common client
// metadata headers. Content-Type is set only on body-bearing verbs so that
// body-less requests stay simple and skip preflight.
type HeaderTransport struct {
	Base       http.RoundTripper
	Platform   string
	AppVersion string
}

func (t *HeaderTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())
	out.Header.Set("Accept", "application/json")
	out.Header.Set("X-Platform", t.Platform)
	out.Header.Set("X-App-Version", t.AppVersion)
	out.Header.Set("X-Request-Id", ulid.Make().String())

	switch req.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		out.Header.Set("Content-Type", "application/json")
	}

	return t.base().RoundTrip(out)
}

func (t *HeaderTransport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}
