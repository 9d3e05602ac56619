// internal/transport/token.go
package transport

import (
	"net/http"
	"strings"

	"meetline-client/internal/store"
)

// publicPaths are substrings of endpoints that must never receive
// credentials: the auth flows themselves plus the public browse/read routes.
var publicPaths = []string{
	"auth/login",
	"auth/register",
	"auth/forgot-password",
	"auth/reset-password",
	"availability",
	"working-hours",
	"public-project",
	"public-employee",
	"public-service",
	"public-channel",
}

// IsPublicPath reports whether a request path matches the public allow-list.
func IsPublicPath(path string) bool {
	for _, p := range publicPaths {
		if strings.Contains(path, p) {
			return true
		}
	}
	return false
}

// TokenTransport attaches the stored bearer token to non-public requests and
// hands authorization failures to the policy. The 401 reaction is blanket:
// any authenticated request rejected by any backend clears the session.
type TokenTransport struct {
	Base   http.RoundTripper
	Creds  *store.CredentialStore
	Policy *AuthFailurePolicy
}

func (t *TokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	public := IsPublicPath(req.URL.Path)

	out := req
	if !public {
		if token := strings.TrimSpace(t.Creds.AuthToken()); token != "" {
			out = req.Clone(req.Context())
			out.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := t.base().RoundTrip(out)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized && !public && t.Policy != nil {
		t.Policy.OnUnauthorized(req)
	}

	return resp, nil
}

func (t *TokenTransport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}
