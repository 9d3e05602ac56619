// internal/transport/policy.go
package transport

import (
	"net/http"

	"meetline-client/internal/store"

	"go.uber.org/zap"
)

// AuthFailurePolicy decides what happens when the backend rejects an
// authenticated request. It exists as a named object so the side effect is
// visible and testable instead of buried inside the transport.
type AuthFailurePolicy struct {
	creds  *store.CredentialStore
	logger *zap.Logger
}

func NewAuthFailurePolicy(creds *store.CredentialStore, logger *zap.Logger) *AuthFailurePolicy {
	return &AuthFailurePolicy{creds: creds, logger: logger}
}

// OnUnauthorized clears the stored session. The subsequent 401 surfaces to
// the caller unchanged; the UI layer reacts to the now-logged-out state.
func (p *AuthFailurePolicy) OnUnauthorized(req *http.Request) {
	p.logger.Warn("authenticated request rejected, clearing session",
		zap.String("path", req.URL.Path),
	)
	if err := p.creds.Logout(); err != nil {
		p.logger.Error("failed to clear session after 401", zap.Error(err))
	}
}
