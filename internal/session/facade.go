// Package session exposes the synchronous read side of the credential store:
// who is logged in right now, answered without any I/O beyond the local
// store. UI-adjacent code uses it to decide what to render.
package session

import (
	"meetline-client/internal/domain/auth"
	"meetline-client/internal/store"
)

type Facade struct {
	creds *store.CredentialStore
}

func NewFacade(creds *store.CredentialStore) *Facade {
	return &Facade{creds: creds}
}

// IsLoggedIn reports the stored login flag.
func (f *Facade) IsLoggedIn() bool {
	return f.creds.IsLoggedIn()
}

// CurrentUser returns the cached user snapshot, or nil when logged out.
// Never triggers a network fetch.
func (f *Facade) CurrentUser() *auth.User {
	return f.creds.CurrentUser()
}

// OnboardingCompleted reports whether the first-run flow has been finished.
func (f *Facade) OnboardingCompleted() bool {
	return f.creds.OnboardingCompleted()
}
