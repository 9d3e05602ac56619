package transport

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"meetline-client/internal/domain/auth"
	"meetline-client/internal/store"

	"go.uber.org/zap"
)

func newCreds(t *testing.T, token string) *store.CredentialStore {
	t.Helper()
	creds := store.NewCredentialStore(store.NewMemoryStore(), zap.NewNop())
	if token != "" {
		if err := creds.SaveSession(auth.User{ID: "u1"}, token); err != nil {
			t.Fatalf("SaveSession: %v", err)
		}
	}
	return creds
}

func newTokenClient(creds *store.CredentialStore) *http.Client {
	return &http.Client{Transport: &TokenTransport{
		Creds:  creds,
		Policy: NewAuthFailurePolicy(creds, zap.NewNop()),
	}}
}

func TestIsPublicPath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/api/v1/auth/login", true},
		{"/api/v1/auth/register", true},
		{"/api/v1/auth/forgot-password", true},
		{"/api/v1/public-project/42", true},
		{"/api/v1/public-employee", true},
		{"/api/v1/public-service", true},
		{"/api/v1/public-channel", true},
		{"/api/v1/availability", true},
		{"/api/v1/working-hours", true},
		{"/api/v1/appointments", false},
		{"/api/v1/users/me", false},
		{"/api/v1/auth/logout", false},
	}

	for _, tt := range tests {
		if got := IsPublicPath(tt.path); got != tt.want {
			t.Errorf("IsPublicPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestTokenTransport_PublicPathNeverAuthorized(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
	}))
	defer srv.Close()

	client := newTokenClient(newCreds(t, "tok"))

	resp, err := client.Get(srv.URL + "/api/v1/auth/login")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	resp.Body.Close()

	if got.Get("Authorization") != "" {
		t.Errorf("Authorization = %q on public path, want none", got.Get("Authorization"))
	}
}

func TestTokenTransport_AttachesBearer(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
	}))
	defer srv.Close()

	client := newTokenClient(newCreds(t, "tok-abc"))

	resp, err := client.Get(srv.URL + "/api/v1/appointments")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	resp.Body.Close()

	if v := got.Get("Authorization"); v != "Bearer tok-abc" {
		t.Errorf("Authorization = %q, want %q", v, "Bearer tok-abc")
	}
}

func TestTokenTransport_NoTokenForwardsUnmodified(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
	}))
	defer srv.Close()

	client := newTokenClient(newCreds(t, ""))

	resp, err := client.Get(srv.URL + "/api/v1/appointments")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	resp.Body.Close()

	if got.Get("Authorization") != "" {
		t.Errorf("Authorization = %q without stored token, want none", got.Get("Authorization"))
	}
}

func TestTokenTransport_UnauthorizedClearsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	creds := newCreds(t, "stale-token")
	client := newTokenClient(creds)

	resp, err := client.Get(srv.URL + "/api/v1/appointments")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
	if creds.IsLoggedIn() {
		t.Error("IsLoggedIn = true after 401 on authenticated request")
	}
}

func TestTokenTransport_UnauthorizedOnPublicPathKeepsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	creds := newCreds(t, "tok")
	client := newTokenClient(creds)

	resp, err := client.Get(srv.URL + "/api/v1/auth/login")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	resp.Body.Close()

	if !creds.IsLoggedIn() {
		t.Error("401 on a public path must not clear the session")
	}
}
