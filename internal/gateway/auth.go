// internal/gateway/auth.go
package gateway

import (
	"context"
	"net/http"
	"time"

	"meetline-client/internal/domain/auth"
	"meetline-client/internal/pkg/jwtclaims"
	"meetline-client/internal/store"

	xerrors "meetline-client/internal/pkg/errors"

	"go.uber.org/zap"
)

// AuthGateway performs the auth round-trips and persists their results into
// the credential store. Input validation lives one layer up, in the auth
// service; the gateway trusts its arguments.
type AuthGateway struct {
	client *Client
	creds  *store.CredentialStore
	logger *zap.Logger
}

func NewAuthGateway(client *Client, creds *store.CredentialStore, logger *zap.Logger) *AuthGateway {
	return &AuthGateway{client: client, creds: creds, logger: logger}
}

// Login authenticates with email and password and establishes a session.
func (g *AuthGateway) Login(ctx context.Context, email, password string) (*auth.User, error) {
	var out auth.AuthResponse
	status, env, err := g.client.do(ctx, http.MethodPost, "auth/login",
		auth.LoginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	if !ok(status) {
		return nil, &xerrors.AuthError{Status: status, Message: env.ErrorMessage()}
	}
	return g.persistSession(&out)
}

// Register creates an account and establishes a session.
func (g *AuthGateway) Register(ctx context.Context, name, email, phone, password string) (*auth.User, error) {
	var out auth.AuthResponse
	status, env, err := g.client.do(ctx, http.MethodPost, "auth/register",
		auth.RegisterRequest{FullName: name, Email: email, Phone: phone, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	if !ok(status) {
		return nil, &xerrors.AuthError{Status: status, Message: env.ErrorMessage()}
	}
	return g.persistSession(&out)
}

// Refresh exchanges the stored refresh token for a new auth token.
func (g *AuthGateway) Refresh(ctx context.Context) error {
	refresh := g.creds.RefreshToken()
	if refresh == "" {
		return xerrors.ErrSessionExpired
	}

	var out auth.AuthResponse
	status, env, err := g.client.do(ctx, http.MethodPost, "auth/refresh",
		auth.RefreshRequest{RefreshToken: refresh}, &out)
	if err != nil {
		return err
	}
	if !ok(status) {
		return &xerrors.AuthError{Status: status, Message: env.ErrorMessage()}
	}

	if err := g.creds.UpdateAuthToken(out.Token); err != nil {
		return xerrors.Wrap(err, "failed to store refreshed token")
	}
	if out.RefreshToken != "" {
		if err := g.creds.SetRefreshToken(out.RefreshToken); err != nil {
			return xerrors.Wrap(err, "failed to store rotated refresh token")
		}
	}
	if out.ExpiresAt > 0 {
		if err := g.creds.SetTokenExpiry(time.Unix(out.ExpiresAt, 0)); err != nil {
			return xerrors.Wrap(err, "failed to store token expiry")
		}
	}
	return nil
}

// RequestPasswordReset asks the backend to send a reset email.
func (g *AuthGateway) RequestPasswordReset(ctx context.Context, email string) error {
	status, env, err := g.client.do(ctx, http.MethodPost, "auth/forgot-password",
		auth.ForgotPasswordRequest{Email: email}, nil)
	if err != nil {
		return err
	}
	if !ok(status) {
		return &xerrors.AuthError{Status: status, Message: env.ErrorMessage()}
	}
	return nil
}

// ResetPassword completes a reset started by RequestPasswordReset.
func (g *AuthGateway) ResetPassword(ctx context.Context, token, newPassword string) error {
	status, env, err := g.client.do(ctx, http.MethodPost, "auth/reset-password",
		auth.ResetPasswordRequest{Token: token, NewPassword: newPassword}, nil)
	if err != nil {
		return err
	}
	if !ok(status) {
		return &xerrors.AuthError{Status: status, Message: env.ErrorMessage()}
	}
	return nil
}

// GetUserProfile fetches the current user and refreshes the stored profile.
func (g *AuthGateway) GetUserProfile(ctx context.Context) (*auth.User, error) {
	var out auth.UserDTO
	status, env, err := g.client.do(ctx, http.MethodGet, "users/me", nil, &out)
	if err != nil {
		return nil, err
	}
	if !ok(status) {
		return nil, &xerrors.AuthError{Status: status, Message: env.ErrorMessage()}
	}

	user := out.ToUser()
	if err := g.creds.UpdateUser(user); err != nil {
		return nil, xerrors.Wrap(err, "failed to store fetched profile")
	}
	return &user, nil
}

// UpdateProfile sends the full user to the backend and mirrors the accepted
// profile locally.
func (g *AuthGateway) UpdateProfile(ctx context.Context, user auth.User) (*auth.User, error) {
	var out auth.UserDTO
	status, env, err := g.client.do(ctx, http.MethodPut, "users/me", auth.FromUser(user), &out)
	if err != nil {
		return nil, err
	}
	if !ok(status) {
		return nil, &xerrors.AuthError{Status: status, Message: env.ErrorMessage()}
	}

	updated := out.ToUser()
	if err := g.creds.UpdateUser(updated); err != nil {
		return nil, xerrors.Wrap(err, "failed to store updated profile")
	}
	return &updated, nil
}

// Logout clears the local session. No network call.
func (g *AuthGateway) Logout() error {
	return g.creds.Logout()
}

// LogoutRemote additionally tells the backend to revoke the session. The
// remote call is best effort; the local session is cleared regardless.
func (g *AuthGateway) LogoutRemote(ctx context.Context) error {
	if status, _, err := g.client.do(ctx, http.MethodPost, "auth/logout", nil, nil); err != nil || !ok(status) {
		g.logger.Warn("remote logout failed, clearing local session anyway",
			zap.Int("status", status), zap.Error(err))
	}
	return g.creds.Logout()
}

func (g *AuthGateway) IsLoggedIn() bool        { return g.creds.IsLoggedIn() }
func (g *AuthGateway) CurrentUser() *auth.User { return g.creds.CurrentUser() }

func (g *AuthGateway) persistSession(resp *auth.AuthResponse) (*auth.User, error) {
	// The user id travels only inside the JWT. Decode failure substitutes
	// the sentinel; login never fails on it.
	id := jwtclaims.Subject(resp.Token)
	user := resp.ToUser(id)

	if err := g.creds.SaveSession(user, resp.Token); err != nil {
		return nil, xerrors.Wrap(err, "failed to persist session")
	}
	if resp.RefreshToken != "" {
		if err := g.creds.SetRefreshToken(resp.RefreshToken); err != nil {
			return nil, xerrors.Wrap(err, "failed to persist refresh token")
		}
	}
	if resp.ExpiresAt > 0 {
		if err := g.creds.SetTokenExpiry(time.Unix(resp.ExpiresAt, 0)); err != nil {
			return nil, xerrors.Wrap(err, "failed to persist token expiry")
		}
	}

	g.logger.Info("session established", zap.String("user_id", id))
	return &user, nil
}
