// Package auth is the use-case layer over the auth gateway. All input
// preconditions are enforced here, before any network call; the gateway
// below trusts its arguments.
package auth

import (
	"context"
	"strings"

	domain "meetline-client/internal/domain/auth"
	"meetline-client/internal/gateway"

	xerrors "meetline-client/internal/pkg/errors"

	"go.uber.org/zap"
)

const minPasswordLen = 6

type AuthService struct {
	gw     *gateway.AuthGateway
	logger *zap.Logger
}

func NewAuthService(gw *gateway.AuthGateway, logger *zap.Logger) *AuthService {
	return &AuthService{gw: gw, logger: logger}
}

// Login validates the credentials' shape and authenticates.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, &xerrors.ValidationError{Field: "email", Reason: "must not be blank"}
	}
	if strings.TrimSpace(password) == "" {
		return nil, &xerrors.ValidationError{Field: "password", Reason: "must not be blank"}
	}

	user, err := s.gw.Login(ctx, email, password)
	if err != nil {
		s.logger.Warn("login failed", zap.String("email", email), zap.Error(err))
		return nil, err
	}
	return user, nil
}

// Register validates the signup form and creates the account.
func (s *AuthService) Register(ctx context.Context, name, email, phone, password string) (*domain.User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &xerrors.ValidationError{Field: "name", Reason: "must not be blank"}
	}
	if strings.TrimSpace(email) == "" {
		return nil, &xerrors.ValidationError{Field: "email", Reason: "must not be blank"}
	}
	if len(password) < minPasswordLen {
		return nil, &xerrors.ValidationError{Field: "password", Reason: "too short"}
	}

	user, err := s.gw.Register(ctx, name, email, phone, password)
	if err != nil {
		s.logger.Warn("registration failed", zap.String("email", email), zap.Error(err))
		return nil, err
	}
	return user, nil
}

// RequestPasswordReset asks for a reset email.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	if strings.TrimSpace(email) == "" {
		return &xerrors.ValidationError{Field: "email", Reason: "must not be blank"}
	}
	return s.gw.RequestPasswordReset(ctx, email)
}

// ResetPassword completes a reset with the emailed token.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if strings.TrimSpace(token) == "" {
		return &xerrors.ValidationError{Field: "token", Reason: "must not be blank"}
	}
	if len(newPassword) < minPasswordLen {
		return &xerrors.ValidationError{Field: "password", Reason: "too short"}
	}
	return s.gw.ResetPassword(ctx, token, newPassword)
}

// UpdateProfile pushes profile changes to the backend.
func (s *AuthService) UpdateProfile(ctx context.Context, user domain.User) (*domain.User, error) {
	if strings.TrimSpace(user.Name) == "" {
		return nil, &xerrors.ValidationError{Field: "name", Reason: "must not be blank"}
	}
	return s.gw.UpdateProfile(ctx, user)
}

// Refresh exchanges the stored refresh token for a new auth token.
func (s *AuthService) Refresh(ctx context.Context) error {
	return s.gw.Refresh(ctx)
}

// FetchProfile pulls the latest profile from the backend.
func (s *AuthService) FetchProfile(ctx context.Context) (*domain.User, error) {
	return s.gw.GetUserProfile(ctx)
}

// Logout clears the local session.
func (s *AuthService) Logout() error {
	return s.gw.Logout()
}

// LogoutEverywhere revokes the session remotely, then clears it locally.
func (s *AuthService) LogoutEverywhere(ctx context.Context) error {
	return s.gw.LogoutRemote(ctx)
}
