// internal/domain/auth/entity.go
package auth

import "time"

// User is the in-memory account snapshot. Every consumer receives a value
// copy; nothing holds a shared mutable reference to it.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Session is the persisted session record as stored by the credential store.
// OnboardingCompleted survives logout; everything else is session-scoped.
type Session struct {
	IsLoggedIn          bool       `json:"is_logged_in"`
	UserID              string     `json:"user_id"`
	UserName            string     `json:"user_name"`
	UserEmail           string     `json:"user_email"`
	UserPhone           string     `json:"user_phone"`
	UserAvatarURL       string     `json:"user_avatar_url,omitempty"`
	AuthToken           string     `json:"auth_token"`
	RefreshToken        string     `json:"refresh_token,omitempty"`
	TokenExpiresAt      *time.Time `json:"token_expires_at,omitempty"`
	OnboardingCompleted bool       `json:"onboarding_completed"`
}
