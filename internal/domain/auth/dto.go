// internal/domain/auth/dto.go
package auth

import "time"

// LoginRequest for user login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest for user registration
type RegisterRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// RefreshRequest for exchanging a refresh token
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// ForgotPasswordRequest for requesting a reset email
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest for completing a password reset
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// AuthResponse is the backend payload for login, register and refresh calls.
// Field names follow the backend's camelCase convention.
type AuthResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken,omitempty"`
	ExpiresAt    int64  `json:"expiresAt,omitempty"` // unix seconds, 0 means no expiry
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	AvatarURL    string `json:"avatarUrl,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty"` // RFC3339, sometimes absent
}

// ToUser maps the response to a domain User. The backend does not echo the
// user id; it comes from the token's sub claim, extracted by the caller.
func (r *AuthResponse) ToUser(id string) User {
	return User{
		ID:        id,
		Name:      r.FullName,
		Email:     r.Email,
		Phone:     r.Phone,
		AvatarURL: r.AvatarURL,
		CreatedAt: parseTime(r.CreatedAt),
	}
}

// UserDTO is the backend payload for profile fetch/update calls.
type UserDTO struct {
	ID        string `json:"id"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// ToUser maps a profile DTO to a domain User. Missing fields map to zero
// values; a broken timestamp never fails the mapping.
func (d *UserDTO) ToUser() User {
	return User{
		ID:        d.ID,
		Name:      d.FullName,
		Email:     d.Email,
		Phone:     d.Phone,
		AvatarURL: d.AvatarURL,
		CreatedAt: parseTime(d.CreatedAt),
	}
}

// FromUser builds the update payload sent to the backend.
func FromUser(u User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		FullName:  u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		AvatarURL: u.AvatarURL,
	}
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
