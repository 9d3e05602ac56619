// internal/store/credentials.go
package store

import (
	"strconv"
	"time"

	"meetline-client/internal/domain/auth"

	"go.uber.org/zap"
)

// Session record keys. Everything except onboarding is session-scoped and
// removed on logout.
const (
	keyIsLoggedIn     = "is_logged_in"
	keyUserID         = "user_id"
	keyUserName       = "user_name"
	keyUserEmail      = "user_email"
	keyUserPhone      = "user_phone"
	keyUserAvatarURL  = "user_avatar_url"
	keyAuthToken      = "auth_token"
	keyRefreshToken   = "refresh_token"
	keyTokenExpiresAt = "token_expires_at"
	keyOnboardingDone = "onboarding_completed"
)

var sessionKeys = []string{
	keyUserID, keyUserName, keyUserEmail, keyUserPhone, keyUserAvatarURL,
	keyAuthToken, keyRefreshToken, keyTokenExpiresAt,
}

// Config selects where the session record lives.
type Config struct {
	Dir    string
	Secret string
}

// CredentialStore is the typed session API over a Store namespace. It is
// constructed once at startup and passed explicitly to every collaborator;
// there is no package-level instance.
type CredentialStore struct {
	kv     Store
	logger *zap.Logger
}

func NewCredentialStore(kv Store, logger *zap.Logger) *CredentialStore {
	return &CredentialStore{kv: kv, logger: logger}
}

// Open builds a CredentialStore over the encrypted file namespace, degrading
// to the plaintext fallback namespace when encryption setup fails, and to a
// volatile in-memory namespace when even that cannot be opened. Degraded
// modes keep the app functional; they are logged, never fatal.
func Open(cfg Config, logger *zap.Logger) *CredentialStore {
	kv, err := NewEncryptedFileStore(cfg.Dir, cfg.Secret)
	if err == nil {
		return NewCredentialStore(kv, logger)
	}
	logger.Warn("encrypted session store unavailable, falling back to plaintext",
		zap.Error(err))

	fb, err := NewPlainFileStore(cfg.Dir)
	if err == nil {
		return NewCredentialStore(fb, logger)
	}
	logger.Error("fallback session store unavailable, session will not survive restart",
		zap.Error(err))

	return NewCredentialStore(NewMemoryStore(), logger)
}

// SaveSession replaces the logged-in user and auth token. Refresh token and
// expiry are separate patch operations (SetRefreshToken, SetTokenExpiry) so
// that an omitted value visibly means "leave the stored one alone".
func (s *CredentialStore) SaveSession(user auth.User, token string) error {
	fields := map[string]string{
		keyIsLoggedIn:    "true",
		keyUserID:        user.ID,
		keyUserName:      user.Name,
		keyUserEmail:     user.Email,
		keyUserPhone:     user.Phone,
		keyUserAvatarURL: user.AvatarURL,
		keyAuthToken:     token,
	}
	return s.setAll(fields)
}

// SetRefreshToken patches the stored refresh token.
func (s *CredentialStore) SetRefreshToken(token string) error {
	return s.kv.Set(keyRefreshToken, token)
}

// SetTokenExpiry patches the stored token expiry.
func (s *CredentialStore) SetTokenExpiry(t time.Time) error {
	return s.kv.Set(keyTokenExpiresAt, strconv.FormatInt(t.Unix(), 10))
}

// UpdateAuthToken replaces the auth token only. Expiry is patched separately
// via SetTokenExpiry.
func (s *CredentialStore) UpdateAuthToken(token string) error {
	return s.kv.Set(keyAuthToken, token)
}

// UpdateUser overwrites the profile fields only; id, login flag and tokens
// are never touched here.
func (s *CredentialStore) UpdateUser(user auth.User) error {
	fields := map[string]string{
		keyUserName:      user.Name,
		keyUserEmail:     user.Email,
		keyUserPhone:     user.Phone,
		keyUserAvatarURL: user.AvatarURL,
	}
	return s.setAll(fields)
}

func (s *CredentialStore) IsLoggedIn() bool {
	v, ok := s.kv.Get(keyIsLoggedIn)
	return ok && v == "true"
}

// CurrentUser reconstructs the stored user, or nil when logged out. Missing
// fields come back as empty strings; the record is tolerant of partial
// writes by construction.
func (s *CredentialStore) CurrentUser() *auth.User {
	if !s.IsLoggedIn() {
		return nil
	}
	u := auth.User{
		ID:        s.get(keyUserID),
		Name:      s.get(keyUserName),
		Email:     s.get(keyUserEmail),
		Phone:     s.get(keyUserPhone),
		AvatarURL: s.get(keyUserAvatarURL),
	}
	return &u
}

func (s *CredentialStore) AuthToken() string    { return s.get(keyAuthToken) }
func (s *CredentialStore) RefreshToken() string { return s.get(keyRefreshToken) }

// IsTokenExpired reports whether a stored expiry has passed. A missing or
// zero expiry means the token never expires.
func (s *CredentialStore) IsTokenExpired() bool {
	raw, ok := s.kv.Get(keyTokenExpiresAt)
	if !ok {
		return false
	}
	exp, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || exp <= 0 {
		return false
	}
	return exp <= time.Now().Unix()
}

func (s *CredentialStore) SetOnboardingCompleted() error {
	return s.kv.Set(keyOnboardingDone, "true")
}

func (s *CredentialStore) OnboardingCompleted() bool {
	v, ok := s.kv.Get(keyOnboardingDone)
	return ok && v == "true"
}

// Logout clears the session-scoped fields. Onboarding state and any other
// non-session keys survive.
func (s *CredentialStore) Logout() error {
	if err := s.kv.Set(keyIsLoggedIn, "false"); err != nil {
		return err
	}
	return s.kv.Delete(sessionKeys...)
}

// ClearAll wipes every stored key, onboarding state included.
func (s *CredentialStore) ClearAll() error {
	return s.kv.Clear()
}

// Snapshot returns the full session record as currently stored.
func (s *CredentialStore) Snapshot() auth.Session {
	sess := auth.Session{
		IsLoggedIn:          s.IsLoggedIn(),
		UserID:              s.get(keyUserID),
		UserName:            s.get(keyUserName),
		UserEmail:           s.get(keyUserEmail),
		UserPhone:           s.get(keyUserPhone),
		UserAvatarURL:       s.get(keyUserAvatarURL),
		AuthToken:           s.get(keyAuthToken),
		RefreshToken:        s.get(keyRefreshToken),
		OnboardingCompleted: s.OnboardingCompleted(),
	}
	if raw, ok := s.kv.Get(keyTokenExpiresAt); ok {
		if exp, err := strconv.ParseInt(raw, 10, 64); err == nil && exp > 0 {
			t := time.Unix(exp, 0)
			sess.TokenExpiresAt = &t
		}
	}
	return sess
}

func (s *CredentialStore) get(key string) string {
	v, _ := s.kv.Get(key)
	return v
}

func (s *CredentialStore) setAll(fields map[string]string) error {
	for k, v := range fields {
		if err := s.kv.Set(k, v); err != nil {
			s.logger.Error("session write failed", zap.String("key", k), zap.Error(err))
			return err
		}
	}
	return nil
}
