// internal/store/filestore.go
package store

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/crypto/scrypt"
)

const (
	// SecureNamespace holds the session record encrypted at rest.
	SecureNamespace = "meetline_secure_session"
	// FallbackNamespace holds the session record in the clear when the
	// encrypted store cannot be initialized.
	FallbackNamespace = "meetline_session_fallback"
)

var fileMagic = []byte("MLSS01")

const saltSize = 16

// FileStore is a file-backed Store. With a secretBox it seals the whole
// serialized namespace with AES-GCM, so both keys and values are encrypted
// and authenticated at rest; without one it writes plain JSON.
type FileStore struct {
	mu   sync.Mutex
	path string
	ns   string
	box  *secretBox
	data map[string]string
}

type secretBox struct {
	aead cipher.AEAD
	salt []byte
}

func newSecretBox(secret string, salt []byte) (*secretBox, error) {
	key, err := scrypt.Key([]byte(secret), salt, 1<<15, 8, 1, 32)
	if err != nil {
		return nil, fmt.Errorf("failed to derive store key: %w", err)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to init cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to init gcm: %w", err)
	}
	return &secretBox{aead: aead, salt: salt}, nil
}

// NewEncryptedFileStore opens (or creates) the encrypted session namespace
// under dir. Any failure here — blank secret, unreadable file, wrong key,
// tampered ciphertext — is an initialization failure the caller is expected
// to degrade from, not a fatal error.
func NewEncryptedFileStore(dir, secret string) (*FileStore, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("store secret is empty")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create store dir: %w", err)
	}

	s := &FileStore{
		path: filepath.Join(dir, SecureNamespace+".bin"),
		ns:   SecureNamespace,
		data: make(map[string]string),
	}

	blob, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		salt := make([]byte, saltSize)
		if _, err := rand.Read(salt); err != nil {
			return nil, fmt.Errorf("failed to generate salt: %w", err)
		}
		box, err := newSecretBox(secret, salt)
		if err != nil {
			return nil, err
		}
		s.box = box
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}

	if len(blob) < len(fileMagic)+saltSize || string(blob[:len(fileMagic)]) != string(fileMagic) {
		return nil, errors.New("store file is corrupt")
	}
	salt := blob[len(fileMagic) : len(fileMagic)+saltSize]
	sealed := blob[len(fileMagic)+saltSize:]

	box, err := newSecretBox(secret, salt)
	if err != nil {
		return nil, err
	}
	if len(sealed) < box.aead.NonceSize() {
		return nil, errors.New("store file is truncated")
	}
	nonce, ct := sealed[:box.aead.NonceSize()], sealed[box.aead.NonceSize():]
	plain, err := box.aead.Open(nil, nonce, ct, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to unseal store: %w", err)
	}
	if err := json.Unmarshal(plain, &s.data); err != nil {
		return nil, fmt.Errorf("failed to decode store: %w", err)
	}
	s.box = box
	return s, nil
}

// NewPlainFileStore opens (or creates) the unencrypted fallback namespace
// under dir. A corrupt file resets to an empty namespace rather than failing;
// this store exists so the app keeps working when everything else went wrong.
func NewPlainFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create store dir: %w", err)
	}

	s := &FileStore{
		path: filepath.Join(dir, FallbackNamespace+".json"),
		ns:   FallbackNamespace,
		data: make(map[string]string),
	}

	blob, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}
	if err := json.Unmarshal(blob, &s.data); err != nil {
		s.data = make(map[string]string)
	}
	return s, nil
}

func (s *FileStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok
}

func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return s.persistLocked()
}

func (s *FileStore) Delete(keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		delete(s.data, k)
	}
	return s.persistLocked()
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[string]string)
	return s.persistLocked()
}

func (s *FileStore) Namespace() string { return s.ns }

func (s *FileStore) persistLocked() error {
	plain, err := json.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("failed to encode store: %w", err)
	}

	var blob []byte
	if s.box != nil {
		nonce := make([]byte, s.box.aead.NonceSize())
		if _, err := rand.Read(nonce); err != nil {
			return fmt.Errorf("failed to generate nonce: %w", err)
		}
		sealed := s.box.aead.Seal(nonce, nonce, plain, nil)
		blob = append(append(append([]byte{}, fileMagic...), s.box.salt...), sealed...)
	} else {
		blob = plain
	}

	// Write-then-rename so a crash mid-write never leaves a torn file.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, blob, 0o600); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}
