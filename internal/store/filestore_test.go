package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestEncryptedFileStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := NewEncryptedFileStore(dir, "test-secret")
	if err != nil {
		t.Fatalf("NewEncryptedFileStore: %v", err)
	}
	if err := s.Set("auth_token", "tok-1"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	reopened, err := NewEncryptedFileStore(dir, "test-secret")
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	v, ok := reopened.Get("auth_token")
	if !ok || v != "tok-1" {
		t.Errorf("Get after reopen = (%q, %v), want (%q, true)", v, ok, "tok-1")
	}
}

func TestEncryptedFileStore_CiphertextAtRest(t *testing.T) {
	dir := t.TempDir()

	s, err := NewEncryptedFileStore(dir, "test-secret")
	if err != nil {
		t.Fatalf("NewEncryptedFileStore: %v", err)
	}
	if err := s.Set("auth_token", "super-secret-token"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	blob, err := os.ReadFile(filepath.Join(dir, SecureNamespace+".bin"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if strings.Contains(string(blob), "super-secret-token") {
		t.Error("token value appears in plaintext on disk")
	}
	if strings.Contains(string(blob), "auth_token") {
		t.Error("key name appears in plaintext on disk")
	}
}

func TestEncryptedFileStore_WrongSecret(t *testing.T) {
	dir := t.TempDir()

	s, err := NewEncryptedFileStore(dir, "right-secret")
	if err != nil {
		t.Fatalf("NewEncryptedFileStore: %v", err)
	}
	if err := s.Set("k", "v"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if _, err := NewEncryptedFileStore(dir, "wrong-secret"); err == nil {
		t.Fatal("expected error opening store with wrong secret")
	}
}

func TestEncryptedFileStore_EmptySecret(t *testing.T) {
	if _, err := NewEncryptedFileStore(t.TempDir(), "  "); err == nil {
		t.Fatal("expected error for blank secret")
	}
}

func TestPlainFileStore_CorruptFileResets(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FallbackNamespace+".json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s, err := NewPlainFileStore(dir)
	if err != nil {
		t.Fatalf("NewPlainFileStore: %v", err)
	}
	if _, ok := s.Get("anything"); ok {
		t.Error("corrupt store should reset to empty")
	}
}

func TestOpen_FallsBackWithoutSecret(t *testing.T) {
	creds := Open(Config{Dir: t.TempDir(), Secret: ""}, zap.NewNop())

	if err := creds.SetOnboardingCompleted(); err != nil {
		t.Fatalf("SetOnboardingCompleted on fallback store: %v", err)
	}
	if ns := creds.kv.Namespace(); ns != FallbackNamespace {
		t.Errorf("namespace = %q, want %q", ns, FallbackNamespace)
	}
}

func TestOpen_UsesEncryptedNamespace(t *testing.T) {
	creds := Open(Config{Dir: t.TempDir(), Secret: "s3cret"}, zap.NewNop())

	if ns := creds.kv.Namespace(); ns != SecureNamespace {
		t.Errorf("namespace = %q, want %q", ns, SecureNamespace)
	}
}

func TestFileStore_DeleteAndClear(t *testing.T) {
	s, err := NewEncryptedFileStore(t.TempDir(), "secret")
	if err != nil {
		t.Fatalf("NewEncryptedFileStore: %v", err)
	}

	for _, kv := range [][2]string{{"a", "1"}, {"b", "2"}, {"c", "3"}} {
		if err := s.Set(kv[0], kv[1]); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}

	if err := s.Delete("a", "b"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := s.Get("a"); ok {
		t.Error("a survived Delete")
	}
	if v, ok := s.Get("c"); !ok || v != "3" {
		t.Error("c lost by Delete")
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, ok := s.Get("c"); ok {
		t.Error("c survived Clear")
	}
}
