package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"meetline-client/internal/apitest"
	"meetline-client/internal/config"
	"meetline-client/internal/gateway"
	"meetline-client/internal/store"

	authdomain "meetline-client/internal/domain/auth"
	xerrors "meetline-client/internal/pkg/errors"

	"go.uber.org/zap"
)

func newService(t *testing.T, srv *apitest.Server) *BookingService {
	t.Helper()

	creds := store.NewCredentialStore(store.NewMemoryStore(), zap.NewNop())
	if err := creds.SaveSession(authdomain.User{ID: "u42"}, "tok"); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}
	cfg := config.AppConfig{
		BaseURL:     srv.BaseURL(),
		HTTPTimeout: 5 * time.Second,
		Platform:    "test",
		AppVersion:  "0.0.0",
	}
	client := gateway.NewClient(cfg, creds, zap.NewNop())
	return NewBookingService(gateway.NewBookingGateway(client, zap.NewNop()), zap.NewNop())
}

func TestBook_Validation(t *testing.T) {
	srv := apitest.NewServer()
	defer srv.Close()

	svc := newService(t, srv)
	future := time.Now().Add(24 * time.Hour)

	tests := []struct {
		name       string
		businessID string
		serviceID  string
		start      time.Time
	}{
		{"blank business", "", "s1", future},
		{"blank service", "b1", "", future},
		{"zero start", "b1", "s1", time.Time{}},
		{"past start", "b1", "s1", time.Now().Add(-time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Book(context.Background(), tt.businessID, tt.serviceID, "", tt.start, "")
			var vErr *xerrors.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("err = %v, want *ValidationError", err)
			}
		})
	}
}

func TestBook_HappyPath(t *testing.T) {
	srv := apitest.NewServer()
	defer srv.Close()

	svc := newService(t, srv)

	appt, err := svc.Book(context.Background(), "b1", "s1", "p1", time.Now().Add(24*time.Hour), "notes")
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	if appt.ID == "" {
		t.Error("appointment id empty")
	}
}

func TestCancel_BlankID(t *testing.T) {
	srv := apitest.NewServer()
	defer srv.Close()

	svc := newService(t, srv)

	var vErr *xerrors.ValidationError
	if err := svc.Cancel(context.Background(), " "); !errors.As(err, &vErr) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
}
