package gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"meetline-client/internal/apitest"
	"meetline-client/internal/config"
	"meetline-client/internal/store"

	xerrors "meetline-client/internal/pkg/errors"

	"go.uber.org/zap"
)

func newBookingFixture(t *testing.T, srv *apitest.Server, loggedIn bool) *BookingGateway {
	t.Helper()

	creds := store.NewCredentialStore(store.NewMemoryStore(), zap.NewNop())
	cfg := config.AppConfig{
		BaseURL:     srv.BaseURL(),
		HTTPTimeout: 5 * time.Second,
		Platform:    "test",
		AppVersion:  "0.0.0",
	}
	client := NewClient(cfg, creds, zap.NewNop())

	if loggedIn {
		gw := NewAuthGateway(client, creds, zap.NewNop())
		if _, err := gw.Login(context.Background(), "a@b.com", "secret1"); err != nil {
			t.Fatalf("Login: %v", err)
		}
	}
	return NewBookingGateway(client, zap.NewNop())
}

func TestListBusinesses(t *testing.T) {
	srv := apitest.NewServer()
	defer srv.Close()

	gw := newBookingFixture(t, srv, false)

	businesses, err := gw.ListBusinesses(context.Background())
	if err != nil {
		t.Fatalf("ListBusinesses: %v", err)
	}
	if len(businesses) != 2 {
		t.Fatalf("got %d businesses, want 2", len(businesses))
	}
	if businesses[0].Name != "Fade Lounge" || businesses[0].Rating != 4.8 {
		t.Errorf("businesses[0] = %+v", businesses[0])
	}
}

func TestGetBusiness_NotFound(t *testing.T) {
	srv := apitest.NewServer()
	defer srv.Close()

	gw := newBookingFixture(t, srv, false)

	if _, err := gw.GetBusiness(context.Background(), "nope"); !errors.Is(err, xerrors.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestListServicesAndProfessionals(t *testing.T) {
	srv := apitest.NewServer()
	defer srv.Close()

	gw := newBookingFixture(t, srv, false)

	services, err := gw.ListServices(context.Background(), "b1")
	if err != nil {
		t.Fatalf("ListServices: %v", err)
	}
	if len(services) != 1 || services[0].BusinessID != "b1" || services[0].DurationMin != 30 {
		t.Errorf("services = %+v", services)
	}

	pros, err := gw.ListProfessionals(context.Background(), "b1")
	if err != nil {
		t.Fatalf("ListProfessionals: %v", err)
	}
	if len(pros) != 1 || pros[0].FullName != "Marios" {
		t.Errorf("pros = %+v", pros)
	}
}

func TestGetAvailability(t *testing.T) {
	srv := apitest.NewServer()
	defer srv.Close()

	gw := newBookingFixture(t, srv, false)

	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	slots, err := gw.GetAvailability(context.Background(), "b1", "s1", day)
	if err != nil {
		t.Fatalf("GetAvailability: %v", err)
	}
	if len(slots) != 1 {
		t.Fatalf("got %d slots, want 1", len(slots))
	}
	if slots[0].ProfessionalID != "p1" || slots[0].Start.IsZero() {
		t.Errorf("slots[0] = %+v", slots[0])
	}
}

func TestCreateAppointment(t *testing.T) {
	srv := apitest.NewServer()
	defer srv.Close()

	gw := newBookingFixture(t, srv, true)

	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	appt, err := gw.CreateAppointment(context.Background(), "b1", "s1", "p1", start, "first visit")
	if err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}
	if appt.ID != "a-new" || appt.Status != "pending" || appt.BusinessID != "b1" {
		t.Errorf("appt = %+v", appt)
	}
}

func TestCreateAppointment_RequiresAuth(t *testing.T) {
	srv := apitest.NewServer()
	defer srv.Close()

	gw := newBookingFixture(t, srv, false)

	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	_, err := gw.CreateAppointment(context.Background(), "b1", "s1", "p1", start, "")
	var apiErr *xerrors.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.Status != 401 {
		t.Errorf("Status = %d, want 401", apiErr.Status)
	}
}

func TestCancelAppointment(t *testing.T) {
	srv := apitest.NewServer()
	defer srv.Close()

	gw := newBookingFixture(t, srv, true)

	if err := gw.CancelAppointment(context.Background(), "a1"); err != nil {
		t.Fatalf("CancelAppointment: %v", err)
	}
	if err := gw.CancelAppointment(context.Background(), "missing"); !errors.Is(err, xerrors.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestListAppointments(t *testing.T) {
	srv := apitest.NewServer()
	defer srv.Close()

	gw := newBookingFixture(t, srv, true)

	appts, err := gw.ListAppointments(context.Background())
	if err != nil {
		t.Fatalf("ListAppointments: %v", err)
	}
	if len(appts) != 1 || appts[0].Status != "confirmed" {
		t.Errorf("appts = %+v", appts)
	}
}
