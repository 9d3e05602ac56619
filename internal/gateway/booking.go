// internal/gateway/booking.go
package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"meetline-client/internal/domain/booking"

	xerrors "meetline-client/internal/pkg/errors"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// BookingGateway covers the marketplace browse endpoints (public, no
// credentials) and the appointment endpoints (authenticated).
type BookingGateway struct {
	client *Client
	logger *zap.Logger
}

func NewBookingGateway(client *Client, logger *zap.Logger) *BookingGateway {
	return &BookingGateway{client: client, logger: logger}
}

// ListBusinesses returns all bookable businesses.
func (g *BookingGateway) ListBusinesses(ctx context.Context) ([]booking.Business, error) {
	var out []booking.BusinessDTO
	if err := g.get(ctx, "public-project", &out); err != nil {
		return nil, err
	}

	businesses := make([]booking.Business, 0, len(out))
	for i := range out {
		businesses = append(businesses, out[i].ToBusiness())
	}
	return businesses, nil
}

// GetBusiness returns one business by id.
func (g *BookingGateway) GetBusiness(ctx context.Context, id string) (*booking.Business, error) {
	var out booking.BusinessDTO
	if err := g.get(ctx, "public-project/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	b := out.ToBusiness()
	return &b, nil
}

// ListServices returns the services a business offers.
func (g *BookingGateway) ListServices(ctx context.Context, businessID string) ([]booking.Service, error) {
	var out []booking.ServiceDTO
	if err := g.get(ctx, "public-service?projectId="+url.QueryEscape(businessID), &out); err != nil {
		return nil, err
	}

	services := make([]booking.Service, 0, len(out))
	for i := range out {
		services = append(services, out[i].ToService())
	}
	return services, nil
}

// ListProfessionals returns the staff of a business.
func (g *BookingGateway) ListProfessionals(ctx context.Context, businessID string) ([]booking.Professional, error) {
	var out []booking.ProfessionalDTO
	if err := g.get(ctx, "public-employee?projectId="+url.QueryEscape(businessID), &out); err != nil {
		return nil, err
	}

	pros := make([]booking.Professional, 0, len(out))
	for i := range out {
		pros = append(pros, out[i].ToProfessional())
	}
	return pros, nil
}

// GetAvailability returns bookable slots for a service on a given day.
func (g *BookingGateway) GetAvailability(ctx context.Context, businessID, serviceID string, day time.Time) ([]booking.TimeSlot, error) {
	q := url.Values{}
	q.Set("projectId", businessID)
	q.Set("serviceId", serviceID)
	q.Set("date", day.Format("2006-01-02"))

	var out []booking.TimeSlotDTO
	if err := g.get(ctx, "availability?"+q.Encode(), &out); err != nil {
		return nil, err
	}

	slots := make([]booking.TimeSlot, 0, len(out))
	for i := range out {
		slots = append(slots, out[i].ToTimeSlot())
	}
	return slots, nil
}

// CreateAppointment books a slot. The generated client request id lets the
// backend drop a duplicate submission of the same booking.
func (g *BookingGateway) CreateAppointment(ctx context.Context, businessID, serviceID, professionalID string, start time.Time, notes string) (*booking.Appointment, error) {
	req := booking.CreateAppointmentRequest{
		ProjectID:       businessID,
		ServiceID:       serviceID,
		EmployeeID:      professionalID,
		Start:           start.Format(time.RFC3339),
		Notes:           notes,
		ClientRequestID: ulid.Make().String(),
	}

	var out booking.AppointmentDTO
	status, env, err := g.client.do(ctx, http.MethodPost, "appointments", req, &out)
	if err != nil {
		return nil, err
	}
	if !ok(status) {
		return nil, g.statusError(status, env.ErrorMessage())
	}

	appt := out.ToAppointment()
	g.logger.Info("appointment created",
		zap.String("appointment_id", appt.ID),
		zap.String("business_id", appt.BusinessID),
	)
	return &appt, nil
}

// CancelAppointment cancels a booked appointment.
func (g *BookingGateway) CancelAppointment(ctx context.Context, id string) error {
	status, env, err := g.client.do(ctx, http.MethodDelete, "appointments/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return err
	}
	if !ok(status) {
		return g.statusError(status, env.ErrorMessage())
	}
	return nil
}

// ListAppointments returns the current user's appointments.
func (g *BookingGateway) ListAppointments(ctx context.Context) ([]booking.Appointment, error) {
	var out []booking.AppointmentDTO
	if err := g.get(ctx, "appointments", &out); err != nil {
		return nil, err
	}

	appts := make([]booking.Appointment, 0, len(out))
	for i := range out {
		appts = append(appts, out[i].ToAppointment())
	}
	return appts, nil
}

func (g *BookingGateway) get(ctx context.Context, path string, out any) error {
	status, env, err := g.client.do(ctx, http.MethodGet, path, nil, out)
	if err != nil {
		return err
	}
	if !ok(status) {
		return g.statusError(status, env.ErrorMessage())
	}
	return nil
}

func (g *BookingGateway) statusError(status int, message string) error {
	if status == http.StatusNotFound {
		return fmt.Errorf("%w: %s", xerrors.ErrNotFound, message)
	}
	return &xerrors.APIError{Status: status, Message: message}
}
