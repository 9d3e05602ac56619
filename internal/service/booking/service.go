// Package booking is the use-case layer over the booking gateway.
package booking

import (
	"context"
	"strings"
	"time"

	domain "meetline-client/internal/domain/booking"
	"meetline-client/internal/gateway"

	xerrors "meetline-client/internal/pkg/errors"

	"go.uber.org/zap"
)

type BookingService struct {
	gw     *gateway.BookingGateway
	logger *zap.Logger
}

func NewBookingService(gw *gateway.BookingGateway, logger *zap.Logger) *BookingService {
	return &BookingService{gw: gw, logger: logger}
}

func (s *BookingService) ListBusinesses(ctx context.Context) ([]domain.Business, error) {
	return s.gw.ListBusinesses(ctx)
}

func (s *BookingService) GetBusiness(ctx context.Context, id string) (*domain.Business, error) {
	if strings.TrimSpace(id) == "" {
		return nil, &xerrors.ValidationError{Field: "business id", Reason: "must not be blank"}
	}
	return s.gw.GetBusiness(ctx, id)
}

func (s *BookingService) ListServices(ctx context.Context, businessID string) ([]domain.Service, error) {
	if strings.TrimSpace(businessID) == "" {
		return nil, &xerrors.ValidationError{Field: "business id", Reason: "must not be blank"}
	}
	return s.gw.ListServices(ctx, businessID)
}

func (s *BookingService) ListProfessionals(ctx context.Context, businessID string) ([]domain.Professional, error) {
	if strings.TrimSpace(businessID) == "" {
		return nil, &xerrors.ValidationError{Field: "business id", Reason: "must not be blank"}
	}
	return s.gw.ListProfessionals(ctx, businessID)
}

func (s *BookingService) GetAvailability(ctx context.Context, businessID, serviceID string, day time.Time) ([]domain.TimeSlot, error) {
	if strings.TrimSpace(businessID) == "" {
		return nil, &xerrors.ValidationError{Field: "business id", Reason: "must not be blank"}
	}
	if strings.TrimSpace(serviceID) == "" {
		return nil, &xerrors.ValidationError{Field: "service id", Reason: "must not be blank"}
	}
	return s.gw.GetAvailability(ctx, businessID, serviceID, day)
}

// Book validates the booking form and creates the appointment.
func (s *BookingService) Book(ctx context.Context, businessID, serviceID, professionalID string, start time.Time, notes string) (*domain.Appointment, error) {
	if strings.TrimSpace(businessID) == "" {
		return nil, &xerrors.ValidationError{Field: "business id", Reason: "must not be blank"}
	}
	if strings.TrimSpace(serviceID) == "" {
		return nil, &xerrors.ValidationError{Field: "service id", Reason: "must not be blank"}
	}
	if start.IsZero() || start.Before(time.Now()) {
		return nil, &xerrors.ValidationError{Field: "start", Reason: "must be in the future"}
	}

	appt, err := s.gw.CreateAppointment(ctx, businessID, serviceID, professionalID, start, notes)
	if err != nil {
		s.logger.Warn("booking failed",
			zap.String("business_id", businessID),
			zap.String("service_id", serviceID),
			zap.Error(err),
		)
		return nil, err
	}
	return appt, nil
}

func (s *BookingService) Cancel(ctx context.Context, appointmentID string) error {
	if strings.TrimSpace(appointmentID) == "" {
		return &xerrors.ValidationError{Field: "appointment id", Reason: "must not be blank"}
	}
	return s.gw.CancelAppointment(ctx, appointmentID)
}

func (s *BookingService) ListAppointments(ctx context.Context) ([]domain.Appointment, error) {
	return s.gw.ListAppointments(ctx)
}
