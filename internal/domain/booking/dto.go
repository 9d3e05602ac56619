// internal/domain/booking/dto.go
package booking

import "time"

// The backend still calls businesses "projects", professionals "employees"
// and service categories "channels" on the wire. Mapping to domain names
// happens here and nowhere else.

// BusinessDTO mirrors the public-project payload.
type BusinessDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Address     string  `json:"address,omitempty"`
	Phone       string  `json:"phone,omitempty"`
	AvatarURL   string  `json:"avatarUrl,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
}

func (d *BusinessDTO) ToBusiness() Business {
	return Business{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Address:     d.Address,
		Phone:       d.Phone,
		AvatarURL:   d.AvatarURL,
		Rating:      d.Rating,
	}
}

// ServiceDTO mirrors the public-service payload.
type ServiceDTO struct {
	ID          string `json:"id"`
	ProjectID   string `json:"projectId"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	DurationMin int    `json:"durationMinutes"`
	PriceCents  int64  `json:"priceCents"`
	Currency    string `json:"currency,omitempty"`
}

func (d *ServiceDTO) ToService() Service {
	return Service{
		ID:          d.ID,
		BusinessID:  d.ProjectID,
		Name:        d.Name,
		Description: d.Description,
		DurationMin: d.DurationMin,
		PriceCents:  d.PriceCents,
		Currency:    d.Currency,
	}
}

// ProfessionalDTO mirrors the public-employee payload.
type ProfessionalDTO struct {
	ID        string `json:"id"`
	ProjectID string `json:"projectId"`
	FullName  string `json:"fullName"`
	Title     string `json:"title,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

func (d *ProfessionalDTO) ToProfessional() Professional {
	return Professional{
		ID:         d.ID,
		BusinessID: d.ProjectID,
		FullName:   d.FullName,
		Title:      d.Title,
		AvatarURL:  d.AvatarURL,
	}
}

// TimeSlotDTO mirrors the availability payload.
type TimeSlotDTO struct {
	EmployeeID string `json:"employeeId"`
	Start      string `json:"start"` // RFC3339
	End        string `json:"end"`
}

func (d *TimeSlotDTO) ToTimeSlot() TimeSlot {
	return TimeSlot{
		ProfessionalID: d.EmployeeID,
		Start:          parseTime(d.Start),
		End:            parseTime(d.End),
	}
}

// AppointmentDTO mirrors the appointments payload.
type AppointmentDTO struct {
	ID         string `json:"id"`
	ProjectID  string `json:"projectId"`
	ServiceID  string `json:"serviceId"`
	EmployeeID string `json:"employeeId,omitempty"`
	Start      string `json:"start"`
	End        string `json:"end"`
	Status     string `json:"status"`
	Notes      string `json:"notes,omitempty"`
}

func (d *AppointmentDTO) ToAppointment() Appointment {
	return Appointment{
		ID:             d.ID,
		BusinessID:     d.ProjectID,
		ServiceID:      d.ServiceID,
		ProfessionalID: d.EmployeeID,
		Start:          parseTime(d.Start),
		End:            parseTime(d.End),
		Status:         d.Status,
		Notes:          d.Notes,
	}
}

// CreateAppointmentRequest is the booking payload. ClientRequestID lets the
// backend de-duplicate a resubmitted booking.
type CreateAppointmentRequest struct {
	ProjectID       string `json:"projectId"`
	ServiceID       string `json:"serviceId"`
	EmployeeID      string `json:"employeeId,omitempty"`
	Start           string `json:"start"` // RFC3339
	Notes           string `json:"notes,omitempty"`
	ClientRequestID string `json:"clientRequestId"`
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
