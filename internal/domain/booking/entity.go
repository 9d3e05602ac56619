// internal/domain/booking/entity.go
package booking

import "time"

// Business is a bookable venue on the marketplace.
type Business struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Address     string  `json:"address,omitempty"`
	Phone       string  `json:"phone,omitempty"`
	AvatarURL   string  `json:"avatar_url,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
}

// Service is something a business offers, priced in minor currency units.
type Service struct {
	ID          string `json:"id"`
	BusinessID  string `json:"business_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	DurationMin int    `json:"duration_min"`
	PriceCents  int64  `json:"price_cents"`
	Currency    string `json:"currency,omitempty"`
}

// Professional is a staff member who performs services.
type Professional struct {
	ID         string `json:"id"`
	BusinessID string `json:"business_id"`
	FullName   string `json:"full_name"`
	Title      string `json:"title,omitempty"`
	AvatarURL  string `json:"avatar_url,omitempty"`
}

// TimeSlot is a bookable window for a professional.
type TimeSlot struct {
	ProfessionalID string    `json:"professional_id"`
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
}

// Appointment statuses as reported by the backend.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// Appointment is a booked service occurrence.
type Appointment struct {
	ID             string    `json:"id"`
	BusinessID     string    `json:"business_id"`
	ServiceID      string    `json:"service_id"`
	ProfessionalID string    `json:"professional_id,omitempty"`
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
	Status         string    `json:"status"`
	Notes          string    `json:"notes,omitempty"`
}
