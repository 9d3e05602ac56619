// Package realtime receives appointment status events pushed by the backend
// over a websocket. One connection, no reconnect loop: when the read fails
// or the context ends, Listen returns and the caller decides what next.
package realtime

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"meetline-client/internal/domain/booking"
	"meetline-client/internal/store"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const maxMessageSize = 64 * 1024 // 64KB

// EventType labels pushed events.
type EventType string

const (
	EventAppointmentConfirmed EventType = "appointment:confirmed"
	EventAppointmentCancelled EventType = "appointment:cancelled"
	EventAppointmentReminder  EventType = "appointment:reminder"
)

// Event is one pushed appointment update.
type Event struct {
	Type        EventType              `json:"type"`
	Appointment booking.AppointmentDTO `json:"appointment"`
	SentAt      time.Time              `json:"sent_at"`
}

// Handler consumes one event. It runs on the read goroutine; keep it short.
type Handler func(Event)

type Subscriber struct {
	url    string
	creds  *store.CredentialStore
	logger *zap.Logger
}

func NewSubscriber(url string, creds *store.CredentialStore, logger *zap.Logger) *Subscriber {
	return &Subscriber{url: url, creds: creds, logger: logger}
}

// Listen connects with the stored bearer token and delivers events to the
// handler until the context is cancelled or the connection drops.
func (s *Subscriber) Listen(ctx context.Context, handler Handler) error {
	token := strings.TrimSpace(s.creds.AuthToken())
	if token == "" {
		return fmt.Errorf("no auth token, cannot subscribe")
	}

	// The watcher goroutine below must exit when Listen returns for any
	// reason, not only when the caller's context ends.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, s.url, header)
	if err != nil {
		if resp != nil {
			return fmt.Errorf("websocket dial failed with status %d: %w", resp.StatusCode, err)
		}
		return fmt.Errorf("websocket dial failed: %w", err)
	}
	defer conn.Close()
	conn.SetReadLimit(maxMessageSize)

	s.logger.Info("subscribed to appointment events", zap.String("url", s.url))

	// Unblock ReadJSON when the caller gives up.
	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	for {
		var ev Event
		if err := conn.ReadJSON(&ev); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("event stream closed: %w", err)
		}
		handler(ev)
	}
}
