// internal/pkg/response/response.go
package response

import (
	"encoding/json"
	"fmt"
	"io"
)

// Envelope is the standard API response format. Every MeetLine endpoint is
// decoded through it; older endpoints that used to return bare DTOs were
// migrated server-side, so the client assumes the wrapped form everywhere.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
	Meta    json.RawMessage `json:"meta,omitempty"`
}

// Decode reads an envelope from r and, when out is non-nil and the envelope
// carries data, unmarshals the data payload into out.
func Decode(r io.Reader, out any) (*Envelope, error) {
	var env Envelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return nil, fmt.Errorf("failed to decode response envelope: %w", err)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &env, fmt.Errorf("failed to decode response data: %w", err)
		}
	}

	return &env, nil
}

// ErrorMessage returns the most specific failure text the envelope carries.
func (e *Envelope) ErrorMessage() string {
	if e == nil {
		return ""
	}
	if e.Error != "" {
		return e.Error
	}
	return e.Message
}
