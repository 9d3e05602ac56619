package response

import (
	"strings"
	"testing"
)

func TestDecode(t *testing.T) {
	body := `{"success":true,"message":"ok","data":{"name":"Fade Lounge"}}`

	var out struct {
		Name string `json:"name"`
	}
	env, err := Decode(strings.NewReader(body), &out)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !env.Success {
		t.Error("Success = false, want true")
	}
	if out.Name != "Fade Lounge" {
		t.Errorf("data name = %q, want %q", out.Name, "Fade Lounge")
	}
}

func TestDecode_NilOut(t *testing.T) {
	env, err := Decode(strings.NewReader(`{"success":true,"data":{"ignored":1}}`), nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !env.Success {
		t.Error("Success = false, want true")
	}
}

func TestDecode_Malformed(t *testing.T) {
	if _, err := Decode(strings.NewReader(`{"success":`), nil); err == nil {
		t.Fatal("expected error for malformed body")
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		env  *Envelope
		want string
	}{
		{"nil envelope", nil, ""},
		{"error field wins", &Envelope{Message: "failed", Error: "email taken"}, "email taken"},
		{"message fallback", &Envelope{Message: "failed"}, "failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.env.ErrorMessage(); got != tt.want {
				t.Errorf("ErrorMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
