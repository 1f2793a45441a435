package j2534

import (
	"errors"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not found", &NotFoundError{}, "not found"},
		{"not found with detail", &NotFoundError{msg: "entry point PassThruOpen not found"}, "entry point PassThruOpen not found"},
		{"code", &CodeError{Status: 0x10}, "unknown error (code 16)"},
		{"utf8", &Utf8Error{}, "utf8 error"},
		{"closed", &ClosedError{Resource: "device"}, "device is closed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStatusError(t *testing.T) {
	if err := statusError(0); err != nil {
		t.Fatalf("zero status should be success, got %v", err)
	}

	err := statusError(0x23)
	var code *CodeError
	if !errors.As(err, &code) {
		t.Fatalf("expected *CodeError, got %T", err)
	}
	if code.Status != 0x23 {
		t.Errorf("Status = %d, want %d", code.Status, 0x23)
	}
}
