package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr bool
	}{
		{"valid", RegisterRequest{Name: "A", Email: "a@x.com", Password: "secret1"}, false},
		{"empty name", RegisterRequest{Name: "", Email: "a@x.com", Password: "secret1"}, true},
		{"invalid email", RegisterRequest{Name: "A", Email: "invalid-email", Password: "secret1"}, true},
		{"short password", RegisterRequest{Name: "A", Email: "a@x.com", Password: "123"}, true},
		{"all empty", RegisterRequest{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoginRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     LoginRequest
		wantErr bool
	}{
		{"valid", LoginRequest{Email: "a@x.com", Password: "secret1"}, false},
		{"missing email", LoginRequest{Password: "secret1"}, true},
		{"invalid email", LoginRequest{Email: "nope", Password: "secret1"}, true},
		{"missing password", LoginRequest{Email: "a@x.com"}, true},
		{"short password", LoginRequest{Email: "a@x.com", Password: "12345"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
