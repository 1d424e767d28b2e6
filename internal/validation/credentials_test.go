package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{name: "Valid simple", username: "alice", wantErr: false},
		{name: "Valid with digits and underscore", username: "user_42", wantErr: false},
		{name: "Valid minimum length", username: "abc", wantErr: false},
		{name: "Valid maximum length", username: strings.Repeat("a", 32), wantErr: false},
		{name: "Empty", username: "", wantErr: true},
		{name: "Too short", username: "ab", wantErr: true},
		{name: "Too long", username: strings.Repeat("a", 33), wantErr: true},
		{name: "Contains space", username: "user name", wantErr: true},
		{name: "Contains dash", username: "user-name", wantErr: true},
		{name: "Contains cyrillic", username: "пользователь", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "Valid", password: "password123", wantErr: false},
		{name: "Valid minimum length", password: "12345678", wantErr: false},
		{name: "Empty", password: "", wantErr: true},
		{name: "Too short", password: "1234567", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
