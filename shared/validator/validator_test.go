package validator_test

import (
	"strings"
	"testing"

	"roomescape/shared/validator"
)

type createTimePayload struct {
	StartAt string `json:"startAt" validate:"required,datetime=15:04"`
}

type registerPayload struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type thumbnailPayload struct {
	Image string `json:"image" validate:"required,mimetypes=image/png image/jpeg,maxfilesize=5"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name: "valid payload",
			body: `{"startAt": "10:00"}`,
		},
		{
			name:    "missing field",
			body:    `{}`,
			wantErr: "StartAt is required",
		},
		{
			name:    "bad time format",
			body:    `{"startAt": "25:99"}`,
			wantErr: "StartAt has an invalid format",
		},
		{
			name:    "malformed json",
			body:    `{"startAt": `,
			wantErr: "failed to decode request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload createTimePayload

			err := validator.Validate(strings.NewReader(tt.body), &payload)

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}

				return
			}

			if err == nil {
				t.Fatal("expected an error")
			}

			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		payload registerPayload
		wantErr string
	}{
		{
			name:    "valid payload",
			payload: registerPayload{Name: "Alice", Email: "alice@example.com", Password: "supersecret"},
		},
		{
			name:    "invalid email",
			payload: registerPayload{Name: "Alice", Email: "not-an-email", Password: "supersecret"},
			wantErr: "Email must be a valid email address",
		},
		{
			name:    "password too short",
			payload: registerPayload{Name: "Alice", Email: "alice@example.com", Password: "short"},
			wantErr: "Password must be greater than or equal to 8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.payload)

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}

				return
			}

			if err == nil {
				t.Fatal("expected an error")
			}

			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestValidateStruct_Mimetypes(t *testing.T) {
	t.Run("allowed mime type", func(t *testing.T) {
		payload := thumbnailPayload{Image: "data:image/png;base64,iVBORw0KGgo="}

		if err := validator.ValidateStruct(&payload); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("disallowed mime type", func(t *testing.T) {
		payload := thumbnailPayload{Image: "data:image/gif;base64,R0lGODlh"}

		if err := validator.ValidateStruct(&payload); err == nil {
			t.Error("expected an error for disallowed mime type")
		}
	})

	t.Run("not a data uri", func(t *testing.T) {
		payload := thumbnailPayload{Image: "iVBORw0KGgo="}

		if err := validator.ValidateStruct(&payload); err == nil {
			t.Error("expected an error for non data-uri input")
		}
	})
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("2026-01-02", "datetime=2006-01-02"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := validator.ValidateVar("02/01/2026", "datetime=2006-01-02"); err == nil {
		t.Error("expected an error for wrong date layout")
	}
}
