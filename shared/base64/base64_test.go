package base64_test

import (
	"roomescape/shared/base64"
	"testing"
)

func TestGetContentType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "png data uri",
			input:    "data:image/png;base64,iVBORw0KGgo=",
			expected: "image/png",
		},
		{
			name:     "jpeg data uri",
			input:    "data:image/jpeg;base64,/9j/4AAQ",
			expected: "image/jpeg",
		},
		{
			name:     "not a data uri",
			input:    "iVBORw0KGgo=",
			expected: "",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base64.GetContentType(tt.input); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		data, err := base64.Decode("data:text/plain;base64,aGVsbG8=")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if string(data) != "hello" {
			t.Errorf("expected 'hello', got %q", string(data))
		}
	})

	t.Run("missing prefix", func(t *testing.T) {
		if _, err := base64.Decode("aGVsbG8="); err == nil {
			t.Error("expected an error for input without a data-URI prefix")
		}
	})

	t.Run("malformed payload", func(t *testing.T) {
		if _, err := base64.Decode("data:image/png;base64,!!!"); err == nil {
			t.Error("expected an error for malformed base64")
		}
	})
}
