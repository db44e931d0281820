package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidCoords, "invalid coordinates: %s", "org.acme")

	if err.Code != ErrCodeInvalidCoords {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidCoords)
	}

	if err.Message != "invalid coordinates: org.acme" {
		t.Errorf("Message = %v, want %v", err.Message, "invalid coordinates: org.acme")
	}

	expected := "INVALID_COORDS: invalid coordinates: org.acme"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeResolutionFailed, cause, "failed to resolve artifact")

	if err.Code != ErrCodeResolutionFailed {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeResolutionFailed)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeChannelRequired, "test"),
			code:     ErrCodeChannelRequired,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeChannelRequired, "test"),
			code:     ErrCodeNetwork,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeNetwork, New(ErrCodeInvalidCoords, "inner"), "outer"),
			code:     ErrCodeNetwork,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidCoords,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidCoords,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeArtifactNotFound, "missing")); got != ErrCodeArtifactNotFound {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeArtifactNotFound)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode() = %v, want empty", got)
	}
}
