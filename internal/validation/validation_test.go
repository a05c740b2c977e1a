package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidDate(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"2024-01-15", true},
		{"2024-02-29", true},
		{"2024-13-01", false},
		{"2024-02-30", false},
		{"2023-02-29", false},
		{"15-01-2024", false},
		{"2024-1-5", false},
		{"2024-01-15T00:00:00Z", false},
		{" 2024-01-15", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidDate(tt.in))
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"a@b.co", true},
		{"a@b.com", true},
		{"@b.com", true}, // empty local part is not checked
		{"a@b.c", false},
		{"a@b.comm", false},
		{"a@b.cod e", false},
		{"a@@b.com", false},
		{"a@b@c.com", false},
		{"a@b.co.uk", false},
		{"ab.com", false},
		{"a@bcom", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEmail(tt.in))
		})
	}
}

func TestNewRegistersShapeTags(t *testing.T) {
	v := New()

	require.NoError(t, v.Var("2024-01-15", TagDateOnly))
	require.Error(t, v.Var("2024-02-30", TagDateOnly))

	require.NoError(t, v.Var("jane@example.com", TagEmailShape))
	require.Error(t, v.Var("jane@example.co.uk", TagEmailShape))
}
