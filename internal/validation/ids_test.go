package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		raw    string
		want   int64
		wantOK bool
	}{
		{"42", 42, true},
		{"0", 0, true},
		{"007", 7, true},
		{"4a2", 0, false},
		{"", 0, false},
		{" 42", 0, false},
		{"42 ", 0, false},
		{"-1", 0, false},
		{"+1", 0, false},
		{"1.5", 0, false},
		{"٣", 0, false},
		{"99999999999999999999", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseID(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// The read path is intentionally more permissive than ParseID; these cases document the gap.
func TestParseIDLenient(t *testing.T) {
	tests := []struct {
		raw    string
		want   int64
		wantOK bool
	}{
		{"42", 42, true},
		{"12abc", 12, true},
		{"  7", 7, true},
		{"-3", -3, true},
		{"+5", 5, true},
		{"1.9", 1, true},
		{"abc", 0, false},
		{"", 0, false},
		{"-", 0, false},
		{"99999999999999999999", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseIDLenient(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseID_StricterThanLenient(t *testing.T) {
	for _, raw := range []string{"12abc", " 7", "+5", "1.9"} {
		_, strictOK := ParseID(raw)
		_, lenientOK := ParseIDLenient(raw)
		assert.False(t, strictOK, raw)
		assert.True(t, lenientOK, raw)
	}
}
