package customer

import "testing"

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{0, StatusNew},
		{-1, StatusNew},
		{1, StatusActive},
		{9, StatusActive},
		{10, StatusVIP},
		{42, StatusVIP},
	}
	for _, tt := range tests {
		if got := DeriveStatus(tt.count); got != tt.want {
			t.Errorf("DeriveStatus(%d) = %q, want %q", tt.count, got, tt.want)
		}
	}
}
