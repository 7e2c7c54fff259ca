package timeofday

import (
	"sort"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "09:00", want: 540},
		{in: "9:00 AM", want: 540},
		{in: "10:30 am", want: 630},
		{in: "12:00 PM", want: 720},
		{in: "12:15 AM", want: 15},
		{in: "7:45PM", want: 1185},
		{in: "23:59", want: 1439},
		{in: "25:00", wantErr: true},
		{in: "noon", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Parse(%q) expected error, got %d", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		minute int
		h12    string
		h24    string
	}{
		{0, "12:00 AM", "00:00"},
		{540, "9:00 AM", "09:00"},
		{720, "12:00 PM", "12:00"},
		{1185, "7:45 PM", "19:45"},
	}

	for _, tt := range tests {
		if got := Format12h(tt.minute); got != tt.h12 {
			t.Errorf("Format12h(%d) = %q, want %q", tt.minute, got, tt.h12)
		}
		if got := Format24h(tt.minute); got != tt.h24 {
			t.Errorf("Format24h(%d) = %q, want %q", tt.minute, got, tt.h24)
		}
	}
}

func TestMinuteOrderingIsChronological(t *testing.T) {
	labels := []string{"10:00 AM", "9:00 AM", "1:30 PM", "11:15 AM"}

	minutes := make([]int, 0, len(labels))
	for _, l := range labels {
		m, err := Parse(l)
		if err != nil {
			t.Fatalf("parse %q: %v", l, err)
		}
		minutes = append(minutes, m)
	}
	sort.Ints(minutes)

	want := []string{"9:00 AM", "10:00 AM", "11:15 AM", "1:30 PM"}
	for i, m := range minutes {
		if Format12h(m) != want[i] {
			t.Fatalf("position %d = %q, want %q", i, Format12h(m), want[i])
		}
	}
}
