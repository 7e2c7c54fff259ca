package validators

import "testing"

func TestIsEmail(t *testing.T) {
	cases := map[string]bool{
		"jane@example.com":     true,
		"jane.doe@shop.com.et": true,
		"":                     false,
		"jane":                 false,
		"jane@localhost":       false,
		"Jane <jane@x.com>":    false,
		"@example.com":         false,
	}
	for in, want := range cases {
		if got := IsEmail(in); got != want {
			t.Errorf("IsEmail(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestPasswordStrength(t *testing.T) {
	cases := []struct {
		in    string
		score int
		want  Strength
	}{
		{"abc", 25, StrengthWeak},
		{"abcdefgh", 50, StrengthFair},
		{"Abcdefg", 50, StrengthFair},
		{"Abcdefg1", 100, StrengthStrong},
		{"abcdef1!", 75, StrengthStrong},
		{"", 0, StrengthWeak},
	}
	for _, tc := range cases {
		if got := PasswordScore(tc.in); got != tc.score {
			t.Errorf("PasswordScore(%q) = %d, want %d", tc.in, got, tc.score)
		}
		if got := PasswordStrength(tc.in); got != tc.want {
			t.Errorf("PasswordStrength(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}
