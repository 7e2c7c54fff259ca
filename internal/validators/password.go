package validators

import "unicode"

const MinPasswordLength = 6

type Strength string

const (
	StrengthWeak   Strength = "weak"
	StrengthFair   Strength = "fair"
	StrengthStrong Strength = "strong"
)

// PasswordScore awards 25 points each for length >= 8, a lowercase letter,
// an uppercase letter, and a digit or symbol.
func PasswordScore(password string) int {
	var lower, upper, other bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		default:
			other = true
		}
	}

	score := 0
	if len([]rune(password)) >= 8 {
		score += 25
	}
	for _, ok := range []bool{lower, upper, other} {
		if ok {
			score += 25
		}
	}
	return score
}

func PasswordStrength(password string) Strength {
	switch score := PasswordScore(password); {
	case score < 50:
		return StrengthWeak
	case score < 75:
		return StrengthFair
	default:
		return StrengthStrong
	}
}
