package service

import (
	"regexp"
	"strings"
	"unicode"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9]+\.[a-zA-Z]{2,}$`)

func validEmail(email string) bool { return emailRe.MatchString(email) }

const passwordSymbols = "!@#$%^&*()"

// validPassword 至少 8 位，含大写、小写、数字和一个指定符号
func validPassword(pw string) bool {
	if len(pw) < 8 {
		return false
	}
	var lower, upper, digit bool
	for _, r := range pw {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return lower && upper && digit && strings.ContainsAny(pw, passwordSymbols)
}
