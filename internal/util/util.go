// Package util holds small helpers shared by the delivery and domain layers.
package util

import (
	"reflect"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const (
	// RulePhone validates phone numbers such as +(123) 456-7890.
	RulePhone = "phone"
	// RuleStrongPassword requires upper, lower, digit and symbol over 8+ characters.
	RuleStrongPassword = "strong_password"

	passwordSymbols   = "#?!@$ %^&*-"
	minPasswordLength = 8
)

var phonePattern = regexp.MustCompile(`^[\+]?[(]?[0-9]{3}[)]?[-\s\.]?[0-9]{3}[-\s\.]?[0-9]{4,6}$`)

// NewValidate returns a validator that reports JSON field names and knows the
// storefront's custom rules.
func NewValidate() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "query", "param"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}

		return field.Name
	})

	_ = validate.RegisterValidation(RulePhone, func(fl validator.FieldLevel) bool {
		return IsPhone(fl.Field().String())
	})
	_ = validate.RegisterValidation(RuleStrongPassword, func(fl validator.FieldLevel) bool {
		return IsStrongPassword(fl.Field().String())
	})

	return validate
}

// IsPhone reports whether s looks like a phone number.
func IsPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// IsStrongPassword reports whether s has an upper case letter, a lower case
// letter, a digit and one of #?!@$ %^&*- and at least 8 characters.
func IsStrongPassword(s string) bool {
	if utf8.RuneCountInString(s) < minPasswordLength {
		return false
	}

	var upper, lower, digit, symbol bool
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		}
	}

	return upper && lower && digit && symbol
}

// SplitCSV splits a comma-separated list, trimming blanks and dropping empty items.
func SplitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
