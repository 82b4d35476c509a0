package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		phone string
		want  bool
	}{
		{name: "plain digits", phone: "1234567890", want: true},
		{name: "formatted", phone: "+(123) 456-7890", want: true},
		{name: "dotted", phone: "123.456.789012", want: true},
		{name: "too short", phone: "12345", want: false},
		{name: "letters", phone: "123-abc-7890", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, IsPhone(tt.phone))
		})
	}
}

func TestIsStrongPassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{name: "strong", password: "Secret#123", want: true},
		{name: "space counts as symbol", password: "Secret 123", want: true},
		{name: "too short", password: "Se#1", want: false},
		{name: "no upper", password: "secret#123", want: false},
		{name: "no lower", password: "SECRET#123", want: false},
		{name: "no digit", password: "Secret#abc", want: false},
		{name: "no symbol", password: "Secret1234", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, IsStrongPassword(tt.password))
		})
	}
}

func TestSplitCSV(t *testing.T) {
	t.Parallel()

	assert.Nil(t, SplitCSV(""))
	assert.Nil(t, SplitCSV("   "))
	assert.Equal(t, []string{"a", "b", "c"}, SplitCSV(" a, b,,c "))
}

func TestNewValidate_CustomRules(t *testing.T) {
	t.Parallel()

	validate := NewValidate()

	assert.NoError(t, validate.Var("+(123) 456-7890", RulePhone))
	assert.Error(t, validate.Var("nope", RulePhone))
	assert.NoError(t, validate.Var("Secret#123", RuleStrongPassword))
	assert.Error(t, validate.Var("secret", RuleStrongPassword))
}
