package services

import (
	"errors"
	"net/mail"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	maxDisplayNameLength = 64
	minPasswordRunes     = 8
	// bcrypt ignores everything past 72 bytes.
	maxPasswordBytes = 72
)

var (
	ErrAuthCredentialsInvalid = errors.New("auth credentials invalid")
	ErrAuthDisplayNameInvalid = errors.New("auth display name invalid")
	ErrAuthPasswordMismatch   = errors.New("auth password mismatch")
	ErrAuthWeakPassword       = errors.New("auth weak password")
	ErrAuthPasswordTooLong    = errors.New("auth password too long")
)

func NormalizeAuthEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return ""
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ""
	}
	return email
}

func NormalizeCredentialsInput(emailRaw string, passwordRaw string) (string, string, error) {
	email := NormalizeAuthEmail(emailRaw)
	password := strings.TrimSpace(passwordRaw)
	if email == "" || password == "" {
		return "", "", ErrAuthCredentialsInvalid
	}
	return email, password, nil
}

func NormalizeDisplayName(raw string) (string, error) {
	name := strings.Join(strings.Fields(raw), " ")
	if name == "" || utf8.RuneCountInString(name) > maxDisplayNameLength {
		return "", ErrAuthDisplayNameInvalid
	}
	return name, nil
}

// ValidateNewPassword checks a chosen password against its confirmation and the
// sign-up rules: at least 8 characters mixing upper case, lower case and a digit,
// and no longer than bcrypt can hash.
func ValidateNewPassword(password string, confirmation string) error {
	if password != confirmation {
		return ErrAuthPasswordMismatch
	}
	if len(password) > maxPasswordBytes {
		return ErrAuthPasswordTooLong
	}
	if utf8.RuneCountInString(password) < minPasswordRunes {
		return ErrAuthWeakPassword
	}

	var hasUpper, hasLower, hasDigit bool
	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsDigit(char):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return ErrAuthWeakPassword
	}
	return nil
}

type RegistrationInput struct {
	DisplayName     string
	Email           string
	Password        string
	ConfirmPassword string
}

// NormalizeRegistrationInput validates a sign-up form and returns it trimmed.
func NormalizeRegistrationInput(input RegistrationInput) (RegistrationInput, error) {
	email, password, err := NormalizeCredentialsInput(input.Email, input.Password)
	if err != nil {
		return RegistrationInput{}, err
	}
	name, err := NormalizeDisplayName(input.DisplayName)
	if err != nil {
		return RegistrationInput{}, err
	}
	if err := ValidateNewPassword(password, strings.TrimSpace(input.ConfirmPassword)); err != nil {
		return RegistrationInput{}, err
	}
	return RegistrationInput{
		DisplayName:     name,
		Email:           email,
		Password:        password,
		ConfirmPassword: password,
	}, nil
}
