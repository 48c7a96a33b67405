package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const (
	upperAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	lowerAlphabet = "abcdefghijkmnopqrstuvwxyz"
	digitAlphabet = "23456789"

	// PasswordAlphabet leaves out characters that are easy to misread (0/O, 1/l/I).
	PasswordAlphabet = upperAlphabet + lowerAlphabet + digitAlphabet

	MinTemporaryPasswordLength = 8
)

var (
	errNegativeLength = errors.New("length must be non-negative")
	errEmptyAlphabet  = errors.New("alphabet must not be empty")
)

// RandomString returns a cryptographically secure, unbiased string of the requested length.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}
	if length == 0 {
		return "", nil
	}
	if len(alphabet) == 0 {
		return "", errEmptyAlphabet
	}

	value := make([]byte, length)
	for index := range value {
		position, err := randomIndex(len(alphabet))
		if err != nil {
			return "", err
		}
		value[index] = alphabet[position]
	}

	return string(value), nil
}

// TemporaryPassword returns a password from PasswordAlphabet holding at least one
// upper-case letter, one lower-case letter and one digit, so it passes the
// sign-up strength rules. Lengths below MinTemporaryPasswordLength are raised.
func TemporaryPassword(length int) (string, error) {
	if length < MinTemporaryPasswordLength {
		length = MinTemporaryPasswordLength
	}

	value := make([]byte, 0, length)
	for _, alphabet := range []string{upperAlphabet, lowerAlphabet, digitAlphabet} {
		char, err := RandomString(1, alphabet)
		if err != nil {
			return "", err
		}
		value = append(value, char[0])
	}

	rest, err := RandomString(length-len(value), PasswordAlphabet)
	if err != nil {
		return "", err
	}
	value = append(value, rest...)

	// Fisher-Yates so the guaranteed classes do not always lead.
	for index := len(value) - 1; index > 0; index-- {
		swap, err := randomIndex(index + 1)
		if err != nil {
			return "", err
		}
		value[index], value[swap] = value[swap], value[index]
	}
	return string(value), nil
}

func randomIndex(limit int) (int, error) {
	position, err := rand.Int(rand.Reader, big.NewInt(int64(limit)))
	if err != nil {
		return 0, err
	}
	return int(position.Int64()), nil
}
