package cli

import (
	"errors"
	"fmt"
	"io"
	"net/mail"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/terraincognita07/myfit/internal/db"
	"github.com/terraincognita07/myfit/internal/models"
	"github.com/terraincognita07/myfit/internal/security"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const temporaryPasswordLength = 12

var ErrUserNotFound = errors.New("user not found")

type PasswordResetStore interface {
	FindByNormalizedEmail(email string) (models.User, error)
	UpdatePassword(userID uint, passwordHash string, mustChangePassword bool) error
}

func RunResetPasswordCommand(dbPath string, email string, out io.Writer) error {
	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	if sqlDB, err := database.DB(); err == nil {
		defer sqlDB.Close()
	}

	temporaryPassword, err := ResetPassword(db.NewUserRepository(database), email)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Password reset successful")
	fmt.Fprintf(out, "Temporary password: %s\n", temporaryPassword)
	fmt.Fprintln(out, "User must change password on next login.")
	return nil
}

// ResetPassword replaces the account password with a generated one and flags
// the account so every page except the password form redirects until it changes.
func ResetPassword(store PasswordResetStore, email string) (string, error) {
	normalizedEmail := strings.ToLower(strings.TrimSpace(email))
	if normalizedEmail == "" {
		return "", errors.New("email is required")
	}
	if _, err := mail.ParseAddress(normalizedEmail); err != nil {
		return "", fmt.Errorf("invalid email address: %w", err)
	}

	user, err := store.FindByNormalizedEmail(normalizedEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("%w: %s", ErrUserNotFound, normalizedEmail)
		}
		return "", fmt.Errorf("load user: %w", err)
	}

	temporaryPassword, err := security.TemporaryPassword(temporaryPasswordLength)
	if err != nil {
		return "", fmt.Errorf("generate temporary password: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(temporaryPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash temporary password: %w", err)
	}

	if err := store.UpdatePassword(user.ID, string(passwordHash), true); err != nil {
		return "", fmt.Errorf("update user password: %w", err)
	}

	log.WithField("user_id", user.ID).Info("password reset from cli")
	return temporaryPassword, nil
}
