package command

import (
	"net/mail"
	"strings"

	"github.com/tair/inventory-tracker/pkg/apperror"
)

const minPasswordLength = 6

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", apperror.Validation("Email is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", apperror.Validation("Email is not valid")
	}
	return email, nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return apperror.Validation("Password must be at least %d characters", minPasswordLength)
	}
	return nil
}

func required(value, field string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", apperror.Validation("%s is required", field)
	}
	return value, nil
}
