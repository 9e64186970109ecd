package auth

import (
	"fmt"
	"strings"
)

// MinPasswordLength matches the backend's minimum; checking it locally
// avoids a round trip for a request the server would reject anyway.
const MinPasswordLength = 6

// Validator holds the local validation rules applied before any network
// call. Rules that belong to the server (uniqueness, current password
// checks) are not duplicated here.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateCredentials validates login input.
func (v *Validator) ValidateCredentials(email, password string) error {
	if err := v.ValidateEmail(email); err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// ValidateRegistration validates sign-up input.
func (v *Validator) ValidateRegistration(name, email, password string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required")
	}
	if err := v.ValidateEmail(email); err != nil {
		return err
	}
	return v.ValidatePassword(password)
}

// ValidateProfileCompletion validates the GitHub signup completion input.
func (v *Validator) ValidateProfileCompletion(token, password, confirm string) error {
	if strings.TrimSpace(token) == "" {
		return fmt.Errorf("missing signup token, restart the GitHub signup process")
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}
	return v.ValidatePassword(password)
}

// ValidateProfileUpdate validates profile mutation input. Email is optional;
// an empty value means "leave unchanged".
func (v *Validator) ValidateProfileUpdate(name, email string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required")
	}
	if email != "" {
		return v.ValidateEmail(email)
	}
	return nil
}

// ValidatePasswordChange validates password mutation input.
func (v *Validator) ValidatePasswordChange(current, updated string) error {
	if current == "" {
		return fmt.Errorf("current password is required")
	}
	return v.ValidatePassword(updated)
}

// ValidatePassword enforces the minimum password length.
func (v *Validator) ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	}
	return nil
}

// ValidateEmail performs a basic shape check; real verification is the
// server's job.
func (v *Validator) ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return fmt.Errorf("invalid email format")
	}
	return nil
}
