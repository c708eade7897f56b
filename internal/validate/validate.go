// Package validate holds the field rules shared by the login and settings
// forms. Each function returns nil or an error whose message is shown inline
// under the field.
package validate

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	MinPasswordLength = 6
	MinNameLength     = 2
	MaxCompanyLength  = 100
)

// emailPattern accepts anything shaped like local@domain.tld with no
// whitespace. It is a presence check, not RFC 5322.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email checks that s is present and looks like an address.
func Email(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("Email is required")
	}
	if !emailPattern.MatchString(s) {
		return errors.New("Please enter a valid email address")
	}
	return nil
}

// Password checks the login password. Whitespace counts toward the length.
func Password(s string) error {
	if s == "" {
		return errors.New("Password is required")
	}
	if utf8.RuneCountInString(s) < MinPasswordLength {
		return errors.New("Password must be at least 6 characters")
	}
	return nil
}

// Name checks the profile display name.
func Name(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("Name is required")
	}
	if utf8.RuneCountInString(s) < MinNameLength {
		return errors.New("Name must be at least 2 characters")
	}
	return nil
}

// Company is optional but bounded.
func Company(s string) error {
	if utf8.RuneCountInString(s) >= MaxCompanyLength {
		return errors.New("Company name must be less than 100 characters")
	}
	return nil
}

// Login runs the login rules in display order and returns the first failure.
func Login(email, password string) error {
	if err := Email(email); err != nil {
		return err
	}
	return Password(password)
}
