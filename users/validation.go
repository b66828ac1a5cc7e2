package users

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	emailMinLength    = 5
	emailMaxLength    = 160
	passwordMinLength = 6
	passwordMaxLength = 160
)

const (
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldErrors maps a form field to its validation messages, in the shape the
// clinic API uses for 422 responses.
type FieldErrors map[string][]string

func (f FieldErrors) Add(field, message string) {
	f[field] = append(f[field], message)
}

// First returns the first message recorded for field.
func (f FieldErrors) First(field string) string {
	if msgs := f[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

func (f FieldErrors) Empty() bool {
	return len(f) == 0
}

// Fields returns the offending field names in stable order.
func (f FieldErrors) Fields() []string {
	names := make([]string, 0, len(f))
	for k := range f {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// ValidateLogin applies the sign-in form rules.
func ValidateLogin(email, password string) FieldErrors {
	errs := FieldErrors{}
	validateEmail(errs, email)
	validatePassword(errs, password)
	return errs
}

// ValidateRegistration applies the sign-up form rules.
func ValidateRegistration(email, password, confirmPassword string) FieldErrors {
	errs := ValidateLogin(email, password)
	switch {
	case confirmPassword == "":
		errs.Add(FieldConfirmPassword, "Confirm password là bắt buộc")
	case confirmPassword != password:
		errs.Add(FieldConfirmPassword, "Confirm password không khớp")
	}
	return errs
}

func validateEmail(errs FieldErrors, email string) {
	email = strings.TrimSpace(email)
	n := utf8.RuneCountInString(email)
	switch {
	case email == "":
		errs.Add(FieldEmail, "Email là bắt buộc")
		return
	case n < emailMinLength:
		errs.Add(FieldEmail, "Email phải có ít nhất 5 ký tự")
	case n > emailMaxLength:
		errs.Add(FieldEmail, "Email không được vượt quá 160 ký tự")
	}
	if !emailPattern.MatchString(email) {
		errs.Add(FieldEmail, "Email không đúng định dạng")
	}
}

func validatePassword(errs FieldErrors, password string) {
	n := utf8.RuneCountInString(password)
	switch {
	case password == "":
		errs.Add(FieldPassword, "Password là bắt buộc")
	case n < passwordMinLength:
		errs.Add(FieldPassword, "Password phải có ít nhất 6 ký tự")
	case n > passwordMaxLength:
		errs.Add(FieldPassword, "Password không được vượt quá 160 ký tự")
	}
}
