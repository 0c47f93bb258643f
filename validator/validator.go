package validator

import (
	"net/mail"
	"strconv"
	"strings"
)

type ValidationErrors map[string]string

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

func ValidateLogin(username, password string) ValidationErrors {
	errs := make(ValidationErrors)

	if strings.TrimSpace(username) == "" {
		errs.Add("username", "Username is required")
	}
	if password == "" {
		errs.Add("password", "Password is required")
	}

	return errs
}

func ValidateSignup(fullName, age, location, username, password, email string) ValidationErrors {
	errs := validateProfileFields(fullName, age, location, username, email)

	if password == "" {
		errs.Add("password", "Password is required")
	} else if len(password) < 8 {
		errs.Add("password", "Password must be at least 8 characters")
	} else if len(password) > 80 {
		errs.Add("password", "Password is too long")
	}

	return errs
}

func ValidateProfile(fullName, age, location, username, email string) ValidationErrors {
	return validateProfileFields(fullName, age, location, username, email)
}

func validateProfileFields(fullName, age, location, username, email string) ValidationErrors {
	errs := make(ValidationErrors)

	if strings.TrimSpace(fullName) == "" {
		errs.Add("full_name", "Full name is required")
	}

	age = strings.TrimSpace(age)
	if age == "" {
		errs.Add("age", "Age is required")
	} else if n, err := strconv.Atoi(age); err != nil || n < 1 || n > 130 {
		errs.Add("age", "Age must be a number between 1 and 130")
	}

	if strings.TrimSpace(location) == "" {
		errs.Add("location", "Country is required")
	}

	username = strings.TrimSpace(username)
	if username == "" {
		errs.Add("username", "Username is required")
	} else if len(username) < 4 {
		errs.Add("username", "Username must be at least 4 characters")
	} else if len(username) > 15 {
		errs.Add("username", "Username must be at most 15 characters")
	}

	email = strings.TrimSpace(email)
	if email == "" {
		errs.Add("email", "Email is required")
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs.Add("email", "Invalid E-mail!")
	}

	return errs
}
