// Package validation holds the field validators shared by the client forms
// and the server handlers, so both sides reject the same input.
package validation

import (
	"regexp"
	"unicode/utf8"
)

const (
	// MaxTitleLen bounds task titles.
	MaxTitleLen = 200
	// MaxDescriptionLen bounds task descriptions.
	MaxDescriptionLen = 2000
	// MinPasswordLen is the minimum accepted password length.
	MinPasswordLen = 8
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Errors maps a field name to a human-readable problem with it.
// An empty map means the input passed.
type Errors map[string]string

// Error wraps field problems so services can return them through the
// usual error path. Handlers unwrap it with errors.As to build 400
// responses.
type Error struct {
	Fields Errors
}

func (e *Error) Error() string { return "validation failed" }

// AsError returns nil when errs is empty, otherwise an *Error carrying it.
func (e Errors) AsError() error {
	if len(e) == 0 {
		return nil
	}
	return &Error{Fields: e}
}

// Add records a problem for field unless one is already present,
// so the first error reported for a field wins.
func (e Errors) Add(field, msg string) {
	if _, ok := e[field]; !ok {
		e[field] = msg
	}
}

// Username checks that s looks like an email address.
func Username(s string) string {
	if s == "" {
		return "must not be empty"
	}
	if !emailRe.MatchString(s) {
		return "must be a valid email address"
	}
	return ""
}

// Password checks the minimum length rule.
func Password(s string) string {
	if utf8.RuneCountInString(s) < MinPasswordLen {
		return "must be at least 8 characters"
	}
	return ""
}

// TaskTitle checks presence and length of a task title.
func TaskTitle(s string) string {
	if s == "" {
		return "must not be empty"
	}
	if utf8.RuneCountInString(s) > MaxTitleLen {
		return "must be at most 200 characters"
	}
	return ""
}

// TaskDescription checks the length of a task description.
func TaskDescription(s string) string {
	if utf8.RuneCountInString(s) > MaxDescriptionLen {
		return "must be at most 2000 characters"
	}
	return ""
}

// TaskStatus checks that s is one of the known statuses.
func TaskStatus(s string) string {
	if s != "pending" && s != "done" {
		return "must be pending or done"
	}
	return ""
}

// Credentials validates a signup/login form and returns per-field errors.
func Credentials(username, password string) Errors {
	errs := Errors{}
	if msg := Username(username); msg != "" {
		errs.Add("username", msg)
	}
	if msg := Password(password); msg != "" {
		errs.Add("password", msg)
	}
	return errs
}
