// Package validation contains the pure field validators for auth and job
// forms. The same rules run in the browser client; the copies here are the
// authoritative ones. Every function is side-effect free and returns an empty
// message when the value is acceptable.
package validation

import (
	"regexp"
	"strings"
	"time"

	"jobtrack/internal/domain/entity"
)

// FieldErrors maps a field name to its user-facing validation message.
type FieldErrors map[string]string

// A simple local@domain.tld shape. Full RFC 5322 compliance is deliberately
// out of scope.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email validates a login email address.
func Email(value string) string {
	if strings.TrimSpace(value) == "" {
		return "Email is required"
	}
	if !emailPattern.MatchString(value) {
		return "Please enter a valid email address"
	}

	return ""
}

// Password validates a plaintext password. Length is the only policy.
func Password(value string) string {
	if value == "" {
		return "Password is required"
	}
	if len(value) < 6 {
		return "Password must be at least 6 characters"
	}

	return ""
}

// CompanyName validates a company name. The trimmed value must be at least
// three characters.
func CompanyName(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "Company name is required"
	}
	if len(trimmed) < 3 {
		return "Company name must be at least 3 characters"
	}

	return ""
}

// JobTitle validates a job title. Any non-blank value is acceptable.
func JobTitle(value string) string {
	if strings.TrimSpace(value) == "" {
		return "Job title cannot be empty"
	}

	return ""
}

var dateLayouts = []string{"2006-01-02", time.RFC3339}

// ApplicationDate parses and validates an application date. The result is
// normalized to day granularity in the evaluating timezone. Today is allowed;
// anything strictly after today is not.
func ApplicationDate(value string) (time.Time, string) {
	if value == "" {
		return time.Time{}, "Application date is required"
	}

	// The plain date layout carries no zone, so it is taken as a local day.
	parsed, err := time.ParseInLocation(dateLayouts[0], value, time.Local)
	if err != nil {
		parsed, err = time.Parse(dateLayouts[1], value)
	}
	if err != nil {
		return time.Time{}, "Invalid date format"
	}

	day := truncateToDay(parsed)
	if day.After(truncateToDay(time.Now())) {
		return time.Time{}, "Application date cannot be in the future"
	}

	return day, ""
}

// Status validates an application status against the closed set. The empty
// string is the caller's business (creation defaults it, updates omit it).
func Status(value string) (entity.ApplicationStatus, string) {
	status := entity.ApplicationStatus(value)
	if !status.Valid() {
		return "", "Status must be one of: Applied, Interview, Offer, Rejected"
	}

	return status, ""
}

func truncateToDay(t time.Time) time.Time {
	year, month, day := t.Local().Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}
