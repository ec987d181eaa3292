package validation

import (
	"testing"
	"time"

	"jobtrack/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "valid", value: "a@x.com", want: ""},
		{name: "subdomain", value: "user@mail.example.org", want: ""},
		{name: "empty", value: "", want: "Email is required"},
		{name: "blank", value: "   ", want: "Email is required"},
		{name: "no at", value: "ax.com", want: "Please enter a valid email address"},
		{name: "no tld", value: "a@xcom", want: "Please enter a valid email address"},
		{name: "spaces", value: "a b@x.com", want: "Please enter a valid email address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Email(tt.value))
		})
	}
}

func TestPassword(t *testing.T) {
	assert.Equal(t, "Password is required", Password(""))
	assert.Equal(t, "Password must be at least 6 characters", Password("12345"))
	assert.Empty(t, Password("secret1"))
	assert.Empty(t, Password("123456"))
}

func TestCompanyName(t *testing.T) {
	assert.Equal(t, "Company name is required", CompanyName(""))
	assert.Equal(t, "Company name is required", CompanyName("   "))
	assert.Equal(t, "Company name must be at least 3 characters", CompanyName("Ab"))
	// Trimming happens before the length check.
	assert.Equal(t, "Company name must be at least 3 characters", CompanyName("  Ab  "))
	assert.Empty(t, CompanyName("Acme"))
	assert.Empty(t, CompanyName(" Acm "))
}

func TestJobTitle(t *testing.T) {
	assert.Equal(t, "Job title cannot be empty", JobTitle(""))
	assert.Equal(t, "Job title cannot be empty", JobTitle("  "))
	assert.Empty(t, JobTitle("SWE"))
}

func TestApplicationDate(t *testing.T) {
	today := time.Now().Format("2006-01-02")
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	t.Run("today allowed", func(t *testing.T) {
		day, msg := ApplicationDate(today)
		assert.Empty(t, msg)
		assert.Equal(t, 0, day.Hour())
	})

	t.Run("past allowed", func(t *testing.T) {
		_, msg := ApplicationDate(yesterday)
		assert.Empty(t, msg)
	})

	t.Run("tomorrow rejected", func(t *testing.T) {
		_, msg := ApplicationDate(tomorrow)
		assert.Equal(t, "Application date cannot be in the future", msg)
	})

	t.Run("required", func(t *testing.T) {
		_, msg := ApplicationDate("")
		assert.Equal(t, "Application date is required", msg)
	})

	t.Run("garbage", func(t *testing.T) {
		_, msg := ApplicationDate("not-a-date")
		assert.Equal(t, "Invalid date format", msg)
	})

	t.Run("rfc3339 accepted", func(t *testing.T) {
		day, msg := ApplicationDate("2020-05-01T10:30:00Z")
		assert.Empty(t, msg)
		assert.Equal(t, 2020, day.Year())
		assert.Equal(t, time.May, day.Month())
	})

	t.Run("idempotent", func(t *testing.T) {
		first, msg1 := ApplicationDate(yesterday)
		second, msg2 := ApplicationDate(yesterday)
		assert.Equal(t, msg1, msg2)
		assert.True(t, first.Equal(second))
	})
}

func TestStatus(t *testing.T) {
	for _, valid := range entity.Statuses() {
		status, msg := Status(string(valid))
		assert.Empty(t, msg)
		assert.Equal(t, valid, status)
	}

	for _, invalid := range []string{"", "applied", "OFFER", "Ghosted"} {
		_, msg := Status(invalid)
		assert.Equal(t, "Status must be one of: Applied, Interview, Offer, Rejected", msg, "value %q", invalid)
	}
}
