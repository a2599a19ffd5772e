package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultReminderInterval = time.Hour

// Config keeps runtime settings for the console tracker.
type Config struct {
	Username         string
	FullName         string
	Email            string
	Demo             bool
	ReminderInterval time.Duration
	ReminderDailyAt  string // HH:MM, empty when no daily digest is wanted
	Location         *time.Location
}

// HasProfile reports whether the user profile was supplied through the environment.
func (c Config) HasProfile() bool {
	return c.Username != "" && c.FullName != "" && c.Email != ""
}

// Load reads configuration from environment variables with sane defaults.
func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	cfg := Config{
		Username:         strings.TrimSpace(getenv("TASKTRACKER_USERNAME")),
		FullName:         strings.TrimSpace(getenv("TASKTRACKER_FULL_NAME")),
		Email:            strings.TrimSpace(getenv("TASKTRACKER_EMAIL")),
		Demo:             isTruthy(getenv("TASKTRACKER_DEMO")),
		ReminderInterval: defaultReminderInterval,
		ReminderDailyAt:  strings.TrimSpace(getenv("REMINDER_DAILY_AT")),
		Location:         time.Local,
	}

	if raw := strings.TrimSpace(getenv("REMINDER_INTERVAL_MINUTES")); raw != "" {
		interval, err := parseInterval(raw)
		if err != nil {
			return cfg, fmt.Errorf("REMINDER_INTERVAL_MINUTES: %w", err)
		}
		cfg.ReminderInterval = interval
	}

	if name := strings.TrimSpace(getenv("TZ_NAME")); name != "" {
		loc, err := time.LoadLocation(name)
		if err != nil {
			return cfg, fmt.Errorf("TZ_NAME: %w", err)
		}
		cfg.Location = loc
	}

	return cfg, nil
}

// parseInterval turns a minute count into a duration. Zero disables reminders.
func parseInterval(raw string) (time.Duration, error) {
	minutes, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid minutes %q", raw)
	}
	if minutes < 0 {
		return 0, fmt.Errorf("minutes must not be negative, got %d", minutes)
	}
	return time.Duration(minutes) * time.Minute, nil
}

func isTruthy(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "y":
		return true
	}
	return false
}
