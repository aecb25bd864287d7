package utils

import (
	"os"
	"strings"
)

// EnvOrDefault returns ENV value or fallback default.
func EnvOrDefault(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

// IsProduction reports whether APP_ENV selects the production profile.
func IsProduction() bool {
	return strings.EqualFold(EnvOrDefault("APP_ENV", "development"), "production")
}
