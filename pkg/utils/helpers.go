package utils

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateRequestID generates a unique request ID for tracking
func GenerateRequestID() string {
	return uuid.New().String()
}

// GenerateExceptionID generates a unique ID attached to error responses so
// individual failures can be located in the logs
func GenerateExceptionID() string {
	return uuid.New().String()
}

// Round2 rounds a float to two decimal places
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatWindowRemainder decomposes a TTL into whole days and hours for
// rate-limit messaging
func FormatWindowRemainder(ttl time.Duration) string {
	days := int(ttl.Hours()) / 24
	hours := int(ttl.Hours()) % 24
	return fmt.Sprintf("%d days and %d hours", days, hours)
}

// IsPortuguese reports whether a language tag selects the Portuguese rule
// set. Anything unrecognized falls back to English.
func IsPortuguese(language string) bool {
	switch strings.ToLower(strings.TrimSpace(language)) {
	case "pt-br", "pt", "portuguese":
		return true
	}
	return false
}

// Contains checks if a string slice contains a specific string
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// GetStringOrDefault returns the value if not empty, otherwise returns the default
func GetStringOrDefault(value, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
