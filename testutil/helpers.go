package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"testing"
)

const (
	defaultEmailRandomLength = 10
)

func RandomString(length int) string {
	bytes := make([]byte, length/2+1)
	if _, err := rand.Read(bytes); err != nil {
		return ""
	}

	return hex.EncodeToString(bytes)[:length]
}

func RandomEmail() string {
	return fmt.Sprintf("test_%s@example.com", RandomString(defaultEmailRandomLength))
}

// RequireEnv skips the test when the named environment variable is unset.
// Used by tests that exercise a live integration.
func RequireEnv(t *testing.T, key string) string {
	t.Helper()

	value := os.Getenv(key)

	if value == "" {
		t.Skipf("Environment variable %s is required but not set", key)
	}

	return value
}
