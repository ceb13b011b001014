package config

import (
	"os"
	"testing"
)

// unset removes keys for the duration of the test. t.Setenv registers the
// restore hook; os.Unsetenv then clears the value.
func unset(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}
