package testsupport

import (
	"os"
	"strings"
	"testing"
)

// ReadFile returns the content of path, failing the test on error.
func ReadFile(t testing.TB, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// RequireContains fails the test when haystack lacks any of needles.
func RequireContains(t testing.TB, haystack string, needles ...string) {
	t.Helper()

	for _, needle := range needles {
		if !strings.Contains(haystack, needle) {
			t.Fatalf("expected %q in output:\n%s", needle, haystack)
		}
	}
}
