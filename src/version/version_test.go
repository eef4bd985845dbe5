package version

import (
	"strings"
	"testing"
)

func TestVersion(t *testing.T) {
	if Version == "" {
		t.Fatal("version string should not be empty")
	}
	if Flag != "" && !strings.Contains(Version, Flag) {
		t.Fatalf("version %q should carry the flag %q", Version, Flag)
	}
}
