package env

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env")
	content := `# stored credentials
ADSCTL_TEST_A=plain
ADSCTL_TEST_B="quoted value"

not-a-pair
ADSCTL_TEST_C=overridden
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("ADSCTL_TEST_A", "")
	t.Setenv("ADSCTL_TEST_B", "")
	t.Setenv("ADSCTL_TEST_C", "from-process")

	LoadFile(path)

	if got := os.Getenv("ADSCTL_TEST_A"); got != "plain" {
		t.Errorf("ADSCTL_TEST_A = %q, want plain", got)
	}
	if got := os.Getenv("ADSCTL_TEST_B"); got != "quoted value" {
		t.Errorf("ADSCTL_TEST_B = %q, want %q", got, "quoted value")
	}
	// Process environment wins over the file.
	if got := os.Getenv("ADSCTL_TEST_C"); got != "from-process" {
		t.Errorf("ADSCTL_TEST_C = %q, want from-process", got)
	}
}

func TestLoadFileMissing(t *testing.T) {
	// Must be a no-op, not a crash.
	LoadFile(filepath.Join(t.TempDir(), "does-not-exist"))
}
