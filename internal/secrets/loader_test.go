package secrets

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	if err := os.WriteFile(path, []byte("  file-secret \n"), 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	secret, err := Load(Source{Name: "linkedin api key", File: path, Env: "IGNORED", Value: "ignored"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if secret != "file-secret" {
		t.Fatalf("expected the trimmed file value, got %q", secret)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("INTERNRADAR_TEST_KEY", " env-secret ")

	secret, err := Load(Source{Name: "api key", Env: "INTERNRADAR_TEST_KEY", Value: "ignored"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if secret != "env-secret" {
		t.Fatalf("expected the env value, got %q", secret)
	}
}

func TestLoadInlineValue(t *testing.T) {
	secret, err := Load(Source{Name: "api key", Value: " inline "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if secret != "inline" {
		t.Fatalf("expected the inline value, got %q", secret)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(Source{Name: "api key"}); err == nil {
		t.Fatalf("expected an error when nothing is configured")
	}

	if _, err := Load(Source{Name: "api key", File: filepath.Join(t.TempDir(), "missing")}); err == nil {
		t.Fatalf("expected an error for a missing file")
	}

	empty := filepath.Join(t.TempDir(), "empty")
	if err := os.WriteFile(empty, []byte("  \n"), 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := Load(Source{Name: "api key", File: empty}); err == nil {
		t.Fatalf("expected an error for an empty file")
	}
}
