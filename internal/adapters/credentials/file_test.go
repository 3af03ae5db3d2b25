package credentials

import (
	"errors"
	"os"
	"path/filepath"
	"route-distance-enricher/internal/domain"
	"testing"
)

func writeKeyFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "key.txt")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write key file: %v", err)
	}
	return path
}

func TestLoadAPIKey(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"single line no newline", "abc123", "abc123"},
		{"trailing newline", "abc123\n", "abc123"},
		{"crlf", "abc123\r\nsecond\r\n", "abc123"},
		{"inner spaces kept", " abc 123 \n", " abc 123 "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadAPIKey(writeKeyFile(t, tt.content))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("key = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoadAPIKeyErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.txt")

	for name, path := range map[string]string{
		"missing":          missing,
		"empty":            writeKeyFile(t, ""),
		"blank first line": writeKeyFile(t, "\nkey\n"),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := LoadAPIKey(path)
			if !errors.Is(err, domain.ErrDataAccess) {
				t.Fatalf("err = %v, want ErrDataAccess", err)
			}
		})
	}
}
