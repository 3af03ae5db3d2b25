package credentials

import (
	"bufio"
	"fmt"
	"os"
	"route-distance-enricher/internal/domain"
	"strings"
)

// LoadAPIKey returns the first line of the file at path as an opaque key.
// Only the line terminator is removed; the value is not otherwise validated.
func LoadAPIKey(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("load api key: %w: %w", domain.ErrDataAccess, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("load api key: %w: %q is empty", domain.ErrDataAccess, path)
	}

	key := strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
	if key == "" {
		return "", fmt.Errorf("load api key: %w: first line of %q is empty", domain.ErrDataAccess, path)
	}

	return key, nil
}
