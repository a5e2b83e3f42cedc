package driver

import (
	"fmt"
	"os"
	"strings"
)

// LoadSource reads a program source file as UTF-8 text, tolerating a leading
// byte-order mark.
func LoadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return strings.TrimPrefix(string(data), "\uFEFF"), nil
}
