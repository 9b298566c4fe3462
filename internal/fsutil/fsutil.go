// Package fsutil holds the file helpers used when saving rendered output and
// loading content files.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteString writes content to path, creating missing parent directories.
// An existing file is overwritten.
func WriteString(path, content string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// ReadString reads the whole file at path. A leading "~" is expanded to the
// user's home directory.
func ReadString(path string) (string, error) {
	path, err := ExpandHome(path)
	if err != nil {
		return "", err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return string(content), nil
}

// ExpandHome replaces a leading "~" with the user's home directory
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to expand %s: %w", path, err)
	}
	return filepath.Join(home, path[1:]), nil
}
