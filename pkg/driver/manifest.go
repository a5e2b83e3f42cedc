// Package driver loads source files and the optional project manifest that
// lets the CLI run without an explicit file argument.
package driver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ManifestFileName is the project manifest looked up next to source files.
const ManifestFileName = "marathi.yml"

// ErrManifestNotFound reports that no marathi.yml exists in the searched
// directory.
var ErrManifestNotFound = errors.New("marathi.yml not found")

// Manifest represents the parsed contents of marathi.yml.
type Manifest struct {
	Path    string
	Name    string
	Version string
	Main    string
	Authors []string
}

type manifestDoc struct {
	Name    string   `yaml:"name"`
	Version string   `yaml:"version"`
	Main    string   `yaml:"main"`
	Authors []string `yaml:"authors"`
}

// ValidationError aggregates manifest validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "manifest: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("manifest validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

func (m *Manifest) validate() error {
	var issues []string
	if strings.TrimSpace(m.Name) == "" {
		issues = append(issues, "name is required")
	}
	if strings.TrimSpace(m.Main) == "" {
		issues = append(issues, "main entry file is required")
	}
	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

// LoadManifest parses marathi.yml from disk, returning a validated manifest.
func LoadManifest(path string) (*Manifest, error) {
	if path == "" {
		return nil, fmt.Errorf("manifest: empty path")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	var doc manifestDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	m := &Manifest{
		Path:    path,
		Name:    doc.Name,
		Version: doc.Version,
		Main:    doc.Main,
		Authors: doc.Authors,
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// FindManifest looks for marathi.yml in dir and returns its path.
func FindManifest(dir string) (string, error) {
	path := filepath.Join(dir, ManifestFileName)
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrManifestNotFound
		}
		return "", err
	}
	if info.IsDir() {
		return "", ErrManifestNotFound
	}
	return path, nil
}

// EntryPath resolves the manifest's main entry relative to the manifest
// location.
func (m *Manifest) EntryPath() string {
	if filepath.IsAbs(m.Main) {
		return m.Main
	}
	return filepath.Join(filepath.Dir(m.Path), m.Main)
}
