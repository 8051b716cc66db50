package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
)

// ParseFile reads, validates, and parses a batch manifest.
func ParseFile(path string) (*Batch, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating manifest %s: %w", path, err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("invalid manifest %s: %s", path, result.Summary())
	}

	var b Batch
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	if err := CheckVersion(b.Version); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	b.Dir = filepath.Dir(path)
	return &b, nil
}

// Resolve returns p joined to the manifest directory unless it is absolute.
func (b *Batch) Resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(b.Dir, filepath.FromSlash(p))
}

// Summary joins the issues into a single line.
func (r *ValidationResult) Summary() string {
	msgs := make([]string, 0, len(r.Issues))
	for _, issue := range r.Issues {
		msg := issue.Message
		if issue.Path != "" {
			msg = issue.Path + ": " + msg
		}
		msgs = append(msgs, msg)
	}
	return strings.Join(msgs, "; ")
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
