package manifest

import (
	"testing"
)

func TestValidateFile_Valid(t *testing.T) {
	for _, file := range []string{"valid-batch.yaml", "valid-sentinels.yaml", "unsupported-version.yaml"} {
		t.Run(file, func(t *testing.T) {
			result, err := ValidateFile(testPath(file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) error: %v", file, err)
			}
			if !result.Valid {
				t.Errorf("expected valid, got %d issues:", len(result.Issues))
				for _, issue := range result.Issues {
					t.Errorf("  path=%s keyword=%s message=%s", issue.Path, issue.Keyword, issue.Message)
				}
			}
		})
	}
}

func TestValidateFile_Invalid(t *testing.T) {
	tests := []struct {
		file    string
		keyword string
	}{
		{"invalid-missing-host.yaml", "required"},
		{"invalid-bad-table.yaml", "pattern"},
		{"invalid-unquoted-version.yaml", "type"},
		{"invalid-no-chapters.yaml", "minItems"},
		{"invalid-unknown-field.yaml", "additionalProperties"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			result, err := ValidateFile(testPath(tt.file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) unexpected error: %v", tt.file, err)
			}
			if result.Valid {
				t.Fatalf("expected invalid for %s, got valid", tt.file)
			}

			found := false
			for _, issue := range result.Issues {
				if issue.Keyword == tt.keyword {
					found = true
				}
				if issue.Message == "" {
					t.Errorf("issue %+v has empty message", issue)
				}
			}
			if !found {
				t.Errorf("expected a %q issue, got %+v", tt.keyword, result.Issues)
			}
			if result.Summary() == "" {
				t.Error("Summary() is empty")
			}
		})
	}
}

func TestValidate_IssuePath(t *testing.T) {
	result, err := ValidateFile(testPath("invalid-bad-table.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Issues) == 0 {
		t.Fatal("expected issues")
	}
	if got := result.Issues[0].Path; got != "/chapters/0/table" {
		t.Errorf("Path = %q, want %q", got, "/chapters/0/table")
	}
}

func TestValidate_InvalidYAML(t *testing.T) {
	if _, err := ValidateFile(testPath("invalid-not-yaml.yaml")); err == nil {
		t.Fatal("expected error for invalid YAML, got nil")
	}
}
