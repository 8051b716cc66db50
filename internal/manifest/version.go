package manifest

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// SupportedFormat is the semver constraint manifest versions must satisfy.
const SupportedFormat = "^1.0"

// CheckVersion reports whether a manifest format version is supported.
// A leading "v" is tolerated.
func CheckVersion(version string) error {
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return fmt.Errorf("parsing manifest version %q: %w", version, err)
	}
	c, err := semver.NewConstraint(SupportedFormat)
	if err != nil {
		return fmt.Errorf("parsing constraint %q: %w", SupportedFormat, err)
	}
	if !c.Check(v) {
		return fmt.Errorf("manifest version %s is not supported (want %s)", version, SupportedFormat)
	}
	return nil
}
