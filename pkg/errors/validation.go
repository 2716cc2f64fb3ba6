package errors

import (
	"math"
	"regexp"
	"unicode"
)

// ValidateThreshold checks that a similarity cutoff lies in [0, 1].
func ValidateThreshold(threshold float64) error {
	if math.IsNaN(threshold) || threshold < 0 || threshold > 1 {
		return New(ErrCodeInvalidThreshold, "threshold must be between 0 and 1, got %v", threshold)
	}
	return nil
}

// ValidateReferenceCount checks that the number of reference packages is positive.
func ValidateReferenceCount(n int) error {
	if n <= 0 {
		return New(ErrCodeInvalidReferenceCount, "number of top packages must be positive, got %d", n)
	}
	return nil
}

// ValidatePackageName reports names that are unlikely to be plain requirements.
//
// The rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - Maximum length of 256 characters
//   - Must match the PEP 508 distribution name grammar
//
// The manifest reader keeps names that fail; it only reports them.
func ValidatePackageName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPackage, "package name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidPackage, "package name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPackage, "package name contains invalid control characters")
		}
	}

	if !pythonPackageNameRegex.MatchString(name) {
		return New(ErrCodeInvalidPackage, "invalid Python package name: %q", name)
	}

	return nil
}

// pythonPackageNameRegex matches valid Python package names (PEP 508).
var pythonPackageNameRegex = regexp.MustCompile(`^([A-Za-z0-9]|[A-Za-z0-9][A-Za-z0-9._-]*[A-Za-z0-9])$`)
