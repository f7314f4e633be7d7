package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// ValidateAttributeName validates a vertex attribute name supplied by a caller.
// Attribute names index into per-vertex attribute stores, so the rules are
// intentionally conservative:
//   - No empty names
//   - No control characters
//   - Maximum length of 128 characters
func ValidateAttributeName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidAttribute, "attribute name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidAttribute, "attribute name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidAttribute, "attribute name contains invalid control characters")
		}
	}

	return nil
}

// ValidateOutputPath validates a file path supplied as a render target.
// It rejects empty paths, null bytes, and paths ending in a separator.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidPath, "output path contains a null byte")
	}

	if strings.HasSuffix(path, string(filepath.Separator)) {
		return New(ErrCodeInvalidPath, "output path %q is a directory", path)
	}

	return nil
}
