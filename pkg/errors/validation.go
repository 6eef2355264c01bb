package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// ValidateUploadName validates an uploaded drawing filename.
// It rejects names that could be used for path traversal and names
// whose extension is not a supported drawing format.
//
// Returns nil for ".dxf" and ".dwg" uploads; anything else is rejected
// with ErrCodeUnsupportedFileType. Note that ".dwg" is accepted as an
// attachment only; callers that need a parsed outline should check
// IsOutlineSource separately.
func ValidateUploadName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "upload filename cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "upload filename too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "upload filename contains invalid control characters")
		}
	}

	// Must be a simple filename, not a path
	if strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return New(ErrCodeInvalidInput, "upload filename cannot contain path components")
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".dxf", ".dwg":
		return nil
	default:
		return New(ErrCodeUnsupportedFileType, "unsupported file type %q (expected .dxf or .dwg)", filepath.Ext(name))
	}
}

// IsOutlineSource reports whether the named upload can yield a parsed
// outline. Only ".dxf" files are parsed; ".dwg" files are stored as
// opaque attachments without preview geometry.
func IsOutlineSource(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".dxf")
}
