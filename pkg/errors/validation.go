package errors

import (
	"strings"
	"unicode"
)

// ValidateLabel validates a table row label or column header before it is
// used in a lookup.
//
// The rules are deliberately narrow:
//   - No empty labels
//   - No control characters
//   - Maximum length of 256 characters
//
// Labels are otherwise matched verbatim, so case and inner spaces matter.
func ValidateLabel(label string) error {
	if label == "" {
		return New(ErrCodeInvalidInput, "label cannot be empty")
	}

	if len(label) > 256 {
		return New(ErrCodeInvalidInput, "label too long (max 256 characters)")
	}

	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "label contains invalid control characters")
		}
	}

	return nil
}

// ValidateSheetName validates a worksheet name using the spreadsheet rules:
// at most 31 characters, none of []:*?/\ and no leading or trailing
// apostrophe. An empty name is allowed and selects the active sheet.
func ValidateSheetName(name string) error {
	if name == "" {
		return nil
	}

	if len([]rune(name)) > 31 {
		return New(ErrCodeInvalidInput, "sheet name too long (max 31 characters): %q", name)
	}

	if i := strings.IndexAny(name, `[]:*?/\`); i >= 0 {
		return New(ErrCodeInvalidInput, "sheet name contains invalid character %q", name[i])
	}

	if strings.HasPrefix(name, "'") || strings.HasSuffix(name, "'") {
		return New(ErrCodeInvalidInput, "sheet name cannot start or end with an apostrophe")
	}

	return nil
}

// ValidatePath validates a data file path before it is opened.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
