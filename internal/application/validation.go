package application

import (
	"fmt"
	"strings"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// ValidateIndex checks that an entry or position index is not negative
func ValidateIndex(fieldName string, index int) error {
	if index < 0 {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s must not be negative, got %d", formatFieldName(fieldName), index),
		}
	}
	return nil
}

// ValidateFolderName rejects names that cannot be shown as a single tree row
func ValidateFolderName(fieldName, name string) error {
	if err := ValidateRequired(fieldName, name); err != nil {
		return err
	}
	if strings.ContainsAny(name, "\r\n\t") {
		return &ValidationError{
			Field:   fieldName,
			Message: "name must be a single line",
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "folderID" -> "folder ID")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"folderID":       "folder ID",
		"parentID":       "parent ID",
		"targetParentID": "target parent ID",
		"entryIndex":     "entry index",
		"index":          "index",
		"name":           "name",
		"path":           "path",
		"method":         "method",
		"scriptPath":     "script path",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}
