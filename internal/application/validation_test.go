package application

import (
	"errors"
	"testing"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		wantErr   bool
	}{
		{
			name:      "valid value",
			fieldName: "name",
			value:     "Scenes",
			wantErr:   false,
		},
		{
			name:      "empty string",
			fieldName: "name",
			value:     "",
			wantErr:   true,
		},
		{
			name:      "whitespace only",
			fieldName: "folderID",
			value:     "   ",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.fieldName, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequired() error = %v, wantErr %v", err, tt.wantErr)
			}

			if err != nil {
				var valErr *ValidationError
				if !errors.As(err, &valErr) {
					t.Fatalf("expected ValidationError, got %T", err)
				}
				if valErr.Field != tt.fieldName {
					t.Errorf("expected field %s, got %s", tt.fieldName, valErr.Field)
				}
			}
		})
	}
}

func TestValidateIndex(t *testing.T) {
	if err := ValidateIndex("entryIndex", 0); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	err := ValidateIndex("entryIndex", -1)
	if err == nil {
		t.Fatal("expected error for negative index")
	}
	if got := err.Error(); got != "entryIndex: entry index must not be negative, got -1" {
		t.Errorf("unexpected message: %s", got)
	}
}

func TestValidateFolderName(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"plain", "Characters", false},
		{"numbered", "New Folder (2)", false},
		{"blank", " ", true},
		{"multi line", "a\nb", true},
		{"tab", "a\tb", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFolderName("name", tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFolderName(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestFormatFieldName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"folderID", "folder ID"},
		{"targetParentID", "target parent ID"},
		{"entryIndex", "entry index"},
		{"unknown", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := formatFieldName(tt.input); got != tt.want {
				t.Errorf("formatFieldName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
