package validation

import (
	"strings"
	"testing"
)

type features struct {
	Format string `mapstructure:"format" validate:"godog_format"`
}

func TestFormatValidation(t *testing.T) {
	validate, err := NewValidator()
	if err != nil {
		t.Fatalf("NewValidator returned error: %v", err)
	}

	testCases := []struct {
		format string
		valid  bool
	}{
		{"pretty", true},
		{"progress", true},
		{"junit:report.xml", true},
		{"pretty,cucumber:report.json", true},
		{"", false},
		{"html", false},
		{"pretty,fancy:out.txt", false},
	}
	for _, tc := range testCases {
		t.Run(tc.format, func(t *testing.T) {
			err := validate.Struct(features{Format: tc.format})
			if tc.valid && err != nil {
				t.Fatalf("expected %q to be valid, got %v", tc.format, err)
			}
			if !tc.valid {
				if err == nil {
					t.Fatalf("expected %q to be rejected", tc.format)
				}
				if !strings.Contains(err.Error(), "format") {
					t.Fatalf("expected the error to name the format key, got %v", err)
				}
			}
		})
	}
}
