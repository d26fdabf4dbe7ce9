package validation

import (
	"strings"
	"testing"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name      string
		format    string
		expectErr bool
	}{
		{
			name:      "Valid pretty format",
			format:    "pretty",
			expectErr: false,
		},
		{
			name:      "Valid csv format",
			format:    "csv",
			expectErr: false,
		},
		{
			name:      "Invalid format",
			format:    "json",
			expectErr: true,
		},
		{
			name:      "Empty format",
			format:    "",
			expectErr: true,
		},
		{
			name:      "Case sensitive - uppercase",
			format:    "PRETTY",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if tt.expectErr && err == nil {
				t.Errorf("ValidateOutputFormat(%q) expected error but got none", tt.format)
			}
			if !tt.expectErr && err != nil {
				t.Errorf("ValidateOutputFormat(%q) unexpected error = %v", tt.format, err)
			}
		})
	}
}

func TestValidateEntry(t *testing.T) {
	tests := []struct {
		name            string
		entry           MortgageEntry
		expectWarnCount int
		expectContains  string
	}{
		{
			name:            "Clean entry",
			entry:           MortgageEntry{Name: "starter", PropertyPrice: 500000, DownPayment: 25000, PaySchedule: "monthly"},
			expectWarnCount: 0,
		},
		{
			name:            "Mixed case schedule is accepted",
			entry:           MortgageEntry{Name: "starter", PropertyPrice: 500000, DownPayment: 25000, PaySchedule: "Accelerated Bi-Weekly"},
			expectWarnCount: 0,
		},
		{
			name:            "Unsupported schedule",
			entry:           MortgageEntry{Name: "weekly", PropertyPrice: 500000, DownPayment: 25000, PaySchedule: "weekly"},
			expectWarnCount: 1,
			expectContains:  "unsupported pay schedule 'weekly'",
		},
		{
			name:            "Down payment above price",
			entry:           MortgageEntry{Name: "paid", PropertyPrice: 500000, DownPayment: 500001, PaySchedule: "monthly"},
			expectWarnCount: 1,
			expectContains:  "payment will be 0",
		},
		{
			name:            "Both problems",
			entry:           MortgageEntry{Name: "odd", PropertyPrice: 100, DownPayment: 200, PaySchedule: "daily"},
			expectWarnCount: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := ValidateEntry("Mortgage '"+tt.entry.Name+"'", tt.entry)
			if len(warnings) != tt.expectWarnCount {
				t.Fatalf("ValidateEntry() returned %d warnings, expected %d: %v", len(warnings), tt.expectWarnCount, warnings)
			}
			if tt.expectContains != "" && !strings.Contains(warnings[0], tt.expectContains) {
				t.Errorf("ValidateEntry() warning %q does not contain %q", warnings[0], tt.expectContains)
			}
		})
	}
}

func TestConfigValidatorValidateAll(t *testing.T) {
	tests := []struct {
		name            string
		entries         []MortgageEntry
		expectWarnCount int
		expectContains  []string
	}{
		{
			name:            "Empty batch",
			entries:         nil,
			expectWarnCount: 1,
			expectContains:  []string{"No mortgages configured"},
		},
		{
			name: "Clean batch",
			entries: []MortgageEntry{
				{Name: "a", PropertyPrice: 500000, DownPayment: 25000, PaySchedule: "monthly"},
				{Name: "b", PropertyPrice: 750000, DownPayment: 50000, PaySchedule: "bi-weekly"},
			},
			expectWarnCount: 0,
		},
		{
			name: "Unnamed entry",
			entries: []MortgageEntry{
				{PropertyPrice: 500000, DownPayment: 25000, PaySchedule: "monthly"},
			},
			expectWarnCount: 1,
			expectContains:  []string{"Mortgage #1 has no name"},
		},
		{
			name: "Duplicate names",
			entries: []MortgageEntry{
				{Name: "a", PropertyPrice: 500000, DownPayment: 25000, PaySchedule: "monthly"},
				{Name: "a", PropertyPrice: 500000, DownPayment: 25000, PaySchedule: "bi-weekly"},
			},
			expectWarnCount: 1,
			expectContains:  []string{"Mortgage 'a' duplicates the name of mortgage #1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validator := &ConfigValidator{Entries: tt.entries}
			warnings := validator.ValidateAll()
			if len(warnings) != tt.expectWarnCount {
				t.Fatalf("ValidateAll() returned %d warnings, expected %d: %v", len(warnings), tt.expectWarnCount, warnings)
			}
			joined := strings.Join(warnings, "\n")
			for _, want := range tt.expectContains {
				if !strings.Contains(joined, want) {
					t.Errorf("ValidateAll() warnings %q missing %q", joined, want)
				}
			}
		})
	}
}
