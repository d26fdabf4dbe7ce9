// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"
	"strings"

	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/iwvelando/mortgage-calculator/pkg/mortgage"
	"github.com/samber/lo"
)

var outputFormats = []string{constants.OutputFormatPretty, constants.OutputFormatCSV}

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if !lo.Contains(outputFormats, format) {
		return fmt.Errorf("expected output format of %s, got %s",
			strings.Join(outputFormats, " or "), format)
	}
	return nil
}

// MortgageEntry is the subset of a configured mortgage that is checked
// before any calculation runs.
type MortgageEntry struct {
	Name          string
	PropertyPrice float64
	DownPayment   float64
	PaySchedule   string
}

// ConfigValidator collects warnings about a batch of configured mortgages.
// Warnings never stop a run; hard failures are reported per entry by the
// calculator.
type ConfigValidator struct {
	Entries []MortgageEntry
}

// ValidateAll validates every entry and returns warnings
func (cv *ConfigValidator) ValidateAll() []string {
	var warnings []string

	if len(cv.Entries) == 0 {
		return append(warnings, "No mortgages configured")
	}

	seen := make(map[string]int)
	for i, entry := range cv.Entries {
		label := entryLabel(i, entry.Name)

		if strings.TrimSpace(entry.Name) == "" {
			warnings = append(warnings, fmt.Sprintf("%s has no name", label))
		} else if first, dup := seen[entry.Name]; dup {
			warnings = append(warnings, fmt.Sprintf("%s duplicates the name of mortgage #%d", label, first+1))
		} else {
			seen[entry.Name] = i
		}

		warnings = append(warnings, ValidateEntry(label, entry)...)
	}

	return warnings
}

// ValidateEntry returns warnings for a single entry.
func ValidateEntry(label string, entry MortgageEntry) []string {
	var warnings []string

	if _, ok := mortgage.ParsePaySchedule(entry.PaySchedule); !ok {
		warnings = append(warnings, fmt.Sprintf("%s uses unsupported pay schedule '%s' (expected one of: %s)",
			label, entry.PaySchedule, strings.Join(lo.Map(mortgage.Schedules(), func(s mortgage.PaySchedule, _ int) string {
				return s.String()
			}), ", ")))
	}

	if entry.DownPayment > entry.PropertyPrice {
		warnings = append(warnings, fmt.Sprintf("%s down payment exceeds property price (%.2f > %.2f) - payment will be 0",
			label, entry.DownPayment, entry.PropertyPrice))
	}

	return warnings
}

func entryLabel(index int, name string) string {
	if strings.TrimSpace(name) == "" {
		return fmt.Sprintf("Mortgage #%d", index+1)
	}
	return fmt.Sprintf("Mortgage '%s'", name)
}
