package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iwvelando/mortgage-calculator/pkg/constants"
)

const testConfigYAML = `logging:
  level: debug
  format: console
  outputFile: /tmp/mortgage.log
output:
  format: csv
mortgages:
  - name: starter
    propertyPrice: 500000
    downPayment: 25000
    interestRate: 5.61
    amortizationPeriod: 10
    paySchedule: Bi-Weekly
  - name: family
    propertyPrice: 1000000
    downPayment: 200000
    interestRate: 5.621
    amortizationPeriod: 25
    paySchedule: monthly
`

func TestLoadConfiguration(t *testing.T) {
	dir := t.TempDir()
	validPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(validPath, []byte(testConfigYAML), 0600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	brokenPath := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(brokenPath, []byte("mortgages: [\n"), 0600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	tests := []struct {
		name       string
		configPath string
		wantError  bool
	}{
		{
			name:       "Non-existent config file",
			configPath: filepath.Join(dir, "nonexistent.yaml"),
			wantError:  true,
		},
		{
			name:       "Malformed YAML",
			configPath: brokenPath,
			wantError:  true,
		},
		{
			name:       "Valid config",
			configPath: validPath,
			wantError:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := LoadConfiguration(tt.configPath)
			if tt.wantError {
				if err == nil {
					t.Errorf("LoadConfiguration() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadConfiguration() error = %v", err)
			}
			if config == nil {
				t.Fatalf("LoadConfiguration() returned nil config")
			}
			assertTestConfig(t, config)
		})
	}
}

func TestLoadConfigurationFromReader(t *testing.T) {
	config, err := LoadConfigurationFromReader(strings.NewReader(testConfigYAML))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() error = %v", err)
	}
	assertTestConfig(t, config)
}

func TestLoadConfigurationExample(t *testing.T) {
	config, err := LoadConfiguration(filepath.Join("..", "..", constants.ExampleConfigFile))
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if len(config.Mortgages) != 5 {
		t.Fatalf("expected 5 mortgages in example config, got %d", len(config.Mortgages))
	}
	if warnings := config.ValidateConfiguration(); len(warnings) != 0 {
		t.Errorf("expected example config to validate cleanly, got %v", warnings)
	}
}

func TestMortgageRequest(t *testing.T) {
	m := Mortgage{
		Name:               "starter",
		PropertyPrice:      500000,
		DownPayment:        25000,
		InterestRate:       5.61,
		AmortizationPeriod: 10,
		PaySchedule:        "monthly",
	}

	req := m.Request()
	if req.PropertyPrice != 500000 || req.DownPayment != 25000 || req.InterestRatePercent != 5.61 ||
		req.AmortizationPeriodYears != 10 || req.PaySchedule != "monthly" {
		t.Errorf("Request() = %+v, fields not carried over", req)
	}
	if req.Principal() != 475000 {
		t.Errorf("Principal() = %v, expected 475000", req.Principal())
	}
}

func TestValidateConfiguration(t *testing.T) {
	config := &Configuration{
		Output: OutputConfig{Format: "json"},
		Mortgages: []Mortgage{
			{Name: "a", PropertyPrice: 500000, DownPayment: 25000, PaySchedule: "monthly"},
			{Name: "a", PropertyPrice: 500000, DownPayment: 600000, PaySchedule: "weekly"},
		},
	}

	warnings := config.ValidateConfiguration()
	// output format, duplicate name, unsupported schedule, down payment above price
	if len(warnings) != 4 {
		t.Fatalf("ValidateConfiguration() returned %d warnings, expected 4: %v", len(warnings), warnings)
	}
	if !strings.Contains(warnings[0], "expected output format") {
		t.Errorf("expected output format warning first, got %q", warnings[0])
	}
}

func assertTestConfig(t *testing.T, config *Configuration) {
	t.Helper()

	if config.Logging.Level != "debug" || config.Logging.Format != "console" || config.Logging.OutputFile != "/tmp/mortgage.log" {
		t.Errorf("unexpected logging config %+v", config.Logging)
	}
	if config.Output.Format != "csv" {
		t.Errorf("expected csv output, got %q", config.Output.Format)
	}
	if len(config.Mortgages) != 2 {
		t.Fatalf("expected 2 mortgages, got %d", len(config.Mortgages))
	}

	starter := config.Mortgages[0]
	if starter.Name != "starter" || starter.PropertyPrice != 500000 || starter.DownPayment != 25000 ||
		starter.InterestRate != 5.61 || starter.AmortizationPeriod != 10 || starter.PaySchedule != "Bi-Weekly" {
		t.Errorf("unexpected first mortgage %+v", starter)
	}
	if config.Mortgages[1].AmortizationPeriod != 25 {
		t.Errorf("expected second mortgage amortization of 25, got %d", config.Mortgages[1].AmortizationPeriod)
	}
}
