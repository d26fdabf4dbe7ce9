// Package config defines the data structures related to configuration and
// includes functions for loading the batch configuration.
package config

import (
	"fmt"
	"io"

	"github.com/iwvelando/mortgage-calculator/internal/logging"
	"github.com/iwvelando/mortgage-calculator/pkg/mortgage"
	"github.com/iwvelando/mortgage-calculator/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for a batch of mortgage quotes.
type Configuration struct {
	Logging   logging.Config `yaml:"logging,omitempty"`
	Output    OutputConfig   `yaml:"output,omitempty"`
	Mortgages []Mortgage
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// Mortgage is a single named mortgage request.
type Mortgage struct {
	Name               string
	PropertyPrice      float64
	DownPayment        float64
	InterestRate       float64 // annual, percent
	AmortizationPeriod int     // years
	PaySchedule        string
}

// Request converts the configured mortgage into a calculator request.
func (m Mortgage) Request() mortgage.Request {
	return mortgage.Request{
		PropertyPrice:           m.PropertyPrice,
		DownPayment:             m.DownPayment,
		InterestRatePercent:     m.InterestRate,
		AmortizationPeriodYears: m.AmortizationPeriod,
		PaySchedule:             m.PaySchedule,
	}
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %w", err)
	}

	return decode(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %w", err)
	}

	return decode(v)
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}
	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings.
func (c *Configuration) ValidateConfiguration() []string {
	validator := &validation.ConfigValidator{}
	for _, m := range c.Mortgages {
		validator.Entries = append(validator.Entries, validation.MortgageEntry{
			Name:          m.Name,
			PropertyPrice: m.PropertyPrice,
			DownPayment:   m.DownPayment,
			PaySchedule:   m.PaySchedule,
		})
	}

	var warnings []string
	if c.Output.Format != "" {
		if err := validation.ValidateOutputFormat(c.Output.Format); err != nil {
			warnings = append(warnings, err.Error())
		}
	}
	return append(warnings, validator.ValidateAll()...)
}
