// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"io"

	"github.com/iwvelando/loan-compare/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for loan-compare.
type Configuration struct {
	Loans      []Loan
	Prepayment PrepaymentConfig `yaml:"prepayment,omitempty"`
	Logging    LoggingConfig    `yaml:"logging,omitempty"`
	Output     OutputConfig     `yaml:"output,omitempty"`
}

// PrepaymentConfig holds the optional yearly prepayment policy shared across
// all compared loans.
type PrepaymentConfig struct {
	YearlyAmount float64 `yaml:"yearlyAmount,omitempty"`
	StartYear    int     `yaml:"startYear,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from the
// given reader; used by the HTTP server for uploaded and editor-built
// configs.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Loan parameter bounds are enforced here rather than in
// the schedule engine.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if len(conf.Loans) == 0 {
		warnings = append(warnings, "No loans configured; nothing to compare")
	}

	seen := make(map[string]struct{})
	for _, loan := range conf.Loans {
		warnings = append(warnings, validation.ValidateLoanTerms(loan.Name, loan.Principal, loan.InterestRate, loan.TenureYears)...)
		if _, duplicate := seen[loan.Name]; duplicate {
			warnings = append(warnings, fmt.Sprintf("Duplicate loan name '%s'", loan.Name))
		}
		seen[loan.Name] = struct{}{}
	}

	warnings = append(warnings, validation.ValidatePrepayment(conf.Prepayment.YearlyAmount, conf.Prepayment.StartYear)...)

	return warnings
}
