// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"

	"github.com/iwvelando/home-analysis/internal/analysis"
	"github.com/iwvelando/home-analysis/internal/matrix"
	"github.com/iwvelando/home-analysis/pkg/constants"
	"github.com/iwvelando/home-analysis/pkg/finance"
	"github.com/iwvelando/home-analysis/pkg/loans"
	"github.com/iwvelando/home-analysis/pkg/validation"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Configuration holds all configuration for the analysis matrix.
type Configuration struct {
	Baseline BaselineConfig
	Scenario ScenarioConfig
	Sweep    SweepConfig
	Logging  LoggingConfig `yaml:"logging,omitempty"`
	Output   OutputConfig  `yaml:"output,omitempty"`
}

// BaselineConfig selects the baseline finances source: manual income and
// expense figures, or a spreadsheet path. The two are mutually exclusive.
type BaselineConfig struct {
	MonthlyIncome   float64
	MonthlyExpenses float64
	Spreadsheet     string
}

// ScenarioConfig holds the static scenario parameters shared by every grid
// cell.
type ScenarioConfig struct {
	Inheritance               float64
	BonusCash                 float64
	SalePrice                 float64
	InsuranceAnnual           float64
	SellingCostPct            float64
	HighRateThresholdPct      float64
	CurrentMortgagePayment    float64
	CurrentHomeOperatingCosts float64
	PayOffHighRateFirst       bool
	Liens                     []loans.Lien
}

// SweepConfig holds the grid axes.
type SweepConfig struct {
	HomePrices      RangeConfig
	InterestRates   RangeConfig
	RentalIncomes   RangeConfig
	PropertyTaxRate float64
}

// RangeConfig is a closed-open interval with a fixed step.
type RangeConfig struct {
	Min  float64
	Max  float64
	Step float64
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
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.applyDefaults()
	return &configuration, nil
}

// applyDefaults fills unset scenario knobs with the engine defaults.
func (c *Configuration) applyDefaults() {
	if c.Scenario.SellingCostPct == 0 {
		c.Scenario.SellingCostPct = constants.DefaultSellingCostRate
	}
	if c.Scenario.HighRateThresholdPct == 0 {
		c.Scenario.HighRateThresholdPct = constants.DefaultHighRateThreshold
	}
	if c.Sweep.PropertyTaxRate == 0 {
		c.Sweep.PropertyTaxRate = constants.DefaultPropertyTaxRate
	}
	if c.Output.Format == "" {
		c.Output.Format = constants.OutputFormatCSV
	}
	for i := range c.Scenario.Liens {
		if c.Scenario.Liens[i].Kind == "" {
			c.Scenario.Liens[i].Kind = loans.KindOther
		}
	}
}

// BuildBaseline produces the immutable baseline finances from the
// configured source.
func (c *Configuration) BuildBaseline(logger *zap.Logger) (finance.BaselineFinances, error) {
	if c.Baseline.Spreadsheet != "" {
		if c.Baseline.MonthlyIncome != 0 || c.Baseline.MonthlyExpenses != 0 {
			return finance.BaselineFinances{}, fmt.Errorf("baseline spreadsheet and manual income/expenses are mutually exclusive")
		}
		return finance.LoadSpreadsheet(logger, c.Baseline.Spreadsheet)
	}
	if c.Baseline.MonthlyIncome == 0 && c.Baseline.MonthlyExpenses == 0 {
		return finance.BaselineFinances{}, fmt.Errorf("baseline requires either a spreadsheet or manual income/expenses")
	}
	return finance.NewBaselineFinances(c.Baseline.MonthlyIncome, c.Baseline.MonthlyExpenses), nil
}

// ScenarioParams assembles the base evaluation point for the sweep. The
// per-cell fields (price, rate, rental income, property tax) are filled by
// the sweep itself; the price placeholder keeps the base valid.
func (c *Configuration) ScenarioParams() analysis.ScenarioParams {
	return analysis.ScenarioParams{
		NewHomePrice:              c.Sweep.HomePrices.Min,
		Inheritance:               c.Scenario.Inheritance,
		BonusCash:                 c.Scenario.BonusCash,
		SalePrice:                 c.Scenario.SalePrice,
		InsuranceAnnual:           c.Scenario.InsuranceAnnual,
		SellingCostPct:            c.Scenario.SellingCostPct,
		HighRateThresholdPct:      c.Scenario.HighRateThresholdPct,
		CurrentMortgagePayment:    c.Scenario.CurrentMortgagePayment,
		CurrentHomeOperatingCosts: c.Scenario.CurrentHomeOperatingCosts,
		Liens:                     c.Scenario.Liens,
		PayOffHighRateFirst:       c.Scenario.PayOffHighRateFirst,
	}
}

// MatrixConfig assembles the sweep configuration.
func (c *Configuration) MatrixConfig(workers int) matrix.SweepConfig {
	return matrix.SweepConfig{
		HomePrices:      matrix.Range{Min: c.Sweep.HomePrices.Min, Max: c.Sweep.HomePrices.Max, Step: c.Sweep.HomePrices.Step},
		InterestRates:   matrix.Range{Min: c.Sweep.InterestRates.Min, Max: c.Sweep.InterestRates.Max, Step: c.Sweep.InterestRates.Step},
		RentalIncomes:   matrix.Range{Min: c.Sweep.RentalIncomes.Min, Max: c.Sweep.RentalIncomes.Max, Step: c.Sweep.RentalIncomes.Step},
		PropertyTaxRate: c.Sweep.PropertyTaxRate,
		Workers:         workers,
	}
}

// ValidateConfiguration performs general validation of the configuration
// and returns advisory warnings.
func (c *Configuration) ValidateConfiguration(baseline finance.BaselineFinances) []string {
	availableCash := c.Scenario.Inheritance + c.Scenario.BonusCash
	return validation.AdvisoryWarnings(
		availableCash,
		c.Sweep.HomePrices.Min,
		c.Sweep.RentalIncomes.Min,
		c.Scenario.CurrentHomeOperatingCosts,
		c.Scenario.CurrentMortgagePayment+loans.TotalPayment(c.Scenario.Liens),
		baseline.MonthlyIncome,
	)
}
