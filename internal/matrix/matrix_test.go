package matrix

import (
	"math"
	"reflect"
	"testing"

	"github.com/iwvelando/home-analysis/internal/analysis"
	"github.com/iwvelando/home-analysis/pkg/finance"
	"github.com/iwvelando/home-analysis/pkg/loans"
)

func sweepBase() analysis.ScenarioParams {
	return analysis.ScenarioParams{
		NewHomePrice:              650000, // overwritten per cell
		Inheritance:               353000,
		BonusCash:                 30000,
		SalePrice:                 700000,
		InsuranceAnnual:           8000,
		SellingCostPct:            0.07,
		HighRateThresholdPct:      6.0,
		CurrentMortgagePayment:    2490,
		CurrentHomeOperatingCosts: 390,
		Liens: []loans.Lien{
			{Balance: 330000, Rate: 2.875, Kind: loans.KindMortgage, MonthlyPayment: 2490},
			{Balance: 30000, Rate: 9.0, Kind: loans.KindHeloc, TermYears: 10},
		},
		PayOffHighRateFirst: true,
	}
}

func smallSweep() SweepConfig {
	return SweepConfig{
		HomePrices:    Range{Min: 650000, Max: 700000, Step: 25000},
		InterestRates: Range{Min: 5.0, Max: 6.0, Step: 0.5},
		RentalIncomes: Range{Min: 3500, Max: 4100, Step: 200},
	}
}

func TestRangeValues(t *testing.T) {
	tests := []struct {
		name     string
		r        Range
		expected []float64
	}{
		{
			name:     "Closed-open excludes max on exact multiple",
			r:        Range{Min: 650000, Max: 660000, Step: 5000},
			expected: []float64{650000, 655000},
		},
		{
			name:     "Fractional step",
			r:        Range{Min: 5.0, Max: 5.2, Step: 0.05},
			expected: []float64{5.0, 5.05, 5.1, 5.15},
		},
		{
			name:     "Single value",
			r:        Range{Min: 4000, Max: 4050, Step: 100},
			expected: []float64{4000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := tt.r.Values()
			if len(values) != len(tt.expected) {
				t.Fatalf("got %d values, expected %d: %v", len(values), len(tt.expected), values)
			}
			for i := range values {
				if math.Abs(values[i]-tt.expected[i]) > 1e-9 {
					t.Errorf("value[%d] = %v, expected %v", i, values[i], tt.expected[i])
				}
			}
		})
	}
}

func TestRangeValidate(t *testing.T) {
	if err := (Range{Min: 1, Max: 2, Step: 0}).Validate(); err == nil {
		t.Errorf("expected error for zero step")
	}
	if err := (Range{Min: 2, Max: 2, Step: 1}).Validate(); err == nil {
		t.Errorf("expected error for empty range")
	}
	if err := (Range{Min: 1, Max: 2, Step: 0.5}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		advantage float64
		expected  TrafficLight
	}{
		{
			name:      "Exactly -300 is Green",
			advantage: -300,
			expected:  Green,
		},
		{
			name:      "Just below -300 is Yellow",
			advantage: -300.01,
			expected:  Yellow,
		},
		{
			name:      "Exactly -600 is Yellow",
			advantage: -600,
			expected:  Yellow,
		},
		{
			name:      "Just below -600 is Red",
			advantage: -600.01,
			expected:  Red,
		},
		{
			name:      "Positive advantage is Green",
			advantage: 150,
			expected:  Green,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.advantage); got != tt.expected {
				t.Errorf("Classify(%v) = %s, expected %s", tt.advantage, got, tt.expected)
			}
		})
	}
}

func TestRunGridShape(t *testing.T) {
	baseline := finance.NewBaselineFinances(12000, 9434)
	cells, err := Run(nil, sweepBase(), baseline, smallSweep())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	// 2 prices x 2 rates x 3 rents
	if len(cells) != 12 {
		t.Fatalf("got %d cells, expected 12", len(cells))
	}

	// Keys must be unique across the grid.
	seen := make(map[[3]float64]bool)
	for _, cell := range cells {
		key := [3]float64{cell.HomePrice, cell.InterestRate, cell.RentalIncome}
		if seen[key] {
			t.Errorf("duplicate grid key %v", key)
		}
		seen[key] = true

		if cell.TrafficLight != Classify(cell.RentalAdvantage) {
			t.Errorf("cell %v misclassified as %s", key, cell.TrafficLight)
		}
		if math.Abs(cell.RentalAdvantage-(cell.RentalMonthlyExcess-cell.SellMonthlyExcess)) > 1e-9 {
			t.Errorf("cell %v advantage inconsistent", key)
		}
	}
}

func TestRunWorkerCountInvariant(t *testing.T) {
	baseline := finance.NewBaselineFinances(12000, 9434)

	cfg := smallSweep()
	cfg.Workers = 1
	serial, err := Run(nil, sweepBase(), baseline, cfg)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	cfg.Workers = 4
	parallel, err := Run(nil, sweepBase(), baseline, cfg)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	// Cells are index-addressed, so output must be bit-identical
	// regardless of partitioning.
	if !reflect.DeepEqual(serial, parallel) {
		t.Errorf("sweep output depends on worker count")
	}
}

func TestRunRejectsBadConfig(t *testing.T) {
	baseline := finance.NewBaselineFinances(12000, 9434)

	cfg := smallSweep()
	cfg.InterestRates.Step = -1
	if _, err := Run(nil, sweepBase(), baseline, cfg); err == nil {
		t.Errorf("expected error for invalid range")
	}

	base := sweepBase()
	base.SellingCostPct = 1.5
	if _, err := Run(nil, base, baseline, smallSweep()); err == nil {
		t.Errorf("expected error for invalid base scenario")
	}
}

func TestSummarize(t *testing.T) {
	cells := []GridCell{
		{RentalMonthlyExcess: 100, SellMonthlyExcess: 500, RentalAdvantage: -400},
		{RentalMonthlyExcess: 700, SellMonthlyExcess: 500, RentalAdvantage: 200},
		{RentalMonthlyExcess: -100, SellMonthlyExcess: 550, RentalAdvantage: -650},
	}

	summary := Summarize(cells)

	if summary.Total != 3 {
		t.Errorf("Total = %d, expected 3", summary.Total)
	}
	if summary.RentalWins != 1 {
		t.Errorf("RentalWins = %d, expected 1", summary.RentalWins)
	}
	if summary.Best.RentalAdvantage != 200 {
		t.Errorf("Best advantage = %v, expected 200", summary.Best.RentalAdvantage)
	}
	if summary.RentalExcess.Min != -100 || summary.RentalExcess.Max != 700 {
		t.Errorf("rental excess stats = %+v", summary.RentalExcess)
	}
	if math.Abs(summary.RentalAdvantage.Mean-(-850.0/3)) > 1e-9 {
		t.Errorf("advantage mean = %v", summary.RentalAdvantage.Mean)
	}

	if empty := Summarize(nil); empty.Total != 0 {
		t.Errorf("empty sweep summary = %+v", empty)
	}
}
