// Package matrix sweeps the strategy evaluators over a Cartesian grid of
// (home price, interest rate, rental income) and classifies each cell.
package matrix

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/iwvelando/home-analysis/internal/analysis"
	"github.com/iwvelando/home-analysis/pkg/constants"
	"github.com/iwvelando/home-analysis/pkg/finance"
	"go.uber.org/zap"
)

// Range is an evenly spaced closed-open interval [Min, Max) with a fixed
// step.
type Range struct {
	Min  float64
	Max  float64
	Step float64
}

// Validate rejects malformed ranges.
func (r Range) Validate() error {
	if r.Step <= 0 {
		return fmt.Errorf("range step must be > 0, got %v", r.Step)
	}
	if r.Max <= r.Min {
		return fmt.Errorf("range max %v must exceed min %v", r.Max, r.Min)
	}
	return nil
}

// Values enumerates the range. The values are index-derived so repeated
// enumeration is bit-identical.
func (r Range) Values() []float64 {
	n := r.Count()
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		values[i] = r.Min + float64(i)*r.Step
	}
	return values
}

// Count returns the number of values the range enumerates.
func (r Range) Count() int {
	if r.Max <= r.Min || r.Step <= 0 {
		return 0
	}
	// Nudge below the exact quotient so an exact multiple excludes Max.
	return int(math.Ceil((r.Max-r.Min)/r.Step - 1e-9))
}

// TrafficLight is the three-band classification of a cell's rental
// advantage.
type TrafficLight string

// Traffic light bands.
const (
	Green  TrafficLight = "Green"
	Yellow TrafficLight = "Yellow"
	Red    TrafficLight = "Red"
)

// Classify bands a monthly rental advantage. The -300/-600 boundaries are
// fixed constants of the design.
func Classify(advantage float64) TrafficLight {
	switch {
	case advantage >= constants.GreenAdvantageThreshold:
		return Green
	case advantage >= constants.YellowAdvantageThreshold:
		return Yellow
	default:
		return Red
	}
}

// GridCell is one point in a sweep. The (HomePrice, InterestRate,
// RentalIncome) key is unique over a sweep.
type GridCell struct {
	HomePrice           float64
	InterestRate        float64
	RentalIncome        float64
	RentalMonthlyExcess float64
	SellMonthlyExcess   float64
	RentalRemainingCash float64
	SellRemainingCash   float64
	RentalAdvantage     float64
	TrafficLight        TrafficLight
}

// SweepConfig describes the grid and how to evaluate it.
type SweepConfig struct {
	HomePrices    Range
	InterestRates Range
	RentalIncomes Range

	// PropertyTaxRate derives each cell's annual property tax from its home
	// price; zero selects the flat default rate.
	PropertyTaxRate float64

	// Workers partitions the home-price axis; zero selects GOMAXPROCS.
	Workers int
}

// Validate rejects malformed sweep configuration.
func (c SweepConfig) Validate() error {
	if err := c.HomePrices.Validate(); err != nil {
		return fmt.Errorf("home price range: %w", err)
	}
	if err := c.InterestRates.Validate(); err != nil {
		return fmt.Errorf("interest rate range: %w", err)
	}
	if err := c.RentalIncomes.Validate(); err != nil {
		return fmt.Errorf("rental income range: %w", err)
	}
	if c.PropertyTaxRate < 0 {
		return fmt.Errorf("property tax rate must be >= 0, got %v", c.PropertyTaxRate)
	}
	return nil
}

// Run evaluates both strategies over the full grid. Every cell is a pure
// function of its inputs, so the home-price axis is partitioned across
// workers with no locking; cells land at index-derived positions and the
// output ordering is independent of worker count.
func Run(logger *zap.Logger, base analysis.ScenarioParams, baseline finance.BaselineFinances, cfg SweepConfig) ([]GridCell, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := base.Validate(); err != nil {
		return nil, fmt.Errorf("base scenario: %w", err)
	}

	taxRate := cfg.PropertyTaxRate
	if taxRate == 0 {
		taxRate = constants.DefaultPropertyTaxRate
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	prices := cfg.HomePrices.Values()
	rates := cfg.InterestRates.Values()
	rents := cfg.RentalIncomes.Values()
	cells := make([]GridCell, len(prices)*len(rates)*len(rents))

	logger.Debug("starting sweep",
		zap.String("op", "matrix.Run"),
		zap.Int("homePrices", len(prices)),
		zap.Int("interestRates", len(rates)),
		zap.Int("rentalIncomes", len(rents)),
		zap.Int("cells", len(cells)),
		zap.Int("workers", workers),
	)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := worker; i < len(prices); i += workers {
				sweepPriceSlice(cells, i, prices, rates, rents, base, baseline, taxRate)
			}
		}(w)
	}
	wg.Wait()

	return cells, nil
}

// sweepPriceSlice fills the cells for one home price. The sell strategy
// does not depend on rental income, so it is evaluated once per
// (price, rate) pair.
func sweepPriceSlice(cells []GridCell, i int, prices, rates, rents []float64, base analysis.ScenarioParams, baseline finance.BaselineFinances, taxRate float64) {
	price := prices[i]
	for j, rate := range rates {
		params := base
		params.NewHomePrice = price
		params.InterestRatePct = rate
		params.PropertyTaxAnnual = price * taxRate

		sell := analysis.EvaluateSell(nil, params, baseline)

		for k, rent := range rents {
			params.RentalIncome = rent
			rental := analysis.EvaluateRental(nil, params, baseline)
			advantage := rental.NewMonthlySurplus - sell.NewMonthlySurplus

			cells[(i*len(rates)+j)*len(rents)+k] = GridCell{
				HomePrice:           price,
				InterestRate:        rate,
				RentalIncome:        rent,
				RentalMonthlyExcess: rental.NewMonthlySurplus,
				SellMonthlyExcess:   sell.NewMonthlySurplus,
				RentalRemainingCash: rental.RemainingCash,
				SellRemainingCash:   sell.RemainingCash,
				RentalAdvantage:     advantage,
				TrafficLight:        Classify(advantage),
			}
		}
	}
}
