// Package analysis implements the financial projection engine: the rental
// and sell strategy evaluators and the risk scenario catalog.
package analysis

import (
	"fmt"

	"github.com/iwvelando/home-analysis/pkg/constants"
	"github.com/iwvelando/home-analysis/pkg/finance"
	"github.com/iwvelando/home-analysis/pkg/loans"
	"github.com/iwvelando/home-analysis/pkg/mathutil"
	"go.uber.org/zap"
)

// Strategy names.
const (
	StrategyRental = "Rental Strategy"
	StrategySell   = "Sell Strategy"
)

// ScenarioParams is one evaluation point. All fields are validated at
// construction time via Validate; the evaluators assume a valid value.
type ScenarioParams struct {
	NewHomePrice              float64
	Inheritance               float64 // total liquid cash
	BonusCash                 float64
	SalePrice                 float64
	RentalIncome              float64
	PropertyTaxAnnual         float64
	InsuranceAnnual           float64
	InterestRatePct           float64
	SellingCostPct            float64
	HighRateThresholdPct      float64
	CurrentMortgagePayment    float64
	CurrentHomeOperatingCosts float64
	Liens                     []loans.Lien
	PayOffHighRateFirst       bool
}

// Validate rejects malformed parameters. Financially degenerate but
// well-typed input (zero rates, underwater sales) is not an error.
func (p ScenarioParams) Validate() error {
	if p.NewHomePrice <= 0 {
		return fmt.Errorf("new home price must be > 0, got %.2f", p.NewHomePrice)
	}
	if p.SellingCostPct < 0 || p.SellingCostPct >= 1 {
		return fmt.Errorf("selling cost percentage must be in [0,1), got %.3f", p.SellingCostPct)
	}
	nonNegative := []struct {
		name  string
		value float64
	}{
		{"inheritance", p.Inheritance},
		{"bonus cash", p.BonusCash},
		{"sale price", p.SalePrice},
		{"rental income", p.RentalIncome},
		{"property tax", p.PropertyTaxAnnual},
		{"insurance", p.InsuranceAnnual},
		{"interest rate", p.InterestRatePct},
		{"high-rate threshold", p.HighRateThresholdPct},
		{"current mortgage payment", p.CurrentMortgagePayment},
		{"operating costs", p.CurrentHomeOperatingCosts},
	}
	for _, field := range nonNegative {
		if field.value < 0 {
			return fmt.Errorf("%s must be >= 0, got %.2f", field.name, field.value)
		}
	}
	for i, lien := range p.Liens {
		if err := lien.Validate(); err != nil {
			return fmt.Errorf("lien %d: %w", i, err)
		}
	}
	return nil
}

// StrategyResult is the outcome of evaluating one strategy for one
// scenario point. It is derived and never mutated after construction.
type StrategyResult struct {
	Strategy           string
	DownPayment        float64
	NewMortgageAmount  float64
	NewMortgagePayment float64
	NewPITI            float64
	NetMonthlyImpact   float64
	NewMonthlySurplus  float64
	AnnualSurplus      float64
	RemainingCash      float64
	RemainingLiens     []loans.Lien // rental strategy only
}

// EvaluateRental computes the monthly surplus delta for keeping the current
// home and renting it out. The baseline surplus already embeds the current
// mortgage and current debt payments as outflows; the net impact removes
// those and adds the new ongoing obligations net of rental income.
func EvaluateRental(logger *zap.Logger, params ScenarioParams, baseline finance.BaselineFinances) StrategyResult {
	if logger == nil {
		logger = zap.NewNop()
	}

	remainingLiens := params.Liens
	cashAfterPayoff := params.Inheritance
	if params.PayOffHighRateFirst {
		remainingLiens, cashAfterPayoff = loans.PayoffHighRateDebt(logger, params.Liens, params.Inheritance, params.HighRateThresholdPct)
	}
	availableCash := cashAfterPayoff + params.BonusCash

	totalRemainingDebtPayment := loans.TotalPayment(remainingLiens)
	totalCurrentDebtPayment := loans.TotalPayment(params.Liens)

	// At least the 3% minimum is financed even if cash is insufficient,
	// and the down payment never exceeds the full price.
	minDown := constants.MinimumDownPaymentRate * params.NewHomePrice
	downPayment := mathutil.Clamp(availableCash, minDown, params.NewHomePrice)

	mortgageAmount := mathutil.Max(0, params.NewHomePrice-downPayment)
	mortgagePayment := loans.MonthlyPayment(mortgageAmount, params.InterestRatePct, constants.DefaultLoanTermYears)
	newPITI := mortgagePayment + params.PropertyTaxAnnual/constants.MonthsPerYear + params.InsuranceAnnual/constants.MonthsPerYear

	netMonthlyImpact := newPITI + totalRemainingDebtPayment + params.CurrentHomeOperatingCosts -
		params.RentalIncome - (params.CurrentMortgagePayment + totalCurrentDebtPayment)

	newMonthlySurplus := baseline.MonthlySurplus() - netMonthlyImpact

	logger.Debug("evaluated rental strategy",
		zap.String("op", "analysis.EvaluateRental"),
		zap.Float64("downPayment", downPayment),
		zap.Float64("newMortgageAmount", mortgageAmount),
		zap.Float64("newMonthlySurplus", newMonthlySurplus),
	)

	return StrategyResult{
		Strategy:           StrategyRental,
		DownPayment:        downPayment,
		NewMortgageAmount:  mortgageAmount,
		NewMortgagePayment: mortgagePayment,
		NewPITI:            newPITI,
		NetMonthlyImpact:   netMonthlyImpact,
		NewMonthlySurplus:  newMonthlySurplus,
		AnnualSurplus:      newMonthlySurplus * constants.MonthsPerYear,
		RemainingCash:      mathutil.Max(0, availableCash-downPayment),
		RemainingLiens:     remainingLiens,
	}
}

// EvaluateSell computes the monthly surplus delta for selling the current
// home. The sale extinguishes every lien in full; there is no partial
// payoff branch.
func EvaluateSell(logger *zap.Logger, params ScenarioParams, baseline finance.BaselineFinances) StrategyResult {
	if logger == nil {
		logger = zap.NewNop()
	}

	totalLienBalance := loans.TotalBalance(params.Liens)
	sellingCosts := params.SalePrice * params.SellingCostPct
	netProceeds := params.SalePrice - totalLienBalance - sellingCosts

	totalAvailableCash := netProceeds + params.Inheritance + params.BonusCash
	downPayment := mathutil.Min(totalAvailableCash, params.NewHomePrice)

	mortgageAmount := mathutil.Max(0, params.NewHomePrice-downPayment)
	mortgagePayment := loans.MonthlyPayment(mortgageAmount, params.InterestRatePct, constants.DefaultLoanTermYears)
	newPITI := mortgagePayment + params.PropertyTaxAnnual/constants.MonthsPerYear + params.InsuranceAnnual/constants.MonthsPerYear

	eliminatedExpenses := params.CurrentMortgagePayment + loans.TotalPayment(params.Liens) + params.CurrentHomeOperatingCosts
	netMonthlyImpact := newPITI - eliminatedExpenses

	newMonthlySurplus := baseline.MonthlySurplus() - netMonthlyImpact

	logger.Debug("evaluated sell strategy",
		zap.String("op", "analysis.EvaluateSell"),
		zap.Float64("netProceeds", netProceeds),
		zap.Float64("downPayment", downPayment),
		zap.Float64("newMonthlySurplus", newMonthlySurplus),
	)

	return StrategyResult{
		Strategy:           StrategySell,
		DownPayment:        downPayment,
		NewMortgageAmount:  mortgageAmount,
		NewMortgagePayment: mortgagePayment,
		NewPITI:            newPITI,
		NetMonthlyImpact:   netMonthlyImpact,
		NewMonthlySurplus:  newMonthlySurplus,
		AnnualSurplus:      newMonthlySurplus * constants.MonthsPerYear,
		RemainingCash:      mathutil.Max(0, totalAvailableCash-downPayment),
	}
}

// Recommendation compares the two strategies' annual surpluses and states
// which comes out ahead.
func Recommendation(rental, sell StrategyResult) string {
	if rental.AnnualSurplus > sell.AnnualSurplus {
		return fmt.Sprintf("RECOMMEND: Rental Strategy - $%.2f better annually", rental.AnnualSurplus-sell.AnnualSurplus)
	}
	return fmt.Sprintf("RECOMMEND: Sell Strategy - $%.2f better annually", sell.AnnualSurplus-rental.AnnualSurplus)
}
