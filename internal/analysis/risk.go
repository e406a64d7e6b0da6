package analysis

import (
	"github.com/iwvelando/home-analysis/pkg/constants"
	"github.com/iwvelando/home-analysis/pkg/loans"
)

// Risk perturbation constants. Each scenario models a single what-if in
// isolation; entries are never stacked.
const (
	vacancyMonths     = 3
	rentReductionRate = 0.20
	majorRepairCost   = 10000.0
	saleShortfall     = 50000.0
	closingCosts      = 15000.0
	marketDelayMonths = 3
	movingCosts       = 5000.0
)

// RiskScenario is one named perturbation applied to a strategy result. The
// annual impact is a cost and therefore always <= 0.
type RiskScenario struct {
	Name             string
	Description      string
	AnnualImpact     float64
	NewAnnualSurplus float64
}

// RentalRisks derives the perturbed annual surpluses for the rental
// strategy.
func RentalRisks(result StrategyResult, params ScenarioParams) []RiskScenario {
	scenarios := []RiskScenario{
		{
			Name:         "vacancy_3_months",
			Description:  "3 months vacancy per year",
			AnnualImpact: -(params.RentalIncome * vacancyMonths),
		},
		{
			Name:         "major_repairs",
			Description:  "$10,000 major repairs",
			AnnualImpact: -majorRepairCost,
		},
		{
			Name:         "lower_rent",
			Description:  "20% lower rental income",
			AnnualImpact: -(params.RentalIncome * rentReductionRate * constants.MonthsPerYear),
		},
	}
	return applySurplus(scenarios, result.AnnualSurplus)
}

// SellRisks derives the perturbed annual surpluses for the sell strategy.
// The lower-sale-price entry converts the shortfall into the extra 30-year
// mortgage payment it forces.
func SellRisks(result StrategyResult, params ScenarioParams) []RiskScenario {
	extraPayment := loans.MonthlyPayment(saleShortfall, params.InterestRatePct, constants.DefaultLoanTermYears)
	carryingCost := params.CurrentMortgagePayment + params.CurrentHomeOperatingCosts

	scenarios := []RiskScenario{
		{
			Name:         "lower_sale_price",
			Description:  "$50,000 lower sale price",
			AnnualImpact: -(extraPayment * constants.MonthsPerYear),
		},
		{
			Name:         "closing_costs",
			Description:  "$15,000 in closing/selling costs",
			AnnualImpact: -closingCosts,
		},
		{
			Name:         "market_delay",
			Description:  "3 months carrying the current home while it sits on the market",
			AnnualImpact: -(carryingCost * marketDelayMonths),
		},
		{
			Name:         "moving_costs",
			Description:  "$5,000 moving costs",
			AnnualImpact: -movingCosts,
		},
	}
	return applySurplus(scenarios, result.AnnualSurplus)
}

func applySurplus(scenarios []RiskScenario, annualSurplus float64) []RiskScenario {
	for i := range scenarios {
		scenarios[i].NewAnnualSurplus = annualSurplus + scenarios[i].AnnualImpact
	}
	return scenarios
}
