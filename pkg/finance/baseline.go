// Package finance provides the household baseline snapshot consumed by the
// strategy evaluators.
package finance

import (
	"github.com/iwvelando/home-analysis/pkg/constants"
)

// BaselineFinances is the household's current-state snapshot. It is
// constructed once per run and read-only thereafter; the monthly surplus is
// always derived, never independently settable.
type BaselineFinances struct {
	MonthlyIncome    float64
	MonthlyExpenses  float64
	ExpenseBreakdown map[string]float64
}

// NewBaselineFinances builds a baseline from aggregate income and expenses.
func NewBaselineFinances(monthlyIncome, monthlyExpenses float64) BaselineFinances {
	return BaselineFinances{
		MonthlyIncome:   monthlyIncome,
		MonthlyExpenses: monthlyExpenses,
	}
}

// MonthlySurplus returns income minus expenses.
func (b BaselineFinances) MonthlySurplus() float64 {
	return b.MonthlyIncome - b.MonthlyExpenses
}

// AnnualSurplus returns the monthly surplus over a full year.
func (b BaselineFinances) AnnualSurplus() float64 {
	return b.MonthlySurplus() * constants.MonthsPerYear
}

// ExpenseClassifier maps an expense label to a category. The engine never
// inspects labels itself; callers supply the classification.
type ExpenseClassifier func(label string) string

// CategoryTotal sums the breakdown entries whose label classifies to the
// given category. A baseline without a breakdown totals to zero.
func (b BaselineFinances) CategoryTotal(classify ExpenseClassifier, category string) float64 {
	if classify == nil {
		return 0
	}
	total := 0.0
	for label, amount := range b.ExpenseBreakdown {
		if classify(label) == category {
			total += amount
		}
	}
	return total
}
