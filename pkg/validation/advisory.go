// Package validation provides advisory checks over scenario inputs. These
// produce informational warnings only; a financially degenerate scenario is
// still evaluated.
package validation

import (
	"fmt"

	"github.com/iwvelando/home-analysis/pkg/constants"
	"github.com/iwvelando/home-analysis/pkg/format"
)

// CheckDownPayment warns when available cash falls below the minimum down
// payment for the new home.
func CheckDownPayment(availableCash, newHomePrice float64) string {
	minimum := constants.MinimumDownPaymentRate * newHomePrice
	if availableCash < minimum {
		return fmt.Sprintf("Available cash %s is below the %s minimum down payment (%.0f%% of %s)",
			format.Currency(availableCash), format.Currency(minimum),
			constants.MinimumDownPaymentRate*constants.PercentageMultiplier, format.Currency(newHomePrice))
	}
	return ""
}

// CheckRentalIncome warns when expected rental income does not cover the
// current home's operating costs.
func CheckRentalIncome(rentalIncome, operatingCosts float64) string {
	if rentalIncome < operatingCosts {
		return fmt.Sprintf("Rental income %s does not cover current home operating costs %s",
			format.Currency(rentalIncome), format.Currency(operatingCosts))
	}
	return ""
}

// CheckDebtToIncome warns when total monthly debt payments exceed the 43%
// DTI guideline.
func CheckDebtToIncome(totalMonthlyDebtPayment, monthlyIncome float64) string {
	if monthlyIncome <= 0 {
		return ""
	}
	ratio := totalMonthlyDebtPayment / monthlyIncome
	if ratio > constants.MaxDebtToIncomeRatio {
		return fmt.Sprintf("Debt-to-income ratio %.1f%% exceeds the %.0f%% guideline",
			ratio*constants.PercentageMultiplier, constants.MaxDebtToIncomeRatio*constants.PercentageMultiplier)
	}
	return ""
}

// AdvisoryWarnings aggregates all advisory checks, dropping empty results.
func AdvisoryWarnings(availableCash, newHomePrice, rentalIncome, operatingCosts, totalMonthlyDebtPayment, monthlyIncome float64) []string {
	var warnings []string
	for _, warning := range []string{
		CheckDownPayment(availableCash, newHomePrice),
		CheckRentalIncome(rentalIncome, operatingCosts),
		CheckDebtToIncome(totalMonthlyDebtPayment, monthlyIncome),
	} {
		if warning != "" {
			warnings = append(warnings, warning)
		}
	}
	return warnings
}
