// Package output provides utilities for formatting and displaying analysis
// results.
package output

import (
	"fmt"
	"io"

	"github.com/iwvelando/home-analysis/internal/analysis"
	"github.com/iwvelando/home-analysis/internal/matrix"
	"github.com/iwvelando/home-analysis/pkg/finance"
	"github.com/iwvelando/home-analysis/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyBaseline outputs the current financial position.
func PrettyBaseline(baseline finance.BaselineFinances) {
	fmt.Printf("--- Current Financial Position ---\n")
	fmt.Printf("Monthly Income:   %s\n", format.Currency(baseline.MonthlyIncome))
	fmt.Printf("Monthly Expenses: %s\n", format.Currency(baseline.MonthlyExpenses))
	fmt.Printf("Monthly Surplus:  %s\n", format.Currency(baseline.MonthlySurplus()))
	fmt.Printf("Annual Surplus:   %s\n", format.Currency(baseline.AnnualSurplus()))
}

// PrettyComparison outputs a side-by-side strategy comparison table.
func PrettyComparison(rental, sell analysis.StrategyResult) {
	fmt.Printf("--- Strategy Comparison ---\n")
	fmt.Printf("Metric                 | Rental Strategy | Sell Strategy\n")
	fmt.Printf("______                 | _______________ | _____________\n")

	rows := []struct {
		metric string
		rental string
		sell   string
	}{
		{"Down Payment", format.Currency(rental.DownPayment), format.Currency(sell.DownPayment)},
		{"New Mortgage Amount", format.Currency(rental.NewMortgageAmount), format.Currency(sell.NewMortgageAmount)},
		{"New Mortgage Payment", format.Currency(rental.NewMortgagePayment), format.Currency(sell.NewMortgagePayment)},
		{"New PITI", format.Currency(rental.NewPITI), format.Currency(sell.NewPITI)},
		{"Net Monthly Impact", format.Currency(rental.NetMonthlyImpact), format.Currency(sell.NetMonthlyImpact)},
		{"New Monthly Surplus", format.Currency(rental.NewMonthlySurplus), format.Currency(sell.NewMonthlySurplus)},
		{"Annual Surplus", format.Currency(rental.AnnualSurplus), format.Currency(sell.AnnualSurplus)},
		{"Remaining Cash", format.Currency(rental.RemainingCash), format.Currency(sell.RemainingCash)},
	}
	for _, row := range rows {
		fmt.Printf("%-22s | %15s | %13s\n", row.metric, row.rental, row.sell)
	}
}

// PrettyRisks outputs the risk scenario tables for both strategies.
func PrettyRisks(rentalRisks, sellRisks []analysis.RiskScenario) {
	fmt.Printf("--- Rental Strategy Risk Scenarios ---\n")
	printRiskTable(rentalRisks)
	fmt.Printf("\n--- Sell Strategy Risk Scenarios ---\n")
	printRiskTable(sellRisks)
}

func printRiskTable(risks []analysis.RiskScenario) {
	fmt.Printf("Risk Scenario                                                | Annual Impact | New Annual Surplus\n")
	fmt.Printf("_____________                                                | _____________ | __________________\n")
	for _, risk := range risks {
		fmt.Printf("%-60s | %13s | %18s\n", risk.Description, format.Currency(risk.AnnualImpact), format.Currency(risk.NewAnnualSurplus))
	}
}

// PrettySummary outputs the sweep summary statistics.
func PrettySummary(summary matrix.Summary) {
	p := message.NewPrinter(language.English)
	_, _ = p.Printf("--- Sweep Summary ---\n")
	_, _ = p.Printf("Total scenarios analyzed: %d\n", summary.Total)
	_, _ = p.Printf("Rental preferred: %d (%.1f%%)\n", summary.RentalWins, percentOf(summary.RentalWins, summary.Total))
	_, _ = p.Printf("\nRental Monthly Surplus: min %s / max %s / mean %s\n",
		format.Currency(summary.RentalExcess.Min), format.Currency(summary.RentalExcess.Max), format.Currency(summary.RentalExcess.Mean))
	_, _ = p.Printf("Sell Monthly Surplus:   min %s / max %s / mean %s\n",
		format.Currency(summary.SellExcess.Min), format.Currency(summary.SellExcess.Max), format.Currency(summary.SellExcess.Mean))
	_, _ = p.Printf("Rental Advantage:       min %s / max %s / mean %s\n",
		format.Currency(summary.RentalAdvantage.Min), format.Currency(summary.RentalAdvantage.Max), format.Currency(summary.RentalAdvantage.Mean))
	_, _ = p.Printf("\nBest scenario for the rental strategy:\n")
	_, _ = p.Printf("  %s @ %s with %s rent = %s/month advantage (%s)\n",
		format.Currency(summary.Best.HomePrice), format.Percent(summary.Best.InterestRate),
		format.Currency(summary.Best.RentalIncome), format.Currency(summary.Best.RentalAdvantage),
		summary.Best.TrafficLight)
}

func percentOf(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// MatrixCsv writes one record per grid cell in comma-separated value
// format.
func MatrixCsv(w io.Writer, cells []matrix.GridCell) error {
	if _, err := fmt.Fprintf(w, "home_price,interest_rate,rental_income,rental_monthly_excess,sell_monthly_excess,rental_remaining_cash,sell_remaining_cash,rental_advantage,rental_traffic_light\n"); err != nil {
		return err
	}
	for _, cell := range cells {
		_, err := fmt.Fprintf(w, "%.0f,%.2f,%.0f,%.2f,%.2f,%.2f,%.2f,%.2f,%s\n",
			cell.HomePrice, cell.InterestRate, cell.RentalIncome,
			cell.RentalMonthlyExcess, cell.SellMonthlyExcess,
			cell.RentalRemainingCash, cell.SellRemainingCash,
			cell.RentalAdvantage, cell.TrafficLight)
		if err != nil {
			return err
		}
	}
	return nil
}

// MarkdownReport writes the full analysis as a markdown document.
func MarkdownReport(w io.Writer, params analysis.ScenarioParams, baseline finance.BaselineFinances,
	rental, sell analysis.StrategyResult, rentalRisks, sellRisks []analysis.RiskScenario) error {

	var err error
	write := func(layout string, args ...interface{}) {
		if err == nil {
			_, err = fmt.Fprintf(w, layout, args...)
		}
	}

	write("# Real Estate Strategy Analysis Results\n\n")
	write("## Input Parameters\n")
	write("- New Home Price: %s\n", format.Currency(params.NewHomePrice))
	write("- Total Liquid Cash: %s\n", format.Currency(params.Inheritance))
	write("- Bonus Cash: %s\n", format.Currency(params.BonusCash))
	write("- Current Home Sale Price: %s\n", format.Currency(params.SalePrice))
	write("- Expected Rental Income: %s\n", format.Currency(params.RentalIncome))
	write("- Property Tax (Annual): %s\n", format.Currency(params.PropertyTaxAnnual))
	write("- Insurance (Annual): %s\n", format.Currency(params.InsuranceAnnual))
	write("- Interest Rate: %s\n\n", format.Percent(params.InterestRatePct))

	write("## Current Financial Position\n")
	write("- Monthly Income: %s\n", format.Currency(baseline.MonthlyIncome))
	write("- Monthly Expenses: %s\n", format.Currency(baseline.MonthlyExpenses))
	write("- Monthly Surplus: %s\n\n", format.Currency(baseline.MonthlySurplus()))

	write("## Strategy Comparison\n\n")
	for _, result := range []analysis.StrategyResult{rental, sell} {
		write("### %s Results\n", result.Strategy)
		write("- Down Payment: %s\n", format.Currency(result.DownPayment))
		write("- New Mortgage Payment: %s\n", format.Currency(result.NewMortgagePayment))
		write("- New PITI: %s\n", format.Currency(result.NewPITI))
		write("- Net Monthly Impact: %s\n", format.Currency(result.NetMonthlyImpact))
		write("- **New Monthly Surplus: %s**\n", format.Currency(result.NewMonthlySurplus))
		write("- **Annual Surplus: %s**\n\n", format.Currency(result.AnnualSurplus))
	}

	write("## Risk Analysis\n\n")
	write("### Rental Strategy Risks\n")
	for _, risk := range rentalRisks {
		write("- %s: %s impact, New surplus: %s\n", risk.Description, format.Currency(risk.AnnualImpact), format.Currency(risk.NewAnnualSurplus))
	}
	write("\n### Sell Strategy Risks\n")
	for _, risk := range sellRisks {
		write("- %s: %s impact, New surplus: %s\n", risk.Description, format.Currency(risk.AnnualImpact), format.Currency(risk.NewAnnualSurplus))
	}

	write("\n## Recommendation\n%s\n", analysis.Recommendation(rental, sell))
	return err
}
