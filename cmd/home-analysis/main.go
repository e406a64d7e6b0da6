package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/iwvelando/home-analysis/internal/analysis"
	"github.com/iwvelando/home-analysis/internal/config"
	"github.com/iwvelando/home-analysis/internal/logging"
	"github.com/iwvelando/home-analysis/pkg/constants"
	"github.com/iwvelando/home-analysis/pkg/finance"
	"github.com/iwvelando/home-analysis/pkg/loans"
	"github.com/iwvelando/home-analysis/pkg/output"
	"github.com/iwvelando/home-analysis/pkg/validation"
	"go.uber.org/zap"
)

// operatingCostCategory is the label category summed into the current
// home's operating costs when the baseline comes from a spreadsheet.
const operatingCostCategory = "current-home-operating"

// classifyExpense is the keyword-based expense classifier injected into the
// baseline. The engine itself never inspects labels.
func classifyExpense(label string) string {
	lower := strings.ToLower(label)
	for _, keyword := range []string{"lawn", "pool", "maintenance", "fpl", "cleaning"} {
		if strings.Contains(lower, keyword) {
			return operatingCostCategory
		}
	}
	return "other"
}

func fatal(msg string, err error) {
	fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"%s\", \"error\": \"%v\"}\n", msg, err)
	os.Exit(1)
}

func main() {
	newHomePrice := flag.Float64("new-home-price", 0, "new home purchase price (required)")
	totalLiquidCash := flag.Float64("total-liquid-cash", 0, "total liquid cash available (inheritance etc.)")
	bonusCash := flag.Float64("bonus-cash", 0, "additional bonus cash")
	salePrice := flag.Float64("sale-price", 0, "current home estimated sale price")
	rentalIncome := flag.Float64("rental-income", 0, "expected monthly rental income")
	propertyTax := flag.Float64("property-tax", 0, "new home annual property tax")
	insurance := flag.Float64("insurance", 0, "new home annual insurance")
	interestRate := flag.Float64("interest-rate", constants.DefaultInterestRate, "mortgage interest rate in percent")
	sellingCostPct := flag.Float64("selling-cost-pct", constants.DefaultSellingCostRate, "selling costs as a fraction of the sale price")
	liensFlag := flag.String("liens", "", "liens as a JSON array, e.g. [{\"balance\": 330000, \"rate\": 2.875, \"type\": \"mortgage\"}]")
	currentMortgagePayment := flag.Float64("current-mortgage-payment", 0, "current home monthly mortgage payment")
	operatingCosts := flag.Float64("operating-costs", 0, "current home monthly operating costs")
	highRateThreshold := flag.Float64("high-rate-threshold", constants.DefaultHighRateThreshold, "rate threshold for the debt payoff policy")
	payoffHighRate := flag.Bool("payoff-high-rate", false, "pay off high-rate liens with available cash first")
	monthlyIncome := flag.Float64("monthly-income", 0, "baseline monthly income (manual source)")
	monthlyExpenses := flag.Float64("monthly-expenses", 0, "baseline monthly expenses (manual source)")
	excelFile := flag.String("excel-file", "", "spreadsheet with baseline financial data (alternative to manual source)")
	exportPath := flag.String("export", "", "export results to a markdown file")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	logger, err := logging.NewLogger(config.LoggingConfig{Format: "console"}, *logLevel)
	if err != nil {
		fatal("failed to initialize logger", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// The two baseline sources are mutually exclusive and one is required.
	manualSource := *monthlyIncome != 0 || *monthlyExpenses != 0
	if manualSource && *excelFile != "" {
		fatal("baseline source conflict", fmt.Errorf("provide either -monthly-income/-monthly-expenses or -excel-file, not both"))
	}
	if !manualSource && *excelFile == "" {
		fatal("missing baseline source", fmt.Errorf("provide -monthly-income/-monthly-expenses or -excel-file"))
	}

	var baseline finance.BaselineFinances
	if manualSource {
		baseline = finance.NewBaselineFinances(*monthlyIncome, *monthlyExpenses)
	} else {
		baseline, err = finance.LoadSpreadsheet(logger, *excelFile)
		if err != nil {
			fatal("failed to load baseline spreadsheet", err)
		}
	}

	liens, err := loans.ParseLiens(*liensFlag)
	if err != nil {
		fatal("failed to parse liens", err)
	}

	// With a spreadsheet source the operating costs can be derived from the
	// expense breakdown unless given explicitly.
	homeOperatingCosts := *operatingCosts
	if homeOperatingCosts == 0 && baseline.ExpenseBreakdown != nil {
		homeOperatingCosts = baseline.CategoryTotal(classifyExpense, operatingCostCategory)
	}

	params := analysis.ScenarioParams{
		NewHomePrice:              *newHomePrice,
		Inheritance:               *totalLiquidCash,
		BonusCash:                 *bonusCash,
		SalePrice:                 *salePrice,
		RentalIncome:              *rentalIncome,
		PropertyTaxAnnual:         *propertyTax,
		InsuranceAnnual:           *insurance,
		InterestRatePct:           *interestRate,
		SellingCostPct:            *sellingCostPct,
		HighRateThresholdPct:      *highRateThreshold,
		CurrentMortgagePayment:    *currentMortgagePayment,
		CurrentHomeOperatingCosts: homeOperatingCosts,
		Liens:                     liens,
		PayOffHighRateFirst:       *payoffHighRate,
	}
	if err := params.Validate(); err != nil {
		fatal("invalid scenario parameters", err)
	}

	// Advisory warnings never abort the run.
	warnings := validation.AdvisoryWarnings(
		params.Inheritance+params.BonusCash,
		params.NewHomePrice,
		params.RentalIncome,
		params.CurrentHomeOperatingCosts,
		params.CurrentMortgagePayment+loans.TotalPayment(params.Liens),
		baseline.MonthlyIncome,
	)
	for _, warning := range warnings {
		logger.Warn("Scenario warning: "+warning,
			zap.String("op", "main"),
		)
	}

	rental := analysis.EvaluateRental(logger, params, baseline)
	sell := analysis.EvaluateSell(logger, params, baseline)
	rentalRisks := analysis.RentalRisks(rental, params)
	sellRisks := analysis.SellRisks(sell, params)

	output.PrettyBaseline(baseline)
	fmt.Printf("\n")
	output.PrettyComparison(rental, sell)
	fmt.Printf("\n")
	output.PrettyRisks(rentalRisks, sellRisks)
	fmt.Printf("\n%s\n", analysis.Recommendation(rental, sell))

	if *exportPath != "" {
		file, err := os.Create(*exportPath)
		if err != nil {
			fatal("failed to create export file", err)
		}
		defer func() {
			_ = file.Close()
		}()
		if err := output.MarkdownReport(file, params, baseline, rental, sell, rentalRisks, sellRisks); err != nil {
			fatal("failed to write markdown export", err)
		}
		logger.Info("results exported",
			zap.String("op", "main"),
			zap.String("path", *exportPath),
		)
	}
}
