package finance

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Fixed cell-range contract for the baseline spreadsheet: Sheet1 row 2
// columns D-G hold income figures, Sheet1 columns A/B hold expense
// label/amount pairs, and an optional Sheet2 holds additional personal
// expenses in the same two-column layout.
const (
	incomeSheet        = "Sheet1"
	incomeRowIndex     = 1
	incomeColumnFirst  = 3
	incomeColumnLast   = 6
	expenseLabelColumn = 0
	expenseValueColumn = 1
	personalSheet      = "Sheet2"
	personalPrefix     = "Personal_"
)

// LoadSpreadsheet reads the baseline finances from an xlsx file following
// the fixed cell-range contract. A missing or unreadable file is an error
// for the caller to treat as fatal; a missing Sheet2 is ignored.
func LoadSpreadsheet(logger *zap.Logger, path string) (BaselineFinances, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return BaselineFinances{}, fmt.Errorf("failed to open spreadsheet %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	rows, err := f.GetRows(incomeSheet)
	if err != nil {
		return BaselineFinances{}, fmt.Errorf("failed to read sheet %s: %w", incomeSheet, err)
	}
	if len(rows) <= incomeRowIndex {
		return BaselineFinances{}, fmt.Errorf("sheet %s has no income row", incomeSheet)
	}

	income := 0.0
	incomeRow := rows[incomeRowIndex]
	for col := incomeColumnFirst; col <= incomeColumnLast && col < len(incomeRow); col++ {
		if amount, ok := parseAmount(incomeRow[col]); ok {
			income += amount
		}
	}

	breakdown := make(map[string]float64)
	expenses := 0.0
	for _, row := range rows {
		label, amount, ok := expenseEntry(row)
		if !ok {
			continue
		}
		breakdown[label] = amount
		expenses += amount
	}

	// Sheet2 carries additional personal expenses; its absence is not an
	// error.
	if personalRows, personalErr := f.GetRows(personalSheet); personalErr == nil {
		for _, row := range personalRows {
			label, amount, ok := expenseEntry(row)
			if !ok {
				continue
			}
			breakdown[personalPrefix+label] = amount
			expenses += amount
		}
	} else {
		logger.Debug("no personal expense sheet found",
			zap.String("op", "finance.LoadSpreadsheet"),
			zap.String("sheet", personalSheet),
		)
	}

	logger.Debug("loaded baseline finances",
		zap.String("op", "finance.LoadSpreadsheet"),
		zap.Float64("monthlyIncome", income),
		zap.Float64("monthlyExpenses", expenses),
		zap.Int("expenseItems", len(breakdown)),
	)

	return BaselineFinances{
		MonthlyIncome:    income,
		MonthlyExpenses:  expenses,
		ExpenseBreakdown: breakdown,
	}, nil
}

// expenseEntry extracts a label/amount pair from a two-column expense row;
// rows without a label or a numeric amount are skipped.
func expenseEntry(row []string) (string, float64, bool) {
	if len(row) <= expenseValueColumn {
		return "", 0, false
	}
	label := row[expenseLabelColumn]
	if label == "" {
		return "", 0, false
	}
	amount, ok := parseAmount(row[expenseValueColumn])
	if !ok {
		return "", 0, false
	}
	return label, amount, true
}

func parseAmount(cell string) (float64, bool) {
	if cell == "" {
		return 0, false
	}
	amount, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, false
	}
	return amount, true
}
