package finance

import (
	"strings"
	"testing"
)

func TestMonthlySurplus(t *testing.T) {
	tests := []struct {
		name     string
		income   float64
		expenses float64
		expected float64
	}{
		{
			name:     "Positive surplus",
			income:   12000,
			expenses: 9434,
			expected: 2566,
		},
		{
			name:     "Negative surplus",
			income:   5000,
			expenses: 6200,
			expected: -1200,
		},
		{
			name:     "Break even",
			income:   4000,
			expenses: 4000,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			baseline := NewBaselineFinances(tt.income, tt.expenses)
			if got := baseline.MonthlySurplus(); got != tt.expected {
				t.Errorf("MonthlySurplus() = %.2f, expected %.2f", got, tt.expected)
			}
			if got := baseline.AnnualSurplus(); got != tt.expected*12 {
				t.Errorf("AnnualSurplus() = %.2f, expected %.2f", got, tt.expected*12)
			}
		})
	}
}

func TestCategoryTotal(t *testing.T) {
	baseline := BaselineFinances{
		MonthlyIncome:   12000,
		MonthlyExpenses: 9434,
		ExpenseBreakdown: map[string]float64{
			"Lawn Service":  150,
			"Pool Cleaning": 120,
			"FPL":           120,
			"Groceries":     900,
			"Car Insurance": 210,
		},
	}

	classify := func(label string) string {
		lower := strings.ToLower(label)
		for _, keyword := range []string{"lawn", "pool", "fpl"} {
			if strings.Contains(lower, keyword) {
				return "home-operating"
			}
		}
		return "other"
	}

	got := baseline.CategoryTotal(classify, "home-operating")
	if got != 390 {
		t.Errorf("CategoryTotal() = %.2f, expected 390", got)
	}

	if got := baseline.CategoryTotal(nil, "home-operating"); got != 0 {
		t.Errorf("CategoryTotal(nil) = %.2f, expected 0", got)
	}
}
