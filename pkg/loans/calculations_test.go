package loans

import (
	"math"
	"testing"
)

func TestMonthlyPayment(t *testing.T) {
	tests := []struct {
		name          string
		principal     float64
		annualRatePct float64
		termYears     int
		expectedRange []float64 // [min, max] expected range
	}{
		{
			name:          "Standard 30-year mortgage",
			principal:     240000,
			annualRatePct: 6.0,
			termYears:     30,
			expectedRange: []float64{1400, 1500}, // Around $1439
		},
		{
			name:          "HELOC on a 10-year term",
			principal:     30000,
			annualRatePct: 9.0,
			termYears:     10,
			expectedRange: []float64{375, 385}, // Around $380
		},
		{
			name:          "Zero interest loan",
			principal:     12000,
			annualRatePct: 0.0,
			termYears:     5,
			expectedRange: []float64{200, 200}, // Exactly $200
		},
		{
			name:          "Zero principal",
			principal:     0,
			annualRatePct: 6.0,
			termYears:     30,
			expectedRange: []float64{0, 0},
		},
		{
			name:          "Negative principal",
			principal:     -50000,
			annualRatePct: 6.0,
			termYears:     30,
			expectedRange: []float64{0, 0},
		},
		{
			name:          "High interest loan",
			principal:     10000,
			annualRatePct: 18.0,
			termYears:     3,
			expectedRange: []float64{360, 380}, // Around $362
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MonthlyPayment(tt.principal, tt.annualRatePct, tt.termYears)

			if result < tt.expectedRange[0] || result > tt.expectedRange[1] {
				t.Errorf("MonthlyPayment() = %.2f, expected range [%.2f, %.2f]",
					result, tt.expectedRange[0], tt.expectedRange[1])
			}
		})
	}
}

func TestMonthlyPaymentZeroRateExact(t *testing.T) {
	// Zero-rate payments must be exactly straight-line.
	result := MonthlyPayment(360000, 0, 30)
	if result != 360000.0/360.0 {
		t.Errorf("MonthlyPayment(360000, 0, 30) = %v, expected exactly %v", result, 360000.0/360.0)
	}
}

func TestMonthlyPaymentCoversPrincipal(t *testing.T) {
	// A positive-rate payment stream must always repay more than the
	// principal over the full term.
	tests := []struct {
		principal float64
		rate      float64
		termYears int
	}{
		{100000, 0.5, 30},
		{330000, 2.875, 30},
		{30000, 9.0, 10},
		{865000, 6.13, 30},
		{1000, 18.0, 1},
	}

	for _, tt := range tests {
		payment := MonthlyPayment(tt.principal, tt.rate, tt.termYears)
		totalPaid := payment * float64(tt.termYears) * 12
		if totalPaid <= tt.principal {
			t.Errorf("MonthlyPayment(%.0f, %.3f, %d): total paid %.2f does not cover principal",
				tt.principal, tt.rate, tt.termYears, totalPaid)
		}
	}
}

func TestLienPayment(t *testing.T) {
	tests := []struct {
		name          string
		lien          Lien
		expectedRange []float64
	}{
		{
			name:          "Stored payment wins",
			lien:          Lien{Balance: 330000, Rate: 2.875, Kind: KindMortgage, MonthlyPayment: 2490},
			expectedRange: []float64{2490, 2490},
		},
		{
			name:          "Derived at default 30-year term",
			lien:          Lien{Balance: 330000, Rate: 2.875, Kind: KindMortgage},
			expectedRange: []float64{1360, 1380}, // Around $1369
		},
		{
			name:          "Derived at explicit 10-year term",
			lien:          Lien{Balance: 30000, Rate: 9.0, Kind: KindHeloc, TermYears: 10},
			expectedRange: []float64{375, 385},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.lien.Payment()
			if result < tt.expectedRange[0] || result > tt.expectedRange[1] {
				t.Errorf("Payment() = %.2f, expected range [%.2f, %.2f]",
					result, tt.expectedRange[0], tt.expectedRange[1])
			}
		})
	}
}

func TestPayoffHighRateDebt(t *testing.T) {
	liens := []Lien{
		{Balance: 330000, Rate: 2.875, Kind: KindMortgage, MonthlyPayment: 2490},
		{Balance: 23000, Rate: 9.0, Kind: KindHeloc, TermYears: 10},
	}

	remaining, leftover := PayoffHighRateDebt(nil, liens, 353000, 6.0)

	if len(remaining) != 1 {
		t.Fatalf("expected 1 remaining lien, got %d", len(remaining))
	}
	if remaining[0].Kind != KindMortgage {
		t.Errorf("expected the mortgage to survive, got %s", remaining[0].Kind)
	}
	if remaining[0].Balance != 330000 {
		t.Errorf("below-threshold lien balance changed: %.2f", remaining[0].Balance)
	}
	if leftover != 353000-23000 {
		t.Errorf("leftover cash = %.2f, expected %.2f", leftover, 353000.0-23000.0)
	}
}

func TestPayoffHighRateDebtPartial(t *testing.T) {
	liens := []Lien{
		{Balance: 30000, Rate: 9.0, Kind: KindHeloc, TermYears: 10},
	}

	remaining, leftover := PayoffHighRateDebt(nil, liens, 10000, 6.0)

	if leftover != 0 {
		t.Errorf("leftover cash = %.2f, expected 0", leftover)
	}
	if len(remaining) != 1 {
		t.Fatalf("expected 1 remaining lien, got %d", len(remaining))
	}
	if remaining[0].Balance != 20000 {
		t.Errorf("remaining balance = %.2f, expected 20000", remaining[0].Balance)
	}

	// The payment must be recomputed for the reduced balance, not scaled.
	expected := MonthlyPayment(20000, 9.0, 10)
	if math.Abs(remaining[0].MonthlyPayment-expected) > 0.01 {
		t.Errorf("recomputed payment = %.2f, expected %.2f", remaining[0].MonthlyPayment, expected)
	}
}

func TestPayoffHighRateDebtConservation(t *testing.T) {
	tests := []struct {
		name      string
		liens     []Lien
		cash      float64
		threshold float64
	}{
		{
			name: "Cash exceeds all high-rate debt",
			liens: []Lien{
				{Balance: 10000, Rate: 12.0, Kind: KindOther},
				{Balance: 20000, Rate: 8.0, Kind: KindHeloc, TermYears: 10},
				{Balance: 300000, Rate: 3.0, Kind: KindMortgage},
			},
			cash:      100000,
			threshold: 6.0,
		},
		{
			name: "Cash runs out mid-lien",
			liens: []Lien{
				{Balance: 10000, Rate: 12.0, Kind: KindOther},
				{Balance: 20000, Rate: 8.0, Kind: KindHeloc, TermYears: 10},
			},
			cash:      15000,
			threshold: 6.0,
		},
		{
			name: "No cash",
			liens: []Lien{
				{Balance: 10000, Rate: 12.0, Kind: KindOther},
			},
			cash:      0,
			threshold: 6.0,
		},
		{
			name: "Nothing above threshold",
			liens: []Lien{
				{Balance: 330000, Rate: 2.875, Kind: KindMortgage},
				{Balance: 30000, Rate: 5.0, Kind: KindHeloc},
			},
			cash:      500000,
			threshold: 6.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remaining, leftover := PayoffHighRateDebt(nil, tt.liens, tt.cash, tt.threshold)

			if leftover < 0 {
				t.Errorf("leftover cash is negative: %.2f", leftover)
			}

			applied := tt.cash - leftover
			reduction := TotalBalance(tt.liens) - TotalBalance(remaining)
			if math.Abs(applied-reduction) > 0.01 {
				t.Errorf("cash applied %.2f does not equal balance reduction %.2f", applied, reduction)
			}
			if TotalBalance(remaining) > TotalBalance(tt.liens) {
				t.Errorf("remaining balances exceed original balances")
			}

			// No lien at or below the threshold may shrink.
			for _, orig := range tt.liens {
				if orig.Rate > tt.threshold {
					continue
				}
				found := false
				for _, lien := range remaining {
					if lien.Kind == orig.Kind && lien.Rate == orig.Rate && lien.Balance == orig.Balance {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("below-threshold lien %+v was modified or dropped", orig)
				}
			}
		})
	}
}

func TestParseLiens(t *testing.T) {
	tests := []struct {
		name        string
		encoded     string
		expectCount int
		expectError bool
	}{
		{
			name:        "Two liens with stored payments",
			encoded:     `[{"balance": 330000, "rate": 2.875, "type": "mortgage", "monthly_payment": 2490}, {"balance": 23000, "rate": 9.0, "type": "heloc", "monthly_payment": 317}]`,
			expectCount: 2,
		},
		{
			name:        "Missing type defaults to other",
			encoded:     `[{"balance": 5000, "rate": 12.0}]`,
			expectCount: 1,
		},
		{
			name:        "Empty input",
			encoded:     "",
			expectCount: 0,
		},
		{
			name:        "Malformed JSON",
			encoded:     `[{"balance": }]`,
			expectError: true,
		},
		{
			name:        "Negative balance rejected",
			encoded:     `[{"balance": -100, "rate": 5.0, "type": "other"}]`,
			expectError: true,
		},
		{
			name:        "Unknown type rejected",
			encoded:     `[{"balance": 100, "rate": 5.0, "type": "margin"}]`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			liens, err := ParseLiens(tt.encoded)
			if tt.expectError {
				if err == nil {
					t.Errorf("expected error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(liens) != tt.expectCount {
				t.Errorf("got %d liens, expected %d", len(liens), tt.expectCount)
			}
		})
	}
}
