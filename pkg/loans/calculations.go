// Package loans provides common loan processing utilities.
package loans

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"github.com/iwvelando/home-analysis/pkg/constants"
	"go.uber.org/zap"
)

// LienKind identifies the flavor of a debt secured against the current home.
type LienKind string

// Supported lien kinds.
const (
	KindMortgage LienKind = "mortgage"
	KindHeloc    LienKind = "heloc"
	KindOther    LienKind = "other"
)

// Lien is a debt secured against the current home. Liens are immutable
// inputs; the payoff policy produces new lien values rather than mutating
// in place.
type Lien struct {
	Balance        float64  `json:"balance"`
	Rate           float64  `json:"rate"`
	Kind           LienKind `json:"type" mapstructure:"type"`
	MonthlyPayment float64  `json:"monthly_payment,omitempty"`
	TermYears      int      `json:"term_years,omitempty"`
}

// EffectiveTermYears returns the amortization term for the lien, falling
// back to the 30-year default when none is configured.
func (l Lien) EffectiveTermYears() int {
	if l.TermYears > 0 {
		return l.TermYears
	}
	return constants.DefaultLoanTermYears
}

// Payment returns the lien's monthly payment, deriving it from the balance,
// rate, and term when no explicit payment is stored.
func (l Lien) Payment() float64 {
	if l.MonthlyPayment > 0 {
		return l.MonthlyPayment
	}
	return MonthlyPayment(l.Balance, l.Rate, l.EffectiveTermYears())
}

// Validate checks a lien for well-formedness.
func (l Lien) Validate() error {
	if l.Balance < 0 {
		return fmt.Errorf("lien balance must be >= 0, got %.2f", l.Balance)
	}
	if l.Rate < 0 {
		return fmt.Errorf("lien rate must be >= 0, got %.3f", l.Rate)
	}
	if l.MonthlyPayment < 0 {
		return fmt.Errorf("lien monthly payment must be >= 0, got %.2f", l.MonthlyPayment)
	}
	if l.TermYears < 0 {
		return fmt.Errorf("lien term must be >= 0 years, got %d", l.TermYears)
	}
	switch l.Kind {
	case KindMortgage, KindHeloc, KindOther:
		return nil
	default:
		return fmt.Errorf("unknown lien type %q", l.Kind)
	}
}

// ParseLiens decodes a JSON array of liens, e.g.
// [{"balance": 330000, "rate": 2.875, "type": "mortgage", "monthly_payment": 2490}].
// Liens without an explicit type default to "other".
func ParseLiens(encoded string) ([]Lien, error) {
	if encoded == "" {
		return nil, nil
	}

	var liens []Lien
	if err := json.Unmarshal([]byte(encoded), &liens); err != nil {
		return nil, fmt.Errorf("failed to decode liens: %w", err)
	}
	for i := range liens {
		if liens[i].Kind == "" {
			liens[i].Kind = KindOther
		}
		if err := liens[i].Validate(); err != nil {
			return nil, fmt.Errorf("lien %d: %w", i, err)
		}
	}
	return liens, nil
}

// MonthlyPayment calculates the fixed monthly payment for an amortizing loan
// using the standard amortization formula. Rounding is a presentation
// concern; no rounding happens here.
func MonthlyPayment(principal, annualRatePct float64, termYears int) float64 {
	if principal <= 0 {
		return 0
	}

	termMonths := float64(termYears * constants.MonthsPerYear)
	if annualRatePct == 0 {
		// For zero interest, simply divide the principal by term
		return principal / termMonths
	}

	periodicRate := annualRatePct / (constants.PercentageMultiplier * constants.MonthsPerYear)
	power := math.Pow(1.00+periodicRate, termMonths)
	return principal * periodicRate * power / (power - 1.00)
}

// TotalPayment sums the monthly payments over a set of liens, deriving
// payments where absent.
func TotalPayment(liens []Lien) float64 {
	total := 0.0
	for _, lien := range liens {
		total += lien.Payment()
	}
	return total
}

// TotalBalance sums the outstanding balances over a set of liens.
func TotalBalance(liens []Lien) float64 {
	total := 0.0
	for _, lien := range liens {
		total += lien.Balance
	}
	return total
}

// PayoffHighRateDebt applies availableCash to liens whose rate exceeds
// rateThreshold, highest rate first. Liens at or below the threshold pass
// through untouched regardless of remaining cash. A partially paid lien has
// its monthly payment recomputed for the reduced balance at the same rate
// and term. The order of the returned liens is not guaranteed to match the
// input, and ties on rate break arbitrarily.
func PayoffHighRateDebt(logger *zap.Logger, liens []Lien, availableCash, rateThreshold float64) ([]Lien, float64) {
	if logger == nil {
		logger = zap.NewNop()
	}

	ordered := make([]Lien, len(liens))
	copy(ordered, liens)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Rate > ordered[j].Rate
	})

	remaining := make([]Lien, 0, len(ordered))
	cash := availableCash
	for _, lien := range ordered {
		if cash <= 0 || lien.Rate <= rateThreshold {
			remaining = append(remaining, lien)
			continue
		}

		if cash >= lien.Balance {
			cash -= lien.Balance
			logger.Debug("eliminating high-rate lien",
				zap.String("op", "loans.PayoffHighRateDebt"),
				zap.String("type", string(lien.Kind)),
				zap.Float64("balance", lien.Balance),
				zap.Float64("rate", lien.Rate),
			)
			continue
		}

		reduced := lien.Balance - cash
		partial := Lien{
			Balance:   reduced,
			Rate:      lien.Rate,
			Kind:      lien.Kind,
			TermYears: lien.TermYears,
		}
		partial.MonthlyPayment = MonthlyPayment(partial.Balance, partial.Rate, partial.EffectiveTermYears())
		logger.Debug("partially paying high-rate lien",
			zap.String("op", "loans.PayoffHighRateDebt"),
			zap.String("type", string(lien.Kind)),
			zap.Float64("applied", cash),
			zap.Float64("remainingBalance", partial.Balance),
		)
		cash = 0
		remaining = append(remaining, partial)
	}

	return remaining, cash
}
